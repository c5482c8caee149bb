package capital

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	// ErrInsufficientCapital rejects a reservation exceeding the available pool.
	ErrInsufficientCapital = errors.New("insufficient available capital")
	// ErrInvalidAmount rejects non-positive contribution or reservation amounts.
	ErrInvalidAmount = errors.New("amount must be positive")
)

// Contribution is a partner's capital deposit into the shared pool.
type Contribution struct {
	ID             uint64 `gorm:"primaryKey;column:id" json:"-"`
	ContributionID string `gorm:"size:32;uniqueIndex:ux_contributions_id_active" json:"contribution_id"`
	PartnerRef     string `gorm:"size:128;index:idx_contributions_partner" json:"partner_ref"`

	Amount        float64   `gorm:"type:decimal(18,2)" json:"amount"`
	ContributedAt time.Time `gorm:"type:date" json:"contributed_at"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Contribution) TableName() string { return "capital_contributions" }
