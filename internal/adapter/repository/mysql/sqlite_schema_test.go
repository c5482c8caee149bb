package mysql

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schemas only for tests (no ENUM columns) ---

type loanSQLite struct {
	ID              uint64         `gorm:"primaryKey;column:id"`
	LoanID          string         `gorm:"size:32;column:loan_id"`
	Customer        string         `gorm:"size:128;column:customer"`
	Principal       float64        `gorm:"column:principal"`
	Rate            float64        `gorm:"column:rate"`
	Mode            string         `gorm:"type:text;column:mode"`
	Frequency       string         `gorm:"type:text;column:frequency"`
	Periods         int            `gorm:"column:periods"`
	StartDate       time.Time      `gorm:"column:start_date"`
	DueDate         time.Time      `gorm:"column:due_date"`
	Interest        float64        `gorm:"column:interest"`
	TotalDue        float64        `gorm:"column:total_due"`
	Collected       float64        `gorm:"column:collected"`
	Status          string         `gorm:"type:text;column:status"`
	StatusUpdatedAt time.Time      `gorm:"column:status_updated_at"`
	CreatedAt       time.Time      `gorm:"column:created_at"`
	UpdatedAt       time.Time      `gorm:"column:updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (loanSQLite) TableName() string { return "loans" }

type paymentSQLite struct {
	ID           uint64         `gorm:"primaryKey;column:id"`
	PaymentID    string         `gorm:"size:32;column:payment_id"`
	LoanID       string         `gorm:"size:32;column:loan_id"`
	Customer     string         `gorm:"size:128;column:customer"`
	Amount       float64        `gorm:"column:amount"`
	PaymentDate  time.Time      `gorm:"column:payment_date"`
	RegisteredBy string         `gorm:"size:32;column:registered_by"`
	Notes        string         `gorm:"type:text;column:notes"`
	CreatedAt    time.Time      `gorm:"column:created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (paymentSQLite) TableName() string { return "payments" }

type contributionSQLite struct {
	ID             uint64         `gorm:"primaryKey;column:id"`
	ContributionID string         `gorm:"size:32;column:contribution_id"`
	PartnerRef     string         `gorm:"size:128;column:partner_ref"`
	Amount         float64        `gorm:"column:amount"`
	ContributedAt  time.Time      `gorm:"column:contributed_at"`
	CreatedAt      time.Time      `gorm:"column:created_at"`
	UpdatedAt      time.Time      `gorm:"column:updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (contributionSQLite) TableName() string { return "capital_contributions" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the sqlite-safe
// schemas, never the domain models.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&loanSQLite{}, &paymentSQLite{}, &contributionSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
