package payment

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("payment not found")
	// ErrInvalidAmount rejects non-positive payment amounts.
	ErrInvalidAmount = errors.New("payment amount must be positive")
	// ErrExceedsBalance rejects a payment larger than the loan's outstanding balance.
	ErrExceedsBalance = errors.New("payment exceeds outstanding balance")
)

// Payment is a collection event against a loan. The date is deliberately
// mutable: operators correct mis-entered dates after the fact, and reporting
// always reflects the corrected date.
type Payment struct {
	ID        uint64 `gorm:"primaryKey;column:id" json:"-"`
	PaymentID string `gorm:"size:32;uniqueIndex:ux_payments_payment_id_active" json:"payment_id"`
	// Public loan id (loans.loan_id), denormalized together with the customer
	// name so exports never need a join.
	LoanID   string `gorm:"size:32;index:idx_payments_loan" json:"loan_id"`
	Customer string `gorm:"size:128" json:"customer"`

	Amount       float64   `gorm:"type:decimal(18,2)" json:"amount"`
	PaymentDate  time.Time `gorm:"type:date" json:"payment_date"`
	RegisteredBy string    `gorm:"size:32" json:"registered_by"`
	Notes        string    `gorm:"type:text" json:"notes"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Payment) TableName() string { return "payments" }

// Sum adds up payment amounts; the result is the loan's collected total.
func Sum(ps []Payment) float64 {
	var total float64
	for _, p := range ps {
		total += p.Amount
	}
	return total
}
