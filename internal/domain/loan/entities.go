package loan

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("loan not found")
	// ErrInvalidLoanParams covers non-positive principal/rate and negative terms.
	ErrInvalidLoanParams = errors.New("invalid loan parameters")
	// ErrInvalidDate is returned when a payment date precedes the loan's start date.
	ErrInvalidDate = errors.New("payment date before loan start date")
	// ErrLoanSettled rejects payments against a loan that already reached paid.
	ErrLoanSettled = errors.New("loan is already paid off")
)

type Status string

const (
	StatusActive  Status = "active"
	StatusPaid    Status = "paid"
	StatusOverdue Status = "overdue"
)

type InterestMode string

const (
	ModeSimple   InterestMode = "simple"
	ModeCompound InterestMode = "compound"
)

type Frequency string

const (
	FreqDaily   Frequency = "daily"
	FreqWeekly  Frequency = "weekly"
	FreqMonthly Frequency = "monthly"
)

type Loan struct {
	ID       uint64 `gorm:"primaryKey;column:id" json:"-"`
	LoanID   string `gorm:"size:32;uniqueIndex:ux_loans_loan_id_active" json:"loan_id"`
	Customer string `gorm:"size:128;index:idx_loans_customer" json:"customer"`

	Principal float64      `gorm:"type:decimal(18,2)" json:"principal"`
	Rate      float64      `gorm:"type:decimal(8,4)" json:"rate"`
	Mode      InterestMode `gorm:"type:enum('simple','compound');default:'simple'" json:"mode"`
	Frequency Frequency    `gorm:"type:enum('daily','weekly','monthly');default:'monthly'" json:"frequency"`
	Periods   int          `gorm:"column:periods" json:"periods"`

	StartDate time.Time `gorm:"type:date" json:"start_date"`
	DueDate   time.Time `gorm:"type:date" json:"due_date"`

	Interest  float64 `gorm:"type:decimal(18,2)" json:"interest"`
	TotalDue  float64 `gorm:"type:decimal(18,2)" json:"total_due"`
	Collected float64 `gorm:"type:decimal(18,2)" json:"collected"`

	Status          Status    `gorm:"type:enum('active','paid','overdue');default:'active'" json:"status"`
	StatusUpdatedAt time.Time `gorm:"autoCreateTime" json:"status_updated_at"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Loan) TableName() string { return "loans" }

// Balance is the amount still outstanding, never below zero.
func (l *Loan) Balance() float64 {
	b := Round2(l.TotalDue - l.Collected)
	if b < 0 {
		return 0
	}
	return b
}
