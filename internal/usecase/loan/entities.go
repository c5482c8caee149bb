package loan

import (
	"time"

	domain "tradex-backend/internal/domain/loan"
)

type CreateLoanInput struct {
	Customer  string
	Principal float64
	Rate      float64
	Mode      domain.InterestMode
	Frequency domain.Frequency
	Periods   int
	StartDate time.Time
}

type RecordPaymentInput struct {
	LoanID       string
	Amount       float64
	Date         time.Time
	RegisteredBy string
	Notes        string
}

type ListFilter struct {
	Status   domain.Status
	Customer string
}

type LoanDTO struct {
	LoanID    string    `json:"loan_id"`
	Customer  string    `json:"customer"`
	Principal float64   `json:"principal"`
	Rate      float64   `json:"rate"`
	Mode      string    `json:"mode"`
	Frequency string    `json:"frequency"`
	Periods   int       `json:"periods"`
	StartDate time.Time `json:"start_date"`
	DueDate   time.Time `json:"due_date"`
	Interest  float64   `json:"interest"`
	TotalDue  float64   `json:"total_due"`
	Collected float64   `json:"collected"`
	Balance   float64   `json:"balance"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type PaymentDTO struct {
	PaymentID    string    `json:"payment_id"`
	LoanID       string    `json:"loan_id"`
	Customer     string    `json:"customer"`
	Amount       float64   `json:"amount"`
	PaymentDate  time.Time `json:"payment_date"`
	RegisteredBy string    `json:"registered_by"`
	Notes        string    `json:"notes"`
}

func toLoanDTO(l *domain.Loan) *LoanDTO {
	return &LoanDTO{
		LoanID:    l.LoanID,
		Customer:  l.Customer,
		Principal: l.Principal,
		Rate:      l.Rate,
		Mode:      string(l.Mode),
		Frequency: string(l.Frequency),
		Periods:   l.Periods,
		StartDate: l.StartDate,
		DueDate:   l.DueDate,
		Interest:  l.Interest,
		TotalDue:  l.TotalDue,
		Collected: l.Collected,
		Balance:   l.Balance(),
		Status:    string(l.Status),
		CreatedAt: l.CreatedAt,
	}
}
