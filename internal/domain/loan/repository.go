package loan

import "context"

// Filter narrows List results. Zero values mean "any".
type Filter struct {
	Status   Status
	Customer string
}

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	GetByLoanIDForUpdate(ctx context.Context, loanID string) (*Loan, error)
	Save(ctx context.Context, l *Loan) error
	// List returns a snapshot slice; iteration is finite and restartable.
	List(ctx context.Context, f Filter) ([]Loan, error)
}
