package uow

import (
	"context"

	"tradex-backend/internal/domain/capital"
	"tradex-backend/internal/domain/loan"
	"tradex-backend/internal/domain/payment"
)

type Repos struct {
	Loans         loan.Repository
	Payments      payment.Repository
	Contributions capital.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the loan row first, then pass it in
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *loan.Loan) error) error
}
