// Package memstore provides an in-memory implementation of every repository
// plus the unit-of-work, so usecase tests can run full flows without a DB.
// It is not transactional: operations apply immediately, which is fine for
// tests because usecases validate before mutating.
package memstore

import (
	"context"

	"tradex-backend/internal/domain/capital"
	"tradex-backend/internal/domain/loan"
	"tradex-backend/internal/domain/payment"
	"tradex-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type Store struct {
	loans    []loan.Loan
	payments []payment.Payment
	contribs []capital.Contribution
	nextID   uint64
}

func New() *Store { return &Store{nextID: 1} }

var _ uow.UnitOfWork = (*Store)(nil)

func (s *Store) Repos() uow.Repos {
	return uow.Repos{
		Loans:         &LoanRepo{s: s},
		Payments:      &PaymentRepo{s: s},
		Contributions: &ContribRepo{s: s},
	}
}

func (s *Store) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return fn(s.Repos())
}

func (s *Store) WithinLoanTx(ctx context.Context, loanID string, fn func(r uow.Repos, l *loan.Loan) error) error {
	r := s.Repos()
	l, err := r.Loans.GetByLoanIDForUpdate(ctx, loanID)
	if err != nil {
		return err
	}
	return fn(r, l)
}

// SeedContribution drops a contribution straight into the store.
func (s *Store) SeedContribution(c capital.Contribution) {
	c.ID = s.nextID
	s.nextID++
	s.contribs = append(s.contribs, c)
}

// Loans returns a copy of the stored loans, in insertion order.
func (s *Store) Loans() []loan.Loan { return append([]loan.Loan(nil), s.loans...) }

// Payments returns a copy of the stored payments, in insertion order.
func (s *Store) Payments() []payment.Payment {
	return append([]payment.Payment(nil), s.payments...)
}

// Contributions returns a copy of the stored contributions.
func (s *Store) Contributions() []capital.Contribution {
	return append([]capital.Contribution(nil), s.contribs...)
}

// ---- loan repository ----

type LoanRepo struct{ s *Store }

func (r *LoanRepo) Create(ctx context.Context, l *loan.Loan) error {
	l.ID = r.s.nextID
	r.s.nextID++
	r.s.loans = append(r.s.loans, *l)
	return nil
}

func (r *LoanRepo) GetByLoanID(ctx context.Context, loanID string) (*loan.Loan, error) {
	for i := range r.s.loans {
		if r.s.loans[i].LoanID == loanID {
			out := r.s.loans[i]
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *LoanRepo) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*loan.Loan, error) {
	return r.GetByLoanID(ctx, loanID)
}

func (r *LoanRepo) Save(ctx context.Context, l *loan.Loan) error {
	for i := range r.s.loans {
		if r.s.loans[i].LoanID == l.LoanID {
			r.s.loans[i] = *l
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *LoanRepo) List(ctx context.Context, f loan.Filter) ([]loan.Loan, error) {
	var out []loan.Loan
	for _, l := range r.s.loans {
		if f.Status != "" && l.Status != f.Status {
			continue
		}
		if f.Customer != "" && l.Customer != f.Customer {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

// ---- payment repository ----

type PaymentRepo struct{ s *Store }

func (r *PaymentRepo) Create(ctx context.Context, p *payment.Payment) error {
	p.ID = r.s.nextID
	r.s.nextID++
	r.s.payments = append(r.s.payments, *p)
	return nil
}

func (r *PaymentRepo) GetByPaymentID(ctx context.Context, paymentID string) (*payment.Payment, error) {
	for i := range r.s.payments {
		if r.s.payments[i].PaymentID == paymentID {
			out := r.s.payments[i]
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *PaymentRepo) GetByPaymentIDForUpdate(ctx context.Context, paymentID string) (*payment.Payment, error) {
	return r.GetByPaymentID(ctx, paymentID)
}

func (r *PaymentRepo) Save(ctx context.Context, p *payment.Payment) error {
	for i := range r.s.payments {
		if r.s.payments[i].PaymentID == p.PaymentID {
			r.s.payments[i] = *p
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *PaymentRepo) Delete(ctx context.Context, p *payment.Payment) error {
	for i := range r.s.payments {
		if r.s.payments[i].PaymentID == p.PaymentID {
			r.s.payments = append(r.s.payments[:i], r.s.payments[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *PaymentRepo) ListByLoanID(ctx context.Context, loanID string) ([]payment.Payment, error) {
	var out []payment.Payment
	for _, p := range r.s.payments {
		if p.LoanID == loanID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *PaymentRepo) List(ctx context.Context) ([]payment.Payment, error) {
	return r.s.Payments(), nil
}

// ---- contribution repository ----

type ContribRepo struct{ s *Store }

func (r *ContribRepo) Create(ctx context.Context, c *capital.Contribution) error {
	c.ID = r.s.nextID
	r.s.nextID++
	r.s.contribs = append(r.s.contribs, *c)
	return nil
}

func (r *ContribRepo) List(ctx context.Context) ([]capital.Contribution, error) {
	return r.s.Contributions(), nil
}
