package loan

import (
	"context"
	"errors"
	"time"

	domainCapital "tradex-backend/internal/domain/capital"
	domainLoan "tradex-backend/internal/domain/loan"
	domainPayment "tradex-backend/internal/domain/payment"
	"tradex-backend/internal/domain/uow"
	"tradex-backend/pkg/id"

	"gorm.io/gorm"
)

// Usecase is the loan ledger: it disburses loans against the capital pool,
// applies payments and keeps the derived loan state consistent. Every mutation
// runs inside a single unit-of-work transaction, so a failure leaves no
// partial state behind.
type Usecase struct {
	loans domainLoan.Repository
	uow   uow.UnitOfWork
}

func NewUsecase(loans domainLoan.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{loans: loans, uow: tx}
}

// Create disburses a new loan. The principal is reserved from the capital
// pool inside the same transaction that persists the loan, so two
// disbursements racing for the last of the pool cannot both succeed.
func (u *Usecase) Create(ctx context.Context, in CreateLoanInput) (*LoanDTO, error) {
	if in.Customer == "" {
		return nil, domainLoan.ErrInvalidLoanParams
	}
	principal := domainLoan.Round2(in.Principal)
	sched, err := domainLoan.ComputeSchedule(principal, in.Rate, in.Periods, in.Frequency, in.Mode, in.StartDate)
	if err != nil {
		return nil, err
	}

	var dto *LoanDTO
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		contribs, err := r.Contributions.List(ctx)
		if err != nil {
			return err
		}
		existing, err := r.Loans.List(ctx, domainLoan.Filter{})
		if err != nil {
			return err
		}
		pool := domainCapital.Derive(contribs, existing, in.StartDate)
		if err := pool.Reserve(principal); err != nil {
			return err
		}

		l := &domainLoan.Loan{
			LoanID:          id.NewID32(),
			Customer:        in.Customer,
			Principal:       principal,
			Rate:            in.Rate,
			Mode:            in.Mode,
			Frequency:       in.Frequency,
			Periods:         in.Periods,
			StartDate:       domainLoan.DateOnly(in.StartDate),
			DueDate:         sched.DueDate,
			Interest:        sched.Interest,
			TotalDue:        sched.TotalDue,
			Status:          domainLoan.StatusActive,
			StatusUpdatedAt: time.Now().UTC(),
		}
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}
		dto = toLoanDTO(l)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// RecordPayment appends a payment and re-derives the loan's collected amount
// and status from the cumulative payment list. When the payment settles the
// loan, the principal stops counting as loaned-out, which returns it to the
// pool's available balance on the next derivation.
func (u *Usecase) RecordPayment(ctx context.Context, in RecordPaymentInput, today time.Time) (*PaymentDTO, error) {
	if in.Amount <= 0 {
		return nil, domainPayment.ErrInvalidAmount
	}

	var dto *PaymentDTO
	err := u.uow.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *domainLoan.Loan) error {
		payDate := domainLoan.DateOnly(in.Date)
		if payDate.Before(domainLoan.DateOnly(l.StartDate)) {
			return domainLoan.ErrInvalidDate
		}
		if l.Collected >= l.TotalDue {
			return domainLoan.ErrLoanSettled
		}
		amount := domainLoan.Round2(in.Amount)
		if amount > l.Balance() {
			return domainPayment.ErrExceedsBalance
		}

		p := &domainPayment.Payment{
			PaymentID:    id.NewID32(),
			LoanID:       l.LoanID,
			Customer:     l.Customer,
			Amount:       amount,
			PaymentDate:  payDate,
			RegisteredBy: in.RegisteredBy,
			Notes:        in.Notes,
		}
		if err := r.Payments.Create(ctx, p); err != nil {
			return err
		}

		if err := u.rederive(ctx, r, l, today); err != nil {
			return err
		}
		dto = &PaymentDTO{
			PaymentID:    p.PaymentID,
			LoanID:       p.LoanID,
			Customer:     p.Customer,
			Amount:       p.Amount,
			PaymentDate:  p.PaymentDate,
			RegisteredBy: p.RegisteredBy,
			Notes:        p.Notes,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainLoan.ErrNotFound
		}
		return nil, err
	}
	return dto, nil
}

// EditPaymentDate corrects a payment's date after the fact. Amounts and loan
// status are untouched; only timeline reporting ("collected today" buckets)
// moves with the payment.
func (u *Usecase) EditPaymentDate(ctx context.Context, paymentID string, newDate time.Time) error {
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := r.Payments.GetByPaymentIDForUpdate(ctx, paymentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainPayment.ErrNotFound
			}
			return err
		}
		l, err := r.Loans.GetByLoanID(ctx, p.LoanID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainLoan.ErrNotFound
			}
			return err
		}
		d := domainLoan.DateOnly(newDate)
		if d.Before(domainLoan.DateOnly(l.StartDate)) {
			return domainLoan.ErrInvalidDate
		}
		p.PaymentDate = d
		return r.Payments.Save(ctx, p)
	})
}

// DeletePayment removes a payment (admin correction path) and re-derives the
// loan's collected amount and status. Deleting a payment from a settled loan
// can move it back out of paid; correction trumps terminality here.
func (u *Usecase) DeletePayment(ctx context.Context, paymentID string, today time.Time) error {
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := r.Payments.GetByPaymentIDForUpdate(ctx, paymentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainPayment.ErrNotFound
			}
			return err
		}
		l, err := r.Loans.GetByLoanIDForUpdate(ctx, p.LoanID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainLoan.ErrNotFound
			}
			return err
		}
		if err := r.Payments.Delete(ctx, p); err != nil {
			return err
		}
		return u.rederive(ctx, r, l, today)
	})
}

// rederive recomputes the loan's collected amount from its remaining payments
// and updates the derived status. Must run inside the caller's transaction.
func (u *Usecase) rederive(ctx context.Context, r uow.Repos, l *domainLoan.Loan, today time.Time) error {
	ps, err := r.Payments.ListByLoanID(ctx, l.LoanID)
	if err != nil {
		return err
	}
	l.Collected = domainLoan.Round2(domainPayment.Sum(ps))
	if st := domainLoan.DeriveStatus(l, today); st != l.Status {
		l.Status = st
		l.StatusUpdatedAt = time.Now().UTC()
	}
	return r.Loans.Save(ctx, l)
}

// RecomputeStatus lazily re-derives a loan's status for `today`, persisting
// only when the stored value is stale. Calling it twice with the same day is
// a no-op the second time.
func (u *Usecase) RecomputeStatus(ctx context.Context, loanID string, today time.Time) (domainLoan.Status, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domainLoan.ErrNotFound
		}
		return "", err
	}
	st, err := u.refresh(ctx, l, today)
	if err != nil {
		return "", err
	}
	return st, nil
}

// Get returns a single loan snapshot with its status refreshed for `today`.
func (u *Usecase) Get(ctx context.Context, loanID string, today time.Time) (*LoanDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainLoan.ErrNotFound
		}
		return nil, err
	}
	if _, err := u.refresh(ctx, l, today); err != nil {
		return nil, err
	}
	return toLoanDTO(l), nil
}

// List returns loan snapshots with statuses refreshed for `today`. The status
// filter applies after re-derivation, so an "overdue" query catches loans that
// only crossed their due date since the last write.
func (u *Usecase) List(ctx context.Context, f ListFilter, today time.Time) ([]LoanDTO, error) {
	loans, err := u.loans.List(ctx, domainLoan.Filter{Customer: f.Customer})
	if err != nil {
		return nil, err
	}
	out := make([]LoanDTO, 0, len(loans))
	for i := range loans {
		l := &loans[i]
		if _, err := u.refresh(ctx, l, today); err != nil {
			return nil, err
		}
		if f.Status != "" && l.Status != f.Status {
			continue
		}
		out = append(out, *toLoanDTO(l))
	}
	return out, nil
}

func (u *Usecase) refresh(ctx context.Context, l *domainLoan.Loan, today time.Time) (domainLoan.Status, error) {
	st := domainLoan.DeriveStatus(l, today)
	if st == l.Status {
		return st, nil
	}
	l.Status = st
	l.StatusUpdatedAt = time.Now().UTC()
	if err := u.loans.Save(ctx, l); err != nil {
		return "", err
	}
	return st, nil
}
