package report

import (
	"context"
	"time"

	domainCapital "tradex-backend/internal/domain/capital"
	domainLoan "tradex-backend/internal/domain/loan"
	domainPayment "tradex-backend/internal/domain/payment"
)

// Usecase derives dashboard KPIs and export snapshots. It never mutates
// business state beyond persisting lazily re-derived loan statuses.
type Usecase struct {
	loans    domainLoan.Repository
	payments domainPayment.Repository
	contribs domainCapital.Repository
}

func NewUsecase(loans domainLoan.Repository, payments domainPayment.Repository, contribs domainCapital.Repository) *Usecase {
	return &Usecase{loans: loans, payments: payments, contribs: contribs}
}

type KPIs struct {
	TotalLoaned      float64        `json:"total_loaned"`
	TotalCollected   float64        `json:"total_collected"`
	CollectedToday   float64        `json:"collected_today"`
	ProjectedProfit  float64        `json:"projected_profit"`
	AvailableCapital float64        `json:"available_capital"`
	StatusCounts     map[string]int `json:"status_counts"`
}

// Kpis aggregates the dashboard figures for `today`. Every loan's status is
// re-derived first so the active/overdue buckets are current.
func (u *Usecase) Kpis(ctx context.Context, today time.Time) (*KPIs, error) {
	loans, err := u.refreshLoans(ctx, today)
	if err != nil {
		return nil, err
	}
	payments, err := u.payments.List(ctx)
	if err != nil {
		return nil, err
	}
	contribs, err := u.contribs.List(ctx)
	if err != nil {
		return nil, err
	}

	k := &KPIs{StatusCounts: map[string]int{
		string(domainLoan.StatusActive):  0,
		string(domainLoan.StatusPaid):    0,
		string(domainLoan.StatusOverdue): 0,
	}}
	for i := range loans {
		l := &loans[i]
		k.StatusCounts[string(l.Status)]++
		if l.Status == domainLoan.StatusPaid {
			continue
		}
		k.TotalLoaned += l.Principal
		k.ProjectedProfit += l.TotalDue - l.Collected
	}
	for _, p := range payments {
		k.TotalCollected += p.Amount
		if domainLoan.SameDay(p.PaymentDate, today) {
			k.CollectedToday += p.Amount
		}
	}
	k.TotalLoaned = domainLoan.Round2(k.TotalLoaned)
	k.TotalCollected = domainLoan.Round2(k.TotalCollected)
	k.CollectedToday = domainLoan.Round2(k.CollectedToday)
	k.ProjectedProfit = domainLoan.Round2(k.ProjectedProfit)
	k.AvailableCapital = domainCapital.Derive(contribs, loans, today).Available
	return k, nil
}

// Export returns status-refreshed loan and payment snapshots for the CSV
// export; iteration over the returned slices is complete and stable.
func (u *Usecase) Export(ctx context.Context, today time.Time) ([]domainLoan.Loan, []domainPayment.Payment, error) {
	loans, err := u.refreshLoans(ctx, today)
	if err != nil {
		return nil, nil, err
	}
	payments, err := u.payments.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	return loans, payments, nil
}

func (u *Usecase) refreshLoans(ctx context.Context, today time.Time) ([]domainLoan.Loan, error) {
	loans, err := u.loans.List(ctx, domainLoan.Filter{})
	if err != nil {
		return nil, err
	}
	for i := range loans {
		l := &loans[i]
		st := domainLoan.DeriveStatus(l, today)
		if st == l.Status {
			continue
		}
		l.Status = st
		l.StatusUpdatedAt = time.Now().UTC()
		if err := u.loans.Save(ctx, l); err != nil {
			return nil, err
		}
	}
	return loans, nil
}
