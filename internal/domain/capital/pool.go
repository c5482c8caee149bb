package capital

import (
	"time"

	"tradex-backend/internal/domain/loan"
)

// Pool is the capital aggregate at a point in time. It is derived, never
// stored: total capital comes from contributions, loaned-out from the
// principal of loans that have not reached paid, and profit from settled
// loans. Available capital excludes collected interest; profit is not
// re-loaned automatically.
type Pool struct {
	TotalCapital float64 `json:"total_capital"`
	LoanedOut    float64 `json:"loaned_out"`
	Available    float64 `json:"available"`
	ProfitToDate float64 `json:"profit_to_date"`
}

// Derive builds the pool aggregate from contribution and loan snapshots.
// Loan statuses are re-derived with `today` rather than trusting stored values.
func Derive(contribs []Contribution, loans []loan.Loan, today time.Time) Pool {
	var p Pool
	for _, c := range contribs {
		p.TotalCapital += c.Amount
	}
	for i := range loans {
		l := &loans[i]
		if loan.DeriveStatus(l, today) == loan.StatusPaid {
			p.ProfitToDate += l.Collected - l.Principal
		} else {
			p.LoanedOut += l.Principal
		}
	}
	p.TotalCapital = loan.Round2(p.TotalCapital)
	p.LoanedOut = loan.Round2(p.LoanedOut)
	p.ProfitToDate = loan.Round2(p.ProfitToDate)
	p.Available = loan.Round2(p.TotalCapital - p.LoanedOut)
	return p
}

// Reserve atomically checks available >= amount and deducts it. A rejection
// leaves the pool untouched, so available can never go negative. Callers must
// run Reserve and the disbursement it guards inside one transaction.
func (p *Pool) Reserve(amount float64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if amount > p.Available {
		return ErrInsufficientCapital
	}
	p.Available = loan.Round2(p.Available - amount)
	p.LoanedOut = loan.Round2(p.LoanedOut + amount)
	return nil
}

// Release returns a fully repaid principal to the available balance.
func (p *Pool) Release(amount float64) {
	if amount <= 0 {
		return
	}
	p.LoanedOut = loan.Round2(p.LoanedOut - amount)
	p.Available = loan.Round2(p.Available + amount)
}
