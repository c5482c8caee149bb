package capital

import (
	"context"
	"time"

	domainCapital "tradex-backend/internal/domain/capital"
	domainLoan "tradex-backend/internal/domain/loan"
	"tradex-backend/pkg/id"
)

// Usecase manages partner capital. The pool itself is derived on demand from
// contributions and loans; the only stored state here is the contribution log.
type Usecase struct {
	contribs domainCapital.Repository
	loans    domainLoan.Repository
}

func NewUsecase(contribs domainCapital.Repository, loans domainLoan.Repository) *Usecase {
	return &Usecase{contribs: contribs, loans: loans}
}

type ContributeInput struct {
	PartnerRef string
	Amount     float64
	Date       time.Time
}

type ContributionDTO struct {
	ContributionID string    `json:"contribution_id"`
	PartnerRef     string    `json:"partner_ref"`
	Amount         float64   `json:"amount"`
	ContributedAt  time.Time `json:"contributed_at"`
}

// Contribute records a partner's deposit, growing both total and available
// capital on the next derivation.
func (u *Usecase) Contribute(ctx context.Context, in ContributeInput) (*ContributionDTO, error) {
	if in.Amount <= 0 {
		return nil, domainCapital.ErrInvalidAmount
	}
	if in.PartnerRef == "" {
		return nil, domainCapital.ErrInvalidAmount
	}
	c := &domainCapital.Contribution{
		ContributionID: id.NewID32(),
		PartnerRef:     in.PartnerRef,
		Amount:         domainLoan.Round2(in.Amount),
		ContributedAt:  domainLoan.DateOnly(in.Date),
	}
	if err := u.contribs.Create(ctx, c); err != nil {
		return nil, err
	}
	return &ContributionDTO{
		ContributionID: c.ContributionID,
		PartnerRef:     c.PartnerRef,
		Amount:         c.Amount,
		ContributedAt:  c.ContributedAt,
	}, nil
}

// Snapshot derives the read-only pool aggregate for `today`.
func (u *Usecase) Snapshot(ctx context.Context, today time.Time) (domainCapital.Pool, error) {
	contribs, err := u.contribs.List(ctx)
	if err != nil {
		return domainCapital.Pool{}, err
	}
	loans, err := u.loans.List(ctx, domainLoan.Filter{})
	if err != nil {
		return domainCapital.Pool{}, err
	}
	return domainCapital.Derive(contribs, loans, today), nil
}

// ListContributions returns the contribution log, newest-first ordering left
// to the repository.
func (u *Usecase) ListContributions(ctx context.Context) ([]ContributionDTO, error) {
	contribs, err := u.contribs.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ContributionDTO, 0, len(contribs))
	for _, c := range contribs {
		out = append(out, ContributionDTO{
			ContributionID: c.ContributionID,
			PartnerRef:     c.PartnerRef,
			Amount:         c.Amount,
			ContributedAt:  c.ContributedAt,
		})
	}
	return out, nil
}
