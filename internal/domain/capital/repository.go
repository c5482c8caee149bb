package capital

import "context"

type Repository interface {
	Create(ctx context.Context, c *Contribution) error
	List(ctx context.Context) ([]Contribution, error)
}
