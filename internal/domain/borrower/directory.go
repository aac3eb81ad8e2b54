package borrower

import "context"

type Directory interface {
	// FindByID returns a *NotFoundError for unknown ids.
	FindByID(ctx context.Context, id uint64) (*Borrower, error)
}
