package loan

import (
	"context"

	"loan-ledger/internal/domain/page"
)

type Repository interface {
	// Paged lookups fail with page.ErrInvalidQuery for bad bounds or sort fields.
	FindPage(ctx context.Context, req page.Request) (page.Page[Loan], error)
	FindPageByBorrower(ctx context.Context, borrowerID uint64, req page.Request) (page.Page[Loan], error)
	FindAllByBorrower(ctx context.Context, borrowerID uint64) ([]Loan, error)

	// FindByID returns a *NotFoundError when the loan does not exist.
	FindByID(ctx context.Context, id uint64) (*Loan, error)

	// Save inserts (id == 0) or updates the loan and its borrower links.
	Save(ctx context.Context, l *Loan) error
}
