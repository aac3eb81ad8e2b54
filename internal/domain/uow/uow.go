package uow

import (
	"context"

	"loan-ledger/internal/domain/borrower"
	"loan-ledger/internal/domain/loan"
)

// Repos are bound to the same transaction.
type Repos struct {
	Loans     loan.Repository
	Borrowers borrower.Directory
}

type UnitOfWork interface {
	// WithinTx commits when fn returns nil and rolls back otherwise.
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
