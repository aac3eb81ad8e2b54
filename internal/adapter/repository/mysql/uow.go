package mysql

import (
	"context"
	"errors"

	"loan-ledger/internal/domain/borrower"
	"loan-ledger/internal/domain/loan"
	"loan-ledger/internal/domain/storage"
	"loan-ledger/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

// WithinTx keeps domain errors from fn as they are; begin, commit and other
// untyped failures come back as storage faults.
func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := uow.Repos{
			Loans:     &LoanRepository{db: tx},
			Borrowers: &BorrowerRepository{db: tx},
		}
		return fn(r)
	})
	if err == nil || errors.Is(err, loan.ErrNotFound) || errors.Is(err, borrower.ErrNotFound) || errors.Is(err, storage.ErrFault) {
		return err
	}
	return storage.Wrap("commit loan", err)
}
