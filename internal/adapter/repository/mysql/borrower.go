package mysql

import (
	"context"
	"errors"

	"loan-ledger/internal/domain/borrower"
	"loan-ledger/internal/domain/storage"

	"gorm.io/gorm"
)

// BorrowerRepository reads the users table; it is the borrower.Directory of this service.
type BorrowerRepository struct{ db *gorm.DB }

func NewBorrowerRepository(db *gorm.DB) *BorrowerRepository { return &BorrowerRepository{db: db} }

func (r *BorrowerRepository) FindByID(ctx context.Context, id uint64) (*borrower.Borrower, error) {
	var out borrower.Borrower
	res := r.db.WithContext(ctx).First(&out, id)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, &borrower.NotFoundError{ID: id}
	}
	if res.Error != nil {
		return nil, storage.Wrap("find borrower", res.Error)
	}
	return &out, nil
}
