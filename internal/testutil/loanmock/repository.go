package loanmock

import (
	"context"
	"errors"

	domain "loan-ledger/internal/domain/loan"
	"loan-ledger/internal/domain/page"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("loanmock: method not implemented")

// Repo is a function-backed mock that satisfies domain.Repository.
// Unset functions return errUnimplemented, except Save which succeeds.
type Repo struct {
	FindPageFn           func(ctx context.Context, req page.Request) (page.Page[domain.Loan], error)
	FindPageByBorrowerFn func(ctx context.Context, borrowerID uint64, req page.Request) (page.Page[domain.Loan], error)
	FindAllByBorrowerFn  func(ctx context.Context, borrowerID uint64) ([]domain.Loan, error)
	FindByIDFn           func(ctx context.Context, id uint64) (*domain.Loan, error)
	SaveFn               func(ctx context.Context, l *domain.Loan) error

	Calls int
}

func (m *Repo) FindPage(ctx context.Context, req page.Request) (page.Page[domain.Loan], error) {
	m.Calls++
	if m.FindPageFn != nil {
		return m.FindPageFn(ctx, req)
	}
	return page.Page[domain.Loan]{}, errUnimplemented
}

func (m *Repo) FindPageByBorrower(ctx context.Context, borrowerID uint64, req page.Request) (page.Page[domain.Loan], error) {
	m.Calls++
	if m.FindPageByBorrowerFn != nil {
		return m.FindPageByBorrowerFn(ctx, borrowerID, req)
	}
	return page.Page[domain.Loan]{}, errUnimplemented
}

func (m *Repo) FindAllByBorrower(ctx context.Context, borrowerID uint64) ([]domain.Loan, error) {
	m.Calls++
	if m.FindAllByBorrowerFn != nil {
		return m.FindAllByBorrowerFn(ctx, borrowerID)
	}
	return nil, errUnimplemented
}

func (m *Repo) FindByID(ctx context.Context, id uint64) (*domain.Loan, error) {
	m.Calls++
	if m.FindByIDFn != nil {
		return m.FindByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	m.Calls++
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}
