package borrowermock

import (
	"context"

	"loan-ledger/internal/domain/borrower"
)

var _ borrower.Directory = (*Directory)(nil)

// Directory resolves ids from Known unless FindByIDFn is set.
type Directory struct {
	Known      map[uint64]borrower.Borrower
	FindByIDFn func(ctx context.Context, id uint64) (*borrower.Borrower, error)

	Lookups []uint64
}

// With returns a Directory that knows the given borrowers.
func With(bs ...borrower.Borrower) *Directory {
	d := &Directory{Known: make(map[uint64]borrower.Borrower, len(bs))}
	for _, b := range bs {
		d.Known[b.ID] = b
	}
	return d
}

func (d *Directory) FindByID(ctx context.Context, id uint64) (*borrower.Borrower, error) {
	d.Lookups = append(d.Lookups, id)
	if d.FindByIDFn != nil {
		return d.FindByIDFn(ctx, id)
	}
	b, ok := d.Known[id]
	if !ok {
		return nil, &borrower.NotFoundError{ID: id}
	}
	return &b, nil
}
