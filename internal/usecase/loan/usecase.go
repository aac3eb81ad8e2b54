package loan

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"loan-ledger/internal/domain/borrower"
	"loan-ledger/internal/domain/loan"
	"loan-ledger/internal/domain/page"
	"loan-ledger/internal/domain/uow"
)

// ViewCache is an optional read-through cache for GetByID. Get returns (nil, nil) on a miss.
type ViewCache interface {
	Get(ctx context.Context, id uint64) (*LoanDTO, error)
	Set(ctx context.Context, dto *LoanDTO) error
}

type Usecase struct {
	repo      loan.Repository
	borrowers borrower.Directory
	uow       uow.UnitOfWork
	cache     ViewCache
	log       *slog.Logger
	now       func() time.Time
}

type Option func(*Usecase)

func WithCache(c ViewCache) Option { return func(u *Usecase) { u.cache = c } }

func WithLogger(l *slog.Logger) Option { return func(u *Usecase) { u.log = l } }

// WithClock overrides the source of "today" used by ApplyDefaults.
func WithClock(now func() time.Time) Option { return func(u *Usecase) { u.now = now } }

// NewUsecase: loans and borrowers serve reads, tx serves loan creation.
func NewUsecase(loans loan.Repository, borrowers borrower.Directory, tx uow.UnitOfWork, opts ...Option) *Usecase {
	u := &Usecase{
		repo:      loans,
		borrowers: borrowers,
		uow:       tx,
		log:       slog.Default(),
		now:       func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *Usecase) ListAll(ctx context.Context, req page.Request) (page.Page[LoanDTO], error) {
	u.logPageRequest(ctx, "list loans", req)
	p, err := u.repo.FindPage(ctx, req)
	if err != nil {
		return page.Page[LoanDTO]{}, u.fail(ctx, "list loans", err)
	}
	return page.Map(p, ToDTO), nil
}

// ListByBorrower resolves the borrower before touching any loan data.
func (u *Usecase) ListByBorrower(ctx context.Context, borrowerID uint64, req page.Request) (page.Page[LoanDTO], error) {
	b, err := u.borrowers.FindByID(ctx, borrowerID)
	if err != nil {
		return page.Page[LoanDTO]{}, u.fail(ctx, "list borrower loans", err)
	}
	return u.ListForBorrower(ctx, *b, req)
}

// ListForBorrower trusts b as already resolved and queries by its id directly.
func (u *Usecase) ListForBorrower(ctx context.Context, b borrower.Borrower, req page.Request) (page.Page[LoanDTO], error) {
	u.logPageRequest(ctx, "list borrower loans", req, "borrower_id", b.ID)
	p, err := u.repo.FindPageByBorrower(ctx, b.ID, req)
	if err != nil {
		return page.Page[LoanDTO]{}, u.fail(ctx, "list borrower loans", err)
	}
	return page.Map(p, ToDTO), nil
}

func (u *Usecase) GetByBorrower(ctx context.Context, borrowerID uint64) ([]LoanDTO, error) {
	u.log.InfoContext(ctx, "get borrower loans", "borrower_id", borrowerID)
	if _, err := u.borrowers.FindByID(ctx, borrowerID); err != nil {
		return nil, u.fail(ctx, "get borrower loans", err)
	}
	loans, err := u.repo.FindAllByBorrower(ctx, borrowerID)
	if err != nil {
		return nil, u.fail(ctx, "get borrower loans", err)
	}
	out := make([]LoanDTO, 0, len(loans))
	for _, l := range loans {
		out = append(out, ToDTO(l))
	}
	return out, nil
}

func (u *Usecase) GetByID(ctx context.Context, loanID uint64) (*LoanDTO, error) {
	u.log.InfoContext(ctx, "get loan", "loan_id", loanID)
	if u.cache != nil {
		dto, err := u.cache.Get(ctx, loanID)
		if err != nil {
			u.log.WarnContext(ctx, "loan cache read failed", "loan_id", loanID, "error", err)
		} else if dto != nil {
			return dto, nil
		}
	}

	l, err := u.repo.FindByID(ctx, loanID)
	if err != nil {
		return nil, u.fail(ctx, "get loan", err)
	}
	dto := ToDTO(*l)
	if u.cache != nil {
		if err := u.cache.Set(ctx, &dto); err != nil {
			u.log.WarnContext(ctx, "loan cache write failed", "loan_id", loanID, "error", err)
		}
	}
	return &dto, nil
}

// Create originates a loan. Borrower resolution and the insert share one
// transaction: an unknown borrower id aborts before anything is written.
func (u *Usecase) Create(ctx context.Context, in CreateLoanInput) error {
	u.log.InfoContext(ctx, "create loan", "type", in.LoanType, "borrowers", len(in.UsersIDs))
	draft := FromCreateInput(in)

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		borrowers, err := resolveBorrowers(ctx, r.Borrowers, in.UsersIDs)
		if err != nil {
			return err
		}
		draft.Borrowers = borrowers

		l := ApplyDefaults(draft, u.now())
		if err := r.Loans.Save(ctx, &l); err != nil {
			return err
		}
		u.log.InfoContext(ctx, "loan created", "loan_id", l.ID, "amount_loaned", l.AmountLoaned.String())
		return nil
	})
	if err != nil {
		return u.fail(ctx, "create loan", err)
	}
	return nil
}

// resolveBorrowers looks ids up in order and stops at the first unknown one.
// Repeated ids are resolved once.
func resolveBorrowers(ctx context.Context, dir borrower.Directory, ids []uint64) ([]borrower.Borrower, error) {
	out := make([]borrower.Borrower, 0, len(ids))
	seen := make(map[uint64]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		b, err := dir.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		seen[id] = struct{}{}
		out = append(out, *b)
	}
	return out, nil
}

func (u *Usecase) logPageRequest(ctx context.Context, op string, req page.Request, attrs ...any) {
	attrs = append(attrs, "page", req.Number, "size", req.Size)
	if field, dir, ok := req.Sort.By(); ok {
		attrs = append(attrs, "sort", field, "direction", dir.String())
	} else {
		attrs = append(attrs, "sort", "none")
	}
	u.log.InfoContext(ctx, op, attrs...)
}

func (u *Usecase) fail(ctx context.Context, op string, err error) error {
	switch {
	case errors.Is(err, loan.ErrNotFound), errors.Is(err, borrower.ErrNotFound), errors.Is(err, page.ErrInvalidQuery):
		u.log.WarnContext(ctx, op+" rejected", "error", err)
	default:
		u.log.ErrorContext(ctx, op+" failed", "error", err)
	}
	return err
}
