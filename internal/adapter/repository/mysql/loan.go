package mysql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	loanDomain "loan-ledger/internal/domain/loan"
	"loan-ledger/internal/domain/page"
	"loan-ledger/internal/domain/storage"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// sortColumns maps the sort names clients may send (wire names and column names)
// to loans columns. Anything else is rejected.
var sortColumns = map[string]string{
	"id":               "id",
	"amountloaned":     "amount_loaned",
	"amount_loaned":    "amount_loaned",
	"amountremaining":  "amount_remaining",
	"amount_remaining": "amount_remaining",
	"amountdue":        "amount_due",
	"amount_due":       "amount_due",
	"apr":              "apr",
	"loanterm":         "loan_term",
	"loan_term":        "loan_term",
	"opendate":         "open_date",
	"open_date":        "open_date",
	"duedate":          "due_date",
	"due_date":         "due_date",
	"active":           "active",
	"goodstanding":     "good_standing",
	"good_standing":    "good_standing",
	"nickname":         "nick_name",
	"nick_name":        "nick_name",
	"type":             "type",
}

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) FindPage(ctx context.Context, req page.Request) (page.Page[loanDomain.Loan], error) {
	return r.findPage(ctx, req, func(db *gorm.DB) *gorm.DB { return db })
}

func (r *LoanRepository) FindPageByBorrower(ctx context.Context, borrowerID uint64, req page.Request) (page.Page[loanDomain.Loan], error) {
	return r.findPage(ctx, req, byBorrower(borrowerID))
}

func (r *LoanRepository) FindAllByBorrower(ctx context.Context, borrowerID uint64) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	res := byBorrower(borrowerID)(r.db.WithContext(ctx).Model(&loanDomain.Loan{})).
		Select("loans.*").
		Preload("Borrowers", orderBorrowers).
		Order("loans.id").
		Find(&out)
	if res.Error != nil {
		return nil, storage.Wrap("find loans by borrower", res.Error)
	}
	return out, nil
}

func (r *LoanRepository) FindByID(ctx context.Context, id uint64) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).Preload("Borrowers", orderBorrowers).First(&out, id)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, &loanDomain.NotFoundError{ID: id}
	}
	if res.Error != nil {
		return nil, storage.Wrap("find loan", res.Error)
	}
	return &out, nil
}

// Save writes the loan and its loan_users links; borrower rows themselves are never written.
func (r *LoanRepository) Save(ctx context.Context, l *loanDomain.Loan) error {
	return storage.Wrap("save loan", r.db.WithContext(ctx).Omit("Borrowers.*").Save(l).Error)
}

func (r *LoanRepository) findPage(ctx context.Context, req page.Request, scope func(*gorm.DB) *gorm.DB) (page.Page[loanDomain.Loan], error) {
	if err := req.Validate(); err != nil {
		return page.Page[loanDomain.Loan]{}, err
	}
	order, err := orderBy(req.Sort)
	if err != nil {
		return page.Page[loanDomain.Loan]{}, err
	}

	var total int64
	if err := scope(r.db.WithContext(ctx).Model(&loanDomain.Loan{})).Count(&total).Error; err != nil {
		return page.Page[loanDomain.Loan]{}, storage.Wrap("count loans", err)
	}

	var out []loanDomain.Loan
	q := scope(r.db.WithContext(ctx).Model(&loanDomain.Loan{})).
		Select("loans.*").
		Preload("Borrowers", orderBorrowers)
	for _, c := range order {
		q = q.Order(c)
	}
	if err := q.Offset(req.Offset()).Limit(req.Size).Find(&out).Error; err != nil {
		return page.Page[loanDomain.Loan]{}, storage.Wrap("find loans", err)
	}
	return page.New(out, req, total), nil
}

// orderBy always ends with loans.id so equal sort keys page deterministically.
func orderBy(s page.Sort) ([]clause.OrderByColumn, error) {
	idCol := clause.OrderByColumn{Column: clause.Column{Table: "loans", Name: "id"}}
	field, dir, ok := s.By()
	if !ok {
		return []clause.OrderByColumn{idCol}, nil
	}
	col, known := sortColumns[strings.ToLower(field)]
	if !known {
		return nil, fmt.Errorf("%w: unknown sort field %q", page.ErrInvalidQuery, field)
	}
	if col == "id" {
		idCol.Desc = dir == page.Desc
		return []clause.OrderByColumn{idCol}, nil
	}
	return []clause.OrderByColumn{
		{Column: clause.Column{Table: "loans", Name: col}, Desc: dir == page.Desc},
		idCol,
	}, nil
}

func byBorrower(borrowerID uint64) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Joins("JOIN loan_users ON loan_users.loan_id = loans.id").
			Where("loan_users.user_id = ?", borrowerID)
	}
}

func orderBorrowers(db *gorm.DB) *gorm.DB { return db.Order("users.id") }
