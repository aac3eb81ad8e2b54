package loan

import (
	"errors"
	"fmt"
	"time"

	"loan-ledger/internal/domain/borrower"

	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("loan not found")

type NotFoundError struct{ ID uint64 }

func (e *NotFoundError) Error() string { return fmt.Sprintf("loan %d not found", e.ID) }

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

type Type string

const (
	TypePersonal Type = "PERSONAL"
	TypeAuto     Type = "AUTO"
	TypeHome     Type = "HOME"
	TypeStudent  Type = "STUDENT"
	TypeBusiness Type = "BUSINESS"
)

var Types = []Type{TypePersonal, TypeAuto, TypeHome, TypeStudent, TypeBusiness}

func (t Type) Valid() bool {
	for _, v := range Types {
		if t == v {
			return true
		}
	}
	return false
}

// Table: loans, with borrowers linked through loan_users.
type Loan struct {
	ID              uint64              `gorm:"column:id;primaryKey;autoIncrement"`
	AmountLoaned    decimal.Decimal     `gorm:"column:amount_loaned;type:decimal(18,2);not null"`
	AmountRemaining decimal.Decimal     `gorm:"column:amount_remaining;type:decimal(18,2);not null"`
	AmountDue       decimal.Decimal     `gorm:"column:amount_due;type:decimal(18,2);not null"`
	APR             decimal.Decimal     `gorm:"column:apr;type:decimal(6,4);not null"`
	LoanTerm        int                 `gorm:"column:loan_term;not null"`
	OpenDate        time.Time           `gorm:"column:open_date;type:date;index"`
	DueDate         time.Time           `gorm:"column:due_date;type:date"`
	Active          bool                `gorm:"column:active"`
	GoodStanding    bool                `gorm:"column:good_standing"`
	NickName        string              `gorm:"column:nick_name;size:20;not null"`
	Type            Type                `gorm:"column:type;size:16;not null"`
	Borrowers       []borrower.Borrower `gorm:"many2many:loan_users;joinForeignKey:LoanID;joinReferences:UserID"`
	CreatedAt       time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}

func (Loan) TableName() string { return "loans" }

func (l *Loan) BorrowerIDs() []uint64 {
	out := make([]uint64, 0, len(l.Borrowers))
	for _, b := range l.Borrowers {
		out = append(out, b.ID)
	}
	return out
}
