package loan

import (
	"time"

	"loan-ledger/internal/domain/loan"

	"github.com/shopspring/decimal"
)

type CreateLoanInput struct {
	LoanType     loan.Type
	AmountLoaned decimal.Decimal
	UsersIDs     []uint64
	NickName     string
}

type BorrowerDTO struct {
	ID           uint64 `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	ActiveStatus bool   `json:"activeStatus"`
}

// LoanDTO is the read-only view of a persisted loan.
type LoanDTO struct {
	ID              uint64          `json:"id"`
	AmountLoaned    decimal.Decimal `json:"amountLoaned"`
	AmountRemaining decimal.Decimal `json:"amountRemaining"`
	AmountDue       decimal.Decimal `json:"amountDue"`
	APR             decimal.Decimal `json:"apr"`
	LoanTerm        int             `json:"loanTerm"`
	OpenDate        time.Time       `json:"openDate"`
	DueDate         time.Time       `json:"dueDate"`
	Active          bool            `json:"active"`
	GoodStanding    bool            `json:"goodStanding"`
	NickName        string          `json:"nickName"`
	Type            string          `json:"type"`
	Users           []BorrowerDTO   `json:"users"`
}
