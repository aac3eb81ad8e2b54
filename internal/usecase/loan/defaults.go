package loan

import (
	"time"

	"loan-ledger/internal/domain/loan"

	"github.com/shopspring/decimal"
)

// Baseline applied to new loans.
var DefaultAmountLoaned = decimal.NewFromInt(1000)

const (
	DefaultLoanTerm            = 12 // months
	DefaultDueDateOffsetMonths = 1
)

// ApplyDefaults fills every zero-valued setting of l and returns the result.
// Fields already set are left alone, so applying it twice changes nothing.
func ApplyDefaults(l loan.Loan, today time.Time) loan.Loan {
	if l.AmountLoaned.IsZero() {
		l.AmountLoaned = DefaultAmountLoaned
	}
	if l.AmountRemaining.IsZero() {
		l.AmountRemaining = l.AmountLoaned
	}
	if l.LoanTerm == 0 {
		l.LoanTerm = DefaultLoanTerm
	}
	if l.AmountDue.IsZero() {
		l.AmountDue = l.AmountRemaining.Div(decimal.NewFromInt(int64(l.LoanTerm))).Round(2)
	}
	if l.OpenDate.IsZero() {
		l.OpenDate = dateOf(today)
	}
	if l.DueDate.IsZero() {
		l.DueDate = l.OpenDate.AddDate(0, DefaultDueDateOffsetMonths, 0)
	}
	if l.ID == 0 {
		l.Active = true
		l.GoodStanding = true
	}
	return l
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
