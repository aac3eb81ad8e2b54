package loan

import (
	"testing"
	"time"

	"loan-ledger/internal/domain/borrower"
	domain "loan-ledger/internal/domain/loan"

	"github.com/shopspring/decimal"
)

func TestToDTO_FromDTO_RoundTrip(t *testing.T) {
	open := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	l := domain.Loan{
		ID:              11,
		AmountLoaned:    decimal.RequireFromString("1500.00"),
		AmountRemaining: decimal.RequireFromString("1200.25"),
		AmountDue:       decimal.RequireFromString("125.00"),
		APR:             decimal.RequireFromString("0.0575"),
		LoanTerm:        12,
		OpenDate:        open,
		DueDate:         open.AddDate(0, 1, 0),
		Active:          true,
		GoodStanding:    false,
		NickName:        "boat",
		Type:            domain.TypeAuto,
		Borrowers: []borrower.Borrower{
			{ID: 3, FirstName: "hazel", Email: "hazel@example.com", ActiveStatus: true},
			{ID: 8, FirstName: "customer"},
		},
	}

	back := FromDTO(ToDTO(l))

	if back.ID != l.ID || back.Type != l.Type || back.NickName != l.NickName || back.LoanTerm != l.LoanTerm {
		t.Fatalf("identity fields changed: %+v", back)
	}
	for name, pair := range map[string][2]decimal.Decimal{
		"amountLoaned":    {l.AmountLoaned, back.AmountLoaned},
		"amountRemaining": {l.AmountRemaining, back.AmountRemaining},
		"amountDue":       {l.AmountDue, back.AmountDue},
		"apr":             {l.APR, back.APR},
	} {
		if !pair[0].Equal(pair[1]) {
			t.Fatalf("%s: %s != %s", name, pair[0], pair[1])
		}
	}
	if !back.OpenDate.Equal(l.OpenDate) || !back.DueDate.Equal(l.DueDate) {
		t.Fatalf("dates changed: %v %v", back.OpenDate, back.DueDate)
	}
	if back.Active != l.Active || back.GoodStanding != l.GoodStanding {
		t.Fatalf("flags changed")
	}
	ids := back.BorrowerIDs()
	if len(ids) != 2 || ids[0] != 3 || ids[1] != 8 {
		t.Fatalf("borrower ids = %v", ids)
	}
	if back.Borrowers[0].Email != "hazel@example.com" {
		t.Fatalf("borrower profile lost: %+v", back.Borrowers[0])
	}
}

func TestToDTO_NoBorrowersGivesEmptyList(t *testing.T) {
	dto := ToDTO(domain.Loan{ID: 1})
	if dto.Users == nil || len(dto.Users) != 0 {
		t.Fatalf("users = %#v", dto.Users)
	}
}

func TestFromCreateInput_OnlyRequestFields(t *testing.T) {
	in := CreateLoanInput{
		LoanType:     domain.TypeStudent,
		AmountLoaned: decimal.NewFromInt(300),
		UsersIDs:     []uint64{1, 2},
		NickName:     "school",
	}
	l := FromCreateInput(in)

	if l.ID != 0 || len(l.Borrowers) != 0 {
		t.Fatalf("draft must have no id and no borrowers: %+v", l)
	}
	if l.Type != domain.TypeStudent || !l.AmountLoaned.Equal(in.AmountLoaned) || l.NickName != "school" {
		t.Fatalf("request fields not mapped: %+v", l)
	}
	if l.LoanTerm != 0 || !l.OpenDate.IsZero() || l.Active {
		t.Fatalf("non-request fields must stay zero: %+v", l)
	}
}
