package loan

import (
	"loan-ledger/internal/domain/borrower"
	"loan-ledger/internal/domain/loan"
)

func ToDTO(l loan.Loan) LoanDTO {
	users := make([]BorrowerDTO, 0, len(l.Borrowers))
	for _, b := range l.Borrowers {
		users = append(users, BorrowerDTO{
			ID:           b.ID,
			FirstName:    b.FirstName,
			LastName:     b.LastName,
			Email:        b.Email,
			ActiveStatus: b.ActiveStatus,
		})
	}
	return LoanDTO{
		ID:              l.ID,
		AmountLoaned:    l.AmountLoaned,
		AmountRemaining: l.AmountRemaining,
		AmountDue:       l.AmountDue,
		APR:             l.APR,
		LoanTerm:        l.LoanTerm,
		OpenDate:        l.OpenDate,
		DueDate:         l.DueDate,
		Active:          l.Active,
		GoodStanding:    l.GoodStanding,
		NickName:        l.NickName,
		Type:            string(l.Type),
		Users:           users,
	}
}

// FromDTO is the inverse of ToDTO.
func FromDTO(d LoanDTO) loan.Loan {
	borrowers := make([]borrower.Borrower, 0, len(d.Users))
	for _, u := range d.Users {
		borrowers = append(borrowers, borrower.Borrower{
			ID:           u.ID,
			FirstName:    u.FirstName,
			LastName:     u.LastName,
			Email:        u.Email,
			ActiveStatus: u.ActiveStatus,
		})
	}
	return loan.Loan{
		ID:              d.ID,
		AmountLoaned:    d.AmountLoaned,
		AmountRemaining: d.AmountRemaining,
		AmountDue:       d.AmountDue,
		APR:             d.APR,
		LoanTerm:        d.LoanTerm,
		OpenDate:        d.OpenDate,
		DueDate:         d.DueDate,
		Active:          d.Active,
		GoodStanding:    d.GoodStanding,
		NickName:        d.NickName,
		Type:            loan.Type(d.Type),
		Borrowers:       borrowers,
	}
}

// FromCreateInput builds a draft loan from the request fields only: no id, no
// borrowers, everything else left at its zero value.
func FromCreateInput(in CreateLoanInput) loan.Loan {
	return loan.Loan{
		Type:         in.LoanType,
		AmountLoaned: in.AmountLoaned,
		NickName:     in.NickName,
	}
}
