package http

import (
	"errors"
	"net/http"
	"strings"

	"loan-ledger/internal/domain/borrower"
	domain "loan-ledger/internal/domain/loan"
	"loan-ledger/internal/domain/page"
	"loan-ledger/internal/usecase/loan"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type LoanHandler struct {
	uc          *loan.Usecase
	defaultSize int
	maxSize     int
}

func NewLoanHandler(uc *loan.Usecase, defaultSize, maxSize int) *LoanHandler {
	return &LoanHandler{uc: uc, defaultSize: defaultSize, maxSize: maxSize}
}

type createLoanReq struct {
	LoanType     string   `json:"loanType"     validate:"required,loantype"`
	AmountLoaned *float64 `json:"amountLoaned" validate:"omitempty,gte=0,dec2"`
	UsersIDs     []uint64 `json:"usersIds"     validate:"required,min=1,dive,gt=0"`
	NickName     string   `json:"nickName"     validate:"required,notblank,max=20"`
}

func (r createLoanReq) input() loan.CreateLoanInput {
	in := loan.CreateLoanInput{
		LoanType: parseLoanType(r.LoanType),
		UsersIDs: r.UsersIDs,
		NickName: strings.TrimSpace(r.NickName),
	}
	if r.AmountLoaned != nil {
		in.AmountLoaned = decimal.NewFromFloat(*r.AmountLoaned).Round(2)
	}
	return in
}

// CreateLoan answers 201 with an empty body; the new loan is read back through the list endpoints.
func (h *LoanHandler) CreateLoan(c echo.Context) error {
	var req createLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	if err := h.uc.Create(c.Request().Context(), req.input()); err != nil {
		return h.fail(c, err)
	}
	return c.NoContent(http.StatusCreated)
}

func (h *LoanHandler) ListLoans(c echo.Context) error {
	req, err := h.pageRequest(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	p, err := h.uc.ListAll(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *LoanHandler) ListBorrowerLoansPage(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	req, err := h.pageRequest(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	p, err := h.uc.ListByBorrower(c.Request().Context(), id, req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *LoanHandler) ListBorrowerLoans(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	loans, err := h.uc.GetByBorrower(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, loans)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	dto, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// pageRequest reads page, size, asc and sort; absent values mean page 0,
// the default size, descending and natural order.
func (h *LoanHandler) pageRequest(c echo.Context) (page.Request, error) {
	number, size, asc, sort := 0, h.defaultSize, false, ""
	err := echo.QueryParamsBinder(c).
		Int("page", &number).
		Int("size", &size).
		Bool("asc", &asc).
		String("sort", &sort).
		BindError()
	if err != nil {
		return page.Request{}, errors.New("invalid query parameters")
	}
	if h.maxSize > 0 && size > h.maxSize {
		size = h.maxSize
	}
	return page.NewRequest(number, size, asc, strings.TrimSpace(sort)), nil
}

func pathID(c echo.Context) (uint64, error) {
	var id uint64
	if err := echo.PathParamsBinder(c).MustUint64("id", &id).BindError(); err != nil {
		return 0, errors.New("invalid id path param")
	}
	return id, nil
}

// Map domain errors → HTTP codes
func (h *LoanHandler) fail(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, borrower.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, page.ErrInvalidQuery):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
