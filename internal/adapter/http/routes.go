package http

import "github.com/labstack/echo/v4"

// RegisterRoutes mounts the loan API. createMW wraps only POST /loans.
func RegisterRoutes(e *echo.Echo, h *Handler, lh *LoanHandler, createMW ...echo.MiddlewareFunc) {
	e.GET("/health", h.Health)

	g := e.Group("/loans")
	g.GET("/health", h.Health)
	g.GET("", lh.ListLoans)
	g.POST("", lh.CreateLoan, createMW...)
	g.GET("/users/:id/page", lh.ListBorrowerLoansPage)
	g.GET("/users/:id", lh.ListBorrowerLoans)
	g.GET("/:id", lh.GetLoan)
}
