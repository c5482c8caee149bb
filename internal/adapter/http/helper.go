package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	domainCapital "tradex-backend/internal/domain/capital"
	domainLoan "tradex-backend/internal/domain/loan"
	domainPayment "tradex-backend/internal/domain/payment"
)

const dateLayout = "2006-01-02"

func parseDate(s string) (time.Time, error) { return time.Parse(dateLayout, s) }

// jsonError maps domain errors to HTTP status codes so every handler speaks
// the same dialect.
func jsonError(c echo.Context, err error) error {
	var code int
	switch {
	case errors.Is(err, domainLoan.ErrNotFound), errors.Is(err, domainPayment.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, domainCapital.ErrInsufficientCapital):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, domainLoan.ErrInvalidLoanParams),
		errors.Is(err, domainLoan.ErrInvalidDate),
		errors.Is(err, domainLoan.ErrLoanSettled),
		errors.Is(err, domainPayment.ErrInvalidAmount),
		errors.Is(err, domainPayment.ErrExceedsBalance),
		errors.Is(err, domainCapital.ErrInvalidAmount):
		code = http.StatusBadRequest
	default:
		code = http.StatusInternalServerError
	}
	return c.JSON(code, ErrorResponse{Error: err.Error()})
}
