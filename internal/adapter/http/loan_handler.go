package http

import (
	"net/http"
	"time"

	domain "tradex-backend/internal/domain/loan"
	"tradex-backend/internal/usecase/loan"

	"github.com/labstack/echo/v4"
)

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type createLoanReq struct {
	Customer  string  `json:"customer"   validate:"required"`
	Principal float64 `json:"principal"  validate:"required,gt=0,dec2"`
	Rate      float64 `json:"rate"       validate:"required,gt=0"`
	Mode      string  `json:"mode"       validate:"required,oneof=simple compound"`
	Frequency string  `json:"frequency"  validate:"required,oneof=daily weekly monthly"`
	Periods   int     `json:"periods"    validate:"gte=0"`
	StartDate string  `json:"start_date" validate:"required,datetime=2006-01-02"`
}

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
	start, err := parseDate(req.StartDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid start_date"})
	}

	dto, err := h.uc.Create(c.Request().Context(), loan.CreateLoanInput{
		Customer:  req.Customer,
		Principal: req.Principal,
		Rate:      req.Rate,
		Mode:      domain.InterestMode(req.Mode),
		Frequency: domain.Frequency(req.Frequency),
		Periods:   req.Periods,
		StartDate: start,
	})
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	loanID := c.Param("loan_id")
	dto, err := h.uc.Get(c.Request().Context(), loanID, time.Now().UTC())
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) ListLoans(c echo.Context) error {
	f := loan.ListFilter{
		Status:   domain.Status(c.QueryParam("status")),
		Customer: c.QueryParam("customer"),
	}
	switch f.Status {
	case "", domain.StatusActive, domain.StatusPaid, domain.StatusOverdue:
	default:
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid status filter"})
	}
	out, err := h.uc.List(c.Request().Context(), f, time.Now().UTC())
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
