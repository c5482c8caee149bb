package http

import (
	"net/http"
	"time"

	"tradex-backend/internal/adapter/middleware"
	"tradex-backend/internal/usecase/loan"

	"github.com/labstack/echo/v4"
)

type PaymentHandler struct{ uc *loan.Usecase }

func NewPaymentHandler(uc *loan.Usecase) *PaymentHandler { return &PaymentHandler{uc: uc} }

type recordPaymentReq struct {
	LoanID string  `json:"loan_id"      validate:"required,hex32"`
	Amount float64 `json:"amount"       validate:"required,gt=0,dec2"`
	Date   string  `json:"payment_date" validate:"required,datetime=2006-01-02"`
	Notes  string  `json:"notes"`
}

func (h *PaymentHandler) RecordPayment(c echo.Context) error {
	var req recordPaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid payment_date"})
	}

	dto, err := h.uc.RecordPayment(c.Request().Context(), loan.RecordPaymentInput{
		LoanID:       req.LoanID,
		Amount:       req.Amount,
		Date:         date,
		RegisteredBy: string(middleware.RoleFrom(c)),
		Notes:        req.Notes,
	}, time.Now().UTC())
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

type editPaymentDateReq struct {
	Date string `json:"payment_date" validate:"required,datetime=2006-01-02"`
}

func (h *PaymentHandler) EditPaymentDate(c echo.Context) error {
	paymentID := c.Param("payment_id")
	if !reHex32.MatchString(paymentID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid payment_id"})
	}
	var req editPaymentDateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid payment_date"})
	}

	if err := h.uc.EditPaymentDate(c.Request().Context(), paymentID, date); err != nil {
		return jsonError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *PaymentHandler) DeletePayment(c echo.Context) error {
	paymentID := c.Param("payment_id")
	if !reHex32.MatchString(paymentID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid payment_id"})
	}
	if err := h.uc.DeletePayment(c.Request().Context(), paymentID, time.Now().UTC()); err != nil {
		return jsonError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
