package http

import (
	"net/http"
	"time"

	"tradex-backend/internal/usecase/capital"

	"github.com/labstack/echo/v4"
)

type CapitalHandler struct{ uc *capital.Usecase }

func NewCapitalHandler(uc *capital.Usecase) *CapitalHandler { return &CapitalHandler{uc: uc} }

type contributeReq struct {
	PartnerRef string  `json:"partner_ref" validate:"required"`
	Amount     float64 `json:"amount"      validate:"required,gt=0,dec2"`
	Date       string  `json:"date"        validate:"required,datetime=2006-01-02"`
}

func (h *CapitalHandler) Contribute(c echo.Context) error {
	var req contributeReq
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
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid date"})
	}

	dto, err := h.uc.Contribute(c.Request().Context(), capital.ContributeInput{
		PartnerRef: req.PartnerRef,
		Amount:     req.Amount,
		Date:       date,
	})
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *CapitalHandler) GetSnapshot(c echo.Context) error {
	snap, err := h.uc.Snapshot(c.Request().Context(), time.Now().UTC())
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, snap)
}

func (h *CapitalHandler) ListContributions(c echo.Context) error {
	out, err := h.uc.ListContributions(c.Request().Context())
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
