package http

import (
	"net/http"
	"time"

	"tradex-backend/internal/usecase/report"

	"github.com/labstack/echo/v4"
)

type ReportHandler struct{ uc *report.Usecase }

func NewReportHandler(uc *report.Usecase) *ReportHandler { return &ReportHandler{uc: uc} }

func (h *ReportHandler) Dashboard(c echo.Context) error {
	kpis, err := h.uc.Kpis(c.Request().Context(), time.Now().UTC())
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, kpis)
}
