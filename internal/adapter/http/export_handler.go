package http

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"tradex-backend/internal/usecase/report"

	"github.com/labstack/echo/v4"
)

type ExportHandler struct{ uc *report.Usecase }

func NewExportHandler(uc *report.Usecase) *ExportHandler { return &ExportHandler{uc: uc} }

func money(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }

// Export streams the full ledger as CSV: a loans section followed by a
// payments section, same shape as the legacy report file.
func (h *ExportHandler) Export(c echo.Context) error {
	loans, payments, err := h.uc.Export(c.Request().Context(), time.Now().UTC())
	if err != nil {
		return jsonError(c, err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	_ = w.Write([]string{"id", "customer", "principal", "interest", "total_due", "paid_total", "balance", "status", "due_date"})
	for i := range loans {
		l := &loans[i]
		_ = w.Write([]string{
			l.LoanID,
			l.Customer,
			money(l.Principal),
			money(l.Interest),
			money(l.TotalDue),
			money(l.Collected),
			money(l.Balance()),
			string(l.Status),
			l.DueDate.Format(dateLayout),
		})
	}

	_ = w.Write([]string{})
	_ = w.Write([]string{"payments"})
	_ = w.Write([]string{"id", "loan_id", "customer", "amount", "payment_date", "registered_by", "notes"})
	for _, p := range payments {
		_ = w.Write([]string{
			p.PaymentID,
			p.LoanID,
			p.Customer,
			money(p.Amount),
			p.PaymentDate.Format(dateLayout),
			p.RegisteredBy,
			p.Notes,
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "export failed"})
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="tradex_report.csv"`)
	return c.Blob(http.StatusOK, "text/csv", buf.Bytes())
}
