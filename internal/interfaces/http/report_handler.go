package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MUNTAZIR1234/Invoice/internal/application/dto"
	"github.com/MUNTAZIR1234/Invoice/internal/application/report"
)

// ReportHandler serves CSV exports, tenant ledgers and the dashboard summary.
type ReportHandler struct {
	reports   *report.ReportUseCase
	ledgerPDF *report.LedgerPDFUseCase
	dashboard *report.DashboardUseCase
}

// NewReportHandler builds the handler.
func NewReportHandler(reports *report.ReportUseCase, ledgerPDF *report.LedgerPDFUseCase, dashboard *report.DashboardUseCase) *ReportHandler {
	return &ReportHandler{reports: reports, ledgerPDF: ledgerPDF, dashboard: dashboard}
}

// ExportCSV downloads one report as CSV. The ledger report needs ?tenantId=.
// GET /api/reports/:type
func (h *ReportHandler) ExportCSV(c *fiber.Ctx) error {
	t, ok := report.ParseType(c.Params("type"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "unknown report " + c.Params("type")})
	}
	data, filename, err := h.reports.ExportCSV(c.UserContext(), t, c.Query("tenantId"))
	if err != nil {
		return respondError(c, err)
	}
	return sendFile(c, "text/csv; charset=utf-8", filename, data)
}

// Ledger returns billed, paid and outstanding totals for one tenant.
// GET /api/reports/ledger/:tenantId
func (h *ReportHandler) Ledger(c *fiber.Ctx) error {
	ledger, err := h.reports.Ledger(c.UserContext(), c.Params("tenantId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(ledger)
}

// LedgerPDF GET /api/reports/ledger/:tenantId/pdf
func (h *ReportHandler) LedgerPDF(c *fiber.Ctx) error {
	data, filename, err := h.ledgerPDF.DownloadLedgerPDF(c.UserContext(), c.Params("tenantId"))
	if err != nil {
		return respondError(c, err)
	}
	return sendFile(c, "application/pdf", filename, data)
}

// DashboardSummary returns portfolio totals and occupancy.
// GET /api/dashboard/summary
func (h *ReportHandler) DashboardSummary(c *fiber.Ctx) error {
	summary, err := h.dashboard.GetSummary(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}
