package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog"

	"github.com/MUNTAZIR1234/Invoice/internal/application/backup"
	"github.com/MUNTAZIR1234/Invoice/internal/application/billing"
	"github.com/MUNTAZIR1234/Invoice/internal/application/importer"
	"github.com/MUNTAZIR1234/Invoice/internal/application/report"
	"github.com/MUNTAZIR1234/Invoice/internal/application/usecase"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	PropertyUC *usecase.PropertyUseCase
	TenantUC   *usecase.TenantUseCase
	ExpenseUC  *usecase.ExpenseUseCase
	CompanyUC  *usecase.CompanyUseCase
	InvoiceUC  *billing.InvoiceUseCase
	InvoicePDF *billing.PDFUseCase
	ImportUC   *importer.ImportUseCase
	ReportUC   *report.ReportUseCase
	LedgerPDF  *report.LedgerPDFUseCase
	Dashboard  *report.DashboardUseCase
	BackupUC   *backup.UseCase
	Log        zerolog.Logger
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	v := NewValidator()

	api := app.Group("/api", requestid.New(), RequestLogger(deps.Log))

	// Properties
	properties := api.Group("/properties")
	propertyHandler := NewPropertyHandler(deps.PropertyUC, deps.ImportUC, v)
	properties.Get("/", propertyHandler.List)
	properties.Post("/", propertyHandler.Create)
	properties.Post("/import", propertyHandler.Import)
	properties.Get("/:id", propertyHandler.Get)
	properties.Put("/:id", propertyHandler.Update)
	properties.Delete("/:id", propertyHandler.Delete)

	// Tenants
	tenants := api.Group("/tenants")
	tenantHandler := NewTenantHandler(deps.TenantUC, deps.ImportUC, v)
	tenants.Get("/", tenantHandler.List)
	tenants.Post("/", tenantHandler.Create)
	tenants.Post("/import", tenantHandler.Import)
	tenants.Get("/:id", tenantHandler.Get)
	tenants.Put("/:id", tenantHandler.Update)
	tenants.Delete("/:id", tenantHandler.Delete)

	// Invoices; fixed paths before /:id
	invoices := api.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.InvoicePDF, v)
	invoices.Get("/", invoiceHandler.List)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/next-id", invoiceHandler.NextID)
	invoices.Post("/preview", invoiceHandler.Preview)
	invoices.Get("/:id", invoiceHandler.Get)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Patch("/:id/status", invoiceHandler.UpdateStatus)
	invoices.Delete("/:id", invoiceHandler.Delete)
	invoices.Get("/:id/pdf", invoiceHandler.PDF)

	// Billing helpers
	billingGroup := api.Group("/billing")
	billingHandler := NewBillingHandler(deps.InvoiceUC)
	billingGroup.Get("/cycle", billingHandler.Cycle)
	billingGroup.Get("/words", billingHandler.Words)

	// Expenses
	expenses := api.Group("/expenses")
	expenseHandler := NewExpenseHandler(deps.ExpenseUC, v)
	expenses.Get("/", expenseHandler.List)
	expenses.Post("/", expenseHandler.Create)
	expenses.Delete("/:id", expenseHandler.Delete)

	// Company profile
	companyHandler := NewCompanyHandler(deps.CompanyUC, v)
	api.Get("/company", companyHandler.Get)
	api.Put("/company", companyHandler.Update)

	// Reports and dashboard
	reportHandler := NewReportHandler(deps.ReportUC, deps.LedgerPDF, deps.Dashboard)
	reports := api.Group("/reports")
	reports.Get("/ledger/:tenantId", reportHandler.Ledger)
	reports.Get("/ledger/:tenantId/pdf", reportHandler.LedgerPDF)
	reports.Get("/:type", reportHandler.ExportCSV)
	api.Get("/dashboard/summary", reportHandler.DashboardSummary)

	// Backup and reset
	backupHandler := NewBackupHandler(deps.BackupUC)
	api.Get("/backup", backupHandler.Export)
	api.Post("/backup", backupHandler.Restore)
	api.Post("/system/reset", backupHandler.Reset)
}
