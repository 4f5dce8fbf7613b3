// Package app opens the configured store and builds every use case on top of
// it. cmd/api and cmd/rentctl share this wiring.
package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/MUNTAZIR1234/Invoice/internal/application/backup"
	"github.com/MUNTAZIR1234/Invoice/internal/application/billing"
	"github.com/MUNTAZIR1234/Invoice/internal/application/importer"
	"github.com/MUNTAZIR1234/Invoice/internal/application/report"
	"github.com/MUNTAZIR1234/Invoice/internal/application/usecase"
	dombilling "github.com/MUNTAZIR1234/Invoice/internal/domain/billing"
	"github.com/MUNTAZIR1234/Invoice/internal/domain/entity"
	"github.com/MUNTAZIR1234/Invoice/internal/domain/repository"
	"github.com/MUNTAZIR1234/Invoice/internal/infrastructure/memory"
	infrapdf "github.com/MUNTAZIR1234/Invoice/internal/infrastructure/pdf"
	"github.com/MUNTAZIR1234/Invoice/internal/infrastructure/postgres"
	"github.com/MUNTAZIR1234/Invoice/pkg/config"
	"github.com/MUNTAZIR1234/Invoice/pkg/logger"
)

// Repositories is one storage backend seen through the domain interfaces.
type Repositories struct {
	Tenants    repository.TenantRepository
	Properties repository.PropertyRepository
	Invoices   repository.InvoiceRepository
	Expenses   repository.ExpenseRepository
	Company    repository.CompanyRepository
	System     repository.SystemRepository
	Allocator  repository.InvoiceAllocator
	close      func()
}

// Close releases the backend's connections, if any.
func (r *Repositories) Close() {
	if r.close != nil {
		r.close()
	}
}

// OpenRepositories opens the store selected by cfg.Storage.Driver.
func OpenRepositories(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Repositories, error) {
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		s, err := postgres.Open(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		return &Repositories{
			Tenants: s.Tenants(), Properties: s.Properties(), Invoices: s.Invoices(),
			Expenses: s.Expenses(), Company: s.Company(), System: s.System(),
			Allocator: s.Allocator(), close: s.Close,
		}, nil
	case config.StorageFile, "":
		s, err := memory.Open(cfg.Storage.DataFile, log)
		if err != nil {
			return nil, err
		}
		return MemoryRepositories(s), nil
	default:
		return nil, fmt.Errorf("app: unknown storage driver %q", cfg.Storage.Driver)
	}
}

// MemoryRepositories exposes an in-memory store.
func MemoryRepositories(s *memory.Store) *Repositories {
	return &Repositories{
		Tenants: s.Tenants(), Properties: s.Properties(), Invoices: s.Invoices(),
		Expenses: s.Expenses(), Company: s.Company(), System: s.System(),
		Allocator: s.Allocator(),
	}
}

// Services holds every use case.
type Services struct {
	Properties *usecase.PropertyUseCase
	Tenants    *usecase.TenantUseCase
	Expenses   *usecase.ExpenseUseCase
	Company    *usecase.CompanyUseCase
	Invoices   *billing.InvoiceUseCase
	InvoicePDF *billing.PDFUseCase
	Import     *importer.ImportUseCase
	Reports    *report.ReportUseCase
	LedgerPDF  *report.LedgerPDFUseCase
	Dashboard  *report.DashboardUseCase
	Backup     *backup.UseCase
}

// NewServices builds the use cases over repos.
func NewServices(cfg *config.Config, repos *Repositories, log *logger.Logger) (*Services, error) {
	policy, err := dombilling.PolicyFromName(cfg.Billing.DueDatePolicy, cfg.Billing.DueDays)
	if err != nil {
		return nil, err
	}

	company := usecase.NewCompanyUseCase(repos.Company, entity.CompanyInfo{
		Name:            cfg.Company.Name,
		Address:         cfg.Company.Address,
		Email:           cfg.Company.Email,
		InvoiceSettings: entity.DefaultInvoiceSettings(),
	})
	renderer := infrapdf.NewMarotoPDFGenerator()
	reports := report.NewReportUseCase(repos.Tenants, repos.Properties, repos.Invoices, repos.Expenses)

	return &Services{
		Properties: usecase.NewPropertyUseCase(repos.Properties, repos.Tenants),
		Tenants:    usecase.NewTenantUseCase(repos.Tenants, repos.Properties),
		Expenses:   usecase.NewExpenseUseCase(repos.Expenses, repos.Properties),
		Company:    company,
		Invoices: billing.NewInvoiceUseCase(
			repos.Invoices, repos.Allocator, repos.Tenants, company, policy,
			log.Component("billing"),
		),
		InvoicePDF: billing.NewPDFUseCase(repos.Invoices, repos.Tenants, repos.Properties, company, renderer),
		Import:     importer.NewImportUseCase(repos.Tenants, repos.Properties, log.Component("import")),
		Reports:    reports,
		LedgerPDF:  report.NewLedgerPDFUseCase(reports, company, renderer),
		Dashboard:  report.NewDashboardUseCase(repos.Tenants, repos.Properties, repos.Invoices, repos.Expenses),
		Backup:     backup.NewUseCase(repos.System, log.Component("backup")),
	}, nil
}
