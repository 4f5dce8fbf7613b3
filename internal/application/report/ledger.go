package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MUNTAZIR1234/Invoice/internal/application/dto"
	"github.com/MUNTAZIR1234/Invoice/internal/domain"
	"github.com/MUNTAZIR1234/Invoice/internal/domain/billing"
	"github.com/MUNTAZIR1234/Invoice/internal/domain/entity"
	"github.com/MUNTAZIR1234/Invoice/internal/domain/repository"
)

// Ledger builds the statement of account for one tenant: every invoice
// billed to them, what has been paid and what is still owed.
func (uc *ReportUseCase) Ledger(_ context.Context, tenantID string) (*dto.LedgerDTO, error) {
	if tenantID == "" {
		return nil, fmt.Errorf("%w: tenant id is required for a ledger", domain.ErrInvalidInput)
	}
	tenant, err := uc.tenants.GetByID(tenantID)
	if err != nil {
		return nil, fmt.Errorf("ledger: get tenant: %w", err)
	}
	if tenant == nil {
		return nil, domain.ErrNotFound
	}

	propertyName := "N/A"
	if tenant.PropertyID != "" {
		p, err := uc.properties.GetByID(tenant.PropertyID)
		if err != nil {
			return nil, fmt.Errorf("ledger: get property: %w", err)
		}
		if p != nil {
			propertyName = p.DisplayName()
		}
	}

	invoices, err := uc.invoices.List(repository.InvoiceFilter{TenantID: tenantID})
	if err != nil {
		return nil, fmt.Errorf("ledger: list invoices: %w", err)
	}
	sortByID(invoices)

	out := &dto.LedgerDTO{
		TenantID:     tenant.ID,
		TenantName:   tenant.Name,
		PropertyName: propertyName,
		Entries:      make([]dto.LedgerEntryDTO, 0, len(invoices)),
		TotalBilled:  decimal.Zero,
		TotalPaid:    decimal.Zero,
	}
	for _, inv := range invoices {
		out.Entries = append(out.Entries, dto.LedgerEntryDTO{
			InvoiceID:     inv.ID,
			Date:          billing.DisplayDate(inv.CreatedDate),
			BillingPeriod: inv.BillingPeriod,
			Amount:        inv.TotalAmount(),
			Status:        string(inv.Status),
			DocumentType:  string(inv.DocumentType),
		})
		out.TotalBilled = out.TotalBilled.Add(inv.TotalAmount())
		if inv.Status == entity.InvoiceStatusPaid {
			out.TotalPaid = out.TotalPaid.Add(inv.TotalAmount())
		}
	}
	out.Outstanding = out.TotalBilled.Sub(out.TotalPaid)
	return out, nil
}

// LedgerStatement is a ledger ready to print.
type LedgerStatement struct {
	CompanyName  string
	PrimaryColor string
	FontFamily   string
	Generated    string // DD-MM-YYYY
	Ledger       dto.LedgerDTO
}

// FileName returns "statement_<tenant>_<YYYY-MM-DD>.pdf".
func (s LedgerStatement) FileName(day time.Time) string {
	return fmt.Sprintf("statement_%s_%s.pdf", fileSafe(s.Ledger.TenantName), billing.WireDate(day))
}

// StatementRenderer prints a ledger statement.
type StatementRenderer interface {
	RenderLedger(ctx context.Context, st LedgerStatement) ([]byte, error)
}

// CompanySource returns the company profile to print.
type CompanySource interface {
	Current() (*entity.CompanyInfo, error)
}

// LedgerPDFUseCase prints ledger statements.
type LedgerPDFUseCase struct {
	reports  *ReportUseCase
	company  CompanySource
	renderer StatementRenderer
}

// NewLedgerPDFUseCase wires the use case.
func NewLedgerPDFUseCase(reports *ReportUseCase, company CompanySource, renderer StatementRenderer) *LedgerPDFUseCase {
	return &LedgerPDFUseCase{reports: reports, company: company, renderer: renderer}
}

// Statement assembles the printable statement for one tenant.
func (uc *LedgerPDFUseCase) Statement(ctx context.Context, tenantID string) (*LedgerStatement, error) {
	ledger, err := uc.reports.Ledger(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	info, err := uc.company.Current()
	if err != nil {
		return nil, fmt.Errorf("ledger pdf: get company: %w", err)
	}
	settings := entity.DefaultInvoiceSettings()
	name := ""
	if info != nil {
		settings = info.InvoiceSettings
		name = info.Name
	}
	return &LedgerStatement{
		CompanyName:  name,
		PrimaryColor: settings.PrimaryColor,
		FontFamily:   settings.FontFamily,
		Generated:    billing.DisplayDate(uc.reports.now()),
		Ledger:       *ledger,
	}, nil
}

// DownloadLedgerPDF renders the statement and names the file.
func (uc *LedgerPDFUseCase) DownloadLedgerPDF(ctx context.Context, tenantID string) (pdfBytes []byte, filename string, err error) {
	st, err := uc.Statement(ctx, tenantID)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err = uc.renderer.RenderLedger(ctx, *st)
	if err != nil {
		return nil, "", fmt.Errorf("ledger pdf: render: %w", err)
	}
	return pdfBytes, st.FileName(uc.reports.now()), nil
}

func fileSafe(name string) string {
	out := make([]rune, 0, len(name))
	underscore := false
	for _, r := range name {
		switch {
		case strings.ContainsRune(`"<>:|?*`, r):
			continue
		case r == ' ' || r == '\t' || r == '/' || r == '\\':
			if !underscore && len(out) > 0 {
				out = append(out, '_')
			}
			underscore = true
		default:
			out = append(out, r)
			underscore = false
		}
	}
	if len(out) == 0 {
		return "tenant"
	}
	return string(out)
}
