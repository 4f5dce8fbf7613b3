package billing

import (
	"context"
	"fmt"

	"github.com/MUNTAZIR1234/Invoice/internal/domain"
	"github.com/MUNTAZIR1234/Invoice/internal/domain/entity"
	"github.com/MUNTAZIR1234/Invoice/internal/domain/repository"
)

// PDFUseCase prints an invoice.
type PDFUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	tenantRepo   repository.TenantRepository
	propertyRepo repository.PropertyRepository
	company      CompanySource
	renderer     DocumentRenderer
}

// NewPDFUseCase wires the use case.
func NewPDFUseCase(
	invoiceRepo repository.InvoiceRepository,
	tenantRepo repository.TenantRepository,
	propertyRepo repository.PropertyRepository,
	company CompanySource,
	renderer DocumentRenderer,
) *PDFUseCase {
	return &PDFUseCase{
		invoiceRepo:  invoiceRepo,
		tenantRepo:   tenantRepo,
		propertyRepo: propertyRepo,
		company:      company,
		renderer:     renderer,
	}
}

// Document resolves the invoice's tenant, property and company and lays the
// invoice out. A tenant or property that no longer exists prints with the
// fallback texts.
func (uc *PDFUseCase) Document(_ context.Context, invoiceID string) (*Document, error) {
	// ── 1. Invoice ────────────────────────────────────────────────────────────
	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, fmt.Errorf("pdf: get invoice: %w", err)
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}

	// ── 2. Tenant and the property they rent ──────────────────────────────────
	tenant, err := uc.tenantRepo.GetByID(inv.TenantID)
	if err != nil {
		return nil, fmt.Errorf("pdf: get tenant: %w", err)
	}
	var property *entity.Property
	if tenant != nil && tenant.PropertyID != "" {
		property, err = uc.propertyRepo.GetByID(tenant.PropertyID)
		if err != nil {
			return nil, fmt.Errorf("pdf: get property: %w", err)
		}
	}

	// ── 3. Company ────────────────────────────────────────────────────────────
	company, err := uc.company.Current()
	if err != nil {
		return nil, fmt.Errorf("pdf: get company: %w", err)
	}

	doc := AssembleInvoiceDocument(inv, tenant, property, company)
	return &doc, nil
}

// DownloadInvoicePDF renders the invoice and returns the bytes with the file
// name to save them under.
func (uc *PDFUseCase) DownloadInvoicePDF(ctx context.Context, invoiceID string) (pdfBytes []byte, filename string, err error) {
	doc, err := uc.Document(ctx, invoiceID)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err = uc.renderer.RenderInvoice(ctx, *doc)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: render: %w", err)
	}
	return pdfBytes, doc.FileName, nil
}
