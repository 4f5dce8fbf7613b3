package repository

import (
	"context"

	"github.com/MUNTAZIR1234/Invoice/internal/domain/entity"
)

// InvoiceFilter narrows List. Zero values match everything.
type InvoiceFilter struct {
	TenantID string
	Status   entity.InvoiceStatus
}

// InvoiceRepository is the persistence port for invoices and their line items.
// GetByID returns (nil, nil) when the invoice does not exist.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	Update(invoice *entity.Invoice) error
	Delete(id string) error
	GetByID(id string) (*entity.Invoice, error)
	List(filter InvoiceFilter) ([]*entity.Invoice, error)
	// ListIDs returns every stored invoice id, for numbering.
	ListIDs() ([]string, error)
}

// InvoiceAllocator runs fn while holding the invoice numbering section:
// nobody else can read ids and create an invoice until fn returns.
type InvoiceAllocator interface {
	RunAllocation(ctx context.Context, fn func(invoices InvoiceRepository) error) error
}
