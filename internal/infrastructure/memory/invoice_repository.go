package memory

import (
	"context"

	"github.com/MUNTAZIR1234/Invoice/internal/domain"
	"github.com/MUNTAZIR1234/Invoice/internal/domain/entity"
	"github.com/MUNTAZIR1234/Invoice/internal/domain/repository"
)

var (
	_ repository.InvoiceRepository = (*InvoiceRepo)(nil)
	_ repository.InvoiceAllocator  = (*InvoiceAllocator)(nil)
)

// InvoiceRepo implements repository.InvoiceRepository.
type InvoiceRepo struct {
	s *Store
}

func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	prev := r.s.state()
	if r.s.invoiceIndex(invoice.ID) >= 0 {
		return domain.ErrDuplicate
	}
	r.s.invoices = append(r.s.invoices, invoice.Clone())
	return r.s.commit(prev)
}

func (r *InvoiceRepo) Update(invoice *entity.Invoice) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	prev := r.s.state()
	i := r.s.invoiceIndex(invoice.ID)
	if i < 0 {
		return domain.ErrNotFound
	}
	r.s.invoices[i] = invoice.Clone()
	return r.s.commit(prev)
}

func (r *InvoiceRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	prev := r.s.state()
	i := r.s.invoiceIndex(id)
	if i < 0 {
		return nil
	}
	r.s.invoices = append(r.s.invoices[:i], r.s.invoices[i+1:]...)
	return r.s.commit(prev)
}

func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if i := r.s.invoiceIndex(id); i >= 0 {
		return r.s.invoices[i].Clone(), nil
	}
	return nil, nil
}

func (r *InvoiceRepo) List(filter repository.InvoiceFilter) ([]*entity.Invoice, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Invoice, 0, len(r.s.invoices))
	for _, inv := range r.s.invoices {
		if filter.TenantID != "" && inv.TenantID != filter.TenantID {
			continue
		}
		if filter.Status != "" && inv.Status != filter.Status {
			continue
		}
		out = append(out, inv.Clone())
	}
	return out, nil
}

func (r *InvoiceRepo) ListIDs() ([]string, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	ids := make([]string, 0, len(r.s.invoices))
	for _, inv := range r.s.invoices {
		ids = append(ids, inv.ID)
	}
	return ids, nil
}

func (s *Store) invoiceIndex(id string) int {
	for i, inv := range s.invoices {
		if inv.ID == id {
			return i
		}
	}
	return -1
}

// InvoiceAllocator serialises invoice numbering with a mutex.
type InvoiceAllocator struct {
	s *Store
}

func (a *InvoiceAllocator) RunAllocation(ctx context.Context, fn func(invoices repository.InvoiceRepository) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	a.s.allocMu.Lock()
	defer a.s.allocMu.Unlock()
	return fn(&InvoiceRepo{s: a.s})
}
