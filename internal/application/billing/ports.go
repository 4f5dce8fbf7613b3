package billing

import (
	"context"

	"github.com/MUNTAZIR1234/Invoice/internal/domain/entity"
)

// CompanySource returns the company profile to print, falling back to the
// configured defaults when none has been saved.
type CompanySource interface {
	Current() (*entity.CompanyInfo, error)
}

// DocumentRenderer turns an assembled document into PDF bytes.
type DocumentRenderer interface {
	RenderInvoice(ctx context.Context, doc Document) ([]byte, error)
}
