package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/MUNTAZIR1234/Invoice/internal/domain/entity"
	"github.com/MUNTAZIR1234/Invoice/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo keeps the single company row (id = 1).
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository builds the adapter.
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// Get returns (nil, nil) until Save has been called once.
func (r *CompanyRepo) Get() (*entity.CompanyInfo, error) {
	query := `
		SELECT name, address, email, default_notes, default_bank_details,
		       primary_color, font_family, header_layout, show_bank_details, show_tenant_contact
		FROM company WHERE id = 1`
	var c entity.CompanyInfo
	s := &c.InvoiceSettings
	err := r.q.QueryRow(context.Background(), query).Scan(
		&c.Name, &c.Address, &c.Email, &c.DefaultNotes, &c.DefaultBankDetails,
		&s.PrimaryColor, &s.FontFamily, &s.HeaderLayout, &s.ShowBankDetails, &s.ShowTenantContact,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

// Save upserts the company row.
func (r *CompanyRepo) Save(c *entity.CompanyInfo) error {
	query := `
		INSERT INTO company (id, name, address, email, default_notes, default_bank_details,
		                     primary_color, font_family, header_layout, show_bank_details, show_tenant_contact, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now())
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			address = EXCLUDED.address,
			email = EXCLUDED.email,
			default_notes = EXCLUDED.default_notes,
			default_bank_details = EXCLUDED.default_bank_details,
			primary_color = EXCLUDED.primary_color,
			font_family = EXCLUDED.font_family,
			header_layout = EXCLUDED.header_layout,
			show_bank_details = EXCLUDED.show_bank_details,
			show_tenant_contact = EXCLUDED.show_tenant_contact,
			updated_at = now()`
	s := c.InvoiceSettings
	_, err := r.q.Exec(context.Background(), query,
		c.Name, c.Address, c.Email, c.DefaultNotes, c.DefaultBankDetails,
		s.PrimaryColor, s.FontFamily, s.HeaderLayout, s.ShowBankDetails, s.ShowTenantContact,
	)
	if err != nil {
		return fmt.Errorf("save company: %w", err)
	}
	return nil
}
