package repository

import "github.com/MUNTAZIR1234/Invoice/internal/domain/entity"

// Dataset is every record the application keeps.
type Dataset struct {
	Company    *entity.CompanyInfo
	Properties []*entity.Property
	Tenants    []*entity.Tenant
	Invoices   []*entity.Invoice
	Expenses   []*entity.Expense
}

// SystemRepository works on the whole data set at once.
type SystemRepository interface {
	Export() (*Dataset, error)
	// Replace swaps all records for ds in one step.
	Replace(ds *Dataset) error
	// Reset deletes every record, including the company profile.
	Reset() error
}
