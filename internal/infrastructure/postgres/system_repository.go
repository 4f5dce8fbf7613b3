package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MUNTAZIR1234/Invoice/internal/domain/repository"
)

var _ repository.SystemRepository = (*SystemRepo)(nil)

// SystemRepo reads and replaces the whole data set.
type SystemRepo struct {
	pool *pgxpool.Pool
}

// NewSystemRepository builds the adapter.
func NewSystemRepository(pool *pgxpool.Pool) *SystemRepo {
	return &SystemRepo{pool: pool}
}

// Export reads every table inside one read-only transaction so the snapshot
// is consistent.
func (r *SystemRepo) Export() (*repository.Dataset, error) {
	ctx := context.Background()
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	ds := &repository.Dataset{}
	if ds.Company, err = NewCompanyRepository(tx).Get(); err != nil {
		return nil, err
	}
	if ds.Properties, err = NewPropertyRepository(tx).List(); err != nil {
		return nil, err
	}
	if ds.Tenants, err = NewTenantRepository(tx).List(); err != nil {
		return nil, err
	}
	if ds.Invoices, err = NewInvoiceRepository(tx).List(repository.InvoiceFilter{}); err != nil {
		return nil, err
	}
	if ds.Expenses, err = NewExpenseRepository(tx).List(""); err != nil {
		return nil, err
	}
	return ds, nil
}

// Replace empties every table and inserts ds, holding the numbering lock so
// no invoice is allocated halfway through.
func (r *SystemRepo) Replace(ds *repository.Dataset) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, invoiceNumberLock); err != nil {
		return fmt.Errorf("lock invoice numbering: %w", err)
	}
	if _, err := tx.Exec(ctx, `TRUNCATE invoice_items, invoices, tenants, expenses, properties, company`); err != nil {
		return fmt.Errorf("truncate: %w", err)
	}

	if ds.Company != nil {
		if err := NewCompanyRepository(tx).Save(ds.Company); err != nil {
			return err
		}
	}
	properties := NewPropertyRepository(tx)
	for _, p := range ds.Properties {
		if err := properties.Create(p); err != nil {
			return fmt.Errorf("restore property %s: %w", p.ID, err)
		}
	}
	tenants := NewTenantRepository(tx)
	for _, t := range ds.Tenants {
		if err := tenants.Create(t); err != nil {
			return fmt.Errorf("restore tenant %s: %w", t.ID, err)
		}
	}
	invoices := NewInvoiceRepository(tx)
	for _, inv := range ds.Invoices {
		if err := invoices.Create(inv); err != nil {
			return fmt.Errorf("restore invoice %s: %w", inv.ID, err)
		}
	}
	expenses := NewExpenseRepository(tx)
	for _, e := range ds.Expenses {
		if err := expenses.Create(e); err != nil {
			return fmt.Errorf("restore expense %s: %w", e.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Reset deletes every record.
func (r *SystemRepo) Reset() error {
	return r.Replace(&repository.Dataset{})
}
