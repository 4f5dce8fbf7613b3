package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/MUNTAZIR1234/Invoice/pkg/config"
)

// Store bundles the pool-backed repositories.
type Store struct {
	pool *pgxpool.Pool
}

// Open connects, optionally migrates, and returns the store.
func Open(ctx context.Context, cfg config.DBConfig, log zerolog.Logger) (*Store, error) {
	if cfg.AutoMigrate {
		if err := Migrate(cfg.ConnectionString(), log); err != nil {
			return nil, err
		}
	}
	pool, err := NewPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("postgres: %w", err)
	}
	return &Store{pool: pool}, nil
}

// Close releases the pool.
func (s *Store) Close() { s.pool.Close() }

func (s *Store) Tenants() *TenantRepo      { return NewTenantRepository(s.pool) }
func (s *Store) Properties() *PropertyRepo { return NewPropertyRepository(s.pool) }
func (s *Store) Invoices() *InvoiceRepo    { return NewInvoiceRepository(s.pool) }
func (s *Store) Expenses() *ExpenseRepo    { return NewExpenseRepository(s.pool) }
func (s *Store) Company() *CompanyRepo     { return NewCompanyRepository(s.pool) }
func (s *Store) System() *SystemRepo       { return NewSystemRepository(s.pool) }
func (s *Store) Allocator() *TxRunner      { return NewTxRunner(s.pool) }
