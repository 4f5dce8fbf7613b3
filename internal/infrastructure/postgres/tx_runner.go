package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MUNTAZIR1234/Invoice/internal/domain/repository"
)

var _ repository.InvoiceAllocator = (*TxRunner)(nil)

// invoiceNumberLock is the advisory lock key that serialises invoice
// numbering across every process sharing the database.
const invoiceNumberLock int64 = 0x494E56 // "INV"

// TxRunner runs callbacks inside a PostgreSQL transaction.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner builds the runner.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunAllocation takes the numbering lock for the life of the transaction,
// then runs fn with an invoice repository bound to it. fn's error rolls back.
func (r *TxRunner) RunAllocation(ctx context.Context, fn func(invoices repository.InvoiceRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, invoiceNumberLock); err != nil {
		return fmt.Errorf("lock invoice numbering: %w", err)
	}
	if err := fn(NewInvoiceRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
