package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/MUNTAZIR1234/Invoice/internal/domain"
	"github.com/MUNTAZIR1234/Invoice/internal/domain/billing"
	"github.com/MUNTAZIR1234/Invoice/internal/domain/entity"
	"github.com/MUNTAZIR1234/Invoice/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo stores invoice headers in invoices and their lines in
// invoice_items. Totals are not stored; they are derived from the items on
// every read.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository builds the adapter. Pass a pool or a tx.
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceColumns = `id, tenant_id, created_date, due_date, received_date, status,
	billing_period, notes, bank_details, document_type`

// Create inserts the header and its items in one transaction.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	return pgx.BeginFunc(context.Background(), r.q, func(tx pgx.Tx) error {
		query := `
			INSERT INTO invoices (seq, ` + invoiceColumns + `)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
		_, err := tx.Exec(context.Background(), query,
			billing.InvoiceSequence(invoice.ID),
			invoice.ID, invoice.TenantID, invoice.CreatedDate, invoice.DueDate, invoice.ReceivedDate,
			string(invoice.Status), invoice.BillingPeriod, invoice.Notes, invoice.BankDetails,
			string(invoice.DocumentType),
		)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("insert invoice: %w", err)
		}
		return insertItems(tx, invoice)
	})
}

// Update rewrites the header and replaces every item.
func (r *InvoiceRepo) Update(invoice *entity.Invoice) error {
	return pgx.BeginFunc(context.Background(), r.q, func(tx pgx.Tx) error {
		query := `
			UPDATE invoices
			SET tenant_id = $2, created_date = $3, due_date = $4, received_date = $5, status = $6,
			    billing_period = $7, notes = $8, bank_details = $9, document_type = $10
			WHERE id = $1`
		tag, err := tx.Exec(context.Background(), query,
			invoice.ID, invoice.TenantID, invoice.CreatedDate, invoice.DueDate, invoice.ReceivedDate,
			string(invoice.Status), invoice.BillingPeriod, invoice.Notes, invoice.BankDetails,
			string(invoice.DocumentType),
		)
		if err != nil {
			return fmt.Errorf("update invoice: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrNotFound
		}
		if _, err := tx.Exec(context.Background(), `DELETE FROM invoice_items WHERE invoice_id = $1`, invoice.ID); err != nil {
			return fmt.Errorf("delete invoice items: %w", err)
		}
		return insertItems(tx, invoice)
	})
}

func insertItems(tx pgx.Tx, invoice *entity.Invoice) error {
	batch := &pgx.Batch{}
	for i, it := range invoice.Items() {
		batch.Queue(
			`INSERT INTO invoice_items (invoice_id, position, description, amount) VALUES ($1, $2, $3, $4)`,
			invoice.ID, i, it.Description, it.Amount,
		)
	}
	if batch.Len() == 0 {
		return nil
	}
	if err := tx.SendBatch(context.Background(), batch).Close(); err != nil {
		return fmt.Errorf("insert invoice items: %w", err)
	}
	return nil
}

// Delete removes the invoice; items go with it (ON DELETE CASCADE).
func (r *InvoiceRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`
	inv, err := scanInvoice(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	if err := r.loadItems([]*entity.Invoice{inv}); err != nil {
		return nil, err
	}
	return inv, nil
}

func (r *InvoiceRepo) List(filter repository.InvoiceFilter) ([]*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices
		WHERE ($1 = '' OR tenant_id = $1) AND ($2 = '' OR status = $2)
		ORDER BY seq, id`
	rows, err := r.q.Query(context.Background(), query, filter.TenantID, string(filter.Status))
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	if err := r.loadItems(list); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *InvoiceRepo) ListIDs() ([]string, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id FROM invoices`)
	if err != nil {
		return nil, fmt.Errorf("list invoice ids: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scan invoice ids: %w", err)
	}
	return ids, nil
}

// loadItems fetches the items of every invoice in one query and sets them,
// which also derives each total.
func (r *InvoiceRepo) loadItems(invoices []*entity.Invoice) error {
	if len(invoices) == 0 {
		return nil
	}
	ids := make([]string, len(invoices))
	byID := make(map[string][]entity.LineItem, len(invoices))
	for i, inv := range invoices {
		ids[i] = inv.ID
	}
	rows, err := r.q.Query(context.Background(), `
		SELECT invoice_id, description, amount FROM invoice_items
		WHERE invoice_id = ANY($1) ORDER BY invoice_id, position`, ids)
	if err != nil {
		return fmt.Errorf("list invoice items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			invoiceID string
			item      entity.LineItem
			amount    decimal.Decimal
		)
		if err := rows.Scan(&invoiceID, &item.Description, &amount); err != nil {
			return fmt.Errorf("scan invoice item: %w", err)
		}
		item.Amount = amount
		byID[invoiceID] = append(byID[invoiceID], item)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("list invoice items: %w", err)
	}
	for _, inv := range invoices {
		inv.SetItems(byID[inv.ID])
	}
	return nil
}

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var (
		inv      entity.Invoice
		received *time.Time
		status   string
		docType  string
	)
	err := row.Scan(&inv.ID, &inv.TenantID, &inv.CreatedDate, &inv.DueDate, &received, &status,
		&inv.BillingPeriod, &inv.Notes, &inv.BankDetails, &docType)
	if err != nil {
		return nil, err
	}
	inv.ReceivedDate = received
	if st, ok := entity.ParseInvoiceStatus(status); ok {
		inv.Status = st
	} else {
		inv.Status = entity.InvoiceStatusDraft
	}
	if dt, ok := entity.ParseDocumentType(docType); ok {
		inv.DocumentType = dt
	} else {
		inv.DocumentType = entity.DocumentRentInvoice
	}
	return &inv, nil
}
