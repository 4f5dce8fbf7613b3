package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/MUNTAZIR1234/Invoice/internal/domain"
	"github.com/MUNTAZIR1234/Invoice/internal/domain/entity"
	"github.com/MUNTAZIR1234/Invoice/internal/domain/repository"
)

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

// ExpenseRepo implements ExpenseRepository over a pool or a tx.
type ExpenseRepo struct {
	q Querier
}

// NewExpenseRepository builds the adapter.
func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

const expenseColumns = `id, property_id, amount, category, date, description, created_at`

func (r *ExpenseRepo) Create(e *entity.Expense) error {
	query := `
		INSERT INTO expenses (` + expenseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.PropertyID, e.Amount, e.Category, e.Date, e.Description, e.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

func (r *ExpenseRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ExpenseRepo) GetByID(id string) (*entity.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE id = $1`
	e, err := scanExpense(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get expense: %w", err)
	}
	return e, nil
}

func (r *ExpenseRepo) List(propertyID string) ([]*entity.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses
		WHERE ($1 = '' OR property_id = $1)
		ORDER BY date, created_at`
	rows, err := r.q.Query(context.Background(), query, propertyID)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func scanExpense(row pgx.Row) (*entity.Expense, error) {
	var e entity.Expense
	if err := row.Scan(&e.ID, &e.PropertyID, &e.Amount, &e.Category, &e.Date, &e.Description, &e.CreatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}
