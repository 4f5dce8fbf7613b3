package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/MUNTAZIR1234/Invoice/internal/domain"
	"github.com/MUNTAZIR1234/Invoice/internal/domain/entity"
	"github.com/MUNTAZIR1234/Invoice/internal/domain/repository"
)

var _ repository.TenantRepository = (*TenantRepo)(nil)

// TenantRepo implements TenantRepository over a pool or a tx.
type TenantRepo struct {
	q Querier
}

// NewTenantRepository builds the adapter.
func NewTenantRepository(q Querier) *TenantRepo {
	return &TenantRepo{q: q}
}

const tenantColumns = `id, name, email, phone, address, property_id, status, move_in_date, created_at, updated_at`

func (r *TenantRepo) Create(t *entity.Tenant) error {
	query := `
		INSERT INTO tenants (` + tenantColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.Name, t.Email, t.Phone, t.Address, nullIfEmpty(t.PropertyID),
		string(t.Status), t.MoveInDate, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return domain.ErrDuplicate
		case isForeignKeyViolation(err):
			return fmt.Errorf("%w: property %s does not exist", domain.ErrInvalidInput, t.PropertyID)
		}
		return fmt.Errorf("insert tenant: %w", err)
	}
	return nil
}

func (r *TenantRepo) Update(t *entity.Tenant) error {
	query := `
		UPDATE tenants
		SET name = $2, email = $3, phone = $4, address = $5, property_id = $6,
		    status = $7, move_in_date = $8, updated_at = $9
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		t.ID, t.Name, t.Email, t.Phone, t.Address, nullIfEmpty(t.PropertyID),
		string(t.Status), t.MoveInDate, t.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: property %s does not exist", domain.ErrInvalidInput, t.PropertyID)
		}
		return fmt.Errorf("update tenant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *TenantRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM tenants WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete tenant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *TenantRepo) GetByID(id string) (*entity.Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE id = $1`
	t, err := scanTenant(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tenant: %w", err)
	}
	return t, nil
}

func (r *TenantRepo) List() ([]*entity.Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants ORDER BY created_at, id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list tenants: %w", err)
	}
	defer rows.Close()
	var list []*entity.Tenant
	for rows.Next() {
		t, err := scanTenant(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tenant: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *TenantRepo) CountByProperty(propertyID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM tenants WHERE property_id = $1`, propertyID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count tenants: %w", err)
	}
	return n, nil
}

func scanTenant(row pgx.Row) (*entity.Tenant, error) {
	var (
		t          entity.Tenant
		propertyID *string
		status     string
		moveIn     *time.Time
	)
	err := row.Scan(&t.ID, &t.Name, &t.Email, &t.Phone, &t.Address, &propertyID,
		&status, &moveIn, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	t.PropertyID = stringOrEmpty(propertyID)
	t.Status = entity.ParseTenantStatus(status)
	t.MoveInDate = moveIn
	return &t, nil
}
