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

var _ repository.PropertyRepository = (*PropertyRepo)(nil)

// PropertyRepo implements PropertyRepository over a pool or a tx.
type PropertyRepo struct {
	q Querier
}

// NewPropertyRepository builds the adapter.
func NewPropertyRepository(q Querier) *PropertyRepo {
	return &PropertyRepo{q: q}
}

const propertyColumns = `id, name, type, address, unit_number, created_at, updated_at`

func (r *PropertyRepo) Create(p *entity.Property) error {
	query := `
		INSERT INTO properties (` + propertyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Name, string(p.Type), p.Address, p.UnitNumber, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert property: %w", err)
	}
	return nil
}

func (r *PropertyRepo) Update(p *entity.Property) error {
	query := `
		UPDATE properties SET name = $2, type = $3, address = $4, unit_number = $5, updated_at = $6
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		p.ID, p.Name, string(p.Type), p.Address, p.UnitNumber, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update property: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete relies on the RESTRICT foreign key from tenants.
func (r *PropertyRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM properties WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrPropertyInUse
		}
		return fmt.Errorf("delete property: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PropertyRepo) GetByID(id string) (*entity.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE id = $1`
	p, err := scanProperty(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get property: %w", err)
	}
	return p, nil
}

func (r *PropertyRepo) List() ([]*entity.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties ORDER BY created_at, id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	defer rows.Close()
	var list []*entity.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("scan property: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func scanProperty(row pgx.Row) (*entity.Property, error) {
	var p entity.Property
	var typ string
	if err := row.Scan(&p.ID, &p.Name, &typ, &p.Address, &p.UnitNumber, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.Type = entity.ParsePropertyType(typ)
	return &p, nil
}
