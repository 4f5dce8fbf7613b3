package repository

import "github.com/MUNTAZIR1234/Invoice/internal/domain/entity"

// TenantRepository is the persistence port for tenants.
type TenantRepository interface {
	Create(tenant *entity.Tenant) error
	Update(tenant *entity.Tenant) error
	Delete(id string) error
	GetByID(id string) (*entity.Tenant, error)
	List() ([]*entity.Tenant, error)
	CountByProperty(propertyID string) (int, error)
}
