package repository

import "github.com/MUNTAZIR1234/Invoice/internal/domain/entity"

// PropertyRepository is the persistence port for properties.
// Delete returns domain.ErrPropertyInUse while a tenant references the property.
type PropertyRepository interface {
	Create(property *entity.Property) error
	Update(property *entity.Property) error
	Delete(id string) error
	GetByID(id string) (*entity.Property, error)
	List() ([]*entity.Property, error)
}
