package memory

import (
	"github.com/MUNTAZIR1234/Invoice/internal/domain"
	"github.com/MUNTAZIR1234/Invoice/internal/domain/entity"
	"github.com/MUNTAZIR1234/Invoice/internal/domain/repository"
)

var _ repository.PropertyRepository = (*PropertyRepo)(nil)

// PropertyRepo implements repository.PropertyRepository.
type PropertyRepo struct {
	s *Store
}

func (r *PropertyRepo) Create(property *entity.Property) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	prev := r.s.state()
	if r.s.propertyIndex(property.ID) >= 0 {
		return domain.ErrDuplicate
	}
	c := *property
	r.s.properties = append(r.s.properties, &c)
	return r.s.commit(prev)
}

func (r *PropertyRepo) Update(property *entity.Property) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	prev := r.s.state()
	i := r.s.propertyIndex(property.ID)
	if i < 0 {
		return domain.ErrNotFound
	}
	c := *property
	r.s.properties[i] = &c
	return r.s.commit(prev)
}

// Delete refuses while any tenant still points at the property. The check
// and the removal happen under one lock.
func (r *PropertyRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	prev := r.s.state()
	if r.s.tenantsOf(id) > 0 {
		return domain.ErrPropertyInUse
	}
	i := r.s.propertyIndex(id)
	if i < 0 {
		return nil
	}
	r.s.properties = append(r.s.properties[:i], r.s.properties[i+1:]...)
	return r.s.commit(prev)
}

func (r *PropertyRepo) GetByID(id string) (*entity.Property, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if i := r.s.propertyIndex(id); i >= 0 {
		c := *r.s.properties[i]
		return &c, nil
	}
	return nil, nil
}

func (r *PropertyRepo) List() ([]*entity.Property, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Property, 0, len(r.s.properties))
	for _, p := range r.s.properties {
		c := *p
		out = append(out, &c)
	}
	return out, nil
}

func (s *Store) propertyIndex(id string) int {
	for i, p := range s.properties {
		if p.ID == id {
			return i
		}
	}
	return -1
}
