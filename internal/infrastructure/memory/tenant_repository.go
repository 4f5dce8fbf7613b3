package memory

import (
	"github.com/MUNTAZIR1234/Invoice/internal/domain"
	"github.com/MUNTAZIR1234/Invoice/internal/domain/entity"
	"github.com/MUNTAZIR1234/Invoice/internal/domain/repository"
)

var _ repository.TenantRepository = (*TenantRepo)(nil)

// TenantRepo implements repository.TenantRepository.
type TenantRepo struct {
	s *Store
}

func (r *TenantRepo) Create(tenant *entity.Tenant) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	prev := r.s.state()
	if r.s.tenantIndex(tenant.ID) >= 0 {
		return domain.ErrDuplicate
	}
	r.s.tenants = append(r.s.tenants, cloneTenant(tenant))
	return r.s.commit(prev)
}

func (r *TenantRepo) Update(tenant *entity.Tenant) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	prev := r.s.state()
	i := r.s.tenantIndex(tenant.ID)
	if i < 0 {
		return domain.ErrNotFound
	}
	r.s.tenants[i] = cloneTenant(tenant)
	return r.s.commit(prev)
}

func (r *TenantRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	prev := r.s.state()
	i := r.s.tenantIndex(id)
	if i < 0 {
		return nil
	}
	r.s.tenants = append(r.s.tenants[:i], r.s.tenants[i+1:]...)
	return r.s.commit(prev)
}

func (r *TenantRepo) GetByID(id string) (*entity.Tenant, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if i := r.s.tenantIndex(id); i >= 0 {
		return cloneTenant(r.s.tenants[i]), nil
	}
	return nil, nil
}

func (r *TenantRepo) List() ([]*entity.Tenant, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Tenant, 0, len(r.s.tenants))
	for _, t := range r.s.tenants {
		out = append(out, cloneTenant(t))
	}
	return out, nil
}

func (r *TenantRepo) CountByProperty(propertyID string) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.tenantsOf(propertyID), nil
}

func (s *Store) tenantIndex(id string) int {
	for i, t := range s.tenants {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) tenantsOf(propertyID string) int {
	n := 0
	for _, t := range s.tenants {
		if t.PropertyID != "" && t.PropertyID == propertyID {
			n++
		}
	}
	return n
}
