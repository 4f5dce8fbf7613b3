package memory

import (
	"github.com/MUNTAZIR1234/Invoice/internal/domain/entity"
	"github.com/MUNTAZIR1234/Invoice/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implements repository.CompanyRepository.
type CompanyRepo struct {
	s *Store
}

func (r *CompanyRepo) Get() (*entity.CompanyInfo, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if r.s.company == nil {
		return nil, nil
	}
	c := *r.s.company
	return &c, nil
}

func (r *CompanyRepo) Save(company *entity.CompanyInfo) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	prev := r.s.state()
	c := *company
	r.s.company = &c
	return r.s.commit(prev)
}
