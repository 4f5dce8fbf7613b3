package memory

import (
	"github.com/MUNTAZIR1234/Invoice/internal/domain"
	"github.com/MUNTAZIR1234/Invoice/internal/domain/entity"
	"github.com/MUNTAZIR1234/Invoice/internal/domain/repository"
)

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

// ExpenseRepo implements repository.ExpenseRepository.
type ExpenseRepo struct {
	s *Store
}

func (r *ExpenseRepo) Create(expense *entity.Expense) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	prev := r.s.state()
	for _, e := range r.s.expenses {
		if e.ID == expense.ID {
			return domain.ErrDuplicate
		}
	}
	c := *expense
	r.s.expenses = append(r.s.expenses, &c)
	return r.s.commit(prev)
}

func (r *ExpenseRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	prev := r.s.state()
	for i, e := range r.s.expenses {
		if e.ID == id {
			r.s.expenses = append(r.s.expenses[:i], r.s.expenses[i+1:]...)
			return r.s.commit(prev)
		}
	}
	return nil
}

func (r *ExpenseRepo) GetByID(id string) (*entity.Expense, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, e := range r.s.expenses {
		if e.ID == id {
			c := *e
			return &c, nil
		}
	}
	return nil, nil
}

func (r *ExpenseRepo) List(propertyID string) ([]*entity.Expense, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Expense, 0, len(r.s.expenses))
	for _, e := range r.s.expenses {
		if propertyID != "" && e.PropertyID != propertyID {
			continue
		}
		c := *e
		out = append(out, &c)
	}
	return out, nil
}
