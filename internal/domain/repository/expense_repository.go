package repository

import "github.com/MUNTAZIR1234/Invoice/internal/domain/entity"

// ExpenseRepository is the persistence port for expenses.
type ExpenseRepository interface {
	Create(expense *entity.Expense) error
	Delete(id string) error
	GetByID(id string) (*entity.Expense, error)
	// List returns all expenses, or only those of propertyID when it is set.
	List(propertyID string) ([]*entity.Expense, error)
}
