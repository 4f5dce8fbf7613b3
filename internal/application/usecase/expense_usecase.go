package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MUNTAZIR1234/Invoice/internal/application/dto"
	"github.com/MUNTAZIR1234/Invoice/internal/domain"
	"github.com/MUNTAZIR1234/Invoice/internal/domain/billing"
	"github.com/MUNTAZIR1234/Invoice/internal/domain/entity"
	"github.com/MUNTAZIR1234/Invoice/internal/domain/repository"
)

// ExpenseUseCase records money spent on properties.
type ExpenseUseCase struct {
	repo       repository.ExpenseRepository
	properties repository.PropertyRepository
}

// NewExpenseUseCase builds the use case.
func NewExpenseUseCase(repo repository.ExpenseRepository, properties repository.PropertyRepository) *ExpenseUseCase {
	return &ExpenseUseCase{repo: repo, properties: properties}
}

// Create records an expense. Date defaults to today, category to Other.
func (uc *ExpenseUseCase) Create(in dto.ExpenseRequest) (*dto.ExpenseResponse, error) {
	if !in.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be greater than zero", domain.ErrInvalidInput)
	}
	p, err := uc.properties.GetByID(in.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("expense: get property: %w", err)
	}
	if p == nil {
		return nil, fmt.Errorf("%w: property %s does not exist", domain.ErrInvalidInput, in.PropertyID)
	}

	now := time.Now()
	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if in.Date != "" {
		if date, err = billing.ParseWireDate(in.Date); err != nil {
			return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrInvalidInput)
		}
	}
	category := entity.ExpenseOther
	for _, c := range entity.ExpenseCategories {
		if strings.EqualFold(c, strings.TrimSpace(in.Category)) {
			category = c
		}
	}

	e := &entity.Expense{
		ID:          uuid.New().String(),
		PropertyID:  p.ID,
		Amount:      in.Amount,
		Category:    category,
		Date:        date,
		Description: strings.TrimSpace(in.Description),
		CreatedAt:   now,
	}
	if err := uc.repo.Create(e); err != nil {
		return nil, fmt.Errorf("expense: create: %w", err)
	}
	return toExpenseResponse(e, p.DisplayName()), nil
}

// List returns expenses, newest first, optionally for one property.
func (uc *ExpenseUseCase) List(propertyID string) ([]*dto.ExpenseResponse, error) {
	list, err := uc.repo.List(propertyID)
	if err != nil {
		return nil, fmt.Errorf("expense: list: %w", err)
	}
	props, err := uc.properties.List()
	if err != nil {
		return nil, fmt.Errorf("expense: list properties: %w", err)
	}
	names := make(map[string]string, len(props))
	for _, p := range props {
		names[p.ID] = p.DisplayName()
	}
	out := make([]*dto.ExpenseResponse, 0, len(list))
	for i := len(list) - 1; i >= 0; i-- {
		e := list[i]
		out = append(out, toExpenseResponse(e, names[e.PropertyID]))
	}
	return out, nil
}

// Delete removes an expense.
func (uc *ExpenseUseCase) Delete(id string) error {
	e, err := uc.repo.GetByID(id)
	if err != nil {
		return fmt.Errorf("expense: get: %w", err)
	}
	if e == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return fmt.Errorf("expense: delete: %w", err)
	}
	return nil
}

func toExpenseResponse(e *entity.Expense, propertyName string) *dto.ExpenseResponse {
	return &dto.ExpenseResponse{
		ID:           e.ID,
		PropertyID:   e.PropertyID,
		PropertyName: propertyName,
		Amount:       e.Amount,
		Category:     e.Category,
		Date:         billing.WireDate(e.Date),
		Description:  e.Description,
	}
}
