package dto

import "github.com/shopspring/decimal"

// ExpenseRequest body for POST /api/expenses.
type ExpenseRequest struct {
	PropertyID  string          `json:"propertyId" validate:"required"`
	Amount      decimal.Decimal `json:"amount" validate:"gt=0,lte=1000000000000"`
	Category    string          `json:"category" validate:"required,oneof=Maintenance Tax Insurance Utilities Legal 'Management Fee' Other"`
	Date        string          `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Description string          `json:"description" validate:"max=500"`
}

// ExpenseResponse expense on the wire.
type ExpenseResponse struct {
	ID           string          `json:"id"`
	PropertyID   string          `json:"propertyId"`
	PropertyName string          `json:"propertyName"`
	Amount       decimal.Decimal `json:"amount"`
	Category     string          `json:"category"`
	Date         string          `json:"date"`
	Description  string          `json:"description"`
}
