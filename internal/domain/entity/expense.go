package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense categories.
const (
	ExpenseMaintenance   = "Maintenance"
	ExpenseTax           = "Tax"
	ExpenseInsurance     = "Insurance"
	ExpenseUtilities     = "Utilities"
	ExpenseLegal         = "Legal"
	ExpenseManagementFee = "Management Fee"
	ExpenseOther         = "Other"
)

// ExpenseCategories in display order.
var ExpenseCategories = []string{
	ExpenseMaintenance, ExpenseTax, ExpenseInsurance, ExpenseUtilities,
	ExpenseLegal, ExpenseManagementFee, ExpenseOther,
}

// Expense is money spent on a property.
type Expense struct {
	ID          string
	PropertyID  string
	Amount      decimal.Decimal
	Category    string
	Date        time.Time
	Description string
	CreatedAt   time.Time
}
