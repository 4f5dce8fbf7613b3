package entity

import "github.com/shopspring/decimal"

// LineItem is one billed row of an invoice. Amount is never negative.
type LineItem struct {
	Description string
	Amount      decimal.Decimal
}

// SumItems adds up the item amounts.
func SumItems(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Amount)
	}
	return total
}
