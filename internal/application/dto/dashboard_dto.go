package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO response for GET /api/dashboard/summary.
type DashboardSummaryDTO struct {
	TotalInvoiced    decimal.Decimal `json:"totalInvoiced"`
	TotalPaid        decimal.Decimal `json:"totalPaid"`
	TotalOutstanding decimal.Decimal `json:"totalOutstanding"`
	TotalExpenses    decimal.Decimal `json:"totalExpenses"`
	NetIncome        decimal.Decimal `json:"netIncome"` // paid - expenses

	InvoiceCount    int            `json:"invoiceCount"`
	InvoicesByState map[string]int `json:"invoicesByStatus"`

	TenantCount       int             `json:"tenantCount"`
	ActiveTenantCount int             `json:"activeTenantCount"`
	PropertyCount     int             `json:"propertyCount"`
	OccupiedCount     int             `json:"occupiedCount"`
	OccupancyRate     decimal.Decimal `json:"occupancyRate"` // percent, one decimal
	PropertiesByType  map[string]int  `json:"propertiesByType"`

	CurrentCycle string `json:"currentCycle"`
}

// LedgerEntryDTO one invoice in a tenant statement.
type LedgerEntryDTO struct {
	InvoiceID     string          `json:"invoiceId"`
	Date          string          `json:"date"`
	BillingPeriod string          `json:"billingPeriod"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	DocumentType  string          `json:"documentType"`
}

// LedgerDTO statement of account for one tenant.
type LedgerDTO struct {
	TenantID     string           `json:"tenantId"`
	TenantName   string           `json:"tenantName"`
	PropertyName string           `json:"propertyName"`
	Entries      []LedgerEntryDTO `json:"entries"`
	TotalBilled  decimal.Decimal  `json:"totalBilled"`
	TotalPaid    decimal.Decimal  `json:"totalPaid"`
	Outstanding  decimal.Decimal  `json:"outstanding"`
}
