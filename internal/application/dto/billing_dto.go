package dto

import "github.com/shopspring/decimal"

// LineItemDTO one invoice row.
type LineItemDTO struct {
	Description string          `json:"description" validate:"required,max=300"`
	Amount      decimal.Decimal `json:"amount" validate:"gte=0,lte=1000000000000"`
}

// InvoiceRequest body for POST/PUT /api/invoices.
// Items == nil means "use the standard rent items"; an empty list is kept empty.
// DueDate, when set, overrides the due-date policy.
type InvoiceRequest struct {
	TenantID      string        `json:"tenantId" validate:"required"`
	Items         []LineItemDTO `json:"items" validate:"omitempty,dive"`
	BillingPeriod string        `json:"billingPeriod" validate:"max=200"`
	CreatedDate   string        `json:"createdDate" validate:"omitempty,datetime=2006-01-02"`
	DueDate       string        `json:"dueDate" validate:"omitempty,datetime=2006-01-02"`
	ReceivedDate  string        `json:"receivedDate" validate:"omitempty,datetime=2006-01-02"`
	Status        string        `json:"status" validate:"omitempty,oneof=Draft Sent Paid Overdue"`
	Notes         *string       `json:"notes"`
	BankDetails   *string       `json:"bankDetails"`
	DocumentType  string        `json:"documentType" validate:"omitempty,oneof=RentInvoice TaxReceipt"`
}

// InvoiceStatusRequest body for PATCH /api/invoices/:id/status.
type InvoiceStatusRequest struct {
	Status       string `json:"status" validate:"required,oneof=Draft Sent Paid Overdue"`
	ReceivedDate string `json:"receivedDate" validate:"omitempty,datetime=2006-01-02"`
}

// InvoiceFilter query for GET /api/invoices.
type InvoiceFilter struct {
	TenantID string `query:"tenantId"`
	Status   string `query:"status"`
}

// InvoiceResponse invoice on the wire. Dates are YYYY-MM-DD.
type InvoiceResponse struct {
	ID            string          `json:"id"`
	TenantID      string          `json:"tenantId"`
	TenantName    string          `json:"tenantName,omitempty"`
	Items         []LineItemDTO   `json:"items"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	AmountInWords string          `json:"amountInWords"`
	CreatedDate   string          `json:"createdDate"`
	DueDate       string          `json:"dueDate"`
	ReceivedDate  string          `json:"receivedDate,omitempty"`
	Status        string          `json:"status"`
	BillingPeriod string          `json:"billingPeriod"`
	Notes         string          `json:"notes,omitempty"`
	BankDetails   string          `json:"bankDetails,omitempty"`
	DocumentType  string          `json:"documentType"`
}

// PreviewRequest body for POST /api/invoices/preview.
type PreviewRequest struct {
	Items         []LineItemDTO `json:"items" validate:"dive"`
	BillingPeriod string        `json:"billingPeriod"`
}

// PreviewResponse what the invoice form shows before saving.
type PreviewResponse struct {
	NextID        string          `json:"nextId"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	AmountInWords string          `json:"amountInWords"`
	BillingPeriod string          `json:"billingPeriod"`
	DueDate       string          `json:"dueDate"`
	KnownPeriod   bool            `json:"knownPeriod"`
}

// NextIDResponse GET /api/invoices/next-id.
type NextIDResponse struct {
	ID string `json:"id"`
}

// CycleDTO one billing cycle.
type CycleDTO struct {
	Label     string `json:"label"`
	Half      string `json:"half"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	DueDate   string `json:"dueDate"`
}

// CycleResponse GET /api/billing/cycle.
type CycleResponse struct {
	Today   string     `json:"today"`
	Current CycleDTO   `json:"current"`
	Options []CycleDTO `json:"options"`
}

// WordsResponse GET /api/billing/words.
type WordsResponse struct {
	Amount    decimal.Decimal `json:"amount"`
	Formatted string          `json:"formatted"`
	Words     string          `json:"words"`
}
