package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is user-set; nothing transitions it automatically.
type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "Draft"
	InvoiceStatusSent    InvoiceStatus = "Sent"
	InvoiceStatusPaid    InvoiceStatus = "Paid"
	InvoiceStatusOverdue InvoiceStatus = "Overdue"
)

// ParseInvoiceStatus returns the status named by s (case-insensitive).
func ParseInvoiceStatus(s string) (InvoiceStatus, bool) {
	for _, st := range []InvoiceStatus{InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid, InvoiceStatusOverdue} {
		if equalFold(string(st), s) {
			return st, true
		}
	}
	return "", false
}

// DocumentType distinguishes a rent invoice from a tax receipt.
type DocumentType string

const (
	DocumentRentInvoice DocumentType = "RentInvoice"
	DocumentTaxReceipt  DocumentType = "TaxReceipt"
)

// ParseDocumentType returns the document type named by s (case-insensitive).
func ParseDocumentType(s string) (DocumentType, bool) {
	for _, dt := range []DocumentType{DocumentRentInvoice, DocumentTaxReceipt} {
		if equalFold(string(dt), s) {
			return dt, true
		}
	}
	return "", false
}

// Invoice is a rent invoice or tax receipt issued to a tenant.
//
// items and totalAmount are unexported so the total can only change through
// SetItems, which recomputes it.
type Invoice struct {
	ID            string
	TenantID      string
	CreatedDate   time.Time
	DueDate       time.Time
	ReceivedDate  *time.Time
	Status        InvoiceStatus
	BillingPeriod string
	Notes         string
	BankDetails   string
	DocumentType  DocumentType

	items       []LineItem
	totalAmount decimal.Decimal
}

// Items returns a copy of the line items.
func (i *Invoice) Items() []LineItem {
	out := make([]LineItem, len(i.items))
	copy(out, i.items)
	return out
}

// TotalAmount is the sum of the line item amounts.
func (i *Invoice) TotalAmount() decimal.Decimal {
	return i.totalAmount
}

// SetItems replaces the line items and recomputes the total.
func (i *Invoice) SetItems(items []LineItem) {
	i.items = make([]LineItem, len(items))
	copy(i.items, items)
	i.totalAmount = SumItems(items)
}

// Clone returns a deep copy.
func (i *Invoice) Clone() *Invoice {
	c := *i
	c.items = i.Items()
	if i.ReceivedDate != nil {
		rd := *i.ReceivedDate
		c.ReceivedDate = &rd
	}
	return &c
}
