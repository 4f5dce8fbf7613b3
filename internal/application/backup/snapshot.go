package backup

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MUNTAZIR1234/Invoice/internal/domain"
	"github.com/MUNTAZIR1234/Invoice/internal/domain/billing"
	"github.com/MUNTAZIR1234/Invoice/internal/domain/entity"
	"github.com/MUNTAZIR1234/Invoice/internal/domain/repository"
)

// SnapshotVersion is written into every exported snapshot.
const SnapshotVersion = 1

// Snapshot is the JSON document used for backups and for the file store.
// Keys follow the browser app's saved state so its exports restore as is.
type Snapshot struct {
	Version    int              `json:"version"`
	ExportedAt string           `json:"exportedAt,omitempty"`
	Company    *CompanyRecord   `json:"company,omitempty"`
	Properties []PropertyRecord `json:"properties"`
	Tenants    []TenantRecord   `json:"tenants"`
	Invoices   []InvoiceRecord  `json:"invoices"`
	Expenses   []ExpenseRecord  `json:"expenses"`
}

type PropertyRecord struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	Address    string `json:"address,omitempty"`
	UnitNumber string `json:"unitNumber,omitempty"`
}

type TenantRecord struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	PropertyID string `json:"propertyId"`
	Status     string `json:"status"`
	MoveInDate string `json:"moveInDate,omitempty"`
}

type ItemRecord struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

type InvoiceRecord struct {
	ID            string          `json:"id"`
	TenantID      string          `json:"tenantId"`
	Items         []ItemRecord    `json:"items"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	CreatedAt     string          `json:"createdAt"`
	DueDate       string          `json:"dueDate"`
	ReceivedDate  string          `json:"receivedDate,omitempty"`
	Status        string          `json:"status,omitempty"`
	BillingPeriod string          `json:"billingPeriod"`
	Notes         string          `json:"notes,omitempty"`
	BankDetails   string          `json:"bankDetails,omitempty"`
	InvoiceType   string          `json:"invoiceType"`
}

type ExpenseRecord struct {
	ID          string          `json:"id"`
	PropertyID  string          `json:"propertyId"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
}

type SettingsRecord struct {
	PrimaryColor      string `json:"primaryColor,omitempty"`
	FontFamily        string `json:"fontFamily,omitempty"`
	HeaderLayout      string `json:"headerLayout,omitempty"`
	ShowBankDetails   *bool  `json:"showBankDetails,omitempty"`
	ShowTenantContact *bool  `json:"showTenantContact,omitempty"`
}

type CompanyRecord struct {
	Name               string          `json:"name"`
	Address            string          `json:"address"`
	Email              string          `json:"email"`
	DefaultNotes       string          `json:"defaultNotes,omitempty"`
	DefaultBankDetails string          `json:"defaultBankDetails,omitempty"`
	InvoiceSettings    *SettingsRecord `json:"invoiceSettings,omitempty"`
}

// Labels used by the browser app for the document type.
const (
	legacyRentInvoice = "Rent Invoice"
	legacyTaxReceipt  = "Tax Receipt"
)

// Encode renders ds as an indented snapshot document.
func Encode(ds *repository.Dataset, exportedAt time.Time) ([]byte, error) {
	s := Snapshot{
		Version:    SnapshotVersion,
		Properties: make([]PropertyRecord, 0, len(ds.Properties)),
		Tenants:    make([]TenantRecord, 0, len(ds.Tenants)),
		Invoices:   make([]InvoiceRecord, 0, len(ds.Invoices)),
		Expenses:   make([]ExpenseRecord, 0, len(ds.Expenses)),
	}
	if !exportedAt.IsZero() {
		s.ExportedAt = exportedAt.UTC().Format(time.RFC3339)
	}
	if c := ds.Company; c != nil {
		show, contact := c.InvoiceSettings.ShowBankDetails, c.InvoiceSettings.ShowTenantContact
		s.Company = &CompanyRecord{
			Name:               c.Name,
			Address:            c.Address,
			Email:              c.Email,
			DefaultNotes:       c.DefaultNotes,
			DefaultBankDetails: c.DefaultBankDetails,
			InvoiceSettings: &SettingsRecord{
				PrimaryColor:      c.InvoiceSettings.PrimaryColor,
				FontFamily:        c.InvoiceSettings.FontFamily,
				HeaderLayout:      c.InvoiceSettings.HeaderLayout,
				ShowBankDetails:   &show,
				ShowTenantContact: &contact,
			},
		}
	}
	for _, p := range ds.Properties {
		s.Properties = append(s.Properties, PropertyRecord{
			ID: p.ID, Name: p.Name, Type: string(p.Type), Address: p.Address, UnitNumber: p.UnitNumber,
		})
	}
	for _, t := range ds.Tenants {
		r := TenantRecord{
			ID: t.ID, Name: t.Name, Email: t.Email, Phone: t.Phone, Address: t.Address,
			PropertyID: t.PropertyID, Status: string(t.Status),
		}
		if t.MoveInDate != nil {
			r.MoveInDate = billing.WireDate(*t.MoveInDate)
		}
		s.Tenants = append(s.Tenants, r)
	}
	for _, inv := range ds.Invoices {
		r := InvoiceRecord{
			ID:            inv.ID,
			TenantID:      inv.TenantID,
			TotalAmount:   inv.TotalAmount(),
			CreatedAt:     billing.WireDate(inv.CreatedDate),
			DueDate:       billing.WireDate(inv.DueDate),
			Status:        string(inv.Status),
			BillingPeriod: inv.BillingPeriod,
			Notes:         inv.Notes,
			BankDetails:   inv.BankDetails,
			InvoiceType:   legacyRentInvoice,
		}
		if inv.DocumentType == entity.DocumentTaxReceipt {
			r.InvoiceType = legacyTaxReceipt
		}
		if inv.ReceivedDate != nil {
			r.ReceivedDate = billing.WireDate(*inv.ReceivedDate)
		}
		for _, it := range inv.Items() {
			r.Items = append(r.Items, ItemRecord{Description: it.Description, Amount: it.Amount})
		}
		s.Invoices = append(s.Invoices, r)
	}
	for _, e := range ds.Expenses {
		s.Expenses = append(s.Expenses, ExpenseRecord{
			ID: e.ID, PropertyID: e.PropertyID, Amount: e.Amount, Category: e.Category,
			Date: billing.WireDate(e.Date), Description: e.Description,
		})
	}
	return json.MarshalIndent(s, "", "  ")
}

// Decode parses a snapshot into typed records. Optional fields get explicit
// defaults; invoice totals are recomputed from the items. Records that cannot
// be trusted (invoices without an id, duplicate ids, negative amounts, bad
// dates) reject the whole snapshot with domain.ErrInvalidInput.
func Decode(data []byte, now time.Time) (*repository.Dataset, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, domain.ErrEmptyFile
	}
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: snapshot is not valid JSON: %v", domain.ErrInvalidInput, err)
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	ds := &repository.Dataset{}
	if s.Company != nil {
		ds.Company = decodeCompany(s.Company)
	}

	seen := map[string]bool{}
	for i, r := range s.Properties {
		p := &entity.Property{
			ID:         defaultID(r.ID),
			Name:       defaultString(r.Name, "Unknown Unit"),
			Type:       entity.ParsePropertyType(r.Type),
			Address:    strings.TrimSpace(r.Address),
			UnitNumber: strings.TrimSpace(r.UnitNumber),
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("%w: property %d: duplicate id %q", domain.ErrInvalidInput, i+1, p.ID)
		}
		seen[p.ID] = true
		ds.Properties = append(ds.Properties, p)
	}

	seen = map[string]bool{}
	for i, r := range s.Tenants {
		t := &entity.Tenant{
			ID:         defaultID(r.ID),
			Name:       defaultString(r.Name, "Unknown"),
			Email:      strings.TrimSpace(r.Email),
			Phone:      strings.TrimSpace(r.Phone),
			Address:    strings.TrimSpace(r.Address),
			PropertyID: strings.TrimSpace(r.PropertyID),
			Status:     entity.ParseTenantStatus(r.Status),
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if r.MoveInDate != "" {
			d, err := parseDate(r.MoveInDate)
			if err != nil {
				return nil, fmt.Errorf("%w: tenant %d: moveInDate: %v", domain.ErrInvalidInput, i+1, err)
			}
			t.MoveInDate = &d
		}
		if seen[t.ID] {
			return nil, fmt.Errorf("%w: tenant %d: duplicate id %q", domain.ErrInvalidInput, i+1, t.ID)
		}
		seen[t.ID] = true
		ds.Tenants = append(ds.Tenants, t)
	}

	seen = map[string]bool{}
	for i, r := range s.Invoices {
		inv, err := decodeInvoice(r, today)
		if err != nil {
			return nil, fmt.Errorf("%w: invoice %d: %v", domain.ErrInvalidInput, i+1, err)
		}
		if seen[inv.ID] {
			return nil, fmt.Errorf("%w: invoice %d: duplicate id %q", domain.ErrInvalidInput, i+1, inv.ID)
		}
		seen[inv.ID] = true
		ds.Invoices = append(ds.Invoices, inv)
	}

	for i, r := range s.Expenses {
		if r.Amount.IsNegative() {
			return nil, fmt.Errorf("%w: expense %d: negative amount", domain.ErrInvalidInput, i+1)
		}
		date := today
		if r.Date != "" {
			d, err := parseDate(r.Date)
			if err != nil {
				return nil, fmt.Errorf("%w: expense %d: date: %v", domain.ErrInvalidInput, i+1, err)
			}
			date = d
		}
		ds.Expenses = append(ds.Expenses, &entity.Expense{
			ID:          defaultID(r.ID),
			PropertyID:  strings.TrimSpace(r.PropertyID),
			Amount:      r.Amount,
			Category:    defaultString(r.Category, entity.ExpenseOther),
			Date:        date,
			Description: strings.TrimSpace(r.Description),
			CreatedAt:   now,
		})
	}

	// A tenant pointing at a property the snapshot does not contain is
	// restored unassigned.
	known := make(map[string]bool, len(ds.Properties))
	for _, p := range ds.Properties {
		known[p.ID] = true
	}
	for _, t := range ds.Tenants {
		if t.PropertyID != "" && !known[t.PropertyID] {
			t.PropertyID = ""
		}
	}
	return ds, nil
}

func decodeInvoice(r InvoiceRecord, today time.Time) (*entity.Invoice, error) {
	id := strings.TrimSpace(r.ID)
	if id == "" {
		return nil, fmt.Errorf("missing id")
	}
	items := make([]entity.LineItem, 0, len(r.Items))
	for j, it := range r.Items {
		if it.Amount.IsNegative() {
			return nil, fmt.Errorf("item %d: negative amount", j+1)
		}
		items = append(items, entity.LineItem{Description: strings.TrimSpace(it.Description), Amount: it.Amount})
	}

	created := today
	if r.CreatedAt != "" {
		d, err := parseDate(r.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("createdAt: %v", err)
		}
		created = d
	}
	due := created
	if r.DueDate != "" {
		d, err := parseDate(r.DueDate)
		if err != nil {
			return nil, fmt.Errorf("dueDate: %v", err)
		}
		due = d
	}

	status := entity.InvoiceStatusDraft
	if r.Status != "" {
		st, ok := entity.ParseInvoiceStatus(r.Status)
		if !ok {
			return nil, fmt.Errorf("unknown status %q", r.Status)
		}
		status = st
	}

	inv := &entity.Invoice{
		ID:            id,
		TenantID:      strings.TrimSpace(r.TenantID),
		CreatedDate:   created,
		DueDate:       due,
		Status:        status,
		BillingPeriod: strings.TrimSpace(r.BillingPeriod),
		Notes:         r.Notes,
		BankDetails:   r.BankDetails,
		DocumentType:  decodeDocumentType(r.InvoiceType),
	}
	if r.ReceivedDate != "" {
		d, err := parseDate(r.ReceivedDate)
		if err != nil {
			return nil, fmt.Errorf("receivedDate: %v", err)
		}
		inv.ReceivedDate = &d
	}
	inv.SetItems(items)
	return inv, nil
}

func decodeDocumentType(s string) entity.DocumentType {
	if strings.EqualFold(strings.TrimSpace(s), legacyTaxReceipt) {
		return entity.DocumentTaxReceipt
	}
	if dt, ok := entity.ParseDocumentType(s); ok {
		return dt
	}
	return entity.DocumentRentInvoice
}

func decodeCompany(r *CompanyRecord) *entity.CompanyInfo {
	settings := entity.DefaultInvoiceSettings()
	if s := r.InvoiceSettings; s != nil {
		if s.PrimaryColor != "" {
			settings.PrimaryColor = s.PrimaryColor
		}
		if s.FontFamily != "" {
			settings.FontFamily = s.FontFamily
		}
		if s.HeaderLayout != "" {
			settings.HeaderLayout = s.HeaderLayout
		}
		if s.ShowBankDetails != nil {
			settings.ShowBankDetails = *s.ShowBankDetails
		}
		if s.ShowTenantContact != nil {
			settings.ShowTenantContact = *s.ShowTenantContact
		}
	}
	return &entity.CompanyInfo{
		Name:               strings.TrimSpace(r.Name),
		Address:            strings.TrimSpace(r.Address),
		Email:              strings.TrimSpace(r.Email),
		DefaultNotes:       r.DefaultNotes,
		DefaultBankDetails: r.DefaultBankDetails,
		InvoiceSettings:    settings,
	}
}

// parseDate accepts YYYY-MM-DD and full RFC 3339 timestamps.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if d, err := billing.ParseWireDate(s); err == nil {
		return d, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q is not a YYYY-MM-DD date", s)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func defaultID(id string) string {
	if id = strings.TrimSpace(id); id != "" {
		return id
	}
	return uuid.New().String()
}

func defaultString(s, def string) string {
	if s = strings.TrimSpace(s); s != "" {
		return s
	}
	return def
}
