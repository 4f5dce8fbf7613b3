// Package report builds CSV exports, tenant ledgers and the dashboard summary.
package report

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/MUNTAZIR1234/Invoice/internal/domain"
	"github.com/MUNTAZIR1234/Invoice/internal/domain/billing"
	"github.com/MUNTAZIR1234/Invoice/internal/domain/entity"
	"github.com/MUNTAZIR1234/Invoice/internal/domain/repository"
	"github.com/MUNTAZIR1234/Invoice/internal/infrastructure/csvio"
)

// Type names a CSV report.
type Type string

const (
	TypeTenants    Type = "tenants"
	TypeProperties Type = "properties"
	TypeInvoices   Type = "invoices"
	TypeLedger     Type = "ledger"
	TypeExpenses   Type = "expenses"
)

// Types lists every report.
var Types = []Type{TypeTenants, TypeProperties, TypeInvoices, TypeLedger, TypeExpenses}

// ParseType matches s case-insensitively.
func ParseType(s string) (Type, bool) {
	for _, t := range Types {
		if strings.EqualFold(strings.TrimSpace(s), string(t)) {
			return t, true
		}
	}
	return "", false
}

// FileName returns "report_<type>_<YYYY-MM-DD>.csv".
// A tenant ledger is named after the tenant: report_ledger_<tenant>_<date>.csv.
func FileName(t Type, day time.Time) string {
	return fmt.Sprintf("report_%s_%s.csv", t, billing.WireDate(day))
}

// Header rows. Every column the report carries is named.
var (
	TenantColumns   = []string{"Name", "Email", "Phone", "Address", "Property ID", "Property", "Status"}
	PropertyColumns = []string{"Name", "Type", "Address", "Unit Number", "Status"}
	InvoiceColumns  = []string{"ID", "Date", "Due Date", "Receipt Date", "Tenant", "Amount", "Period", "Status", "Type"}
	LedgerColumns   = []string{"ID", "Date", "Period", "Amount", "Status"}
	ExpenseColumns  = []string{"Date", "Property", "Category", "Description", "Amount"}
)

// ReportUseCase reads every collection and writes reports.
type ReportUseCase struct {
	tenants    repository.TenantRepository
	properties repository.PropertyRepository
	invoices   repository.InvoiceRepository
	expenses   repository.ExpenseRepository
	now        func() time.Time
}

// NewReportUseCase builds the use case.
func NewReportUseCase(
	tenants repository.TenantRepository,
	properties repository.PropertyRepository,
	invoices repository.InvoiceRepository,
	expenses repository.ExpenseRepository,
) *ReportUseCase {
	return &ReportUseCase{
		tenants:    tenants,
		properties: properties,
		invoices:   invoices,
		expenses:   expenses,
		now:        time.Now,
	}
}

// WithClock replaces the clock used for file names and statements.
func (uc *ReportUseCase) WithClock(now func() time.Time) *ReportUseCase {
	uc.now = now
	return uc
}

// ExportCSV writes report t. tenantID is required for the ledger and ignored
// otherwise.
func (uc *ReportUseCase) ExportCSV(ctx context.Context, t Type, tenantID string) (data []byte, filename string, err error) {
	var records [][]string
	filename = FileName(t, uc.now())
	switch t {
	case TypeTenants:
		records, err = uc.tenantRecords()
	case TypeProperties:
		records, err = uc.propertyRecords()
	case TypeInvoices:
		records, err = uc.invoiceRecords()
	case TypeLedger:
		var tenantName string
		records, tenantName, err = uc.ledgerRecords(ctx, tenantID)
		filename = fmt.Sprintf("report_%s_%s_%s.csv", t, fileSafe(tenantName), billing.WireDate(uc.now()))
	case TypeExpenses:
		records, err = uc.expenseRecords()
	default:
		return nil, "", fmt.Errorf("%w: unknown report %q", domain.ErrInvalidInput, t)
	}
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	if err := csvio.NewWriter(&buf).WriteAll(records); err != nil {
		return nil, "", fmt.Errorf("report: write csv: %w", err)
	}
	return buf.Bytes(), filename, nil
}

func (uc *ReportUseCase) tenantRecords() ([][]string, error) {
	tenants, err := uc.tenants.List()
	if err != nil {
		return nil, fmt.Errorf("report: list tenants: %w", err)
	}
	props, err := uc.propertyIndex()
	if err != nil {
		return nil, err
	}
	records := [][]string{TenantColumns}
	for _, t := range tenants {
		records = append(records, []string{
			t.Name, t.Email, t.Phone, t.Address, t.PropertyID,
			displayName(props[t.PropertyID]), string(t.Status),
		})
	}
	return records, nil
}

func (uc *ReportUseCase) propertyRecords() ([][]string, error) {
	props, err := uc.properties.List()
	if err != nil {
		return nil, fmt.Errorf("report: list properties: %w", err)
	}
	occupied, err := uc.occupiedProperties()
	if err != nil {
		return nil, err
	}
	records := [][]string{PropertyColumns}
	for _, p := range props {
		records = append(records, []string{
			p.Name, string(p.Type), p.Address, p.UnitNumber, occupancy(occupied[p.ID]),
		})
	}
	return records, nil
}

func (uc *ReportUseCase) invoiceRecords() ([][]string, error) {
	invoices, err := uc.invoices.List(repository.InvoiceFilter{})
	if err != nil {
		return nil, fmt.Errorf("report: list invoices: %w", err)
	}
	names, err := uc.tenantNames()
	if err != nil {
		return nil, err
	}
	sortByID(invoices)
	records := [][]string{InvoiceColumns}
	for _, inv := range invoices {
		records = append(records, []string{
			inv.ID,
			billing.DisplayDate(inv.CreatedDate),
			billing.DisplayDate(inv.DueDate),
			displayDatePtr(inv.ReceivedDate),
			names[inv.TenantID],
			inv.TotalAmount().StringFixed(2),
			inv.BillingPeriod,
			string(inv.Status),
			string(inv.DocumentType),
		})
	}
	return records, nil
}

// ledgerRecords also returns the tenant name, which goes into the file name.
func (uc *ReportUseCase) ledgerRecords(ctx context.Context, tenantID string) ([][]string, string, error) {
	ledger, err := uc.Ledger(ctx, tenantID)
	if err != nil {
		return nil, "", err
	}
	records := [][]string{LedgerColumns}
	for _, e := range ledger.Entries {
		records = append(records, []string{e.InvoiceID, e.Date, e.BillingPeriod, e.Amount.StringFixed(2), e.Status})
	}
	return records, ledger.TenantName, nil
}

func (uc *ReportUseCase) expenseRecords() ([][]string, error) {
	expenses, err := uc.expenses.List("")
	if err != nil {
		return nil, fmt.Errorf("report: list expenses: %w", err)
	}
	props, err := uc.propertyIndex()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(expenses, func(i, j int) bool { return expenses[i].Date.Before(expenses[j].Date) })
	records := [][]string{ExpenseColumns}
	for _, e := range expenses {
		records = append(records, []string{
			billing.DisplayDate(e.Date),
			displayName(props[e.PropertyID]),
			e.Category,
			e.Description,
			e.Amount.StringFixed(2),
		})
	}
	return records, nil
}

func (uc *ReportUseCase) propertyIndex() (map[string]*entity.Property, error) {
	props, err := uc.properties.List()
	if err != nil {
		return nil, fmt.Errorf("report: list properties: %w", err)
	}
	idx := make(map[string]*entity.Property, len(props))
	for _, p := range props {
		idx[p.ID] = p
	}
	return idx, nil
}

func (uc *ReportUseCase) tenantNames() (map[string]string, error) {
	tenants, err := uc.tenants.List()
	if err != nil {
		return nil, fmt.Errorf("report: list tenants: %w", err)
	}
	names := make(map[string]string, len(tenants))
	for _, t := range tenants {
		names[t.ID] = t.Name
	}
	return names, nil
}

func (uc *ReportUseCase) occupiedProperties() (map[string]bool, error) {
	tenants, err := uc.tenants.List()
	if err != nil {
		return nil, fmt.Errorf("report: list tenants: %w", err)
	}
	occupied := make(map[string]bool, len(tenants))
	for _, t := range tenants {
		if t.PropertyID != "" {
			occupied[t.PropertyID] = true
		}
	}
	return occupied, nil
}

func displayName(p *entity.Property) string {
	if p == nil {
		return ""
	}
	return p.DisplayName()
}

func occupancy(occupied bool) string {
	if occupied {
		return "Occupied"
	}
	return "Vacant"
}

func displayDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return billing.DisplayDate(*t)
}

func sortByID(invoices []*entity.Invoice) {
	sort.SliceStable(invoices, func(i, j int) bool {
		return billing.InvoiceSequence(invoices[i].ID) < billing.InvoiceSequence(invoices[j].ID)
	})
}
