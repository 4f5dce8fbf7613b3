package report_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MUNTAZIR1234/Invoice/internal/application/report"
	"github.com/MUNTAZIR1234/Invoice/internal/domain"
	"github.com/MUNTAZIR1234/Invoice/internal/domain/entity"
	"github.com/MUNTAZIR1234/Invoice/internal/infrastructure/memory"
)

var fixedNow = time.Date(2026, time.May, 3, 10, 0, 0, 0, time.UTC)

func seed(t *testing.T) *memory.Store {
	t.Helper()
	s := memory.New()
	require.NoError(t, s.Properties().Create(&entity.Property{ID: "p1", Name: "5A", Type: entity.PropertyFlat}))
	require.NoError(t, s.Properties().Create(&entity.Property{ID: "p2", Name: "G1", Type: entity.PropertyGarage}))
	require.NoError(t, s.Tenants().Create(&entity.Tenant{ID: "t1", Name: `Jane "JJ" Doe`, Email: "jane@example.com", PropertyID: "p1", Status: entity.TenantActive}))

	paid := &entity.Invoice{ID: "INV-001", TenantID: "t1", CreatedDate: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), Status: entity.InvoiceStatusPaid, BillingPeriod: "01 April 2026 to 30 September 2026", DocumentType: entity.DocumentRentInvoice}
	paid.SetItems([]entity.LineItem{{Description: "Rent", Amount: decimal.NewFromInt(25000)}})
	open := &entity.Invoice{ID: "INV-002", TenantID: "t1", CreatedDate: time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC), Status: entity.InvoiceStatusSent, DocumentType: entity.DocumentRentInvoice}
	open.SetItems([]entity.LineItem{{Description: "Tax", Amount: decimal.RequireFromString("1500.50")}})
	require.NoError(t, s.Invoices().Create(open))
	require.NoError(t, s.Invoices().Create(paid))

	require.NoError(t, s.Expenses().Create(&entity.Expense{ID: "e1", PropertyID: "p1", Amount: decimal.NewFromInt(4000), Category: entity.ExpenseMaintenance, Date: time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)}))
	return s
}

func newReports(s *memory.Store) *report.ReportUseCase {
	return report.NewReportUseCase(s.Tenants(), s.Properties(), s.Invoices(), s.Expenses()).
		WithClock(func() time.Time { return fixedNow })
}

func TestExportCSV_InvoicesQuotedAndOrdered(t *testing.T) {
	s := seed(t)
	data, name, err := newReports(s).ExportCSV(context.Background(), report.TypeInvoices, "")
	require.NoError(t, err)
	assert.Equal(t, "report_invoices_2026-05-03.csv", name)

	lines := strings.Split(strings.TrimRight(string(data), "\r\n"), "\r\n")
	require.Len(t, lines, 3)
	assert.Equal(t, `"ID","Date","Due Date","Receipt Date","Tenant","Amount","Period","Status","Type"`, lines[0])
	assert.True(t, strings.HasPrefix(lines[1], `"INV-001","01-04-2026",`), lines[1])
	assert.Contains(t, lines[1], `"Jane ""JJ"" Doe","25000.00"`)
	assert.True(t, strings.HasPrefix(lines[2], `"INV-002"`))
	assert.Contains(t, lines[2], `"1500.50"`)
}

func TestExportCSV_PropertiesOccupancy(t *testing.T) {
	data, _, err := newReports(seed(t)).ExportCSV(context.Background(), report.TypeProperties, "")
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `"5A","Flat","","","Occupied"`)
	assert.Contains(t, out, `"G1","Garage","","","Vacant"`)
}

func TestExportCSV_LedgerNeedsTenant(t *testing.T) {
	r := newReports(seed(t))
	_, _, err := r.ExportCSV(context.Background(), report.TypeLedger, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, _, err = r.ExportCSV(context.Background(), report.TypeLedger, "nobody")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	data, name, err := r.ExportCSV(context.Background(), report.TypeLedger, "t1")
	require.NoError(t, err)
	assert.Equal(t, "report_ledger_Jane_JJ_Doe_2026-05-03.csv", name)
	lines := strings.Split(string(data), "\r\n")
	assert.Equal(t, `"ID","Date","Period","Amount","Status"`, lines[0], "header row comes first")
	assert.NotContains(t, string(data), "Statement for")
}

func TestExportCSV_UnknownType(t *testing.T) {
	_, _, err := newReports(seed(t)).ExportCSV(context.Background(), report.Type("payroll"), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	typ, ok := report.ParseType(" Expenses ")
	assert.True(t, ok)
	assert.Equal(t, report.TypeExpenses, typ)
}

func TestLedger_Totals(t *testing.T) {
	l, err := newReports(seed(t)).Ledger(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, "Flat 5A", l.PropertyName)
	require.Len(t, l.Entries, 2)
	assert.Equal(t, "INV-001", l.Entries[0].InvoiceID)
	assert.True(t, l.TotalBilled.Equal(decimal.RequireFromString("26500.50")))
	assert.True(t, l.TotalPaid.Equal(decimal.NewFromInt(25000)))
	assert.True(t, l.Outstanding.Equal(decimal.RequireFromString("1500.50")))
}

type fakeCompany struct{ info *entity.CompanyInfo }

func (f fakeCompany) Current() (*entity.CompanyInfo, error) { return f.info, nil }

type captureRenderer struct{ got report.LedgerStatement }

func (c *captureRenderer) RenderLedger(_ context.Context, st report.LedgerStatement) ([]byte, error) {
	c.got = st
	return []byte("%PDF-fake"), nil
}

func TestLedgerPDF_UsesCompanyStyle(t *testing.T) {
	company := &entity.CompanyInfo{Name: "Acme Estates", InvoiceSettings: entity.DefaultInvoiceSettings()}
	company.InvoiceSettings.PrimaryColor = "#112233"
	renderer := &captureRenderer{}
	uc := report.NewLedgerPDFUseCase(newReports(seed(t)), fakeCompany{company}, renderer)

	data, name, err := uc.DownloadLedgerPDF(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), data)
	assert.Equal(t, "statement_Jane_JJ_Doe_2026-05-03.pdf", name)
	assert.Equal(t, "Acme Estates", renderer.got.CompanyName)
	assert.Equal(t, "#112233", renderer.got.PrimaryColor)
	assert.Equal(t, "03-05-2026", renderer.got.Generated)
}

func TestDashboard_Summary(t *testing.T) {
	s := seed(t)
	sum, err := report.NewDashboardUseCase(s.Tenants(), s.Properties(), s.Invoices(), s.Expenses()).
		WithClock(func() time.Time { return fixedNow }).
		GetSummary(context.Background())
	require.NoError(t, err)

	assert.True(t, sum.TotalInvoiced.Equal(decimal.RequireFromString("26500.50")))
	assert.True(t, sum.TotalOutstanding.Equal(decimal.RequireFromString("1500.50")))
	assert.True(t, sum.NetIncome.Equal(decimal.NewFromInt(21000)))
	assert.Equal(t, 1, sum.InvoicesByState["Paid"])
	assert.Equal(t, 0, sum.InvoicesByState["Overdue"])
	assert.Equal(t, 2, sum.PropertyCount)
	assert.Equal(t, 1, sum.OccupiedCount)
	assert.Equal(t, "50", sum.OccupancyRate.String())
	assert.Equal(t, map[string]int{"Flat": 1, "Garage": 1}, sum.PropertiesByType)
	assert.Equal(t, "01 April 2026 to 30 September 2026", sum.CurrentCycle)
}
