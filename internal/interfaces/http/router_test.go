package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MUNTAZIR1234/Invoice/internal/app"
	"github.com/MUNTAZIR1234/Invoice/internal/application/dto"
	"github.com/MUNTAZIR1234/Invoice/internal/infrastructure/memory"
	apphttp "github.com/MUNTAZIR1234/Invoice/internal/interfaces/http"
	"github.com/MUNTAZIR1234/Invoice/pkg/config"
	"github.com/MUNTAZIR1234/Invoice/pkg/logger"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	cfg := &config.Config{Company: config.CompanyConfig{Name: "Test Estates"}}
	svc, err := app.NewServices(cfg, app.MemoryRepositories(memory.New()), logger.Nop())
	require.NoError(t, err)

	server := fiber.New()
	apphttp.Router(server, apphttp.RouterDeps{
		PropertyUC: svc.Properties,
		TenantUC:   svc.Tenants,
		ExpenseUC:  svc.Expenses,
		CompanyUC:  svc.Company,
		InvoiceUC:  svc.Invoices,
		InvoicePDF: svc.InvoicePDF,
		ImportUC:   svc.Import,
		ReportUC:   svc.Reports,
		LedgerPDF:  svc.LedgerPDF,
		Dashboard:  svc.Dashboard,
		BackupUC:   svc.Backup,
		Log:        zerolog.Nop(),
	})
	return server
}

func do(t *testing.T, srv *fiber.App, method, path string, body interface{}) (int, []byte) {
	t.Helper()
	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := srv.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v), string(raw))
	return v
}

func createProperty(t *testing.T, srv *fiber.App, name string) dto.PropertyResponse {
	t.Helper()
	status, body := do(t, srv, "POST", "/api/properties", dto.PropertyRequest{Name: name, Type: "Flat"})
	require.Equal(t, fiber.StatusCreated, status, string(body))
	return decode[dto.PropertyResponse](t, body)
}

func createTenant(t *testing.T, srv *fiber.App, name, propertyID string) dto.TenantResponse {
	t.Helper()
	status, body := do(t, srv, "POST", "/api/tenants", dto.TenantRequest{Name: name, Email: "a@example.com", PropertyID: propertyID})
	require.Equal(t, fiber.StatusCreated, status, string(body))
	return decode[dto.TenantResponse](t, body)
}

// ── Invoices ─────────────────────────────────────────────────────────────────

func TestInvoices_CreateAllocatesSequentialIDs(t *testing.T) {
	srv := buildTestApp(t)
	p := createProperty(t, srv, "5A")
	tenant := createTenant(t, srv, "Jane Doe", p.ID)

	body := map[string]interface{}{
		"tenantId": tenant.ID,
		"items":    []map[string]interface{}{{"description": "Rent Charges", "amount": "25000"}},
	}
	status, raw := do(t, srv, "POST", "/api/invoices", body)
	require.Equal(t, fiber.StatusCreated, status, string(raw))
	first := decode[dto.InvoiceResponse](t, raw)
	assert.Equal(t, "INV-001", first.ID)
	assert.Equal(t, "Twenty Five Thousand Only", first.AmountInWords)
	assert.Equal(t, "Jane Doe", first.TenantName)

	status, raw = do(t, srv, "GET", "/api/invoices/next-id", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "INV-002", decode[dto.NextIDResponse](t, raw).ID)

	status, raw = do(t, srv, "POST", "/api/invoices", map[string]interface{}{"tenantId": tenant.ID})
	require.Equal(t, fiber.StatusCreated, status, string(raw))
	second := decode[dto.InvoiceResponse](t, raw)
	assert.Equal(t, "INV-002", second.ID)
	assert.Len(t, second.Items, 3)

	status, raw = do(t, srv, "GET", "/api/invoices", nil)
	require.Equal(t, fiber.StatusOK, status)
	list := decode[dto.ListResponse[dto.InvoiceResponse]](t, raw)
	assert.Equal(t, 2, list.Total)
}

func TestInvoices_UnknownTenantIsNotFound(t *testing.T) {
	srv := buildTestApp(t)
	status, raw := do(t, srv, "POST", "/api/invoices", map[string]interface{}{"tenantId": "missing"})
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", decode[dto.ErrorResponse](t, raw).Code)
}

func TestInvoices_NegativeAmountRejected(t *testing.T) {
	srv := buildTestApp(t)
	tenant := createTenant(t, srv, "Jane Doe", "")
	body := map[string]interface{}{
		"tenantId": tenant.ID,
		"items":    []map[string]interface{}{{"description": "Rent", "amount": "-5"}},
	}
	status, raw := do(t, srv, "POST", "/api/invoices", body)
	require.Equal(t, fiber.StatusBadRequest, status)
	resp := decode[dto.ErrorResponse](t, raw)
	assert.Equal(t, "VALIDATION", resp.Code)
	require.NotEmpty(t, resp.Fields)
	assert.Equal(t, "items[0].amount", resp.Fields[0].Field)
}

func TestInvoices_StatusAndPDF(t *testing.T) {
	srv := buildTestApp(t)
	tenant := createTenant(t, srv, "Jane Doe", "")
	status, raw := do(t, srv, "POST", "/api/invoices", map[string]interface{}{"tenantId": tenant.ID})
	require.Equal(t, fiber.StatusCreated, status, string(raw))

	status, raw = do(t, srv, "PATCH", "/api/invoices/INV-001/status", dto.InvoiceStatusRequest{Status: "Paid", ReceivedDate: "2026-04-15"})
	require.Equal(t, fiber.StatusOK, status, string(raw))
	inv := decode[dto.InvoiceResponse](t, raw)
	assert.Equal(t, "Paid", inv.Status)
	assert.Equal(t, "2026-04-15", inv.ReceivedDate)

	status, _ = do(t, srv, "PATCH", "/api/invoices/INV-001/status", dto.InvoiceStatusRequest{Status: "Settled"})
	assert.Equal(t, fiber.StatusBadRequest, status)

	req := httptest.NewRequest("GET", "/api/invoices/INV-001/pdf", nil)
	resp, err := srv.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "INV-001")
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestInvoices_AmountAboveCapRejected(t *testing.T) {
	srv := buildTestApp(t)
	tenant := createTenant(t, srv, "Jane Doe", "")
	body := map[string]interface{}{
		"tenantId": tenant.ID,
		"items":    []map[string]interface{}{{"description": "Rent", "amount": "1e20"}},
	}
	status, raw := do(t, srv, "POST", "/api/invoices", body)
	require.Equal(t, fiber.StatusBadRequest, status, string(raw))
	resp := decode[dto.ErrorResponse](t, raw)
	require.NotEmpty(t, resp.Fields)
	assert.Equal(t, "items[0].amount", resp.Fields[0].Field)

	status, raw = do(t, srv, "GET", "/api/invoices/next-id", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "INV-001", decode[dto.NextIDResponse](t, raw).ID)
}

func TestInvoices_PDFFilenameIsEscaped(t *testing.T) {
	tests := []struct {
		tenant string
		want   string
	}{
		{`Jane "JD" Doe`, `INV-001_Jane_"JD"_Doe.pdf`},
		{"Ramesh Kumár", "INV-001_Ramesh_Kumár.pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.tenant, func(t *testing.T) {
			srv := buildTestApp(t)
			tenant := createTenant(t, srv, tt.tenant, "")
			status, raw := do(t, srv, "POST", "/api/invoices", map[string]interface{}{"tenantId": tenant.ID})
			require.Equal(t, fiber.StatusCreated, status, string(raw))

			req := httptest.NewRequest("GET", "/api/invoices/INV-001/pdf", nil)
			resp, err := srv.Test(req, -1)
			require.NoError(t, err)
			defer resp.Body.Close()
			require.Equal(t, fiber.StatusOK, resp.StatusCode)

			disposition, params, err := mime.ParseMediaType(resp.Header.Get("Content-Disposition"))
			require.NoError(t, err, resp.Header.Get("Content-Disposition"))
			assert.Equal(t, "attachment", disposition)
			assert.Equal(t, tt.want, params["filename"])
		})
	}
}

// ── Billing helpers ──────────────────────────────────────────────────────────

func TestBilling_Words(t *testing.T) {
	srv := buildTestApp(t)
	status, raw := do(t, srv, "GET", "/api/billing/words?amount=1234567", nil)
	require.Equal(t, fiber.StatusOK, status)
	resp := decode[dto.WordsResponse](t, raw)
	assert.Equal(t, "Twelve Lakh Thirty Four Thousand Five Hundred and Sixty Seven Only", resp.Words)
	assert.Equal(t, "12,34,567", resp.Formatted)

	status, _ = do(t, srv, "GET", "/api/billing/words?amount=abc", nil)
	assert.Equal(t, fiber.StatusBadRequest, status)
	status, _ = do(t, srv, "GET", "/api/billing/words", nil)
	assert.Equal(t, fiber.StatusBadRequest, status)
	status, _ = do(t, srv, "GET", "/api/billing/words?amount=1e2000000", nil)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, raw = do(t, srv, "GET", "/api/billing/words?amount=1000000000000", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "One Lakh Crore Only", decode[dto.WordsResponse](t, raw).Words)
}

func TestBilling_Cycle(t *testing.T) {
	srv := buildTestApp(t)
	status, raw := do(t, srv, "GET", "/api/billing/cycle", nil)
	require.Equal(t, fiber.StatusOK, status)
	resp := decode[dto.CycleResponse](t, raw)
	assert.NotEmpty(t, resp.Current.Label)
	assert.NotEmpty(t, resp.Options)
	assert.Equal(t, resp.Current, resp.Options[0])
}

// ── Records ──────────────────────────────────────────────────────────────────

func TestTenants_ValidationFields(t *testing.T) {
	srv := buildTestApp(t)
	status, raw := do(t, srv, "POST", "/api/tenants", map[string]string{"email": "not-an-email"})
	require.Equal(t, fiber.StatusBadRequest, status)
	resp := decode[dto.ErrorResponse](t, raw)
	assert.Equal(t, "VALIDATION", resp.Code)

	fields := map[string]bool{}
	for _, f := range resp.Fields {
		fields[f.Field] = true
	}
	assert.True(t, fields["name"])
	assert.True(t, fields["email"])
}

func TestTenants_InvalidBody(t *testing.T) {
	srv := buildTestApp(t)
	status, raw := do(t, srv, "POST", "/api/tenants", "{not json")
	require.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "INVALID_BODY", decode[dto.ErrorResponse](t, raw).Code)
}

func TestProperties_DeleteInUseKeepsBoth(t *testing.T) {
	srv := buildTestApp(t)
	p := createProperty(t, srv, "5A")
	tenant := createTenant(t, srv, "Jane Doe", p.ID)

	status, raw := do(t, srv, "DELETE", "/api/properties/"+p.ID, nil)
	require.Equal(t, fiber.StatusConflict, status)
	resp := decode[dto.ErrorResponse](t, raw)
	assert.Equal(t, "PROPERTY_IN_USE", resp.Code)
	assert.Contains(t, resp.Message, "1 tenant")

	status, _ = do(t, srv, "GET", "/api/properties/"+p.ID, nil)
	assert.Equal(t, fiber.StatusOK, status)
	status, _ = do(t, srv, "GET", "/api/tenants/"+tenant.ID, nil)
	assert.Equal(t, fiber.StatusOK, status)

	status, _ = do(t, srv, "DELETE", "/api/tenants/"+tenant.ID, nil)
	require.Equal(t, fiber.StatusNoContent, status)
	status, _ = do(t, srv, "DELETE", "/api/properties/"+p.ID, nil)
	assert.Equal(t, fiber.StatusNoContent, status)
}

func TestTenants_ImportRawCSV(t *testing.T) {
	srv := buildTestApp(t)
	createProperty(t, srv, "5A")

	csv := "Name,E-Mail,Mobile,Property\r\n\"Doe, Jane\",jane@example.com,98200,5A\r\n,,,\r\nBob,,,\r\n"
	req := httptest.NewRequest("POST", "/api/tenants/import", strings.NewReader(csv))
	req.Header.Set("Content-Type", "text/csv")
	resp, err := srv.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	summary := decode[dto.ImportSummary](t, raw)
	assert.Equal(t, 2, summary.Imported)

	status, raw := do(t, srv, "GET", "/api/tenants?q=doe", nil)
	require.Equal(t, fiber.StatusOK, status)
	list := decode[dto.ListResponse[dto.TenantResponse]](t, raw)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "Doe, Jane", list.Items[0].Name)
	assert.Equal(t, "98200", list.Items[0].Phone)
}

func TestTenants_ImportEmptyFile(t *testing.T) {
	srv := buildTestApp(t)
	req := httptest.NewRequest("POST", "/api/tenants/import", strings.NewReader("  \n"))
	resp, err := srv.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCompany_UpdateRejectsBadColour(t *testing.T) {
	srv := buildTestApp(t)
	status, raw := do(t, srv, "PUT", "/api/company", map[string]interface{}{
		"invoiceSettings": map[string]string{"primaryColor": "indigo"},
	})
	require.Equal(t, fiber.StatusBadRequest, status)
	resp := decode[dto.ErrorResponse](t, raw)
	require.NotEmpty(t, resp.Fields)
	assert.Equal(t, "invoiceSettings.primaryColor", resp.Fields[0].Field)

	status, raw = do(t, srv, "PUT", "/api/company", map[string]interface{}{"name": "Renamed Estates"})
	require.Equal(t, fiber.StatusOK, status, string(raw))
	assert.Equal(t, "Renamed Estates", decode[dto.CompanyResponse](t, raw).Name)
}

// ── Reports, dashboard and backup ────────────────────────────────────────────

func TestReports_CSVDownload(t *testing.T) {
	srv := buildTestApp(t)
	createTenant(t, srv, "Jane Doe", "")

	req := httptest.NewRequest("GET", "/api/reports/tenants", nil)
	resp, err := srv.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/csv")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "report_tenants_")
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), `"Name","Email"`), string(data))

	status, _ := do(t, srv, "GET", "/api/reports/payroll", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
	status, _ = do(t, srv, "GET", "/api/reports/ledger", nil)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestReports_LedgerAndDashboard(t *testing.T) {
	srv := buildTestApp(t)
	p := createProperty(t, srv, "5A")
	tenant := createTenant(t, srv, "Jane Doe", p.ID)
	body := map[string]interface{}{
		"tenantId": tenant.ID,
		"items":    []map[string]interface{}{{"description": "Rent", "amount": "1000"}},
	}
	status, _ := do(t, srv, "POST", "/api/invoices", body)
	require.Equal(t, fiber.StatusCreated, status)

	status, raw := do(t, srv, "GET", "/api/reports/ledger/"+tenant.ID, nil)
	require.Equal(t, fiber.StatusOK, status, string(raw))
	ledger := decode[dto.LedgerDTO](t, raw)
	assert.Equal(t, "1000", ledger.Outstanding.String())

	status, _ = do(t, srv, "GET", "/api/reports/ledger/nobody", nil)
	assert.Equal(t, fiber.StatusNotFound, status)

	status, raw = do(t, srv, "GET", "/api/dashboard/summary", nil)
	require.Equal(t, fiber.StatusOK, status)
	summary := decode[dto.DashboardSummaryDTO](t, raw)
	assert.Equal(t, 1, summary.PropertyCount)
	assert.Equal(t, 1, summary.TenantCount)
}

func TestBackup_ExportResetRestore(t *testing.T) {
	srv := buildTestApp(t)
	p := createProperty(t, srv, "5A")
	createTenant(t, srv, "Jane Doe", p.ID)

	status, snapshot := do(t, srv, "GET", "/api/backup", nil)
	require.Equal(t, fiber.StatusOK, status)

	status, _ = do(t, srv, "POST", "/api/system/reset", nil)
	require.Equal(t, fiber.StatusNoContent, status)
	status, raw := do(t, srv, "GET", "/api/tenants", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, 0, decode[dto.ListResponse[dto.TenantResponse]](t, raw).Total)

	status, _ = do(t, srv, "POST", "/api/backup", "{broken")
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, raw = do(t, srv, "POST", "/api/backup", string(snapshot))
	require.Equal(t, fiber.StatusOK, status, string(raw))
	summary := decode[dto.RestoreSummary](t, raw)
	assert.Equal(t, 1, summary.Tenants)
	assert.Equal(t, 1, summary.Properties)
}
