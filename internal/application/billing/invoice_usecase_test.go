package billing_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbilling "github.com/MUNTAZIR1234/Invoice/internal/application/billing"
	"github.com/MUNTAZIR1234/Invoice/internal/application/dto"
	"github.com/MUNTAZIR1234/Invoice/internal/domain"
	"github.com/MUNTAZIR1234/Invoice/internal/domain/billing"
	"github.com/MUNTAZIR1234/Invoice/internal/domain/entity"
	"github.com/MUNTAZIR1234/Invoice/internal/infrastructure/memory"
)

var today = time.Date(2026, time.May, 3, 9, 30, 0, 0, time.UTC)

type staticCompany struct{ info entity.CompanyInfo }

func (s staticCompany) Current() (*entity.CompanyInfo, error) {
	c := s.info
	return &c, nil
}

func newInvoiceUseCase(t *testing.T, policy billing.DueDatePolicy) (*appbilling.InvoiceUseCase, *memory.Store) {
	t.Helper()
	s := memory.New()
	require.NoError(t, s.Tenants().Create(&entity.Tenant{ID: "t1", Name: "Jane Doe", Status: entity.TenantActive}))
	company := staticCompany{info: entity.CompanyInfo{
		Name:               "Test Estates",
		DefaultNotes:       "Pay by the due date",
		DefaultBankDetails: "A/C 0001",
		InvoiceSettings:    entity.DefaultInvoiceSettings(),
	}}
	uc := appbilling.NewInvoiceUseCase(s.Invoices(), s.Allocator(), s.Tenants(), company, policy, zerolog.Nop()).
		WithClock(func() time.Time { return today })
	return uc, s
}

func rent(amount string) []dto.LineItemDTO {
	return []dto.LineItemDTO{{Description: "Rent Charges", Amount: decimal.RequireFromString(amount)}}
}

// ── Create ───────────────────────────────────────────────────────────────────

func TestCreate_DefaultsFromCycleAndCompany(t *testing.T) {
	uc, _ := newInvoiceUseCase(t, nil)
	inv, err := uc.Create(context.Background(), dto.InvoiceRequest{TenantID: "t1"})
	require.NoError(t, err)

	assert.Equal(t, "INV-001", inv.ID)
	assert.Equal(t, "2026-05-03", inv.CreatedDate)
	assert.Equal(t, "01 April 2026 to 30 September 2026", inv.BillingPeriod)
	assert.Equal(t, "2026-04-30", inv.DueDate)
	assert.Equal(t, "Draft", inv.Status)
	assert.Equal(t, "RentInvoice", inv.DocumentType)
	assert.Equal(t, "Pay by the due date", inv.Notes)
	assert.Equal(t, "A/C 0001", inv.BankDetails)

	require.Len(t, inv.Items, 3)
	assert.Equal(t, "Rent Charges", inv.Items[0].Description)
	assert.True(t, inv.TotalAmount.IsZero())
	assert.Equal(t, "Zero", inv.AmountInWords)
}

func TestCreate_EmptyItemListIsKept(t *testing.T) {
	uc, _ := newInvoiceUseCase(t, nil)
	inv, err := uc.Create(context.Background(), dto.InvoiceRequest{TenantID: "t1", Items: []dto.LineItemDTO{}})
	require.NoError(t, err)
	assert.Empty(t, inv.Items)
}

func TestCreate_TotalAndWords(t *testing.T) {
	uc, _ := newInvoiceUseCase(t, nil)
	items := append(rent("25000"), dto.LineItemDTO{Description: "Repair & Municipal Tax", Amount: decimal.RequireFromString("1500.75")})
	inv, err := uc.Create(context.Background(), dto.InvoiceRequest{TenantID: "t1", Items: items})
	require.NoError(t, err)
	assert.Equal(t, "26500.75", inv.TotalAmount.String())
	assert.Equal(t, "Twenty Six Thousand Five Hundred Only", inv.AmountInWords)
}

func TestCreate_DueDatePolicies(t *testing.T) {
	uc, _ := newInvoiceUseCase(t, billing.NetDays{Days: 7})
	inv, err := uc.Create(context.Background(), dto.InvoiceRequest{TenantID: "t1"})
	require.NoError(t, err)
	assert.Equal(t, "2026-05-10", inv.DueDate)

	inv, err = uc.Create(context.Background(), dto.InvoiceRequest{TenantID: "t1", DueDate: "2026-06-01"})
	require.NoError(t, err)
	assert.Equal(t, "2026-06-01", inv.DueDate, "an explicit due date wins")

	uc, _ = newInvoiceUseCase(t, nil)
	inv, err = uc.Create(context.Background(), dto.InvoiceRequest{TenantID: "t1", BillingPeriod: "01 October 2026 to 31 March 2027"})
	require.NoError(t, err)
	assert.Equal(t, "2026-10-31", inv.DueDate)
}

func TestCreate_Rejections(t *testing.T) {
	uc, _ := newInvoiceUseCase(t, nil)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.InvoiceRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.InvoiceRequest{TenantID: "ghost"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Create(ctx, dto.InvoiceRequest{TenantID: "t1", Items: rent("-1")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.InvoiceRequest{TenantID: "t1", Status: "Settled"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	id, err := uc.NextID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "INV-001", id, "rejected requests must not use up a number")
}

// ── Numbering ────────────────────────────────────────────────────────────────

func TestNumbering_NeverReusesBelowMax(t *testing.T) {
	uc, _ := newInvoiceUseCase(t, nil)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := uc.Create(ctx, dto.InvoiceRequest{TenantID: "t1", Items: rent("100")})
		require.NoError(t, err)
	}

	require.NoError(t, uc.Delete(ctx, "INV-002"))
	inv, err := uc.Create(ctx, dto.InvoiceRequest{TenantID: "t1"})
	require.NoError(t, err)
	assert.Equal(t, "INV-004", inv.ID)

	require.NoError(t, uc.Delete(ctx, "INV-004"))
	next, err := uc.NextID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "INV-004", next)
}

func TestNumbering_ConcurrentCreatesGetDistinctIDs(t *testing.T) {
	uc, _ := newInvoiceUseCase(t, nil)
	const n = 25

	var wg sync.WaitGroup
	ids := make(chan string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			inv, err := uc.Create(context.Background(), dto.InvoiceRequest{TenantID: "t1"})
			if assert.NoError(t, err) {
				ids <- inv.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[string]bool{}
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
	assert.True(t, seen["INV-001"])
	assert.True(t, seen["INV-025"])
}

// ── Update, status, list, preview ────────────────────────────────────────────

func TestUpdate_KeepsIDAndCreatedDate(t *testing.T) {
	uc, _ := newInvoiceUseCase(t, nil)
	ctx := context.Background()
	created, err := uc.Create(ctx, dto.InvoiceRequest{TenantID: "t1", Items: rent("100")})
	require.NoError(t, err)

	notes := ""
	updated, err := uc.Update(ctx, created.ID, dto.InvoiceRequest{
		TenantID:     "t1",
		Items:        rent("250"),
		DocumentType: "TaxReceipt",
		ReceivedDate: "2026-05-20",
		Notes:        &notes,
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedDate, updated.CreatedDate)
	assert.Equal(t, created.DueDate, updated.DueDate)
	assert.Equal(t, "250", updated.TotalAmount.String())
	assert.Equal(t, "TaxReceipt", updated.DocumentType)
	assert.Equal(t, "2026-05-20", updated.ReceivedDate)
	assert.Empty(t, updated.Notes)

	_, err = uc.Update(ctx, "INV-999", dto.InvoiceRequest{TenantID: "t1"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateStatus_AndListFilter(t *testing.T) {
	uc, _ := newInvoiceUseCase(t, nil)
	ctx := context.Background()
	for i := 0; i < 2; i++ {
		_, err := uc.Create(ctx, dto.InvoiceRequest{TenantID: "t1"})
		require.NoError(t, err)
	}
	paid, err := uc.UpdateStatus(ctx, "INV-002", dto.InvoiceStatusRequest{Status: "Paid", ReceivedDate: "2026-05-05"})
	require.NoError(t, err)
	assert.Equal(t, "Paid", paid.Status)

	list, err := uc.List(ctx, dto.InvoiceFilter{Status: "Paid"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "INV-002", list[0].ID)
	assert.Equal(t, "Jane Doe", list[0].TenantName)

	_, err = uc.List(ctx, dto.InvoiceFilter{Status: "Lost"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPreview(t *testing.T) {
	uc, _ := newInvoiceUseCase(t, nil)
	resp, err := uc.Preview(context.Background(), dto.PreviewRequest{Items: rent("100000"), BillingPeriod: "March rent"})
	require.NoError(t, err)
	assert.Equal(t, "INV-001", resp.NextID)
	assert.Equal(t, "One Lakh Only", resp.AmountInWords)
	assert.Equal(t, "March rent", resp.BillingPeriod)
	assert.False(t, resp.KnownPeriod)
	assert.Equal(t, "2026-04-30", resp.DueDate)
}

func TestCycle(t *testing.T) {
	uc, _ := newInvoiceUseCase(t, nil)
	resp := uc.Cycle(context.Background())
	assert.Equal(t, "2026-05-03", resp.Today)
	assert.Equal(t, "01 April 2026 to 30 September 2026", resp.Current.Label)
	assert.Equal(t, "2026-04-01", resp.Current.StartDate)
	assert.Equal(t, "2026-09-30", resp.Current.EndDate)
	require.GreaterOrEqual(t, len(resp.Options), 2)
	assert.Equal(t, "01 October 2026 to 31 March 2027", resp.Options[1].Label)
}
