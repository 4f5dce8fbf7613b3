package memory_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MUNTAZIR1234/Invoice/internal/domain"
	"github.com/MUNTAZIR1234/Invoice/internal/domain/billing"
	"github.com/MUNTAZIR1234/Invoice/internal/domain/entity"
	"github.com/MUNTAZIR1234/Invoice/internal/domain/repository"
	"github.com/MUNTAZIR1234/Invoice/internal/infrastructure/memory"
)

func TestPropertyDelete_RejectedWhileTenantAssigned(t *testing.T) {
	s := memory.New()
	require.NoError(t, s.Properties().Create(&entity.Property{ID: "p1", Name: "5A", Type: entity.PropertyFlat}))
	require.NoError(t, s.Tenants().Create(&entity.Tenant{ID: "t1", Name: "Jane", PropertyID: "p1"}))

	err := s.Properties().Delete("p1")
	assert.ErrorIs(t, err, domain.ErrPropertyInUse)

	props, _ := s.Properties().List()
	tenants, _ := s.Tenants().List()
	assert.Len(t, props, 1, "property must still exist")
	assert.Len(t, tenants, 1, "tenant must still exist")
	assert.Equal(t, "p1", tenants[0].PropertyID)

	require.NoError(t, s.Tenants().Delete("t1"))
	require.NoError(t, s.Properties().Delete("p1"))
	props, _ = s.Properties().List()
	assert.Empty(t, props)
}

func TestRunAllocation_ConcurrentWritersGetDistinctIDs(t *testing.T) {
	s := memory.New()
	alloc := s.Allocator()

	const writers = 50
	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- alloc.RunAllocation(context.Background(), func(invoices repository.InvoiceRepository) error {
				ids, err := invoices.ListIDs()
				if err != nil {
					return err
				}
				return invoices.Create(&entity.Invoice{ID: billing.NextInvoiceID(ids)})
			})
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	ids, err := s.Invoices().ListIDs()
	require.NoError(t, err)
	require.Len(t, ids, writers)
	seen := map[string]bool{}
	for _, id := range ids {
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
	assert.True(t, seen["INV-050"])
}

func TestInvoiceRepo_ReturnsCopies(t *testing.T) {
	s := memory.New()
	inv := &entity.Invoice{ID: "INV-001", TenantID: "t1", Status: entity.InvoiceStatusDraft}
	inv.SetItems([]entity.LineItem{{Description: "Rent Charges", Amount: decimal.NewFromInt(100)}})
	require.NoError(t, s.Invoices().Create(inv))

	got, err := s.Invoices().GetByID("INV-001")
	require.NoError(t, err)
	got.Status = entity.InvoiceStatusPaid

	again, _ := s.Invoices().GetByID("INV-001")
	assert.Equal(t, entity.InvoiceStatusDraft, again.Status)

	missing, err := s.Invoices().GetByID("INV-404")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestOpen_PersistsAcrossRestarts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "store.json")

	s, err := memory.Open(path, zerolog.Nop())
	require.NoError(t, err)

	moveIn := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, s.Properties().Create(&entity.Property{ID: "p1", Name: "G1", Type: entity.PropertyGarage}))
	require.NoError(t, s.Tenants().Create(&entity.Tenant{ID: "t1", Name: "Ravi", PropertyID: "p1", Status: entity.TenantActive, MoveInDate: &moveIn}))
	inv := &entity.Invoice{
		ID: "INV-001", TenantID: "t1", Status: entity.InvoiceStatusSent, DocumentType: entity.DocumentTaxReceipt,
		CreatedDate: moveIn, DueDate: moveIn.AddDate(0, 0, 29), BillingPeriod: "01 April 2026 to 30 September 2026",
	}
	inv.SetItems([]entity.LineItem{{Description: "Rent Charges", Amount: decimal.RequireFromString("1500.50")}})
	require.NoError(t, s.Invoices().Create(inv))

	reopened, err := memory.Open(path, zerolog.Nop())
	require.NoError(t, err)

	got, err := reopened.Invoices().GetByID("INV-001")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, decimal.RequireFromString("1500.50").Equal(got.TotalAmount()))
	assert.Equal(t, entity.DocumentTaxReceipt, got.DocumentType)
	assert.Equal(t, entity.InvoiceStatusSent, got.Status)
	assert.Equal(t, inv.DueDate, got.DueDate)

	tenant, _ := reopened.Tenants().GetByID("t1")
	require.NotNil(t, tenant)
	require.NotNil(t, tenant.MoveInDate)
	assert.Equal(t, moveIn, *tenant.MoveInDate)

	prop, _ := reopened.Properties().GetByID("p1")
	require.NotNil(t, prop)
	assert.Equal(t, "Garage G1", prop.DisplayName())
}

func TestSystemRepo_Reset(t *testing.T) {
	s := memory.New()
	require.NoError(t, s.Company().Save(&entity.CompanyInfo{Name: "X"}))
	require.NoError(t, s.Properties().Create(&entity.Property{ID: "p1", Name: "A"}))

	require.NoError(t, s.System().Reset())

	ds, err := s.System().Export()
	require.NoError(t, err)
	assert.Nil(t, ds.Company)
	assert.Empty(t, ds.Properties)
}

func TestFailedWrite_LeavesDataUnchanged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	s, err := memory.Open(path, zerolog.Nop())
	require.NoError(t, err)

	require.NoError(t, s.Properties().Create(&entity.Property{ID: "p1", Name: "5A", Type: entity.PropertyFlat}))
	require.NoError(t, s.Properties().Create(&entity.Property{ID: "p2", Name: "G1", Type: entity.PropertyGarage}))
	require.NoError(t, s.Invoices().Create(&entity.Invoice{ID: "INV-001"}))

	// A non-empty directory in place of the data file makes every rename fail.
	require.NoError(t, os.Remove(path))
	require.NoError(t, os.MkdirAll(filepath.Join(path, "blocker"), 0o755))

	create := func(invoices repository.InvoiceRepository) error {
		ids, err := invoices.ListIDs()
		if err != nil {
			return err
		}
		return invoices.Create(&entity.Invoice{ID: billing.NextInvoiceID(ids)})
	}

	// ── invoice create ────────────────────────────────────────────────────────
	err = s.Allocator().RunAllocation(context.Background(), create)
	require.Error(t, err)
	ids, _ := s.Invoices().ListIDs()
	assert.Equal(t, []string{"INV-001"}, ids)

	// ── property delete ───────────────────────────────────────────────────────
	require.Error(t, s.Properties().Delete("p2"))
	props, _ := s.Properties().List()
	assert.Len(t, props, 2)

	// ── property update ───────────────────────────────────────────────────────
	require.Error(t, s.Properties().Update(&entity.Property{ID: "p1", Name: "Renamed", Type: entity.PropertyFlat}))
	p1, _ := s.Properties().GetByID("p1")
	require.NotNil(t, p1)
	assert.Equal(t, "5A", p1.Name)

	// ── replace and reset ─────────────────────────────────────────────────────
	require.Error(t, s.System().Reset())
	ds, err := s.System().Export()
	require.NoError(t, err)
	assert.Len(t, ds.Properties, 2)
	assert.Len(t, ds.Invoices, 1)

	// Once the file is writable again the next number is the one that failed.
	require.NoError(t, os.RemoveAll(path))
	require.NoError(t, s.Allocator().RunAllocation(context.Background(), create))
	ids, _ = s.Invoices().ListIDs()
	assert.Equal(t, []string{"INV-001", "INV-002"}, ids)

	reopened, err := memory.Open(path, zerolog.Nop())
	require.NoError(t, err)
	props, _ = reopened.Properties().List()
	assert.Len(t, props, 2)
}
