package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/MUNTAZIR1234/Invoice/internal/domain/entity"
)

func TestInvoice_SetItemsRecomputesTotal(t *testing.T) {
	inv := &entity.Invoice{ID: "INV-001"}
	assert.True(t, inv.TotalAmount().IsZero())

	inv.SetItems([]entity.LineItem{
		{Description: "Rent Charges", Amount: decimal.NewFromInt(25000)},
		{Description: "Repair & Municipal Tax", Amount: decimal.RequireFromString("1200.50")},
	})
	assert.True(t, decimal.RequireFromString("26200.50").Equal(inv.TotalAmount()))

	inv.SetItems([]entity.LineItem{{Description: "Rent Charges", Amount: decimal.NewFromInt(100)}})
	assert.True(t, decimal.NewFromInt(100).Equal(inv.TotalAmount()))

	inv.SetItems(nil)
	assert.True(t, inv.TotalAmount().IsZero())
}

func TestInvoice_ItemsIsACopy(t *testing.T) {
	inv := &entity.Invoice{}
	inv.SetItems([]entity.LineItem{{Description: "Rent", Amount: decimal.NewFromInt(10)}})

	items := inv.Items()
	items[0].Amount = decimal.NewFromInt(999)

	assert.True(t, decimal.NewFromInt(10).Equal(inv.Items()[0].Amount))
	assert.True(t, decimal.NewFromInt(10).Equal(inv.TotalAmount()))
}

func TestParsers(t *testing.T) {
	assert.Equal(t, entity.PropertyGodown, entity.ParsePropertyType(" godown "))
	assert.Equal(t, entity.PropertyFlat, entity.ParsePropertyType("Villa"))
	assert.Equal(t, entity.TenantFormer, entity.ParseTenantStatus("former"))
	assert.Equal(t, entity.TenantActive, entity.ParseTenantStatus(""))

	st, ok := entity.ParseInvoiceStatus("paid")
	assert.True(t, ok)
	assert.Equal(t, entity.InvoiceStatusPaid, st)
	_, ok = entity.ParseInvoiceStatus("cancelled")
	assert.False(t, ok)
}
