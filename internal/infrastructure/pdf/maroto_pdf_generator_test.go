package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbilling "github.com/MUNTAZIR1234/Invoice/internal/application/billing"
	"github.com/MUNTAZIR1234/Invoice/internal/application/dto"
	"github.com/MUNTAZIR1234/Invoice/internal/application/report"
	"github.com/MUNTAZIR1234/Invoice/internal/domain/entity"
	"github.com/MUNTAZIR1234/Invoice/internal/infrastructure/pdf"
)

func TestParseHexColor(t *testing.T) {
	assert.Equal(t, &props.Color{Red: 255, Green: 16, Blue: 1}, pdf.ParseHexColor("#ff1001"))
	assert.Equal(t, &props.Color{Red: 79, Green: 70, Blue: 229}, pdf.ParseHexColor("blue"))
	assert.Equal(t, &props.Color{Red: 79, Green: 70, Blue: 229}, pdf.ParseHexColor("#zzzzzz"))
}

func TestFontFamily(t *testing.T) {
	assert.Equal(t, "times", pdf.FontFamily("Times"))
	assert.Equal(t, "courier", pdf.FontFamily("courier"))
	assert.Equal(t, "helvetica", pdf.FontFamily("comic sans"))
}

func TestRenderInvoice_BothLayouts(t *testing.T) {
	inv := &entity.Invoice{
		ID:            "INV-012",
		TenantID:      "t1",
		CreatedDate:   time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		DueDate:       time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC),
		BillingPeriod: "01 April 2026 to 30 September 2026",
		DocumentType:  entity.DocumentRentInvoice,
	}
	inv.SetItems([]entity.LineItem{
		{Description: "Rent Charges", Amount: decimal.NewFromInt(25000)},
		{Description: "Repair & Municipal Tax", Amount: decimal.NewFromInt(1200)},
	})
	tenant := &entity.Tenant{Name: "Jane Doe", Address: "Marine Lines"}
	property := &entity.Property{Name: "5A", Type: entity.PropertyFlat}

	for _, layout := range []string{entity.HeaderStandard, entity.HeaderModern} {
		t.Run(layout, func(t *testing.T) {
			company := &entity.CompanyInfo{Name: "Acme Estates", Address: "Line 1\nLine 2", InvoiceSettings: entity.DefaultInvoiceSettings()}
			company.InvoiceSettings.HeaderLayout = layout
			doc := appbilling.AssembleInvoiceDocument(inv, tenant, property, company)

			out, err := pdf.NewMarotoPDFGenerator().RenderInvoice(context.Background(), doc)
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
		})
	}
}

func TestRenderLedger(t *testing.T) {
	st := report.LedgerStatement{
		CompanyName: "Acme Estates",
		Generated:   "19-10-2026",
		Ledger: dto.LedgerDTO{
			TenantName:   "Jane Doe",
			PropertyName: "Flat 5A",
			Entries: []dto.LedgerEntryDTO{
				{InvoiceID: "INV-001", Date: "01-04-2026", Amount: decimal.NewFromInt(25000), Status: "Paid"},
			},
			TotalBilled: decimal.NewFromInt(25000),
			TotalPaid:   decimal.NewFromInt(25000),
			Outstanding: decimal.Zero,
		},
	}
	out, err := pdf.NewMarotoPDFGenerator().RenderLedger(context.Background(), st)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}
