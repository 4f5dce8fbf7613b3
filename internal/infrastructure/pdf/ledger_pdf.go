package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/MUNTAZIR1234/Invoice/internal/application/report"
	"github.com/MUNTAZIR1234/Invoice/internal/domain/billing"
)

var _ report.StatementRenderer = (*MarotoPDFGenerator)(nil)

// RenderLedger prints a tenant's statement of account: a dark title band,
// the tenant and unit, billed/paid/outstanding totals and one row per invoice.
func (g *MarotoPDFGenerator) RenderLedger(_ context.Context, st report.LedgerStatement) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: FontFamily(st.FontFamily), Size: 9}).
		WithTitle("Statement of Account", true).
		WithAuthor(st.CompanyName, true).
		Build()

	m := maroto.New(cfg)
	primary := ParseHexColor(st.PrimaryColor)
	l := st.Ledger

	// ── Title band ───────────────────────────────────────────────────────────
	m.AddRows(row.New(26).Add(
		col.New(8).Add(
			text.New(st.CompanyName, props.Text{Style: fontstyle.Bold, Size: 16, Color: colorWhite, Top: 5, Left: 3}),
			text.New("STATEMENT OF ACCOUNT - LEDGER", props.Text{Size: 9, Color: colorWhite, Top: 16, Left: 3}),
		),
		col.New(4).Add(
			text.New("Generated: "+st.Generated, props.Text{Size: 9, Color: colorWhite, Align: align.Right, Top: 16, Right: 3}),
		),
	).WithStyle(&props.Cell{BackgroundColor: colorDark}))
	m.AddRows(row.New(6))

	// ── Tenant and totals ────────────────────────────────────────────────────
	money := func(label string, v string, top float64, bold bool) core.Component {
		style := fontstyle.Normal
		if bold {
			style = fontstyle.Bold
		}
		return text.New(label+" Rs. "+v, props.Text{Style: style, Size: 9, Align: align.Right, Top: top})
	}
	m.AddRows(row.New(20).Add(
		col.New(7).Add(
			text.New("Tenant: "+l.TenantName, props.Text{Style: fontstyle.Bold, Size: 12, Color: colorDark}),
			text.New("Unit: "+l.PropertyName, props.Text{Size: 9, Color: colorGray, Top: 7}),
		),
		col.New(5).Add(
			money("Total Billed:", billing.FormatINR(l.TotalBilled), 0, false),
			money("Total Paid:", billing.FormatINR(l.TotalPaid), 6, false),
			money("Outstanding:", billing.FormatINR(l.Outstanding), 12, true),
		),
	))

	// ── Entries ──────────────────────────────────────────────────────────────
	head := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorWhite, Align: a, Top: 2, Left: 2, Right: 2}))
	}
	m.AddRows(row.New(8).Add(
		head("Invoice ID", 2, align.Left),
		head("Date", 2, align.Left),
		head("Billing Period", 4, align.Left),
		head("Amount", 2, align.Right),
		head("Status", 2, align.Center),
	).WithStyle(&props.Cell{BackgroundColor: primary}))

	cell := func(v string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(v, props.Text{Size: 8, Align: a, Top: 2, Left: 2, Right: 2}))
	}
	for i, e := range l.Entries {
		r := row.New(8).Add(
			cell(e.InvoiceID, 2, align.Left),
			cell(e.Date, 2, align.Left),
			cell(e.BillingPeriod, 4, align.Left),
			cell("Rs. "+billing.FormatINR(e.Amount), 2, align.Right),
			cell(e.Status, 2, align.Center),
		)
		if i%2 == 1 {
			r = r.WithStyle(&props.Cell{BackgroundColor: colorStripe})
		}
		m.AddRows(r)
	}
	if len(l.Entries) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("No invoices for this tenant.", props.Text{Size: 9, Color: colorGray, Align: align.Center, Top: 3}),
		)))
	}
	m.AddRows(line.NewRow(3, props.Line{Color: primary, Thickness: 0.3}))

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate ledger: %w", err)
	}
	return out.GetBytes(), nil
}
