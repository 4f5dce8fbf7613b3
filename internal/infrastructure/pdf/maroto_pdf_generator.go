// Package pdf renders invoices and ledger statements with Maroto v2.
//
// Invoice page (A4):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: company name + address │ title, number, dates      │
//	│  BILL TO: tenant, contact, unit rented                      │
//	│  TABLE: Particulars | Amount                                │
//	│  TOTAL + amount in words                                    │
//	│  NOTES / BANK DETAILS                                       │
//	│  SIGNATURE                                                  │
//	└─────────────────────────────────────────────────────────────┘
//
// The "modern" header layout draws the header on a band filled with the
// primary colour; "standard" prints it in the primary colour on white.
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"strings"

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

	appbilling "github.com/MUNTAZIR1234/Invoice/internal/application/billing"
	"github.com/MUNTAZIR1234/Invoice/internal/domain/entity"
)

// ── Palette ──────────────────────────────────────────────────────────────────

var (
	fallbackPrimary = props.Color{Red: 79, Green: 70, Blue: 229}
	colorGray       = &props.Color{Red: 100, Green: 116, Blue: 139}
	colorDark       = &props.Color{Red: 15, Green: 23, Blue: 42}
	colorWhite      = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorStripe     = &props.Color{Red: 248, Green: 250, Blue: 252}
)

// ParseHexColor turns "#rrggbb" into a colour. Anything else gives the
// default indigo.
func ParseHexColor(s string) *props.Color {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		c := fallbackPrimary
		return &c
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		c := fallbackPrimary
		return &c
	}
	return &props.Color{Red: int(v >> 16 & 0xff), Green: int(v >> 8 & 0xff), Blue: int(v & 0xff)}
}

// FontFamily maps the settings value to a core PDF font.
func FontFamily(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case entity.FontTimes:
		return "times"
	case entity.FontCourier:
		return "courier"
	default:
		return "helvetica"
	}
}

// ── Generator ────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implements billing.DocumentRenderer and
// report.StatementRenderer.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator builds the generator.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

var _ appbilling.DocumentRenderer = (*MarotoPDFGenerator)(nil)

// RenderInvoice prints doc's blocks in order.
func (g *MarotoPDFGenerator) RenderInvoice(_ context.Context, doc appbilling.Document) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: FontFamily(doc.Style.FontFamily), Size: 9}).
		WithTitle(doc.Title, true).
		WithAuthor(doc.Author, true).
		Build()

	m := maroto.New(cfg)
	primary := ParseHexColor(doc.Style.PrimaryColor)
	modern := doc.Style.HeaderLayout == entity.HeaderModern

	for _, b := range doc.Blocks {
		switch blk := b.(type) {
		case appbilling.HeaderBlock:
			m.AddRows(headerRows(blk, primary, modern)...)
			m.AddRows(line.NewRow(4, props.Line{Color: primary, Thickness: 0.4}))
		case appbilling.BillToBlock:
			m.AddRows(billToRows(blk, primary)...)
		case appbilling.ItemTableBlock:
			m.AddRows(itemTableRows(blk, primary)...)
		case appbilling.TotalInWordsBlock:
			m.AddRows(row.New(10).Add(col.New(12).Add(
				text.New(blk.Label+" "+blk.Words, props.Text{Style: fontstyle.BoldItalic, Size: 9, Top: 3}),
			)))
		case appbilling.TextBlock:
			m.AddRows(textRows(blk, primary)...)
		case appbilling.SignatureBlock:
			m.AddRows(signatureRows(blk)...)
		}
	}

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate invoice: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Invoice sections ─────────────────────────────────────────────────────────

// headerRows: company on the left, document identity on the right.
func headerRows(h appbilling.HeaderBlock, primary *props.Color, modern bool) []core.Row {
	nameColor, subColor, titleColor := primary, colorGray, primary
	if modern {
		nameColor, subColor, titleColor = colorWhite, colorWhite, colorWhite
	}

	right := []core.Component{
		text.New(strings.ToUpper(h.Title), props.Text{Style: fontstyle.Bold, Size: 14, Align: align.Right, Color: titleColor, Top: 3}),
		text.New("No: "+h.InvoiceID, props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: titleColor, Top: 11, Right: 1}),
		text.New("Date: "+h.Date, props.Text{Size: 8, Align: align.Right, Color: subColor, Top: 17, Right: 1}),
	}
	top := 21.0
	if h.DueDate != "" {
		right = append(right, text.New("Due Date: "+h.DueDate, props.Text{Size: 8, Align: align.Right, Color: subColor, Top: top, Right: 1}))
		top += 4
	}
	if h.ReceivedDate != "" {
		right = append(right, text.New("Received: "+h.ReceivedDate, props.Text{Size: 8, Align: align.Right, Color: subColor, Top: top, Right: 1}))
	}

	left := []core.Component{
		text.New(h.CompanyName, props.Text{Style: fontstyle.Bold, Size: 15, Color: nameColor, Top: 3, Left: 2}),
	}
	y := 11.0
	for _, l := range strings.Split(h.CompanyAddress, "\n") {
		if strings.TrimSpace(l) == "" {
			continue
		}
		left = append(left, text.New(l, props.Text{Size: 8, Color: subColor, Top: y, Left: 2}))
		y += 4
	}
	if h.CompanyEmail != "" {
		left = append(left, text.New(h.CompanyEmail, props.Text{Size: 8, Color: subColor, Top: y, Left: 2}))
	}

	header := row.New(32).Add(col.New(7).Add(left...), col.New(5).Add(right...))
	if modern {
		header = header.WithStyle(&props.Cell{BackgroundColor: primary})
	}

	rows := []core.Row{header}
	if h.Period != "" {
		rows = append(rows, row.New(7).Add(col.New(12).Add(
			text.New("Billing Period: "+h.Period, props.Text{Style: fontstyle.Bold, Size: 9, Top: 2, Color: colorDark}),
		)))
	}
	return rows
}

func billToRows(b appbilling.BillToBlock, primary *props.Color) []core.Row {
	left := []core.Component{
		text.New(b.Label, props.Text{Style: fontstyle.Bold, Size: 8, Color: primary, Top: 1}),
		text.New(b.Name, props.Text{Style: fontstyle.Bold, Size: 11, Top: 6}),
		text.New(b.Address, props.Text{Size: 8, Color: colorGray, Top: 12}),
	}
	if b.ShowContact {
		left = append(left,
			text.New("Email: "+b.Email+"   |   Phone: "+b.Phone, props.Text{Size: 8, Color: colorGray, Top: 17}),
		)
	}
	return []core.Row{
		row.New(24).Add(
			col.New(8).Add(left...),
			col.New(4).Add(
				text.New("PREMISES:", props.Text{Style: fontstyle.Bold, Size: 8, Color: primary, Align: align.Right, Top: 1}),
				text.New(b.Rented, props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 6}),
			),
		),
	}
}

func itemTableRows(t appbilling.ItemTableBlock, primary *props.Color) []core.Row {
	head := row.New(8).Add(
		col.New(9).Add(text.New(t.Headers[0], props.Text{Style: fontstyle.Bold, Size: 9, Color: colorWhite, Top: 2, Left: 2})),
		col.New(3).Add(text.New(t.Headers[1], props.Text{Style: fontstyle.Bold, Size: 9, Color: colorWhite, Align: align.Right, Top: 2, Right: 2})),
	).WithStyle(&props.Cell{BackgroundColor: primary})

	rows := []core.Row{head}
	for i, it := range t.Rows {
		r := row.New(8).Add(
			col.New(9).Add(text.New(it.Description, props.Text{Size: 9, Top: 2, Left: 2})),
			col.New(3).Add(text.New(it.Display, props.Text{Size: 9, Align: align.Right, Top: 2, Right: 2})),
		)
		if i%2 == 1 {
			r = r.WithStyle(&props.Cell{BackgroundColor: colorStripe})
		}
		rows = append(rows, r)
	}
	rows = append(rows,
		line.NewRow(2, props.Line{Color: primary, Thickness: 0.3}),
		row.New(9).Add(
			col.New(9).Add(text.New(t.TotalLabel, props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2, Right: 4})),
			col.New(3).Add(text.New(t.TotalDisplay, props.Text{Style: fontstyle.Bold, Size: 10, Color: primary, Align: align.Right, Top: 2, Right: 2})),
		),
	)
	return rows
}

func textRows(b appbilling.TextBlock, primary *props.Color) []core.Row {
	rows := []core.Row{row.New(3)}
	if b.Caption != "" {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New(b.Caption, props.Text{Style: fontstyle.Bold, Size: 8, Color: primary, Top: 1}),
		)))
	}
	for _, l := range b.Lines {
		rows = append(rows, row.New(4.5).Add(col.New(12).Add(
			text.New(l, props.Text{Size: 8, Color: colorDark}),
		)))
	}
	return rows
}

func signatureRows(s appbilling.SignatureBlock) []core.Row {
	return []core.Row{
		row.New(22),
		row.New(2).Add(col.New(8), col.New(4).Add(line.New(props.Line{Color: colorDark, Thickness: 0.3}))),
		row.New(6).Add(col.New(8), col.New(4).Add(
			text.New(s.Label, props.Text{Size: 8, Align: align.Center, Color: colorGray, Top: 1}),
		)),
	}
}
