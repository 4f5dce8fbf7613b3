package billing

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/MUNTAZIR1234/Invoice/internal/domain/billing"
	"github.com/MUNTAZIR1234/Invoice/internal/domain/entity"
)

// BlockKind identifies a layout block.
type BlockKind string

const (
	BlockHeader       BlockKind = "header"
	BlockBillTo       BlockKind = "bill_to"
	BlockItemTable    BlockKind = "item_table"
	BlockTotalInWords BlockKind = "total_in_words"
	BlockNotes        BlockKind = "notes"
	BlockBankDetails  BlockKind = "bank_details"
	BlockSignature    BlockKind = "signature"
)

// Block is one section of an invoice document, in print order.
type Block interface {
	Kind() BlockKind
}

// HeaderBlock company identity on the left, document identity on the right.
type HeaderBlock struct {
	CompanyName    string
	CompanyAddress string
	CompanyEmail   string
	Title          string // "Rental Invoice" or "Tax Receipt"
	InvoiceID      string
	Date           string // DD-MM-YYYY
	DueDate        string
	ReceivedDate   string // tax receipts only
	Period         string
}

// BillToBlock the tenant being billed.
type BillToBlock struct {
	Label       string
	Name        string
	ShowContact bool
	Address     string
	Email       string
	Phone       string
	Rented      string // "Flat 5A" or "Unassigned"
}

// ItemRow one printed line item.
type ItemRow struct {
	Description string
	Amount      decimal.Decimal
	Display     string // "Rs. 25,000"
}

// ItemTableBlock the particulars table and its footer total.
type ItemTableBlock struct {
	Headers      [2]string
	Rows         []ItemRow
	TotalLabel   string
	Total        decimal.Decimal
	TotalDisplay string
}

// TotalInWordsBlock the total spelled out.
type TotalInWordsBlock struct {
	Label string
	Words string // "Rupees Twenty Five Thousand Only"
}

// TextBlock free text with an optional caption (notes, bank details).
type TextBlock struct {
	kind    BlockKind
	Caption string
	Lines   []string
}

// SignatureBlock the signature line at the foot of the page.
type SignatureBlock struct {
	Label string
}

func (HeaderBlock) Kind() BlockKind       { return BlockHeader }
func (BillToBlock) Kind() BlockKind       { return BlockBillTo }
func (ItemTableBlock) Kind() BlockKind    { return BlockItemTable }
func (TotalInWordsBlock) Kind() BlockKind { return BlockTotalInWords }
func (b TextBlock) Kind() BlockKind       { return b.kind }
func (SignatureBlock) Kind() BlockKind    { return BlockSignature }

// DocumentStyle comes from the company's invoice settings.
type DocumentStyle struct {
	PrimaryColor string
	FontFamily   string
	HeaderLayout string
}

// Document is everything a renderer needs to print one invoice.
type Document struct {
	Title    string
	FileName string
	Author   string
	Style    DocumentStyle
	Blocks   []Block
}

// Fallback texts for records that are missing or incomplete.
const (
	FallbackTenantName  = "Valued Tenant"
	FallbackAddress     = "No Address Provided"
	FallbackContact     = "N/A"
	FallbackUnassigned  = "Unassigned"
	TitleRentInvoice    = "Rental Invoice"
	TitleTaxReceipt     = "Tax Receipt"
	SignatureLabel      = "Landlord Signature"
	currencyPrefix      = "Rs. "
	amountInWordsPrefix = "Rupees "
)

// AssembleInvoiceDocument lays out inv for printing. tenant and property may
// be nil. The total and its words come from inv as stored; nothing is
// recomputed here.
func AssembleInvoiceDocument(inv *entity.Invoice, tenant *entity.Tenant, property *entity.Property, company *entity.CompanyInfo) Document {
	if company == nil {
		company = &entity.CompanyInfo{InvoiceSettings: entity.DefaultInvoiceSettings()}
	}
	settings := company.InvoiceSettings

	title := TitleRentInvoice
	if inv.DocumentType == entity.DocumentTaxReceipt {
		title = TitleTaxReceipt
	}

	header := HeaderBlock{
		CompanyName:    company.Name,
		CompanyAddress: company.Address,
		CompanyEmail:   company.Email,
		Title:          title,
		InvoiceID:      inv.ID,
		Date:           billing.DisplayDate(inv.CreatedDate),
		DueDate:        billing.DisplayDate(inv.DueDate),
		Period:         inv.BillingPeriod,
	}
	if inv.DocumentType == entity.DocumentTaxReceipt && inv.ReceivedDate != nil {
		header.ReceivedDate = billing.DisplayDate(*inv.ReceivedDate)
	}

	billTo := BillToBlock{
		Label:       "TENANT:",
		Name:        FallbackTenantName,
		ShowContact: settings.ShowTenantContact,
		Address:     FallbackAddress,
		Email:       FallbackContact,
		Phone:       FallbackContact,
		Rented:      FallbackUnassigned,
	}
	if tenant != nil {
		billTo.Name = orDefault(tenant.Name, FallbackTenantName)
		billTo.Address = orDefault(tenant.Address, FallbackAddress)
		billTo.Email = orDefault(tenant.Email, FallbackContact)
		billTo.Phone = orDefault(tenant.Phone, FallbackContact)
	}
	if property != nil {
		billTo.Rented = property.DisplayName()
	}

	items := inv.Items()
	table := ItemTableBlock{
		Headers:      [2]string{"Particulars", "Amount"},
		Rows:         make([]ItemRow, 0, len(items)),
		TotalLabel:   "Total Amount",
		Total:        inv.TotalAmount(),
		TotalDisplay: currencyPrefix + billing.FormatINR(inv.TotalAmount()),
	}
	for _, it := range items {
		table.Rows = append(table.Rows, ItemRow{
			Description: it.Description,
			Amount:      it.Amount,
			Display:     currencyPrefix + billing.FormatINR(it.Amount),
		})
	}

	blocks := []Block{
		header,
		billTo,
		table,
		TotalInWordsBlock{Label: "Amount in words:", Words: amountInWordsPrefix + billing.AmountInWords(inv.TotalAmount())},
		TextBlock{kind: BlockNotes, Lines: splitLines(orDefault(inv.Notes, orDefault(company.DefaultNotes, entity.DefaultNotes)))},
	}
	if settings.ShowBankDetails {
		bank := orDefault(inv.BankDetails, orDefault(company.DefaultBankDetails, entity.DefaultBankDetails))
		blocks = append(blocks, TextBlock{kind: BlockBankDetails, Caption: "Bank Details:", Lines: splitLines(bank)})
	}
	blocks = append(blocks, SignatureBlock{Label: SignatureLabel})

	tenantName := ""
	if tenant != nil {
		tenantName = tenant.Name
	}
	return Document{
		Title:    title + " " + inv.ID,
		FileName: InvoiceFileName(inv.ID, tenantName),
		Author:   company.Name,
		Style: DocumentStyle{
			PrimaryColor: settings.PrimaryColor,
			FontFamily:   settings.FontFamily,
			HeaderLayout: settings.HeaderLayout,
		},
		Blocks: blocks,
	}
}

// InvoiceFileName returns "<id>_<tenant name>.pdf" with every run of
// whitespace in the name turned into one underscore. No name gives "Invoice".
func InvoiceFileName(invoiceID, tenantName string) string {
	name := strings.Join(strings.Fields(tenantName), "_")
	if name == "" {
		name = "Invoice"
	}
	return invoiceID + "_" + name + ".pdf"
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}
