package entity

// Invoice header layouts.
const (
	HeaderStandard = "standard"
	HeaderModern   = "modern"
)

// Font families understood by the PDF renderer.
const (
	FontHelvetica = "helvetica"
	FontTimes     = "times"
	FontCourier   = "courier"
)

// InvoiceSettings controls how invoice documents look.
type InvoiceSettings struct {
	PrimaryColor      string // #rrggbb
	FontFamily        string
	HeaderLayout      string
	ShowBankDetails   bool
	ShowTenantContact bool
}

// DefaultInvoiceSettings is used until the landlord changes them.
func DefaultInvoiceSettings() InvoiceSettings {
	return InvoiceSettings{
		PrimaryColor:      "#4f46e5",
		FontFamily:        FontHelvetica,
		HeaderLayout:      HeaderStandard,
		ShowBankDetails:   true,
		ShowTenantContact: true,
	}
}

// CompanyInfo is the landlord profile printed on every document.
type CompanyInfo struct {
	Name               string
	Address            string
	Email              string
	DefaultNotes       string
	DefaultBankDetails string
	InvoiceSettings    InvoiceSettings
}

// DefaultNotes printed when an invoice has none of its own.
const DefaultNotes = "Issued by Landlord"

// DefaultBankDetails is a placeholder until real account details are saved.
const DefaultBankDetails = "Bank: <bank name>\nA/C No: <account number>\nIFSC: <ifsc code>"
