package dto

// InvoiceSettingsDTO document appearance.
type InvoiceSettingsDTO struct {
	PrimaryColor      string `json:"primaryColor" validate:"omitempty,rrggbb"`
	FontFamily        string `json:"fontFamily" validate:"omitempty,oneof=helvetica times courier"`
	HeaderLayout      string `json:"headerLayout" validate:"omitempty,oneof=standard modern"`
	ShowBankDetails   *bool  `json:"showBankDetails"`
	ShowTenantContact *bool  `json:"showTenantContact"`
}

// UpdateCompanyRequest body for PUT /api/company. Nil fields are left unchanged.
type UpdateCompanyRequest struct {
	Name               *string             `json:"name" validate:"omitempty,min=1,max=200"`
	Address            *string             `json:"address" validate:"omitempty,max=500"`
	Email              *string             `json:"email" validate:"omitempty,email"`
	DefaultNotes       *string             `json:"defaultNotes"`
	DefaultBankDetails *string             `json:"defaultBankDetails"`
	InvoiceSettings    *InvoiceSettingsDTO `json:"invoiceSettings"`
}

// CompanyResponse landlord profile.
type CompanyResponse struct {
	Name               string             `json:"name"`
	Address            string             `json:"address"`
	Email              string             `json:"email"`
	DefaultNotes       string             `json:"defaultNotes"`
	DefaultBankDetails string             `json:"defaultBankDetails"`
	InvoiceSettings    InvoiceSettingsDTO `json:"invoiceSettings"`
}
