package dto

// TenantRequest body for POST/PUT /api/tenants.
type TenantRequest struct {
	Name       string `json:"name" validate:"required,max=200"`
	Email      string `json:"email" validate:"omitempty,email"`
	Phone      string `json:"phone" validate:"max=40"`
	Address    string `json:"address" validate:"max=500"`
	PropertyID string `json:"propertyId"`
	Status     string `json:"status" validate:"omitempty,oneof=Active Former"`
	MoveInDate string `json:"moveInDate" validate:"omitempty,datetime=2006-01-02"`
}

// TenantFilter query for GET /api/tenants.
type TenantFilter struct {
	Query      string `query:"q"`
	PropertyID string `query:"propertyId"`
	Status     string `query:"status"`
}

// TenantResponse tenant with its property resolved.
type TenantResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	PropertyID   string `json:"propertyId"`
	PropertyName string `json:"propertyName"` // "Flat 5A", or "Unassigned"
	Status       string `json:"status"`
	MoveInDate   string `json:"moveInDate,omitempty"`
}
