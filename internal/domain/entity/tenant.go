package entity

import "time"

// TenantStatus marks whether a tenant still occupies a property.
type TenantStatus string

const (
	TenantActive TenantStatus = "Active"
	TenantFormer TenantStatus = "Former"
)

// ParseTenantStatus maps s to a status; anything unrecognised is Active.
func ParseTenantStatus(s string) TenantStatus {
	if equalFold(s, string(TenantFormer)) {
		return TenantFormer
	}
	return TenantActive
}

// Tenant is a person or business renting a property.
type Tenant struct {
	ID         string
	Name       string
	Email      string
	Phone      string
	Address    string
	PropertyID string // empty = unassigned
	Status     TenantStatus
	MoveInDate *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
