package entity

import "time"

// PropertyType is the kind of rentable unit.
type PropertyType string

const (
	PropertyFlat   PropertyType = "Flat"
	PropertyGarage PropertyType = "Garage"
	PropertyGodown PropertyType = "Godown"
)

// PropertyTypes lists the supported types in display order.
var PropertyTypes = []PropertyType{PropertyFlat, PropertyGarage, PropertyGodown}

// ParsePropertyType maps s to a type; anything unrecognised is Flat.
func ParsePropertyType(s string) PropertyType {
	for _, t := range PropertyTypes {
		if equalFold(string(t), s) {
			return t
		}
	}
	return PropertyFlat
}

// Property is a rentable unit.
type Property struct {
	ID         string
	Name       string
	Type       PropertyType
	Address    string
	UnitNumber string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// DisplayName is "<Type> <Name>", e.g. "Flat 5A".
func (p *Property) DisplayName() string {
	return string(p.Type) + " " + p.Name
}
