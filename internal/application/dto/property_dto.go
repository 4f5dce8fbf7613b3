package dto

// PropertyRequest body for POST/PUT /api/properties.
type PropertyRequest struct {
	Name       string `json:"name" validate:"required,max=200"`
	Type       string `json:"type" validate:"required,oneof=Flat Garage Godown"`
	Address    string `json:"address" validate:"max=500"`
	UnitNumber string `json:"unitNumber" validate:"max=50"`
}

// PropertyResponse property with occupancy.
type PropertyResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	DisplayName string `json:"displayName"`
	Address     string `json:"address"`
	UnitNumber  string `json:"unitNumber"`
	Occupied    bool   `json:"occupied"`
	Status      string `json:"status"` // Occupied | Vacant
}
