package domain

// Unit is a rentable subdivision of a property.
type Unit struct {
	ID         string  `json:"id"`
	PropertyID string  `json:"property_id"`
	UnitNumber string  `json:"unit_number"`
	Floor      int     `json:"floor,omitempty"`
	Size       float64 `json:"size,omitempty"` // square feet
	Bedrooms   int     `json:"bedrooms,omitempty"`
	Bathrooms  float64 `json:"bathrooms,omitempty"`
	RentAmount float64 `json:"rent_amount,omitempty"`
	Status     string  `json:"status"` // vacant, occupied, maintenance, reserved
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}
