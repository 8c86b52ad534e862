package domain

// Lease ties a tenant to a property (and optionally a specific unit) for a
// period at an agreed rent.
type Lease struct {
	ID               string  `json:"id"`
	PropertyID       string  `json:"property_id"`
	UnitID           string  `json:"unit_id,omitempty"`
	TenantID         string  `json:"tenant_id"`
	StartDate        string  `json:"start_date"`
	EndDate          string  `json:"end_date"`
	RentAmount       float64 `json:"rent_amount"`
	SecurityDeposit  float64 `json:"security_deposit"`
	PaymentFrequency string  `json:"payment_frequency"` // monthly, quarterly, annually
	PaymentDay       int     `json:"payment_day"`       // day of period the rent is due
	Status           string  `json:"status"`            // active, expired, terminated, pending
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}
