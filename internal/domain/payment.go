package domain

// Payment is a rent or deposit payment recorded against a lease.
type Payment struct {
	ID              string  `json:"id"`
	LeaseID         string  `json:"lease_id"`
	TenantID        string  `json:"tenant_id"`
	Amount          float64 `json:"amount"`
	PaymentDate     string  `json:"payment_date"`
	PaymentMethod   string  `json:"payment_method"` // cash, check, bank_transfer, credit_card, other
	ReferenceNumber string  `json:"reference_number,omitempty"`
	Status          string  `json:"status"` // pending, completed, failed, refunded
	Notes           string  `json:"notes,omitempty"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}
