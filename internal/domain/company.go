package domain

// Company is a management company whose portfolio the dashboard operates
// on. The active company is chosen by configuration and passed explicitly,
// never held as ambient state.
type Company struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Address      string `json:"address,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	Zip          string `json:"zip,omitempty"`
	Country      string `json:"country,omitempty"`
	Status       string `json:"status"` // active, inactive
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}
