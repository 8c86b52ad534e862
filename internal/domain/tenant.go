package domain

// Tenant is a person renting, or applying to rent, a unit.
type Tenant struct {
	ID                    string `json:"id"`
	FirstName             string `json:"first_name"`
	LastName              string `json:"last_name"`
	Email                 string `json:"email"`
	Phone                 string `json:"phone"`
	DateOfBirth           string `json:"date_of_birth,omitempty"`
	IdentificationType    string `json:"identification_type,omitempty"` // passport, driver_license, id_card, other
	IdentificationNumber  string `json:"identification_number,omitempty"`
	EmergencyContactName  string `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string `json:"emergency_contact_phone,omitempty"`
	Status                string `json:"status"` // active, inactive, prospective, former
	CreatedAt             string `json:"created_at"`
	UpdatedAt             string `json:"updated_at"`
}
