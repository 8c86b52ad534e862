package domain

// Property is a building or parcel managed on behalf of a company.
type Property struct {
	ID            string  `json:"id"`
	CompanyID     string  `json:"company_id,omitempty"`
	OwnerID       string  `json:"owner_id,omitempty"`
	Name          string  `json:"name"`
	Address       string  `json:"address"`
	City          string  `json:"city"`
	State         string  `json:"state"`
	Zip           string  `json:"zip"`
	Country       string  `json:"country"`
	PropertyType  string  `json:"property_type"` // residential, commercial, industrial, land
	Status        string  `json:"status"`        // active, inactive, under_construction, sold
	PurchaseDate  string  `json:"purchase_date,omitempty"`
	PurchasePrice float64 `json:"purchase_price,omitempty"`
	MarketValue   float64 `json:"market_value,omitempty"`
	Description   string  `json:"description,omitempty"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}
