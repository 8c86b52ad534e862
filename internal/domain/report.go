package domain

// PortfolioSummary aggregates headline counts across the portfolio.
type PortfolioSummary struct {
	PropertiesByStatus map[string]int `json:"properties_by_status"`
	UnitsByStatus      map[string]int `json:"units_by_status"`
	TenantsByStatus    map[string]int `json:"tenants_by_status"`
	ActiveLeases       int            `json:"active_leases"`
	MonthlyRentRoll    float64        `json:"monthly_rent_roll"`
}

// MaintenanceSummary breaks down maintenance requests for the dashboard.
type MaintenanceSummary struct {
	ByStatus   map[string]int `json:"by_status"`
	ByPriority map[string]int `json:"open_by_priority"`
	OpenTotal  int            `json:"open_total"`
}

// PaymentSummary breaks down recorded payments by status.
type PaymentSummary struct {
	CountByStatus  map[string]int     `json:"count_by_status"`
	AmountByStatus map[string]float64 `json:"amount_by_status"`
	CollectedTotal float64            `json:"collected_total"`
}
