package domain

// MaintenanceRequest is a reported issue against a property or unit.
type MaintenanceRequest struct {
	ID            string `json:"id"`
	PropertyID    string `json:"property_id"`
	UnitID        string `json:"unit_id,omitempty"`
	TenantID      string `json:"tenant_id,omitempty"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Priority      string `json:"priority"` // low, medium, high, emergency
	Status        string `json:"status"`   // open, in_progress, completed, cancelled
	Category      string `json:"category"` // plumbing, electrical, hvac, structural, appliance, other
	AssignedTo    string `json:"assigned_to,omitempty"`
	ScheduledDate string `json:"scheduled_date,omitempty"`
	CompletedDate string `json:"completed_date,omitempty"`
	Notes         string `json:"notes,omitempty"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}
