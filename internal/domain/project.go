package domain

// Project is a construction or renovation effort, optionally tied to an
// existing property.
type Project struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	PropertyID  string  `json:"property_id,omitempty"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date,omitempty"`
	Budget      float64 `json:"budget,omitempty"`
	ActualCost  float64 `json:"actual_cost,omitempty"`
	Status      string  `json:"status"` // planning, in_progress, completed, on_hold, cancelled
	ManagerID   string  `json:"manager_id,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// ProjectFeature is a marketable feature of a project.
type ProjectFeature struct {
	ID          string `json:"id"`
	ProjectID   string `json:"project_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// ProjectSpecification is a technical attribute of a project, such as total
// floor area or number of elevators.
type ProjectSpecification struct {
	ID        string `json:"id"`
	ProjectID string `json:"project_id"`
	Category  string `json:"category,omitempty"`
	Name      string `json:"name"`
	Value     string `json:"value"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ProjectAmenity links a project to an entry from the amenity option catalog.
type ProjectAmenity struct {
	ID              string `json:"id"`
	ProjectID       string `json:"project_id"`
	AmenityOptionID string `json:"amenity_option_id"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

// ProjectAmenityOption is a catalog entry projects can reference.
type ProjectAmenityOption struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category,omitempty"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
