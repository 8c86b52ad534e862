package seed

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

type amenityDef struct {
	name     string
	category string
}

var defaultAmenityOptions = []amenityDef{
	{name: "Swimming Pool", category: "recreation"},
	{name: "Gym", category: "recreation"},
	{name: "Sauna", category: "recreation"},
	{name: "Playground", category: "recreation"},
	{name: "Covered Parking", category: "parking"},
	{name: "Visitor Parking", category: "parking"},
	{name: "Elevator", category: "building"},
	{name: "Concierge", category: "building"},
	{name: "24/7 Security", category: "building"},
	{name: "Central AC", category: "utilities"},
	{name: "Backup Generator", category: "utilities"},
	{name: "High-Speed Internet", category: "utilities"},
}

// AmenityOptions inserts the standard amenity catalog. Options are keyed by
// their unique name, so re-running leaves existing entries untouched.
func AmenityOptions(ctx context.Context, db *sql.DB) error {
	ts := "2024-01-01T00:00:00.000Z"
	for _, ad := range defaultAmenityOptions {
		if _, err := db.ExecContext(ctx,
			`INSERT INTO project_amenity_options (id, name, category, is_active, created_at, updated_at)
			 VALUES (?, ?, ?, TRUE, ?, ?)
			 ON CONFLICT(name) DO NOTHING`,
			uuid.NewString(), ad.name, ad.category, ts, ts,
		); err != nil {
			return fmt.Errorf("insert amenity option %s: %w", ad.name, err)
		}
	}
	return nil
}
