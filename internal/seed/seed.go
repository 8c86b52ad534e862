package seed

import (
	"context"
	"database/sql"
	"fmt"
)

// Seed inserts all standard seed data into the database. It is idempotent:
// existing rows are left untouched.
func Seed(ctx context.Context, db *sql.DB) error {
	if err := Companies(ctx, db); err != nil {
		return fmt.Errorf("seed companies: %w", err)
	}
	if err := AmenityOptions(ctx, db); err != nil {
		return fmt.Errorf("seed amenity options: %w", err)
	}
	return nil
}
