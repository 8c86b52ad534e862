package seed

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// DefaultCompanyName is the management company a fresh install starts with.
const DefaultCompanyName = "Propdesk Management"

// Companies inserts the default management company if none exists yet.
func Companies(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM companies`).Scan(&count); err != nil {
		return fmt.Errorf("count companies: %w", err)
	}
	if count > 0 {
		return nil
	}

	ts := "2024-01-01T00:00:00.000Z"
	if _, err := db.ExecContext(ctx,
		`INSERT INTO companies (id, name, contact_email, country, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, 'active', ?, ?)`,
		uuid.NewString(), DefaultCompanyName, "admin@example.com", "US", ts, ts,
	); err != nil {
		return fmt.Errorf("insert default company: %w", err)
	}
	return nil
}
