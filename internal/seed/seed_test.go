package seed_test

import (
	"context"
	"testing"

	"github.com/propdesk/propdesk/internal/seed"
	"github.com/propdesk/propdesk/internal/testhelpers"
)

func TestSeedIsIdempotent(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := seed.Seed(ctx, db); err != nil {
			t.Fatalf("seed run %d: %v", i+1, err)
		}
	}

	var companies int
	if err := db.QueryRow("SELECT COUNT(*) FROM companies").Scan(&companies); err != nil {
		t.Fatalf("count companies: %v", err)
	}
	if companies != 1 {
		t.Errorf("companies = %d, want 1", companies)
	}

	var name string
	if err := db.QueryRow("SELECT name FROM companies").Scan(&name); err != nil {
		t.Fatalf("read company: %v", err)
	}
	if name != seed.DefaultCompanyName {
		t.Errorf("company name = %q, want %q", name, seed.DefaultCompanyName)
	}

	var options int
	if err := db.QueryRow("SELECT COUNT(*) FROM project_amenity_options").Scan(&options); err != nil {
		t.Fatalf("count amenity options: %v", err)
	}
	if options != 12 {
		t.Errorf("amenity options = %d, want 12", options)
	}
}

func TestSeedKeepsExistingCompanies(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	ctx := context.Background()

	ts := "2026-01-01T00:00:00.000Z"
	if _, err := db.ExecContext(ctx,
		`INSERT INTO companies (id, name, status, created_at, updated_at)
		 VALUES ('c1', 'Existing Co', 'active', ?, ?)`, ts, ts); err != nil {
		t.Fatalf("insert company: %v", err)
	}

	if err := seed.Seed(ctx, db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	var companies int
	if err := db.QueryRow("SELECT COUNT(*) FROM companies").Scan(&companies); err != nil {
		t.Fatalf("count companies: %v", err)
	}
	if companies != 1 {
		t.Errorf("companies = %d, want only the pre-existing one", companies)
	}
}
