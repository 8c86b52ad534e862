package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Store holds all sub-stores used by the application.
type Store struct {
	DB      *sql.DB
	Records RecordStore
	Reports ReportStore
}

// New creates a Store with all sub-stores initialized.
func New(db *sql.DB) *Store {
	return &Store{
		DB:      db,
		Records: NewSQLiteRecordStore(db),
		Reports: NewSQLiteReportStore(db),
	}
}

// CompanyIDByName resolves a company name to its id. It returns an empty id
// and no error when the name is empty or no company matches.
func CompanyIDByName(ctx context.Context, db *sql.DB, name string) (string, error) {
	if name == "" {
		return "", nil
	}
	var id string
	err := db.QueryRowContext(ctx, "SELECT id FROM companies WHERE name = ?", name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("look up company %q: %w", name, err)
	}
	return id, nil
}
