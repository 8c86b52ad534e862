package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/propdesk/propdesk/internal/domain"
)

// ReportStore defines read-only aggregations for the dashboard endpoints.
// An empty companyID aggregates the whole portfolio; a non-empty one scopes
// the numbers to properties managed for that company. Tenants are not owned
// by a company and are always reported portfolio-wide.
type ReportStore interface {
	PortfolioSummary(ctx context.Context, companyID string) (*domain.PortfolioSummary, error)
	MaintenanceSummary(ctx context.Context, companyID string) (*domain.MaintenanceSummary, error)
	PaymentSummary(ctx context.Context, companyID string) (*domain.PaymentSummary, error)
}

// SQLiteReportStore implements ReportStore backed by SQLite.
type SQLiteReportStore struct {
	db *sql.DB
}

// NewSQLiteReportStore creates a new SQLiteReportStore.
func NewSQLiteReportStore(db *sql.DB) *SQLiteReportStore {
	return &SQLiteReportStore{db: db}
}

// PortfolioSummary reports property, unit, and tenant counts by status plus
// the active lease count and the combined rent of active leases.
func (s *SQLiteReportStore) PortfolioSummary(ctx context.Context, companyID string) (*domain.PortfolioSummary, error) {
	summary := &domain.PortfolioSummary{}

	var err error
	summary.PropertiesByStatus, err = s.groupCount(ctx,
		`SELECT status, COUNT(*) FROM properties
		 WHERE (? = '' OR company_id = ?) GROUP BY status`,
		companyID, companyID)
	if err != nil {
		return nil, fmt.Errorf("properties by status: %w", err)
	}

	summary.UnitsByStatus, err = s.groupCount(ctx,
		`SELECT u.status, COUNT(*) FROM units u
		 JOIN properties p ON p.id = u.property_id
		 WHERE (? = '' OR p.company_id = ?) GROUP BY u.status`,
		companyID, companyID)
	if err != nil {
		return nil, fmt.Errorf("units by status: %w", err)
	}

	summary.TenantsByStatus, err = s.groupCount(ctx,
		`SELECT status, COUNT(*) FROM tenants GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("tenants by status: %w", err)
	}

	err = s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(l.rent_amount), 0) FROM leases l
		 JOIN properties p ON p.id = l.property_id
		 WHERE l.status = 'active' AND (? = '' OR p.company_id = ?)`,
		companyID, companyID,
	).Scan(&summary.ActiveLeases, &summary.MonthlyRentRoll)
	if err != nil {
		return nil, fmt.Errorf("active leases: %w", err)
	}

	return summary, nil
}

// MaintenanceSummary reports request counts by status, and open requests by
// priority.
func (s *SQLiteReportStore) MaintenanceSummary(ctx context.Context, companyID string) (*domain.MaintenanceSummary, error) {
	summary := &domain.MaintenanceSummary{}

	var err error
	summary.ByStatus, err = s.groupCount(ctx,
		`SELECT m.status, COUNT(*) FROM maintenance_requests m
		 JOIN properties p ON p.id = m.property_id
		 WHERE (? = '' OR p.company_id = ?) GROUP BY m.status`,
		companyID, companyID)
	if err != nil {
		return nil, fmt.Errorf("maintenance by status: %w", err)
	}

	summary.ByPriority, err = s.groupCount(ctx,
		`SELECT m.priority, COUNT(*) FROM maintenance_requests m
		 JOIN properties p ON p.id = m.property_id
		 WHERE m.status IN ('open', 'in_progress') AND (? = '' OR p.company_id = ?)
		 GROUP BY m.priority`,
		companyID, companyID)
	if err != nil {
		return nil, fmt.Errorf("maintenance by priority: %w", err)
	}

	for _, count := range summary.ByPriority {
		summary.OpenTotal += count
	}
	return summary, nil
}

// PaymentSummary reports payment counts and amounts by status, plus the
// total amount of completed payments.
func (s *SQLiteReportStore) PaymentSummary(ctx context.Context, companyID string) (*domain.PaymentSummary, error) {
	summary := &domain.PaymentSummary{
		CountByStatus:  map[string]int{},
		AmountByStatus: map[string]float64{},
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT pay.status, COUNT(*), COALESCE(SUM(pay.amount), 0)
		 FROM payments pay
		 JOIN leases l ON l.id = pay.lease_id
		 JOIN properties p ON p.id = l.property_id
		 WHERE (? = '' OR p.company_id = ?)
		 GROUP BY pay.status`,
		companyID, companyID,
	)
	if err != nil {
		return nil, fmt.Errorf("payments by status: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var status string
		var count int
		var amount float64
		if err := rows.Scan(&status, &count, &amount); err != nil {
			return nil, fmt.Errorf("scan payment row: %w", err)
		}
		summary.CountByStatus[status] = count
		summary.AmountByStatus[status] = amount
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	summary.CollectedTotal = summary.AmountByStatus["completed"]
	return summary, nil
}

// groupCount runs a two-column (label, count) aggregation query.
func (s *SQLiteReportStore) groupCount(ctx context.Context, query string, args ...any) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := map[string]int{}
	for rows.Next() {
		var label string
		var count int
		if err := rows.Scan(&label, &count); err != nil {
			return nil, err
		}
		out[label] = count
	}
	return out, rows.Err()
}
