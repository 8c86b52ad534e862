package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/propdesk/propdesk/internal/domain"
)

// RecordStore is the generic repository: five operations over any registered
// collection, uniform for every entity shape.
type RecordStore interface {
	List(ctx context.Context, collection string, opts *domain.QueryOptions) (*domain.RecordPage, error)
	Get(ctx context.Context, collection, id string) (domain.Record, error)
	Create(ctx context.Context, collection string, fields domain.Record) (domain.Record, error)
	Update(ctx context.Context, collection, id string, fields domain.Record) (domain.Record, error)
	Delete(ctx context.Context, collection, id string) error
}

// SQLiteRecordStore implements RecordStore backed by SQLite.
type SQLiteRecordStore struct {
	db *sql.DB
}

// NewSQLiteRecordStore creates a new SQLiteRecordStore.
func NewSQLiteRecordStore(db *sql.DB) *SQLiteRecordStore {
	return &SQLiteRecordStore{db: db}
}

const defaultPageSize = 10

// List returns one page of records matching the filters, plus the total
// count of matching rows regardless of pagination. With zero options it
// returns the first default-size page, most recently updated first.
func (s *SQLiteRecordStore) List(ctx context.Context, collection string, opts *domain.QueryOptions) (*domain.RecordPage, error) {
	spec, err := resolveCollection(collection)
	if err != nil {
		return nil, &QueryError{Collection: collection, Err: err}
	}

	page, pageSize := 1, defaultPageSize
	var o domain.QueryOptions
	if opts != nil {
		o = *opts
	}
	if o.Page >= 1 {
		page = o.Page
	}
	if o.PageSize >= 1 {
		pageSize = o.PageSize
	}

	where, args, err := filterClause(spec, o.Filters)
	if err != nil {
		return nil, &QueryError{Collection: collection, Err: err}
	}

	var total int
	countSQL := "SELECT COUNT(*) FROM " + spec.table + where
	if err := s.db.QueryRowContext(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, &QueryError{Collection: collection, Err: fmt.Errorf("count: %w", err)}
	}

	order, err := orderClause(spec, o.SortBy, o.SortOrder)
	if err != nil {
		return nil, &QueryError{Collection: collection, Err: err}
	}

	selectSQL := "SELECT * FROM " + spec.table + where + order + " LIMIT ? OFFSET ?"
	selectArgs := append(append([]any{}, args...), pageSize, (page-1)*pageSize)

	rows, err := s.db.QueryContext(ctx, selectSQL, selectArgs...)
	if err != nil {
		return nil, &QueryError{Collection: collection, Err: fmt.Errorf("select: %w", err)}
	}
	defer func() { _ = rows.Close() }()

	records, err := scanRecords(spec, rows)
	if err != nil {
		return nil, &QueryError{Collection: collection, Err: err}
	}

	return &domain.RecordPage{
		Rows:     records,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Get retrieves a single record by id.
func (s *SQLiteRecordStore) Get(ctx context.Context, collection, id string) (domain.Record, error) {
	spec, err := resolveCollection(collection)
	if err != nil {
		return nil, &QueryError{Collection: collection, Err: err}
	}

	rec, err := s.getRecord(ctx, spec, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s %q: %w", collection, id, ErrNotFound)
		}
		return nil, &QueryError{Collection: collection, Err: err}
	}
	return rec, nil
}

// Create inserts a new record. The id and both timestamps are stamped by
// the repository; caller-supplied values for those keys are discarded.
func (s *SQLiteRecordStore) Create(ctx context.Context, collection string, fields domain.Record) (domain.Record, error) {
	spec, err := resolveCollection(collection)
	if err != nil {
		return nil, &WriteError{Collection: collection, Err: err}
	}

	rec := fields.Clone()
	delete(rec, "id")
	if err := validateColumns(spec, rec); err != nil {
		return nil, &WriteError{Collection: collection, Err: err}
	}

	ts := now()
	rec["id"] = newID()
	rec["created_at"] = ts
	rec["updated_at"] = ts

	columns := sortedKeys(rec)
	placeholders := make([]string, len(columns))
	args := make([]any, len(columns))
	for i, c := range columns {
		placeholders[i] = "?"
		args[i] = rec[c]
	}

	insertSQL := "INSERT INTO " + spec.table +
		" (" + strings.Join(columns, ", ") + ") VALUES (" + strings.Join(placeholders, ", ") + ")"
	if _, err := s.db.ExecContext(ctx, insertSQL, args...); err != nil {
		return nil, &WriteError{Collection: collection, Err: fmt.Errorf("insert: %w", err)}
	}

	out, err := s.getRecord(ctx, spec, rec["id"].(string))
	if err != nil {
		return nil, &WriteError{Collection: collection, Err: fmt.Errorf("read back: %w", err)}
	}
	return out, nil
}

// Update merges the supplied fields into an existing record and stamps
// updated_at. The id and created_at cannot be changed; those keys are
// discarded if present.
func (s *SQLiteRecordStore) Update(ctx context.Context, collection, id string, fields domain.Record) (domain.Record, error) {
	spec, err := resolveCollection(collection)
	if err != nil {
		return nil, &WriteError{Collection: collection, Err: err}
	}

	rec := fields.Clone()
	delete(rec, "id")
	delete(rec, "created_at")
	if err := validateColumns(spec, rec); err != nil {
		return nil, &WriteError{Collection: collection, Err: err}
	}

	var exists int
	err = s.db.QueryRowContext(ctx, "SELECT 1 FROM "+spec.table+" WHERE id = ?", id).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s %q: %w", collection, id, ErrNotFound)
	}
	if err != nil {
		return nil, &WriteError{Collection: collection, Err: err}
	}

	rec["updated_at"] = now()

	columns := sortedKeys(rec)
	assignments := make([]string, len(columns))
	args := make([]any, 0, len(columns)+1)
	for i, c := range columns {
		assignments[i] = c + " = ?"
		args = append(args, rec[c])
	}
	args = append(args, id)

	updateSQL := "UPDATE " + spec.table + " SET " + strings.Join(assignments, ", ") + " WHERE id = ?"
	if _, err := s.db.ExecContext(ctx, updateSQL, args...); err != nil {
		return nil, &WriteError{Collection: collection, Err: fmt.Errorf("update: %w", err)}
	}

	out, err := s.getRecord(ctx, spec, id)
	if err != nil {
		return nil, &WriteError{Collection: collection, Err: fmt.Errorf("read back: %w", err)}
	}
	return out, nil
}

// Delete removes a record by id. Deleting an id with no matching row is a
// silent success; only a database error fails the call.
func (s *SQLiteRecordStore) Delete(ctx context.Context, collection, id string) error {
	spec, err := resolveCollection(collection)
	if err != nil {
		return &WriteError{Collection: collection, Err: err}
	}

	if _, err := s.db.ExecContext(ctx, "DELETE FROM "+spec.table+" WHERE id = ?", id); err != nil {
		return &WriteError{Collection: collection, Err: fmt.Errorf("delete: %w", err)}
	}
	return nil
}

// getRecord reads one row by id, returning sql.ErrNoRows when absent.
func (s *SQLiteRecordStore) getRecord(ctx context.Context, spec collectionSpec, id string) (domain.Record, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT * FROM "+spec.table+" WHERE id = ?", id)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	records, err := scanRecords(spec, rows)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, sql.ErrNoRows
	}
	return records[0], nil
}

// filterClause translates the filter mapping into a WHERE clause. String
// values match case-insensitively on substring; everything else matches by
// equality. Nil and empty-string values are ignored. Keys are processed in
// sorted order so the generated SQL is deterministic.
func filterClause(spec collectionSpec, filters domain.Record) (string, []any, error) {
	if len(filters) == 0 {
		return "", nil, nil
	}

	var clauses []string
	var args []any
	for _, field := range sortedKeys(filters) {
		value := filters[field]
		if value == nil || value == "" {
			continue
		}
		if _, ok := spec.columns[field]; !ok {
			return "", nil, fmt.Errorf("unknown filter field %q", field)
		}
		switch v := value.(type) {
		case string:
			clauses = append(clauses, "lower("+field+") LIKE ? ESCAPE '\\'")
			args = append(args, "%"+escapeLike(strings.ToLower(v))+"%")
		default:
			clauses = append(clauses, field+" = ?")
			args = append(args, v)
		}
	}
	if len(clauses) == 0 {
		return "", nil, nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args, nil
}

// orderClause builds the ORDER BY clause, defaulting to most recently
// updated first. The id tiebreaker keeps page boundaries stable.
func orderClause(spec collectionSpec, sortBy, sortOrder string) (string, error) {
	if sortBy == "" {
		return " ORDER BY updated_at DESC, id ASC", nil
	}
	if _, ok := spec.columns[sortBy]; !ok {
		return "", fmt.Errorf("unknown sort field %q", sortBy)
	}
	direction := "ASC"
	if strings.EqualFold(sortOrder, domain.SortDesc) {
		direction = "DESC"
	}
	return " ORDER BY " + sortBy + " " + direction + ", id ASC", nil
}

// validateColumns rejects write payload keys that are not columns of the
// collection, keeping caller input out of generated SQL text.
func validateColumns(spec collectionSpec, rec domain.Record) error {
	for field := range rec {
		if _, ok := spec.columns[field]; !ok {
			return fmt.Errorf("unknown column %q", field)
		}
	}
	return nil
}

// scanRecords reads all rows into generic records, coercing driver values
// to the kinds declared in the collection registry. NULL columns are
// omitted from the record.
func scanRecords(spec collectionSpec, rows *sql.Rows) ([]domain.Record, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("columns: %w", err)
	}

	records := []domain.Record{}
	for rows.Next() {
		values := make([]any, len(columns))
		dest := make([]any, len(columns))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}

		rec := make(domain.Record, len(columns))
		for i, name := range columns {
			v := coerceValue(spec.columns[name], values[i])
			if v == nil {
				continue
			}
			rec[name] = v
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// coerceValue maps raw driver values onto the registered column kind.
func coerceValue(kind ColumnKind, v any) any {
	switch raw := v.(type) {
	case nil:
		return nil
	case []byte:
		return string(raw)
	case int64:
		switch kind {
		case KindBool:
			return raw != 0
		case KindReal:
			return float64(raw)
		default:
			return raw
		}
	default:
		return raw
	}
}

// sortedKeys returns the record's keys in sorted order for deterministic
// SQL generation.
func sortedKeys(rec domain.Record) []string {
	keys := make([]string, 0, len(rec))
	for k := range rec {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
