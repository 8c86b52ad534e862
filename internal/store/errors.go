package store

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a read or update targets an id with no
// matching row.
var ErrNotFound = errors.New("record not found")

// QueryError reports a failed read (list or get) against a collection. The
// original cause is preserved for errors.Is/As.
type QueryError struct {
	Collection string
	Err        error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query %s: %v", e.Collection, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

// WriteError reports a failed create, update, or delete. Constraint
// violations from the database surface here.
type WriteError struct {
	Collection string
	Err        error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Collection, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
