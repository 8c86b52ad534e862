package api

import (
	"errors"
	"net/http"

	"github.com/propdesk/propdesk/internal/store"
)

// Error categories reported to clients.
const (
	CategoryValidationError = "VALIDATION_ERROR"
	CategoryNotFound        = "NOT_FOUND"
	CategoryQueryFailed     = "QUERY_FAILED"
	CategoryWriteFailed     = "WRITE_FAILED"
	CategoryInternalError   = "INTERNAL_ERROR"
)

// Error is the JSON error envelope every failed request returns.
type Error struct {
	Status        string `json:"status"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId"`
	Category      string `json:"category"`
}

// NewNotFoundError creates a 404 error body.
func NewNotFoundError(message, correlationID string) *Error {
	return &Error{
		Status:        "error",
		Message:       message,
		CorrelationID: correlationID,
		Category:      CategoryNotFound,
	}
}

// NewValidationError creates a 400 error body.
func NewValidationError(message, correlationID string) *Error {
	return &Error{
		Status:        "error",
		Message:       message,
		CorrelationID: correlationID,
		Category:      CategoryValidationError,
	}
}

// WriteError writes an Error as a JSON response with the given HTTP status code.
func WriteError(w http.ResponseWriter, statusCode int, apiErr *Error) {
	WriteJSON(w, statusCode, apiErr)
}

// WriteStoreError maps a repository error onto the HTTP error envelope:
// NotFound -> 404, WriteFailure -> 422, QueryFailure -> 500, anything
// else -> 500 INTERNAL_ERROR. The repository error text is passed through
// unchanged; no detail is fabricated or dropped.
func WriteStoreError(w http.ResponseWriter, r *http.Request, err error) {
	corrID := CorrelationID(r.Context())

	var writeErr *store.WriteError
	var queryErr *store.QueryError
	switch {
	case errors.Is(err, store.ErrNotFound):
		WriteError(w, http.StatusNotFound, NewNotFoundError(err.Error(), corrID))
	case errors.As(err, &writeErr):
		WriteError(w, http.StatusUnprocessableEntity, &Error{
			Status:        "error",
			Message:       err.Error(),
			CorrelationID: corrID,
			Category:      CategoryWriteFailed,
		})
	case errors.As(err, &queryErr):
		WriteError(w, http.StatusInternalServerError, &Error{
			Status:        "error",
			Message:       err.Error(),
			CorrelationID: corrID,
			Category:      CategoryQueryFailed,
		})
	default:
		WriteError(w, http.StatusInternalServerError, &Error{
			Status:        "error",
			Message:       err.Error(),
			CorrelationID: corrID,
			Category:      CategoryInternalError,
		})
	}
}
