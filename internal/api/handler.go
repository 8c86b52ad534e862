package api

import (
	"context"
	"net/http"

	"github.com/propdesk/propdesk/internal/domain"
	"github.com/propdesk/propdesk/internal/entity"
)

// ResourceHandler serves the five CRUD endpoints of one entity resource.
// Entity packages register it against their routes and add scoped list
// routes with ScopedList.
type ResourceHandler[T any] struct {
	resource *entity.Resource[T]
}

// NewResourceHandler wraps a façade resource for HTTP serving.
func NewResourceHandler[T any](resource *entity.Resource[T]) *ResourceHandler[T] {
	return &ResourceHandler[T]{resource: resource}
}

// List handles GET /api/v1/{collection}.
func (h *ResourceHandler[T]) List(w http.ResponseWriter, r *http.Request) {
	opts, err := ParseOptions(r, h.resource.Collection())
	if err != nil {
		WriteError(w, http.StatusBadRequest, NewValidationError(err.Error(), CorrelationID(r.Context())))
		return
	}

	page, err := h.resource.List(r.Context(), opts)
	if err != nil {
		WriteStoreError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, page)
}

// Get handles GET /api/v1/{collection}/{id}.
func (h *ResourceHandler[T]) Get(w http.ResponseWriter, r *http.Request) {
	row, err := h.resource.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteStoreError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, row)
}

// Create handles POST /api/v1/{collection}.
func (h *ResourceHandler[T]) Create(w http.ResponseWriter, r *http.Request) {
	fields, err := DecodeBody(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, NewValidationError("Invalid input JSON", CorrelationID(r.Context())))
		return
	}

	row, err := h.resource.Create(r.Context(), fields)
	if err != nil {
		WriteStoreError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusCreated, row)
}

// Update handles PATCH /api/v1/{collection}/{id}.
func (h *ResourceHandler[T]) Update(w http.ResponseWriter, r *http.Request) {
	fields, err := DecodeBody(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, NewValidationError("Invalid input JSON", CorrelationID(r.Context())))
		return
	}

	row, err := h.resource.Update(r.Context(), r.PathValue("id"), fields)
	if err != nil {
		WriteStoreError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, row)
}

// Delete handles DELETE /api/v1/{collection}/{id}.
func (h *ResourceHandler[T]) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.resource.Delete(r.Context(), r.PathValue("id")); err != nil {
		WriteStoreError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ScopedList adapts a façade scoped-list method (units by property, leases
// by tenant, and so on) into a handler. pathParam names the URL parameter
// carrying the parent id; collection scopes query-option parsing.
func ScopedList[T any](collection, pathParam string, list func(ctx context.Context, parentID string, opts *domain.QueryOptions) (*entity.Page[T], error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts, err := ParseOptions(r, collection)
		if err != nil {
			WriteError(w, http.StatusBadRequest, NewValidationError(err.Error(), CorrelationID(r.Context())))
			return
		}

		page, err := list(r.Context(), r.PathValue(pathParam), opts)
		if err != nil {
			WriteStoreError(w, r, err)
			return
		}
		WriteJSON(w, http.StatusOK, page)
	}
}
