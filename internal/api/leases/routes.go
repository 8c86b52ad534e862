// Package leases serves the lease endpoints.
package leases

import (
	"net/http"

	"github.com/propdesk/propdesk/internal/api"
	"github.com/propdesk/propdesk/internal/entity"
)

// RegisterRoutes adds all lease endpoints to the given mux.
func RegisterRoutes(mux *http.ServeMux, e *entity.API) {
	h := api.NewResourceHandler(&e.Leases.Resource)

	mux.HandleFunc("GET /api/v1/leases", h.List)
	mux.HandleFunc("POST /api/v1/leases", h.Create)
	mux.HandleFunc("GET /api/v1/leases/{id}", h.Get)
	mux.HandleFunc("PATCH /api/v1/leases/{id}", h.Update)
	mux.HandleFunc("DELETE /api/v1/leases/{id}", h.Delete)

	mux.HandleFunc("GET /api/v1/properties/{propertyId}/leases",
		api.ScopedList("leases", "propertyId", e.Leases.ListByProperty))
	mux.HandleFunc("GET /api/v1/tenants/{tenantId}/leases",
		api.ScopedList("leases", "tenantId", e.Leases.ListByTenant))
}
