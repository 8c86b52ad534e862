// Package maintenance serves the maintenance request endpoints.
package maintenance

import (
	"net/http"

	"github.com/propdesk/propdesk/internal/api"
	"github.com/propdesk/propdesk/internal/entity"
)

// RegisterRoutes adds all maintenance request endpoints to the given mux.
func RegisterRoutes(mux *http.ServeMux, e *entity.API) {
	h := api.NewResourceHandler(&e.Maintenance.Resource)

	mux.HandleFunc("GET /api/v1/maintenance-requests", h.List)
	mux.HandleFunc("POST /api/v1/maintenance-requests", h.Create)
	mux.HandleFunc("GET /api/v1/maintenance-requests/{id}", h.Get)
	mux.HandleFunc("PATCH /api/v1/maintenance-requests/{id}", h.Update)
	mux.HandleFunc("DELETE /api/v1/maintenance-requests/{id}", h.Delete)

	mux.HandleFunc("GET /api/v1/properties/{propertyId}/maintenance-requests",
		api.ScopedList("maintenance_requests", "propertyId", e.Maintenance.ListByProperty))
}
