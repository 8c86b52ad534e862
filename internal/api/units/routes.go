// Package units serves the unit endpoints.
package units

import (
	"net/http"

	"github.com/propdesk/propdesk/internal/api"
	"github.com/propdesk/propdesk/internal/entity"
)

// RegisterRoutes adds all unit endpoints to the given mux.
func RegisterRoutes(mux *http.ServeMux, e *entity.API) {
	h := api.NewResourceHandler(&e.Units.Resource)

	mux.HandleFunc("GET /api/v1/units", h.List)
	mux.HandleFunc("POST /api/v1/units", h.Create)
	mux.HandleFunc("GET /api/v1/units/{id}", h.Get)
	mux.HandleFunc("PATCH /api/v1/units/{id}", h.Update)
	mux.HandleFunc("DELETE /api/v1/units/{id}", h.Delete)

	mux.HandleFunc("GET /api/v1/properties/{propertyId}/units",
		api.ScopedList("units", "propertyId", e.Units.ListByProperty))
}
