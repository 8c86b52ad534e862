// Package properties serves the property endpoints.
package properties

import (
	"net/http"

	"github.com/propdesk/propdesk/internal/api"
	"github.com/propdesk/propdesk/internal/entity"
)

// RegisterRoutes adds all property endpoints to the given mux.
func RegisterRoutes(mux *http.ServeMux, e *entity.API) {
	h := api.NewResourceHandler(&e.Properties.Resource)

	mux.HandleFunc("GET /api/v1/properties", h.List)
	mux.HandleFunc("POST /api/v1/properties", h.Create)
	mux.HandleFunc("GET /api/v1/properties/{id}", h.Get)
	mux.HandleFunc("PATCH /api/v1/properties/{id}", h.Update)
	mux.HandleFunc("DELETE /api/v1/properties/{id}", h.Delete)

	mux.HandleFunc("GET /api/v1/companies/{companyId}/properties",
		api.ScopedList("properties", "companyId", e.Properties.ListByCompany))
}
