// Package companies serves the management company endpoints.
package companies

import (
	"net/http"

	"github.com/propdesk/propdesk/internal/api"
	"github.com/propdesk/propdesk/internal/entity"
)

// RegisterRoutes adds all company endpoints to the given mux.
func RegisterRoutes(mux *http.ServeMux, e *entity.API) {
	h := api.NewResourceHandler(&e.Companies.Resource)

	mux.HandleFunc("GET /api/v1/companies", h.List)
	mux.HandleFunc("POST /api/v1/companies", h.Create)
	mux.HandleFunc("GET /api/v1/companies/{id}", h.Get)
	mux.HandleFunc("PATCH /api/v1/companies/{id}", h.Update)
	mux.HandleFunc("DELETE /api/v1/companies/{id}", h.Delete)
}
