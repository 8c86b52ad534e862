// Package tenants serves the tenant endpoints.
package tenants

import (
	"net/http"

	"github.com/propdesk/propdesk/internal/api"
	"github.com/propdesk/propdesk/internal/entity"
)

// RegisterRoutes adds all tenant endpoints to the given mux.
func RegisterRoutes(mux *http.ServeMux, e *entity.API) {
	h := api.NewResourceHandler(&e.Tenants.Resource)

	mux.HandleFunc("GET /api/v1/tenants", h.List)
	mux.HandleFunc("POST /api/v1/tenants", h.Create)
	mux.HandleFunc("GET /api/v1/tenants/{id}", h.Get)
	mux.HandleFunc("PATCH /api/v1/tenants/{id}", h.Update)
	mux.HandleFunc("DELETE /api/v1/tenants/{id}", h.Delete)
}
