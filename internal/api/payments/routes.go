// Package payments serves the payment endpoints.
package payments

import (
	"net/http"

	"github.com/propdesk/propdesk/internal/api"
	"github.com/propdesk/propdesk/internal/entity"
)

// RegisterRoutes adds all payment endpoints to the given mux.
func RegisterRoutes(mux *http.ServeMux, e *entity.API) {
	h := api.NewResourceHandler(&e.Payments.Resource)

	mux.HandleFunc("GET /api/v1/payments", h.List)
	mux.HandleFunc("POST /api/v1/payments", h.Create)
	mux.HandleFunc("GET /api/v1/payments/{id}", h.Get)
	mux.HandleFunc("PATCH /api/v1/payments/{id}", h.Update)
	mux.HandleFunc("DELETE /api/v1/payments/{id}", h.Delete)

	mux.HandleFunc("GET /api/v1/leases/{leaseId}/payments",
		api.ScopedList("payments", "leaseId", e.Payments.ListByLease))
	mux.HandleFunc("GET /api/v1/tenants/{tenantId}/payments",
		api.ScopedList("payments", "tenantId", e.Payments.ListByTenant))
}
