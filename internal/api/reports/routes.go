// Package reports serves dashboard aggregations and CSV exports.
package reports

import (
	"net/http"

	"github.com/propdesk/propdesk/internal/store"
)

// RegisterRoutes adds the report and export endpoints to the given mux.
// defaultCompany is a company id; when non-empty, summaries scope to that
// company unless the request overrides it with a company query parameter
// (also an id).
func RegisterRoutes(mux *http.ServeMux, s *store.Store, defaultCompany string) {
	h := &Handler{store: s, defaultCompany: defaultCompany}

	mux.HandleFunc("GET /api/v1/reports/portfolio", h.Portfolio)
	mux.HandleFunc("GET /api/v1/reports/maintenance", h.Maintenance)
	mux.HandleFunc("GET /api/v1/reports/payments", h.Payments)
	mux.HandleFunc("GET /api/v1/exports/{collection}", h.Export)
}
