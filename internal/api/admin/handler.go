package admin

import (
	"database/sql"
	"fmt"
	"net/http"

	"github.com/propdesk/propdesk/internal/api"
	"github.com/propdesk/propdesk/internal/seed"
)

// Handler serves the admin API at /_admin/.
type Handler struct {
	db *sql.DB
}

// dataTableNames lists all data tables in foreign-key-safe deletion order.
var dataTableNames = []string{
	"project_amenities",
	"project_specifications",
	"project_features",
	"projects",
	"payments",
	"maintenance_requests",
	"leases",
	"units",
	"tenants",
	"properties",
	"project_amenity_options",
	"companies",
}

// Reset drops all data from all tables and re-runs seeds.
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	corrID := api.CorrelationID(ctx)

	for _, table := range dataTableNames {
		if _, err := h.db.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s", table)); err != nil {
			api.WriteError(w, http.StatusInternalServerError, &api.Error{
				Status:        "error",
				Message:       fmt.Sprintf("failed to clear table %s: %s", table, err),
				CorrelationID: corrID,
				Category:      api.CategoryInternalError,
			})
			return
		}
	}

	if err := seed.Seed(ctx, h.db); err != nil {
		api.WriteError(w, http.StatusInternalServerError, &api.Error{
			Status:        "error",
			Message:       fmt.Sprintf("failed to re-seed: %s", err),
			CorrelationID: corrID,
			Category:      api.CategoryInternalError,
		})
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// SeedData runs seed data without dropping existing data first.
func (h *Handler) SeedData(w http.ResponseWriter, r *http.Request) {
	if err := seed.Seed(r.Context(), h.db); err != nil {
		corrID := api.CorrelationID(r.Context())
		api.WriteError(w, http.StatusInternalServerError, &api.Error{
			Status:        "error",
			Message:       fmt.Sprintf("failed to seed: %s", err),
			CorrelationID: corrID,
			Category:      api.CategoryInternalError,
		})
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
