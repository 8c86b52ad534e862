package reports

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"sort"
	"strconv"

	"github.com/propdesk/propdesk/internal/api"
	"github.com/propdesk/propdesk/internal/domain"
	"github.com/propdesk/propdesk/internal/store"
)

// Handler serves dashboard summaries and CSV exports.
type Handler struct {
	store *store.Store

	// defaultCompany is the company id report queries scope to when the
	// request carries no company parameter. Empty means the whole
	// portfolio.
	defaultCompany string
}

// exportPageSize is the page size used when walking a collection for export.
const exportPageSize = 500

// company resolves the company scope for a report request.
func (h *Handler) company(r *http.Request) string {
	if c := r.URL.Query().Get("company"); c != "" {
		return c
	}
	return h.defaultCompany
}

// Portfolio handles GET /api/v1/reports/portfolio.
func (h *Handler) Portfolio(w http.ResponseWriter, r *http.Request) {
	summary, err := h.store.Reports.PortfolioSummary(r.Context(), h.company(r))
	if err != nil {
		api.WriteStoreError(w, r, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, summary)
}

// Maintenance handles GET /api/v1/reports/maintenance.
func (h *Handler) Maintenance(w http.ResponseWriter, r *http.Request) {
	summary, err := h.store.Reports.MaintenanceSummary(r.Context(), h.company(r))
	if err != nil {
		api.WriteStoreError(w, r, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, summary)
}

// Payments handles GET /api/v1/reports/payments.
func (h *Handler) Payments(w http.ResponseWriter, r *http.Request) {
	summary, err := h.store.Reports.PaymentSummary(r.Context(), h.company(r))
	if err != nil {
		api.WriteStoreError(w, r, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, summary)
}

// Export handles GET /api/v1/exports/{collection}: the full collection as
// CSV, honoring the same filter and sort parameters as the list endpoints.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	collection := r.PathValue("collection")
	corrID := api.CorrelationID(r.Context())

	fields := store.FilterableFields(collection)
	if fields == nil {
		api.WriteError(w, http.StatusNotFound, api.NewNotFoundError(
			fmt.Sprintf("collection %q not found", collection), corrID))
		return
	}
	sort.Strings(fields)

	opts, err := api.ParseOptions(r, collection)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, api.NewValidationError(err.Error(), corrID))
		return
	}
	opts.PageSize = exportPageSize

	// Collect every page before writing, so a mid-query failure still
	// produces a clean error response instead of a truncated file.
	var rows []domain.Record
	for page := 1; ; page++ {
		opts.Page = page
		result, err := h.store.Records.List(r.Context(), collection, opts)
		if err != nil {
			api.WriteStoreError(w, r, err)
			return
		}
		rows = append(rows, result.Rows...)
		if page*exportPageSize >= result.Total {
			break
		}
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+collection+`.csv"`)

	cw := csv.NewWriter(w)
	_ = cw.Write(fields)
	for _, rec := range rows {
		line := make([]string, len(fields))
		for i, f := range fields {
			line[i] = formatValue(rec[f])
		}
		_ = cw.Write(line)
	}
	cw.Flush()
}

// formatValue renders a record value as a CSV cell.
func formatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}
