package units_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/propdesk/propdesk/internal/api"
	"github.com/propdesk/propdesk/internal/api/units"
	"github.com/propdesk/propdesk/internal/domain"
	"github.com/propdesk/propdesk/internal/entity"
	"github.com/propdesk/propdesk/internal/store"
	"github.com/propdesk/propdesk/internal/testhelpers"
)

func setupServer(t *testing.T) (http.Handler, *entity.API) {
	t.Helper()
	db := testhelpers.NewTestDB(t)
	e := entity.New(store.NewSQLiteRecordStore(db))

	mux := http.NewServeMux()
	units.RegisterRoutes(mux, e)
	return api.Chain(mux, api.Recovery(), api.RequestID()), e
}

func addUnits(t *testing.T, e *entity.API, floors ...int) {
	t.Helper()
	ctx := context.Background()

	prop, err := e.Properties.Create(ctx, domain.Record{
		"name":          "Tower One",
		"address":       "1 Main St",
		"city":          "Springfield",
		"state":         "IL",
		"zip":           "62701",
		"country":       "US",
		"property_type": "residential",
		"status":        "active",
	})
	if err != nil {
		t.Fatalf("create property: %v", err)
	}

	for i, floor := range floors {
		_, err := e.Units.Create(ctx, domain.Record{
			"property_id": prop.ID,
			"unit_number": string(rune('A' + i)),
			"floor":       floor,
			"status":      "vacant",
		})
		if err != nil {
			t.Fatalf("create unit on floor %d: %v", floor, err)
		}
	}
}

func get(t *testing.T, handler http.Handler, path string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", path, nil))

	var decoded map[string]any
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("decode GET %s response: %v", path, err)
		}
	}
	return w, decoded
}

func TestListUnitsIntegerFilterMatchesExactly(t *testing.T) {
	srv, e := setupServer(t)
	addUnits(t, e, 2, 12, 20, 21)

	w, page := get(t, srv, "/api/v1/units?floor=2")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if page["total"] != float64(1) {
		t.Fatalf("total = %v, want exactly the floor-2 unit", page["total"])
	}
	results := page["results"].([]any)
	unit := results[0].(map[string]any)
	if unit["floor"] != float64(2) {
		t.Errorf("floor = %v, want 2", unit["floor"])
	}
}

func TestListUnitsRejectsMalformedIntegerFilter(t *testing.T) {
	srv, e := setupServer(t)
	addUnits(t, e, 2)

	w, body := get(t, srv, "/api/v1/units?floor=penthouse")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", w.Code, w.Body.String())
	}
	if body["category"] != api.CategoryValidationError {
		t.Errorf("category = %v, want %s", body["category"], api.CategoryValidationError)
	}
}
