package properties_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/propdesk/propdesk/internal/api"
	"github.com/propdesk/propdesk/internal/api/properties"
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
	properties.RegisterRoutes(mux, e)
	return api.Chain(mux, api.Recovery(), api.RequestID()), e
}

func createCompany(t *testing.T, e *entity.API, name string) string {
	t.Helper()
	company, err := e.Companies.Create(context.Background(), domain.Record{"name": name})
	if err != nil {
		t.Fatalf("create company %s: %v", name, err)
	}
	return company.ID
}

func doJSON(t *testing.T, handler http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(method, path, strings.NewReader(body)))

	var decoded map[string]any
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("decode %s %s response: %v", method, path, err)
		}
	}
	return w, decoded
}

const propertyBody = `{
	"name": "Lakeside Flats",
	"address": "9 Shore Rd",
	"city": "Madison",
	"state": "WI",
	"zip": "53703",
	"country": "US",
	"property_type": "residential",
	"status": "active"
}`

func TestPropertyLifecycle(t *testing.T) {
	srv, _ := setupServer(t)

	w, created := doJSON(t, srv, "POST", "/api/v1/properties", propertyBody)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, want 201: %s", w.Code, w.Body.String())
	}
	id, _ := created["id"].(string)
	if id == "" {
		t.Fatal("expected created property to carry an id")
	}
	if created["name"] != "Lakeside Flats" {
		t.Errorf("name = %v, want Lakeside Flats", created["name"])
	}

	w, got := doJSON(t, srv, "GET", "/api/v1/properties/"+id, "")
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d, want 200", w.Code)
	}
	if got["id"] != id {
		t.Errorf("get id = %v, want %s", got["id"], id)
	}

	w, updated := doJSON(t, srv, "PATCH", "/api/v1/properties/"+id, `{"status": "sold"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("patch status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if updated["status"] != "sold" {
		t.Errorf("status = %v, want sold", updated["status"])
	}
	if updated["city"] != "Madison" {
		t.Errorf("untouched city = %v, want Madison", updated["city"])
	}

	w, _ = doJSON(t, srv, "DELETE", "/api/v1/properties/"+id, "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d, want 204", w.Code)
	}

	w, body := doJSON(t, srv, "GET", "/api/v1/properties/"+id, "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("get after delete status = %d, want 404", w.Code)
	}
	if body["category"] != api.CategoryNotFound {
		t.Errorf("category = %v, want %s", body["category"], api.CategoryNotFound)
	}
	if body["correlationId"] == "" {
		t.Error("expected a correlation id in the error envelope")
	}
}

func TestListPropertiesWithFilter(t *testing.T) {
	srv, _ := setupServer(t)

	doJSON(t, srv, "POST", "/api/v1/properties", propertyBody)
	doJSON(t, srv, "POST", "/api/v1/properties",
		strings.Replace(propertyBody, "Lakeside Flats", "Hill House", 1))

	w, page := doJSON(t, srv, "GET", "/api/v1/properties?name=lakeside", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d, want 200", w.Code)
	}
	if page["total"] != float64(1) {
		t.Errorf("total = %v, want 1", page["total"])
	}
	results := page["results"].([]any)
	if len(results) != 1 {
		t.Fatalf("results = %d, want 1", len(results))
	}
}

func TestListPropertiesRejectsBadSort(t *testing.T) {
	srv, _ := setupServer(t)

	w, body := doJSON(t, srv, "GET", "/api/v1/properties?sortBy=bogus", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if body["category"] != api.CategoryValidationError {
		t.Errorf("category = %v, want %s", body["category"], api.CategoryValidationError)
	}
}

func TestCreatePropertyRejectsBadJSON(t *testing.T) {
	srv, _ := setupServer(t)

	w, body := doJSON(t, srv, "POST", "/api/v1/properties", `{"name":`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if body["category"] != api.CategoryValidationError {
		t.Errorf("category = %v, want %s", body["category"], api.CategoryValidationError)
	}
}

func TestCreatePropertyUnknownFieldFails(t *testing.T) {
	srv, _ := setupServer(t)

	w, body := doJSON(t, srv, "POST", "/api/v1/properties",
		strings.Replace(propertyBody, `"name"`, `"nickname"`, 1))
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422: %s", w.Code, w.Body.String())
	}
	if body["category"] != api.CategoryWriteFailed {
		t.Errorf("category = %v, want %s", body["category"], api.CategoryWriteFailed)
	}
}

func TestListPropertiesByCompany(t *testing.T) {
	srv, e := setupServer(t)

	first := createCompany(t, e, "First Co")
	second := createCompany(t, e, "Second Co")

	doJSON(t, srv, "POST", "/api/v1/properties",
		strings.Replace(propertyBody, `"name"`, `"company_id": "`+first+`", "name"`, 1))
	doJSON(t, srv, "POST", "/api/v1/properties",
		strings.Replace(propertyBody, `"name"`, `"company_id": "`+second+`", "name"`, 1))

	w, page := doJSON(t, srv, "GET", "/api/v1/companies/"+second+"/properties", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if page["total"] != float64(1) {
		t.Errorf("total = %v, want 1", page["total"])
	}
}
