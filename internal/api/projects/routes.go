// Package projects serves the project endpoints and the project
// sub-resources: features, specifications, amenities, and the amenity
// option catalog.
package projects

import (
	"net/http"

	"github.com/propdesk/propdesk/internal/api"
	"github.com/propdesk/propdesk/internal/entity"
)

// RegisterRoutes adds all project endpoints to the given mux.
func RegisterRoutes(mux *http.ServeMux, e *entity.API) {
	h := api.NewResourceHandler(&e.Projects.Resource)

	mux.HandleFunc("GET /api/v1/projects", h.List)
	mux.HandleFunc("POST /api/v1/projects", h.Create)
	mux.HandleFunc("GET /api/v1/projects/{id}", h.Get)
	mux.HandleFunc("PATCH /api/v1/projects/{id}", h.Update)
	mux.HandleFunc("DELETE /api/v1/projects/{id}", h.Delete)

	mux.HandleFunc("GET /api/v1/properties/{propertyId}/projects",
		api.ScopedList("projects", "propertyId", e.Projects.ListByProperty))

	registerFeatureRoutes(mux, e)
	registerSpecificationRoutes(mux, e)
	registerAmenityRoutes(mux, e)
}

func registerFeatureRoutes(mux *http.ServeMux, e *entity.API) {
	h := api.NewResourceHandler(&e.ProjectFeatures.Resource)

	mux.HandleFunc("GET /api/v1/project-features", h.List)
	mux.HandleFunc("POST /api/v1/project-features", h.Create)
	mux.HandleFunc("GET /api/v1/project-features/{id}", h.Get)
	mux.HandleFunc("PATCH /api/v1/project-features/{id}", h.Update)
	mux.HandleFunc("DELETE /api/v1/project-features/{id}", h.Delete)

	mux.HandleFunc("GET /api/v1/projects/{projectId}/features",
		api.ScopedList("project_features", "projectId", e.ProjectFeatures.ListByProject))
}

func registerSpecificationRoutes(mux *http.ServeMux, e *entity.API) {
	h := api.NewResourceHandler(&e.ProjectSpecifications.Resource)

	mux.HandleFunc("GET /api/v1/project-specifications", h.List)
	mux.HandleFunc("POST /api/v1/project-specifications", h.Create)
	mux.HandleFunc("GET /api/v1/project-specifications/{id}", h.Get)
	mux.HandleFunc("PATCH /api/v1/project-specifications/{id}", h.Update)
	mux.HandleFunc("DELETE /api/v1/project-specifications/{id}", h.Delete)

	mux.HandleFunc("GET /api/v1/projects/{projectId}/specifications",
		api.ScopedList("project_specifications", "projectId", e.ProjectSpecifications.ListByProject))
}

func registerAmenityRoutes(mux *http.ServeMux, e *entity.API) {
	h := api.NewResourceHandler(&e.ProjectAmenities.Resource)

	mux.HandleFunc("GET /api/v1/project-amenities", h.List)
	mux.HandleFunc("POST /api/v1/project-amenities", h.Create)
	mux.HandleFunc("GET /api/v1/project-amenities/{id}", h.Get)
	mux.HandleFunc("DELETE /api/v1/project-amenities/{id}", h.Delete)

	mux.HandleFunc("GET /api/v1/projects/{projectId}/amenities",
		api.ScopedList("project_amenities", "projectId", e.ProjectAmenities.ListByProject))

	opts := api.NewResourceHandler(&e.AmenityOptions.Resource)

	mux.HandleFunc("GET /api/v1/amenity-options", opts.List)
	mux.HandleFunc("POST /api/v1/amenity-options", opts.Create)
	mux.HandleFunc("GET /api/v1/amenity-options/{id}", opts.Get)
	mux.HandleFunc("PATCH /api/v1/amenity-options/{id}", opts.Update)
	mux.HandleFunc("DELETE /api/v1/amenity-options/{id}", opts.Delete)
}
