package entity

import (
	"context"

	"github.com/propdesk/propdesk/internal/domain"
	"github.com/propdesk/propdesk/internal/store"
)

// API aggregates one typed resource per domain entity.
type API struct {
	Companies             *Companies
	Properties            *Properties
	Units                 *Units
	Tenants               *Tenants
	Leases                *Leases
	Maintenance           *MaintenanceRequests
	Payments              *Payments
	Projects              *Projects
	ProjectFeatures       *ProjectFeatures
	ProjectSpecifications *ProjectSpecifications
	ProjectAmenities      *ProjectAmenities
	AmenityOptions        *AmenityOptions
}

// New binds every entity resource to the given record store.
func New(records store.RecordStore) *API {
	return &API{
		Companies:             &Companies{newResource[domain.Company](records, "companies")},
		Properties:            &Properties{newResource[domain.Property](records, "properties")},
		Units:                 &Units{newResource[domain.Unit](records, "units")},
		Tenants:               &Tenants{newResource[domain.Tenant](records, "tenants")},
		Leases:                &Leases{newResource[domain.Lease](records, "leases")},
		Maintenance:           &MaintenanceRequests{newResource[domain.MaintenanceRequest](records, "maintenance_requests")},
		Payments:              &Payments{newResource[domain.Payment](records, "payments")},
		Projects:              &Projects{newResource[domain.Project](records, "projects")},
		ProjectFeatures:       &ProjectFeatures{newResource[domain.ProjectFeature](records, "project_features")},
		ProjectSpecifications: &ProjectSpecifications{newResource[domain.ProjectSpecification](records, "project_specifications")},
		ProjectAmenities:      &ProjectAmenities{newResource[domain.ProjectAmenity](records, "project_amenities")},
		AmenityOptions:        &AmenityOptions{newResource[domain.ProjectAmenityOption](records, "project_amenity_options")},
	}
}

// Companies manages the companies collection.
type Companies struct {
	Resource[domain.Company]
}

// Properties manages the properties collection.
type Properties struct {
	Resource[domain.Property]
}

// ListByCompany returns properties managed for the given company.
func (r *Properties) ListByCompany(ctx context.Context, companyID string, opts *domain.QueryOptions) (*Page[domain.Property], error) {
	return r.listBy(ctx, "company_id", companyID, opts)
}

// Units manages the units collection.
type Units struct {
	Resource[domain.Unit]
}

// ListByProperty returns the units of the given property.
func (r *Units) ListByProperty(ctx context.Context, propertyID string, opts *domain.QueryOptions) (*Page[domain.Unit], error) {
	return r.listBy(ctx, "property_id", propertyID, opts)
}

// Tenants manages the tenants collection.
type Tenants struct {
	Resource[domain.Tenant]
}

// Leases manages the leases collection.
type Leases struct {
	Resource[domain.Lease]
}

// ListByProperty returns leases against the given property.
func (r *Leases) ListByProperty(ctx context.Context, propertyID string, opts *domain.QueryOptions) (*Page[domain.Lease], error) {
	return r.listBy(ctx, "property_id", propertyID, opts)
}

// ListByTenant returns the given tenant's leases.
func (r *Leases) ListByTenant(ctx context.Context, tenantID string, opts *domain.QueryOptions) (*Page[domain.Lease], error) {
	return r.listBy(ctx, "tenant_id", tenantID, opts)
}

// MaintenanceRequests manages the maintenance_requests collection.
type MaintenanceRequests struct {
	Resource[domain.MaintenanceRequest]
}

// ListByProperty returns maintenance requests against the given property.
func (r *MaintenanceRequests) ListByProperty(ctx context.Context, propertyID string, opts *domain.QueryOptions) (*Page[domain.MaintenanceRequest], error) {
	return r.listBy(ctx, "property_id", propertyID, opts)
}

// Payments manages the payments collection.
type Payments struct {
	Resource[domain.Payment]
}

// ListByLease returns payments recorded against the given lease.
func (r *Payments) ListByLease(ctx context.Context, leaseID string, opts *domain.QueryOptions) (*Page[domain.Payment], error) {
	return r.listBy(ctx, "lease_id", leaseID, opts)
}

// ListByTenant returns the given tenant's payments.
func (r *Payments) ListByTenant(ctx context.Context, tenantID string, opts *domain.QueryOptions) (*Page[domain.Payment], error) {
	return r.listBy(ctx, "tenant_id", tenantID, opts)
}

// Projects manages the projects collection.
type Projects struct {
	Resource[domain.Project]
}

// ListByProperty returns projects attached to the given property.
func (r *Projects) ListByProperty(ctx context.Context, propertyID string, opts *domain.QueryOptions) (*Page[domain.Project], error) {
	return r.listBy(ctx, "property_id", propertyID, opts)
}

// ProjectFeatures manages the project_features collection.
type ProjectFeatures struct {
	Resource[domain.ProjectFeature]
}

// ListByProject returns the features of the given project.
func (r *ProjectFeatures) ListByProject(ctx context.Context, projectID string, opts *domain.QueryOptions) (*Page[domain.ProjectFeature], error) {
	return r.listBy(ctx, "project_id", projectID, opts)
}

// ProjectSpecifications manages the project_specifications collection.
type ProjectSpecifications struct {
	Resource[domain.ProjectSpecification]
}

// ListByProject returns the specifications of the given project.
func (r *ProjectSpecifications) ListByProject(ctx context.Context, projectID string, opts *domain.QueryOptions) (*Page[domain.ProjectSpecification], error) {
	return r.listBy(ctx, "project_id", projectID, opts)
}

// ProjectAmenities manages the project_amenities collection.
type ProjectAmenities struct {
	Resource[domain.ProjectAmenity]
}

// ListByProject returns the amenity links of the given project.
func (r *ProjectAmenities) ListByProject(ctx context.Context, projectID string, opts *domain.QueryOptions) (*Page[domain.ProjectAmenity], error) {
	return r.listBy(ctx, "project_id", projectID, opts)
}

// AmenityOptions manages the project_amenity_options catalog.
type AmenityOptions struct {
	Resource[domain.ProjectAmenityOption]
}
