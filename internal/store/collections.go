package store

import "fmt"

// ColumnKind describes how a column's values are typed, so generic scans
// hand back Go values matching the domain structs and callers can coerce
// filter input to the column's type.
type ColumnKind int

const (
	KindText ColumnKind = iota
	KindInt
	KindReal
	KindBool
)

// collectionSpec ties a collection name to its table and column set. Filter
// fields, sort fields, and write payload keys are validated against the
// column set before any SQL is built from them.
type collectionSpec struct {
	table   string
	columns map[string]ColumnKind
}

func cols(extra map[string]ColumnKind) map[string]ColumnKind {
	m := map[string]ColumnKind{
		"id":         KindText,
		"created_at": KindText,
		"updated_at": KindText,
	}
	for k, v := range extra {
		m[k] = v
	}
	return m
}

// collections registers every entity table the repository may touch. A
// collection name doubles as its table name.
var collections = map[string]collectionSpec{
	"companies": {table: "companies", columns: cols(map[string]ColumnKind{
		"name": KindText, "contact_email": KindText, "phone": KindText,
		"address": KindText, "city": KindText, "state": KindText,
		"zip": KindText, "country": KindText, "status": KindText,
	})},
	"properties": {table: "properties", columns: cols(map[string]ColumnKind{
		"company_id": KindText, "owner_id": KindText, "name": KindText,
		"address": KindText, "city": KindText, "state": KindText,
		"zip": KindText, "country": KindText, "property_type": KindText,
		"status": KindText, "purchase_date": KindText,
		"purchase_price": KindReal, "market_value": KindReal,
		"description": KindText,
	})},
	"units": {table: "units", columns: cols(map[string]ColumnKind{
		"property_id": KindText, "unit_number": KindText, "floor": KindInt,
		"size": KindReal, "bedrooms": KindInt, "bathrooms": KindReal,
		"rent_amount": KindReal, "status": KindText,
	})},
	"tenants": {table: "tenants", columns: cols(map[string]ColumnKind{
		"first_name": KindText, "last_name": KindText, "email": KindText,
		"phone": KindText, "date_of_birth": KindText,
		"identification_type": KindText, "identification_number": KindText,
		"emergency_contact_name": KindText, "emergency_contact_phone": KindText,
		"status": KindText,
	})},
	"leases": {table: "leases", columns: cols(map[string]ColumnKind{
		"property_id": KindText, "unit_id": KindText, "tenant_id": KindText,
		"start_date": KindText, "end_date": KindText, "rent_amount": KindReal,
		"security_deposit": KindReal, "payment_frequency": KindText,
		"payment_day": KindInt, "status": KindText,
	})},
	"maintenance_requests": {table: "maintenance_requests", columns: cols(map[string]ColumnKind{
		"property_id": KindText, "unit_id": KindText, "tenant_id": KindText,
		"title": KindText, "description": KindText, "priority": KindText,
		"status": KindText, "category": KindText, "assigned_to": KindText,
		"scheduled_date": KindText, "completed_date": KindText, "notes": KindText,
	})},
	"payments": {table: "payments", columns: cols(map[string]ColumnKind{
		"lease_id": KindText, "tenant_id": KindText, "amount": KindReal,
		"payment_date": KindText, "payment_method": KindText,
		"reference_number": KindText, "status": KindText, "notes": KindText,
	})},
	"projects": {table: "projects", columns: cols(map[string]ColumnKind{
		"name": KindText, "description": KindText, "property_id": KindText,
		"start_date": KindText, "end_date": KindText, "budget": KindReal,
		"actual_cost": KindReal, "status": KindText, "manager_id": KindText,
	})},
	"project_features": {table: "project_features", columns: cols(map[string]ColumnKind{
		"project_id": KindText, "name": KindText, "description": KindText,
	})},
	"project_specifications": {table: "project_specifications", columns: cols(map[string]ColumnKind{
		"project_id": KindText, "category": KindText, "name": KindText,
		"value": KindText,
	})},
	"project_amenities": {table: "project_amenities", columns: cols(map[string]ColumnKind{
		"project_id": KindText, "amenity_option_id": KindText,
	})},
	"project_amenity_options": {table: "project_amenity_options", columns: cols(map[string]ColumnKind{
		"name": KindText, "category": KindText, "is_active": KindBool,
	})},
}

// resolveCollection validates a collection name against the registry.
func resolveCollection(collection string) (collectionSpec, error) {
	spec, ok := collections[collection]
	if !ok {
		return collectionSpec{}, fmt.Errorf("collection %q not registered", collection)
	}
	return spec, nil
}

// CollectionNames returns every registered collection name. Used by the
// export endpoint to validate its collection parameter.
func CollectionNames() []string {
	names := make([]string, 0, len(collections))
	for name := range collections {
		names = append(names, name)
	}
	return names
}

// FilterableFields returns the column names of a collection, or nil if the
// collection is unknown. The HTTP layer uses this to decide which query
// parameters become filters.
func FilterableFields(collection string) []string {
	spec, ok := collections[collection]
	if !ok {
		return nil
	}
	fields := make([]string, 0, len(spec.columns))
	for name := range spec.columns {
		fields = append(fields, name)
	}
	return fields
}

// ColumnKinds returns a collection's column names with their kinds, or nil
// if the collection is unknown. The HTTP layer uses the kinds to coerce
// filter parameters before they reach the repository, so a filter on an
// integer column matches by equality rather than as substring text.
func ColumnKinds(collection string) map[string]ColumnKind {
	spec, ok := collections[collection]
	if !ok {
		return nil
	}
	kinds := make(map[string]ColumnKind, len(spec.columns))
	for name, kind := range spec.columns {
		kinds[name] = kind
	}
	return kinds
}
