package database

// migrations is an ordered list of SQL migration groups. Each entry is a slice
// of SQL statements that are executed together in a single transaction. The
// version number is the 1-based index into this slice.
var migrations = [][]string{
	// Migration 1: companies, properties, units, tenants
	{
		`CREATE TABLE companies (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			contact_email TEXT,
			phone TEXT,
			address TEXT,
			city TEXT,
			state TEXT,
			zip TEXT,
			country TEXT,
			status TEXT NOT NULL DEFAULT 'active',
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,

		`CREATE TABLE properties (
			id TEXT PRIMARY KEY,
			company_id TEXT REFERENCES companies(id),
			owner_id TEXT,
			name TEXT NOT NULL,
			address TEXT NOT NULL,
			city TEXT NOT NULL,
			state TEXT NOT NULL,
			zip TEXT NOT NULL,
			country TEXT NOT NULL,
			property_type TEXT NOT NULL,
			status TEXT NOT NULL,
			purchase_date TEXT,
			purchase_price REAL,
			market_value REAL,
			description TEXT,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,

		`CREATE INDEX idx_properties_company ON properties(company_id)`,
		`CREATE INDEX idx_properties_updated ON properties(updated_at)`,

		`CREATE TABLE units (
			id TEXT PRIMARY KEY,
			property_id TEXT NOT NULL REFERENCES properties(id),
			unit_number TEXT NOT NULL,
			floor INTEGER,
			size REAL,
			bedrooms INTEGER,
			bathrooms REAL,
			rent_amount REAL,
			status TEXT NOT NULL,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,

		`CREATE INDEX idx_units_property ON units(property_id)`,

		`CREATE TABLE tenants (
			id TEXT PRIMARY KEY,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT,
			date_of_birth TEXT,
			identification_type TEXT,
			identification_number TEXT,
			emergency_contact_name TEXT,
			emergency_contact_phone TEXT,
			status TEXT NOT NULL,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
	},

	// Migration 2: leases, maintenance requests, payments
	{
		`CREATE TABLE leases (
			id TEXT PRIMARY KEY,
			property_id TEXT NOT NULL REFERENCES properties(id),
			unit_id TEXT REFERENCES units(id),
			tenant_id TEXT NOT NULL REFERENCES tenants(id),
			start_date TEXT NOT NULL,
			end_date TEXT NOT NULL,
			rent_amount REAL NOT NULL,
			security_deposit REAL,
			payment_frequency TEXT NOT NULL DEFAULT 'monthly',
			payment_day INTEGER NOT NULL DEFAULT 1,
			status TEXT NOT NULL,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,

		`CREATE INDEX idx_leases_property ON leases(property_id)`,
		`CREATE INDEX idx_leases_tenant ON leases(tenant_id)`,

		`CREATE TABLE maintenance_requests (
			id TEXT PRIMARY KEY,
			property_id TEXT NOT NULL REFERENCES properties(id),
			unit_id TEXT REFERENCES units(id),
			tenant_id TEXT REFERENCES tenants(id),
			title TEXT NOT NULL,
			description TEXT,
			priority TEXT NOT NULL DEFAULT 'medium',
			status TEXT NOT NULL DEFAULT 'open',
			category TEXT NOT NULL DEFAULT 'other',
			assigned_to TEXT,
			scheduled_date TEXT,
			completed_date TEXT,
			notes TEXT,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,

		`CREATE INDEX idx_maintenance_property ON maintenance_requests(property_id)`,

		`CREATE TABLE payments (
			id TEXT PRIMARY KEY,
			lease_id TEXT NOT NULL REFERENCES leases(id),
			tenant_id TEXT NOT NULL REFERENCES tenants(id),
			amount REAL NOT NULL,
			payment_date TEXT NOT NULL,
			payment_method TEXT NOT NULL,
			reference_number TEXT,
			status TEXT NOT NULL DEFAULT 'pending',
			notes TEXT,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,

		`CREATE INDEX idx_payments_lease ON payments(lease_id)`,
		`CREATE INDEX idx_payments_tenant ON payments(tenant_id)`,
	},

	// Migration 3: projects and project sub-resources
	{
		`CREATE TABLE projects (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT,
			property_id TEXT REFERENCES properties(id),
			start_date TEXT NOT NULL,
			end_date TEXT,
			budget REAL,
			actual_cost REAL,
			status TEXT NOT NULL DEFAULT 'planning',
			manager_id TEXT,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,

		`CREATE INDEX idx_projects_property ON projects(property_id)`,

		`CREATE TABLE project_features (
			id TEXT PRIMARY KEY,
			project_id TEXT NOT NULL REFERENCES projects(id),
			name TEXT NOT NULL,
			description TEXT,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,

		`CREATE TABLE project_specifications (
			id TEXT PRIMARY KEY,
			project_id TEXT NOT NULL REFERENCES projects(id),
			category TEXT,
			name TEXT NOT NULL,
			value TEXT NOT NULL,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,

		`CREATE TABLE project_amenity_options (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			category TEXT,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,

		`CREATE TABLE project_amenities (
			id TEXT PRIMARY KEY,
			project_id TEXT NOT NULL REFERENCES projects(id),
			amenity_option_id TEXT NOT NULL REFERENCES project_amenity_options(id),
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,

		`CREATE INDEX idx_project_features_project ON project_features(project_id)`,
		`CREATE INDEX idx_project_specs_project ON project_specifications(project_id)`,
		`CREATE INDEX idx_project_amenities_project ON project_amenities(project_id)`,
	},
}
