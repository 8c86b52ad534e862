package entity_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/propdesk/propdesk/internal/domain"
	"github.com/propdesk/propdesk/internal/entity"
	"github.com/propdesk/propdesk/internal/store"
	"github.com/propdesk/propdesk/internal/testhelpers"
)

func setupAPI(t *testing.T) *entity.API {
	t.Helper()
	db := testhelpers.NewTestDB(t)
	return entity.New(store.NewSQLiteRecordStore(db))
}

func createProperty(t *testing.T, e *entity.API, name string) *domain.Property {
	t.Helper()
	prop, err := e.Properties.Create(context.Background(), domain.Record{
		"name":          name,
		"address":       "42 Elm St",
		"city":          "Portland",
		"state":         "OR",
		"zip":           "97201",
		"country":       "US",
		"property_type": "residential",
		"status":        "active",
	})
	require.NoError(t, err)
	return prop
}

func TestResourceReturnsTypedRows(t *testing.T) {
	e := setupAPI(t)
	ctx := context.Background()

	prop := createProperty(t, e, "Elm Court")
	require.NotEmpty(t, prop.ID)
	require.Equal(t, "Elm Court", prop.Name)
	require.Equal(t, "residential", prop.PropertyType)
	require.NotEmpty(t, prop.CreatedAt)

	got, err := e.Properties.Get(ctx, prop.ID)
	require.NoError(t, err)
	require.Equal(t, prop, got)

	updated, err := e.Properties.Update(ctx, prop.ID, domain.Record{"market_value": 750000})
	require.NoError(t, err)
	require.Equal(t, 750000.0, updated.MarketValue)
	require.Equal(t, prop.CreatedAt, updated.CreatedAt)
}

func TestResourceListPagesTypedRows(t *testing.T) {
	e := setupAPI(t)
	ctx := context.Background()

	for _, name := range []string{"One", "Two", "Three"} {
		createProperty(t, e, name)
	}

	page, err := e.Properties.List(ctx, &domain.QueryOptions{PageSize: 2})
	require.NoError(t, err)
	require.Len(t, page.Results, 2)
	require.Equal(t, 3, page.Total)
	require.Equal(t, 1, page.Page)
	require.Equal(t, 2, page.PageSize)
	require.NotEmpty(t, page.Results[0].ID)
}

func TestResourcePropagatesNotFound(t *testing.T) {
	e := setupAPI(t)

	_, err := e.Properties.Get(context.Background(), "missing")
	require.True(t, errors.Is(err, store.ErrNotFound))

	err = e.Properties.Delete(context.Background(), "missing")
	require.NoError(t, err)
}

func TestScopedListOverridesCallerFilter(t *testing.T) {
	e := setupAPI(t)
	ctx := context.Background()

	parent := createProperty(t, e, "Parent")
	other := createProperty(t, e, "Other")

	addUnit := func(propertyID, number string) {
		_, err := e.Units.Create(ctx, domain.Record{
			"property_id": propertyID,
			"unit_number": number,
			"status":      "vacant",
		})
		require.NoError(t, err)
	}
	addUnit(parent.ID, "P1")
	addUnit(parent.ID, "P2")
	addUnit(other.ID, "O1")

	page, err := e.Units.ListByProperty(ctx, parent.ID, nil)
	require.NoError(t, err)
	require.Equal(t, 2, page.Total)
	for _, unit := range page.Results {
		require.Equal(t, parent.ID, unit.PropertyID)
	}

	// A caller filter on the scoping field loses to the path scope.
	opts := &domain.QueryOptions{Filters: domain.Record{"property_id": other.ID}}
	page, err = e.Units.ListByProperty(ctx, parent.ID, opts)
	require.NoError(t, err)
	require.Equal(t, 2, page.Total)

	// The caller's options are not mutated by the injected scope.
	require.Equal(t, other.ID, opts.Filters["property_id"])
}

func TestScopedListKeepsOtherFilters(t *testing.T) {
	e := setupAPI(t)
	ctx := context.Background()

	parent := createProperty(t, e, "Parent")
	for _, status := range []string{"vacant", "occupied"} {
		_, err := e.Units.Create(ctx, domain.Record{
			"property_id": parent.ID,
			"unit_number": status,
			"status":      status,
		})
		require.NoError(t, err)
	}

	page, err := e.Units.ListByProperty(ctx, parent.ID, &domain.QueryOptions{
		Filters: domain.Record{"status": "vacant"},
	})
	require.NoError(t, err)
	require.Equal(t, 1, page.Total)
	require.Equal(t, "vacant", page.Results[0].Status)
}
