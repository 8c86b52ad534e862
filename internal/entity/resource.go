// Package entity binds the generic record store to one typed resource per
// domain entity. Every method forwards to exactly one store operation; the
// layer holds no state and performs no validation of its own.
package entity

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/propdesk/propdesk/internal/domain"
	"github.com/propdesk/propdesk/internal/store"
)

// Page is one page of typed rows plus the total count of rows matching the
// filters regardless of pagination.
type Page[T any] struct {
	Results  []T `json:"results"`
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

// Resource is a collection-bound, typed view over the generic record store.
type Resource[T any] struct {
	records    store.RecordStore
	collection string
}

func newResource[T any](records store.RecordStore, collection string) Resource[T] {
	return Resource[T]{records: records, collection: collection}
}

// Collection returns the collection name this resource is bound to.
func (r *Resource[T]) Collection() string { return r.collection }

// List returns a page of rows matching the query options.
func (r *Resource[T]) List(ctx context.Context, opts *domain.QueryOptions) (*Page[T], error) {
	page, err := r.records.List(ctx, r.collection, opts)
	if err != nil {
		return nil, err
	}
	return decodePage[T](r.collection, page)
}

// Get returns the row with the given id.
func (r *Resource[T]) Get(ctx context.Context, id string) (*T, error) {
	rec, err := r.records.Get(ctx, r.collection, id)
	if err != nil {
		return nil, err
	}
	return decode[T](r.collection, rec)
}

// Create inserts a new row from the supplied fields and returns it.
func (r *Resource[T]) Create(ctx context.Context, fields domain.Record) (*T, error) {
	rec, err := r.records.Create(ctx, r.collection, fields)
	if err != nil {
		return nil, err
	}
	return decode[T](r.collection, rec)
}

// Update merges the supplied fields into the row with the given id and
// returns the updated row.
func (r *Resource[T]) Update(ctx context.Context, id string, fields domain.Record) (*T, error) {
	rec, err := r.records.Update(ctx, r.collection, id, fields)
	if err != nil {
		return nil, err
	}
	return decode[T](r.collection, rec)
}

// Delete removes the row with the given id.
func (r *Resource[T]) Delete(ctx context.Context, id string) error {
	return r.records.Delete(ctx, r.collection, id)
}

// listBy runs List with a foreign-key filter injected into a copy of the
// caller's options. The injected parent id wins over a caller-supplied
// filter on the same field.
func (r *Resource[T]) listBy(ctx context.Context, field, value string, opts *domain.QueryOptions) (*Page[T], error) {
	var scoped domain.QueryOptions
	if opts != nil {
		scoped = *opts
	}
	if scoped.Filters == nil {
		scoped.Filters = domain.Record{}
	} else {
		scoped.Filters = scoped.Filters.Clone()
	}
	scoped.Filters[field] = value
	return r.List(ctx, &scoped)
}

func decodePage[T any](collection string, page *domain.RecordPage) (*Page[T], error) {
	out := &Page[T]{
		Results:  make([]T, 0, len(page.Rows)),
		Total:    page.Total,
		Page:     page.Page,
		PageSize: page.PageSize,
	}
	for _, rec := range page.Rows {
		v, err := decode[T](collection, rec)
		if err != nil {
			return nil, err
		}
		out.Results = append(out.Results, *v)
	}
	return out, nil
}

// decode maps a generic record onto the entity struct through its JSON
// field tags.
func decode[T any](collection string, rec domain.Record) (*T, error) {
	raw, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("encode %s record: %w", collection, err)
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("decode %s record: %w", collection, err)
	}
	return &v, nil
}
