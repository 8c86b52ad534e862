package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/propdesk/propdesk/internal/domain"
	"github.com/propdesk/propdesk/internal/store"
)

// reservedParams are query parameters with list-option meaning; everything
// else is a candidate filter field.
var reservedParams = map[string]bool{
	"page":      true,
	"pageSize":  true,
	"sortBy":    true,
	"sortOrder": true,
}

// ParseOptions builds query options for a collection from URL parameters.
// page and pageSize fall back to their defaults when absent or malformed;
// any parameter naming a column of the collection becomes a filter. An
// unknown sortBy is rejected here so it fails as a 400 rather than deep in
// the repository.
func ParseOptions(r *http.Request, collection string) (*domain.QueryOptions, error) {
	opts := &domain.QueryOptions{}
	q := r.URL.Query()

	if v := q.Get("page"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			opts.Page = parsed
		}
	}
	if v := q.Get("pageSize"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			opts.PageSize = parsed
		}
	}

	kinds := store.ColumnKinds(collection)

	if v := q.Get("sortBy"); v != "" {
		if _, ok := kinds[v]; !ok {
			return nil, fmt.Errorf("unknown sort field %q", v)
		}
		opts.SortBy = v
	}
	if v := q.Get("sortOrder"); strings.EqualFold(v, domain.SortDesc) {
		opts.SortOrder = domain.SortDesc
	}

	for name, values := range q {
		kind, filterable := kinds[name]
		if reservedParams[name] || !filterable || len(values) == 0 || values[0] == "" {
			continue
		}
		value, err := coerceFilter(name, kind, values[0])
		if err != nil {
			return nil, err
		}
		if opts.Filters == nil {
			opts.Filters = domain.Record{}
		}
		opts.Filters[name] = value
	}

	return opts, nil
}

// coerceFilter converts a raw query-parameter value to the column's kind.
// Numeric and boolean columns filter by equality in the repository, so the
// string form must be converted here rather than passed through as text.
func coerceFilter(name string, kind store.ColumnKind, raw string) (any, error) {
	switch kind {
	case store.KindInt:
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("filter %q: %q is not an integer", name, raw)
		}
		return v, nil
	case store.KindReal:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("filter %q: %q is not a number", name, raw)
		}
		return v, nil
	case store.KindBool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("filter %q: %q is not a boolean", name, raw)
		}
		return v, nil
	default:
		return raw, nil
	}
}
