package domain

// Record is an entity row in its generic, collection-independent form: a
// mapping of column name to value. Create and update payloads use the same
// shape, carrying only the fields the caller supplies.
type Record map[string]any

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Sort directions accepted by QueryOptions.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// QueryOptions describes a single list request: pagination, per-field
// filters, and sorting. The zero value means "first default-size page,
// most recently updated first".
type QueryOptions struct {
	Page      int    // 1-based, default 1
	PageSize  int    // default 10
	Filters   Record // field -> equality or substring match value
	SortBy    string // column name; empty means updated_at descending
	SortOrder string // SortAsc or SortDesc, default SortAsc
}

// RecordPage is one page of generic records plus the total count of rows
// matching the filters regardless of pagination.
type RecordPage struct {
	Rows     []Record `json:"results"`
	Total    int      `json:"total"`
	Page     int      `json:"page"`
	PageSize int      `json:"pageSize"`
}
