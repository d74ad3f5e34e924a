package flatten

import (
	"github.com/wehubfusion/jsj/pkg/jsonmap"
)

// Result holds one flat row per input record and the sorted union of the
// composite keys that appear in any row.
type Result struct {
	Rows []map[string]any
	Keys []string
}

// Len returns the number of rows.
func (r *Result) Len() int {
	return len(r.Rows)
}

// KeySet returns the distinct composite keys as a set.
func (r *Result) KeySet() map[string]struct{} {
	set := make(map[string]struct{}, len(r.Keys))
	for _, k := range r.Keys {
		set[k] = struct{}{}
	}
	return set
}

// Column returns the value of key in every row, nil where a row lacks it.
func (r *Result) Column(key string) []any {
	col := make([]any, len(r.Rows))
	for i, row := range r.Rows {
		col[i] = row[key]
	}
	return col
}

// Records returns the rows as jsonmap.Map values.
func (r *Result) Records() []jsonmap.Map {
	out := make([]jsonmap.Map, len(r.Rows))
	for i, row := range r.Rows {
		out[i] = jsonmap.New(row)
	}
	return out
}

// AsList returns the rows as a list of records, ready to be flattened again.
func (r *Result) AsList() []any {
	out := make([]any, len(r.Rows))
	for i, row := range r.Rows {
		out[i] = row
	}
	return out
}
