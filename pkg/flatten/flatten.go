package flatten

import (
	"fmt"
	"sort"
	"strconv"

	jsjerrors "github.com/wehubfusion/jsj/pkg/errors"
	"github.com/wehubfusion/jsj/pkg/value"
)

// Flattener flattens record lists with fixed options. It holds no state
// between calls.
type Flattener struct {
	opts Options
}

// New creates a Flattener.
func New(opts ...Option) *Flattener {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	o.applyDefaults()
	return &Flattener{opts: o}
}

// Flatten flattens root with the default options. See (*Flattener).Flatten.
func Flatten(root any, base ...string) (*Result, error) {
	return New().Flatten(root, base...)
}

// Flatten walks base from root, then flattens every record of the list found
// there into one row.
//
// root may be raw decoded JSON or a jsonmap wrapper. Neither root nor base is
// modified.
func (f *Flattener) Flatten(root any, base ...string) (*Result, error) {
	records, err := resolveBase(root, base)
	if err != nil {
		return nil, err
	}

	result := &Result{Rows: make([]map[string]any, 0, len(records))}
	seen := make(map[string]struct{})

	for i, record := range records {
		if kind := value.KindOf(record); kind == value.Scalar {
			return nil, jsjerrors.InvalidInput(fmt.Sprintf("record %d is a %s, want object or array", i, kind))
		}

		row := make(map[string]any)
		if err := f.flattenInto(row, record, "", 0); err != nil {
			return nil, err
		}
		for k := range row {
			if _, ok := seen[k]; !ok {
				seen[k] = struct{}{}
				result.Keys = append(result.Keys, k)
			}
		}
		result.Rows = append(result.Rows, row)
	}

	sort.Strings(result.Keys)
	return result, nil
}

// resolveBase follows base one object key at a time and returns the list it
// ends on.
func resolveBase(root any, base []string) ([]any, error) {
	current := root
	for i, key := range base {
		m, ok := value.AsMapping(current)
		if !ok {
			return nil, jsjerrors.InvalidBasePath(fmt.Sprintf("segment %d %q: parent is a %s, not an object", i, key, value.KindOf(current)))
		}
		next, ok := m[key]
		if !ok {
			return nil, jsjerrors.InvalidBasePath(fmt.Sprintf("segment %d %q: key not found", i, key))
		}
		current = next
	}

	records, ok := value.AsSequence(current)
	if ok {
		return records, nil
	}
	if len(base) > 0 {
		return nil, jsjerrors.InvalidBasePath(fmt.Sprintf("base path %v resolves to a %s, not an array", base, value.KindOf(current)))
	}
	return nil, jsjerrors.InvalidInput(fmt.Sprintf("root is a %s, not an array of records", value.KindOf(current)))
}

// flattenInto writes every leaf under v into out. Object keys are visited in
// sorted order so that colliding composite keys resolve the same way on every
// run: the later write wins.
func (f *Flattener) flattenInto(out map[string]any, v any, prefix string, depth int) error {
	if depth > f.opts.MaxDepth {
		return jsjerrors.MaxDepthExceeded(f.opts.MaxDepth)
	}

	switch value.KindOf(v) {
	case value.Mapping:
		m, _ := value.AsMapping(v)
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if err := f.flattenInto(out, m[k], f.join(prefix, k), depth+1); err != nil {
				return err
			}
		}
	case value.Sequence:
		s, _ := value.AsSequence(v)
		for i, item := range s {
			if err := f.flattenInto(out, item, f.join(prefix, strconv.Itoa(i)), depth+1); err != nil {
				return err
			}
		}
	default:
		out[prefix] = value.Unwrap(v)
	}
	return nil
}

func (f *Flattener) join(prefix, segment string) string {
	if prefix == "" {
		return segment
	}
	return prefix + f.opts.Separator + segment
}
