package jsonmap

import (
	"encoding/json"

	jsjerrors "github.com/wehubfusion/jsj/pkg/errors"
)

// List is a JSON array whose elements are wrapped on access.
type List struct {
	raw []any
}

// NewList wraps raw without copying it.
func NewList(raw []any) List {
	return List{raw: raw}
}

// Len returns the number of elements.
func (l List) Len() int {
	return len(l.raw)
}

// At returns element i, wrapped.
func (l List) At(i int) (any, error) {
	if i < 0 || i >= len(l.raw) {
		return nil, jsjerrors.IndexOutOfRange(i, len(l.raw))
	}
	return Wrap(l.raw[i]), nil
}

// Each calls fn for every element in order, wrapped. It stops at the first
// error fn returns and hands that error back unchanged.
func (l List) Each(fn func(i int, v any) error) error {
	for i, v := range l.raw {
		if err := fn(i, Wrap(v)); err != nil {
			return err
		}
	}
	return nil
}

// Maps returns every element that is a JSON object.
func (l List) Maps() []Map {
	out := make([]Map, 0, len(l.raw))
	for _, v := range l.raw {
		if m, ok := Wrap(v).(Map); ok {
			out = append(out, m)
		}
	}
	return out
}

// Raw returns the underlying slice.
func (l List) Raw() []any {
	return l.raw
}

// Unwrap implements value.Unwrapper.
func (l List) Unwrap() any {
	return l.raw
}

// MarshalJSON encodes the underlying slice. A nil list encodes as [].
func (l List) MarshalJSON() ([]byte, error) {
	if l.raw == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l.raw)
}

// String renders l as compact JSON.
func (l List) String() string {
	b, err := l.MarshalJSON()
	if err != nil {
		return "[]"
	}
	return string(b)
}
