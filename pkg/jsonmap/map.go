package jsonmap

import (
	"encoding/json"
	"sort"

	jsjerrors "github.com/wehubfusion/jsj/pkg/errors"
	"github.com/wehubfusion/jsj/pkg/value"
)

// Map is a JSON object with attribute-style accessors.
type Map struct {
	raw map[string]any
}

// New wraps raw. A nil map is replaced by an empty one so that Set works.
func New(raw map[string]any) Map {
	if raw == nil {
		raw = make(map[string]any)
	}
	return Map{raw: raw}
}

// Wrap applies the attribute-access rule to v: objects become Map, arrays
// become List and everything else is returned unchanged. A nil object is
// wrapped as an empty, writable Map that is detached from its parent.
func Wrap(v any) any {
	switch value.KindOf(v) {
	case value.Mapping:
		m, _ := value.AsMapping(v)
		return New(m)
	case value.Sequence:
		s, _ := value.AsSequence(v)
		return List{raw: s}
	default:
		return v
	}
}

// Get returns the value stored under key, wrapped.
func (m Map) Get(key string) (any, error) {
	v, ok := m.raw[key]
	if !ok {
		return nil, jsjerrors.KeyNotFound(key)
	}
	return Wrap(v), nil
}

// MustGet is like Get but panics if key is absent.
func (m Map) MustGet(key string) any {
	v, err := m.Get(key)
	if err != nil {
		panic(err)
	}
	return v
}

// Set stores v under key in the underlying map.
func (m Map) Set(key string, v any) {
	m.raw[key] = value.Unwrap(v)
}

// Delete removes key from the underlying map.
func (m Map) Delete(key string) error {
	if _, ok := m.raw[key]; !ok {
		return jsjerrors.KeyNotFound(key)
	}
	delete(m.raw, key)
	return nil
}

// Has reports whether key is present.
func (m Map) Has(key string) bool {
	_, ok := m.raw[key]
	return ok
}

// Keys returns the object keys in sorted order.
func (m Map) Keys() []string {
	keys := make([]string, 0, len(m.raw))
	for k := range m.raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of keys.
func (m Map) Len() int {
	return len(m.raw)
}

// Raw returns the underlying map. Changes to it are visible through m.
func (m Map) Raw() map[string]any {
	return m.raw
}

// Unwrap implements value.Unwrapper.
func (m Map) Unwrap() any {
	return m.raw
}

// Path follows keys one object at a time. Stepping through anything that is
// not an object fails with ErrKeyNotFound for that key.
func (m Map) Path(keys ...string) (any, error) {
	var cur any = m
	for _, key := range keys {
		next, ok := cur.(Map)
		if !ok {
			return nil, jsjerrors.KeyNotFound(key)
		}
		v, err := next.Get(key)
		if err != nil {
			return nil, err
		}
		cur = v
	}
	return cur, nil
}

// GetString returns the value under key if it is a JSON string.
func (m Map) GetString(key string) (string, error) {
	v, err := m.Get(key)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", jsjerrors.TypeMismatch(key, "string", v)
	}
	return s, nil
}

// GetFloat returns the value under key if it is a JSON number.
func (m Map) GetFloat(key string) (float64, error) {
	v, err := m.Get(key)
	if err != nil {
		return 0, err
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case json.Number:
		return n.Float64()
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case float32:
		return float64(n), nil
	default:
		return 0, jsjerrors.TypeMismatch(key, "number", v)
	}
}

// GetBool returns the value under key if it is a JSON boolean.
func (m Map) GetBool(key string) (bool, error) {
	v, err := m.Get(key)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, jsjerrors.TypeMismatch(key, "bool", v)
	}
	return b, nil
}

// GetMap returns the nested object under key.
func (m Map) GetMap(key string) (Map, error) {
	v, err := m.Get(key)
	if err != nil {
		return Map{}, err
	}
	nested, ok := v.(Map)
	if !ok {
		return Map{}, jsjerrors.TypeMismatch(key, "object", v)
	}
	return nested, nil
}

// GetList returns the nested array under key.
func (m Map) GetList(key string) (List, error) {
	v, err := m.Get(key)
	if err != nil {
		return List{}, err
	}
	l, ok := v.(List)
	if !ok {
		return List{}, jsjerrors.TypeMismatch(key, "array", v)
	}
	return l, nil
}

// MarshalJSON encodes the underlying map.
func (m Map) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.raw)
}

// UnmarshalJSON decodes a JSON object into m, replacing its contents.
func (m *Map) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*m = New(raw)
	return nil
}

// String renders m as compact JSON.
func (m Map) String() string {
	b, err := json.Marshal(m.raw)
	if err != nil {
		return "{}"
	}
	return string(b)
}
