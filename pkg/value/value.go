// Package value classifies decoded JSON into its three shapes: objects, arrays
// and scalars. Every recursive walk in jsj switches on Kind instead of probing
// concrete types ad hoc.
package value

// Kind is the shape of a decoded JSON value.
type Kind int

const (
	// Scalar is a string, number, bool or null.
	Scalar Kind = iota
	// Mapping is a JSON object.
	Mapping
	// Sequence is a JSON array.
	Sequence
)

// String returns the JSON name of the kind.
func (k Kind) String() string {
	switch k {
	case Mapping:
		return "object"
	case Sequence:
		return "array"
	default:
		return "scalar"
	}
}

// Unwrapper is implemented by types that wrap a raw decoded JSON value.
type Unwrapper interface {
	Unwrap() any
}

// Unwrap strips any wrapper types and returns the raw decoded value.
func Unwrap(v any) any {
	for {
		w, ok := v.(Unwrapper)
		if !ok {
			return v
		}
		v = w.Unwrap()
	}
}

// KindOf reports the shape of v. Wrapped values are classified by what they wrap.
func KindOf(v any) Kind {
	switch Unwrap(v).(type) {
	case map[string]any:
		return Mapping
	case []any:
		return Sequence
	default:
		return Scalar
	}
}

// AsMapping returns the raw object behind v.
func AsMapping(v any) (map[string]any, bool) {
	m, ok := Unwrap(v).(map[string]any)
	return m, ok
}

// AsSequence returns the raw array behind v.
func AsSequence(v any) ([]any, bool) {
	s, ok := Unwrap(v).([]any)
	return s, ok
}
