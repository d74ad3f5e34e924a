package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type wrapped struct{ raw any }

func (w wrapped) Unwrap() any { return w.raw }

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want Kind
	}{
		{name: "object", in: map[string]any{"a": 1.0}, want: Mapping},
		{name: "array", in: []any{1.0}, want: Sequence},
		{name: "string", in: "x", want: Scalar},
		{name: "number", in: 1.5, want: Scalar},
		{name: "bool", in: true, want: Scalar},
		{name: "null", in: nil, want: Scalar},
		{name: "wrapped object", in: wrapped{raw: map[string]any{}}, want: Mapping},
		{name: "double wrapped array", in: wrapped{raw: wrapped{raw: []any{}}}, want: Sequence},
		{name: "typed map is a scalar", in: map[string]string{}, want: Scalar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.in))
		})
	}
}

func TestAsMappingAndSequence(t *testing.T) {
	m, ok := AsMapping(wrapped{raw: map[string]any{"k": "v"}})
	assert.True(t, ok)
	assert.Equal(t, "v", m["k"])

	_, ok = AsMapping([]any{})
	assert.False(t, ok)

	s, ok := AsSequence(wrapped{raw: []any{1.0, 2.0}})
	assert.True(t, ok)
	assert.Len(t, s, 2)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "object", Mapping.String())
	assert.Equal(t, "array", Sequence.String())
	assert.Equal(t, "scalar", Scalar.String())
}
