package jsonmap

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jsjerrors "github.com/wehubfusion/jsj/pkg/errors"
)

func weatherPoint() map[string]any {
	return map[string]any{
		"id": "https://api.weather.gov/points/39.7632,-101.6483",
		"properties": map[string]any{
			"timeZone": "America/Chicago",
			"relativeLocation": map[string]any{
				"properties": map[string]any{"city": "Kanorado", "state": "KS"},
			},
			"radarStation": "KGLD",
		},
		"features": []any{
			map[string]any{"name": "first"},
			"plain",
		},
		"count": 2.0,
		"active": true,
	}
}

func TestGet_WrapsNestedObjects(t *testing.T) {
	m := New(weatherPoint())

	props, err := m.Get("properties")
	require.NoError(t, err)
	nested, ok := props.(Map)
	require.True(t, ok, "nested object should be a Map, got %T", props)

	tz, err := nested.Get("timeZone")
	require.NoError(t, err)
	assert.Equal(t, "America/Chicago", tz)
}

func TestGet_ScalarUnchanged(t *testing.T) {
	m := New(weatherPoint())

	v, err := m.Get("count")
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)

	v, err = m.Get("active")
	require.NoError(t, err)
	assert.Equal(t, true, v)
}

func TestGet_MissingKey(t *testing.T) {
	m := New(weatherPoint())

	_, err := m.Get("properies")
	require.Error(t, err)
	assert.True(t, jsjerrors.IsKeyNotFound(err))
	assert.Contains(t, err.Error(), `"properies"`)

	assert.Panics(t, func() { m.MustGet("missing") })
}

func TestGet_ListElementsWrapped(t *testing.T) {
	m := New(weatherPoint())

	l, err := m.GetList("features")
	require.NoError(t, err)
	assert.Equal(t, 2, l.Len())

	first, err := l.At(0)
	require.NoError(t, err)
	fm, ok := first.(Map)
	require.True(t, ok)
	name, err := fm.GetString("name")
	require.NoError(t, err)
	assert.Equal(t, "first", name)

	second, err := l.At(1)
	require.NoError(t, err)
	assert.Equal(t, "plain", second)

	_, err = l.At(2)
	assert.ErrorIs(t, err, jsjerrors.ErrIndexOutOfRange)
	_, err = l.At(-1)
	assert.ErrorIs(t, err, jsjerrors.ErrIndexOutOfRange)
}

func TestEach_WrapsAndStopsOnError(t *testing.T) {
	l := NewList([]any{
		map[string]any{"a": 1.0},
		[]any{1.0},
		"x",
	})

	var kinds []string
	err := l.Each(func(i int, v any) error {
		switch v.(type) {
		case Map:
			kinds = append(kinds, "map")
		case List:
			kinds = append(kinds, "list")
		default:
			kinds = append(kinds, "scalar")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"map", "list", "scalar"}, kinds)

	stop := assert.AnError
	calls := 0
	err = l.Each(func(i int, v any) error {
		calls++
		return stop
	})
	assert.Same(t, stop, err)
	assert.Equal(t, 1, calls)
}

func TestSetAndDelete_PassThrough(t *testing.T) {
	raw := map[string]any{"a": 1.0}
	m := New(raw)

	m.Set("b", "two")
	assert.Equal(t, "two", raw["b"])

	m.Set("c", New(map[string]any{"x": 1.0}))
	_, isRawMap := raw["c"].(map[string]any)
	assert.True(t, isRawMap, "wrappers are stored unwrapped")

	require.NoError(t, m.Delete("a"))
	_, ok := raw["a"]
	assert.False(t, ok)

	err := m.Delete("a")
	assert.True(t, jsjerrors.IsKeyNotFound(err))
}

func TestNestedMutationVisibleFromRoot(t *testing.T) {
	raw := weatherPoint()
	m := New(raw)

	props, err := m.GetMap("properties")
	require.NoError(t, err)
	props.Set("timeZone", "UTC")

	tz, err := m.Path("properties", "timeZone")
	require.NoError(t, err)
	assert.Equal(t, "UTC", tz)
}

func TestPath(t *testing.T) {
	m := New(weatherPoint())

	city, err := m.Path("properties", "relativeLocation", "properties", "city")
	require.NoError(t, err)
	assert.Equal(t, "Kanorado", city)

	root, err := m.Path()
	require.NoError(t, err)
	assert.Equal(t, m, root)

	_, err = m.Path("properties", "timeZone", "deeper")
	assert.True(t, jsjerrors.IsKeyNotFound(err))
}

func TestTypedGetters(t *testing.T) {
	m := New(weatherPoint())

	n, err := m.GetFloat("count")
	require.NoError(t, err)
	assert.Equal(t, 2.0, n)

	b, err := m.GetBool("active")
	require.NoError(t, err)
	assert.True(t, b)

	_, err = m.GetString("count")
	assert.True(t, jsjerrors.IsTypeMismatch(err))
	_, err = m.GetMap("features")
	assert.True(t, jsjerrors.IsTypeMismatch(err))
	_, err = m.GetList("properties")
	assert.True(t, jsjerrors.IsTypeMismatch(err))
	_, err = m.GetBool("missing")
	assert.True(t, jsjerrors.IsKeyNotFound(err))
}

func TestKeysAndLen(t *testing.T) {
	m := New(map[string]any{"b": 1.0, "a": 2.0})
	assert.Equal(t, []string{"a", "b"}, m.Keys())
	assert.Equal(t, 2, m.Len())
	assert.True(t, m.Has("a"))
	assert.False(t, m.Has("z"))

	empty := New(nil)
	empty.Set("k", "v")
	assert.Equal(t, 1, empty.Len())
}

func TestJSONRoundTrip(t *testing.T) {
	m := New(map[string]any{"name": map[string]any{"first": "Coleen"}})
	assert.Equal(t, `{"name":{"first":"Coleen"}}`, m.String())

	var decoded Map
	require.NoError(t, json.Unmarshal([]byte(m.String()), &decoded))
	first, err := decoded.Path("name", "first")
	require.NoError(t, err)
	assert.Equal(t, "Coleen", first)

	assert.Equal(t, "[]", List{}.String())
}

func TestDecode(t *testing.T) {
	v, err := Decode([]byte(`{"a":{"b":[{"c":1}]}}`))
	require.NoError(t, err)
	m, ok := v.(Map)
	require.True(t, ok)

	l, err := m.Path("a", "b")
	require.NoError(t, err)
	el, err := l.(List).At(0)
	require.NoError(t, err)
	assert.IsType(t, Map{}, el)

	v, err = Decode([]byte(`[1,2]`))
	require.NoError(t, err)
	assert.IsType(t, List{}, v)

	_, err = Decode([]byte(`{bad`))
	var syntaxErr *json.SyntaxError
	assert.ErrorAs(t, err, &syntaxErr)

	_, err = DecodeMap([]byte(`[1]`))
	assert.Error(t, err)
}

func TestQuery(t *testing.T) {
	m := New(weatherPoint())

	tz, ok := m.Query("/properties/timeZone")
	require.True(t, ok)
	assert.Equal(t, "America/Chicago", tz)

	props, ok := m.Query("properties.relativeLocation")
	require.True(t, ok)
	assert.IsType(t, Map{}, props)

	names, ok := NewList([]any{
		map[string]any{"name": "a"},
		map[string]any{"name": "b"},
	}).Query("*.name")
	require.True(t, ok)
	assert.Equal(t, []any{"a", "b"}, names.(List).Raw())

	_, ok = m.Query("properties.nope")
	assert.False(t, ok)
}

func TestNormalizePath(t *testing.T) {
	assert.Equal(t, "data.user.name", NormalizePath("/data/user/name"))
	assert.Equal(t, "data.user.name", NormalizePath("data.user.name"))
	assert.Equal(t, "items.#.id", NormalizePath("/items/*/id"))
}

func TestGetFloat_AcceptsGoNumbers(t *testing.T) {
	m := New(map[string]any{"i64": int64(7), "i": 3, "f32": float32(1.5)})

	for key, want := range map[string]float64{"i64": 7, "i": 3, "f32": 1.5} {
		got, err := m.GetFloat(key)
		require.NoError(t, err, key)
		assert.Equal(t, want, got, key)
	}
}

func TestWrap_NilNestedMapIsWritable(t *testing.T) {
	var nested map[string]any
	m := New(map[string]any{"child": nested})

	child, err := m.GetMap("child")
	require.NoError(t, err)
	assert.NotPanics(t, func() { child.Set("k", "v") })
	assert.Equal(t, 1, child.Len())
}

func TestDecodeMap_RejectsNull(t *testing.T) {
	_, err := DecodeMap([]byte(`null`))
	require.Error(t, err)
	var typeErr *json.UnmarshalTypeError
	assert.ErrorAs(t, err, &typeErr)

	m, err := DecodeMap([]byte(`{}`))
	require.NoError(t, err)
	assert.Equal(t, 0, m.Len())
}
