package jsonmap

import (
	"encoding/json"
	"reflect"
)

// Decode parses data as JSON and wraps the result. Syntax errors from
// encoding/json are returned as-is.
func Decode(data []byte) (any, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return Wrap(v), nil
}

// DecodeMap parses data as a JSON object. Anything else, including null,
// fails with a *json.UnmarshalTypeError.
func DecodeMap(data []byte) (Map, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return Map{}, err
	}
	if raw == nil {
		return Map{}, &json.UnmarshalTypeError{Value: "null", Type: reflect.TypeOf(raw)}
	}
	return New(raw), nil
}
