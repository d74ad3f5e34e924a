package jsonmap

import (
	"encoding/json"
	"strings"

	"github.com/tidwall/gjson"
)

// NormalizePath converts slash-separated paths to gjson dot notation.
// Example: "/data/user/name" -> "data.user.name"
// Example: "data.user.name" -> "data.user.name"
// The * wildcard becomes gjson's # array iterator.
func NormalizePath(path string) string {
	if strings.HasPrefix(path, "/") {
		path = strings.TrimPrefix(path, "/")
		path = strings.ReplaceAll(path, "/", ".")
	}
	return strings.ReplaceAll(path, "*", "#")
}

// QueryBytes runs a gjson query over raw JSON and wraps the match.
func QueryBytes(data []byte, path string) (any, bool) {
	result := gjson.GetBytes(data, NormalizePath(path))
	if !result.Exists() {
		return nil, false
	}
	return Wrap(result.Value()), true
}

// Query evaluates a gjson path against m, e.g. "releases.#.tag_name" or
// "/properties/timeZone". The match is wrapped like Get.
func (m Map) Query(path string) (any, bool) {
	data, err := json.Marshal(m.raw)
	if err != nil {
		return nil, false
	}
	return QueryBytes(data, path)
}

// Query evaluates a gjson path against l, e.g. "#.name" or "0.id".
func (l List) Query(path string) (any, bool) {
	data, err := l.MarshalJSON()
	if err != nil {
		return nil, false
	}
	return QueryBytes(data, path)
}
