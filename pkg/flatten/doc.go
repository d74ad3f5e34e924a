// Package flatten turns a list of nested JSON records into flat rows, in the
// spirit of pandas.json_normalize.
//
// Each record becomes one row. Object keys and array indices along the way to
// a leaf are joined with a separator ("_" by default):
//
//	[{"id": 1, "name": {"first": "Coleen"}, "tags": ["a", "b"]}]
//
// flattens to a single row
//
//	{"id": 1, "name_first": "Coleen", "tags_0": "a", "tags_1": "b"}
//
// A base path selects the list inside a larger document, e.g.
// Flatten(doc, "releases") flattens doc["releases"].
package flatten
