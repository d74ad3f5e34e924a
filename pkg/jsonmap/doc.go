// Package jsonmap gives decoded JSON objects attribute-style access.
//
// A Map wraps a map[string]any without copying it. Reading a key returns a Map
// when the stored value is an object, a List when it is an array, and the raw
// value otherwise, so dotted chains keep working at every depth:
//
//	tz, err := m.Path("properties", "timeZone")
//
// Lists apply the same rule to their elements. Writes and deletes go straight
// to the underlying map.
package jsonmap
