package promise

import "fmt"

// Data holds exactly one value. Each Then returns a new Data; the receiver is
// never modified.
type Data[T any] struct {
	value T
}

// Of wraps v.
func Of[T any](v T) Data[T] {
	return Data[T]{value: v}
}

// Get returns the wrapped value unchanged.
func (d Data[T]) Get() T {
	return d.value
}

// Then calls fn with the wrapped value and wraps its result.
func (d Data[T]) Then(fn func(T) T) Data[T] {
	return Data[T]{value: fn(d.value)}
}

// String formats the wrapped value with %v.
func (d Data[T]) String() string {
	return fmt.Sprint(d.value)
}

// Then calls fn with the value in d and wraps its result, which may be of a
// different type.
func Then[T, U any](d Data[T], fn func(T) U) Data[U] {
	return Data[U]{value: fn(d.value)}
}

// ThenTry is Then for callbacks that can fail. The callback's error is
// returned exactly as produced.
func ThenTry[T, U any](d Data[T], fn func(T) (U, error)) (Data[U], error) {
	v, err := fn(d.value)
	if err != nil {
		return Data[U]{}, err
	}
	return Data[U]{value: v}, nil
}

// Tee calls fn with the wrapped value for its side effects and returns d.
func (d Data[T]) Tee(fn func(T)) Data[T] {
	fn(d.value)
	return d
}
