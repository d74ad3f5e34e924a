// Package promise provides Data, a single-value container with then-style
// chaining:
//
//	n := promise.Of(5).Then(func(v int) int { return v + 1 }).Get() // 6
//
// Then on the method set keeps the type. The package-level Then and ThenTry
// change it, and ThenTry hands callback errors back to the caller untouched.
// Nothing is deferred or run concurrently; every step runs when it is called.
package promise
