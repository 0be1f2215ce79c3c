// Package cell provides the reactive value primitive that widgets bind to.
//
// A Signal holds a current value, notifies observers synchronously when the
// value changes, and short-circuits writes of an equal value. Propagation is
// depth-first: a Set returns only after every observer has run to completion.
package cell
