// Package pairgraph declares sentinel errors shared by the
// compatibility predicate and the graph.
package pairgraph

import "errors"

// Sentinel errors for pairgraph operations.
var (
	// ErrNonPositive indicates a non-positive value was given where a
	// prime is required.
	ErrNonPositive = errors.New("pairgraph: prime value must be positive")

	// ErrDuplicateVertex indicates an attempt to insert an already
	// present value; the candidate set is strictly increasing and never
	// revisits a prime.
	ErrDuplicateVertex = errors.New("pairgraph: vertex already present")

	// ErrConcatOverflow indicates a digit concatenation does not fit in
	// an int64; the search stays within native integer range.
	ErrConcatOverflow = errors.New("pairgraph: concatenation exceeds int64 range")
)
