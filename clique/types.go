// Package clique provides tunable options and error definitions for the
// anchored clique search.
package clique

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for Search execution.
var (
	// ErrSetSize is returned when the requested set size is below 2.
	ErrSetSize = errors.New("clique: set size must be at least 2")

	// ErrNotFound is returned when the prime budget set via
	// WithMaxPrimes is exhausted before any qualifying clique appears.
	ErrNotFound = errors.New("clique: no qualifying set within prime budget")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("clique: invalid option supplied")
)

// Option configures Search behavior via functional arguments.
// An invalid Option (e.g. a negative budget) is recorded internally and
// surfaced as ErrOptionViolation when Search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize Search execution.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per examined
	// prime.
	Ctx context.Context

	// MaxPrimes, if > 0, bounds how many primes the stream may emit
	// before Search gives up with ErrNotFound.
	// A value of 0 explicitly disables the budget.
	MaxPrimes int

	// OnPrime is called after each prime is accepted into the graph,
	// with the prime and its vertex index.
	OnPrime func(p int64, index int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no prime budget (MaxPrimes == 0)
//   - no-op OnPrime hook.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		MaxPrimes: 0,
		OnPrime:   func(int64, int) {},
		err:       nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxPrimes bounds the number of primes examined before Search
// reports ErrNotFound.
//
//	n > 0:  examine at most n primes
//	n == 0: explicit no budget (the search may run forever)
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxPrimes(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: MaxPrimes cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			// explicit "no budget"
			o.MaxPrimes = 0
		default:
			o.MaxPrimes = n
		}
	}
}

// WithOnPrime registers a callback to run after each accepted prime.
func WithOnPrime(fn func(p int64, index int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPrime = fn
		}
	}
}

// Result holds the outcome of a successful Search:
//   - Primes: the k members in discovery order (the anchor vertex that
//     completed the clique comes last).
//   - Sum: the total of the members, the quantity the search minimizes.
//
// A Result is immutable once produced.
type Result struct {
	Primes []int64
	Sum    int64
}
