// Package clique implements the outer search loop: prime discovery,
// graph growth, and anchored clique detection after every insertion.
package clique

import (
	"github.com/lvkm/concatprimes/pairgraph"
	"github.com/lvkm/concatprimes/primes"
)

// seedPrime is injected into the candidate set before the stream
// begins. 2 and 5 can never participate: any concatenation ending in
// their digits is divisible by 2 or 5.
const seedPrime = 3

// Search finds the minimum-sum set of exactly k distinct primes whose
// pairwise concatenations, in both orders, are all prime.
//
// Returns ErrSetSize for k < 2 (before any graph construction),
// ErrOptionViolation for bad options, ErrNotFound if a WithMaxPrimes
// budget runs out, or the context error on cancellation. Without a
// budget, Search does not return until a qualifying set is found.
func Search(k int, opts ...Option) (*Result, error) {
	if k < 2 {
		return nil, ErrSetSize
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	g := pairgraph.New()
	if _, err := g.Add(seedPrime); err != nil {
		return nil, err
	}

	stream := primes.NewStream()
	for {
		// cancellation check (once per examined prime)
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}
		if o.MaxPrimes > 0 && stream.Count() >= o.MaxPrimes {
			return nil, ErrNotFound
		}

		x := stream.Next()
		ix, err := g.Add(x)
		if err != nil {
			return nil, err
		}
		o.OnPrime(x, ix)

		if res := anchored(g, ix, k); res != nil {
			return res, nil
		}
	}
}
