// Package primes implements trial-division primality testing and a
// monotonically increasing prime stream.
package primes

import "errors"

// ErrNonPositive is returned when a primality query receives x ≤ 0.
var ErrNonPositive = errors.New("primes: value must be positive")

// streamStart is the first integer the stream tests; the search injects
// the seed prime 3 itself, and 2 and 5 are never usable candidates.
const streamStart = 7

// IsPrime reports whether x is prime, using trial division by every
// integer from 2 up to and including ⌊√x⌋.
// Returns ErrNonPositive for x ≤ 0; 1 is reported composite.
// Complexity: O(√x).
func IsPrime(x int64) (bool, error) {
	if x <= 0 {
		return false, ErrNonPositive
	}
	if x == 1 {
		return false, nil
	}
	for d := int64(2); d*d <= x; d++ {
		if x%d == 0 {
			return false, nil
		}
	}

	return true, nil
}

// Stream yields primes greater than 5 in strictly increasing order.
// It is lazy, infinite, and non-restartable; the zero value is not
// usable — construct with NewStream.
type Stream struct {
	next  int64 // next integer to test
	count int   // primes emitted so far
}

// NewStream returns a Stream positioned at 7, the first candidate after
// the seed.
func NewStream() *Stream {
	return &Stream{next: streamStart}
}

// Next advances the stream and returns the next prime. It never fails:
// the primes are unbounded, so every call terminates.
func (s *Stream) Next() int64 {
	for {
		x := s.next
		s.next++
		// x is always ≥ 7 here, so IsPrime cannot error
		if ok, _ := IsPrime(x); ok {
			s.count++

			return x
		}
	}
}

// Count reports how many primes the stream has emitted so far.
func (s *Stream) Count() int {
	return s.count
}
