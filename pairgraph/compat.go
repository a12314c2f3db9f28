package pairgraph

import (
	"errors"
	"strconv"

	"github.com/lvkm/concatprimes/primes"
)

// Compatible reports whether p and q are pairwise-concatenation-
// compatible: both decimal concatenations p‖q and q‖p, parsed back as
// integers, are prime. Symmetric: Compatible(p, q) == Compatible(q, p).
// Returns ErrNonPositive for non-positive input and ErrConcatOverflow
// when a concatenation leaves the int64 range.
// Complexity: O(√(p‖q)) per concatenation.
func Compatible(p, q int64) (bool, error) {
	if p <= 0 || q <= 0 {
		return false, ErrNonPositive
	}
	pq, err := concat(p, q)
	if err != nil {
		return false, err
	}
	ok, err := primes.IsPrime(pq)
	if err != nil || !ok {
		return false, err
	}
	qp, err := concat(q, p)
	if err != nil {
		return false, err
	}

	return primes.IsPrime(qp)
}

// concat glues the decimal digits of b onto a and reads the result back
// as an integer. Primes carry no leading zeros, so the round-trip is
// exact.
func concat(a, b int64) (int64, error) {
	v, err := strconv.ParseInt(strconv.FormatInt(a, 10)+strconv.FormatInt(b, 10), 10, 64)
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) && errors.Is(ne.Err, strconv.ErrRange) {
			return 0, ErrConcatOverflow
		}

		return 0, err
	}

	return v, nil
}
