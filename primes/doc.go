// Package primes provides the primality test and the lazy prime stream
// that feed the concatenation search.
//
// What
//
//   - IsPrime(x): deterministic trial division by every d in
//     [2, ⌊√x⌋]; composite on the first exact divisor.
//   - Stream: an infinite, non-restartable sequence of primes in
//     strictly increasing order, starting at 7. The caller decides when
//     to stop consuming; Next never fails.
//
// Why start at 7
//
//	The search seeds its candidate set with 3 directly, and 2 and 5 can
//	never participate in a pairwise-concatenation-compatible set: any
//	concatenation ending in their digits is divisible by 2 or 5. The
//	stream therefore begins after the seed, at 7.
//
// Complexity
//
//   - IsPrime: O(√x) divisions, no memoization.
//   - Stream.Next: O(g·√x) for prime gap g — unbounded in principle,
//     tiny in practice for the values this search visits.
//
// Errors
//
//   - ErrNonPositive if IsPrime receives x ≤ 0.
package primes
