// Package clique runs the incremental search for the minimum-sum set of
// k primes whose pairwise concatenations are all prime, by anchored
// k-clique detection over the compatibility graph.
//
// What
//
//   - Search(k, opts...): the whole algorithm. Seeds the candidate set
//     with 3, then repeats: pull the next prime from the stream, insert
//     it into the pairgraph (computing its edges), and look for a
//     k-clique containing the new vertex. The first insertion that
//     admits any k-clique ends the search with the minimum-sum clique
//     available for that vertex.
//   - Result: the k primes in discovery order plus their sum.
//
// Anchored detection
//
//	A vertex can only sit in a k-clique if its degree is at least k-1,
//	so the check is skipped entirely until the new vertex qualifies.
//	Candidate co-members are collected over the whole graph — every
//	vertex with degree ≥ k-1 adjacent to the anchor — and every
//	(k-1)-combination of them is tested for pairwise connectivity
//	(connectivity to the anchor is implied by membership). All
//	combinations for the anchor are examined before returning, so the
//	result is the minimum-sum clique for that anchor.
//
// Termination
//
//	Returning on the first qualifying anchor is a deliberate contract:
//	the search does not prove global minimality across vertices it
//	never examined, only minimality among the cliques available when
//	the first anchor completes. If no qualifying set of size k exists
//	the loop would never end; WithMaxPrimes bounds the number of primes
//	examined and converts that hang into an observable ErrNotFound.
//
// Complexity
//
//	C(m, k-1) combinations for m filtered candidates, each checked with
//	O(k²) edge lookups — tractable only because the degree filter keeps
//	m small, which it does for this problem's natural inputs.
//
// Usage
//
//	res, err := clique.Search(4)
//	if err != nil {
//	    // ErrSetSize, ErrOptionViolation, ErrNotFound, or ctx error
//	}
//	fmt.Println(res.Primes, res.Sum) // [3 7 109 673] 792
//
// Options
//
//   - WithContext(ctx):  cancellation, checked once per examined prime.
//   - WithMaxPrimes(n):  examine at most n primes (0 = unbounded).
//   - WithOnPrime(fn):   hook after each accepted prime, for progress
//     reporting.
//
// Errors
//
//   - ErrSetSize          if k < 2 (rejected before any graph work).
//   - ErrOptionViolation  if an invalid Option is supplied.
//   - ErrNotFound         if the WithMaxPrimes budget runs out.
//   - Context errors propagate unchanged.
package clique
