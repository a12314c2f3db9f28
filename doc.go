// Package concatprimes finds the minimum-sum set of exactly k distinct
// primes whose pairwise decimal concatenations, in both orders, are all
// prime themselves.
//
// The classic instance: 3, 7, 109 and 673 concatenate pairwise into
// primes every way you order them (7109, 1097, 3673, …), and 792 is the
// lowest sum any four primes with this property can reach.
//
// The search is incremental, organized as three subpackages:
//
//	primes/    — lazy, strictly increasing prime stream (trial division)
//	pairgraph/ — append-only compatibility graph over discovered primes;
//	             an edge means both concatenations are prime
//	clique/    — anchored k-clique detection after every insertion, plus
//	             the outer search loop and its options
//
// A qualifying set of k primes is a k-clique in the compatibility graph;
// after each newly discovered prime the search looks only for cliques
// containing that prime, pruned by vertex degree. The first vertex whose
// insertion admits any k-clique ends the search with the minimum-sum
// clique available at that moment.
//
// One binary ships with the library:
//
//	cmd/concatprimes — reads a single set size k and prints the primes
//	                   and their sum
//
//	go get github.com/lvkm/concatprimes/clique
package concatprimes
