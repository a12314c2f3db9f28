package clique

import (
	"math"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/lvkm/concatprimes/pairgraph"
)

// anchored looks for the minimum-sum k-clique containing vertex ix,
// the most recently inserted one. Returns nil when no such clique
// exists yet.
//
// Every (k-1)-combination of the degree-filtered candidate set is
// examined before returning, so the result is minimal for this anchor;
// minimality across anchors the outer loop never reaches is not
// claimed.
func anchored(g *pairgraph.Graph, ix, k int) *Result {
	// a vertex in a k-clique needs at least k-1 neighbors
	if g.Degree(ix) < k-1 {
		return nil
	}

	// Candidate co-members over the entire graph, insertion order:
	// degree-qualified vertices adjacent to the anchor.
	cands := make([]int, 0, g.Degree(ix))
	for j := 0; j < g.Len(); j++ {
		if j == ix {
			continue
		}
		if g.Degree(j) >= k-1 && g.HasEdge(ix, j) {
			cands = append(cands, j)
		}
	}
	if len(cands) < k-1 {
		return nil
	}

	var (
		best    []int
		bestSum = int64(math.MaxInt64)
	)
	gen := combin.NewCombinationGenerator(len(cands), k-1)
	comb := make([]int, k-1)
	for gen.Next() {
		gen.Combination(comb)
		if !pairwise(g, cands, comb) {
			continue
		}
		sum := g.Value(ix)
		for _, c := range comb {
			sum += g.Value(cands[c])
		}
		if sum < bestSum {
			best = append(best[:0], comb...)
			bestSum = sum
		}
	}
	if best == nil {
		return nil
	}

	members := make([]int64, 0, k)
	for _, c := range best {
		members = append(members, g.Value(cands[c]))
	}
	members = append(members, g.Value(ix)) // anchor last: discovery order

	return &Result{Primes: members, Sum: bestSum}
}

// pairwise reports whether every pair within the chosen combination is
// mutually connected; connectivity to the anchor is already guaranteed
// by candidate membership. O(k²) edge lookups.
func pairwise(g *pairgraph.Graph, cands, comb []int) bool {
	for a := 0; a < len(comb); a++ {
		for b := a + 1; b < len(comb); b++ {
			if !g.HasEdge(cands[comb[a]], cands[comb[b]]) {
				return false
			}
		}
	}

	return true
}
