// Package pairgraph maintains the compatibility graph of the
// concatenation search: an undirected, unweighted, append-only graph
// whose vertices are discovered primes and whose edges mark
// pairwise-concatenation-compatible pairs.
//
// What
//
//   - Compatible(p, q): both decimal concatenations p‖q and q‖p, read
//     back as integers, are prime. Symmetric by construction.
//   - Graph: each accepted prime becomes one vertex with a stable
//     0-based index assigned at insertion; edges to all prior vertices
//     are computed exactly once, on insertion, and never revisited.
//     Per-vertex degree counters are maintained incrementally.
//
// Append-only contract
//
//	Vertices and edges are never removed, indices never change, and an
//	edge once recorded is permanent. Degrees are therefore
//	non-decreasing over the graph's lifetime.
//
// Representation
//
//	Adjacency is a slice of hash sets keyed by vertex index, so
//	symmetric edge queries are O(1) amortized while the conceptual
//	boolean matrix stays sparse. Insertion order and value order
//	coincide because the prime stream is monotonic.
//
// Complexity
//
//   - Add: O(n) compatibility checks against the n existing vertices,
//     each O(√(p‖q)); O(n²) cumulative over a whole search.
//   - HasEdge, Degree, Value, Index, Len: O(1).
//
// Errors
//
//   - ErrNonPositive for non-positive inputs to Compatible or Add.
//   - ErrDuplicateVertex when a value is inserted twice.
//   - ErrConcatOverflow when a concatenation exceeds the int64 range.
//
// Index arguments to HasEdge, Degree and Value must refer to existing
// vertices; out-of-range indices are a programming error and panic.
package pairgraph
