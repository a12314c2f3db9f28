package pairgraph

// Graph is the append-only compatibility graph over discovered primes.
//
// Each vertex is a prime value with a stable 0-based index assigned at
// insertion time. Adjacency is stored as one hash set per vertex for
// O(1) amortized symmetric edge queries. The zero value is not usable;
// construct with New. Graph is not safe for concurrent use: the whole
// search owns its state on a single goroutine.
type Graph struct {
	values []int64            // vertex values, insertion order
	index  map[int64]int      // value → index
	degree []int              // incident edge counts, by index
	adj    []map[int]struct{} // adjacency sets, by index
}

// New returns an empty compatibility graph.
func New() *Graph {
	return &Graph{index: make(map[int64]int)}
}

// Add appends x as a new vertex, evaluating Compatible(x, q) against
// every existing vertex q in insertion order and recording an edge for
// each compatible pair. Both endpoint degrees are incremented per edge.
// Returns the index assigned to x.
//
// Returns ErrNonPositive for x ≤ 0 and ErrDuplicateVertex if x is
// already a vertex; on error the graph is unchanged.
// Complexity: O(n) compatibility checks for n existing vertices.
func (g *Graph) Add(x int64) (int, error) {
	if x <= 0 {
		return 0, ErrNonPositive
	}
	if _, ok := g.index[x]; ok {
		return 0, ErrDuplicateVertex
	}

	// Evaluate all edges before mutating, so Add stays atomic on error.
	neighbors := make([]int, 0, len(g.values))
	for j, q := range g.values {
		ok, err := Compatible(x, q)
		if err != nil {
			return 0, err
		}
		if ok {
			neighbors = append(neighbors, j)
		}
	}

	ix := len(g.values)
	g.values = append(g.values, x)
	g.degree = append(g.degree, 0)
	g.adj = append(g.adj, make(map[int]struct{}, len(neighbors)))
	g.index[x] = ix
	for _, j := range neighbors {
		g.adj[ix][j] = struct{}{}
		g.adj[j][ix] = struct{}{}
		g.degree[ix]++
		g.degree[j]++
	}

	return ix, nil
}

// Len returns the number of vertices.
func (g *Graph) Len() int {
	return len(g.values)
}

// Value returns the prime stored at index i.
func (g *Graph) Value(i int) int64 {
	return g.values[i]
}

// Index returns the index assigned to value x and whether x is present.
func (g *Graph) Index(x int64) (int, bool) {
	i, ok := g.index[x]

	return i, ok
}

// Degree returns the number of edges incident to vertex i.
func (g *Graph) Degree(i int) int {
	return g.degree[i]
}

// HasEdge reports whether vertices i and j are connected. Always false
// for i == j: the graph holds no self-loops.
func (g *Graph) HasEdge(i, j int) bool {
	if i == j {
		return false
	}
	_, ok := g.adj[i][j]

	return ok
}

// Values returns a copy of the candidate set in insertion order.
func (g *Graph) Values() []int64 {
	out := make([]int64, len(g.values))
	copy(out, g.values)

	return out
}
