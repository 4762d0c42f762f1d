package sim

// Graph is an undirected adjacency list over node ids 0..Len()-1.
// It is built once by GenerateGraph and never modified afterwards.
type Graph struct {
	adj [][]int
}

// GenerateGraph builds an Erdős–Rényi graph: every pair i<j becomes an edge
// with probability p. Neighbor lists come out sorted ascending.
func GenerateGraph(n int, p float64, rng *Rand) *Graph {
	adj := make([][]int, n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				adj[i] = append(adj[i], j)
				adj[j] = append(adj[j], i)
			}
		}
	}
	return &Graph{adj: adj}
}

// NewGraph builds a graph from an explicit edge list. Self loops, duplicates
// and out-of-range endpoints are ignored.
func NewGraph(n int, edges [][2]int) *Graph {
	g := &Graph{adj: make([][]int, n)}
	for _, e := range edges {
		a, b := e[0], e[1]
		if a == b || a < 0 || b < 0 || a >= n || b >= n || g.HasEdge(a, b) {
			continue
		}
		g.adj[a] = insertSorted(g.adj[a], b)
		g.adj[b] = insertSorted(g.adj[b], a)
	}
	return g
}

// Complete returns the fully connected graph on n nodes.
func Complete(n int) *Graph {
	edges := make([][2]int, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, [2]int{i, j})
		}
	}
	return NewGraph(n, edges)
}

func insertSorted(s []int, v int) []int {
	i := 0
	for i < len(s) && s[i] < v {
		i++
	}
	s = append(s, 0)
	copy(s[i+1:], s[i:])
	s[i] = v
	return s
}

func (g *Graph) Len() int { return len(g.adj) }

// Neighbors returns the adjacency slice for id. Callers must not modify it.
func (g *Graph) Neighbors(id int) []int {
	if id < 0 || id >= len(g.adj) {
		return nil
	}
	return g.adj[id]
}

func (g *Graph) HasEdge(a, b int) bool {
	for _, n := range g.Neighbors(a) {
		if n == b {
			return true
		}
	}
	return false
}

// EdgeCount returns the number of unordered edges.
func (g *Graph) EdgeCount() int {
	total := 0
	for _, nb := range g.adj {
		total += len(nb)
	}
	return total / 2
}

// Edges lists every unordered edge once as (lo, hi).
func (g *Graph) Edges() [][2]int {
	out := make([][2]int, 0, g.EdgeCount())
	for i, nb := range g.adj {
		for _, j := range nb {
			if i < j {
				out = append(out, [2]int{i, j})
			}
		}
	}
	return out
}
