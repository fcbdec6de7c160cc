package core

// Graph is an undirected adjacency structure over integer vertex ids.
// Vertices map one-to-one onto territory ids, so the same id addresses a
// cell in the board grid and a vertex here.
//
// A deactivated vertex is excluded from future edge mutation, but adjacency
// recorded while it was active stays in place and NeighborsOf still reports
// it. Edges are not deduplicated: adding the same edge twice stores it twice.
type Graph struct {
	numVertices int
	adjacency   map[int][]int
	inactive    map[int]struct{}
}

// NewGraph creates a graph with vertices 0..numVertices-1, all active, with
// empty adjacency lists.
func NewGraph(numVertices int) *Graph {
	g := &Graph{
		numVertices: numVertices,
		adjacency:   make(map[int][]int, numVertices),
		inactive:    make(map[int]struct{}),
	}
	for v := 0; v < numVertices; v++ {
		g.adjacency[v] = []int{}
	}
	return g
}

// NumVertices returns the vertex count the graph was created with,
// deactivated vertices included.
func (g *Graph) NumVertices() int { return g.numVertices }

// IsActive reports whether v has not been deactivated.
func (g *Graph) IsActive(v int) bool {
	_, off := g.inactive[v]
	return !off
}

// AddEdge records the undirected edge (u, v) in both adjacency lists. A
// no-op when either endpoint is inactive.
func (g *Graph) AddEdge(u, v int) {
	if !g.IsActive(u) || !g.IsActive(v) {
		return
	}
	g.adjacency[u] = append(g.adjacency[u], v)
	g.adjacency[v] = append(g.adjacency[v], u)
}

// RemoveEdge deletes one occurrence of (u, v) from each adjacency list. A
// no-op when either endpoint is inactive or the edge is not present.
func (g *Graph) RemoveEdge(u, v int) {
	if !g.IsActive(u) || !g.IsActive(v) {
		return
	}
	g.adjacency[u] = removeFirst(g.adjacency[u], v)
	g.adjacency[v] = removeFirst(g.adjacency[v], u)
}

// DeactivateVertex permanently takes v out of edge mutation. Idempotent;
// there is no reactivation.
func (g *Graph) DeactivateVertex(v int) {
	g.inactive[v] = struct{}{}
}

// NeighborsOf returns the stored neighbor list for v regardless of v's
// active status. The slice is the graph's own storage; callers must not
// modify it.
func (g *Graph) NeighborsOf(v int) []int {
	return g.adjacency[v]
}

// LargestClusterSize returns the size of the largest connected component
// among active vertices satisfying pred. Vertices failing pred are neither
// entered nor counted. Returns 0 when no vertex satisfies pred.
func (g *Graph) LargestClusterSize(pred func(v int) bool) int {
	visited := make([]bool, g.numVertices)
	largest := 0
	for v := 0; v < g.numVertices; v++ {
		if visited[v] || !g.IsActive(v) || !pred(v) {
			continue
		}
		if size := g.clusterSizeFrom(v, visited, pred); size > largest {
			largest = size
		}
	}
	return largest
}

// clusterSizeFrom counts the vertices reachable from start through active
// vertices satisfying pred. Iterative with an explicit stack, so cluster
// size never turns into call depth.
func (g *Graph) clusterSizeFrom(start int, visited []bool, pred func(v int) bool) int {
	stack := []int{start}
	visited[start] = true
	size := 0
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		size++
		for _, n := range g.adjacency[v] {
			if visited[n] || !g.IsActive(n) || !pred(n) {
				continue
			}
			visited[n] = true
			stack = append(stack, n)
		}
	}
	return size
}

func removeFirst(list []int, x int) []int {
	for i, n := range list {
		if n == x {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
