package core

// CloneEmpty returns a new Graph with identical configuration and
// vertices, but no edges.
// Complexity: O(V)
func (g *Graph) CloneEmpty() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph(WithDirected(g.directed))
	clone.allowLoops = g.allowLoops
	for id := range g.vertices {
		clone.addVertexLocked(id)
	}

	return clone
}

// Clone returns a deep copy of the graph: configuration, vertices, and
// all edge weights. Mutating algorithms (Girvan–Newman, residual flow)
// operate on a Clone so the caller's graph stays intact.
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph(WithDirected(g.directed))
	clone.allowLoops = g.allowLoops
	for id := range g.vertices {
		clone.addVertexLocked(id)
	}
	for from, nbrs := range g.adj {
		for to, w := range nbrs {
			clone.adj[from][to] = w
		}
	}

	return clone
}
