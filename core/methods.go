package core

import "sort"

// AddVertex registers a vertex by ID. Adding an existing vertex is a no-op.
// Returns ErrEmptyVertexID if id is empty.
// Complexity: O(1)
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(id)

	return nil
}

// addVertexLocked inserts a vertex and its adjacency bucket.
// Caller must hold g.mu for writing.
func (g *Graph) addVertexLocked(id string) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = struct{}{}
	g.adj[id] = make(map[string]float64)
}

// AddEdge inserts (or overwrites) the edge from→to with the given weight.
// Both endpoints are created implicitly if absent. Duplicate (from,to)
// pairs overwrite the stored weight — last write wins, matching the
// flight-record semantics where a later record supersedes an earlier one.
// For undirected graphs the mirror entry to→from is kept in sync.
//
// Errors: ErrEmptyVertexID, ErrNegativeWeight, ErrLoopNotAllowed.
// Complexity: O(1)
func (g *Graph) AddEdge(from, to string, weight float64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if weight < 0 {
		return ErrNegativeWeight
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}

	g.addVertexLocked(from)
	g.addVertexLocked(to)

	g.adj[from][to] = weight
	if !g.directed {
		g.adj[to][from] = weight
	}

	return nil
}

// RemoveEdge deletes the edge from→to (and its mirror when undirected).
// Vertices are never removed implicitly.
// Returns ErrEdgeNotFound if the edge does not exist.
// Complexity: O(1)
func (g *Graph) RemoveEdge(from, to string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	nbrs, ok := g.adj[from]
	if !ok {
		return ErrEdgeNotFound
	}
	if _, ok = nbrs[to]; !ok {
		return ErrEdgeNotFound
	}

	delete(nbrs, to)
	if !g.directed {
		delete(g.adj[to], from)
	}

	return nil
}

// HasVertex reports whether id is present in the graph.
// Complexity: O(1)
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// HasEdge reports whether the edge from→to exists.
// Complexity: O(1)
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adj[from][to]

	return ok
}

// Weight returns the weight of the edge from→to.
// Returns ErrEdgeNotFound if the edge does not exist.
// Complexity: O(1)
func (g *Graph) Weight(from, to string) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	w, ok := g.adj[from][to]
	if !ok {
		return 0, ErrEdgeNotFound
	}

	return w, nil
}

// VertexCount returns the number of vertices.
// Complexity: O(1)
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of edges. Undirected edges count once.
// Complexity: O(V)
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	total := 0
	for from, nbrs := range g.adj {
		for to := range nbrs {
			if g.directed || from <= to {
				total++
			}
		}
	}

	return total
}

// Vertices returns all vertex IDs sorted lexicographically.
// Sorted output keeps every algorithm in airnet deterministic.
// Complexity: O(V log V)
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Edges returns a snapshot of all edges sorted by (From, To).
// For undirected graphs each pair appears once with From ≤ To.
// Complexity: O(E log E)
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	edges := make([]Edge, 0, len(g.adj))
	for from, nbrs := range g.adj {
		for to, w := range nbrs {
			if !g.directed && from > to {
				continue // mirror entry; the From ≤ To orientation reports it
			}
			edges = append(edges, Edge{From: from, To: to, Weight: w})
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}

		return edges[i].To < edges[j].To
	})

	return edges
}
