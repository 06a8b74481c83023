package core

import "sort"

// NeighborIDs returns the IDs of all out-neighbors of id, sorted
// lexicographically. For undirected graphs this is the full neighborhood.
// Returns ErrVertexNotFound if id is absent.
// Complexity: O(d log d), d = out-degree of id.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	ids := make([]string, 0, len(g.adj[id]))
	for to := range g.adj[id] {
		ids = append(ids, to)
	}
	sort.Strings(ids)

	return ids, nil
}

// NeighborWeights returns a copy of the out-adjacency bucket of id:
// neighbor ID → edge weight. Mutating the returned map does not affect
// the graph. Returns ErrVertexNotFound if id is absent.
// Complexity: O(d)
func (g *Graph) NeighborWeights(id string) (map[string]float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	out := make(map[string]float64, len(g.adj[id]))
	for to, w := range g.adj[id] {
		out[to] = w
	}

	return out, nil
}

// InNeighborIDs returns the IDs of all vertices with an edge into id,
// sorted lexicographically. For undirected graphs this equals NeighborIDs.
// Returns ErrVertexNotFound if id is absent.
// Complexity: O(V + E) for directed graphs (full adjacency scan).
func (g *Graph) InNeighborIDs(id string) ([]string, error) {
	if !g.Directed() {
		return g.NeighborIDs(id)
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var ids []string
	for from, nbrs := range g.adj {
		if _, ok := nbrs[id]; ok {
			ids = append(ids, from)
		}
	}
	sort.Strings(ids)

	return ids, nil
}

// InDegree returns the number of edges pointing into id.
// Returns ErrVertexNotFound if id is absent.
// Complexity: O(V + E) for directed graphs.
func (g *Graph) InDegree(id string) (int, error) {
	ids, err := g.InNeighborIDs(id)
	if err != nil {
		return 0, err
	}

	return len(ids), nil
}

// OutWeight returns the total weight of all edges leaving id.
// A zero total identifies a dangling vertex for PageRank purposes.
// Returns ErrVertexNotFound if id is absent.
// Complexity: O(d)
func (g *Graph) OutWeight(id string) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}

	var total float64
	for _, w := range g.adj[id] {
		total += w
	}

	return total, nil
}

// AdjacencyList returns a deep copy of the adjacency structure:
// from → to → weight. The copy is detached from the graph and safe to
// mutate; flow algorithms use it as the seed of a residual capacity map.
// Complexity: O(V + E)
func (g *Graph) AdjacencyList() map[string]map[string]float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string]map[string]float64, len(g.adj))
	for from, nbrs := range g.adj {
		bucket := make(map[string]float64, len(nbrs))
		for to, w := range nbrs {
			bucket[to] = w
		}
		out[from] = bucket
	}

	return out
}
