package centrality

import (
	"math"

	"github.com/sandrokhizanishvili/airnet/core"
	"github.com/sandrokhizanishvili/airnet/dijkstra"
)

// Closeness scores every vertex by the sum of reciprocal shortest-path
// distances to each other vertex it can reach. The self-distance of 0
// is excluded, unreachable vertices contribute nothing, and a vertex
// that reaches no one scores 0. Higher means closer to the rest of the
// network; the harmonic form stays well-defined on disconnected graphs.
//
// Errors: ErrNilGraph, ErrEmptyGraph.
//
// Complexity: one Dijkstra per source — O(V·(V + E) log V).
func Closeness(g *core.Graph) (map[string]float64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.VertexCount() == 0 {
		return nil, ErrEmptyGraph
	}

	vertices := g.Vertices()
	scores := make(map[string]float64, len(vertices))
	for _, source := range vertices {
		res, err := dijkstra.AllShortestPaths(g, source)
		if err != nil {
			return nil, err
		}

		var sum float64
		for target, d := range res.Dist {
			if target == source || d == 0 || math.IsInf(d, 1) {
				continue
			}
			sum += 1 / d
		}
		scores[source] = sum
	}

	return scores, nil
}

// InDegree scores every vertex by its incoming edge count divided by
// N−1, the maximum possible in-degree. A single-vertex graph has no
// possible incoming edges and scores 0.
//
// Errors: ErrNilGraph, ErrEmptyGraph.
//
// Complexity: O(V + E).
func InDegree(g *core.Graph) (map[string]float64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.VertexCount() == 0 {
		return nil, ErrEmptyGraph
	}

	vertices := g.Vertices()
	scores := make(map[string]float64, len(vertices))
	n := len(vertices)
	if n < 2 {
		for _, v := range vertices {
			scores[v] = 0
		}

		return scores, nil
	}

	// One adjacency snapshot instead of V full scans via InDegree().
	counts := make(map[string]int, n)
	for _, nbrs := range g.AdjacencyList() {
		for to := range nbrs {
			counts[to]++
		}
	}
	for _, v := range vertices {
		scores[v] = float64(counts[v]) / float64(n-1)
	}

	return scores, nil
}
