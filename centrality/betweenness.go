package centrality

import (
	"github.com/sandrokhizanishvili/airnet/core"
	"github.com/sandrokhizanishvili/airnet/dijkstra"
)

// Betweenness scores every vertex by how often it lies strictly inside a
// shortest path between two other vertices, derived from the
// all-co-optimal-paths engine: for each source-target pair with k
// equally short routes, every intermediate vertex on every route earns
// 1/k. Scores are normalized by (N−1)(N−2), the pair count of a
// directed graph with N vertices.
//
// Trivial paths (source to itself, or a single hop) have no
// intermediate vertices and contribute nothing. Graphs with fewer than
// three vertices have no possible intermediates and score all zeros.
//
// Errors: ErrNilGraph, ErrEmptyGraph.
//
// Complexity: one AllShortestPaths per source — O(V·(V + E) log V) heap
// work plus the enumerated path sets, which dominate on tie-heavy graphs.
func Betweenness(g *core.Graph) (map[string]float64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.VertexCount() == 0 {
		return nil, ErrEmptyGraph
	}

	vertices := g.Vertices()
	scores := make(map[string]float64, len(vertices))
	for _, v := range vertices {
		scores[v] = 0
	}
	n := len(vertices)
	if n < 3 {
		return scores, nil
	}

	for _, source := range vertices {
		res, err := dijkstra.AllShortestPaths(g, source)
		if err != nil {
			return nil, err
		}
		for target, set := range res.Paths {
			if target == source || len(set) == 0 {
				continue
			}
			share := 1 / float64(len(set))
			for _, path := range set {
				for _, mid := range path[1 : len(path)-1] {
					scores[mid] += share
				}
			}
		}
	}

	scale := float64(n-1) * float64(n-2)
	for v := range scores {
		scores[v] /= scale
	}

	return scores, nil
}
