package dijkstra

import (
	"container/heap"
	"math"

	"github.com/sandrokhizanishvili/airnet/core"
)

// AllShortestPaths computes, from a single source, the minimum distance
// to every vertex and the complete set of co-optimal paths achieving it.
//
// Relaxation rule: a strictly shorter distance to a neighbor replaces
// its path set with the current vertex's paths extended by the neighbor;
// an exact tie appends the newly discovered paths instead, so every
// co-optimal route accumulates. The heap carries only (distance, vertex)
// pairs — path sets live in a side table keyed by vertex, never inside
// heap payloads. A popped entry whose distance exceeds the best known
// for its vertex is stale and skipped, which keeps reopened vertices
// from corrupting path sets with suboptimal extensions.
//
// Errors: ErrNilGraph, ErrEmptyGraph, ErrVertexNotFound.
//
// Complexity: O((V + E) log V) heap work; memory is dominated by the
// stored path sets, which grow combinatorially on tie-heavy graphs.
func AllShortestPaths(g *core.Graph, source string) (*PathsResult, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.VertexCount() == 0 {
		return nil, ErrEmptyGraph
	}
	if !g.HasVertex(source) {
		return nil, ErrVertexNotFound
	}

	vertices := g.Vertices()
	dist := make(map[string]float64, len(vertices))
	paths := make(map[string][][]string, len(vertices))
	for _, v := range vertices {
		dist[v] = math.Inf(1)
		paths[v] = nil
	}
	dist[source] = 0
	paths[source] = [][]string{{source}}

	pq := nodePQ{{id: source, dist: 0}}
	heap.Init(&pq)

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(nodeItem)
		u := item.id
		if item.dist > dist[u] {
			continue // stale entry; a shorter route to u was already settled
		}

		nbrs, err := g.NeighborIDs(u)
		if err != nil {
			return nil, err
		}
		for _, v := range nbrs {
			w, werr := g.Weight(u, v)
			if werr != nil {
				continue
			}
			nd := item.dist + w

			switch {
			case nd < dist[v]:
				// Strict improvement: discard v's old paths entirely.
				dist[v] = nd
				paths[v] = extendAll(paths[u], v)
				heap.Push(&pq, nodeItem{id: v, dist: nd})
			case nd == dist[v]:
				// Exact tie: these routes are co-optimal, keep them all.
				paths[v] = append(paths[v], extendAll(paths[u], v)...)
			}
		}
	}

	return &PathsResult{Source: source, Dist: dist, Paths: paths}, nil
}

// extendAll copies every path in set and appends next to each copy.
// Copies are mandatory: path slices are shared across the side table and
// appending in place would alias another vertex's path set.
func extendAll(set [][]string, next string) [][]string {
	out := make([][]string, 0, len(set))
	for _, p := range set {
		np := make([]string, len(p), len(p)+1)
		copy(np, p)
		out = append(out, append(np, next))
	}

	return out
}
