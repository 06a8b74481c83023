package dijkstra

import (
	"container/heap"

	"github.com/sandrokhizanishvili/airnet/core"
)

// Route finds one shortest path from start to target and halts as soon
// as the target is settled, so point-to-point queries never explore the
// far side of the graph.
//
// Among equal-distance routes the returned one depends on heap insertion
// order (sorted neighbor iteration keeps it stable run-to-run). Use
// AllShortestPaths when every co-optimal route matters.
//
// Errors: ErrNilGraph, ErrEmptyGraph, ErrVertexNotFound (start or target
// absent). Unreachability is reported via RouteResult.Found, not as an
// error.
//
// Complexity: O((V + E) log V) time, O(V + E) memory.
func Route(g *core.Graph, start, target string) (*RouteResult, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.VertexCount() == 0 {
		return nil, ErrEmptyGraph
	}
	if !g.HasVertex(start) || !g.HasVertex(target) {
		return nil, ErrVertexNotFound
	}

	dist := map[string]float64{start: 0}
	prev := make(map[string]string)
	settled := make(map[string]bool, g.VertexCount())

	pq := nodePQ{{id: start, dist: 0}}
	heap.Init(&pq)

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(nodeItem)
		u := item.id
		if settled[u] {
			continue // stale duplicate from lazy decrease-key
		}
		settled[u] = true

		// The first settle of the target fixes its distance; stop here.
		if u == target {
			return &RouteResult{
				Path:     routePath(prev, start, target),
				Distance: item.dist,
				Found:    true,
			}, nil
		}

		nbrs, err := g.NeighborIDs(u)
		if err != nil {
			return nil, err
		}
		for _, v := range nbrs {
			if settled[v] {
				continue
			}
			w, werr := g.Weight(u, v)
			if werr != nil {
				continue
			}
			nd := item.dist + w
			if best, ok := dist[v]; ok && nd >= best {
				continue
			}
			dist[v] = nd
			prev[v] = u
			heap.Push(&pq, nodeItem{id: v, dist: nd})
		}
	}

	return &RouteResult{Found: false}, nil
}

// routePath rebuilds the start→target vertex sequence from prev links.
func routePath(prev map[string]string, start, target string) []string {
	path := []string{target}
	for cur := target; cur != start; {
		cur = prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
