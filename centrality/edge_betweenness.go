package centrality

import (
	"math"

	"github.com/sandrokhizanishvili/airnet/core"
)

// EdgeBetweenness scores every edge of an undirected graph by the
// fraction of all-pairs shortest paths traversing it (hop-count paths;
// weights are ignored, matching the community-detection use).
//
// For each source vertex a BFS records hop distances, shortest-path
// counts σ, and predecessor lists, then a reverse sweep back-propagates
// each vertex's dependency onto its predecessor edges: the edge
// (pred, node) receives σ(pred)/σ(node) · (1 + δ(node)). Because every
// unordered pair is counted from both endpoints, final scores are
// divided by 2.
//
// Errors: ErrNilGraph, ErrEmptyGraph, ErrDirectedGraph.
//
// Complexity: O(V·E) time, O(V + E) memory.
func EdgeBetweenness(g *core.Graph) (map[EdgeKey]float64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.VertexCount() == 0 {
		return nil, ErrEmptyGraph
	}
	if g.Directed() {
		return nil, ErrDirectedGraph
	}

	scores := make(map[EdgeKey]float64, g.EdgeCount())
	for _, e := range g.Edges() {
		scores[NewEdgeKey(e.From, e.To)] = 0
	}

	vertices := g.Vertices()
	for _, source := range vertices {
		accumulate(g, source, vertices, scores)
	}

	// Each unordered pair was visited from both of its endpoints.
	for key := range scores {
		scores[key] /= 2
	}

	return scores, nil
}

// accumulate runs one Brandes pass from source, adding each edge's
// dependency share into scores.
func accumulate(g *core.Graph, source string, vertices []string, scores map[EdgeKey]float64) {
	n := len(vertices)
	dist := make(map[string]float64, n)
	sigma := make(map[string]float64, n)
	preds := make(map[string][]string, n)
	for _, v := range vertices {
		dist[v] = math.Inf(1)
	}
	dist[source] = 0
	sigma[source] = 1

	// BFS phase: stack records the visit order for the reverse sweep.
	queue := []string{source}
	stack := make([]string, 0, n)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		stack = append(stack, cur)

		nbrs, err := g.NeighborIDs(cur)
		if err != nil {
			continue
		}
		for _, nb := range nbrs {
			if math.IsInf(dist[nb], 1) {
				dist[nb] = dist[cur] + 1
				queue = append(queue, nb)
			}
			if dist[nb] == dist[cur]+1 {
				sigma[nb] += sigma[cur]
				preds[nb] = append(preds[nb], cur)
			}
		}
	}

	// Dependency back-propagation in reverse BFS order.
	delta := make(map[string]float64, n)
	for i := len(stack) - 1; i >= 0; i-- {
		node := stack[i]
		for _, pred := range preds[node] {
			contribution := sigma[pred] / sigma[node] * (1 + delta[node])
			scores[NewEdgeKey(node, pred)] += contribution
			delta[pred] += contribution
		}
	}
}
