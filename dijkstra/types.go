package dijkstra

import (
	"errors"
	"fmt"

	"github.com/sandrokhizanishvili/airnet/core"
)

// Sentinel errors returned by the shortest-path engine.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrEmptyGraph indicates the graph has no vertices.
	ErrEmptyGraph = fmt.Errorf("dijkstra: %w", core.ErrEmptyGraph)

	// ErrVertexNotFound indicates a start, target, or source vertex that
	// does not exist in the graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")
)

// RouteResult is the outcome of a single-target query.
//
// An unreachable target is a valid outcome, not an error: Found is
// false, Path is nil, and Distance is undefined.
type RouteResult struct {
	// Path is the vertex sequence from start to target, inclusive.
	Path []string

	// Distance is the total weight along Path.
	Distance float64

	// Found reports whether any route exists.
	Found bool
}

// PathsResult is the outcome of an all-co-optimal-paths computation.
type PathsResult struct {
	// Source is the vertex every entry is measured from.
	Source string

	// Dist maps each vertex to its minimum distance from Source.
	// Unreachable vertices hold math.Inf(1); Dist[Source] is 0.
	Dist map[string]float64

	// Paths maps each vertex to every path realizing Dist; each path
	// starts at Source and ends at the vertex. Unreachable vertices have
	// an empty set. Paths[Source] is the single trivial path {Source}.
	Paths map[string][][]string
}

// nodeItem pairs a vertex with its tentative distance from the source.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of nodeItem ordered by dist ascending, operated
// in the lazy-decrease-key style: improvements push duplicates, and
// stale entries are recognized and skipped on pop.
type nodePQ []nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
