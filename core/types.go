// Package core defines the central Graph and Edge types used by every
// analysis package in airnet, and provides thread-safe primitives for
// building, querying, mutating, and cloning flight-network graphs.
//
// A Graph maps each vertex (an opaque identifier, typically an airport
// code) to its outgoing neighbors with float64 weights. Graphs are either
// directed (flow, routing) or undirected (centrality, community
// detection); undirected graphs mirror every edge in both adjacency
// directions. There is exactly one edge per ordered vertex pair: adding a
// duplicate overwrites the previous weight (last write wins).
//
// All mutating and reading methods are guarded by a single sync.RWMutex,
// so concurrent reads are safe; algorithms that mutate a graph
// (Girvan–Newman, residual flow updates) own a private clone and never
// touch the caller's instance.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrEdgeNotFound   - requested edge does not exist.
//	ErrNegativeWeight - edge weight is negative.
//	ErrLoopNotAllowed - self-loop when loops are disabled.
//	ErrEmptyGraph     - algorithm invoked on a graph without vertices.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that a vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNegativeWeight indicates a negative edge weight; airnet graphs
	// model distances and capacities, both of which must be ≥ 0.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrEmptyGraph indicates an algorithm was invoked on a graph with no
	// vertices. Algorithm packages wrap this sentinel with their own prefix.
	ErrEmptyGraph = errors.New("core: graph is empty")
)

// Edge is a snapshot of a single weighted connection From→To.
// For undirected graphs, Edges() reports each pair once with From ≤ To.
type Edge struct {
	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the distance or capacity of the edge, always ≥ 0.
	Weight float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the orientation for all edges
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the in-memory flight-network graph.
//
// Storage is a nested adjacency map adj[from][to] = weight. Undirected
// graphs keep the mirror entry adj[to][from] in sync at all times, so
// neighbor iteration is symmetric without a second lookup structure.
type Graph struct {
	mu sync.RWMutex // guards vertices and adj

	directed   bool // edge orientation
	allowLoops bool // allow self-loops

	vertices map[string]struct{}           // vertex ID → presence
	adj      map[string]map[string]float64 // from → to → weight
}

// NewGraph creates an empty Graph with the given options.
// By default a Graph is undirected with self-loops disabled.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[string]struct{}),
		adj:      make(map[string]map[string]float64),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether edges are interpreted as one-way.
// Complexity: O(1)
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// Looped reports whether self-loops are permitted.
// Complexity: O(1)
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}
