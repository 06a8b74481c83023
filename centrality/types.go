package centrality

import (
	"errors"
	"fmt"

	"github.com/sandrokhizanishvili/airnet/core"
)

// Sentinel errors for centrality computations.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("centrality: graph is nil")

	// ErrEmptyGraph indicates the graph has no vertices.
	ErrEmptyGraph = fmt.Errorf("centrality: %w", core.ErrEmptyGraph)

	// ErrDirectedGraph indicates edge betweenness was requested on a
	// directed graph; the pair-based accumulation assumes symmetric
	// neighborhoods.
	ErrDirectedGraph = errors.New("centrality: edge betweenness requires an undirected graph")

	// ErrBadDamping indicates a PageRank damping factor outside (0, 1).
	ErrBadDamping = errors.New("centrality: damping factor must be in (0, 1)")

	// ErrBadTolerance indicates a non-positive PageRank tolerance.
	ErrBadTolerance = errors.New("centrality: tolerance must be positive")

	// ErrBadMaxIterations indicates a non-positive PageRank iteration cap.
	ErrBadMaxIterations = errors.New("centrality: max iterations must be positive")
)

// EdgeKey identifies an undirected edge as a normalized vertex pair,
// U ≤ V, so each edge is scored once regardless of traversal direction.
type EdgeKey struct {
	U, V string
}

// NewEdgeKey builds the normalized key for the unordered pair {a, b}.
func NewEdgeKey(a, b string) EdgeKey {
	if a > b {
		a, b = b, a
	}

	return EdgeKey{U: a, V: b}
}

// PageRankOptions configures the power-iteration solver.
//
// Damping       – probability of following an outgoing edge (default 0.85).
// Tolerance     – convergence threshold on the largest per-vertex score
// change between iterations (default 1e-6).
// MaxIterations – iteration cap; hitting it surfaces Converged=false
// (default 100).
type PageRankOptions struct {
	Damping       float64
	Tolerance     float64
	MaxIterations int
}

// PageRankOption is a functional option for PageRank.
type PageRankOption func(*PageRankOptions)

// WithDamping sets the damping factor. Panics on values outside (0, 1);
// an invalid damping factor is a programming error, not a data error.
func WithDamping(d float64) PageRankOption {
	return func(o *PageRankOptions) {
		if d <= 0 || d >= 1 {
			panic(ErrBadDamping.Error())
		}
		o.Damping = d
	}
}

// WithTolerance sets the convergence threshold. Panics if tol ≤ 0.
func WithTolerance(tol float64) PageRankOption {
	return func(o *PageRankOptions) {
		if tol <= 0 {
			panic(ErrBadTolerance.Error())
		}
		o.Tolerance = tol
	}
}

// WithMaxIterations sets the iteration cap. Panics if n ≤ 0.
func WithMaxIterations(n int) PageRankOption {
	return func(o *PageRankOptions) {
		if n <= 0 {
			panic(ErrBadMaxIterations.Error())
		}
		o.MaxIterations = n
	}
}

// DefaultPageRankOptions returns the standard solver parameters:
// damping 0.85, tolerance 1e-6, max 100 iterations.
func DefaultPageRankOptions() PageRankOptions {
	return PageRankOptions{
		Damping:       0.85,
		Tolerance:     1e-6,
		MaxIterations: 100,
	}
}

// PageRankResult carries the scores plus convergence diagnostics.
// Converged=false is a warning, not a failure: Scores still holds the
// best-effort values after MaxIterations.
type PageRankResult struct {
	// Scores maps each vertex to its PageRank mass; the map sums to 1
	// within numerical tolerance.
	Scores map[string]float64

	// Iterations is the number of power iterations performed.
	Iterations int

	// Converged reports whether every score settled within Tolerance
	// before the iteration cap.
	Converged bool
}
