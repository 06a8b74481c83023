package flow

import (
	"errors"
	"fmt"

	"github.com/sandrokhizanishvili/airnet/core"
)

// Sentinel errors for flow computations.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("flow: graph is nil")

	// ErrEmptyGraph indicates the capacity graph has no vertices.
	ErrEmptyGraph = fmt.Errorf("flow: %w", core.ErrEmptyGraph)

	// ErrNoEdges indicates the capacity graph has vertices but no edges,
	// so no flow network exists to cut.
	ErrNoEdges = errors.New("flow: graph has no edges")

	// ErrUndirectedGraph indicates the capacity graph is not directed.
	ErrUndirectedGraph = errors.New("flow: capacity graph must be directed")

	// ErrSourceNotFound is returned when the source vertex is missing.
	ErrSourceNotFound = errors.New("flow: source vertex not found")

	// ErrSinkNotFound is returned when the sink vertex is missing.
	ErrSinkNotFound = errors.New("flow: sink vertex not found")

	// ErrSameSourceSink is returned when source and sink coincide.
	ErrSameSourceSink = errors.New("flow: source and sink must differ")
)

// Options configures the max-flow engine.
//
// Epsilon – residual capacities ≤ Epsilon are treated as exhausted; this
// absorbs float64 subtraction noise when pushing flow. Default 1e-9.
// Verbose – if true, each augmentation is printed via fmt.Printf.
type Options struct {
	Epsilon float64
	Verbose bool
}

// Option is a functional option for configuring the flow engine.
type Option func(*Options)

// WithEpsilon overrides the capacity-exhaustion threshold.
// Non-positive values are ignored and the default is kept.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps > 0 {
			o.Epsilon = eps
		}
	}
}

// WithVerbose enables per-augmentation tracing to stdout.
func WithVerbose() Option {
	return func(o *Options) { o.Verbose = true }
}

// DefaultOptions returns the engine defaults: Epsilon 1e-9, no tracing.
func DefaultOptions() Options {
	return Options{Epsilon: 1e-9}
}

// FlowResult is the outcome of a max-flow computation.
type FlowResult struct {
	// MaxFlow is the total flow pushed from source to sink.
	MaxFlow float64

	// Residual is the residual capacity graph after the final
	// augmentation: forward capacities decremented, reverse capacities
	// incremented. Exposed for inspection and cut derivation.
	Residual *core.Graph
}

// CutResult is the outcome of a minimum-cut computation.
type CutResult struct {
	// MaxFlow is the max-flow value; by duality it equals the total
	// capacity of Edges.
	MaxFlow float64

	// Edges are the original capacity edges crossing from the
	// source-reachable side to the sink side, sorted by (From, To).
	// Removing them disconnects source from sink.
	Edges []core.Edge

	// SourceSide lists the vertices still reachable from the source in
	// the final residual graph, sorted lexicographically.
	SourceSide []string

	// Residual is the final residual graph, as in FlowResult.
	Residual *core.Graph
}
