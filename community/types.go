package community

import (
	"errors"
	"fmt"

	"github.com/sandrokhizanishvili/airnet/core"
)

// Sentinel errors for community detection.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("community: graph is nil")

	// ErrEmptyGraph indicates the graph has no vertices.
	ErrEmptyGraph = fmt.Errorf("community: %w", core.ErrEmptyGraph)

	// ErrDirectedGraph indicates a detector was invoked on a directed
	// graph; communities are defined over symmetric connectivity.
	ErrDirectedGraph = errors.New("community: graph must be undirected")

	// ErrBadMaxSweeps indicates a non-positive label-propagation sweep cap.
	ErrBadMaxSweeps = errors.New("community: max sweeps must be positive")
)

// GirvanNewmanResult is the outcome of edge-removal community detection.
type GirvanNewmanResult struct {
	// Communities are the connected components after the split; each
	// community and the list itself are sorted lexicographically.
	Communities [][]string

	// RemovedEdges lists the removed edges in removal order, with their
	// original weights — ready for a renderer to highlight.
	RemovedEdges []core.Edge
}

// LabelPropagationOptions configures the propagation loop.
//
// MaxSweeps caps full sweeps over the vertex set; propagation that is
// still changing labels at the cap surfaces Converged=false (default 100).
type LabelPropagationOptions struct {
	MaxSweeps int
}

// LabelPropagationOption is a functional option for LabelPropagation.
type LabelPropagationOption func(*LabelPropagationOptions)

// WithMaxSweeps sets the sweep cap. Panics if n ≤ 0.
func WithMaxSweeps(n int) LabelPropagationOption {
	return func(o *LabelPropagationOptions) {
		if n <= 0 {
			panic(ErrBadMaxSweeps.Error())
		}
		o.MaxSweeps = n
	}
}

// DefaultLabelPropagationOptions returns the default sweep cap of 100.
func DefaultLabelPropagationOptions() LabelPropagationOptions {
	return LabelPropagationOptions{MaxSweeps: 100}
}

// LabelPropagationResult is the outcome of label-propagation detection.
// Converged=false is a warning: the labels at the sweep cap are still
// grouped and returned as a best-effort partition.
type LabelPropagationResult struct {
	// Communities groups vertices sharing a final label; each community
	// and the list itself are sorted lexicographically.
	Communities [][]string

	// Labels maps every vertex to its final label.
	Labels map[string]string

	// Sweeps is the number of full sweeps performed, including the
	// final all-quiet sweep when propagation converged.
	Sweeps int

	// Converged reports whether a full sweep completed with no label
	// change before the cap.
	Converged bool
}
