package flow_test

import (
	"context"
	"fmt"

	"github.com/sandrokhizanishvili/airnet/core"
	"github.com/sandrokhizanishvili/airnet/flow"
)

// ExampleEdmondsKarp demonstrates max-flow on a two-route network.
// Graph:
//
//	A→B(3)→D(2)
//	A→C(2)→D(3)
//
// Both middle layers bottleneck at 2, so the max flow is 4.
func ExampleEdmondsKarp() {
	g := core.NewGraph(core.WithDirected(true))
	g.AddEdge("A", "B", 3)
	g.AddEdge("A", "C", 2)
	g.AddEdge("B", "D", 2)
	g.AddEdge("C", "D", 3)

	fr, _ := flow.EdmondsKarp(context.Background(), g, "A", "D")
	fmt.Println(fr.MaxFlow)
	// Output:
	// 4
}

// ExampleMinCut partitions the same network: the cheapest way to
// separate A from D removes A→C and B→D, total capacity 4.
func ExampleMinCut() {
	g := core.NewGraph(core.WithDirected(true))
	g.AddEdge("A", "B", 3)
	g.AddEdge("A", "C", 2)
	g.AddEdge("B", "D", 2)
	g.AddEdge("C", "D", 3)

	cut, _ := flow.MinCut(context.Background(), g, "A", "D")
	for _, e := range cut.Edges {
		fmt.Printf("%s→%s (%.0f)\n", e.From, e.To, e.Weight)
	}
	// Output:
	// A→C (2)
	// B→D (2)
}
