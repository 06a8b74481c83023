package dijkstra_test

import (
	"fmt"
	"strings"

	"github.com/sandrokhizanishvili/airnet/core"
	"github.com/sandrokhizanishvili/airnet/dijkstra"
)

// ExampleRoute finds the cheapest routing between two airports.
func ExampleRoute() {
	g := core.NewGraph(core.WithDirected(true))
	g.AddEdge("JFK", "ORD", 740)
	g.AddEdge("ORD", "DEN", 888)
	g.AddEdge("DEN", "LAX", 862)
	g.AddEdge("JFK", "LAX", 2800)

	res, _ := dijkstra.Route(g, "JFK", "LAX")
	fmt.Println(strings.Join(res.Path, " -> "))
	fmt.Println(res.Distance)
	// Output:
	// JFK -> ORD -> DEN -> LAX
	// 2490
}

// ExampleAllShortestPaths enumerates every co-optimal route at once.
func ExampleAllShortestPaths() {
	g := core.NewGraph(core.WithDirected(true))
	g.AddEdge("A", "B", 1)
	g.AddEdge("A", "C", 1)
	g.AddEdge("B", "D", 1)
	g.AddEdge("C", "D", 1)

	res, _ := dijkstra.AllShortestPaths(g, "A")
	for _, p := range res.Paths["D"] {
		fmt.Println(strings.Join(p, " -> "))
	}
	// Output:
	// A -> B -> D
	// A -> C -> D
}
