// Package airnet analyzes flight networks as weighted graphs — routes,
// capacities, influence, and community structure.
//
// 🚀 What is airnet?
//
//	A thread-safe toolkit for air-traffic graph analytics:
//		• Core primitives: build directed or undirected airport graphs safely under locks
//		• Shortest paths: single-target routes and all co-optimal path sets (Dijkstra)
//		• Flow: Edmonds–Karp max flow and the matching minimum cut partition
//		• Centrality: betweenness, edge betweenness, closeness, in-degree, PageRank
//		• Communities: Girvan–Newman splitting and label propagation
//		• Flights: CSV loading, date/city filtering, and best-route tables
//
// Everything is organized as one package per algorithm family:
//
//	core/       — fundamental Graph and Edge types & thread-safe primitives
//	dijkstra/   — single-target routing and all-shortest-paths enumeration
//	flow/       — Edmonds–Karp max flow and minimum cut
//	centrality/ — vertex and edge importance measures
//	community/  — connected components, Girvan–Newman, label propagation
//	flights/    — the tabular edge: CSV records in, route tables out
//	cmd/airnet  — CLI wiring the full pipeline over a flight dataset
//
// Quick ASCII example:
//
//	    JFK───ORD
//	     │     │
//	    ATL───DEN
//
//	four airports, four routes, one tiny network ready for analysis.
//
//	go get github.com/sandrokhizanishvili/airnet
package airnet
