// Package flights is the tabular edge of airnet: it loads flight
// records, narrows them by date and city, builds core graphs from them,
// and renders best-route lookups as human-readable tables.
//
// The analysis packages (flow, dijkstra, centrality, community) never
// depend on this package or on any storage format — they consume the
// *core.Graph instances built here. Conversely, nothing here implements
// graph algorithms beyond delegating to dijkstra for routing.
//
// A Record mirrors one row of the flight dataset: origin and
// destination airport codes, their cities, the flight date, and the
// distance in miles. Duplicate (origin, destination) pairs are resolved
// by the graph layer with last-write-wins semantics.
package flights
