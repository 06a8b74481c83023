package flights

import "github.com/sandrokhizanishvili/airnet/core"

// BuildGraph assembles a core.Graph over airport codes from recs, one
// edge per origin→destination pair with Distance as the weight. When
// the same pair recurs the later record wins, matching core.AddEdge
// semantics. Records with an empty airport code on either side are
// skipped.
//
// Complexity: O(len(recs)).
func BuildGraph(recs []Record, directed bool) (*core.Graph, error) {
	g := core.NewGraph(core.WithDirected(directed))
	for _, r := range recs {
		if r.OriginAirport == "" || r.DestinationAirport == "" {
			continue
		}
		if r.OriginAirport == r.DestinationAirport {
			continue // loops carry no routing information
		}
		if err := g.AddEdge(r.OriginAirport, r.DestinationAirport, r.Distance); err != nil {
			return nil, err
		}
	}
	return g, nil
}
