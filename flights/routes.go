package flights

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/sandrokhizanishvili/airnet/dijkstra"
)

// BestRoutes answers a city-to-city route query: it narrows recs to
// date (empty date means all dates), builds a directed graph over the
// surviving flights, and runs a shortest-path lookup for every
// (origin-airport, destination-airport) pair spanning the two cities.
// Pairs are visited in sorted order, so the returned table is
// deterministic. When either city has no matching airports the result
// is an empty table, not an error. A pair naming an airport absent from
// the graph yields a plain unrouted row, and an airport serving both
// cities yields the trivial zero-distance row for its own pair.
//
// Complexity: O(P · (E + V log V)) for P airport pairs.
func BestRoutes(recs []Record, originCity, destCity, date string) ([]RouteRow, error) {
	day := FilterByDate(recs, date)

	origins := AirportsByOriginCity(day, originCity)
	dests := AirportsByDestinationCity(day, destCity)
	if len(origins) == 0 || len(dests) == 0 {
		return nil, nil
	}

	g, err := BuildGraph(day, true)
	if err != nil {
		return nil, err
	}

	var rows []RouteRow
	for _, o := range origins {
		for _, d := range dests {
			// City matches can name airports that never made it into the
			// graph (every record mentioning them was degenerate); report
			// those pairs as unrouted instead of erroring out.
			if !g.HasVertex(o) || !g.HasVertex(d) {
				rows = append(rows, RouteRow{Origin: o, Destination: d})
				continue
			}
			res, err := dijkstra.Route(g, o, d)
			if err != nil {
				return nil, err
			}
			rows = append(rows, RouteRow{
				Origin:      o,
				Destination: d,
				Path:        res.Path,
				Distance:    res.Distance,
				Found:       res.Found,
			})
		}
	}
	return rows, nil
}

// RenderRoutes writes rows as an aligned text table. Routes print as
// "A -> B -> C"; missing routes print as "No route found".
func RenderRoutes(w io.Writer, rows []RouteRow) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Origin\tDestination\tBest route\tDistance")
	for _, r := range rows {
		if !r.Found {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Origin, r.Destination, "No route found", "-")
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%g\n",
			r.Origin, r.Destination, strings.Join(r.Path, " -> "), r.Distance)
	}
	return tw.Flush()
}
