package flights

import "errors"

// Sentinel errors for flight-record loading.
var (
	// ErrEmptyInput indicates a CSV stream with no header row.
	ErrEmptyInput = errors.New("flights: input has no header row")

	// ErrMissingColumn indicates the CSV header lacks a required column.
	ErrMissingColumn = errors.New("flights: required column missing")

	// ErrBadDistance indicates a Distance cell that does not parse as a
	// non-negative number.
	ErrBadDistance = errors.New("flights: bad distance value")
)

// Record is one row of the flight dataset.
type Record struct {
	// FlyDate is the departure date in YYYY-MM-DD form.
	FlyDate string

	// OriginAirport and DestinationAirport are airport codes; they are
	// the graph vertices.
	OriginAirport      string
	DestinationAirport string

	// OriginCity and DestinationCity support city-level route queries;
	// the graph itself never sees them.
	OriginCity      string
	DestinationCity string

	// Distance is the flight distance, used as edge weight and capacity.
	Distance float64
}

// RouteRow is one entry of a best-route table: the cheapest path
// between a specific origin/destination airport pair, or an explicit
// no-route marker.
type RouteRow struct {
	// Origin and Destination are the airport codes of the query pair.
	Origin      string
	Destination string

	// Path is the best route, inclusive of both endpoints; nil when no
	// route exists.
	Path []string

	// Distance is the total weight along Path; meaningless when Found
	// is false.
	Distance float64

	// Found reports whether any route exists.
	Found bool
}
