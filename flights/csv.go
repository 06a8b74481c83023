package flights

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Column headers of the flight dataset. Matching is case-insensitive.
const (
	colFlyDate            = "Fly_date"
	colOriginAirport      = "Origin_airport"
	colDestinationAirport = "Destination_airport"
	colOriginCity         = "Origin_city"
	colDestinationCity    = "Destination_city"
	colDistance           = "Distance"
)

// LoadCSV reads flight records from r.
//
// The first row must be a header containing at least the six canonical
// columns (Fly_date, Origin_airport, Destination_airport, Origin_city,
// Destination_city, Distance); extra columns are ignored, and column
// order is free. Rows with an unparsable or negative distance yield
// ErrBadDistance with the offending row number.
//
// Complexity: O(rows).
func LoadCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // ragged trailing columns tolerated
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, fmt.Errorf("flights: read header: %w", err)
	}

	idx, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var recs []Record
	for row := 2; ; row++ {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("flights: read row %d: %w", row, err)
		}

		dist, err := strconv.ParseFloat(strings.TrimSpace(field(fields, idx[colDistance])), 64)
		if err != nil || dist < 0 {
			return nil, fmt.Errorf("%w: row %d value %q", ErrBadDistance, row, field(fields, idx[colDistance]))
		}

		recs = append(recs, Record{
			FlyDate:            strings.TrimSpace(field(fields, idx[colFlyDate])),
			OriginAirport:      strings.TrimSpace(field(fields, idx[colOriginAirport])),
			DestinationAirport: strings.TrimSpace(field(fields, idx[colDestinationAirport])),
			OriginCity:         strings.TrimSpace(field(fields, idx[colOriginCity])),
			DestinationCity:    strings.TrimSpace(field(fields, idx[colDestinationCity])),
			Distance:           dist,
		})
	}
	return recs, nil
}

// columnIndex maps each required column name to its position in header.
func columnIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, 6)
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}

	out := make(map[string]int, 6)
	for _, want := range []string{
		colFlyDate, colOriginAirport, colDestinationAirport,
		colOriginCity, colDestinationCity, colDistance,
	} {
		pos, ok := idx[strings.ToLower(want)]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, want)
		}
		out[want] = pos
	}
	return out, nil
}

// field returns fields[i], or "" when the row is shorter than the header.
func field(fields []string, i int) string {
	if i >= len(fields) {
		return ""
	}
	return fields[i]
}
