package flights

import "sort"

// FilterByDate returns the records whose FlyDate equals date exactly.
// An empty date keeps every record.
func FilterByDate(recs []Record, date string) []Record {
	if date == "" {
		return recs
	}
	var out []Record
	for _, r := range recs {
		if r.FlyDate == date {
			out = append(out, r)
		}
	}
	return out
}

// AirportsByOriginCity returns the sorted, de-duplicated airport codes
// serving city as an origin.
func AirportsByOriginCity(recs []Record, city string) []string {
	seen := make(map[string]struct{})
	for _, r := range recs {
		if r.OriginCity == city {
			seen[r.OriginAirport] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

// AirportsByDestinationCity returns the sorted, de-duplicated airport
// codes serving city as a destination.
func AirportsByDestinationCity(recs []Record, city string) []string {
	seen := make(map[string]struct{})
	for _, r := range recs {
		if r.DestinationCity == city {
			seen[r.DestinationAirport] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
