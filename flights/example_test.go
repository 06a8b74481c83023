package flights_test

import (
	"os"
	"strings"

	"github.com/sandrokhizanishvili/airnet/flights"
)

// ExampleBestRoutes loads a tiny dataset and prints the best routes
// between two cities on a given day.
func ExampleBestRoutes() {
	data := `Origin_airport,Destination_airport,Origin_city,Destination_city,Distance,Fly_date
JFK,ORD,"New York, NY","Chicago, IL",740,2008-01-01
ORD,DEN,"Chicago, IL","Denver, CO",888,2008-01-01
DEN,LAX,"Denver, CO","Los Angeles, CA",862,2008-01-01
JFK,LAX,"New York, NY","Los Angeles, CA",2475,2008-01-01
`
	recs, err := flights.LoadCSV(strings.NewReader(data))
	if err != nil {
		panic(err)
	}

	rows, err := flights.BestRoutes(recs, "New York, NY", "Los Angeles, CA", "2008-01-01")
	if err != nil {
		panic(err)
	}
	if err := flights.RenderRoutes(os.Stdout, rows); err != nil {
		panic(err)
	}

	// Output:
	// Origin  Destination  Best route  Distance
	// JFK     LAX          JFK -> LAX  2475
}
