package flights

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleCSV = `Origin_airport,Destination_airport,Origin_city,Destination_city,Distance,Fly_date
JFK,ORD,"New York, NY","Chicago, IL",740,2008-01-01
ORD,LAX,"Chicago, IL","Los Angeles, CA",1745,2008-01-01
JFK,LAX,"New York, NY","Los Angeles, CA",2475,2008-01-01
LGA,ORD,"New York, NY","Chicago, IL",733,2008-02-01
`

func TestLoadCSV(t *testing.T) {
	recs, err := LoadCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, recs, 4)

	require.Equal(t, Record{
		FlyDate:            "2008-01-01",
		OriginAirport:      "JFK",
		DestinationAirport: "ORD",
		OriginCity:         "New York, NY",
		DestinationCity:    "Chicago, IL",
		Distance:           740,
	}, recs[0])
}

func TestLoadCSV_ColumnOrderFree(t *testing.T) {
	csv := "Distance,Fly_date,Origin_airport,Destination_airport,Origin_city,Destination_city\n" +
		"100,2008-01-01,AAA,BBB,Alpha,Beta\n"
	recs, err := LoadCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Equal(t, "AAA", recs[0].OriginAirport)
	require.Equal(t, 100.0, recs[0].Distance)
}

func TestLoadCSV_Errors(t *testing.T) {
	_, err := LoadCSV(strings.NewReader(""))
	require.ErrorIs(t, err, ErrEmptyInput)

	_, err = LoadCSV(strings.NewReader("Origin_airport,Destination_airport\nA,B\n"))
	require.ErrorIs(t, err, ErrMissingColumn)

	bad := "Origin_airport,Destination_airport,Origin_city,Destination_city,Distance,Fly_date\n" +
		"A,B,X,Y,not-a-number,2008-01-01\n"
	_, err = LoadCSV(strings.NewReader(bad))
	require.ErrorIs(t, err, ErrBadDistance)

	neg := "Origin_airport,Destination_airport,Origin_city,Destination_city,Distance,Fly_date\n" +
		"A,B,X,Y,-5,2008-01-01\n"
	_, err = LoadCSV(strings.NewReader(neg))
	require.ErrorIs(t, err, ErrBadDistance)
}

func TestFilterByDate(t *testing.T) {
	recs, err := LoadCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	jan := FilterByDate(recs, "2008-01-01")
	require.Len(t, jan, 3)

	all := FilterByDate(recs, "")
	require.Len(t, all, 4)

	none := FilterByDate(recs, "1999-12-31")
	require.Empty(t, none)
}

func TestAirportsByCity(t *testing.T) {
	recs, err := LoadCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	// LGA and JFK both serve New York as origins; sorted and unique.
	require.Equal(t, []string{"JFK", "LGA"}, AirportsByOriginCity(recs, "New York, NY"))
	require.Equal(t, []string{"ORD"}, AirportsByDestinationCity(recs, "Chicago, IL"))
	require.Empty(t, AirportsByOriginCity(recs, "Nowhere"))
}

func TestBuildGraph(t *testing.T) {
	recs, err := LoadCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	g, err := BuildGraph(recs, true)
	require.NoError(t, err)
	require.True(t, g.Directed())
	require.Equal(t, 4, g.VertexCount()) // JFK, ORD, LAX, LGA
	require.Equal(t, 4, g.EdgeCount())
}

func TestBuildGraph_SkipsDegenerateRows(t *testing.T) {
	recs := []Record{
		{OriginAirport: "AAA", DestinationAirport: "AAA", Distance: 1},
		{OriginAirport: "", DestinationAirport: "BBB", Distance: 1},
		{OriginAirport: "AAA", DestinationAirport: "BBB", Distance: 2},
	}
	g, err := BuildGraph(recs, true)
	require.NoError(t, err)
	require.Equal(t, 1, g.EdgeCount())
	w, err := g.Weight("AAA", "BBB")
	require.NoError(t, err)
	require.Equal(t, 2.0, w)
}

func TestBuildGraph_LastRecordWins(t *testing.T) {
	recs := []Record{
		{OriginAirport: "AAA", DestinationAirport: "BBB", Distance: 10},
		{OriginAirport: "AAA", DestinationAirport: "BBB", Distance: 7},
	}
	g, err := BuildGraph(recs, true)
	require.NoError(t, err)
	w, err := g.Weight("AAA", "BBB")
	require.NoError(t, err)
	require.Equal(t, 7.0, w)
}

func TestBestRoutes(t *testing.T) {
	recs, err := LoadCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	rows, err := BestRoutes(recs, "New York, NY", "Los Angeles, CA", "2008-01-01")
	require.NoError(t, err)
	require.Len(t, rows, 1) // only JFK serves NY on that date; LGA is Feb

	require.Equal(t, "JFK", rows[0].Origin)
	require.Equal(t, "LAX", rows[0].Destination)
	require.True(t, rows[0].Found)
	require.Equal(t, []string{"JFK", "LAX"}, rows[0].Path) // direct 2475 < 740+1745
	require.Equal(t, 2475.0, rows[0].Distance)
}

func TestBestRoutes_NoMatchingCity(t *testing.T) {
	recs, err := LoadCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	rows, err := BestRoutes(recs, "Nowhere", "Chicago, IL", "")
	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestBestRoutes_Unreachable(t *testing.T) {
	recs := []Record{
		{FlyDate: "2008-01-01", OriginAirport: "AAA", OriginCity: "A-town",
			DestinationAirport: "BBB", DestinationCity: "B-town", Distance: 1},
		{FlyDate: "2008-01-01", OriginAirport: "CCC", OriginCity: "C-town",
			DestinationAirport: "DDD", DestinationCity: "D-town", Distance: 1},
	}
	rows, err := BestRoutes(recs, "A-town", "D-town", "")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.False(t, rows[0].Found)
	require.Nil(t, rows[0].Path)
}

func TestBestRoutes_AirportMissingFromGraph(t *testing.T) {
	// AAA appears only in a self-loop record, so the city index knows it
	// but BuildGraph never adds it. The pair must degrade to an unrouted
	// row, not fail the whole table.
	recs := []Record{
		{FlyDate: "2008-01-01", OriginAirport: "AAA", OriginCity: "A-town",
			DestinationAirport: "AAA", DestinationCity: "A-town", Distance: 0},
		{FlyDate: "2008-01-01", OriginAirport: "CCC", OriginCity: "C-town",
			DestinationAirport: "DDD", DestinationCity: "D-town", Distance: 1},
	}
	rows, err := BestRoutes(recs, "A-town", "D-town", "")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "AAA", rows[0].Origin)
	require.Equal(t, "DDD", rows[0].Destination)
	require.False(t, rows[0].Found)
	require.Nil(t, rows[0].Path)
}

func TestBestRoutes_SameAirportPair(t *testing.T) {
	// AAA serves Metro as both origin and destination, so the (AAA, AAA)
	// pair gets the trivial zero-distance row.
	recs := []Record{
		{OriginAirport: "AAA", OriginCity: "Metro",
			DestinationAirport: "BBB", DestinationCity: "Beta", Distance: 5},
		{OriginAirport: "CCC", OriginCity: "Gamma",
			DestinationAirport: "AAA", DestinationCity: "Metro", Distance: 7},
	}
	rows, err := BestRoutes(recs, "Metro", "Metro", "")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.True(t, rows[0].Found)
	require.Equal(t, []string{"AAA"}, rows[0].Path)
	require.Equal(t, 0.0, rows[0].Distance)
}

func TestRenderRoutes(t *testing.T) {
	rows := []RouteRow{
		{Origin: "JFK", Destination: "LAX", Path: []string{"JFK", "ORD", "LAX"}, Distance: 2485, Found: true},
		{Origin: "LGA", Destination: "LAX", Found: false},
	}
	var sb strings.Builder
	require.NoError(t, RenderRoutes(&sb, rows))

	out := sb.String()
	require.Contains(t, out, "JFK -> ORD -> LAX")
	require.Contains(t, out, "2485")
	require.Contains(t, out, "No route found")
}
