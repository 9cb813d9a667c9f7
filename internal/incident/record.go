// Package incident cleans the aircraft incident dataset and joins it to
// ISO3 country codes taken from a world boundaries GeoJSON file.
package incident

import "time"

// Input column names. "Aircaft_Nature" is spelled as in the upstream dataset.
const (
	ColumnDate               = "Incident_Date"
	ColumnCategory           = "Incident_Category"
	ColumnDepartureAirport   = "Departure_Airport"
	ColumnDestinationAirport = "Destination_Airport"
	ColumnNature             = "Aircaft_Nature"
	ColumnFatalities         = "Fatalities"
)

// RequiredColumns lists the input columns the joiner projects onto.
var RequiredColumns = []string{
	ColumnDate,
	ColumnCategory,
	ColumnDepartureAirport,
	ColumnDestinationAirport,
	ColumnNature,
	ColumnFatalities,
}

// Raw is one row of the incident CSV, restricted to the projected columns.
type Raw struct {
	Date               string `csv:"Incident_Date"`
	Category           string `csv:"Incident_Category"`
	DepartureAirport   string `csv:"Departure_Airport"`
	DestinationAirport string `csv:"Destination_Airport"`
	Nature             string `csv:"Aircaft_Nature"`
	Fatalities         string `csv:"Fatalities"`
}

// Incident is a cleaned row with its derived fields.
type Incident struct {
	Date               time.Time
	Category           string
	DepartureAirport   string
	DestinationAirport string
	Nature             string
	Fatalities         string

	// Countries as parsed from the airport strings, before normalization.
	DepartureCountry   string
	DestinationCountry string
	International      int

	// Missing is set when a projected input cell was empty.
	Missing bool
}

// Record is one row of the output CSV. Field order is column order.
type Record struct {
	AccidentID      int    `csv:"Accident_ID"`
	Date            string `csv:"Incident_Date"`
	Category        string `csv:"Incident_Category"`
	Nature          string `csv:"Aircaft_Nature"`
	Fatalities      string `csv:"Fatalities"`
	International   int    `csv:"International"`
	DepartureCode   string `csv:"Departure_Code"`
	DestinationCode string `csv:"Destination_Code"`
}
