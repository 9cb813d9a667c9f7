package incident

import (
	"strings"
	"time"
)

const (
	// DateLayout matches incident dates such as "03-Jan-2022" or "3-jan-2022".
	DateLayout = "2-Jan-2006"
	// OutputDateLayout is the date format of the cleaned CSV.
	OutputDateLayout = "2006-01-02"

	airportSeparator  = " , "
	categorySeparator = " | "
)

// Aircraft nature categories.
const (
	NaturePassenger = "Passenger"
	NatureCargo     = "Cargo"
	NatureMilitary  = "Military"
	NatureOther     = "Other"
)

// unknownCountries mark airports whose country was not recorded.
var unknownCountries = map[string]bool{"?": true, "-": true}

// missingTokens are the cell values the upstream tooling reads as NA.
var missingTokens = map[string]bool{
	"": true, "#N/A": true, "#N/A N/A": true, "#NA": true,
	"-1.#IND": true, "-1.#QNAN": true, "-NaN": true, "-nan": true,
	"1.#IND": true, "1.#QNAN": true, "<NA>": true, "N/A": true,
	"NA": true, "NULL": true, "NaN": true, "None": true,
	"n/a": true, "nan": true, "null": true,
}

// IsMissing reports whether a cell holds no value: empty, blank or one
// of the usual NA tokens such as "NA", "N/A", "null" or "NaN".
func IsMissing(cell string) bool {
	return missingTokens[strings.TrimSpace(cell)]
}

// CleanStats counts what happened to the input rows during cleaning.
type CleanStats struct {
	Read                  int
	Kept                  int
	DroppedDate           int
	DroppedUnknownCountry int
}

// ParseDate parses an incident date. ok is false for empty or malformed values.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// CountryFromAirport returns the last " , " separated segment of an airport
// string, e.g. "JFK , United States of America" -> "United States of America".
func CountryFromAirport(airport string) string {
	parts := strings.Split(airport, airportSeparator)
	return parts[len(parts)-1]
}

// InternationalFlag is 0 when both countries are the same string, 1 otherwise.
func InternationalFlag(departure, destination string) int {
	if departure == destination {
		return 0
	}
	return 1
}

// SimplifyCategory keeps the text before the first " | ".
func SimplifyCategory(category string) string {
	head, _, _ := strings.Cut(category, categorySeparator)
	return head
}

// SimplifyNature collapses an aircraft nature into Passenger, Cargo,
// Military or Other.
func SimplifyNature(nature string) string {
	if strings.Contains(nature, NaturePassenger) {
		return NaturePassenger
	}
	switch nature {
	case NatureCargo, NatureMilitary:
		return nature
	}
	return NatureOther
}

// Clean drops rows without a usable date or with an unknown airport
// country and derives the country, international and simplified fields.
// Input order is preserved.
func Clean(rows []Raw) ([]Incident, CleanStats) {
	stats := CleanStats{Read: len(rows)}
	out := make([]Incident, 0, len(rows))

	for _, row := range rows {
		date, ok := ParseDate(row.Date)
		if !ok {
			stats.DroppedDate++
			continue
		}

		departure := CountryFromAirport(row.DepartureAirport)
		destination := CountryFromAirport(row.DestinationAirport)
		// Computed on the raw names, before any spelling normalization.
		international := InternationalFlag(departure, destination)

		if unknownCountries[departure] || unknownCountries[destination] {
			stats.DroppedUnknownCountry++
			continue
		}

		out = append(out, Incident{
			Date:               date,
			Category:           SimplifyCategory(row.Category),
			DepartureAirport:   row.DepartureAirport,
			DestinationAirport: row.DestinationAirport,
			Nature:             SimplifyNature(row.Nature),
			Fatalities:         strings.TrimSpace(row.Fatalities),
			DepartureCountry:   departure,
			DestinationCountry: destination,
			International:      international,
			Missing:            IsMissing(row.Category) || IsMissing(row.Fatalities),
		})
	}

	stats.Kept = len(out)
	return out, stats
}
