package incident

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testJFK = "JFK , United States of America"
	testLAX = "Los Angeles International Airport , United States of America"
	testLHR = "LHR , United Kingdom"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   time.Time
		wantOK bool
	}{
		{"zero padded day", "03-Jan-2022", time.Date(2022, 1, 3, 0, 0, 0, 0, time.UTC), true},
		{"single digit day", "3-Jan-2022", time.Date(2022, 1, 3, 0, 0, 0, 0, time.UTC), true},
		{"lower case month", "15-mar-1999", time.Date(1999, 3, 15, 0, 0, 0, 0, time.UTC), true},
		{"surrounding spaces", " 28-Feb-2020 ", time.Date(2020, 2, 28, 0, 0, 0, 0, time.UTC), true},
		{"empty", "", time.Time{}, false},
		{"unknown day", "??-Jan-2022", time.Time{}, false},
		{"iso format", "2022-01-03", time.Time{}, false},
		{"day out of range", "31-Feb-2020", time.Time{}, false},
		{"full month name", "03-January-2022", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDate(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCountryFromAirport(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"name and country", testJFK, "United States of America"},
		{"several separators", "Paris , Charles de Gaulle , France", "France"},
		{"comma without spaces kept", "Scottsdale Airport, AZ (KSDL)", "Scottsdale Airport, AZ (KSDL)"},
		{"unknown", "? , ?", "?"},
		{"dash", "-", "-"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountryFromAirport(tt.in))
		})
	}
}

func TestInternationalFlag(t *testing.T) {
	assert.Equal(t, 1, InternationalFlag(CountryFromAirport(testJFK), CountryFromAirport(testLHR)))
	assert.Equal(t, 0, InternationalFlag(CountryFromAirport(testJFK), CountryFromAirport(testLAX)))
	// Compared as raw strings, so spelling variants of one country count as different.
	assert.Equal(t, 1, InternationalFlag("Trinidad and Tobago", "Trinidad & Tobago"))
}

func TestSimplifyCategory(t *testing.T) {
	assert.Equal(t, "Accident", SimplifyCategory("Accident | hull-loss"))
	assert.Equal(t, "Incident", SimplifyCategory("Incident | repairable-damage | extra"))
	assert.Equal(t, "Criminal occurrence", SimplifyCategory("Criminal occurrence"))
	assert.Equal(t, "A|B", SimplifyCategory("A|B"))
	assert.Equal(t, "", SimplifyCategory(" | Hijacking"))
}

func TestSimplifyNature(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Passenger - Scheduled", NaturePassenger},
		{"Domestic Non Scheduled Passenger", NaturePassenger},
		{"Passenger", NaturePassenger},
		{"Cargo", NatureCargo},
		{"Military", NatureMilitary},
		{"Unknown", NatureOther},
		{"Training", NatureOther},
		{"Cargo - Charter", NatureOther},
		{"passenger", NatureOther},
		{"", NatureOther},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SimplifyNature(tt.in))
		})
	}
}

func TestClean(t *testing.T) {
	rows := []Raw{
		{Date: "03-Jan-2022", Category: "Accident | hull-loss", DepartureAirport: testJFK, DestinationAirport: testLHR, Nature: "Passenger - Scheduled", Fatalities: "2"},
		{Date: "not a date", Category: "Accident", DepartureAirport: testJFK, DestinationAirport: testLHR, Nature: "Cargo", Fatalities: "0"},
		{Date: "04-Jan-2022", Category: "Incident", DepartureAirport: "? , ?", DestinationAirport: testLHR, Nature: "Cargo", Fatalities: "0"},
		{Date: "05-Jan-2022", Category: "Incident", DepartureAirport: testJFK, DestinationAirport: "-", Nature: "Cargo", Fatalities: "0"},
		{Date: "06-Jan-2022", Category: "Incident | minor", DepartureAirport: testJFK, DestinationAirport: testLAX, Nature: "Unknown", Fatalities: " 0 "},
		{Date: "07-Jan-2022", Category: "", DepartureAirport: testLHR, DestinationAirport: testLHR, Nature: "Military", Fatalities: ""},
	}

	got, stats := Clean(rows)

	assert.Equal(t, CleanStats{Read: 6, Kept: 3, DroppedDate: 1, DroppedUnknownCountry: 2}, stats)
	require.Len(t, got, 3)

	assert.Equal(t, Incident{
		Date:               time.Date(2022, 1, 3, 0, 0, 0, 0, time.UTC),
		Category:           "Accident",
		DepartureAirport:   testJFK,
		DestinationAirport: testLHR,
		Nature:             NaturePassenger,
		Fatalities:         "2",
		DepartureCountry:   "United States of America",
		DestinationCountry: "United Kingdom",
		International:      1,
	}, got[0])

	assert.Equal(t, "Incident", got[1].Category)
	assert.Equal(t, NatureOther, got[1].Nature)
	assert.Equal(t, "0", got[1].Fatalities)
	assert.Equal(t, 0, got[1].International)
	assert.False(t, got[1].Missing)

	assert.True(t, got[2].Missing)
	assert.Equal(t, NatureMilitary, got[2].Nature)
}

func TestIsMissing(t *testing.T) {
	for _, cell := range []string{"", "  ", "NA", "N/A", "n/a", "null", "NULL", "NaN", "nan", "None", "<NA>", "#N/A", " NA "} {
		assert.True(t, IsMissing(cell), "%q", cell)
	}
	for _, cell := range []string{"0", "Accident", "na", "Nan", "none", "?", "-"} {
		assert.False(t, IsMissing(cell), "%q", cell)
	}
}

func TestClean_NATokensMarkMissing(t *testing.T) {
	rows := []Raw{
		{Date: "01-Jan-2000", Category: "Accident", DepartureAirport: testJFK, DestinationAirport: testLHR, Nature: "Cargo", Fatalities: "NA"},
		{Date: "02-Jan-2000", Category: "N/A", DepartureAirport: testJFK, DestinationAirport: testLHR, Nature: "Cargo", Fatalities: "1"},
		{Date: "03-Jan-2000", Category: "Accident", DepartureAirport: testJFK, DestinationAirport: testLHR, Nature: "Cargo", Fatalities: "1"},
	}

	got, _ := Clean(rows)
	require.Len(t, got, 3)
	assert.True(t, got[0].Missing)
	assert.True(t, got[1].Missing)
	assert.False(t, got[2].Missing)

	records, stats := Join(got, testCodes, nil)
	require.Len(t, records, 1)
	assert.Equal(t, "2000-01-03", records[0].Date)
	assert.Equal(t, 2, stats.Dropped)
}

func TestClean_FlagComputedBeforeUnknownFilter(t *testing.T) {
	// Both unknown: equal raw strings, still dropped.
	got, stats := Clean([]Raw{{Date: "01-Jan-2000", DepartureAirport: "?", DestinationAirport: "?"}})
	assert.Empty(t, got)
	assert.Equal(t, 1, stats.DroppedUnknownCountry)
}

func TestClean_Empty(t *testing.T) {
	got, stats := Clean(nil)
	assert.Empty(t, got)
	assert.Equal(t, CleanStats{}, stats)
}
