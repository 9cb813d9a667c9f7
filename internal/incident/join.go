package incident

// JoinStats counts the outcome of the country code join.
type JoinStats struct {
	Joined  int
	Dropped int

	// Unmatched counts normalized country names with no ISO3 code.
	Unmatched map[string]int
}

// Join looks up departure and destination codes for every incident,
// normalizing incident country names through r. Rows left with a missing
// value (no code, or an empty input cell) are dropped. Surviving rows
// are numbered 0..N-1 in input order.
func Join(incidents []Incident, codes CountryCodes, r Replacer) ([]Record, JoinStats) {
	stats := JoinStats{Unmatched: map[string]int{}}
	out := make([]Record, 0, len(incidents))

	for _, inc := range incidents {
		departure := NormalizeCountry(inc.DepartureCountry, r)
		destination := NormalizeCountry(inc.DestinationCountry, r)

		departureCode, depOK := codes.Code(departure)
		if !depOK {
			stats.Unmatched[departure]++
		}
		destinationCode, dstOK := codes.Code(destination)
		if !dstOK {
			stats.Unmatched[destination]++
		}

		if !depOK || !dstOK || inc.Missing {
			stats.Dropped++
			continue
		}

		out = append(out, Record{
			AccidentID:      len(out),
			Date:            inc.Date.Format(OutputDateLayout),
			Category:        inc.Category,
			Nature:          inc.Nature,
			Fatalities:      inc.Fatalities,
			International:   inc.International,
			DepartureCode:   departureCode,
			DestinationCode: destinationCode,
		})
	}

	stats.Joined = len(out)
	return out, stats
}
