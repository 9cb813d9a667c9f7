package incident

import (
	"io"
	"sort"
)

// Tables holds the two country name correction tables.
type Tables struct {
	// Incident renames countries parsed from airport strings.
	Incident Replacer
	// Boundary renames country names of the boundary features.
	Boundary Replacer
}

// DefaultTables returns the built-in correction tables.
func DefaultTables() Tables {
	return Tables{
		Incident: IncidentCountries(),
		Boundary: BoundaryCountries(),
	}
}

// Report describes a complete joiner run.
type Report struct {
	Clean      CleanStats
	Join       JoinStats
	Countries  int
	Duplicates []string
}

// UnmatchedNames returns the unmatched country names, most frequent first.
func (r Report) UnmatchedNames() []string {
	names := make([]string, 0, len(r.Join.Unmatched))
	for name := range r.Join.Unmatched {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		ci, cj := r.Join.Unmatched[names[i]], r.Join.Unmatched[names[j]]
		if ci != cj {
			return ci > cj
		}
		return names[i] < names[j]
	})
	return names
}

// Process reads the incident CSV and the boundaries GeoJSON and returns the
// cleaned, joined records. Nothing is written; any structural error aborts
// the whole run.
func Process(incidents, boundaries io.Reader, t Tables) ([]Record, Report, error) {
	var report Report

	rows, err := ReadCSV(incidents)
	if err != nil {
		return nil, report, err
	}

	codes, duplicates, err := LoadCountryCodes(boundaries, t.Boundary)
	if err != nil {
		return nil, report, err
	}
	report.Countries = len(codes)
	report.Duplicates = duplicates

	cleaned, cleanStats := Clean(rows)
	report.Clean = cleanStats

	records, joinStats := Join(cleaned, codes, t.Incident)
	report.Join = joinStats

	return records, report, nil
}
