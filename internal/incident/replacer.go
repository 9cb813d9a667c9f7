package incident

import "strings"

// Replacer maps a country name to its canonical spelling. Names without an
// entry map to themselves.
type Replacer map[string]string

// Lookup returns the replacement for name, or name itself when absent.
func (r Replacer) Lookup(name string) string {
	if v, ok := r[name]; ok {
		return v
	}
	return name
}

// With returns a copy of r with overrides applied on top.
func (r Replacer) With(overrides map[string]string) Replacer {
	out := make(Replacer, len(r)+len(overrides))
	for k, v := range r {
		out[k] = v
	}
	for k, v := range overrides {
		out[k] = v
	}
	return out
}

// NormalizeCountry rewrites " and " to " & " and then applies r.
func NormalizeCountry(name string, r Replacer) string {
	return r.Lookup(strings.ReplaceAll(name, " and ", " & "))
}

// IncidentCountries returns the built-in corrections for country names
// parsed from incident airport strings.
func IncidentCountries() Replacer {
	return Replacer{
		"U.S. Minor Outlying Islands":   "United States of America",
		"Curaçao":                       "Caribbean Netherlands",
		"Scottsdale Airport, AZ (KSDL)": "United States of America",
	}
}

// BoundaryCountries returns the built-in corrections for country names in
// the boundaries dataset, bringing them in line with the incident spelling.
func BoundaryCountries() Replacer {
	return Replacer{
		"Brunei Darussalam":                          "Brunei",
		"CÃ´te d'Ivoire":                             "Cote d'Ivoire",
		"Falkland Islands (Malvinas)":                "Falkland Islands",
		"Iran (Islamic Republic of)":                 "Iran",
		"Lao People's Democratic Republic":           "Laos",
		"Macao":                                      "Macau",
		"Micronesia (Federated States of)":           "Micronesia",
		"Moldova, Republic of":                       "Moldova",
		"Democratic People's Republic of Korea":      "North Korea",
		"The former Yugoslav Republic of Macedonia":  "North Macedonia",
		"Russian Federation":                         "Russia",
		"Saint Vincent and the Grenadines":           "Saint Vincent & the Grenadines",
		"Republic of Korea":                          "South Korea",
		"Saint Kitts and Nevis":                      "St. Kitts & Nevis",
		"Syrian Arab Republic":                       "Syria",
		"Timor-Leste":                                "East Timor",
		"United Republic of Tanzania":                "Tanzania",
		"Trinidad and Tobago":                        "Trinidad & Tobago",
		"Turks and Caicos Islands":                   "Turks & Caicos Islands",
		"U.K. of Great Britain and Northern Ireland": "United Kingdom",
		"United States Virgin Islands":               "U.S. Virgin Islands",
		"Sao Tome and Principe":                      "São Tomé & Príncipe",
		"Netherlands Antilles":                       "Caribbean Netherlands",
		"Swaziland":                                  "Eswatini",
		"Libyan Arab Jamahiriya":                     "Libya",
	}
}
