package incident

import (
	"io"

	"github.com/woozymasta/incidentmap/internal/geo"

	"github.com/rs/zerolog/log"
)

// Boundary feature properties used for the join.
const (
	PropertyName = "name"
	PropertyISO3 = "iso3"
)

// CountryCodes maps a normalized country name to its ISO3 code.
type CountryCodes map[string]string

// Code returns the ISO3 code for an already normalized name.
func (c CountryCodes) Code(name string) (string, bool) {
	code, ok := c[name]
	return code, ok
}

// NewCountryCodes builds the lookup from boundary features, renaming each
// feature's name through r first. Features without a name or ISO3 code are
// skipped. When two features normalize to the same name the first wins;
// the shadowed names are returned for diagnostics.
func NewCountryCodes(fc geo.FeatureCollection, r Replacer) (CountryCodes, []string) {
	codes := make(CountryCodes, len(fc.Features))
	var duplicates []string

	for _, f := range fc.Features {
		name, ok := f.StringProperty(PropertyName)
		if !ok {
			continue
		}
		iso3, ok := f.StringProperty(PropertyISO3)
		if !ok || iso3 == "" {
			log.Trace().Str("name", name).Msg("Boundary feature without ISO3 code skipped")
			continue
		}

		name = r.Lookup(name)
		if existing, ok := codes[name]; ok {
			log.Debug().
				Str("name", name).
				Str("kept", existing).
				Str("ignored", iso3).
				Msg("Duplicate boundary name")
			duplicates = append(duplicates, name)
			continue
		}
		codes[name] = iso3
	}

	return codes, duplicates
}

// LoadCountryCodes decodes a boundaries FeatureCollection and builds the lookup.
func LoadCountryCodes(boundaries io.Reader, r Replacer) (CountryCodes, []string, error) {
	fc, err := geo.DecodeFeatureCollection(boundaries)
	if err != nil {
		return nil, nil, err
	}
	codes, duplicates := NewCountryCodes(fc, r)
	return codes, duplicates, nil
}
