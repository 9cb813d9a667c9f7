// Package processor rewrites GeoJSON documents and saves the results to disk.
package processor

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/woozymasta/incidentmap/internal/geo"

	"github.com/rotisserie/eris"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

const (
	featuresPath    = "features"
	coordinatesPath = "geometry.coordinates"
)

// Structural errors. A document that trips one of these is never written.
var (
	ErrInvalidJSON        = errors.New("geojson: invalid JSON document")
	ErrMissingFeatures    = errors.New("geojson: missing features array")
	ErrMissingGeometry    = errors.New("geojson: feature has no geometry")
	ErrMissingCoordinates = errors.New("geojson: geometry has no coordinates")
	ErrInvalidCoordinates = errors.New("geojson: coordinates do not match geometry type")
)

// Stats summarises a rewind pass.
type Stats struct {
	Features      int
	Polygons      int
	MultiPolygons int
	Passthrough   int
	Rings         int

	// Rings whose orientation could be determined, counted by winding.
	CCWBefore int
	CCWAfter  int
}

// Rewind reverses the ring order of every Polygon and MultiPolygon feature
// in a FeatureCollection and returns the rewritten document (compact form).
// Object key order and number text are preserved; other geometry types are
// copied as is. data is never modified.
func Rewind(data []byte) ([]byte, Stats, error) {
	var stats Stats

	if !gjson.ValidBytes(data) {
		return nil, stats, ErrInvalidJSON
	}

	features := gjson.GetBytes(data, featuresPath)
	if !features.Exists() || !features.IsArray() {
		return nil, stats, ErrMissingFeatures
	}

	var (
		rewritten []string
		ferr      error
	)
	features.ForEach(func(_, f gjson.Result) bool {
		raw, err := rewindFeature(f, &stats)
		if err != nil {
			ferr = eris.Wrapf(err, "geojson: feature %d", stats.Features)
			return false
		}
		rewritten = append(rewritten, raw)
		stats.Features++
		return true
	})
	if ferr != nil {
		return nil, stats, ferr
	}

	out, err := sjson.SetRawBytes(data, featuresPath, []byte("["+strings.Join(rewritten, ",")+"]"))
	if err != nil {
		return nil, stats, eris.Wrap(err, "geojson: replace features")
	}

	return out, stats, nil
}

// rewindFeature returns the raw JSON of a single feature with its rings reversed.
func rewindFeature(f gjson.Result, stats *Stats) (string, error) {
	geometry := f.Get("geometry")
	if !geometry.Exists() {
		return "", ErrMissingGeometry
	}

	coords := geometry.Get("coordinates")
	hasCoords := coords.Exists() && coords.Type != gjson.Null

	var (
		rings    []geo.Ring
		reversed any
	)
	switch geometry.Get("type").String() {
	case geo.TypePolygon:
		if !hasCoords {
			return "", ErrMissingCoordinates
		}
		var p geo.Polygon
		if err := json.Unmarshal([]byte(coords.Raw), &p); err != nil {
			return "", eris.Wrap(ErrInvalidCoordinates, err.Error())
		}
		rp := geo.ReversePolygon(p)
		rings, reversed = p.Rings(), rp
		countWinding(rings, rp.Rings(), stats)
		stats.Polygons++

	case geo.TypeMultiPolygon:
		if !hasCoords {
			return "", ErrMissingCoordinates
		}
		var mp geo.MultiPolygon
		if err := json.Unmarshal([]byte(coords.Raw), &mp); err != nil {
			return "", eris.Wrap(ErrInvalidCoordinates, err.Error())
		}
		rmp := geo.ReverseMultiPolygon(mp)
		rings, reversed = mp.Rings(), rmp
		countWinding(rings, rmp.Rings(), stats)
		stats.MultiPolygons++

	default:
		stats.Passthrough++
		return f.Raw, nil
	}

	stats.Rings += len(rings)

	raw, err := json.Marshal(reversed)
	if err != nil {
		return "", eris.Wrap(err, "geojson: encode coordinates")
	}

	out, err := sjson.SetRaw(f.Raw, coordinatesPath, string(raw))
	if err != nil {
		return "", eris.Wrap(err, "geojson: replace coordinates")
	}
	return out, nil
}

func countWinding(before, after []geo.Ring, stats *Stats) {
	for _, r := range before {
		if ccw, ok := r.CounterClockwise(); ok && ccw {
			stats.CCWBefore++
		}
	}
	for _, r := range after {
		if ccw, ok := r.CounterClockwise(); ok && ccw {
			stats.CCWAfter++
		}
	}
}
