// Package geo handles GeoJSON data structures and polygon ring winding.
package geo

import (
	"encoding/json"
	"io"

	"github.com/rotisserie/eris"
)

// Geometry types handled by the winding fixer.
const (
	TypePolygon      = "Polygon"
	TypeMultiPolygon = "MultiPolygon"
)

// FeatureCollection represents a collection of geographic features.
// Geometry is kept raw since only properties are read through this type.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// Feature represents a single geographic feature with geometry and properties.
type Feature struct {
	Properties map[string]interface{} `json:"properties"`
	Type       string                 `json:"type"`
	Geometry   json.RawMessage        `json:"geometry"`
}

// StringProperty returns a property as a string. Missing, null and
// non-string values report false.
func (f Feature) StringProperty(key string) (string, bool) {
	v, ok := f.Properties[key]
	if !ok || v == nil {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// DecodeFeatureCollection reads a whole GeoJSON FeatureCollection.
func DecodeFeatureCollection(r io.Reader) (FeatureCollection, error) {
	var fc FeatureCollection
	if err := json.NewDecoder(r).Decode(&fc); err != nil {
		return FeatureCollection{}, eris.Wrap(err, "geo: decode feature collection")
	}
	if fc.Features == nil {
		return FeatureCollection{}, eris.New("geo: feature collection has no features")
	}
	return fc, nil
}
