package geo

import (
	"encoding/json"
	"errors"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xy"
)

// ErrInvalidPosition is returned when a position is not an array of at
// least two numbers.
var ErrInvalidPosition = errors.New("geo: position is not an array of numbers")

// Position is a single coordinate tuple kept as its source JSON text,
// so number formatting survives a rewrite untouched.
type Position json.RawMessage

// MarshalJSON returns the position text as decoded.
func (p Position) MarshalJSON() ([]byte, error) {
	if p == nil {
		return []byte("null"), nil
	}
	return p, nil
}

// UnmarshalJSON keeps a copy of data after checking it holds at least
// two numeric ordinates. Anything else means the coordinates are nested
// at the wrong depth.
func (p *Position) UnmarshalJSON(data []byte) error {
	var ordinates []float64
	if err := json.Unmarshal(data, &ordinates); err != nil || len(ordinates) < 2 {
		return ErrInvalidPosition
	}
	*p = append((*p)[:0], data...)
	return nil
}

// Ring is an ordered sequence of positions.
type Ring []Position

// Polygon is an ordered sequence of rings (outer ring first).
type Polygon []Ring

// MultiPolygon is an ordered sequence of polygons.
type MultiPolygon []Polygon

// ReverseRing returns a new ring with the positions in reverse order.
func ReverseRing(r Ring) Ring {
	if r == nil {
		return nil
	}
	out := make(Ring, len(r))
	for i, p := range r {
		out[len(r)-1-i] = p
	}
	return out
}

// ReversePolygon returns a new polygon with every ring reversed.
func ReversePolygon(p Polygon) Polygon {
	if p == nil {
		return nil
	}
	out := make(Polygon, len(p))
	for i, r := range p {
		out[i] = ReverseRing(r)
	}
	return out
}

// ReverseMultiPolygon returns a new multipolygon with every ring of every
// polygon reversed.
func ReverseMultiPolygon(mp MultiPolygon) MultiPolygon {
	if mp == nil {
		return nil
	}
	out := make(MultiPolygon, len(mp))
	for i, p := range mp {
		out[i] = ReversePolygon(p)
	}
	return out
}

// CounterClockwise reports the ring orientation in the lon/lat plane.
// ok is false when the orientation cannot be determined: fewer than four
// positions or a position that is not a numeric pair.
func (r Ring) CounterClockwise() (ccw, ok bool) {
	if len(r) < 4 {
		return false, false
	}

	flat := make([]float64, 0, len(r)*2)
	for _, p := range r {
		var c []float64
		if err := json.Unmarshal([]byte(p), &c); err != nil || len(c) < 2 {
			return false, false
		}
		flat = append(flat, c[0], c[1])
	}

	return xy.IsRingCounterClockwise(geom.XY, flat), true
}

// Rings returns every ring of the polygon.
func (p Polygon) Rings() []Ring {
	return p
}

// Rings returns every ring of every polygon, in document order.
func (mp MultiPolygon) Rings() []Ring {
	var rings []Ring
	for _, p := range mp {
		rings = append(rings, p...)
	}
	return rings
}
