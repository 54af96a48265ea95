package arrow

import (
	"fmt"
	"math"

	"windarrows/internal/geo"
)

// Data is the record behind a single arrow. Bearing and Distance use NaN for
// "unset". Valid is derived by the entity's validator and is ignored on input.
type Data struct {
	ID       string
	Origin   *geo.LatLon // nil if the record has no position
	Bearing  float64     // degrees
	Distance float64     // in the entity's distance unit
	ColorKey any         // passed to the colour scheme
	Label    string
	Valid    bool
}

// NewData creates a positioned record
func NewData(id string, lat, lon, bearing, distance float64) Data {
	return Data{
		ID:       id,
		Origin:   &geo.LatLon{Lat: lat, Lon: lon},
		Bearing:  bearing,
		Distance: distance,
	}
}

// clone returns a copy that shares no memory with d
func (d Data) clone() Data {
	if d.Origin != nil {
		origin := *d.Origin
		d.Origin = &origin
	}
	return d
}

// String describes the record for popups and logs
func (d Data) String() string {
	name := d.Label
	if name == "" {
		name = d.ID
	}

	pos := "position unknown"
	if d.Origin != nil {
		pos = d.Origin.String()
	}

	if !d.Valid {
		return fmt.Sprintf("%s @ %s (invalid)", name, pos)
	}
	return fmt.Sprintf("%s @ %s bearing %s distance %s", name, pos, formatValue(d.Bearing), formatValue(d.Distance))
}

func formatValue(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return fmt.Sprintf("%.1f", v)
}

// Validator decides whether a record can be drawn as an arrow
type Validator func(Data) bool

// DefaultValidator requires a position and a numeric distance
func DefaultValidator(d Data) bool {
	return d.Origin != nil && d.Origin.IsFinite() && !math.IsNaN(d.Distance) && !math.IsInf(d.Distance, 0)
}

// unset reports whether a magnitude or direction should not produce an arrow
func unset(v float64) bool {
	return v == 0 || math.IsNaN(v) || math.IsInf(v, 0)
}
