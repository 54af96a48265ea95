package geo

import "math"

// Bounds represents a geographic bounding box
type Bounds struct {
	MinLat float64
	MaxLat float64
	MinLon float64
	MaxLon float64
}

// NewBounds creates a bounding box from center point and radius
func NewBounds(centerLat, centerLon, radiusMiles float64) *Bounds {
	// 1 degree latitude ≈ 69 miles
	// 1 degree longitude ≈ 69 * cos(latitude) miles
	latDegrees := radiusMiles / milesPerDegree
	lonDegrees := radiusMiles / (milesPerDegree * math.Cos(centerLat*math.Pi/180.0))

	return &Bounds{
		MinLat: centerLat - latDegrees,
		MaxLat: centerLat + latDegrees,
		MinLon: centerLon - lonDegrees,
		MaxLon: centerLon + lonDegrees,
	}
}

// Contains checks if a point is within the bounds
func (b *Bounds) Contains(lat, lon float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat &&
		lon >= b.MinLon && lon <= b.MaxLon
}

// NorthEast returns the north-east corner
func (b *Bounds) NorthEast() LatLon {
	return LatLon{Lat: b.MaxLat, Lon: b.MaxLon}
}

// SouthWest returns the south-west corner
func (b *Bounds) SouthWest() LatLon {
	return LatLon{Lat: b.MinLat, Lon: b.MinLon}
}

// Center returns the midpoint of the box
func (b *Bounds) Center() LatLon {
	return LatLon{
		Lat: (b.MinLat + b.MaxLat) / 2,
		Lon: (b.MinLon + b.MaxLon) / 2,
	}
}

// LonSpan returns the east-west extent in degrees
func (b *Bounds) LonSpan() float64 {
	return b.MaxLon - b.MinLon
}

// FilterByBounds filters features to only those within or intersecting the given bounds
func FilterByBounds(features []*Feature, bounds *Bounds) []*Feature {
	filtered := make([]*Feature, 0)

	for _, feature := range features {
		if feature.IsPoint() {
			if bounds.Contains(feature.Point.Lat, feature.Point.Lon) {
				filtered = append(filtered, feature)
			}
		} else if feature.IsLine() {
			// Any vertex inside is enough; the canvas clips the rest
			for _, point := range feature.Points {
				if bounds.Contains(point.Lat, point.Lon) {
					filtered = append(filtered, feature)
					break
				}
			}
		}
	}

	return filtered
}
