package geo

import "fmt"

// FeatureType represents the type of basemap feature
type FeatureType int

const (
	FeatureCoastline FeatureType = iota
	FeatureBorder
	FeatureRiver
	FeaturePlace
)

// String returns a string representation of the feature type
func (f FeatureType) String() string {
	switch f {
	case FeatureCoastline:
		return "Coastline"
	case FeatureBorder:
		return "Border"
	case FeatureRiver:
		return "River"
	case FeaturePlace:
		return "Place"
	default:
		return "Unknown"
	}
}

// ParseFeatureType maps a basemap layer name to its feature type
func ParseFeatureType(s string) (FeatureType, error) {
	switch s {
	case "coast", "coastline":
		return FeatureCoastline, nil
	case "border", "borders":
		return FeatureBorder, nil
	case "river", "rivers":
		return FeatureRiver, nil
	case "place", "places":
		return FeaturePlace, nil
	}
	return FeatureCoastline, fmt.Errorf("unknown basemap layer: %q", s)
}

// LatLon represents a geographic coordinate in degrees
type LatLon struct {
	Lat float64
	Lon float64
}

// IsFinite reports whether neither component is NaN or infinite
func (l LatLon) IsFinite() bool {
	return isFinite(l.Lat) && isFinite(l.Lon)
}

// String formats the coordinate with hemisphere suffixes
func (l LatLon) String() string {
	lat, lon := l.Lat, l.Lon

	latDir := "N"
	if lat < 0 {
		latDir = "S"
		lat = -lat
	}

	lonDir := "E"
	if lon < 0 {
		lonDir = "W"
		lon = -lon
	}

	return fmt.Sprintf("%.4f*%s, %.4f*%s", lat, latDir, lon, lonDir)
}

// Vec is a position or offset in pixel space
type Vec struct {
	X float64
	Y float64
}

// Add returns the component-wise sum of v and w
func (v Vec) Add(w Vec) Vec {
	return Vec{X: v.X + w.X, Y: v.Y + w.Y}
}

// Feature represents a basemap feature (polyline or labelled point)
type Feature struct {
	Type   FeatureType // Type of feature
	Points []LatLon    // Polyline points (empty for point features)
	Point  *LatLon     // Single point (places)
	Name   string      // Label for places
}

// NewLineFeature creates a new line/polyline feature
func NewLineFeature(ftype FeatureType, points []LatLon) *Feature {
	return &Feature{
		Type:   ftype,
		Points: points,
	}
}

// NewPointFeature creates a new labelled point feature
func NewPointFeature(ftype FeatureType, point LatLon, name string) *Feature {
	return &Feature{
		Type:  ftype,
		Point: &point,
		Name:  name,
	}
}

// IsPoint returns true if this is a point feature
func (f *Feature) IsPoint() bool {
	return f.Point != nil
}

// IsLine returns true if this is a line/polyline feature
func (f *Feature) IsLine() bool {
	return len(f.Points) > 0
}
