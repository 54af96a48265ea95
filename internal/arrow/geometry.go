package arrow

import (
	"windarrows/internal/geo"
)

// Geometry is the drawable shape of one arrow
type Geometry struct {
	Line      [2]geo.LatLon // origin, tip
	Arrowhead []geo.LatLon  // left barb, tip, right barb[, left barb]
}

// Paths returns the shaft and the arrowhead as separate polyline paths
func (g Geometry) Paths() [][]geo.LatLon {
	return [][]geo.LatLon{g.Line[:], g.Arrowhead}
}

// Tip returns the point the arrow points at
func (g Geometry) Tip() geo.LatLon {
	return g.Line[1]
}

// BuildArrow computes the shaft from origin and the arrowhead at its tip.
// distance is stretched by cfg.StretchFactor; the arrowhead length is not.
func BuildArrow(origin geo.LatLon, distance, bearing float64, cfg Config, proj geo.Projector) (Geometry, error) {
	stretch := cfg.StretchFactor
	if stretch == 0 {
		stretch = 1
	}

	tip, err := geo.DestinationPoint(origin, distance*stretch, bearing, cfg.DistanceUnit, proj)
	if err != nil {
		return Geometry{}, err
	}

	left, err := geo.DestinationPoint(tip, cfg.ArrowheadLength, bearing-cfg.ArrowheadDegree, cfg.DistanceUnit, proj)
	if err != nil {
		return Geometry{}, err
	}
	right, err := geo.DestinationPoint(tip, cfg.ArrowheadLength, bearing+cfg.ArrowheadDegree, cfg.DistanceUnit, proj)
	if err != nil {
		return Geometry{}, err
	}

	head := []geo.LatLon{left, tip, right}
	if cfg.ArrowheadClosingLine {
		head = append(head, left)
	}

	return Geometry{
		Line:      [2]geo.LatLon{origin, tip},
		Arrowhead: head,
	}, nil
}
