package geo

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// EarthRadiusKm is the equatorial radius used for great-circle projection
const EarthRadiusKm = 6378.137

// EarthRadiusMeters is EarthRadiusKm in meters
const EarthRadiusMeters = EarthRadiusKm * 1000

// ErrInvalidConfiguration is returned when a computation is asked for an
// unsupported distance unit or lacks a collaborator the unit requires.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// ErrNonFinite is returned when an origin, distance or bearing is NaN or
// infinite.
var ErrNonFinite = errors.New("non-finite input")

// DistanceUnit selects how arrow distances are interpreted
type DistanceUnit string

const (
	// UnitKilometers measures distances in km along a great circle
	UnitKilometers DistanceUnit = "km"
	// UnitPixels measures distances in screen pixels
	UnitPixels DistanceUnit = "px"
)

// ParseDistanceUnit accepts "km" or "px" in any case
func ParseDistanceUnit(s string) (DistanceUnit, error) {
	switch u := DistanceUnit(strings.ToLower(strings.TrimSpace(s))); u {
	case UnitKilometers, UnitPixels:
		return u, nil
	}
	return "", fmt.Errorf("%w: unsupported distance unit %q", ErrInvalidConfiguration, s)
}

// IsPlanar reports whether distances are measured in screen space
func (u DistanceUnit) IsPlanar() bool {
	return DistanceUnit(strings.ToLower(string(u))) == UnitPixels
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

func radToDeg(rad float64) float64 {
	return rad * 180.0 / math.Pi
}

func clampUnit(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}

// DestinationPoint returns the point reached by travelling distance from
// origin at bearingDeg (clockwise from north in km mode, clockwise from east
// in px mode). The projector is only consulted in px mode.
func DestinationPoint(origin LatLon, distance, bearingDeg float64, unit DistanceUnit, proj Projector) (LatLon, error) {
	if !origin.IsFinite() || !isFinite(distance) || !isFinite(bearingDeg) {
		return LatLon{}, fmt.Errorf("%w: origin %v, distance %v, bearing %v", ErrNonFinite, origin, distance, bearingDeg)
	}

	switch DistanceUnit(strings.ToLower(string(unit))) {
	case UnitKilometers:
		if distance == 0 {
			return origin, nil
		}
		return greatCircleDestination(origin, distance, bearingDeg), nil

	case UnitPixels:
		if proj == nil {
			return LatLon{}, fmt.Errorf("%w: distance unit %q needs a pixel projector", ErrInvalidConfiguration, unit)
		}
		if distance == 0 {
			return origin, nil
		}
		rad := degToRad(bearingDeg)
		source := proj.ToPixel(origin)
		target := source.Add(Vec{X: math.Cos(rad) * distance, Y: math.Sin(rad) * distance})
		return proj.ToLatLon(target), nil
	}

	return LatLon{}, fmt.Errorf("%w: calculate end point undefined for distance unit %q", ErrInvalidConfiguration, unit)
}

// greatCircleDestination solves the spherical triangle pole/origin/destination
// with the law of cosines: b is the angular distance, a the colatitude of the
// destination and B the longitude offset.
func greatCircleDestination(origin LatLon, distanceKm, bearingDeg float64) LatLon {
	b := distanceKm / EarthRadiusKm
	bearing := degToRad(bearingDeg)
	colat := degToRad(90 - origin.Lat)

	a := math.Acos(clampUnit(math.Cos(b)*math.Cos(colat) +
		math.Sin(colat)*math.Sin(b)*math.Cos(bearing)))

	// Destination at a pole: longitude is undefined, keep the origin's
	sinA := math.Sin(a)
	if math.Abs(sinA) < 1e-12 {
		return LatLon{Lat: 90 - radToDeg(a), Lon: origin.Lon}
	}

	B := math.Asin(clampUnit(math.Sin(b) * math.Sin(bearing) / sinA))
	return LatLon{Lat: 90 - radToDeg(a), Lon: origin.Lon + radToDeg(B)}
}
