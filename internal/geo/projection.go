package geo

import (
	"math"
)

const milesPerDegree = 69.0

// Point represents a screen cell coordinate
type Point struct {
	X int
	Y int
}

// Projector converts between geographic coordinates and pixel space.
// One pixel is one character cell wide; pixels are square, so a cell is
// aspectRatio pixels tall.
type Projector interface {
	ToPixel(LatLon) Vec
	ToLatLon(Vec) LatLon
}

// Projection handles conversion from lat/lon to screen coordinates
type Projection struct {
	centerLat    float64
	centerLon    float64
	radiusMiles  float64
	screenWidth  int
	screenHeight int
	aspectRatio  float64
	scaleX       float64
	scaleY       float64
}

// NewProjection creates an equirectangular projection for a given center point and radius
// The projection will fit a circle of radiusMiles around the center point into the screen dimensions
// aspectRatio compensates for character dimensions (typically 2.0 for characters twice as tall as wide)
func NewProjection(centerLat, centerLon, radiusMiles float64, screenWidth, screenHeight int, aspectRatio float64) *Projection {
	p := &Projection{
		centerLat:    centerLat,
		centerLon:    centerLon,
		radiusMiles:  radiusMiles,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		aspectRatio:  aspectRatio,
	}

	p.calculateScale()
	return p
}

// calculateScale computes the cells-per-degree scaling factors
func (p *Projection) calculateScale() {
	milesPerDegreeLon := milesPerDegree * math.Cos(p.centerLat*math.Pi/180.0)

	totalDegreesLat := 2 * p.radiusMiles / milesPerDegree
	totalDegreesLon := 2 * p.radiusMiles / milesPerDegreeLon

	effectiveHeight := float64(p.screenHeight) * p.aspectRatio
	scaleY := effectiveHeight / totalDegreesLat
	scaleX := float64(p.screenWidth) / totalDegreesLon

	if scaleX < scaleY {
		p.scaleX = scaleX
		p.scaleY = scaleX / p.aspectRatio
	} else {
		p.scaleX = scaleY * p.aspectRatio
		p.scaleY = scaleY
	}
}

// Project converts lat/lon to screen coordinates
// Returns screen coordinates with (0, 0) at top-left
func (p *Projection) Project(lat, lon float64) Point {
	return p.CellOf(p.ToPixel(LatLon{Lat: lat, Lon: lon}))
}

// CellOf returns the screen cell containing a pixel position
func (p *Projection) CellOf(v Vec) Point {
	return Point{
		X: int(math.Floor(v.X)),
		Y: int(math.Floor(v.Y / p.aspectRatio)),
	}
}

// CellCenter returns the pixel position of the middle of a screen cell
func (p *Projection) CellCenter(x, y int) Vec {
	return Vec{X: float64(x) + 0.5, Y: (float64(y) + 0.5) * p.aspectRatio}
}

// Unproject converts the center of a screen cell back to lat/lon
func (p *Projection) Unproject(x, y int) (lat, lon float64) {
	ll := p.ToLatLon(p.CellCenter(x, y))
	return ll.Lat, ll.Lon
}

// ToPixel converts a coordinate to pixel space (y grows downward)
func (p *Projection) ToPixel(ll LatLon) Vec {
	deltaLat := ll.Lat - p.centerLat
	deltaLon := ll.Lon - p.centerLon

	x := deltaLon*p.scaleX + float64(p.screenWidth)/2
	y := (-deltaLat*p.scaleY + float64(p.screenHeight)/2) * p.aspectRatio

	return Vec{X: x, Y: y}
}

// ToLatLon converts a pixel position back to a coordinate
func (p *Projection) ToLatLon(v Vec) LatLon {
	x := v.X - float64(p.screenWidth)/2
	y := v.Y/p.aspectRatio - float64(p.screenHeight)/2

	return LatLon{
		Lat: p.centerLat - y/p.scaleY,
		Lon: p.centerLon + x/p.scaleX,
	}
}

// IsInBounds checks if a lat/lon point would be visible on screen
func (p *Projection) IsInBounds(lat, lon float64) bool {
	point := p.Project(lat, lon)
	return point.X >= 0 && point.X < p.screenWidth &&
		point.Y >= 0 && point.Y < p.screenHeight
}

// UpdateCenter recalculates the projection with a new center point
func (p *Projection) UpdateCenter(lat, lon float64) {
	p.centerLat = lat
	p.centerLon = lon
	p.calculateScale()
}

// UpdateDimensions updates the screen dimensions and recalculates scaling
func (p *Projection) UpdateDimensions(width, height int) {
	p.screenWidth = width
	p.screenHeight = height
	p.calculateScale()
}

// UpdateRadius changes the visible radius (zoom) and recalculates scaling
func (p *Projection) UpdateRadius(radiusMiles float64) {
	p.radiusMiles = radiusMiles
	p.calculateScale()
}

// GetCenter returns the current center point
func (p *Projection) GetCenter() (lat, lon float64) {
	return p.centerLat, p.centerLon
}

// GetRadius returns the visible radius in miles
func (p *Projection) GetRadius() float64 {
	return p.radiusMiles
}

// PixelSize returns the screen size in pixels
func (p *Projection) PixelSize() (width, height float64) {
	return float64(p.screenWidth), float64(p.screenHeight) * p.aspectRatio
}

// AspectRatio returns the height of a cell in pixels
func (p *Projection) AspectRatio() float64 {
	return p.aspectRatio
}

// GetBounds returns the geographic bounds visible on screen
func (p *Projection) GetBounds() *Bounds {
	w, h := p.PixelSize()
	topLeft := p.ToLatLon(Vec{X: 0, Y: 0})
	bottomRight := p.ToLatLon(Vec{X: w, Y: h})

	return &Bounds{
		MinLat: math.Min(topLeft.Lat, bottomRight.Lat),
		MaxLat: math.Max(topLeft.Lat, bottomRight.Lat),
		MinLon: math.Min(topLeft.Lon, bottomRight.Lon),
		MaxLon: math.Max(topLeft.Lon, bottomRight.Lon),
	}
}
