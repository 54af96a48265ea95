package render

import (
	"math"

	"windarrows/internal/geo"
)

const metersPerDegreeLat = 111320.0

// Surface is the terminal map's drawing target. It owns the primitives added
// to it, exposes the projection and viewport, and dispatches viewport events.
type Surface struct {
	*Events
	projection *geo.Projection
	layers     []Renderable
}

// NewSurface creates an empty surface over a projection
func NewSurface(projection *geo.Projection) *Surface {
	return &Surface{
		Events:     NewEvents(),
		projection: projection,
	}
}

// Projection returns the projection used to place primitives
func (s *Surface) Projection() *geo.Projection {
	return s.projection
}

// ToPixel converts a coordinate to pixel space
func (s *Surface) ToPixel(ll geo.LatLon) geo.Vec {
	return s.projection.ToPixel(ll)
}

// ToLatLon converts a pixel position to a coordinate
func (s *Surface) ToLatLon(v geo.Vec) geo.LatLon {
	return s.projection.ToLatLon(v)
}

// Bounds returns the visible geographic bounds
func (s *Surface) Bounds() *geo.Bounds {
	return s.projection.GetBounds()
}

// Size returns the viewport size in pixels
func (s *Surface) Size() (width, height float64) {
	return s.projection.PixelSize()
}

// Center returns the viewport center
func (s *Surface) Center() geo.LatLon {
	lat, lon := s.projection.GetCenter()
	return geo.LatLon{Lat: lat, Lon: lon}
}

// AddPolyline adds a polyline on top of the existing primitives
func (s *Surface) AddPolyline(paths [][]geo.LatLon, style PathStyle) Polyline {
	p := &polyline{baseLayer: baseLayer{style: style}, paths: copyPaths(paths)}
	s.layers = append(s.layers, p)
	return p
}

// AddCircle adds a circle marker on top of the existing primitives
func (s *Surface) AddCircle(center geo.LatLon, radius float64, meters bool, style PathStyle) Circle {
	c := &circle{baseLayer: baseLayer{style: style}, center: center, radius: radius, meters: meters}
	s.layers = append(s.layers, c)
	return c
}

// RemoveLayer removes a primitive; unknown primitives are ignored
func (s *Surface) RemoveLayer(r Renderable) {
	for i, l := range s.layers {
		if l == r {
			s.layers = append(s.layers[:i:i], s.layers[i+1:]...)
			return
		}
	}
}

// Layers returns the primitives in drawing order
func (s *Surface) Layers() []Renderable {
	return append([]Renderable(nil), s.layers...)
}

// Draw paints every visible primitive onto the canvas
func (s *Surface) Draw(canvas *Canvas) {
	for _, l := range s.layers {
		switch l := l.(type) {
		case *polyline:
			s.drawPolyline(canvas, l)
		case *circle:
			s.drawCircle(canvas, l)
		}
	}
}

func (s *Surface) drawPolyline(canvas *Canvas, p *polyline) {
	if !p.style.Visible() {
		return
	}
	style := p.style.StrokeStyle()

	for _, path := range p.paths {
		for i := 0; i < len(path)-1; i++ {
			if !path[i].IsFinite() || !path[i+1].IsFinite() {
				continue
			}
			a := s.projection.Project(path[i].Lat, path[i].Lon)
			b := s.projection.Project(path[i+1].Lat, path[i+1].Lon)
			canvas.DrawLine(a.X, a.Y, b.X, b.Y, lineRune(s.ToPixel(path[i]), s.ToPixel(path[i+1])), style)
		}
	}
}

// lineRune picks a glyph matching the on-screen slope of a segment
func lineRune(a, b geo.Vec) rune {
	dx := b.X - a.X
	dy := b.Y - a.Y
	if dx == 0 && dy == 0 {
		return '·'
	}

	slope := math.Abs(dy) / math.Max(math.Abs(dx), 1e-9)
	switch {
	case slope < 0.4:
		return '─'
	case slope > 2.5:
		return '│'
	case (dx > 0) == (dy > 0):
		return '\\'
	default:
		return '/'
	}
}

// radiusPixels converts a circle's radius to pixels at its latitude
func (s *Surface) radiusPixels(c *circle) float64 {
	if !c.meters {
		return c.radius
	}
	center := s.ToPixel(c.center)
	edge := s.ToPixel(geo.LatLon{Lat: c.center.Lat + c.radius/metersPerDegreeLat, Lon: c.center.Lon})
	return math.Abs(center.Y - edge.Y)
}

func (s *Surface) drawCircle(canvas *Canvas, c *circle) {
	if !c.style.Visible() {
		return
	}

	char, style := 'o', c.style.StrokeStyle()
	if c.style.Fill && c.style.FillOpacity > 0 {
		char, style = '●', c.style.FillStyle()
	}

	centerPx := s.ToPixel(c.center)
	r := s.radiusPixels(c)
	if !c.center.IsFinite() || math.IsNaN(r) || math.IsInf(r, 0) {
		return
	}
	cell := s.projection.CellOf(centerPx)
	canvas.Set(cell.X, cell.Y, char, style)

	aspect := s.projection.AspectRatio()
	rx := int(math.Ceil(r))
	ry := int(math.Ceil(r / aspect))
	for y := cell.Y - ry; y <= cell.Y+ry; y++ {
		for x := cell.X - rx; x <= cell.X+rx; x++ {
			if distance(s.projection.CellCenter(x, y), centerPx) <= r {
				canvas.Set(x, y, char, style)
			}
		}
	}
}

// HitTest returns the topmost primitive with a popup under screen cell
// (x, y). Hidden primitives still count, which is what lets wide invisible
// lines capture clicks.
func (s *Surface) HitTest(x, y int) (Renderable, bool) {
	p := s.projection.CellCenter(x, y)
	// Half a cell in every direction always hits
	slack := math.Max(0.5, s.projection.AspectRatio()/2)

	for i := len(s.layers) - 1; i >= 0; i-- {
		l := s.layers[i]
		if l.Popup() == "" {
			continue
		}

		switch l := l.(type) {
		case *polyline:
			reach := math.Max(l.style.Weight/2, slack)
			for _, path := range l.paths {
				for j := 0; j < len(path)-1; j++ {
					if segmentDistance(p, s.ToPixel(path[j]), s.ToPixel(path[j+1])) <= reach {
						return l, true
					}
				}
			}
		case *circle:
			if distance(p, s.ToPixel(l.center)) <= math.Max(s.radiusPixels(l), slack) {
				return l, true
			}
		}
	}
	return nil, false
}

func distance(a, b geo.Vec) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// segmentDistance returns the distance from p to the segment ab
func segmentDistance(p, a, b geo.Vec) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return distance(p, a)
	}

	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
	t = math.Max(0, math.Min(1, t))
	return distance(p, geo.Vec{X: a.X + t*dx, Y: a.Y + t*dy})
}
