package render

import "windarrows/internal/geo"

// Renderable is a drawable primitive owned by a Target
type Renderable interface {
	SetStyle(PathStyle)
	Style() PathStyle
	BindPopup(content string)
	Popup() string
}

// Polyline is one or more connected coordinate paths sharing a style
type Polyline interface {
	Renderable
	SetPaths(paths [][]geo.LatLon)
	Paths() [][]geo.LatLon
}

// Circle is a filled marker. Its radius is in meters when Meters is true,
// otherwise in pixels.
type Circle interface {
	Renderable
	SetCenter(geo.LatLon)
	Center() geo.LatLon
	SetRadius(float64)
	Radius() float64
	Meters() bool
}

// Target creates and removes primitives on a drawing surface
type Target interface {
	AddPolyline(paths [][]geo.LatLon, style PathStyle) Polyline
	AddCircle(center geo.LatLon, radius float64, meters bool, style PathStyle) Circle
	RemoveLayer(Renderable)
}

type baseLayer struct {
	style PathStyle
	popup string
}

func (b *baseLayer) SetStyle(s PathStyle)     { b.style = s }
func (b *baseLayer) Style() PathStyle         { return b.style }
func (b *baseLayer) BindPopup(content string) { b.popup = content }
func (b *baseLayer) Popup() string            { return b.popup }

type polyline struct {
	baseLayer
	paths [][]geo.LatLon
}

func (p *polyline) SetPaths(paths [][]geo.LatLon) { p.paths = copyPaths(paths) }
func (p *polyline) Paths() [][]geo.LatLon         { return copyPaths(p.paths) }

type circle struct {
	baseLayer
	center geo.LatLon
	radius float64
	meters bool
}

func (c *circle) SetCenter(ll geo.LatLon) { c.center = ll }
func (c *circle) Center() geo.LatLon      { return c.center }
func (c *circle) SetRadius(r float64)     { c.radius = r }
func (c *circle) Radius() float64         { return c.radius }
func (c *circle) Meters() bool            { return c.meters }

func copyPaths(paths [][]geo.LatLon) [][]geo.LatLon {
	out := make([][]geo.LatLon, len(paths))
	for i, path := range paths {
		out[i] = append([]geo.LatLon(nil), path...)
	}
	return out
}
