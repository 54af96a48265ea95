package ui

import (
	"math"

	"windarrows/internal/arrow"
	"windarrows/internal/debug"
	"windarrows/internal/geo"
	"windarrows/internal/render"
	"windarrows/internal/scale"

	"github.com/gdamore/tcell/v2"
)

const (
	minRadiusMiles = 5
	maxRadiusMiles = 6000
	maxCenterLat   = 85
)

// MapView displays the basemap, the arrow layer and the scale bar. Its
// surface is the host the arrows and the scale control are attached to.
type MapView struct {
	renderer    *render.MapRenderer
	projection  *geo.Projection
	surface     *render.Surface
	canvas      *render.Canvas
	layer       *arrow.Layer
	scale       *scale.Control
	width       int
	height      int
	aspectRatio float64
}

// NewMapView creates a map view centered on the arrow data and attaches the
// layer and scale control to it
func NewMapView(width, height int, features map[geo.FeatureType][]*geo.Feature, layer *arrow.Layer, scaleOpts scale.Options, radiusMiles float64, aspectRatio float64) *MapView {
	center, ok := dataCenter(layer)
	if !ok {
		center = geo.LatLon{Lat: 46.8, Lon: 8.2}
	}

	projection := geo.NewProjection(center.Lat, center.Lon, radiusMiles, width, height, aspectRatio)
	canvas := render.NewCanvas(width, height)
	renderer := render.NewMapRenderer(projection, features, canvas)

	m := &MapView{
		renderer:    renderer,
		projection:  projection,
		surface:     render.NewSurface(projection),
		canvas:      canvas,
		layer:       layer,
		scale:       scale.NewControl(scaleOpts),
		width:       width,
		height:      height,
		aspectRatio: aspectRatio,
	}

	debug.LogErrors("Attaching arrows", layer.Attach(m.surface))
	m.scale.Attach(m.surface)

	debug.Log("Map centered at %s, %d arrows", center, layer.Count())
	return m
}

// dataCenter returns the middle of the bounding box of all positioned records
func dataCenter(layer *arrow.Layer) (geo.LatLon, bool) {
	found := false
	var minLat, maxLat, minLon, maxLon float64

	for _, e := range layer.All() {
		origin := e.Data().Origin
		if origin == nil {
			continue
		}
		if !found {
			minLat, maxLat, minLon, maxLon = origin.Lat, origin.Lat, origin.Lon, origin.Lon
			found = true
			continue
		}
		minLat = math.Min(minLat, origin.Lat)
		maxLat = math.Max(maxLat, origin.Lat)
		minLon = math.Min(minLon, origin.Lon)
		maxLon = math.Max(maxLon, origin.Lon)
	}

	return geo.LatLon{Lat: (minLat + maxLat) / 2, Lon: (minLon + maxLon) / 2}, found
}

// Draw renders the map view to the screen
func (m *MapView) Draw(screen tcell.Screen, selected *arrow.Entity) {
	m.canvas.Clear()

	m.renderer.RenderMap()

	m.renderer.RenderSurface(m.surface)

	if selected != nil {
		if origin := selected.Data().Origin; origin != nil {
			p := m.projection.Project(origin.Lat, origin.Lon)
			cell := m.canvas.Get(p.X, p.Y)
			m.canvas.Set(p.X, p.Y, cell.Char, render.StyleSelected)
		}
	}

	m.drawScale()

	m.canvas.Blit(screen, 0, 0)
}

// drawScale places the scale bar in the corner chosen by its options
func (m *MapView) drawScale() {
	st := m.scale.State()
	if st.WidthPx <= 0 {
		return
	}

	x, y := 1, m.height-2
	switch m.scale.Options().Position {
	case scale.BottomRight:
		x = m.width - st.WidthPx - 1
	case scale.TopLeft:
		y = 2
	case scale.TopRight:
		x, y = m.width-st.WidthPx-1, 2
	}
	m.renderer.RenderScaleBar(x, y, st.WidthPx, st.Label, m.scale.Options().LineStyle)
}

// moved notifies listeners after the center changed
func (m *MapView) moved() {
	m.surface.Fire(render.EventMove)
	m.surface.Fire(render.EventMoveEnd)
}

// reset notifies listeners after the scale of the view changed
func (m *MapView) reset() {
	m.moved()
	m.surface.Fire(render.EventViewReset)
}

// Pan moves the center by dx, dy screen cells
func (m *MapView) Pan(dx, dy int) {
	w, h := m.projection.PixelSize()
	target := m.projection.ToLatLon(geo.Vec{
		X: w/2 + float64(dx),
		Y: h/2 + float64(dy)*m.aspectRatio,
	})
	target.Lat = math.Max(-maxCenterLat, math.Min(maxCenterLat, target.Lat))

	m.projection.UpdateCenter(target.Lat, target.Lon)
	m.moved()
	debug.Log("Map panned to %s", target)
}

// CenterOn centers the map on an arrow's origin
func (m *MapView) CenterOn(e *arrow.Entity) {
	if e == nil || e.Data().Origin == nil {
		return
	}

	origin := *e.Data().Origin
	m.projection.UpdateCenter(origin.Lat, origin.Lon)
	m.moved()

	debug.Log("Map re-centered on arrow %s at %s", e.Data().ID, origin)
}

// ZoomIn decreases the radius (zooms in)
func (m *MapView) ZoomIn() {
	m.SetRadius(math.Max(m.projection.GetRadius()*0.75, minRadiusMiles))
}

// ZoomOut increases the radius (zooms out)
func (m *MapView) ZoomOut() {
	m.SetRadius(math.Min(m.projection.GetRadius()*1.33, maxRadiusMiles))
}

// SetRadius updates the map radius and redraws everything tied to the scale
func (m *MapView) SetRadius(radiusMiles float64) {
	m.projection.UpdateRadius(radiusMiles)
	m.reset()
	debug.Log("Map radius changed to %.0f miles", radiusMiles)
}

// GetRadius returns the current map radius
func (m *MapView) GetRadius() float64 {
	return m.projection.GetRadius()
}

// UpdateDimensions updates the view dimensions when the screen is resized
func (m *MapView) UpdateDimensions(width, height int) {
	m.width = width
	m.height = height

	m.projection.UpdateDimensions(width, height)

	m.canvas = render.NewCanvas(width, height)
	m.renderer.UpdateCanvas(m.canvas)
	m.reset()
}

// EntityAt returns the arrow drawn under screen cell (x, y)
func (m *MapView) EntityAt(x, y int) (*arrow.Entity, bool) {
	hit, ok := m.surface.HitTest(x, y)
	if !ok {
		return nil, false
	}

	roles := []arrow.Role{arrow.RoleHitLine, arrow.RoleSourceMarker, arrow.RoleFallbackPoint}
	for _, e := range m.layer.All() {
		for _, role := range roles {
			if h, ok := e.Handle(role); ok && h == hit {
				return e, true
			}
		}
	}
	return nil, false
}

// Surface returns the drawing target arrows are attached to
func (m *MapView) Surface() *render.Surface {
	return m.surface
}

// Scale returns the scale control
func (m *MapView) Scale() *scale.Control {
	return m.scale
}

// GetProjection returns the current projection
func (m *MapView) GetProjection() *geo.Projection {
	return m.projection
}
