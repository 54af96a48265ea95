package render

import (
	"windarrows/internal/debug"
	"windarrows/internal/geo"
)

// MapRenderer renders basemap features, arrow primitives and the scale bar to a canvas
type MapRenderer struct {
	projection *geo.Projection
	features   map[geo.FeatureType][]*geo.Feature
	canvas     *Canvas
}

// NewMapRenderer creates a new map renderer
func NewMapRenderer(projection *geo.Projection, features map[geo.FeatureType][]*geo.Feature, canvas *Canvas) *MapRenderer {
	return &MapRenderer{
		projection: projection,
		features:   features,
		canvas:     canvas,
	}
}

// RenderMap draws all basemap features to the canvas
func (m *MapRenderer) RenderMap() {
	bounds := m.projection.GetBounds()

	// Coastlines first so borders and rivers stay visible on top
	m.renderFeatureType(geo.FeatureCoastline, bounds)
	m.renderFeatureType(geo.FeatureRiver, bounds)
	m.renderFeatureType(geo.FeatureBorder, bounds)
	m.renderFeatureType(geo.FeaturePlace, bounds)
}

// renderFeatureType renders all features of a specific type
func (m *MapRenderer) renderFeatureType(ftype geo.FeatureType, bounds *geo.Bounds) {
	features, exists := m.features[ftype]
	if !exists {
		return
	}

	visibleFeatures := geo.FilterByBounds(features, bounds)
	if debug.Enabled() {
		debug.Log("Rendering %d %s features (of %d total)", len(visibleFeatures), ftype, len(features))
	}

	for _, feature := range visibleFeatures {
		m.RenderFeature(feature)
	}
}

// RenderFeature draws a single basemap feature
func (m *MapRenderer) RenderFeature(feature *geo.Feature) {
	style := GetStyleForFeature(feature.Type)
	char := GetCharForFeature(feature.Type)

	if feature.IsPoint() {
		point := m.projection.Project(feature.Point.Lat, feature.Point.Lon)
		m.canvas.Set(point.X, point.Y, '+', style)

		// Label only when it fits before the right edge
		if feature.Name != "" && point.X < m.canvas.Width()-len(feature.Name)-1 {
			m.canvas.DrawText(point.X+1, point.Y, feature.Name, StyleLabel)
		}
	} else if feature.IsLine() {
		for i := 0; i < len(feature.Points)-1; i++ {
			p1 := m.projection.Project(feature.Points[i].Lat, feature.Points[i].Lon)
			p2 := m.projection.Project(feature.Points[i+1].Lat, feature.Points[i+1].Lon)
			m.canvas.DrawLine(p1.X, p1.Y, p2.X, p2.Y, char, style)
		}
	}
}

// RenderSurface draws the surface's primitives over the basemap
func (m *MapRenderer) RenderSurface(surface *Surface) {
	surface.Draw(m.canvas)
}

// RenderScaleBar draws a bar of width cells with its label above it.
// (x, y) is the left end of the bar.
func (m *MapRenderer) RenderScaleBar(x, y, width int, label string, style PathStyle) {
	if width <= 0 {
		return
	}
	s := style.StrokeStyle()
	m.canvas.DrawText(x, y-1, label, s)
	m.canvas.Set(x, y, '├', s)
	m.canvas.DrawHLine(x+1, y, width-2, '─', s)
	m.canvas.Set(x+width-1, y, '┤', s)
}

// UpdateProjection updates the renderer's projection
func (m *MapRenderer) UpdateProjection(projection *geo.Projection) {
	m.projection = projection
}

// UpdateCanvas updates the renderer's canvas
func (m *MapRenderer) UpdateCanvas(canvas *Canvas) {
	m.canvas = canvas
}

// Canvas returns the canvas being drawn on
func (m *MapRenderer) Canvas() *Canvas {
	return m.canvas
}
