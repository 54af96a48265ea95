package render

import (
	"testing"

	"windarrows/internal/geo"
)

func TestRenderMap(t *testing.T) {
	proj := geo.NewProjection(0, 0, 69*5, 40, 20, 2.0)
	canvas := NewCanvas(40, 20)
	features := map[geo.FeatureType][]*geo.Feature{
		geo.FeatureRiver: {
			geo.NewLineFeature(geo.FeatureRiver, []geo.LatLon{{Lat: 0, Lon: -1}, {Lat: 0, Lon: 1}}),
		},
		geo.FeaturePlace: {
			geo.NewPointFeature(geo.FeaturePlace, geo.LatLon{Lat: 2, Lon: 0}, "Bern"),
			geo.NewPointFeature(geo.FeaturePlace, geo.LatLon{Lat: 40, Lon: 40}, "Far"),
		},
	}

	m := NewMapRenderer(proj, features, canvas)
	m.RenderMap()

	if got := canvas.Get(20, 10).Char; got != '~' {
		t.Errorf("river cell = %q, want ~", got)
	}
	if got := canvas.Get(20, 2).Char; got != '+' {
		t.Errorf("place marker = %q, want +", got)
	}
	if got := canvas.Get(21, 2).Char; got != 'B' {
		t.Errorf("place label starts with %q, want B", got)
	}
}

func TestRenderScaleBar(t *testing.T) {
	canvas := NewCanvas(20, 5)
	m := NewMapRenderer(geo.NewProjection(0, 0, 100, 20, 5, 2.0), nil, canvas)

	m.RenderScaleBar(2, 3, 6, "50 km", PathStyle{Stroke: true, Opacity: 1, Weight: 4})

	want := "├────┤"
	for i, r := range []rune(want) {
		if got := canvas.Get(2+i, 3).Char; got != r {
			t.Errorf("bar cell %d = %q, want %q", i, got, r)
		}
	}
	if got := canvas.Get(2, 2).Char; got != '5' {
		t.Errorf("label not drawn above the bar, got %q", got)
	}

	m.RenderScaleBar(2, 1, 0, "none", PathStyle{Stroke: true, Opacity: 1})
	if got := canvas.Get(2, 0).Char; got != ' ' {
		t.Errorf("zero width bar should draw nothing, got %q", got)
	}
}

func TestRenderSurface(t *testing.T) {
	proj := geo.NewProjection(0, 0, 69*5, 40, 20, 2.0)
	canvas := NewCanvas(40, 20)
	m := NewMapRenderer(proj, nil, canvas)

	s := NewSurface(proj)
	s.AddPolyline([][]geo.LatLon{{{Lat: -2, Lon: 0}, {Lat: 2, Lon: 0}}}, stroke(1, 2))
	m.RenderSurface(s)

	if got := m.Canvas().Get(20, 10).Char; got != '│' {
		t.Errorf("vertical arrow cell = %q, want │", got)
	}
}
