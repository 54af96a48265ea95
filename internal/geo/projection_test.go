package geo

import (
	"math"
	"testing"
)

func TestProjectionRoundTrip(t *testing.T) {
	p := NewProjection(39.8, -98.6, 150, 120, 40, 2.0)

	points := []LatLon{{39.8, -98.6}, {41, -97}, {38.2, -101.3}}
	for _, ll := range points {
		back := p.ToLatLon(p.ToPixel(ll))
		if math.Abs(back.Lat-ll.Lat) > 1e-9 || math.Abs(back.Lon-ll.Lon) > 1e-9 {
			t.Errorf("round trip %v = %v", ll, back)
		}
	}
}

func TestProjectionCenter(t *testing.T) {
	p := NewProjection(10, 20, 100, 80, 24, 2.0)

	got := p.Project(10, 20)
	if got.X != 40 || got.Y != 12 {
		t.Errorf("Project(center) = %+v, want {40 12}", got)
	}

	w, h := p.PixelSize()
	if w != 80 || h != 48 {
		t.Errorf("PixelSize() = %v, %v, want 80, 48", w, h)
	}

	c := p.GetBounds().Center()
	if math.Abs(c.Lat-10) > 1e-9 || math.Abs(c.Lon-20) > 1e-9 {
		t.Errorf("bounds center = %v, want (10, 20)", c)
	}
}

func TestProjectionUpdateRadius(t *testing.T) {
	p := NewProjection(0, 0, 100, 80, 24, 2.0)
	before := p.GetBounds().LonSpan()

	p.UpdateRadius(50)
	after := p.GetBounds().LonSpan()

	if math.Abs(after-before/2) > 1e-9 {
		t.Errorf("lon span after halving radius = %v, want %v", after, before/2)
	}
}

func TestFilterByBounds(t *testing.T) {
	b := &Bounds{MinLat: 0, MaxLat: 10, MinLon: 0, MaxLon: 10}
	features := []*Feature{
		NewPointFeature(FeaturePlace, LatLon{5, 5}, "inside"),
		NewPointFeature(FeaturePlace, LatLon{50, 5}, "outside"),
		NewLineFeature(FeatureCoastline, []LatLon{{-5, -5}, {5, 5}}),
		NewLineFeature(FeatureCoastline, []LatLon{{-5, -5}, {-6, -6}}),
	}

	got := FilterByBounds(features, b)
	if len(got) != 2 {
		t.Fatalf("FilterByBounds returned %d features, want 2", len(got))
	}
	if got[0].Name != "inside" || !got[1].IsLine() {
		t.Errorf("unexpected features: %+v, %+v", got[0], got[1])
	}
}
