package render

import (
	"math"
	"testing"
	"time"

	"windarrows/internal/geo"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// testSurface maps lon to x = lon*8 + 20 px and lat to y = (10 - lat*4) * 2 px
// on a 40x20 cell screen
func testSurface() *Surface {
	return NewSurface(geo.NewProjection(0, 0, 69*5, 40, 20, 2.0))
}

var red = colorful.Color{R: 1}

func stroke(opacity, weight float64) PathStyle {
	return PathStyle{Stroke: true, Color: red, Opacity: opacity, Weight: weight}
}

func TestSurfaceLayers(t *testing.T) {
	s := testSurface()
	paths := [][]geo.LatLon{{{Lat: 0, Lon: -1}, {Lat: 0, Lon: 1}}}

	p := s.AddPolyline(paths, stroke(1, 2))
	c := s.AddCircle(geo.LatLon{Lat: 1, Lon: 1}, 3, false, PathStyle{Fill: true, FillColor: red, FillOpacity: 1})

	if got := len(s.Layers()); got != 2 {
		t.Fatalf("Layers = %d, want 2", got)
	}

	// The polyline keeps its own copy of the paths
	paths[0][0].Lat = 50
	if p.Paths()[0][0].Lat != 0 {
		t.Errorf("polyline shares memory with the caller's paths")
	}

	s.RemoveLayer(p)
	s.RemoveLayer(p)
	layers := s.Layers()
	if len(layers) != 1 || layers[0] != Renderable(c) {
		t.Errorf("after RemoveLayer: %v", layers)
	}
}

func TestSurfaceViewport(t *testing.T) {
	s := testSurface()

	w, h := s.Size()
	if w != 40 || h != 40 {
		t.Errorf("Size = %v x %v, want 40 x 40", w, h)
	}
	if c := s.Center(); c != (geo.LatLon{}) {
		t.Errorf("Center = %v", c)
	}

	v := s.ToPixel(geo.LatLon{Lat: 1, Lon: 1})
	if math.Abs(v.X-28) > 1e-9 || math.Abs(v.Y-12) > 1e-9 {
		t.Errorf("ToPixel = %v, want {28 12}", v)
	}
	back := s.ToLatLon(v)
	if math.Abs(back.Lat-1) > 1e-9 || math.Abs(back.Lon-1) > 1e-9 {
		t.Errorf("ToLatLon = %v", back)
	}

	b := s.Bounds()
	if !b.Contains(0, 0) || b.Contains(0, 3) {
		t.Errorf("Bounds = %+v", b)
	}
}

func TestSurfaceDraw(t *testing.T) {
	s := testSurface()
	s.AddPolyline([][]geo.LatLon{{{Lat: 0, Lon: -1}, {Lat: 0, Lon: 1}}}, stroke(1, 2))
	s.AddPolyline([][]geo.LatLon{{{Lat: 2, Lon: -1}, {Lat: 2, Lon: 1}}}, stroke(0, 10))
	s.AddCircle(geo.LatLon{Lat: -2, Lon: 0}, 1, false, PathStyle{Fill: true, FillColor: red, FillOpacity: 1})

	c := NewCanvas(40, 20)
	s.Draw(c)

	for _, x := range []int{12, 20, 28} {
		if got := c.Get(x, 10).Char; got != '─' {
			t.Errorf("cell %d,10 = %q, want ─", x, got)
		}
	}
	if got := c.Get(20, 2).Char; got != ' ' {
		t.Errorf("invisible line was drawn: %q", got)
	}
	if got := c.Get(20, 18).Char; got != '●' {
		t.Errorf("circle center = %q, want ●", got)
	}
}

func TestSurfaceDrawNonFinite(t *testing.T) {
	s := testSurface()
	nan, inf := math.NaN(), math.Inf(1)
	s.AddPolyline([][]geo.LatLon{{{Lat: 0, Lon: -1}, {Lat: nan, Lon: nan}, {Lat: 0, Lon: 1}}}, stroke(1, 2))
	s.AddPolyline([][]geo.LatLon{{{Lat: 0, Lon: 0}, {Lat: 0, Lon: inf}}}, stroke(1, 2))
	s.AddCircle(geo.LatLon{Lat: nan, Lon: 0}, 1, false, PathStyle{Fill: true, FillColor: red, FillOpacity: 1})
	s.AddCircle(geo.LatLon{Lat: 0, Lon: 0}, inf, false, PathStyle{Fill: true, FillColor: red, FillOpacity: 1})

	c := NewCanvas(40, 20)
	done := make(chan struct{})
	go func() {
		s.Draw(c)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Draw did not return")
	}

	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			if got := c.Get(x, y).Char; got != ' ' {
				t.Errorf("cell %d,%d = %q, want blank", x, y, got)
			}
		}
	}
}

func TestSurfaceHitTest(t *testing.T) {
	s := testSurface()
	line := s.AddPolyline([][]geo.LatLon{{{Lat: 0, Lon: -1}, {Lat: 0, Lon: 1}}}, stroke(0, 10))

	if _, ok := s.HitTest(20, 11); ok {
		t.Errorf("primitive without popup should not be hit")
	}

	line.BindPopup("wind")
	tests := []struct {
		x, y int
		hit  bool
	}{
		{20, 10, true},
		{20, 11, true},  // 3 px away, within half the 10 px width
		{20, 13, false}, // 7 px away
		{5, 10, false},  // beyond the end
	}
	for _, tt := range tests {
		got, ok := s.HitTest(tt.x, tt.y)
		if ok != tt.hit {
			t.Errorf("HitTest(%d, %d) = %v, want %v", tt.x, tt.y, ok, tt.hit)
		}
		if ok && got != Renderable(line) {
			t.Errorf("HitTest(%d, %d) returned the wrong primitive", tt.x, tt.y)
		}
	}

	marker := s.AddCircle(geo.LatLon{Lat: 0, Lon: 0}, 3, false, PathStyle{Fill: true, FillColor: red, FillOpacity: 1})
	marker.BindPopup("origin")
	if got, ok := s.HitTest(20, 10); !ok || got != Renderable(marker) {
		t.Errorf("topmost primitive should win")
	}
}

func TestLineRune(t *testing.T) {
	tests := []struct {
		a, b geo.Vec
		want rune
	}{
		{geo.Vec{X: 0, Y: 0}, geo.Vec{X: 10, Y: 1}, '─'},
		{geo.Vec{X: 0, Y: 0}, geo.Vec{X: 1, Y: 10}, '│'},
		{geo.Vec{X: 0, Y: 0}, geo.Vec{X: 5, Y: 5}, '\\'},
		{geo.Vec{X: 0, Y: 0}, geo.Vec{X: 5, Y: -5}, '/'},
		{geo.Vec{X: 3, Y: 3}, geo.Vec{X: 3, Y: 3}, '·'},
	}
	for _, tt := range tests {
		if got := lineRune(tt.a, tt.b); got != tt.want {
			t.Errorf("lineRune(%v, %v) = %q, want %q", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSegmentDistance(t *testing.T) {
	a, b := geo.Vec{X: 0, Y: 0}, geo.Vec{X: 10, Y: 0}
	tests := []struct {
		p    geo.Vec
		want float64
	}{
		{geo.Vec{X: 5, Y: 3}, 3},
		{geo.Vec{X: -3, Y: 4}, 5},
		{geo.Vec{X: 13, Y: 4}, 5},
	}
	for _, tt := range tests {
		if got := segmentDistance(tt.p, a, b); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("segmentDistance(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
	if got := segmentDistance(geo.Vec{X: 3, Y: 4}, a, a); math.Abs(got-5) > 1e-9 {
		t.Errorf("degenerate segment distance = %v, want 5", got)
	}
}

func TestPathStyleTerminal(t *testing.T) {
	if (PathStyle{Stroke: true, Opacity: 0}).Visible() {
		t.Errorf("transparent stroke should be invisible")
	}
	if !(PathStyle{Fill: true, FillOpacity: 0.2}).Visible() {
		t.Errorf("faint fill should be visible")
	}

	fg, _, attr := stroke(0.3, 4).StrokeStyle().Decompose()
	r, g, b := fg.RGB()
	if r != 255 || g != 0 || b != 0 {
		t.Errorf("foreground = %d,%d,%d, want 255,0,0", r, g, b)
	}
	if attr&tcell.AttrBold == 0 || attr&tcell.AttrDim == 0 {
		t.Errorf("heavy faint stroke should be bold and dim, attrs %v", attr)
	}
}

func TestMustHex(t *testing.T) {
	r, g, b := MustHex("#3388ff").RGB255()
	if r != 0x33 || g != 0x88 || b != 0xff {
		t.Errorf("MustHex(#3388ff) = %d,%d,%d", r, g, b)
	}

	defer func() {
		if recover() == nil {
			t.Errorf("MustHex accepted a malformed colour")
		}
	}()
	MustHex("blue")
}
