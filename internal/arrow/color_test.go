package arrow

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestGradientScheme(t *testing.T) {
	blue := colorful.Color{R: 0, G: 0, B: 1}
	red := colorful.Color{R: 1, G: 0, B: 0}
	scheme := GradientScheme(
		ColorStop{Value: 100, Color: red},
		ColorStop{Value: 0, Color: blue},
	)

	tests := []struct {
		key    any
		want   colorful.Color
		wantOK bool
	}{
		{-5.0, blue, true},
		{0, blue, true},
		{150, red, true},
		{"100", red, true},
		{int64(500), red, true},
		{"calm", colorful.Color{}, false},
		{nil, colorful.Color{}, false},
		{math.NaN(), colorful.Color{}, false},
	}

	for _, tt := range tests {
		got, ok := scheme(Data{ColorKey: tt.key})
		if ok != tt.wantOK {
			t.Errorf("key %v: ok = %v, want %v", tt.key, ok, tt.wantOK)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("key %v: colour = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestGradientSchemeBlends(t *testing.T) {
	blue := colorful.Color{R: 0, G: 0, B: 1}
	red := colorful.Color{R: 1, G: 0, B: 0}
	scheme := GradientScheme(ColorStop{0, blue}, ColorStop{10, red})

	mid, ok := scheme(Data{ColorKey: 5.0})
	if !ok {
		t.Fatalf("numeric key rejected")
	}
	if mid.DistanceLab(blue) < 0.1 || mid.DistanceLab(red) < 0.1 {
		t.Errorf("midpoint %v is not between the stops", mid)
	}
}

func TestWindSpeedScheme(t *testing.T) {
	scheme := WindSpeedScheme()
	calm, _ := scheme(Data{ColorKey: 0})
	storm, _ := scheme(Data{ColorKey: 120})
	if calm == storm {
		t.Errorf("calm and storm share colour %v", calm)
	}
}
