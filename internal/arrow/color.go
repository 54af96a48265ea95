package arrow

import (
	"math"
	"sort"
	"strconv"

	"windarrows/internal/render"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorScheme picks the colour of a valid arrow. Returning false falls back
// to the configured path colour.
type ColorScheme func(Data) (colorful.Color, bool)

// ColorStop anchors a colour to a value of the colour key
type ColorStop struct {
	Value float64
	Color colorful.Color
}

// GradientScheme blends a numeric ColorKey through the stops in HCL space.
// Keys outside the stops take the nearest end colour.
func GradientScheme(stops ...ColorStop) ColorScheme {
	sorted := append([]ColorStop(nil), stops...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Value < sorted[j].Value
	})

	return func(d Data) (colorful.Color, bool) {
		v, ok := numericKey(d.ColorKey)
		if !ok || math.IsNaN(v) || len(sorted) == 0 {
			return colorful.Color{}, false
		}

		if v <= sorted[0].Value {
			return sorted[0].Color, true
		}
		for i := 1; i < len(sorted); i++ {
			lo, hi := sorted[i-1], sorted[i]
			if v <= hi.Value {
				t := (v - lo.Value) / (hi.Value - lo.Value)
				return lo.Color.BlendHcl(hi.Color, t).Clamped(), true
			}
		}
		return sorted[len(sorted)-1].Color, true
	}
}

// WindSpeedScheme colours calm air blue through to storms red
func WindSpeedScheme() ColorScheme {
	return GradientScheme(
		ColorStop{Value: 0, Color: render.MustHex("#2c7bb6")},
		ColorStop{Value: 20, Color: render.MustHex("#abd9e9")},
		ColorStop{Value: 40, Color: render.MustHex("#ffffbf")},
		ColorStop{Value: 60, Color: render.MustHex("#fdae61")},
		ColorStop{Value: 90, Color: render.MustHex("#d7191c")},
	)
}

func numericKey(key any) (float64, bool) {
	switch v := key.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	}
	return 0, false
}
