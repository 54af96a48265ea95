package arrow

import (
	"windarrows/internal/geo"
	"windarrows/internal/render"
)

// Config holds the options of one entity. NewEntity takes a copy, so a
// Config value can be reused for many entities.
type Config struct {
	DistanceUnit         geo.DistanceUnit
	StretchFactor        float64 // multiplies Data.Distance, not the arrowhead
	ArrowheadLength      float64 // in DistanceUnit
	ArrowheadDegree      float64 // angle between shaft and each barb
	ArrowheadClosingLine bool
	ClickableWidth       float64 // width in pixels of the invisible hit line

	Validator    Validator
	ColorScheme  ColorScheme // nil uses PathStyle.Color
	IsWindDegree bool        // bearings give the direction the wind blows from

	PathStyle          render.PathStyle
	InvalidPointStyle  render.PathStyle
	InvalidPointRadius float64 // meters * 10 in km mode

	DrawSourceMarker  bool
	SourceMarkerStyle render.PathStyle

	PopupContent func(Data) string
}

// DefaultConfig returns the stock arrow options
func DefaultConfig() Config {
	return Config{
		DistanceUnit:    geo.UnitKilometers,
		StretchFactor:   1,
		ArrowheadLength: 4,
		ArrowheadDegree: 155,
		ClickableWidth:  10,
		Validator:       DefaultValidator,
		PathStyle: render.PathStyle{
			Stroke:      true,
			Color:       render.MustHex("#333333"),
			Opacity:     0.9,
			FillOpacity: 0.9,
			Weight:      2,
		},
		InvalidPointStyle: render.PathStyle{
			Fill:        true,
			FillColor:   render.MustHex("#111111"),
			FillOpacity: 0.8,
			Radius:      7,
		},
		InvalidPointRadius: 1000,
		SourceMarkerStyle: render.PathStyle{
			Fill:        true,
			FillColor:   render.MustHex("#333333"),
			FillOpacity: 1,
			Radius:      5,
		},
	}
}

// withDefaults fills options a caller left at their zero value
func (c Config) withDefaults() Config {
	if c.DistanceUnit == "" {
		c.DistanceUnit = geo.UnitKilometers
	}
	if c.StretchFactor == 0 {
		c.StretchFactor = 1
	}
	if c.Validator == nil {
		c.Validator = DefaultValidator
	}
	return c
}
