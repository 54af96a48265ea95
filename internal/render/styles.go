package render

import (
	"windarrows/internal/geo"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// PathStyle describes how a line or circle is drawn. It is a plain value;
// copies can be changed without affecting the original.
type PathStyle struct {
	Stroke      bool
	Color       colorful.Color
	Opacity     float64
	Weight      float64 // stroke width in pixels
	Fill        bool
	FillColor   colorful.Color
	FillOpacity float64
	Radius      float64 // marker radius in pixels
}

// Visible reports whether anything would be painted with this style
func (s PathStyle) Visible() bool {
	return (s.Stroke && s.Opacity > 0) || (s.Fill && s.FillOpacity > 0)
}

// StrokeStyle converts the stroke colour to a terminal style
func (s PathStyle) StrokeStyle() tcell.Style {
	return tcell.StyleDefault.
		Foreground(TerminalColor(s.Color)).
		Bold(s.Weight >= 3).
		Dim(s.Opacity < 0.5)
}

// FillStyle converts the fill colour to a terminal style
func (s PathStyle) FillStyle() tcell.Style {
	return tcell.StyleDefault.
		Foreground(TerminalColor(s.FillColor)).
		Dim(s.FillOpacity < 0.5)
}

// MustHex parses a "#rrggbb" colour and panics on malformed input. Meant
// for colour literals in package-level defaults.
func MustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// TerminalColor maps a colour onto a 24-bit terminal colour
func TerminalColor(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Basemap and chrome styles
var (
	StyleBorder       = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	StyleRiver        = tcell.StyleDefault.Foreground(tcell.ColorDarkCyan)
	StyleCoastline    = tcell.StyleDefault.Foreground(tcell.ColorDarkBlue)
	StylePlace        = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	StyleLabel        = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	StyleSelected     = tcell.StyleDefault.Reverse(true)
	StyleListItem     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	StyleListSelected = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
)

// GetStyleForFeature returns the appropriate style for a feature type
func GetStyleForFeature(ftype geo.FeatureType) tcell.Style {
	switch ftype {
	case geo.FeatureBorder:
		return StyleBorder
	case geo.FeatureRiver:
		return StyleRiver
	case geo.FeatureCoastline:
		return StyleCoastline
	case geo.FeaturePlace:
		return StylePlace
	default:
		return tcell.StyleDefault
	}
}

// GetCharForFeature returns the appropriate character for drawing a feature
func GetCharForFeature(ftype geo.FeatureType) rune {
	switch ftype {
	case geo.FeatureBorder:
		return '-'
	case geo.FeatureRiver:
		return '~'
	case geo.FeatureCoastline:
		return '.'
	default:
		return '·'
	}
}
