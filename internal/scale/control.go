package scale

import (
	"math"
	"strconv"
	"strings"

	"windarrows/internal/debug"
	"windarrows/internal/geo"
	"windarrows/internal/render"
)

// Position is the corner a control is drawn in
type Position int

const (
	BottomLeft Position = iota
	BottomRight
	TopLeft
	TopRight
)

// ParsePosition maps names like "bottomleft" to a Position, ignoring case
func ParsePosition(s string) (Position, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bottomleft":
		return BottomLeft, true
	case "bottomright":
		return BottomRight, true
	case "topleft":
		return TopLeft, true
	case "topright":
		return TopRight, true
	}
	return BottomLeft, false
}

// Viewport is the map a control measures
type Viewport interface {
	Bounds() *geo.Bounds
	Size() (width, height float64)
	On(render.EventType, render.Listener)
	Off(render.EventType, render.Listener)
}

// Options configures a scale control
type Options struct {
	Position         Position
	MaxWidth         float64 // widest bar in pixels
	UpdateOnIdleOnly bool    // recompute on moveend instead of every move
	StretchFactor    float64 // arrow stretch, so the bar matches arrow lengths
	UnitToMeter      float64 // meters per displayed unit
	UnitLabel        string
	LineStyle        render.PathStyle
}

// DefaultOptions returns the stock scale options
func DefaultOptions() Options {
	return Options{
		Position:      BottomLeft,
		MaxWidth:      200,
		StretchFactor: 1,
		UnitToMeter:   1000,
		UnitLabel:     "km/h",
		LineStyle: render.PathStyle{
			Stroke:  true,
			Color:   render.MustHex("#000000"),
			Opacity: 1,
			Weight:  4,
		},
	}
}

// State is the most recent scale computation
type State struct {
	MaxGroundMeters float64 // ground distance under MaxWidth pixels, stretched
	Meters          float64 // rounded distance shown by the bar
	WidthPx         int
	Label           string
}

// Control keeps a scale bar in step with a viewport
type Control struct {
	opts     Options
	viewport Viewport
	state    State
}

// NewControl creates a detached control
func NewControl(opts Options) *Control {
	if opts.StretchFactor == 0 {
		opts.StretchFactor = 1
	}
	if opts.UnitToMeter == 0 {
		opts.UnitToMeter = 1
	}
	return &Control{opts: opts}
}

// Options returns the control's options
func (c *Control) Options() Options {
	return c.opts
}

// State returns the last computed scale
func (c *Control) State() State {
	return c.state
}

func (c *Control) updateEvent() render.EventType {
	if c.opts.UpdateOnIdleOnly {
		return render.EventMoveEnd
	}
	return render.EventMove
}

// Attach subscribes to viewport changes and computes the initial scale
func (c *Control) Attach(v Viewport) {
	if c.viewport != nil {
		c.Detach()
	}
	c.viewport = v
	v.On(c.updateEvent(), c)
	c.Update()
}

// Detach unsubscribes from the viewport
func (c *Control) Detach() {
	if c.viewport == nil {
		return
	}
	c.viewport.Off(c.updateEvent(), c)
	c.viewport = nil
}

// HandleEvent recomputes the scale after the viewport moved
func (c *Control) HandleEvent(render.EventType) {
	c.Update()
}

// Update measures the ground distance spanned by MaxWidth pixels at the
// viewport's center latitude. A zero-width viewport keeps the previous state.
func (c *Control) Update() {
	if c.viewport == nil {
		return
	}

	width, _ := c.viewport.Size()
	if width <= 0 {
		return
	}

	maxMeters := MaxGroundMeters(c.viewport.Bounds(), width, c.opts.MaxWidth)
	if maxMeters <= 0 {
		return
	}
	c.setMeters(maxMeters)
}

// MaxGroundMeters returns the ground distance covered by maxWidth pixels of a
// viewport width pixels wide showing bounds
func MaxGroundMeters(bounds *geo.Bounds, width, maxWidth float64) float64 {
	centerLat := bounds.Center().Lat * math.Pi / 180
	metersPerPixel := 2 * math.Pi * geo.EarthRadiusMeters * math.Cos(centerLat) * (bounds.LonSpan() / 360) / width
	return metersPerPixel * maxWidth
}

func (c *Control) setMeters(maxMeters float64) {
	maxMeters *= c.opts.StretchFactor
	meters := RoundNumber(maxMeters)

	c.state = State{
		MaxGroundMeters: maxMeters,
		Meters:          meters,
		WidthPx:         BarWidthPixels(c.opts.MaxWidth, meters, maxMeters),
		Label:           strconv.FormatFloat(meters/c.opts.UnitToMeter, 'f', -1, 64) + " " + c.opts.UnitLabel,
	}
	debug.Log("scale: %.0f m under %.0f px -> %s (%d px)", maxMeters, c.opts.MaxWidth, c.state.Label, c.state.WidthPx)
}
