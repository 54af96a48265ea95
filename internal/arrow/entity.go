package arrow

import (
	"math"

	"windarrows/internal/debug"
	"windarrows/internal/geo"
	"windarrows/internal/render"

	"github.com/lucasb-eyer/go-colorful"
)

// State is the attachment state of an entity
type State int

const (
	// StateUninitialized is a new entity that has never been attached
	StateUninitialized State = iota
	// StateAttached entities draw on a host and follow its events
	StateAttached
	// StateDetached entities were removed from their host
	StateDetached
)

// String returns a string representation of the state
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateAttached:
		return "attached"
	case StateDetached:
		return "detached"
	default:
		return "unknown"
	}
}

// Role names a primitive an entity owns on its host
type Role int

const (
	// RoleMainLine is the visible shaft of the arrow
	RoleMainLine Role = iota
	// RoleArrowhead is the two-barbed head at the tip
	RoleArrowhead
	// RoleHitLine is the transparent wide line that catches clicks
	RoleHitLine
	// RoleSourceMarker is the optional circle at the origin
	RoleSourceMarker
	// RoleFallbackPoint is the circle drawn when no arrow can be built
	RoleFallbackPoint
)

// Host is the map an entity draws on
type Host interface {
	render.Target
	geo.Projector
	On(render.EventType, render.Listener)
	Off(render.EventType, render.Listener)
}

// RenderKind is what the last redraw produced
type RenderKind int

const (
	// RenderNone means nothing is drawn, as for a record without an origin
	RenderNone RenderKind = iota
	// RenderArrow means the line, arrowhead and hit line are drawn
	RenderArrow
	// RenderPoint means only the fallback point is drawn
	RenderPoint
)

// Rendering is a snapshot of the last redraw
type Rendering struct {
	Kind     RenderKind
	Geometry Geometry       // RenderArrow only
	Color    colorful.Color // resolved arrow colour
	Point    geo.LatLon     // RenderPoint only
	Radius   float64        // RenderPoint only
}

// Entity is a single arrow bound to at most one host
type Entity struct {
	cfg       Config
	data      Data
	state     State
	host      Host
	handles   map[Role]render.Renderable
	rendering Rendering
}

// NewEntity creates an unattached arrow
func NewEntity(data Data, cfg Config) *Entity {
	e := &Entity{
		cfg:     cfg.withDefaults(),
		handles: make(map[Role]render.Renderable),
	}
	// Nothing is drawn before Attach, so this cannot fail
	_ = e.SetData(data)
	return e
}

// Config returns a copy of the entity's options
func (e *Entity) Config() Config {
	return e.cfg
}

// Data returns a copy of the current record
func (e *Entity) Data() Data {
	return e.data.clone()
}

// State returns the attachment state
func (e *Entity) State() State {
	return e.state
}

// Rendering returns what the last redraw produced
func (e *Entity) Rendering() Rendering {
	r := e.rendering
	r.Geometry.Arrowhead = append([]geo.LatLon(nil), r.Geometry.Arrowhead...)
	return r
}

// Handle returns the primitive currently drawn for role
func (e *Entity) Handle(role Role) (render.Renderable, bool) {
	h, ok := e.handles[role]
	return h, ok
}

// SetData replaces the whole record, validates it and redraws
func (e *Entity) SetData(data Data) error {
	e.data = data.clone()

	if !e.cfg.Validator(e.data) {
		e.data.Valid = false
		e.data.Distance = math.NaN()
		e.data.Bearing = math.NaN()
		return e.Redraw()
	}

	e.data.Valid = true
	return e.SetAngle(data.Bearing)
}

// SetAngle changes the bearing and redraws. Wind bearings are turned around,
// and in px mode rotated a further quarter turn since screen bearings start east.
func (e *Entity) SetAngle(bearing float64) error {
	switch {
	case math.IsNaN(bearing):
		e.data.Bearing = math.NaN()
	case e.cfg.IsWindDegree:
		bearing -= 180
		if e.cfg.DistanceUnit.IsPlanar() {
			bearing -= 90
		}
		e.data.Bearing = bearing
	default:
		e.data.Bearing = bearing
	}
	return e.Redraw()
}

// SetDistance changes the length and redraws. NaN means no length.
func (e *Entity) SetDistance(distance float64) error {
	if math.IsNaN(distance) {
		distance = 0
	}
	e.data.Distance = distance
	return e.Redraw()
}

// Attach draws the entity on host, moving it from any previous host
func (e *Entity) Attach(host Host) error {
	if e.state == StateAttached {
		e.Detach()
	}

	e.host = host
	e.state = StateAttached
	if e.cfg.DistanceUnit.IsPlanar() {
		host.On(render.EventViewReset, e)
	}
	return e.Redraw()
}

// Detach removes every primitive from the host. The data is kept for a
// later Attach.
func (e *Entity) Detach() {
	if e.state != StateAttached {
		return
	}

	e.drop(RoleMainLine, RoleArrowhead, RoleHitLine, RoleSourceMarker, RoleFallbackPoint)
	e.host.Off(render.EventViewReset, e)
	e.host = nil
	e.state = StateDetached
	e.rendering = Rendering{}
}

// HandleEvent redraws pixel-based arrows after the zoom changed
func (e *Entity) HandleEvent(ev render.EventType) {
	if ev != render.EventViewReset || !e.cfg.DistanceUnit.IsPlanar() {
		return
	}
	if err := e.Redraw(); err != nil {
		debug.Log("arrow %s: redraw on %s failed: %v", e.data.ID, ev, err)
	}
}

// Redraw brings the host's primitives in line with the current data. It
// does nothing while detached.
func (e *Entity) Redraw() error {
	if e.state != StateAttached {
		return nil
	}

	d := e.data
	if d.Origin == nil || !d.Origin.IsFinite() {
		e.drop(RoleMainLine, RoleArrowhead, RoleHitLine, RoleSourceMarker, RoleFallbackPoint)
		e.rendering = Rendering{}
		return nil
	}

	if !d.Valid || unset(d.Distance) || unset(d.Bearing) {
		e.drawPoint(*d.Origin)
		return nil
	}

	color := e.cfg.PathStyle.Color
	if e.cfg.ColorScheme != nil {
		if c, ok := e.cfg.ColorScheme(d); ok {
			color = c
		}
	}

	geom, err := BuildArrow(*d.Origin, d.Distance, d.Bearing, e.cfg, e.host)
	if err != nil {
		return err
	}

	e.drop(RoleFallbackPoint)

	style := e.cfg.PathStyle
	style.Color = color

	hitStyle := style
	hitStyle.Opacity = 0
	hitStyle.Weight = e.cfg.ClickableWidth

	e.polyline(RoleMainLine, [][]geo.LatLon{geom.Line[:]}, style)
	e.polyline(RoleArrowhead, [][]geo.LatLon{geom.Arrowhead}, style)
	hit := e.polyline(RoleHitLine, geom.Paths(), hitStyle)
	e.bindPopup(hit)

	if e.cfg.DrawSourceMarker {
		markerStyle := e.cfg.SourceMarkerStyle
		markerStyle.FillColor = color
		marker := e.circle(RoleSourceMarker, *d.Origin, markerStyle.Radius, false, markerStyle)
		e.bindPopup(marker)
	} else {
		e.drop(RoleSourceMarker)
	}

	e.rendering = Rendering{
		Kind:     RenderArrow,
		Geometry: geom,
		Color:    color,
	}
	return nil
}

// drawPoint replaces any arrow with the fallback marker
func (e *Entity) drawPoint(at geo.LatLon) {
	e.drop(RoleMainLine, RoleArrowhead, RoleHitLine, RoleSourceMarker)

	style := e.cfg.InvalidPointStyle
	radius, meters := style.Radius, false
	if !e.cfg.DistanceUnit.IsPlanar() {
		// Geographic circles are sized in meters rather than pixels
		radius, meters = e.cfg.InvalidPointRadius/10, true
	}

	c := e.circle(RoleFallbackPoint, at, radius, meters, style)
	e.bindPopup(c)

	e.rendering = Rendering{
		Kind:   RenderPoint,
		Point:  at,
		Radius: radius,
	}
}

func (e *Entity) polyline(role Role, paths [][]geo.LatLon, style render.PathStyle) render.Polyline {
	if p, ok := e.handles[role].(render.Polyline); ok {
		p.SetPaths(paths)
		p.SetStyle(style)
		return p
	}

	e.drop(role)
	p := e.host.AddPolyline(paths, style)
	e.handles[role] = p
	return p
}

func (e *Entity) circle(role Role, center geo.LatLon, radius float64, meters bool, style render.PathStyle) render.Circle {
	if c, ok := e.handles[role].(render.Circle); ok && c.Meters() == meters {
		c.SetCenter(center)
		c.SetRadius(radius)
		c.SetStyle(style)
		return c
	}

	e.drop(role)
	c := e.host.AddCircle(center, radius, meters, style)
	e.handles[role] = c
	return c
}

func (e *Entity) bindPopup(r render.Renderable) {
	if e.cfg.PopupContent != nil {
		r.BindPopup(e.cfg.PopupContent(e.data.clone()))
	}
}

func (e *Entity) drop(roles ...Role) {
	for _, role := range roles {
		if h, ok := e.handles[role]; ok {
			e.host.RemoveLayer(h)
			delete(e.handles, role)
		}
	}
}
