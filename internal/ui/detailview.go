package ui

import (
	"fmt"

	"windarrows/internal/arrow"
	"windarrows/internal/render"

	"github.com/gdamore/tcell/v2"
)

// DetailView displays the record and popup of a selected arrow
type DetailView struct {
	entity        *arrow.Entity
	x, y          int
	width, height int
}

// NewDetailView creates a new detail view
func NewDetailView(x, y, width, height int) *DetailView {
	return &DetailView{
		x:      x,
		y:      y,
		width:  width,
		height: height,
	}
}

// SetEntity sets the arrow to display
func (d *DetailView) SetEntity(e *arrow.Entity) {
	d.entity = e
}

// Lines returns the text rows shown for the current arrow
func (d *DetailView) Lines() []string {
	if d.entity == nil {
		return nil
	}

	data := d.entity.Data()
	r := d.entity.Rendering()

	position := "unknown"
	if data.Origin != nil {
		position = data.Origin.String()
	}

	drawn := "nothing"
	switch r.Kind {
	case arrow.RenderArrow:
		tip := r.Geometry.Tip()
		drawn = fmt.Sprintf("arrow to %s", tip)
	case arrow.RenderPoint:
		drawn = "fallback point"
	}

	lines := []string{
		fmt.Sprintf("ID:       %s", data.ID),
		fmt.Sprintf("Label:    %s", data.Label),
		fmt.Sprintf("Position: %s", position),
		fmt.Sprintf("Bearing:  %.1f*", data.Bearing),
		fmt.Sprintf("Distance: %.2f %s", data.Distance, d.entity.Config().DistanceUnit),
		fmt.Sprintf("Value:    %v", data.ColorKey),
		fmt.Sprintf("Valid:    %t", data.Valid),
		fmt.Sprintf("Drawn:    %s", drawn),
	}
	if r.Kind == arrow.RenderArrow {
		lines = append(lines, fmt.Sprintf("Colour:   %s", r.Color.Hex()))
	}

	for _, role := range []arrow.Role{arrow.RoleHitLine, arrow.RoleFallbackPoint} {
		if h, ok := d.entity.Handle(role); ok && h.Popup() != "" {
			lines = append(lines, "", h.Popup())
			break
		}
	}
	return lines
}

// Draw renders the detail view to the screen
func (d *DetailView) Draw(screen tcell.Screen) {
	if d.entity == nil {
		d.drawEmpty(screen)
		return
	}

	// Clear the entire panel area first (make it opaque)
	defaultStyle := tcell.StyleDefault
	for row := d.y + 1; row < d.y+d.height-1; row++ {
		for col := d.x + 1; col < d.x+d.width-1; col++ {
			screen.SetContent(col, row, ' ', nil, defaultStyle)
		}
	}

	// Draw border
	d.drawBorder(screen)

	// Draw title
	title := "Arrow Details"
	titleX := d.x + (d.width-len(title))/2
	for i, ch := range title {
		screen.SetContent(titleX+i, d.y, ch, nil, render.StyleLabel)
	}

	lines := d.Lines()

	y := d.y + 1
	for i, line := range lines {
		if y+i >= d.y+d.height-1 {
			break
		}
		d.drawLine(screen, d.x+2, y+i, line)
	}

	// Add instructions at bottom
	instructions := "Press ESC to return"
	instX := d.x + (d.width-len(instructions))/2
	instY := d.y + d.height - 1
	for i, ch := range instructions {
		screen.SetContent(instX+i, instY, ch, nil, render.StyleLabel.Dim(true))
	}
}

// drawEmpty draws an empty detail view
func (d *DetailView) drawEmpty(screen tcell.Screen) {
	// Clear the entire panel area first (make it opaque)
	defaultStyle := tcell.StyleDefault
	for row := d.y + 1; row < d.y+d.height-1; row++ {
		for col := d.x + 1; col < d.x+d.width-1; col++ {
			screen.SetContent(col, row, ' ', nil, defaultStyle)
		}
	}

	d.drawBorder(screen)
	text := "No arrow selected"
	x := d.x + (d.width-len(text))/2
	y := d.y + d.height/2
	for i, ch := range text {
		screen.SetContent(x+i, y, ch, nil, render.StyleLabel)
	}
}

// drawLine draws a single line of text
func (d *DetailView) drawLine(screen tcell.Screen, x, y int, text string) {
	for i := 0; i < min(len(text), d.width-4); i++ {
		screen.SetContent(x+i, y, rune(text[i]), nil, render.StyleLabel)
	}
}

// drawBorder draws the detail view border
func (d *DetailView) drawBorder(screen tcell.Screen) {
	style := render.StyleLabel

	screen.SetContent(d.x, d.y, '┌', nil, style)
	screen.SetContent(d.x+d.width-1, d.y, '┐', nil, style)
	screen.SetContent(d.x, d.y+d.height-1, '└', nil, style)
	screen.SetContent(d.x+d.width-1, d.y+d.height-1, '┘', nil, style)

	for i := 1; i < d.width-1; i++ {
		screen.SetContent(d.x+i, d.y, '─', nil, style)
		screen.SetContent(d.x+i, d.y+d.height-1, '─', nil, style)
	}

	for i := 1; i < d.height-1; i++ {
		screen.SetContent(d.x, d.y+i, '│', nil, style)
		screen.SetContent(d.x+d.width-1, d.y+i, '│', nil, style)
	}
}

// UpdateDimensions updates the view dimensions
func (d *DetailView) UpdateDimensions(x, y, width, height int) {
	d.x = x
	d.y = y
	d.width = width
	d.height = height
}
