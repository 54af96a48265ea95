package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
)

// Canvas represents a 2D grid of cells for terminal rendering
type Canvas struct {
	width  int
	height int
	cells  [][]Cell
}

// Cell represents a single character cell with style
type Cell struct {
	Char  rune
	Style tcell.Style
}

var blank = Cell{Char: ' ', Style: tcell.StyleDefault}

// NewCanvas creates a new blank canvas
func NewCanvas(width, height int) *Canvas {
	cells := make([][]Cell, height)
	for i := range cells {
		cells[i] = make([]Cell, width)
		for j := range cells[i] {
			cells[i][j] = blank
		}
	}

	return &Canvas{
		width:  width,
		height: height,
		cells:  cells,
	}
}

// Set sets the character and style at the given position
// Coordinates are 0-indexed with (0,0) at top-left; out of range writes are dropped
func (c *Canvas) Set(x, y int, char rune, style tcell.Style) {
	if c.InBounds(x, y) {
		c.cells[y][x] = Cell{Char: char, Style: style}
	}
}

// Get retrieves the cell at the given position
func (c *Canvas) Get(x, y int) Cell {
	if c.InBounds(x, y) {
		return c.cells[y][x]
	}
	return blank
}

// InBounds reports whether (x, y) is on the canvas
func (c *Canvas) InBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// Clear resets the entire canvas to spaces with default style
func (c *Canvas) Clear() {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = blank
		}
	}
}

// DrawText draws a string at the given position
func (c *Canvas) DrawText(x, y int, text string, style tcell.Style) {
	i := 0
	for _, char := range text {
		c.Set(x+i, y, char, style)
		i++
	}
}

// DrawHLine draws a horizontal run of char starting at (x, y)
func (c *Canvas) DrawHLine(x, y, length int, char rune, style tcell.Style) {
	for i := 0; i < length; i++ {
		c.Set(x+i, y, char, style)
	}
}

// DrawLine implements Bresenham's line algorithm. Segments reaching off the
// canvas are clipped first so the walk never exceeds the canvas size.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, char rune, style tcell.Style) {
	if !c.InBounds(x0, y0) || !c.InBounds(x1, y1) {
		var ok bool
		if x0, y0, x1, y1, ok = c.clip(x0, y0, x1, y1); !ok {
			return
		}
	}

	dx := abs(x1 - x0)
	dy := abs(y1 - y0)

	sx := -1
	if x0 < x1 {
		sx = 1
	}

	sy := -1
	if y0 < y1 {
		sy = 1
	}

	err := dx - dy

	for {
		c.Set(x0, y0, char, style)

		if x0 == x1 && y0 == y1 {
			break
		}

		e2 := 2 * err

		if e2 > -dy {
			err -= dy
			x0 += sx
		}

		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// clip trims a segment to the canvas rectangle (Liang-Barsky). ok is false
// when no part of the segment lies on the canvas.
func (c *Canvas) clip(x0, y0, x1, y1 int) (cx0, cy0, cx1, cy1 int, ok bool) {
	if c.width == 0 || c.height == 0 {
		return 0, 0, 0, 0, false
	}

	fx0, fy0 := float64(x0), float64(y0)
	dx, dy := float64(x1)-fx0, float64(y1)-fy0
	maxX, maxY := float64(c.width-1), float64(c.height-1)

	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, fx0},
		{dx, maxX - fx0},
		{-dy, fy0},
		{dy, maxY - fy0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			t0 = math.Max(t0, r)
		} else {
			t1 = math.Min(t1, r)
		}
		if t0 > t1 {
			return 0, 0, 0, 0, false
		}
	}

	snap := func(v, hi float64) int {
		return int(math.Max(0, math.Min(hi, math.Round(v))))
	}
	return snap(fx0+t0*dx, maxX), snap(fy0+t0*dy, maxY),
		snap(fx0+t1*dx, maxX), snap(fy0+t1*dy, maxY), true
}

// Width returns the canvas width
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height
func (c *Canvas) Height() int {
	return c.height
}

// Blit renders the canvas to a tcell screen
func (c *Canvas) Blit(screen tcell.Screen, offsetX, offsetY int) {
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			cell := c.cells[y][x]
			screen.SetContent(offsetX+x, offsetY+y, cell.Char, nil, cell.Style)
		}
	}
}

// abs returns the absolute value of an integer
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
