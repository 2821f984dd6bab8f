package climber

import (
	"math"

	"github.com/vovakirdan/skydodo/internal/core"
)

// Visual characters for rendering
const (
	GroundChar         = '▀'
	PlatformChar       = '▬'
	MovingPlatformChar = '═'
	EnemyChar          = '▓'
	EnemyAltChar       = '▒'
	PlayerIdleChar     = '●'
	PlayerFlapChar     = 'v'
	PlayerBeakChar     = '>'
	CloudChar          = '░'
	SkyChar            = '·'
)

// cellAspect is the height/width ratio of a terminal cell.
const cellAspect = 2.0

// Canvas maps world units onto a region of a screen.
// The world keeps its aspect ratio and is centered horizontally.
type Canvas struct {
	dst        *core.Screen
	left, top  int
	cols, rows int
	sx, sy     float64
}

// NewCanvas fits a worldW x worldH world into dst, leaving headerRows
// free at the top for the status line.
func NewCanvas(dst *core.Screen, worldW, worldH float64, headerRows int) *Canvas {
	availW := dst.Width()
	availH := dst.Height() - headerRows
	if availH < 1 {
		availH = 1
	}

	rows := availH
	cols := int(math.Round(float64(rows) * cellAspect * worldW / worldH))
	if cols > availW {
		cols = availW
		rows = int(math.Round(float64(cols) / cellAspect * worldH / worldW))
		if rows < 1 {
			rows = 1
		}
	}
	if cols < 1 {
		cols = 1
	}

	return &Canvas{
		dst:  dst,
		left: (availW - cols) / 2,
		top:  headerRows,
		cols: cols,
		rows: rows,
		sx:   float64(cols) / worldW,
		sy:   float64(rows) / worldH,
	}
}

// Left returns the screen column of the canvas' left edge.
func (c *Canvas) Left() int { return c.left }

// Top returns the screen row of the canvas' top edge.
func (c *Canvas) Top() int { return c.top }

// Cols returns the canvas width in cells.
func (c *Canvas) Cols() int { return c.cols }

// Rows returns the canvas height in cells.
func (c *Canvas) Rows() int { return c.rows }

// Cell converts a world point to screen coordinates.
func (c *Canvas) Cell(x, y float64) (int, int) {
	return c.left + int(math.Floor(x*c.sx)), c.top + int(math.Floor(y*c.sy))
}

// inside reports whether a screen cell lies within the canvas.
func (c *Canvas) inside(col, row int) bool {
	return col >= c.left && col < c.left+c.cols && row >= c.top && row < c.top+c.rows
}

// Set draws a single rune at a world point.
func (c *Canvas) Set(x, y float64, r rune, col core.Color) {
	cx, cy := c.Cell(x, y)
	if c.inside(cx, cy) {
		c.dst.SetColored(cx, cy, r, col)
	}
}

// FillRect fills the cells covered by a world rectangle.
// Anything visible covers at least one cell.
func (c *Canvas) FillRect(r core.Rect, ch rune, col core.Color) {
	x0, y0 := c.Cell(r.X, r.Y)
	x1 := c.left + int(math.Ceil(r.Right()*c.sx))
	y1 := c.top + int(math.Ceil(r.Bottom()*c.sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if c.inside(x, y) {
				c.dst.SetColored(x, y, ch, col)
			}
		}
	}
}

// Text writes text at a canvas-relative cell, clipped to the canvas.
func (c *Canvas) Text(col, row int, s string, color core.Color) {
	i := 0
	for _, r := range s {
		x, y := c.left+col+i, c.top+row
		if c.inside(x, y) {
			c.dst.SetColored(x, y, r, color)
		}
		i++
	}
}

// Panel draws a framed box centered on the canvas with the given lines.
func (c *Canvas) Panel(title string, lines []string) {
	width := len([]rune(title))
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	boxW := min(width+4, c.cols)
	boxH := min(len(lines)+4, c.rows)
	boxX := c.left + (c.cols-boxW)/2
	boxY := c.top + (c.rows-boxH)/2

	box := core.NewCellRect(boxX, boxY, boxW, boxH)
	c.dst.DrawRect(box, ' ')
	c.dst.DrawBox(box)

	titleX := boxX + (boxW-len([]rune(title)))/2
	c.dst.DrawTextColored(titleX, boxY+1, title, core.ColorPanelTitle)
	for i, l := range lines {
		if boxY+3+i >= boxY+boxH-1 {
			break
		}
		c.dst.DrawText(boxX+2, boxY+3+i, l)
	}
}
