package climber

import (
	"testing"

	"github.com/vovakirdan/skydodo/internal/core"
)

func TestNewCanvasFitsWorld(t *testing.T) {
	tests := []struct {
		name       string
		w, h       int
		cols, rows int
		left       int
	}{
		{"standard terminal", 80, 25, 38, 24, 21},
		{"narrow terminal", 20, 40, 20, 13, 0},
		{"tiny terminal", 1, 1, 1, 1, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCanvas(core.NewScreen(tc.w, tc.h), 600, 750, 1)
			if c.Cols() != tc.cols || c.Rows() != tc.rows || c.Left() != tc.left {
				t.Errorf("canvas = %dx%d at %d, expected %dx%d at %d",
					c.Cols(), c.Rows(), c.Left(), tc.cols, tc.rows, tc.left)
			}
			if c.Top() != 1 {
				t.Errorf("Top() = %d, expected 1", c.Top())
			}
		})
	}
}

func TestCanvasFillRectCoversACell(t *testing.T) {
	s := core.NewScreen(80, 25)
	c := NewCanvas(s, 600, 750, 1)

	c.FillRect(core.NewRect(0, 0, 1, 1), 'x', core.ColorRed)
	if got := s.GetCell(c.Left(), c.Top()); got.Rune != 'x' || got.Color != core.ColorRed {
		t.Errorf("cell = %+v, expected red x", got)
	}
}

func TestCanvasClipsOutside(t *testing.T) {
	s := core.NewScreen(80, 25)
	c := NewCanvas(s, 600, 750, 1)

	c.FillRect(core.NewRect(-100, -300, 50, 50), 'x', core.ColorRed)
	c.Set(700, 100, 'y', core.ColorRed)
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if r := s.Get(x, y); r == 'x' || r == 'y' {
				t.Fatalf("drawing outside the world leaked to (%d,%d)", x, y)
			}
		}
	}
}
