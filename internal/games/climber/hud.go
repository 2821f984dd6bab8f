package climber

import (
	"fmt"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/skydodo/internal/core"
)

// Banner slide timings in seconds; the hold fills the rest of the display time.
const (
	bannerSlideIn  = 0.25
	bannerSlideOut = 0.25
)

// InfoLines is the controls list shown by the info overlay.
var InfoLines = []string{
	"Controls:",
	"SPACE / W / UP   jump",
	"A D / LEFT RIGHT steer",
	"P / ESC          pause",
	"I                this panel",
	"Q                quit",
	"",
	"Land on green platforms.",
	"Avoid red enemies!",
}

// HUD draws the score line and the level-up banner.
// The banner row is driven by a chain of tweens: slide in, hold, slide out.
type HUD struct {
	text   string
	stages []*gween.Tween
	stage  int
	row    float32
}

// ShowLevel starts the level-up banner for the given display time.
func (h *HUD) ShowLevel(level int, durationMS int) {
	total := float32(durationMS) / 1000
	hold := total - bannerSlideIn - bannerSlideOut
	if hold < 0 {
		hold = 0
	}
	h.text = fmt.Sprintf(" LEVEL %d ", level)
	h.stages = []*gween.Tween{
		gween.New(-1, 2, bannerSlideIn, ease.OutBack),
		gween.New(2, 2, hold, ease.Linear),
		gween.New(2, -1, bannerSlideOut, ease.InQuad),
	}
	h.stage = 0
	h.row = -1
}

// BannerActive reports whether the banner is on screen.
func (h *HUD) BannerActive() bool {
	return h.stage < len(h.stages)
}

// Update advances the banner by dt seconds.
func (h *HUD) Update(dt float32) {
	for h.BannerActive() && dt >= 0 {
		current, finished := h.stages[h.stage].Update(dt)
		h.row = current
		if !finished {
			return
		}
		h.stage++
		// Leftover time is not carried into the next stage.
		dt = 0
		if h.stage >= len(h.stages) {
			return
		}
	}
}

// Draw renders the status line above the canvas and the banner inside it.
func (h *HUD) Draw(dst *core.Screen, c *Canvas, score, level, best int, zen bool) {
	status := fmt.Sprintf(" Score: %d  Level: %d  Best: %d ", score, level, best)
	if zen {
		status += " ZEN "
	}
	y := c.Top() - 1
	if y < 0 {
		y = 0
	}
	dst.DrawTextColored(c.Left(), y, status, core.ColorHUD)

	if h.BannerActive() && h.row >= 0 {
		row := c.Top() + int(h.row)
		x := c.Left() + (c.Cols()-len(h.text))/2
		dst.DrawTextColored(x, row, h.text, core.ColorBanner)
	}
}
