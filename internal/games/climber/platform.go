package climber

import (
	"github.com/vovakirdan/skydodo/internal/core"
)

// Motion describes how a platform moves on its own.
type Motion int

const (
	MotionStationary Motion = iota
	MotionOscillating
)

func (m Motion) String() string {
	if m == MotionOscillating {
		return "oscillating"
	}
	return "stationary"
}

// Platform is a rectangle the player can land on.
// X and Y are the top-left corner in world units.
type Platform struct {
	X, Y   float64
	W, H   float64
	Ground bool
	Motion Motion

	Origin    float64 // left bound of the oscillation
	Range     float64 // distance travelled right of Origin
	Speed     float64
	Direction float64 // +1 or -1
	DeltaX    float64 // horizontal movement applied by the last Update
}

// NewPlatform creates a stationary platform.
func NewPlatform(x, y, w, h float64) *Platform {
	return &Platform{X: x, Y: y, W: w, H: h, Motion: MotionStationary, Direction: 1}
}

// NewGround creates the full-width ground platform at the bottom of the world.
func NewGround(worldW, worldH, height float64) *Platform {
	p := NewPlatform(0, worldH-height, worldW, height)
	p.Ground = true
	return p
}

// Oscillate turns the platform into a moving one that travels
// between its current x and x+rangeX.
func (p *Platform) Oscillate(rangeX, speed float64) {
	p.Motion = MotionOscillating
	p.Origin = p.X
	p.Range = rangeX
	p.Speed = speed
	p.Direction = 1
}

// Update advances the oscillation by one tick and records DeltaX.
func (p *Platform) Update() {
	if p.Motion != MotionOscillating {
		p.DeltaX = 0
		return
	}

	prev := p.X
	p.X += p.Speed * p.Direction
	switch {
	case p.X >= p.Origin+p.Range:
		p.X = p.Origin + p.Range
		p.Direction = -1
	case p.X <= p.Origin:
		p.X = p.Origin
		p.Direction = 1
	}
	p.DeltaX = p.X - prev
}

// Rect returns the platform's current rectangle.
func (p *Platform) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Extent returns the rectangle swept by the platform over its whole path.
// For stationary platforms it equals Rect.
func (p *Platform) Extent() core.Rect {
	if p.Motion != MotionOscillating {
		return p.Rect()
	}
	return core.NewRect(p.Origin, p.Y, p.Range+p.W, p.H)
}

// Draw blits the platform onto the canvas.
func (p *Platform) Draw(c *Canvas) {
	switch {
	case p.Ground:
		c.FillRect(p.Rect(), GroundChar, core.ColorGround)
	case p.Motion == MotionOscillating:
		c.FillRect(p.Rect(), MovingPlatformChar, core.ColorMovingPlatform)
	default:
		c.FillRect(p.Rect(), PlatformChar, core.ColorPlatform)
	}
}
