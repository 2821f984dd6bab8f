package tui

import "github.com/vovakirdan/skydodo/internal/core"

// DefaultHoldTicks is how long one steering key press keeps the bird moving.
// Terminals report presses and auto-repeats but never releases, so a held key
// is emulated by extending the hold on every repeat.
const DefaultHoldTicks = 8

// Steering turns discrete left/right presses into held directions.
type Steering struct {
	holdTicks   int
	left, right int
}

// NewSteering creates a steering state; holdTicks <= 0 uses DefaultHoldTicks.
func NewSteering(holdTicks int) Steering {
	if holdTicks <= 0 {
		holdTicks = DefaultHoldTicks
	}
	return Steering{holdTicks: holdTicks}
}

// Press registers a left or right press. The opposite direction is released.
func (s *Steering) Press(a core.Action) {
	switch a {
	case core.ActionLeft:
		s.left = s.holdTicks
		s.right = 0
	case core.ActionRight:
		s.right = s.holdTicks
		s.left = 0
	}
}

// Apply marks the held directions on frame and counts one tick down.
func (s *Steering) Apply(frame *core.InputFrame) {
	if s.left > 0 {
		frame.Set(core.ActionLeft)
		s.left--
	}
	if s.right > 0 {
		frame.Set(core.ActionRight)
		s.right--
	}
}

// Release drops any held direction.
func (s *Steering) Release() {
	s.left, s.right = 0, 0
}

// Held returns -1, 0 or +1 for the currently held direction.
func (s Steering) Held() int {
	switch {
	case s.left > 0:
		return -1
	case s.right > 0:
		return 1
	default:
		return 0
	}
}
