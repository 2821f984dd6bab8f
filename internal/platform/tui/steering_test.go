package tui

import (
	"testing"

	"github.com/vovakirdan/skydodo/internal/core"
)

func TestSteeringHold(t *testing.T) {
	s := NewSteering(3)
	s.Press(core.ActionRight)

	for i := 0; i < 3; i++ {
		f := core.NewInputFrame()
		s.Apply(&f)
		if f.Horizontal() != 1 {
			t.Fatalf("tick %d: horizontal = %v, expected 1", i, f.Horizontal())
		}
	}

	f := core.NewInputFrame()
	s.Apply(&f)
	if f.Horizontal() != 0 || s.Held() != 0 {
		t.Error("the hold should expire after holdTicks ticks")
	}
}

func TestSteeringOppositeReleases(t *testing.T) {
	s := NewSteering(0)
	if s.holdTicks != DefaultHoldTicks {
		t.Errorf("holdTicks = %d, expected default %d", s.holdTicks, DefaultHoldTicks)
	}

	s.Press(core.ActionLeft)
	s.Press(core.ActionRight)
	if s.Held() != 1 {
		t.Errorf("Held() = %d, expected 1", s.Held())
	}

	f := core.NewInputFrame()
	s.Apply(&f)
	if f.Has(core.ActionLeft) {
		t.Error("pressing right should release left")
	}

	s.Press(core.ActionJump)
	if s.Held() != 1 {
		t.Error("non-steering actions should not change the hold")
	}

	s.Release()
	if s.Held() != 0 {
		t.Error("Release should drop the hold")
	}
}
