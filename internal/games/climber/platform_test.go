package climber

import (
	"testing"

	"github.com/vovakirdan/skydodo/internal/core"
)

func TestPlatformOscillation(t *testing.T) {
	p := NewPlatform(100, 0, 110, 25)
	p.Oscillate(50, 2)

	for i := 0; i < 24; i++ {
		p.Update()
	}
	if p.X != 148 || p.Direction != 1 {
		t.Fatalf("after 24 ticks: X=%v dir=%v, expected 148 and +1", p.X, p.Direction)
	}

	p.Update()
	if p.X != 150 {
		t.Errorf("after 25 ticks X = %v, expected 150", p.X)
	}
	if p.Direction != -1 {
		t.Errorf("direction should reverse at origin+range, got %v", p.Direction)
	}
	if p.DeltaX != 2 {
		t.Errorf("DeltaX = %v, expected 2", p.DeltaX)
	}

	p.Update()
	if p.X != 148 || p.DeltaX != -2 {
		t.Errorf("after reversal: X=%v DeltaX=%v, expected 148 and -2", p.X, p.DeltaX)
	}

	// Back to the origin after another 24 ticks
	for i := 0; i < 24; i++ {
		p.Update()
	}
	if p.X != 100 || p.Direction != 1 {
		t.Errorf("at origin: X=%v dir=%v, expected 100 and +1", p.X, p.Direction)
	}
}

func TestPlatformClampsOvershoot(t *testing.T) {
	p := NewPlatform(0, 0, 10, 10)
	p.Oscillate(5, 3)

	p.Update() // 3
	p.Update() // 6 -> clamped to 5
	if p.X != 5 || p.Direction != -1 {
		t.Errorf("X=%v dir=%v, expected clamp to 5 and -1", p.X, p.Direction)
	}
	if p.DeltaX != 2 {
		t.Errorf("DeltaX should record the clamped move, got %v", p.DeltaX)
	}
}

func TestPlatformStationary(t *testing.T) {
	p := NewPlatform(10, 20, 110, 25)
	for i := 0; i < 5; i++ {
		p.Update()
	}
	if p.X != 10 || p.DeltaX != 0 {
		t.Errorf("stationary platform moved: X=%v DeltaX=%v", p.X, p.DeltaX)
	}
	if p.Extent() != p.Rect() {
		t.Errorf("stationary extent %+v should equal rect %+v", p.Extent(), p.Rect())
	}
	if p.Motion.String() != "stationary" {
		t.Errorf("Motion.String() = %q", p.Motion.String())
	}
}

func TestPlatformExtent(t *testing.T) {
	p := NewPlatform(100, 40, 110, 25)
	p.Oscillate(50, 2)
	for i := 0; i < 10; i++ {
		p.Update()
	}

	want := core.NewRect(100, 40, 160, 25)
	if got := p.Extent(); got != want {
		t.Errorf("Extent() = %+v, expected %+v", got, want)
	}
	if !rectWithin(p.Rect(), p.Extent()) {
		t.Error("current rect should lie inside the extent")
	}
}

func TestNewGround(t *testing.T) {
	g := NewGround(600, 750, 20)
	if !g.Ground || g.Motion != MotionStationary {
		t.Errorf("ground flags wrong: %+v", g)
	}
	if g.Rect() != core.NewRect(0, 730, 600, 20) {
		t.Errorf("ground rect = %+v", g.Rect())
	}
}

func rectWithin(inner, outer core.Rect) bool {
	return inner.X >= outer.X && inner.Y >= outer.Y &&
		inner.Right() <= outer.Right() && inner.Bottom() <= outer.Bottom()
}
