package climber

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/skydodo/internal/core"
)

func TestNewBackgroundClouds(t *testing.T) {
	cfg := testConfig()
	for seed := int64(1); seed <= 20; seed++ {
		b := NewBackground(rand.New(rand.NewSource(seed)), &cfg)
		clouds := b.Clouds()
		if len(clouds) > cfg.Background.Clouds {
			t.Fatalf("seed %d: %d clouds, at most %d allowed", seed, len(clouds), cfg.Background.Clouds)
		}
		assertCloudsApart(t, clouds)

		for i, c := range clouds {
			onScreen := c.Y >= 0 && c.Y < cfg.World.Height/2
			if i < onScreenClouds && !onScreen {
				t.Errorf("seed %d: cloud %d at y=%v should start on screen", seed, i, c.Y)
			}
			if i >= onScreenClouds && (c.Y < -600 || c.Y > -100) {
				t.Errorf("seed %d: cloud %d at y=%v should start above the viewport", seed, i, c.Y)
			}
		}
	}
}

func TestBackgroundReplacesLostClouds(t *testing.T) {
	cfg := testConfig()
	b := NewBackground(rand.New(rand.NewSource(5)), &cfg)
	if len(b.Clouds()) == 0 {
		t.Fatal("expected clouds")
	}

	gone := b.Clouds()[0]
	gone.Y = cfg.World.Height + 1
	before := len(b.Clouds())

	b.Update()
	for _, c := range b.Clouds() {
		if c == gone {
			t.Fatal("cloud below the viewport should be replaced")
		}
	}
	if len(b.Clouds()) > before {
		t.Errorf("cloud count grew from %d to %d", before, len(b.Clouds()))
	}
	last := b.Clouds()[len(b.Clouds())-1]
	if len(b.Clouds()) == before && last.Y >= 0 {
		t.Errorf("replacement cloud at y=%v should spawn above the viewport", last.Y)
	}
}

func TestBackgroundParallax(t *testing.T) {
	cfg := testConfig()
	b := NewBackground(rand.New(rand.NewSource(2)), &cfg)
	before := make([]float64, len(b.Clouds()))
	for i, c := range b.Clouds() {
		before[i] = c.Y
	}

	b.Scroll(40)
	for i, c := range b.Clouds() {
		if want := before[i] + 40*cfg.Background.Parallax; c.Y != want {
			t.Errorf("cloud %d y = %v, expected %v", i, c.Y, want)
		}
	}
}

func TestBackgroundZeroAttempts(t *testing.T) {
	cfg := testConfig()
	cfg.Background.PlacementAttempts = 0
	b := NewBackground(rand.New(rand.NewSource(1)), &cfg)
	if len(b.Clouds()) != 0 {
		t.Errorf("no attempts should place no clouds, got %d", len(b.Clouds()))
	}
}

func assertCloudsApart(t *testing.T, clouds []*Cloud) {
	t.Helper()
	for i := range clouds {
		for j := i + 1; j < len(clouds); j++ {
			if core.Overlaps(clouds[i].Rect(), clouds[j].Rect()) {
				t.Errorf("clouds %d and %d overlap", i, j)
			}
		}
	}
}
