package climber

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/skydodo/internal/core"
)

func TestPlaceEnemiesSpacing(t *testing.T) {
	cfg := testConfig()
	ec := cfg.Enemies

	placedAny := false
	for seed := int64(1); seed <= 40; seed++ {
		rng := rand.New(rand.NewSource(seed))
		field := GenerateField(rng, &cfg)
		enemies := PlaceEnemies(rng, &cfg, field.Platforms(), ec.PatrolSpeed)

		if len(enemies) > ec.Count {
			t.Fatalf("seed %d: placed %d enemies, more than %d", seed, len(enemies), ec.Count)
		}
		placedAny = placedAny || len(enemies) > 0

		for i, e := range enemies {
			if e.X < ec.EdgeMargin || e.X > cfg.World.Width-ec.EdgeMargin-ec.Size {
				t.Errorf("seed %d: enemy %d x=%v outside bounds", seed, i, e.X)
			}
			if e.Y < ec.TopMargin || e.Y > cfg.World.Height-ec.BottomMargin {
				t.Errorf("seed %d: enemy %d y=%v outside bounds", seed, i, e.Y)
			}

			buffered := e.Rect().Expand(ec.BufferX, ec.BufferY)
			for _, p := range field.Platforms() {
				if core.Overlaps(e.Rect(), p.Rect()) {
					t.Errorf("seed %d: enemy %d overlaps a platform", seed, i)
				}
				if core.Overlaps(buffered, p.Rect()) {
					t.Errorf("seed %d: enemy %d within platform buffer", seed, i)
				}
			}

			for j := i + 1; j < len(enemies); j++ {
				if d := core.Distance(e.X, e.Y, enemies[j].X, enemies[j].Y); d < ec.MinDistance {
					t.Errorf("seed %d: enemies %d and %d only %v apart", seed, i, j, d)
				}
			}
		}
	}
	if !placedAny {
		t.Error("expected at least one seed to place enemies")
	}
}

func TestPlaceEnemiesBudget(t *testing.T) {
	cfg := testConfig()
	rng := rand.New(rand.NewSource(1))

	cfg.Enemies.MaxAttempts = 0
	if got := PlaceEnemies(rng, &cfg, nil, 2); len(got) != 0 {
		t.Errorf("zero budget placed %d enemies", len(got))
	}

	// Far more enemies than fit at this spacing: a partial result, no error.
	cfg.Enemies.MaxAttempts = 1000
	cfg.Enemies.Count = 50
	got := PlaceEnemies(rng, &cfg, nil, 2)
	if len(got) == 0 || len(got) >= 50 {
		t.Errorf("expected a partial placement, got %d", len(got))
	}
}

func TestEnemyPatrol(t *testing.T) {
	e := NewEnemy(200, 100, 50, 100, 2)
	for i := 0; i < 50; i++ {
		e.Update(600)
	}
	if e.X != 300 || e.Direction != -1 {
		t.Errorf("after 50 ticks X=%v dir=%v, expected 300 and -1", e.X, e.Direction)
	}

	for i := 0; i < 100; i++ {
		e.Update(600)
	}
	if e.X != 100 || e.Direction != 1 {
		t.Errorf("after 150 ticks X=%v dir=%v, expected 100 and +1", e.X, e.Direction)
	}
}

func TestEnemyPatrolStaysInWorld(t *testing.T) {
	e := NewEnemy(20, 100, 50, 100, 4)
	e.Direction = -1
	for i := 0; i < 200; i++ {
		e.Update(600)
		if e.X < 0 || e.X > 550 {
			t.Fatalf("tick %d: X=%v left the world", i, e.X)
		}
	}
}

func TestEnemyWrap(t *testing.T) {
	cfg := testConfig()
	e := NewEnemy(100, 800, 50, 100, 2)
	e.Direction = -1

	e.Wrap(rand.New(rand.NewSource(4)), &cfg)
	if e.Y != cfg.Enemies.RespawnY {
		t.Errorf("Y = %v, expected %v", e.Y, cfg.Enemies.RespawnY)
	}
	if e.Origin != e.X || e.Direction != 1 {
		t.Errorf("patrol not reset: origin=%v x=%v dir=%v", e.Origin, e.X, e.Direction)
	}
	if e.X < cfg.Enemies.EdgeMargin || e.X > cfg.World.Width-cfg.Enemies.EdgeMargin-e.Size {
		t.Errorf("X = %v outside spawn bounds", e.X)
	}
}

func TestHazardsHit(t *testing.T) {
	e := NewEnemy(100, 100, 50, 0, 0)
	h := NewHazards(600, 750, []*Enemy{e})

	tests := []struct {
		name string
		r    core.Rect
		hit  bool
	}{
		{"overlapping", core.NewRect(120, 120, 10, 10), true},
		{"far away", core.NewRect(400, 400, 10, 10), false},
		{"touching edge", core.NewRect(150, 100, 10, 10), false},
		{"same cell, no overlap", core.NewRect(151, 151, 5, 5), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := h.Hit(tc.r)
			if (got != nil) != tc.hit {
				t.Errorf("Hit(%+v) = %v, expected hit=%v", tc.r, got, tc.hit)
			}
		})
	}
}

func TestHazardsSync(t *testing.T) {
	e := NewEnemy(100, 100, 50, 0, 0)
	h := NewHazards(600, 750, []*Enemy{e})

	// Above the viewport, still tracked
	e.X, e.Y = 300, -60
	h.Sync()

	if h.Hit(core.NewRect(110, 110, 10, 10)) != nil {
		t.Error("old position should no longer hit after Sync")
	}
	if h.Hit(core.NewRect(310, -40, 10, 10)) != e {
		t.Error("new position above the viewport should hit")
	}
}

func TestHazardsEmpty(t *testing.T) {
	h := NewHazards(600, 750, nil)
	h.Sync()
	if h.Hit(core.NewRect(0, 0, 600, 750)) != nil {
		t.Error("no enemies should never hit")
	}
}
