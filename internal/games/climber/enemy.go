package climber

import (
	"math/rand"

	"github.com/vovakirdan/skydodo/internal/config"
	"github.com/vovakirdan/skydodo/internal/core"
)

// Enemy is a square hazard that patrols horizontally around its origin.
type Enemy struct {
	X, Y      float64
	Size      float64
	Origin    float64 // patrol center (initial x)
	Range     float64 // patrol distance on each side of Origin
	Speed     float64
	Direction float64
	frame     int
}

// NewEnemy creates an enemy patrolling around x.
func NewEnemy(x, y, size, patrolRange, speed float64) *Enemy {
	return &Enemy{
		X:         x,
		Y:         y,
		Size:      size,
		Origin:    x,
		Range:     patrolRange,
		Speed:     speed,
		Direction: 1,
	}
}

// Rect returns the enemy's bounding rectangle.
func (e *Enemy) Rect() core.Rect {
	return core.NewRect(e.X, e.Y, e.Size, e.Size)
}

// Update moves the enemy along its patrol, staying inside [0, worldW-Size].
func (e *Enemy) Update(worldW float64) {
	e.frame++
	if e.Speed == 0 {
		return
	}

	e.X += e.Speed * e.Direction
	minX := core.ClampF(e.Origin-e.Range, 0, worldW-e.Size)
	maxX := core.ClampF(e.Origin+e.Range, 0, worldW-e.Size)
	switch {
	case e.X >= maxX:
		e.X = maxX
		e.Direction = -1
	case e.X <= minX:
		e.X = minX
		e.Direction = 1
	}
}

// Wrap moves an enemy that fell below the viewport back above it
// at a new random x. The enemy is mutated, not recreated.
func (e *Enemy) Wrap(rng *rand.Rand, cfg *config.ClimberConfig) {
	e.X = randomEnemyX(rng, cfg)
	e.Y = cfg.Enemies.RespawnY
	e.Origin = e.X
	e.Direction = 1
}

// Draw blits the enemy onto the canvas.
func (e *Enemy) Draw(c *Canvas) {
	ch := EnemyChar
	if (e.frame/12)%2 == 1 {
		ch = EnemyAltChar
	}
	c.FillRect(e.Rect(), ch, core.ColorEnemy)
}

// PlaceEnemies draws random positions until cfg.Enemies.Count enemies are
// accepted or the shared attempt budget runs out. A candidate is rejected if
// it overlaps a platform, comes within the platform buffer, or is closer than
// MinDistance to an accepted enemy. Fewer enemies than requested is a valid result.
func PlaceEnemies(rng *rand.Rand, cfg *config.ClimberConfig, platforms []*Platform, speed float64) []*Enemy {
	ec := cfg.Enemies
	enemies := make([]*Enemy, 0, ec.Count)

	for attempts := 0; len(enemies) < ec.Count && attempts < ec.MaxAttempts; attempts++ {
		x := randomEnemyX(rng, cfg)
		y := ec.TopMargin + rng.Float64()*(cfg.World.Height-ec.BottomMargin-ec.TopMargin)
		candidate := core.NewRect(x, y, ec.Size, ec.Size)

		if !clearOfPlatforms(candidate, platforms, ec.BufferX, ec.BufferY) {
			continue
		}
		if tooCloseToEnemies(x, y, enemies, ec.MinDistance) {
			continue
		}
		enemies = append(enemies, NewEnemy(x, y, ec.Size, ec.PatrolRange, speed))
	}
	return enemies
}

func clearOfPlatforms(r core.Rect, platforms []*Platform, bufferX, bufferY float64) bool {
	buffered := r.Expand(bufferX, bufferY)
	for _, p := range platforms {
		extent := p.Extent()
		if core.Overlaps(r, extent) || core.Overlaps(buffered, extent) {
			return false
		}
	}
	return true
}

func tooCloseToEnemies(x, y float64, enemies []*Enemy, minDistance float64) bool {
	for _, e := range enemies {
		if core.Distance(x, y, e.X, e.Y) < minDistance {
			return true
		}
	}
	return false
}

func randomEnemyX(rng *rand.Rand, cfg *config.ClimberConfig) float64 {
	ec := cfg.Enemies
	minX := ec.EdgeMargin
	maxX := cfg.World.Width - ec.EdgeMargin - ec.Size
	if maxX < minX {
		return minX
	}
	return minX + rng.Float64()*(maxX-minX)
}
