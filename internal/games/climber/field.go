package climber

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/skydodo/internal/config"
	"github.com/vovakirdan/skydodo/internal/core"
)

// Tuning holds the motion parameters for newly placed platforms.
// The game adjusts it as difficulty rises.
type Tuning struct {
	MovingChance float64
	MoveSpeed    float64
}

// RecycleReport describes the outcome of one Recycle call.
type RecycleReport struct {
	Removed int // platforms that left the viewport
	Placed  int // replacements that found a valid position
}

// Shortfall returns how many removed platforms were not replaced.
func (r RecycleReport) Shortfall() int {
	return r.Removed - r.Placed
}

// Field owns the live platforms of one playthrough.
type Field struct {
	platforms []*Platform
	rng       *rand.Rand
	world     config.WorldConfig
	plat      config.PlatformsConfig
	recycle   config.RecycleConfig
	tuning    Tuning
}

// GenerateField builds the initial field: one ground platform followed by
// Platforms.Count regular platforms stacked upward at a fixed spacing.
func GenerateField(rng *rand.Rand, cfg *config.ClimberConfig) *Field {
	f := &Field{
		platforms: make([]*Platform, 0, cfg.Platforms.Count+1),
		rng:       rng,
		world:     cfg.World,
		plat:      cfg.Platforms,
		recycle:   cfg.Recycle,
		tuning: Tuning{
			MovingChance: cfg.Platforms.MovingChance,
			MoveSpeed:    cfg.Platforms.MoveSpeed,
		},
	}

	ground := NewGround(cfg.World.Width, cfg.World.Height, cfg.World.GroundHeight)
	f.platforms = append(f.platforms, ground)

	for i := 0; i < cfg.Platforms.Count; i++ {
		y := ground.Y - float64(i+1)*cfg.Platforms.Spacing
		f.platforms = append(f.platforms, f.newPlatform(f.randomX(), y))
	}
	return f
}

// Platforms returns the live platforms in iteration order.
// The slice is owned by the field and must not be modified.
func (f *Field) Platforms() []*Platform {
	return f.platforms
}

// Len returns the number of live platforms.
func (f *Field) Len() int {
	return len(f.platforms)
}

// Ground returns the ground platform, or nil once it has been recycled.
func (f *Field) Ground() *Platform {
	for _, p := range f.platforms {
		if p.Ground {
			return p
		}
	}
	return nil
}

// SetTuning changes motion parameters for platforms placed from now on.
func (f *Field) SetTuning(t Tuning) {
	f.tuning = t
}

// Tuning returns the current motion parameters.
func (f *Field) Tuning() Tuning {
	return f.tuning
}

// Update advances every platform's own motion.
func (f *Field) Update() {
	for _, p := range f.platforms {
		p.Update()
	}
}

// Scroll moves every platform down by delta.
func (f *Field) Scroll(delta float64) {
	for _, p := range f.platforms {
		p.Y += delta
	}
}

// Recycle removes platforms whose top edge is below the viewport and tries
// to place one replacement above the viewport for each of them.
// A replacement that cannot be placed within the attempt budget is dropped,
// so the field shrinks; it never grows.
func (f *Field) Recycle() RecycleReport {
	var report RecycleReport

	kept := f.platforms[:0]
	for _, p := range f.platforms {
		if p.Y > f.world.Height {
			report.Removed++
			continue
		}
		kept = append(kept, p)
	}
	// Clear the tail so removed platforms can be collected.
	for i := len(kept); i < len(f.platforms); i++ {
		f.platforms[i] = nil
	}
	f.platforms = kept

	for i := 0; i < report.Removed; i++ {
		if p := f.place(); p != nil {
			f.platforms = append(f.platforms, p)
			report.Placed++
		}
	}
	return report
}

// place draws up to MaxAttempts candidates and returns the first valid one.
func (f *Field) place() *Platform {
	for attempt := 0; attempt < f.recycle.MaxAttempts; attempt++ {
		y := f.recycle.SpawnMinY + f.rng.Float64()*(f.recycle.SpawnMaxY-f.recycle.SpawnMinY)
		candidate := f.newPlatform(f.randomX(), y)
		if f.fits(candidate) {
			return candidate
		}
	}
	return nil
}

// fits checks a candidate against every live platform.
func (f *Field) fits(c *Platform) bool {
	extent := c.Extent()
	for _, p := range f.platforms {
		if core.Overlaps(extent, p.Extent()) {
			return false
		}
		if core.VerticallyTooClose(c.Y, p.Y, f.recycle.MinVerticalGap) {
			return false
		}
	}
	return f.reachable(c)
}

// reachable reports whether some live platform is within both the vertical
// band and the horizontal reach of c. An empty field is always reachable.
func (f *Field) reachable(c *Platform) bool {
	if len(f.platforms) == 0 {
		return true
	}
	center := c.Rect().CenterX()
	for _, p := range f.platforms {
		if core.VerticallyWithinMax(c.Y, p.Y, f.recycle.MaxVerticalGap) &&
			core.HorizontallyReachable(center, p.Rect().CenterX(), f.recycle.MaxHorizontalReach) {
			return true
		}
	}
	return false
}

// newPlatform creates a regular platform at (x, y) and rolls its motion.
func (f *Field) newPlatform(x, y float64) *Platform {
	p := NewPlatform(x, y, f.plat.Width, f.plat.Height)
	if f.rng.Float64() >= f.tuning.MovingChance {
		return p
	}

	room := f.maxX() - x
	rangeX := math.Min(f.plat.MoveRange, room)
	if rangeX < f.plat.MinMoveRange || rangeX <= 0 {
		return p
	}
	p.Oscillate(rangeX, f.tuning.MoveSpeed)
	return p
}

// randomX draws a left edge within the horizontal margins.
func (f *Field) randomX() float64 {
	minX := f.plat.Margin
	return minX + f.rng.Float64()*(f.maxX()-minX)
}

// maxX is the largest left edge that keeps a platform inside the margins.
func (f *Field) maxX() float64 {
	return f.world.Width - f.plat.Width - f.plat.Margin
}
