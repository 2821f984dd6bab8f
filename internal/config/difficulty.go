package config

import "math"

// Progression sources.
const (
	ProgressScore = "score"
	ProgressTime  = "time"
	ProgressNone  = "none"
)

// DifficultyManager turns run progress into a 0..1 difficulty level and
// scales platform and enemy parameters by it.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	d := &DifficultyManager{cfg: cfg}
	d.SetInitialLevel(cfg.InitialLevel)
	return d
}

// SetInitialLevel overrides the starting level, clamped to 0..1.
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0, 1)
}

// IsEnabled reports whether the level grows during a run.
func (d *DifficultyManager) IsEnabled() bool {
	switch d.cfg.Progression.Type {
	case ProgressScore, ProgressTime:
		return d.cfg.Enabled
	default:
		return false
	}
}

// Level returns the difficulty for the given score and tick count. It starts
// at the initial level and reaches 1 at Progression.MaxAt.
func (d *DifficultyManager) Level(score, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	done := float64(score)
	if d.cfg.Progression.Type == ProgressTime {
		done = float64(ticks)
	}
	progress := clampF(done/math.Max(float64(d.cfg.Progression.MaxAt), 1), 0, 1)
	return d.initialLevel + progress*(1-d.initialLevel)
}

// Speed returns a platform or enemy speed scaled by the difficulty level:
// base at level 0, base*(1+SpeedMultiplier) at level 1.
func (d *DifficultyManager) Speed(base float64, score, ticks int) float64 {
	return base * (1 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier)
}

// MovingChance returns the probability that a new platform oscillates.
func (d *DifficultyManager) MovingChance(base float64, score, ticks int) float64 {
	return clampF(base+d.Level(score, ticks)*d.cfg.Scaling.MovingBonus, 0, 1)
}

func clampF(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
