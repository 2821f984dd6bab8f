// Package config provides YAML-based game configuration loading and
// difficulty management for the climber.
package config

// ClimberConfig contains all configuration for the endless climber.
// All distances are world units (logical pixels, y grows downward).
type ClimberConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Platforms  PlatformsConfig  `yaml:"platforms"`
	Recycle    RecycleConfig    `yaml:"recycle"`
	Enemies    EnemiesConfig    `yaml:"enemies"`
	Scroll     ScrollConfig     `yaml:"scroll"`
	Background BackgroundConfig `yaml:"background"`
	HUD        HUDConfig        `yaml:"hud"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the logical playfield.
type WorldConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"`
}

// PlayerConfig defines the bird's size and physics.
type PlayerConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	StartX       float64 `yaml:"start_x"`
	StartOffset  float64 `yaml:"start_offset"` // distance of the start y above the bottom edge
	Speed        float64 `yaml:"speed"`
	Gravity      float64 `yaml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // 0 disables the cap
	IdleHitbox   Hitbox  `yaml:"idle_hitbox"`
	FlyHitbox    Hitbox  `yaml:"fly_hitbox"`
}

// Hitbox scales the sprite rectangle into the collision rectangle.
type Hitbox struct {
	WidthRatio  float64 `yaml:"width_ratio"`
	HeightRatio float64 `yaml:"height_ratio"`
}

// PlatformsConfig defines the initial field and platform motion.
type PlatformsConfig struct {
	Count        int     `yaml:"count"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Spacing      float64 `yaml:"spacing"`
	Margin       float64 `yaml:"margin"`
	MovingChance float64 `yaml:"moving_chance"`
	MoveRange    float64 `yaml:"move_range"`
	MinMoveRange float64 `yaml:"min_move_range"`
	MoveSpeed    float64 `yaml:"move_speed"`
}

// RecycleConfig defines how replacement platforms are placed above the viewport.
type RecycleConfig struct {
	MaxAttempts        int     `yaml:"max_attempts"`
	SpawnMinY          float64 `yaml:"spawn_min_y"`
	SpawnMaxY          float64 `yaml:"spawn_max_y"`
	MinVerticalGap     float64 `yaml:"min_vertical_gap"`
	MaxVerticalGap     float64 `yaml:"max_vertical_gap"`
	MaxHorizontalReach float64 `yaml:"max_horizontal_reach"`
}

// EnemiesConfig defines enemy placement and patrol.
type EnemiesConfig struct {
	Count        int     `yaml:"count"`
	Size         float64 `yaml:"size"`
	MinDistance  float64 `yaml:"min_distance"`
	BufferX      float64 `yaml:"buffer_x"`
	BufferY      float64 `yaml:"buffer_y"`
	MaxAttempts  int     `yaml:"max_attempts"`
	EdgeMargin   float64 `yaml:"edge_margin"`
	TopMargin    float64 `yaml:"top_margin"`
	BottomMargin float64 `yaml:"bottom_margin"`
	PatrolRange  float64 `yaml:"patrol_range"`
	PatrolSpeed  float64 `yaml:"patrol_speed"`
	RespawnY     float64 `yaml:"respawn_y"`
}

// ScrollConfig defines the scroll trigger, landing and level progression.
type ScrollConfig struct {
	TriggerDivisor   float64 `yaml:"trigger_divisor"` // trigger line is world height / divisor
	LandingTolerance float64 `yaml:"landing_tolerance"`
	DistancePerLevel float64 `yaml:"distance_per_level"`
}

// BackgroundConfig defines the parallax sky and clouds.
type BackgroundConfig struct {
	SkySpeed          float64 `yaml:"sky_speed"`
	Clouds            int     `yaml:"clouds"`
	CloudWidth        float64 `yaml:"cloud_width"`
	CloudHeight       float64 `yaml:"cloud_height"`
	CloudMinSpeed     float64 `yaml:"cloud_min_speed"`
	CloudMaxSpeed     float64 `yaml:"cloud_max_speed"`
	PlacementAttempts int     `yaml:"placement_attempts"`
	Parallax          float64 `yaml:"parallax"` // share of the world scroll applied to clouds
}

// HUDConfig defines overlay timings.
type HUDConfig struct {
	LevelBannerMS int `yaml:"level_banner_ms"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to platform and enemy speed at max difficulty
	MovingBonus     float64 `yaml:"moving_bonus"`     // Added to the moving-platform chance at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset.
// Unknown names yield false.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// TriggerLine returns the y coordinate above which the world scrolls.
func (c ClimberConfig) TriggerLine() float64 {
	if c.Scroll.TriggerDivisor <= 0 {
		return c.World.Height / 3
	}
	return c.World.Height / c.Scroll.TriggerDivisor
}

// StartY returns the player's initial y coordinate.
func (c ClimberConfig) StartY() float64 {
	return c.World.Height - c.Player.StartOffset
}
