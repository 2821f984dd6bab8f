package config

import (
	_ "embed"
)

//go:embed defaults/climber.yaml
var defaultClimberYAML []byte

// DefaultClimberConfig returns the default climber configuration.
// It mirrors defaults/climber.yaml and is used when the embedded file cannot be parsed.
func DefaultClimberConfig() ClimberConfig {
	return ClimberConfig{
		World: WorldConfig{
			Width:        600,
			Height:       750,
			GroundHeight: 20,
		},
		Player: PlayerConfig{
			Width:       64,
			Height:      64,
			StartX:      300,
			StartOffset: 150,
			Speed:       5,
			Gravity:     0.6,
			JumpImpulse: -20,
			IdleHitbox:  Hitbox{WidthRatio: 0.70, HeightRatio: 0.85},
			FlyHitbox:   Hitbox{WidthRatio: 0.75, HeightRatio: 0.70},
		},
		Platforms: PlatformsConfig{
			Count:        8,
			Width:        110,
			Height:       25,
			Spacing:      90,
			Margin:       10,
			MovingChance: 0.2,
			MoveRange:    80,
			MinMoveRange: 20,
			MoveSpeed:    1.5,
		},
		Recycle: RecycleConfig{
			MaxAttempts:        10,
			SpawnMinY:          -100,
			SpawnMaxY:          -10,
			MinVerticalGap:     60,
			MaxVerticalGap:     180,
			MaxHorizontalReach: 250,
		},
		Enemies: EnemiesConfig{
			Count:        3,
			Size:         50,
			MinDistance:  200,
			BufferX:      150,
			BufferY:      40,
			MaxAttempts:  1000,
			EdgeMargin:   50,
			TopMargin:    100,
			BottomMargin: 200,
			PatrolRange:  100,
			PatrolSpeed:  2,
			RespawnY:     -50,
		},
		Scroll: ScrollConfig{
			TriggerDivisor:   3,
			LandingTolerance: 10,
			DistancePerLevel: 300,
		},
		Background: BackgroundConfig{
			SkySpeed:          0.2,
			Clouds:            5,
			CloudWidth:        120,
			CloudHeight:       50,
			CloudMinSpeed:     0.5,
			CloudMaxSpeed:     2.5,
			PlacementAttempts: 100,
			Parallax:          0.5,
		},
		HUD: HUDConfig{
			LevelBannerMS: 2000,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 6000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				MovingBonus:     0.4,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
// Used by `skydodo settings config` to print a starting point for user files.
func DefaultYAML() []byte {
	return defaultClimberYAML
}
