package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by Validate failures.
var ErrInvalid = errors.New("config: invalid climber configuration")

// LocalConfigPath is the project-relative config location.
const LocalConfigPath = "configs/climber.yaml"

// LoadClimber loads the climber configuration.
// Search order: customPath -> ~/.skydodo/configs/climber.yaml -> ./configs/climber.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides the keys it names.
func LoadClimber(customPath string) (ClimberConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ClimberConfig{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := ParseClimber(data)
		if err != nil {
			return ClimberConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("climber.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseClimber(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(LocalConfigPath); err == nil {
		if cfg, err := ParseClimber(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseClimber(defaultClimberYAML)
	if err != nil {
		return DefaultClimberConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseClimber decodes YAML over DefaultClimberConfig and validates the result.
func ParseClimber(data []byte) (ClimberConfig, error) {
	cfg := DefaultClimberConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ClimberConfig{}, fmt.Errorf("parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return ClimberConfig{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the field generator cannot satisfy.
func (c ClimberConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("%w: world must have a positive size", ErrInvalid)
	case c.Platforms.Width+2*c.Platforms.Margin > c.World.Width:
		return fmt.Errorf("%w: platforms (%.0f + margins) wider than the world (%.0f)",
			ErrInvalid, c.Platforms.Width, c.World.Width)
	case c.Platforms.Count < 0 || c.Enemies.Count < 0:
		return fmt.Errorf("%w: negative entity count", ErrInvalid)
	case c.Recycle.SpawnMinY > c.Recycle.SpawnMaxY:
		return fmt.Errorf("%w: recycle spawn band is inverted", ErrInvalid)
	case c.Scroll.DistancePerLevel <= 0:
		return fmt.Errorf("%w: distance_per_level must be positive", ErrInvalid)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".skydodo", "configs", filename)
}

// ApplyClimberPreset modifies the config based on a difficulty preset.
func ApplyClimberPreset(cfg *ClimberConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
