package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedMatchesDefaults(t *testing.T) {
	cfg, err := ParseClimber(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded yaml failed to parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultClimberConfig()) {
		t.Errorf("embedded yaml and DefaultClimberConfig differ:\n%+v\n%+v", cfg, DefaultClimberConfig())
	}
}

func TestDefaultGeometry(t *testing.T) {
	cfg := DefaultClimberConfig()
	if got := cfg.TriggerLine(); got != 250 {
		t.Errorf("TriggerLine() = %v, expected 250", got)
	}
	if got := cfg.StartY(); got != 600 {
		t.Errorf("StartY() = %v, expected 600", got)
	}
}

func TestLoadClimberCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "climber.yaml")
	data := []byte("enemies:\n  count: 5\nplatforms:\n  count: 12\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadClimber(path)
	if err != nil {
		t.Fatalf("LoadClimber() error = %v", err)
	}
	if cfg.Enemies.Count != 5 || cfg.Platforms.Count != 12 {
		t.Errorf("overrides not applied: enemies=%d platforms=%d", cfg.Enemies.Count, cfg.Platforms.Count)
	}
	// Untouched keys keep their defaults
	if cfg.World.Height != 750 || cfg.Recycle.MaxAttempts != 10 {
		t.Errorf("defaults lost: height=%v attempts=%d", cfg.World.Height, cfg.Recycle.MaxAttempts)
	}
}

func TestLoadClimberErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadClimber(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing custom file: err = %v, expected ErrNotExist", err)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("world: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadClimber(bad); err == nil {
		t.Error("malformed yaml should fail when given explicitly")
	}

	narrow := filepath.Join(dir, "narrow.yaml")
	if err := os.WriteFile(narrow, []byte("world:\n  width: 100\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadClimber(narrow); !errors.Is(err, ErrInvalid) {
		t.Errorf("narrow world: err = %v, expected ErrInvalid", err)
	}
}

func TestApplyClimberPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		enabled bool
		initial float64
	}{
		{DifficultyEasy, true, 0.0},
		{DifficultyNormal, true, 0.3},
		{DifficultyHard, true, 0.7},
		{DifficultyFixed, false, 0.0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultClimberConfig()
			ApplyClimberPreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.initial {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tc.initial)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, ok := ParsePreset("hard"); !ok || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, ok)
	}
	if _, ok := ParsePreset("nightmare"); ok {
		t.Error("unknown preset should not parse")
	}
}

func TestDifficultyManager(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 1000},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0, MovingBonus: 0.4},
	}
	d := NewDifficultyManager(cfg)

	tests := []struct {
		name   string
		score  int
		level  float64
		speed  float64
		chance float64
	}{
		{"start", 0, 0, 2, 0.2},
		{"halfway", 500, 0.5, 3, 0.4},
		{"max", 1000, 1, 4, 0.6},
		{"beyond max", 5000, 1, 4, 0.6},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := d.Level(tc.score, 0); got != tc.level {
				t.Errorf("Level() = %v, expected %v", got, tc.level)
			}
			if got := d.Speed(2, tc.score, 0); got != tc.speed {
				t.Errorf("Speed() = %v, expected %v", got, tc.speed)
			}
			if got := d.MovingChance(0.2, tc.score, 0); !near(got, tc.chance) {
				t.Errorf("MovingChance() = %v, expected %v", got, tc.chance)
			}
		})
	}
}

func TestDifficultyManagerDisabled(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.3,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
	})
	if d.IsEnabled() {
		t.Error("manager should report disabled")
	}
	if got := d.Level(10_000, 0); got != 0.3 {
		t.Errorf("disabled Level() = %v, expected initial 0.3", got)
	}

	d.SetInitialLevel(4)
	if got := d.Level(0, 0); got != 1 {
		t.Errorf("SetInitialLevel should clamp to 1, got %v", got)
	}
}

func near(a, b float64) bool {
	const eps = 1e-9
	return a-b < eps && b-a < eps
}
