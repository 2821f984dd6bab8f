package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/skydodo/internal/config"
	"github.com/vovakirdan/skydodo/internal/persist"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change settings",
	Long: `Show the saved settings, change the volume, or print the climber
configuration in effect.

Examples:
  skydodo settings
  skydodo settings volume 0.3
  skydodo settings config --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runSettingsShow,
}

var volumeCmd = &cobra.Command{
	Use:   "volume <0..1>",
	Short: "Set the sound volume",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsVolume,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the climber configuration in effect as YAML",
	Args:  cobra.NoArgs,
	RunE:  runSettingsConfig,
}

func init() {
	settingsCmd.AddCommand(volumeCmd)
	settingsCmd.AddCommand(configCmd)
}

func openSettings() (*persist.SettingsStore, error) {
	items, err := persist.OpenItemStore()
	if err != nil {
		return nil, err
	}
	return persist.NewSettingsStore(items), nil
}

func runSettingsShow(_ *cobra.Command, _ []string) error {
	store, err := openSettings()
	if err != nil {
		return err
	}
	prefs, err := store.Load()
	if err != nil {
		logger.Warn("using default settings", "err", err)
	}

	fmt.Printf("Volume: %.0f%%\n", prefs.Volume*100)
	if path, err := persist.HighScorePath(flagHighScore); err == nil {
		fmt.Printf("High score file: %s (best %d)\n", path, persist.LoadHighScore(path))
	}
	fmt.Printf("Scores database: %s\n", flagDBPath)
	return nil
}

func runSettingsVolume(_ *cobra.Command, args []string) error {
	v, err := strconv.ParseFloat(args[0], 64)
	if err != nil || v < 0 || v > 1 {
		return fmt.Errorf("volume must be a number between 0 and 1, got %q", args[0])
	}

	store, err := openSettings()
	if err != nil {
		return err
	}
	prefs, err := store.Load()
	if err != nil {
		logger.Warn("replacing unreadable settings", "err", err)
	}
	prefs.Volume = v
	if err := store.Save(prefs); err != nil {
		return err
	}
	fmt.Printf("Volume set to %.0f%%\n", v*100)
	return nil
}

func runSettingsConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadClimber(flagConfig)
	if err != nil {
		return err
	}
	if p, ok := config.ParsePreset(flagDifficulty); ok {
		config.ApplyClimberPreset(&cfg, p)
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	defer enc.Close()
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	return nil
}
