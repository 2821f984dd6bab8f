package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skydodo/internal/core"
	"github.com/vovakirdan/skydodo/internal/games/climber"
	"github.com/vovakirdan/skydodo/internal/platform/tui"
	"github.com/vovakirdan/skydodo/internal/registry"
)

var flagZen bool

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Start a run",
	Long: `Start a run without going through the menu.

Controls:
  A/D, Left/Right  - Steer
  Space/W/Up       - Jump
  P/Esc            - Pause
  I                - Controls overlay
  R/Space          - Retry (after game over)
  B                - Back to menu (paused or after game over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  skydodo play
  skydodo play --zen
  skydodo play skydodo_zen --difficulty easy
  skydodo play --config ./my-climber.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagZen, "zen", false, "Play without enemies")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := climber.ID
	if flagZen {
		gameID = climber.ZenID
	}
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q; run 'skydodo list' to see them", gameID)
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	cfg := runtimeConfig()
	outcome, err := playVariant(a, gameID, cfg)
	if err != nil {
		return err
	}
	if outcome == tui.OutcomeMenu {
		return menuLoop(a, cfg)
	}
	return nil
}

// playVariant runs one variant until the player leaves it.
func playVariant(a *app, gameID string, cfg core.RuntimeConfig) (tui.Outcome, error) {
	game, err := registry.Create(gameID)
	if err != nil {
		return tui.OutcomeQuit, err
	}
	logger.Debug("starting", "game", gameID, "fps", cfg.TickRate, "seed", cfg.Seed)

	outcome, err := tui.RunGame(game, cfg, a.gameOptions())
	if err != nil {
		return tui.OutcomeQuit, err
	}
	if c, ok := game.(*climber.Game); ok && c.ConfigError() != nil {
		logger.Warn("config fell back to defaults", "err", c.ConfigError())
	}
	return outcome, nil
}
