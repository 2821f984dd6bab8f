package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skydodo/internal/core"
	"github.com/vovakirdan/skydodo/internal/games/climber"
	"github.com/vovakirdan/skydodo/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the main menu",
	Long: `Start SkyDodo in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a run you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q/Esc        - Quit

Examples:
  skydodo menu
  skydodo menu --fps 30
  skydodo menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	return menuLoop(a, runtimeConfig())
}

// menuLoop shows the menu until the player quits.
func menuLoop(a *app, cfg core.RuntimeConfig) error {
	for {
		res, err := tui.RunMenu(cfg, a.recorder.Best(climber.ID))
		if err != nil {
			return err
		}
		cfg = res.Config

		switch res.Choice {
		case tui.ChoicePlay, tui.ChoiceZen:
			gameID := climber.ID
			if res.Choice == tui.ChoiceZen {
				gameID = climber.ZenID
			}
			// A fixed --seed replays the same first run; later ones vary.
			if cfg.Seed == 0 {
				cfg.Seed = time.Now().UnixNano()
			}
			outcome, err := playVariant(a, gameID, cfg)
			cfg.Seed = 0
			if err != nil {
				return err
			}
			if outcome == tui.OutcomeQuit {
				return nil
			}

		case tui.ChoiceScores:
			goBack, err := tui.RunScoreboard(a.store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		case tui.ChoiceSettings:
			prefs, err := tui.RunSettings(a.settings, a.prefs, a.sound, cfg.ScreenW)
			if err != nil {
				return err
			}
			a.prefs = prefs
			a.sound.SetVolume(prefs.Volume)

		default:
			return nil
		}
	}
}
