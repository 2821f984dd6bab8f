// skydodo is an endless vertical climber for the terminal.
//
// Usage:
//
//	skydodo                    - Start the main menu
//	skydodo play [--zen]       - Play a run directly
//	skydodo list               - List game variants
//	skydodo scores [variant]   - Show high scores
//	skydodo settings           - Show or change settings
//	skydodo serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.skydodo/scores.db)
//	--config <path>       - Use a custom climber YAML config
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
//	--highscore <path>    - High score file (default: ~/.skydodo/highscore.txt)
//	--log-file <path>     - Write game logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/skydodo/internal/config"
	"github.com/vovakirdan/skydodo/internal/games/climber"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagHighScore  string
	flagLogFile    string
	flagDebug      bool
)

// logger reports to the terminal outside of the alt-screen.
var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "skydodo"})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skydodo",
	Short: "SkyDodo - climb the sky in your terminal",
	Long: `SkyDodo is an endless climber: jump from platform to platform,
dodge the enemies and see how high you can get.

Available commands:
  play     - Start a run directly
  menu     - Main menu (default)
  list     - Show game variants
  scores   - View high scores
  settings - Show or change settings
  serve    - Start SSH server for remote play

Examples:
  skydodo
  skydodo play --zen
  skydodo play --difficulty hard --seed 42
  skydodo scores skydodo_zen
  skydodo settings volume 0.3
  skydodo serve --ssh :2222`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runMenu,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.skydodo/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom climber config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagHighScore, "highscore", "", "Path to high score file")
	pf.StringVar(&flagLogFile, "log-file", "", "Write game logs to this file")
	pf.BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(settingsCmd)
}

// setup validates the global flags and hands them to the climber package.
func setup(_ *cobra.Command, _ []string) error {
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	if flagDifficulty != "" {
		if _, ok := config.ParsePreset(flagDifficulty); !ok {
			return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
	}
	climber.SetDifficultyPreset(flagDifficulty)

	// An explicit config must load; the game would otherwise fall back silently.
	if flagConfig != "" {
		if _, err := config.LoadClimber(flagConfig); err != nil {
			return err
		}
	}
	climber.SetConfigPath(flagConfig)
	return nil
}
