package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skydodo/internal/games/climber"
	"github.com/vovakirdan/skydodo/internal/persist"
	"github.com/vovakirdan/skydodo/internal/registry"
	"github.com/vovakirdan/skydodo/internal/storage"
)

var (
	flagScoresLimit int
	flagRecent      bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores",
	Long: `Display the best runs of a variant (default: skydodo).

Examples:
  skydodo scores
  skydodo scores skydodo_zen --limit 20
  skydodo scores --recent
  skydodo scores skydodo --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the latest runs of all variants")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the stored runs of the variant")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := climber.ID
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q; run 'skydodo list' to see them", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared stored runs of %s.\n", gameID)
		return nil
	case flagRecent:
		return printRecent(store)
	}
	return printTop(store, gameID)
}

func printTop(store *storage.Store, gameID string) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	runs, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n\n", game.Title())
	if len(runs) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'skydodo play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %-20s  %s\n", "Rank", "Score", "Level", "Ended", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-20s  %s\n", "----", "-----", "-----", "-----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-5d  %-20s  %s\n",
			i+1, r.Score, r.Level, r.Cause, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Runs: %d  Best: %d  Average: %.0f  Highest level: %d\n",
		stats.Runs, stats.HighScore, stats.AvgScore, stats.BestLevel)

	if path, err := persist.HighScorePath(flagHighScore); err == nil && gameID == climber.ID && persist.HighScoreExists(path) {
		fmt.Printf("Local best (%s): %d\n", path, persist.LoadHighScore(path))
	}
	return nil
}

func printRecent(store *storage.Store) error {
	runs, err := store.RecentRuns(flagScoresLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	fmt.Printf("  %-16s  %-8s  %-5s  %-10s  %-8s  %s\n", "Date", "Score", "Level", "Player", "Run", "Variant")
	for _, r := range runs {
		fmt.Printf("  %-16s  %-8d  %-5d  %-10s  %-8s  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Score, r.Level, r.Session, r.RunID.String()[:8], r.GameID)
	}
	return nil
}
