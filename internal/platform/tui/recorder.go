package tui

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skydodo/internal/core"
	"github.com/vovakirdan/skydodo/internal/persist"
	"github.com/vovakirdan/skydodo/internal/storage"
)

// Recorder stores finished runs. Either sink may be absent: the SQLite store
// keeps the history, the high score file keeps the local best.
type Recorder struct {
	Store         *storage.Store
	HighScorePath string // empty disables the file
	Session       string
	Logger        *log.Logger
}

// highScoreFile returns the file for a variant: the base path for the main
// game, and highscore_<variant>.txt next to it for the others.
func (r *Recorder) highScoreFile(gameID string) string {
	if r == nil || r.HighScorePath == "" {
		return ""
	}
	_, variant, found := strings.Cut(gameID, "_")
	if !found {
		return r.HighScorePath
	}
	ext := filepath.Ext(r.HighScorePath)
	return strings.TrimSuffix(r.HighScorePath, ext) + "_" + variant + ext
}

// Best returns the best known score for a variant.
func (r *Recorder) Best(gameID string) int {
	if r == nil {
		return 0
	}
	best := 0
	if path := r.highScoreFile(gameID); path != "" {
		best = persist.LoadHighScore(path)
	}
	if r.Store != nil {
		high, err := r.Store.HighScore(gameID)
		if err != nil {
			r.logger().Warn("cannot read high score", "game", gameID, "err", err)
		}
		best = max(best, high)
	}
	return best
}

// Record saves a finished run and returns the resulting best score.
// Failures are logged; the run is never lost for the player's view.
func (r *Recorder) Record(gameID string, sum core.RunSummary) int {
	if r == nil {
		return sum.Score
	}
	best := r.Best(gameID)

	if r.Store != nil && sum.Score > 0 {
		run, err := r.Store.SaveRun(storage.Run{
			GameID:  gameID,
			Score:   sum.Score,
			Level:   sum.Level,
			Cause:   sum.Cause,
			Ticks:   sum.Ticks,
			Session: r.Session,
		})
		if err != nil {
			r.logger().Error("cannot save run", "game", gameID, "err", err)
		} else {
			r.logger().Debug("run saved", "run", run.RunID, "id", run.ID)
		}
	}

	if path := r.highScoreFile(gameID); path != "" {
		newBest, changed, err := persist.RecordHighScore(path, sum.Score)
		switch {
		case err != nil:
			r.logger().Error("cannot write high score", "path", path, "err", err)
		case changed:
			r.logger().Info("new high score", "game", gameID, "score", newBest)
		}
	}
	return max(best, sum.Score)
}

func (r *Recorder) logger() *log.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return log.New(io.Discard)
}
