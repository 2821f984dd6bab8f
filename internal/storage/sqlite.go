// Package storage keeps the history of finished SkyDodo runs in SQLite,
// through the pure-Go modernc.org/sqlite driver.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// sqliteTime is the layout SQLite uses for CURRENT_TIMESTAMP.
const sqliteTime = "2006-01-02 15:04:05"

// migrations are applied in order; PRAGMA user_version counts the applied ones.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS runs (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id     TEXT NOT NULL UNIQUE,
		game_id    TEXT NOT NULL,
		score      INTEGER NOT NULL,
		level      INTEGER NOT NULL DEFAULT 0,
		cause      TEXT NOT NULL DEFAULT '',
		ticks      INTEGER NOT NULL DEFAULT 0,
		session    TEXT NOT NULL DEFAULT 'local',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(game_id, score DESC)`,
}

// runColumns is the column list every run query selects, in scanRun order.
const runColumns = `id, run_id, game_id, score, level, cause, ticks, session, created_at`

// Store is the run history database.
type Store struct {
	db *sql.DB
}

// Run is one finished playthrough.
type Run struct {
	ID        int64
	RunID     uuid.UUID
	GameID    string
	Score     int
	Level     int
	Cause     string
	Ticks     int
	Session   string // SSH user or "local"
	CreatedAt time.Time
}

// GameStats aggregates the runs of one variant.
type GameStats struct {
	GameID     string
	Runs       int
	HighScore  int
	BestLevel  int
	AvgScore   float64
	TotalTicks int64
	LastPlayed time.Time
}

// Open opens the database at path, creating it and its directory when
// missing. A leading "~" is the home directory.
func Open(path string) (*Store, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w", path, err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migrate %s: %w", path, err)
	}
	return s, nil
}

func expandHome(path string) (string, error) {
	rest, ok := strings.CutPrefix(path, "~")
	if !ok {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: expand %s: %w", path, err)
	}
	return filepath.Join(home, rest), nil
}

func (s *Store) migrate() error {
	var version int
	if err := s.db.QueryRow(`PRAGMA user_version`).Scan(&version); err != nil {
		return err
	}
	for i := version; i < len(migrations); i++ {
		if _, err := s.db.Exec(migrations[i]); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
		if _, err := s.db.Exec(fmt.Sprintf(`PRAGMA user_version = %d`, i+1)); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SaveRun stores a finished run and returns it with its row ID filled in.
// A zero RunID gets a random one and an empty Session becomes "local".
func (s *Store) SaveRun(run Run) (Run, error) {
	if run.RunID == uuid.Nil {
		run.RunID = uuid.New()
	}
	if run.Session == "" {
		run.Session = "local"
	}

	res, err := s.db.Exec(
		`INSERT INTO runs (run_id, game_id, score, level, cause, ticks, session) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.RunID.String(), run.GameID, run.Score, run.Level, run.Cause, run.Ticks, run.Session,
	)
	if err == nil {
		run.ID, err = res.LastInsertId()
	}
	if err != nil {
		return run, fmt.Errorf("storage: save run: %w", err)
	}
	return run, nil
}

// SaveScore stores a run that only has a score.
func (s *Store) SaveScore(gameID string, score int) (int64, error) {
	run, err := s.SaveRun(Run{GameID: gameID, Score: score})
	return run.ID, err
}

// TopScores returns up to limit runs of gameID, best first. Ties keep
// insertion order. limit <= 0 means 10.
func (s *Store) TopScores(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.runs(`WHERE game_id = ? ORDER BY score DESC, id ASC LIMIT ?`, gameID, limit)
}

// RecentRuns returns up to limit runs of any variant, newest first.
// limit <= 0 means 20.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.runs(`ORDER BY id DESC LIMIT ?`, limit)
}

// RunByID returns the run with the given UUID, or nil.
func (s *Store) RunByID(id uuid.UUID) (*Run, error) {
	runs, err := s.runs(`WHERE run_id = ?`, id.String())
	if err != nil || len(runs) == 0 {
		return nil, err
	}
	return &runs[0], nil
}

// runs selects runs with the given WHERE/ORDER/LIMIT tail.
func (s *Store) runs(tail string, args ...any) ([]Run, error) {
	rows, err := s.db.Query(`SELECT `+runColumns+` FROM runs `+tail, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: query runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: scan run: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: query runs: %w", err)
	}
	return out, nil
}

func scanRun(rows *sql.Rows) (Run, error) {
	var (
		r       Run
		runID   string
		created any
	)
	err := rows.Scan(&r.ID, &runID, &r.GameID, &r.Score, &r.Level, &r.Cause, &r.Ticks, &r.Session, &created)
	if err != nil {
		return r, err
	}
	// Hand-edited rows may hold a malformed id; they keep uuid.Nil.
	if id, err := uuid.Parse(runID); err == nil {
		r.RunID = id
	}
	r.CreatedAt = parseTime(created)
	return r, nil
}

// HighScore returns the best score of gameID, or 0 without runs.
func (s *Store) HighScore(gameID string) (int, error) {
	var best sql.NullInt64
	if err := s.db.QueryRow(`SELECT MAX(score) FROM runs WHERE game_id = ?`, gameID).Scan(&best); err != nil {
		return 0, fmt.Errorf("storage: high score: %w", err)
	}
	return int(best.Int64), nil
}

// ClearScores deletes every run of gameID.
func (s *Store) ClearScores(gameID string) error {
	if _, err := s.db.Exec(`DELETE FROM runs WHERE game_id = ?`, gameID); err != nil {
		return fmt.Errorf("storage: clear %s: %w", gameID, err)
	}
	return nil
}

// GameStats aggregates the runs of gameID. A variant without runs gets
// zero stats.
func (s *Store) GameStats(gameID string) (*GameStats, error) {
	gs := &GameStats{GameID: gameID}
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(MAX(level), 0),
		        COALESCE(AVG(score), 0), COALESCE(SUM(ticks), 0)
		 FROM runs WHERE game_id = ?`, gameID,
	).Scan(&gs.Runs, &gs.HighScore, &gs.BestLevel, &gs.AvgScore, &gs.TotalTicks)
	if err != nil {
		return nil, fmt.Errorf("storage: stats %s: %w", gameID, err)
	}

	var last any
	err = s.db.QueryRow(`SELECT created_at FROM runs WHERE game_id = ? ORDER BY id DESC LIMIT 1`, gameID).Scan(&last)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: stats %s: %w", gameID, err)
	}
	gs.LastPlayed = parseTime(last)
	return gs, nil
}

// AllGameStats aggregates every variant that has runs, keyed by game ID.
func (s *Store) AllGameStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query(
		`SELECT game_id, COUNT(*), MAX(score), MAX(level), AVG(score), SUM(ticks), MAX(created_at)
		 FROM runs GROUP BY game_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: stats: %w", err)
	}
	defer rows.Close()

	all := make(map[string]*GameStats)
	for rows.Next() {
		gs := new(GameStats)
		var last any
		if err := rows.Scan(&gs.GameID, &gs.Runs, &gs.HighScore, &gs.BestLevel, &gs.AvgScore, &gs.TotalTicks, &last); err != nil {
			return nil, fmt.Errorf("storage: stats: %w", err)
		}
		gs.LastPlayed = parseTime(last)
		all[gs.GameID] = gs
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: stats: %w", err)
	}
	return all, nil
}

// parseTime accepts the time.Time or string forms the driver returns.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		parsed, _ := time.Parse(sqliteTime, t)
		return parsed
	}
	return time.Time{}
}
