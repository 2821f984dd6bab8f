// Package persist stores the small pieces of per-user state that outlive a
// run: the high score file and the audio settings.
package persist

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultHighScoreFile is the high score path relative to the home directory.
const DefaultHighScoreFile = ".skydodo/highscore.txt"

// HighScorePath resolves the high score file location. An empty custom path
// means ~/.skydodo/highscore.txt.
func HighScorePath(custom string) (string, error) {
	if custom != "" {
		return custom, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("persist: cannot find home directory: %w", err)
	}
	return filepath.Join(home, DefaultHighScoreFile), nil
}

// LoadHighScore reads the stored high score.
// A missing or unparseable file counts as 0.
func LoadHighScore(path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0
	}
	score, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || score < 0 {
		return 0
	}
	return score
}

// SaveHighScore overwrites the high score file with score.
func SaveHighScore(path string, score int) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("persist: cannot create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(strconv.Itoa(score)), 0o644); err != nil {
		return fmt.Errorf("persist: cannot write high score: %w", err)
	}
	return nil
}

// RecordHighScore saves score if it beats the stored one.
// It returns the resulting high score and whether it changed.
func RecordHighScore(path string, score int) (int, bool, error) {
	stored := LoadHighScore(path)
	if score <= stored {
		return stored, false, nil
	}
	if err := SaveHighScore(path, score); err != nil {
		return stored, false, err
	}
	return score, true, nil
}

// HighScoreExists reports whether a high score file is present.
func HighScoreExists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}
