package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/skydodo/internal/audio"
	"github.com/vovakirdan/skydodo/internal/core"
	"github.com/vovakirdan/skydodo/internal/persist"
	"github.com/vovakirdan/skydodo/internal/platform/tui"
	"github.com/vovakirdan/skydodo/internal/storage"
)

// app holds what a local play session needs. Every part is optional:
// a missing database, audio device or settings directory degrades the
// session instead of ending it.
type app struct {
	store    *storage.Store
	recorder *tui.Recorder
	sound    *audio.SoundManager
	settings *persist.SettingsStore
	prefs    persist.Settings
	gameLog  *log.Logger
	logFile  *os.File
}

// openApp opens storage, settings and audio for a local session.
func openApp() (*app, error) {
	a := &app{}

	gameLog, err := a.openGameLog()
	if err != nil {
		return nil, err
	}
	a.gameLog = gameLog

	a.store, err = storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "err", err)
		a.store = nil
	}

	hsPath, err := persist.HighScorePath(flagHighScore)
	if err != nil {
		logger.Warn("high score file disabled", "err", err)
	}
	a.recorder = &tui.Recorder{
		Store:         a.store,
		HighScorePath: hsPath,
		Logger:        a.gameLog,
	}

	items, err := persist.OpenItemStore()
	if err != nil {
		logger.Warn("settings will not be saved", "err", err)
		items = nil
	}
	a.settings = persist.NewSettingsStore(items)
	a.prefs, err = a.settings.Load()
	if err != nil {
		logger.Warn("using default settings", "err", err)
	}

	a.sound = audio.NewSoundManager(a.prefs.Volume)
	if err := a.sound.Initialize(); err != nil {
		logger.Warn("sound disabled", "err", err)
	}
	return a, nil
}

// openGameLog returns the logger used while the alt-screen is active.
func (a *app) openGameLog() (*log.Logger, error) {
	if flagLogFile == "" {
		return log.New(io.Discard), nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	a.logFile = f

	l := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          "game",
	})
	if flagDebug {
		l.SetLevel(log.DebugLevel)
	}
	return l, nil
}

// Close releases the session's resources.
func (a *app) Close() {
	a.sound.Cleanup()
	if a.store != nil {
		a.store.Close()
	}
	if a.logFile != nil {
		a.logFile.Close()
	}
}

// gameOptions returns the collaborators of a game model.
func (a *app) gameOptions() tui.GameOptions {
	return tui.GameOptions{
		Recorder: a.recorder,
		Audio:    a.sound,
		Logger:   a.gameLog,
	}
}

// runtimeConfig sizes the view from the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
