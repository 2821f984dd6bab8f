package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skydodo/internal/audio"
	"github.com/vovakirdan/skydodo/internal/core"
	"github.com/vovakirdan/skydodo/internal/registry"
)

// Outcome is what the player chose when leaving a run.
type Outcome int

const (
	OutcomeNone  Outcome = iota // still playing
	OutcomeRetry                // restart in place; never leaves the model
	OutcomeMenu                 // back to the main menu
	OutcomeQuit                 // exit the program or session
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRetry:
		return "retry"
	case OutcomeMenu:
		return "menu"
	case OutcomeQuit:
		return "quit"
	default:
		return "none"
	}
}

// GameOptions are the optional collaborators of a game model.
type GameOptions struct {
	Recorder  *Recorder
	Audio     *audio.SoundManager
	Logger    *log.Logger
	HoldTicks int
	// Standalone makes the model quit the Bubble Tea program when the player
	// leaves. Embedded models only report their outcome.
	Standalone bool
	// Seeds supplies the seed of each retry; nil means time-based.
	Seeds func() int64
}

// Model is the Bubble Tea model for one game variant.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       GameOptions
	keys       *KeyMapper
	steer      Steering
	inputFrame core.InputFrame
	gameState  core.GameState
	outcome    Outcome
	scoreSaved bool
	best       int
	runs       int
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts GameOptions) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Seeds == nil {
		opts.Seeds = func() int64 { return time.Now().UnixNano() }
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		opts:       opts,
		keys:       NewKeyMapper(),
		steer:      NewSteering(opts.HoldTicks),
		inputFrame: core.NewInputFrame(),
	}
	m.start()
	return m
}

// start resets the game and hands it the stored best score.
func (m *Model) start() {
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.scoreSaved = false
	m.steer.Release()
	m.inputFrame.Clear()
	m.runs++

	m.best = m.opts.Recorder.Best(m.game.ID())
	if bk, ok := m.game.(registry.BestKeeper); ok {
		bk.SetBest(m.best)
	}
	m.opts.Logger.Debug("run started", "game", m.game.ID(), "seed", m.config.Seed, "best", m.best)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The simulation runs in world units; only the view changes.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		return m.leave(OutcomeQuit)
	}

	if m.gameState.GameOver {
		switch action {
		case core.ActionRestart, core.ActionJump:
			m.inputFrame.Set(core.ActionRestart)
		case core.ActionBack:
			return m.leave(OutcomeMenu)
		}
		return m, nil
	}

	switch action {
	case core.ActionLeft, core.ActionRight:
		m.steer.Press(action)
	case core.ActionBack:
		if m.gameState.Paused {
			return m.leave(OutcomeMenu)
		}
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// leave records the outcome and, when standalone, stops the program.
func (m Model) leave(o Outcome) (tea.Model, tea.Cmd) {
	m.outcome = o
	if m.opts.Standalone {
		return m, tea.Quit
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.outcome != OutcomeNone {
		return m, nil
	}

	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.opts.Logger.Debug("retry", "game", m.game.ID())
		m.config.Seed = m.opts.Seeds()
		m.start()
		return m, tickCmd(m.config.TickRate)
	}

	if !m.gameState.Paused {
		m.steer.Apply(&m.inputFrame)
	}
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.opts.Audio.PlayEvents(result.Events)

	if m.gameState.GameOver && !m.scoreSaved {
		m.finishRun()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// finishRun logs and stores the finished run once.
func (m *Model) finishRun() {
	m.scoreSaved = true

	if r, ok := m.game.(registry.Reporter); ok {
		m.opts.Logger.Info("run finished", r.Report()...)
	}

	sum := core.RunSummary{Score: m.gameState.Score, Level: m.gameState.Level}
	if s, ok := m.game.(registry.Summarizer); ok {
		sum = s.Summary()
	}
	m.best = m.opts.Recorder.Record(m.game.ID(), sum)
	if bk, ok := m.game.(registry.BestKeeper); ok {
		bk.SetBest(m.best)
	}
}

// saveScreenshot saves the current screen to ~/.skydodo/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.opts.Logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".skydodo", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("screenshot skipped", "err", err)
		return
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("screenshot failed", "path", path, "err", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.outcome != OutcomeNone {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Outcome returns what the player chose; OutcomeNone while playing.
func (m Model) Outcome() Outcome {
	return m.outcome
}

// State returns the last game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Best returns the best score known to the model.
func (m Model) Best() int {
	return m.best
}

// Runs returns how many runs were started, retries included.
func (m Model) Runs() int {
	return m.runs
}

// RunGame plays game until the player leaves and returns their choice.
func RunGame(game registry.Game, cfg core.RuntimeConfig, opts GameOptions) (Outcome, error) {
	opts.Standalone = true
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return OutcomeQuit, fmt.Errorf("tui: %w", err)
	}

	m, ok := finalModel.(Model)
	if !ok || m.Outcome() == OutcomeNone {
		return OutcomeQuit, nil
	}
	return m.Outcome(), nil
}
