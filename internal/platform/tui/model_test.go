package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skydodo/internal/core"
	"github.com/vovakirdan/skydodo/internal/persist"
)

// fakeGame moves a marker one column per steering tick and ends after overAt ticks.
type fakeGame struct {
	id     string
	x      int
	ticks  int
	overAt int
	score  int
	seeds  []int64
	best   int
	paused bool
	over   bool
}

func (g *fakeGame) ID() string    { return g.id }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(cfg core.RuntimeConfig) {
	g.x, g.ticks = 0, 0
	g.paused, g.over = false, false
	g.seeds = append(g.seeds, cfg.Seed)
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	if g.over {
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.ticks++
	g.x += int(in.Horizontal())
	var events []core.Event
	if in.Has(core.ActionJump) {
		events = append(events, core.EventJump)
	}
	if g.overAt > 0 && g.ticks >= g.overAt {
		g.over = true
		events = append(events, core.EventGameOver)
	}
	return core.StepResult{State: g.State(), Events: events}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "fake")
}

func (g *fakeGame) State() core.GameState {
	return core.GameState{Score: g.score, GameOver: g.over, Paused: g.paused}
}

func (g *fakeGame) SetBest(best int) { g.best = best }

func (g *fakeGame) Summary() core.RunSummary {
	return core.RunSummary{Score: g.score, Ticks: g.ticks, Cause: "test"}
}

func newTestModel(g *fakeGame, opts GameOptions) Model {
	cfg := core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 7}
	return NewModel(g, cfg, opts)
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func ticks(n int) []tea.Msg {
	msgs := make([]tea.Msg, n)
	for i := range msgs {
		msgs[i] = TickMsg{}
	}
	return msgs
}

func TestModelSteeringHoldsDirection(t *testing.T) {
	g := &fakeGame{id: "skydodo"}
	m := newTestModel(g, GameOptions{HoldTicks: 4})

	m = send(m, keyMsg("d"))
	m = send(m, ticks(10)...)
	if g.x != 4 {
		t.Errorf("x = %d after one press, expected the 4 held ticks", g.x)
	}

	m = send(m, keyMsg("a"), TickMsg{}, keyMsg("a"), TickMsg{})
	if g.x != 2 {
		t.Errorf("x = %d, expected 2", g.x)
	}
	if m.Outcome() != OutcomeNone {
		t.Errorf("outcome = %v while playing", m.Outcome())
	}
}

func TestModelPauseAndBack(t *testing.T) {
	g := &fakeGame{id: "skydodo"}
	m := newTestModel(g, GameOptions{})

	m = send(m, keyMsg("b"))
	if m.Outcome() != OutcomeNone {
		t.Fatal("back should be ignored while running")
	}

	m = send(m, keyMsg("p"), TickMsg{})
	if !m.State().Paused {
		t.Fatal("expected pause")
	}

	m = send(m, keyMsg("d"), TickMsg{}, TickMsg{})
	if g.x != 0 {
		t.Error("steering must not advance while paused")
	}

	m = send(m, keyMsg("b"))
	if m.Outcome() != OutcomeMenu {
		t.Errorf("outcome = %v, expected menu", m.Outcome())
	}
	if m.View() != "" {
		t.Error("a model that was left should render nothing")
	}
}

func TestModelQuit(t *testing.T) {
	tests := []struct {
		name       string
		standalone bool
		wantCmd    bool
	}{
		{"embedded", false, false},
		{"standalone", true, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := newTestModel(&fakeGame{id: "skydodo"}, GameOptions{Standalone: tc.standalone})
			next, cmd := m.Update(keyMsg("q"))
			if next.(Model).Outcome() != OutcomeQuit {
				t.Error("expected quit outcome")
			}
			if (cmd != nil) != tc.wantCmd {
				t.Errorf("cmd = %v, want a command: %v", cmd, tc.wantCmd)
			}
		})
	}
}

func TestModelGameOverRecordsAndRetries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.txt")
	g := &fakeGame{id: "skydodo", overAt: 2, score: 50}
	m := newTestModel(g, GameOptions{
		Recorder: &Recorder{HighScorePath: path},
		Seeds:    func() int64 { return 99 },
	})

	m = send(m, ticks(3)...)
	if !m.State().GameOver {
		t.Fatal("expected game over")
	}
	if got := persist.LoadHighScore(path); got != 50 {
		t.Errorf("stored high score = %d, expected 50", got)
	}
	if m.Best() != 50 || g.best != 50 {
		t.Errorf("best = %d (game %d), expected 50", m.Best(), g.best)
	}

	m = send(m, keyMsg("r"), TickMsg{})
	if m.Runs() != 2 {
		t.Errorf("runs = %d, expected 2", m.Runs())
	}
	if len(g.seeds) != 2 || g.seeds[0] != 7 || g.seeds[1] != 99 {
		t.Errorf("seeds = %v, expected [7 99]", g.seeds)
	}
	if m.State().GameOver {
		t.Error("retry should start a fresh run")
	}

	m = send(m, ticks(3)...)
	m = send(m, keyMsg("b"))
	if m.Outcome() != OutcomeMenu {
		t.Errorf("outcome = %v, expected menu", m.Outcome())
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	g := &fakeGame{id: "skydodo"}
	m := newTestModel(g, GameOptions{})
	m = send(m, TickMsg{}, TickMsg{})

	m = send(m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if len(g.seeds) != 1 || g.ticks != 2 {
		t.Error("resizing must not restart the run")
	}
	if !strings.Contains(m.View(), "fake") {
		t.Error("view should render the game")
	}
}

func TestOutcomeString(t *testing.T) {
	tests := map[Outcome]string{
		OutcomeNone:  "none",
		OutcomeRetry: "retry",
		OutcomeMenu:  "menu",
		OutcomeQuit:  "quit",
	}
	for o, want := range tests {
		if o.String() != want {
			t.Errorf("%d.String() = %q, expected %q", int(o), o.String(), want)
		}
	}
}
