package climber

import (
	"strings"
	"testing"

	"github.com/vovakirdan/skydodo/internal/config"
	"github.com/vovakirdan/skydodo/internal/core"
	"github.com/vovakirdan/skydodo/internal/registry"
)

func newTestGame(zen bool, seed int64) *Game {
	g := NewWithConfig(config.DefaultClimberConfig(), zen)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: seed})
	return g
}

func hasEvent(events []core.Event, want core.Event) bool {
	for _, e := range events {
		if e == want {
			return true
		}
	}
	return false
}

func TestGameRegistered(t *testing.T) {
	for _, id := range []string{ID, ZenID} {
		if !registry.Exists(id) {
			t.Errorf("game %q not registered", id)
		}
	}
	g, err := registry.Create(ZenID)
	if err != nil {
		t.Fatalf("Create(%q): %v", ZenID, err)
	}
	if g.Title() != "SkyDodo Zen" {
		t.Errorf("Title() = %q", g.Title())
	}
}

func TestGameDeterministic(t *testing.T) {
	a := newTestGame(false, 42)
	b := newTestGame(false, 42)

	for tick := 0; tick < 600; tick++ {
		var in core.InputFrame
		switch {
		case tick%30 == 0:
			in = core.NewInputFrame(core.ActionJump)
		case tick%90 < 40:
			in = core.NewInputFrame(core.ActionLeft)
		default:
			in = core.NewInputFrame(core.ActionRight)
		}
		ra, rb := a.Step(in), b.Step(in)
		if ra.State != rb.State {
			t.Fatalf("tick %d: states diverged %+v vs %+v", tick, ra.State, rb.State)
		}
		pa, pb := a.Coordinator().Player(), b.Coordinator().Player()
		if pa.X != pb.X || pa.Y != pb.Y {
			t.Fatalf("tick %d: players diverged", tick)
		}
	}
}

func TestGameResetStartsOver(t *testing.T) {
	g := newTestGame(true, 3)
	for i := 0; i < 50; i++ {
		g.Step(core.NewInputFrame(core.ActionJump))
	}
	g.Reset(core.RuntimeConfig{Seed: 3})

	st := g.State()
	if st.Score != 0 || st.GameOver || st.Paused || st.Level != 0 {
		t.Errorf("state after reset = %+v", st)
	}
	if y := g.Coordinator().Player().Y; y != g.cfg.StartY() {
		t.Errorf("player Y after reset = %v", y)
	}
}

func TestGamePauseAndInfo(t *testing.T) {
	g := newTestGame(true, 1)

	g.Step(core.NewInputFrame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("expected paused")
	}
	y := g.Coordinator().Player().Y
	g.Step(core.NewInputFrame(core.ActionJump))
	if g.Coordinator().Player().Y != y {
		t.Error("simulation must not advance while paused")
	}
	g.Step(core.NewInputFrame(core.ActionPause))
	if g.State().Paused {
		t.Fatal("expected resumed")
	}

	g.Step(core.NewInputFrame(core.ActionInfo))
	if !g.State().Paused || !g.info {
		t.Fatal("info overlay should pause the game")
	}
	g.Step(core.NewInputFrame(core.ActionPause))
	if g.State().Paused || g.info {
		t.Error("pause key should close the info overlay and resume")
	}
}

func TestGameLandEventOnce(t *testing.T) {
	cfg := config.DefaultClimberConfig()
	cfg.Platforms.MovingChance = 0
	g := NewWithConfig(cfg, true)
	g.Reset(core.RuntimeConfig{Seed: 8})

	lands := 0
	for i := 0; i < 120; i++ {
		res := g.Step(core.InputFrame{})
		if hasEvent(res.Events, core.EventLand) {
			lands++
		}
	}
	if lands != 1 {
		t.Errorf("got %d land events, expected 1 while resting on a platform", lands)
	}
}

func TestGameLevelUp(t *testing.T) {
	g := newTestGame(true, 1)
	g.Coordinator().scrollOffset = 310

	res := g.Step(core.InputFrame{})
	if !hasEvent(res.Events, core.EventLevelUp) {
		t.Fatalf("expected a level-up event, got %v", res.Events)
	}
	if res.State.Level != 1 || !g.hud.BannerActive() {
		t.Errorf("level = %d, banner = %v", res.State.Level, g.hud.BannerActive())
	}

	res = g.Step(core.InputFrame{})
	if hasEvent(res.Events, core.EventLevelUp) {
		t.Error("level-up must fire once per level")
	}
}

func TestGameOver(t *testing.T) {
	g := newTestGame(true, 1)
	g.SetBest(10)
	g.Coordinator().Player().Y = 800

	res := g.Step(core.InputFrame{})
	if !res.State.GameOver || !hasEvent(res.Events, core.EventGameOver) {
		t.Fatalf("expected game over, got %+v", res)
	}

	res = g.Step(core.NewInputFrame(core.ActionJump))
	if len(res.Events) != 0 || !res.State.GameOver {
		t.Error("a finished game must stay over without events")
	}

	s := core.NewScreen(80, 25)
	g.Render(s)
	out := s.String()
	for _, want := range []string{"GAME OVER", "Score:", "fell off the world"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
}

func TestGameRenderHUD(t *testing.T) {
	g := newTestGame(false, 1)
	g.SetBest(1234)
	g.Step(core.InputFrame{})

	s := core.NewScreen(80, 25)
	g.Render(s)
	out := s.String()
	for _, want := range []string{"Score:", "Best: 1234", string(PlayerIdleChar)} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
	if strings.Contains(out, "ZEN") {
		t.Error("standard game should not show the zen tag")
	}
}

func TestGameReport(t *testing.T) {
	g := newTestGame(true, 1)
	report := g.Report()
	if len(report)%2 != 0 {
		t.Fatalf("report should hold key/value pairs, got %d items", len(report))
	}
	if report[0] != "game" || report[1] != ZenID {
		t.Errorf("report starts with %v %v", report[0], report[1])
	}
}

func TestGameSummary(t *testing.T) {
	g := newTestGame(true, 1)
	if sum := g.Summary(); sum.Cause != "" || sum.Ticks != 0 {
		t.Errorf("fresh summary = %+v", sum)
	}

	g.Step(core.InputFrame{})
	g.Coordinator().Player().Y = 800
	g.Step(core.InputFrame{})

	sum := g.Summary()
	if sum.Ticks != 2 || sum.Cause != CauseFell.String() {
		t.Errorf("summary = %+v", sum)
	}
}
