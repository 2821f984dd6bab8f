// Package climber implements SkyDodo, an endless vertical climber.
// A bird jumps between procedurally recycled platforms while the world
// scrolls down to meet it; enemies end the run on contact.
package climber

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/skydodo/internal/config"
	"github.com/vovakirdan/skydodo/internal/core"
	"github.com/vovakirdan/skydodo/internal/registry"
)

// Registered game IDs.
const (
	ID    = "skydodo"
	ZenID = "skydodo_zen"
)

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
// Unknown names fall back to the config file's own settings.
func SetDifficultyPreset(preset string) {
	p, ok := config.ParsePreset(preset)
	if !ok {
		p = ""
	}
	difficultyPreset = p
}

// Game wires the coordinator, background and HUD into a registry.Game.
type Game struct {
	zen      bool
	cfg      config.ClimberConfig
	cfgErr   error
	runtime  core.RuntimeConfig
	rng      *rand.Rand
	coord    *Coordinator
	bg       *Background
	hud      HUD
	paused   bool
	info     bool
	gameOver bool
	airborne bool
	level    int
	best     int
	ticks    int
}

// New creates a standard game with enemies.
func New() *Game {
	return &Game{}
}

// NewZen creates a game without enemies.
func NewZen() *Game {
	return &Game{zen: true}
}

// NewWithConfig creates a game that uses cfg instead of loading one.
func NewWithConfig(cfg config.ClimberConfig, zen bool) *Game {
	return &Game{cfg: cfg, zen: zen}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.zen {
		return ZenID
	}
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.zen {
		return "SkyDodo Zen"
	}
	return "SkyDodo"
}

// SetBest sets the high score shown in the HUD.
func (g *Game) SetBest(best int) {
	g.best = best
}

// Reset initializes or restarts the game with a fresh field, enemies and background.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if g.runtime.TickRate <= 0 {
		g.runtime.TickRate = 60
	}

	if g.cfg.World.Width == 0 {
		cfg, err := config.LoadClimber(configPath)
		if err != nil {
			g.cfgErr = err
			cfg = config.DefaultClimberConfig()
		}
		if difficultyPreset != "" {
			config.ApplyClimberPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
	}

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.coord = NewCoordinator(g.rng, &g.cfg, !g.zen)
	g.bg = NewBackground(g.rng, &g.cfg)
	g.hud = HUD{}
	g.paused = false
	g.info = false
	g.gameOver = false
	g.airborne = true
	g.level = 0
	g.ticks = 0
}

// ConfigError returns the error from loading a custom config, if Reset fell back to defaults.
func (g *Game) ConfigError() error {
	return g.cfgErr
}

// Coordinator exposes the running playthrough.
func (g *Game) Coordinator() *Coordinator {
	return g.coord
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	// Overlays
	if in.Has(core.ActionInfo) {
		g.info = !g.info
	}
	if in.Has(core.ActionPause) {
		if g.info {
			g.info = false
			g.paused = false
		} else {
			g.paused = !g.paused
		}
	}
	if g.paused || g.info {
		return core.StepResult{State: g.State()}
	}

	g.ticks++
	var events []core.Event

	res := g.coord.Step(FrameInput{
		Dir:  in.Horizontal(),
		Jump: in.Has(core.ActionJump),
	})
	g.bg.Update()
	if res.Scrolled > 0 {
		g.bg.Scroll(res.Scrolled)
	}
	g.hud.Update(1 / float32(g.runtime.TickRate))

	if res.Jumped {
		events = append(events, core.EventJump)
	}
	if res.Landed != nil && g.airborne {
		events = append(events, core.EventLand)
	}
	g.airborne = res.Landed == nil

	if lvl := g.coord.Level(); lvl > g.level {
		g.level = lvl
		g.hud.ShowLevel(lvl, g.cfg.HUD.LevelBannerMS)
		events = append(events, core.EventLevelUp)
	}

	if res.Over {
		g.gameOver = true
		if s := g.coord.Score(); s > g.best {
			g.best = s
		}
		events = append(events, core.EventGameOver)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	var score int
	if g.coord != nil {
		score = g.coord.Score()
	}
	return core.GameState{
		Score:    score,
		Level:    g.level,
		GameOver: g.gameOver,
		Paused:   g.paused || g.info,
	}
}

// Summary describes the current playthrough for score storage.
func (g *Game) Summary() core.RunSummary {
	if g.coord == nil {
		return core.RunSummary{}
	}
	sum := core.RunSummary{
		Score: g.coord.Score(),
		Level: g.level,
		Ticks: g.ticks,
	}
	if over, cause := g.coord.Over(); over {
		sum.Cause = cause.String()
	}
	return sum
}

// Report returns key/value pairs describing the finished or running playthrough.
func (g *Game) Report() []any {
	if g.coord == nil {
		return nil
	}
	sum := g.Summary()
	lostPlatforms, missingEnemies := g.coord.Shortfall()
	return []any{
		"game", g.ID(),
		"score", sum.Score,
		"level", sum.Level,
		"ticks", sum.Ticks,
		"cause", sum.Cause,
		"platforms", g.coord.Field().Len(),
		"platforms_lost", lostPlatforms,
		"enemies_missing", missingEnemies,
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.coord == nil {
		return
	}

	c := NewCanvas(dst, g.cfg.World.Width, g.cfg.World.Height, 1)
	g.bg.Draw(c)
	for _, p := range g.coord.Field().Platforms() {
		p.Draw(c)
	}
	for _, e := range g.coord.Enemies() {
		e.Draw(c)
	}
	g.coord.Player().Draw(c)
	g.hud.Draw(dst, c, g.coord.Score(), g.level, max(g.best, g.coord.Score()), g.zen)

	switch {
	case g.gameOver:
		_, cause := g.coord.Over()
		c.Panel("GAME OVER", []string{
			fmt.Sprintf("Score: %d", g.coord.Score()),
			fmt.Sprintf("High score: %d", g.best),
			"You " + cause.String() + ".",
			"",
			"R / SPACE  retry",
			"B          menu",
			"Q          quit",
		})
	case g.info:
		c.Panel("INFO", InfoLines)
	case g.paused:
		c.Panel("PAUSED", []string{
			"P / ESC  resume",
			"I        controls",
			"Q        quit",
		})
	}
}

// Register the game variants with the registry
func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
	registry.Register(ZenID, func() registry.Game {
		return NewZen()
	})
}
