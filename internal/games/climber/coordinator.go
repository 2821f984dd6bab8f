package climber

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/skydodo/internal/config"
)

// DeathCause records why a run ended.
type DeathCause int

const (
	CauseNone DeathCause = iota
	CauseEnemy
	CauseFell
)

func (c DeathCause) String() string {
	switch c {
	case CauseEnemy:
		return "hit an enemy"
	case CauseFell:
		return "fell off the world"
	default:
		return "alive"
	}
}

// FrameInput is the player's intent for one tick.
type FrameInput struct {
	Dir  float64 // -1 left, 0 none, +1 right
	Jump bool
}

// FrameResult reports what happened during one tick.
type FrameResult struct {
	Jumped   bool
	Landed   *Platform // platform the bird stands on after the tick, if any
	Scrolled float64
	Recycle  RecycleReport
	Wrapped  int // enemies moved back above the viewport
	Over     bool
	Cause    DeathCause
}

// Coordinator runs the per-tick physics, scroll and collision order for one
// playthrough. It owns the field, the enemies and the score state.
type Coordinator struct {
	cfg     *config.ClimberConfig
	rng     *rand.Rand
	diff    *config.DifficultyManager
	field   *Field
	player  *Player
	enemies []*Enemy
	hazards *Hazards

	startY       float64
	triggerLine  float64
	scrollOffset float64
	score        int
	ticks        int
	over         bool
	cause        DeathCause

	shortfall  int // replacements that could not be placed so far
	enemyShort int // enemies missing from the initial placement
}

// NewCoordinator builds a fresh field, player and enemy set.
// When withEnemies is false the run has no hazards besides falling.
func NewCoordinator(rng *rand.Rand, cfg *config.ClimberConfig, withEnemies bool) *Coordinator {
	c := &Coordinator{
		cfg:         cfg,
		rng:         rng,
		diff:        config.NewDifficultyManager(cfg.Difficulty),
		startY:      cfg.StartY(),
		triggerLine: cfg.TriggerLine(),
	}
	c.field = GenerateField(rng, cfg)
	c.player = NewPlayer(cfg)
	c.applyDifficulty()

	if withEnemies {
		speed := c.diff.Speed(cfg.Enemies.PatrolSpeed, 0, 0)
		c.enemies = PlaceEnemies(rng, cfg, c.field.Platforms(), speed)
		c.enemyShort = cfg.Enemies.Count - len(c.enemies)
	}
	c.hazards = NewHazards(cfg.World.Width, cfg.World.Height, c.enemies)
	return c
}

// Field returns the platform field.
func (c *Coordinator) Field() *Field { return c.field }

// Player returns the bird.
func (c *Coordinator) Player() *Player { return c.player }

// Enemies returns the live enemies.
func (c *Coordinator) Enemies() []*Enemy { return c.enemies }

// ScrollOffset returns the cumulative world scroll.
func (c *Coordinator) ScrollOffset() float64 { return c.scrollOffset }

// Score returns the best height reached, in world units.
func (c *Coordinator) Score() int { return c.score }

// Level returns floor(scrollOffset / distance_per_level).
func (c *Coordinator) Level() int {
	return int(math.Floor(c.scrollOffset / c.cfg.Scroll.DistancePerLevel))
}

// Over reports whether the run has ended, and why.
func (c *Coordinator) Over() (bool, DeathCause) { return c.over, c.cause }

// Shortfall returns platforms lost to failed recycling and enemies missing
// from the initial placement.
func (c *Coordinator) Shortfall() (platforms, enemies int) {
	return c.shortfall, c.enemyShort
}

// Step advances the run by one tick. The order matters:
// move the bird, move platforms and enemies, update the score,
// scroll, resolve landings, then check lethal contacts.
func (c *Coordinator) Step(in FrameInput) FrameResult {
	var res FrameResult
	if c.over {
		res.Over, res.Cause = true, c.cause
		return res
	}
	c.ticks++
	worldW, worldH := c.cfg.World.Width, c.cfg.World.Height
	p := c.player

	// 1. Input and gravity
	p.Move(in.Dir, worldW)
	if in.Jump {
		res.Jumped = p.Jump()
	}
	p.ApplyGravity()

	// 2. Own motion
	c.field.Update()
	for _, e := range c.enemies {
		e.Update(worldW)
	}

	// 3. Score
	climbed := math.Max(0, c.startY-p.Y)
	if s := int(math.Floor(c.scrollOffset + climbed)); s > c.score {
		c.score = s
	}

	// 4. Scroll
	if p.Y < c.triggerLine {
		amount := c.triggerLine - p.Y
		p.Y = c.triggerLine
		c.scrollOffset += amount
		res.Scrolled = amount

		c.field.Scroll(amount)
		res.Recycle = c.field.Recycle()
		c.shortfall += res.Recycle.Shortfall()

		for _, e := range c.enemies {
			e.Y += amount
			if e.Y > worldH {
				e.Wrap(c.rng, c.cfg)
				res.Wrapped++
			}
		}
		c.applyDifficulty()
	}

	// 5. Landing; the last qualifying platform in iteration order wins.
	if p.VelY > 0 {
		box := p.BoundingBox()
		var landing *Platform
		for _, pl := range c.field.Platforms() {
			r := pl.Rect()
			if box.Intersects(r) && box.Bottom() <= r.Bottom()+c.cfg.Scroll.LandingTolerance {
				landing = pl
			}
		}
		if landing != nil {
			p.LandOn(landing, worldW)
			res.Landed = landing
		}
	}

	// 6. Lethal contacts
	c.hazards.Sync()
	switch {
	case c.hazards.Hit(p.BoundingBox()) != nil:
		c.end(CauseEnemy)
	case p.Y > worldH:
		c.end(CauseFell)
	}
	res.Over, res.Cause = c.over, c.cause
	return res
}

func (c *Coordinator) end(cause DeathCause) {
	c.over = true
	c.cause = cause
}

// applyDifficulty retunes recycled platforms and enemy patrols for the current score.
func (c *Coordinator) applyDifficulty() {
	pc := c.cfg.Platforms
	c.field.SetTuning(Tuning{
		MovingChance: c.diff.MovingChance(pc.MovingChance, c.score, c.ticks),
		MoveSpeed:    c.diff.Speed(pc.MoveSpeed, c.score, c.ticks),
	})
	speed := c.diff.Speed(c.cfg.Enemies.PatrolSpeed, c.score, c.ticks)
	for _, e := range c.enemies {
		e.Speed = speed
	}
}
