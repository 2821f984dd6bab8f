package climber

import (
	"github.com/vovakirdan/skydodo/internal/config"
	"github.com/vovakirdan/skydodo/internal/core"
)

// Pose is the player's animation state; it also selects the hitbox.
type Pose int

const (
	PoseIdle Pose = iota
	PoseFly
)

// flyFallSpeed is the falling speed above which the bird switches to the fly pose.
const flyFallSpeed = 5

// Player is the bird. X and Y are the top-left corner of its sprite.
type Player struct {
	X, Y        float64
	W, H        float64
	VelY        float64
	Jumping     bool
	Pose        Pose
	FacingRight bool

	cfg   config.PlayerConfig
	frame int
}

// NewPlayer creates the bird at its configured start position.
func NewPlayer(cfg *config.ClimberConfig) *Player {
	return &Player{
		X:   cfg.Player.StartX,
		Y:   cfg.StartY(),
		W:   cfg.Player.Width,
		H:   cfg.Player.Height,
		cfg: cfg.Player,
	}
}

// Move steers the bird horizontally and keeps it inside the world.
// dir is -1, 0 or +1.
func (p *Player) Move(dir, worldW float64) {
	switch {
	case dir < 0:
		p.X -= p.cfg.Speed
		p.Pose = PoseFly
		p.FacingRight = false
	case dir > 0:
		p.X += p.cfg.Speed
		p.Pose = PoseFly
		p.FacingRight = true
	default:
		p.Pose = PoseIdle
	}
	p.X = core.ClampF(p.X, 0, worldW-p.W)
}

// Jump starts a jump unless one is already in progress.
func (p *Player) Jump() bool {
	if p.Jumping {
		return false
	}
	p.VelY = p.cfg.JumpImpulse
	p.Jumping = true
	p.Pose = PoseFly
	return true
}

// ApplyGravity accelerates the bird downward and moves it.
func (p *Player) ApplyGravity() {
	p.VelY += p.cfg.Gravity
	if p.cfg.MaxFallSpeed > 0 && p.VelY > p.cfg.MaxFallSpeed {
		p.VelY = p.cfg.MaxFallSpeed
	}
	p.Y += p.VelY

	if p.VelY < 0 || p.VelY > flyFallSpeed {
		p.Pose = PoseFly
	}
	p.frame++
}

// LandOn puts the bird on top of the platform and carries it along.
func (p *Player) LandOn(pl *Platform, worldW float64) {
	p.Y = pl.Y - p.H
	p.VelY = 0
	p.Jumping = false
	p.X = core.ClampF(p.X+pl.DeltaX, 0, worldW-p.W)
}

// BoundingBox returns the collision rectangle for the current pose.
// It is centered horizontally and shares the sprite's bottom edge.
func (p *Player) BoundingBox() core.Rect {
	hb := p.cfg.IdleHitbox
	if p.Pose == PoseFly {
		hb = p.cfg.FlyHitbox
	}
	w := p.W * hb.WidthRatio
	h := p.H * hb.HeightRatio
	return core.NewRect(p.X+(p.W-w)/2, p.Y+(p.H-h), w, h)
}

// Draw blits the bird onto the canvas.
func (p *Player) Draw(c *Canvas) {
	body := PlayerIdleChar
	if p.Pose == PoseFly && (p.frame/6)%2 == 0 {
		body = PlayerFlapChar
	}
	r := p.BoundingBox()
	c.FillRect(r, body, core.ColorPlayer)

	beakX := r.X - 1
	if p.FacingRight {
		beakX = r.Right()
	}
	c.Set(beakX, r.CenterY(), PlayerBeakChar, core.ColorBeak)
}
