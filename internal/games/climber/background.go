package climber

import (
	"math/rand"

	"github.com/vovakirdan/skydodo/internal/config"
	"github.com/vovakirdan/skydodo/internal/core"
)

// Cloud is a decorative background rectangle drifting downward.
type Cloud struct {
	X, Y  float64
	W, H  float64
	Speed float64
}

// Rect returns the cloud's rectangle.
func (c *Cloud) Rect() core.Rect {
	return core.NewRect(c.X, c.Y, c.W, c.H)
}

// onScreenClouds is how many clouds may start inside the viewport.
const onScreenClouds = 3

// Background is the parallax scene owned by one playthrough:
// a slowly moving sky pattern and a handful of non-overlapping clouds.
type Background struct {
	clouds []*Cloud
	skyY   float64
	rng    *rand.Rand
	cfg    config.BackgroundConfig
	worldW float64
	worldH float64
}

// NewBackground places the initial clouds. Placement gives up on a cloud
// after PlacementAttempts overlapping draws, so fewer clouds is possible.
func NewBackground(rng *rand.Rand, cfg *config.ClimberConfig) *Background {
	b := &Background{
		clouds: make([]*Cloud, 0, cfg.Background.Clouds),
		rng:    rng,
		cfg:    cfg.Background,
		worldW: cfg.World.Width,
		worldH: cfg.World.Height,
	}
	for len(b.clouds) < b.cfg.Clouds {
		c := b.newCloud(len(b.clouds) < onScreenClouds)
		if c == nil {
			break
		}
		b.clouds = append(b.clouds, c)
	}
	return b
}

// Clouds returns the live clouds.
func (b *Background) Clouds() []*Cloud {
	return b.clouds
}

// Update drifts the sky and clouds and replaces clouds that left the viewport.
func (b *Background) Update() {
	b.skyY += b.cfg.SkySpeed

	kept := b.clouds[:0]
	removed := 0
	for _, c := range b.clouds {
		c.Y += c.Speed
		if c.Y > b.worldH {
			removed++
			continue
		}
		kept = append(kept, c)
	}
	b.clouds = kept
	for i := 0; i < removed; i++ {
		if c := b.newCloud(false); c != nil {
			b.clouds = append(b.clouds, c)
		}
	}
}

// Scroll shifts the background by a share of the world scroll.
func (b *Background) Scroll(delta float64) {
	shift := delta * b.cfg.Parallax
	b.skyY += shift
	for _, c := range b.clouds {
		c.Y += shift
	}
}

func (b *Background) newCloud(onScreen bool) *Cloud {
	for attempt := 0; attempt < b.cfg.PlacementAttempts; attempt++ {
		scale := 0.4 + b.rng.Float64()*0.5
		w := b.cfg.CloudWidth * scale
		h := b.cfg.CloudHeight * scale

		var y float64
		if onScreen {
			y = b.rng.Float64() * b.worldH / 2
		} else {
			y = -600 + b.rng.Float64()*500
		}
		x := b.rng.Float64() * (b.worldW - w)
		c := &Cloud{
			X:     x,
			Y:     y,
			W:     w,
			H:     h,
			Speed: b.cfg.CloudMinSpeed + b.rng.Float64()*(b.cfg.CloudMaxSpeed-b.cfg.CloudMinSpeed),
		}
		if !b.overlapsCloud(c.Rect()) {
			return c
		}
	}
	return nil
}

func (b *Background) overlapsCloud(r core.Rect) bool {
	for _, c := range b.clouds {
		if core.Overlaps(r, c.Rect()) {
			return true
		}
	}
	return false
}

// Draw renders the sky pattern and clouds.
func (b *Background) Draw(c *Canvas) {
	// Sparse stars scroll with the sky layer.
	const starEvery = 90.0
	offset := b.skyY - float64(int(b.skyY/starEvery))*starEvery
	for y := offset - starEvery; y < b.worldH; y += starEvery {
		for x := 37.0; x < b.worldW; x += 140 {
			c.Set(x+float64(int(y)%3)*11, y, SkyChar, core.ColorSky)
		}
	}

	for _, cl := range b.clouds {
		c.FillRect(cl.Rect(), CloudChar, core.ColorCloud)
	}
}
