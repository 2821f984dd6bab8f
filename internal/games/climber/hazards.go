package climber

import (
	"github.com/solarlune/resolv"

	"github.com/vovakirdan/skydodo/internal/core"
)

const (
	enemyTag  = "enemy"
	probeTag  = "probe"
	hazardPad = 256.0 // space margin around the world for enemies above the viewport
	hazardCel = 32
)

// Hazards is the broadphase for player/enemy contact.
// Enemies are mirrored into a resolv space; every candidate the space
// reports is confirmed with an exact rectangle test.
type Hazards struct {
	space   *resolv.Space
	probe   *resolv.Object
	enemies []*Enemy
	objects []*resolv.Object
}

// NewHazards builds a space covering the world plus a margin on every side.
func NewHazards(worldW, worldH float64, enemies []*Enemy) *Hazards {
	w := int(worldW+2*hazardPad) + hazardCel
	h := int(worldH+2*hazardPad) + hazardCel
	h2 := &Hazards{
		space:   resolv.NewSpace(w, h, hazardCel, hazardCel),
		probe:   resolv.NewObject(0, 0, 1, 1, probeTag),
		enemies: enemies,
		objects: make([]*resolv.Object, 0, len(enemies)),
	}
	for _, e := range enemies {
		obj := resolv.NewObject(e.X+hazardPad, e.Y+hazardPad, e.Size, e.Size, enemyTag)
		obj.Data = e
		h2.objects = append(h2.objects, obj)
		h2.space.Add(obj)
	}
	h2.space.Add(h2.probe)
	return h2
}

// Enemies returns the tracked enemies.
func (h *Hazards) Enemies() []*Enemy {
	return h.enemies
}

// Sync copies enemy positions into the space.
func (h *Hazards) Sync() {
	for i, e := range h.enemies {
		obj := h.objects[i]
		obj.X = e.X + hazardPad
		obj.Y = e.Y + hazardPad
		obj.Update()
	}
}

// Hit returns the first enemy overlapping r, or nil.
func (h *Hazards) Hit(r core.Rect) *Enemy {
	h.probe.X = r.X + hazardPad
	h.probe.Y = r.Y + hazardPad
	h.probe.W = r.W
	h.probe.H = r.H
	h.probe.Update()

	check := h.probe.Check(0, 0, enemyTag)
	if check == nil {
		return nil
	}
	for _, obj := range check.ObjectsByTags(enemyTag) {
		e, ok := obj.Data.(*Enemy)
		if !ok {
			continue
		}
		if core.Overlaps(r, e.Rect()) {
			return e
		}
	}
	return nil
}
