package particle

import (
	"seasonfx/internal/season"
)

// Particle is one foreground entity. Kind is the mode it was reset with and
// selects its shape.
type Particle struct {
	X, Y     float64
	VX, VY   float64
	Size     float64
	Rotation float64
	Spin     float64
	Wobble   float64
	Phase    float64
	Alpha    float64
	Kind     season.Mode
}

// Orb is a background glow circle. Orbs look the same in every mode.
type Orb struct {
	X, Y float64
	R    float64
	A    float64
	V    float64
}

// Extent is the distance from the particle center to the farthest point of
// its shape.
func (p *Particle) Extent() float64 {
	switch p.Kind {
	case season.Summer:
		return 2.2*p.Size + 1.4
	case season.Autumn:
		return 1.15 * p.Size
	}
	return p.Size
}

// Vec2 is a point in logical surface units, y down.
type Vec2 struct {
	X, Y float64
}
