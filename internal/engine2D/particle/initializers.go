package particle

import (
	"seasonfx/internal/season"
)

// resetParticle redraws every field of p in place from the ranges of mode.
func (s *System) resetParticle(p *Particle, mode season.Mode) {
	r := s.tables.RangesFor(mode)
	*p = Particle{
		X:        randRange(s.rng, 0, s.width),
		Y:        randRange(s.rng, -0.2*s.height, s.height),
		VX:       DriftRange.Sample(s.rng),
		VY:       r.Speed.Sample(s.rng),
		Size:     r.Size.Sample(s.rng),
		Rotation: randAngle(s.rng),
		Spin:     SpinRange.Sample(s.rng),
		Wobble:   WobbleRange.Sample(s.rng),
		Phase:    randAngle(s.rng),
		Alpha:    r.Alpha.Sample(s.rng),
		Kind:     mode,
	}
}

// resetOrb redraws every field of o in place. Orbs ignore the mode.
func (s *System) resetOrb(o *Orb) {
	*o = Orb{
		X: randRange(s.rng, 0, s.width),
		Y: randRange(s.rng, 0, s.height),
		R: s.tables.Orb.Radius.Sample(s.rng),
		A: s.tables.Orb.Alpha.Sample(s.rng),
		V: s.tables.Orb.Speed.Sample(s.rng),
	}
}
