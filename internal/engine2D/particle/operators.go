package particle

import (
	"math"
)

const (
	// RecycleMargin is how far below the bottom edge a particle falls before
	// it is reset above the top edge.
	RecycleMargin = 30.0
	// WrapMargin is how far past a side edge a particle drifts before it
	// reappears on the opposite side.
	WrapMargin = 50.0

	referenceRate = 60.0
	swayAmplitude = 0.35
	orbSwayPeriod = 80.0
	orbSwayAmount = 0.08
)

// stepOrb advances o by f reference frames.
func (s *System) stepOrb(o *Orb, f float64) {
	o.Y += o.V * f
	o.X += math.Sin(o.Y/orbSwayPeriod) * orbSwayAmount * f

	if o.Y-o.R > s.height {
		s.resetOrb(o)
		o.Y = -o.R
	}
}

// stepParticle advances p by dt seconds.
func (s *System) stepParticle(p *Particle, dt float64) {
	f := dt * referenceRate

	p.Phase += dt * p.Wobble
	sway := math.Sin(p.Phase) * swayAmplitude
	p.X += (p.VX + sway) * f
	p.Y += p.VY * f
	p.Rotation += p.Spin * f

	if p.Y > s.height+RecycleMargin {
		s.resetParticle(p, s.mode)
		p.Y = -RecycleMargin
	}
	if p.X < -WrapMargin {
		p.X = s.width + WrapMargin
	} else if p.X > s.width+WrapMargin {
		p.X = -WrapMargin
	}
}
