package particle

import (
	"math"
	"math/rand"
	"time"

	"seasonfx/internal/season"
	"seasonfx/internal/utils"
)

// MaxDelta caps a single step so a stalled frame does not teleport entities.
const MaxDelta = 0.033

// System owns the particle and orb pools for the active mode. It is not safe
// for concurrent use; the frame loop owns it.
type System struct {
	tables    Tables
	rng       *rand.Rand
	width     float64
	height    float64
	mode      season.Mode
	running   bool
	particles []Particle
	orbs      []Orb
}

// NewSystem creates an idle system. A nil rng is seeded from the clock.
func NewSystem(tables Tables, rng *rand.Rand) *System {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &System{
		tables: tables,
		rng:    rng,
		mode:   season.None,
	}
}

// SetBounds sets the logical surface size used by later resets, recycles and
// wraps. Existing entities keep their positions.
func (s *System) SetBounds(w, h float64) {
	s.width = w
	s.height = h
}

func (s *System) Bounds() (w, h float64) { return s.width, s.height }

func (s *System) Mode() season.Mode { return s.mode }

// Running reports whether the active mode animates anything.
func (s *System) Running() bool { return s.running }

// Particles returns the live particle pool. Callers must not modify it.
func (s *System) Particles() []Particle { return s.particles }

// Orbs returns the live orb pool. Callers must not modify it.
func (s *System) Orbs() []Orb { return s.orbs }

func (s *System) Tables() Tables { return s.tables }

// Rebuild replaces both pools with fresh entities for mode. The new pools are
// filled before they are swapped in.
func (s *System) Rebuild(mode season.Mode) {
	profile := s.tables.ProfileFor(mode)
	if _, ok := s.tables.Profiles[mode]; !ok {
		utils.Warn("No profile for mode %q, using spring pool sizes", mode)
	}

	particles := make([]Particle, profile.Particles)
	orbs := make([]Orb, profile.Orbs)

	s.mode = mode
	for i := range particles {
		s.resetParticle(&particles[i], mode)
	}
	for i := range orbs {
		s.resetOrb(&orbs[i])
	}

	s.particles = particles
	s.orbs = orbs
	s.running = mode != season.None
	utils.Debug("Rebuilt pools for %s: %d particles, %d orbs", mode, len(particles), len(orbs))
}

// ClampDelta limits dt to [0, MaxDelta]. Non-finite values become 0.
func ClampDelta(dt float64) float64 {
	if math.IsNaN(dt) || dt < 0 {
		return 0
	}
	if dt > MaxDelta {
		return MaxDelta
	}
	return dt
}

// Update advances the simulation by dt seconds. A zero step changes nothing.
func (s *System) Update(dt float64) {
	s.UpdateOrbs(dt)
	s.UpdateParticles(dt)
}

func (s *System) UpdateOrbs(dt float64) {
	dt = ClampDelta(dt)
	if !s.running || dt == 0 {
		return
	}
	f := dt * referenceRate
	for i := range s.orbs {
		s.stepOrb(&s.orbs[i], f)
	}
}

func (s *System) UpdateParticles(dt float64) {
	dt = ClampDelta(dt)
	if !s.running || dt == 0 {
		return
	}
	for i := range s.particles {
		s.stepParticle(&s.particles[i], dt)
	}
}

// Frame runs one frame: orbs are stepped and drawn, then particles.
func (s *System) Frame(dt float64, c Canvas) {
	if !s.running {
		return
	}
	s.UpdateOrbs(dt)
	s.DrawOrbs(c)
	s.UpdateParticles(dt)
	s.DrawParticles(c)
}
