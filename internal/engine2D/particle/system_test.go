package particle

import (
	"image/color"
	"math"
	"math/rand"
	"testing"

	"seasonfx/internal/season"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testW = 800.0
	testH = 600.0
)

func newTestSystem(t *testing.T, mode season.Mode) *System {
	t.Helper()
	s := NewSystem(DefaultTables(), rand.New(rand.NewSource(7)))
	s.SetBounds(testW, testH)
	s.Rebuild(mode)
	return s
}

func snapshot(s *System) ([]Particle, []Orb) {
	return append([]Particle(nil), s.Particles()...), append([]Orb(nil), s.Orbs()...)
}

func TestResetParticleInvariants(t *testing.T) {
	tables := DefaultTables()
	for _, mode := range []season.Mode{season.Spring, season.Summer, season.Autumn, season.Winter} {
		t.Run(string(mode), func(t *testing.T) {
			s := newTestSystem(t, mode)
			r := tables.RangesFor(mode)
			var p Particle
			for i := 0; i < 2000; i++ {
				s.resetParticle(&p, mode)
				require.Equal(t, mode, p.Kind)
				assert.Greater(t, p.Size, 0.0)
				assert.True(t, p.Alpha > 0 && p.Alpha <= 1, "alpha %v", p.Alpha)
				assert.True(t, p.Rotation >= 0 && p.Rotation < 2*math.Pi, "rotation %v", p.Rotation)
				assert.True(t, r.Size.Contains(p.Size))
				assert.True(t, r.Speed.Contains(p.VY))
				assert.True(t, r.Alpha.Contains(p.Alpha))
				assert.True(t, DriftRange.Contains(p.VX))
				assert.True(t, SpinRange.Contains(p.Spin))
				assert.True(t, WobbleRange.Contains(p.Wobble))
				assert.True(t, p.X >= 0 && p.X <= testW)
				assert.True(t, p.Y >= -0.2*testH && p.Y <= testH)
			}
		})
	}
}

func TestResetOrbIgnoresMode(t *testing.T) {
	s := newTestSystem(t, season.Winter)
	var o Orb
	for i := 0; i < 1000; i++ {
		s.resetOrb(&o)
		assert.True(t, o.R >= 6 && o.R <= 28)
		assert.True(t, o.A > 0 && o.A < 1)
		assert.True(t, o.V >= 0)
		assert.True(t, o.X >= 0 && o.X <= testW)
		assert.True(t, o.Y >= 0 && o.Y <= testH)
	}
}

func TestRebuild(t *testing.T) {
	tables := DefaultTables()

	t.Run("pool sizes follow the profile", func(t *testing.T) {
		for _, mode := range season.Modes() {
			s := newTestSystem(t, mode)
			want := tables.ProfileFor(mode)
			assert.Len(t, s.Particles(), want.Particles, "mode %s", mode)
			assert.Len(t, s.Orbs(), want.Orbs, "mode %s", mode)
			assert.Equal(t, mode != season.None, s.Running())
			assert.Equal(t, mode, s.Mode())
		}
	})

	t.Run("none empties and a season repopulates", func(t *testing.T) {
		s := newTestSystem(t, season.Spring)
		require.NotEmpty(t, s.Particles())

		s.Rebuild(season.None)
		assert.Empty(t, s.Particles())
		assert.Empty(t, s.Orbs())
		assert.False(t, s.Running())

		s.Rebuild(season.Winter)
		assert.Len(t, s.Particles(), 35)
		assert.Len(t, s.Orbs(), 22)
		assert.True(t, s.Running())
		for _, p := range s.Particles() {
			assert.Equal(t, season.Winter, p.Kind)
		}
	})

	t.Run("unknown mode uses spring sizes", func(t *testing.T) {
		s := newTestSystem(t, season.Mode("monsoon"))
		assert.Len(t, s.Particles(), 14)
		assert.Len(t, s.Orbs(), 10)
		assert.True(t, s.Running())
	})

	t.Run("overridden profile changes pool sizes", func(t *testing.T) {
		custom := DefaultTables()
		custom.Profiles[season.Autumn] = Profile{Particles: 3, Orbs: 1}
		s := NewSystem(custom, rand.New(rand.NewSource(1)))
		s.SetBounds(testW, testH)
		s.Rebuild(season.Autumn)
		assert.Len(t, s.Particles(), 3)
		assert.Len(t, s.Orbs(), 1)
	})
}

func TestClampDelta(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{0.016, 0.016},
		{MaxDelta, MaxDelta},
		{0.5, MaxDelta},
		{-1, 0},
		{math.NaN(), 0},
		{math.Inf(1), MaxDelta},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampDelta(tt.in), "dt %v", tt.in)
	}
}

func TestUpdate(t *testing.T) {
	t.Run("zero step changes nothing", func(t *testing.T) {
		s := newTestSystem(t, season.Summer)
		s.particles[0].Y = testH + 100
		s.orbs[0].Y = testH + 100
		particles, orbs := snapshot(s)

		s.Update(0)
		s.Update(-0.5)

		assert.Equal(t, particles, s.Particles())
		assert.Equal(t, orbs, s.Orbs())
	})

	t.Run("particles fall", func(t *testing.T) {
		s := newTestSystem(t, season.Spring)
		s.particles[0].Y = testH / 2
		before := s.particles[0]

		s.Update(0.016)

		after := s.particles[0]
		assert.Greater(t, after.Y, before.Y)
		assert.InDelta(t, before.Phase+0.016*before.Wobble, after.Phase, 1e-12)
		assert.InDelta(t, before.Rotation+before.Spin*0.016*60, after.Rotation, 1e-12)
	})

	t.Run("large steps are clamped", func(t *testing.T) {
		a := newTestSystem(t, season.Autumn)
		b := newTestSystem(t, season.Autumn)
		a.Update(5)
		b.Update(MaxDelta)
		assert.Equal(t, b.Particles(), a.Particles())
	})

	t.Run("particle below the bottom is recycled above the top", func(t *testing.T) {
		s := newTestSystem(t, season.Autumn)
		p := &s.particles[0]
		p.X = testW / 2
		p.Y = testH + RecycleMargin + 1
		p.Size = 999
		p.VY = 999
		p.Alpha = 1

		s.Update(0.016)

		r := DefaultTables().RangesFor(season.Autumn)
		assert.Equal(t, -RecycleMargin, p.Y)
		assert.True(t, r.Size.Contains(p.Size), "size %v", p.Size)
		assert.True(t, r.Speed.Contains(p.VY), "vy %v", p.VY)
		assert.True(t, r.Alpha.Contains(p.Alpha), "alpha %v", p.Alpha)
		assert.Equal(t, season.Autumn, p.Kind)
	})

	t.Run("horizontal wrap", func(t *testing.T) {
		s := newTestSystem(t, season.Winter)
		right, left := &s.particles[0], &s.particles[1]
		right.X, right.Y = testW+WrapMargin+1, testH/2
		left.X, left.Y = -WrapMargin-1, testH/2

		s.Update(0.016)

		assert.Equal(t, -WrapMargin, right.X)
		assert.Equal(t, testW+WrapMargin, left.X)
	})

	t.Run("orb below the bottom is recycled above the top", func(t *testing.T) {
		s := newTestSystem(t, season.Summer)
		o := &s.orbs[0]
		o.R = 10
		o.Y = testH + 11

		s.Update(0.016)

		assert.Equal(t, -o.R, o.Y)
		assert.True(t, o.R >= 6 && o.R <= 28)
	})

	t.Run("idle does not step", func(t *testing.T) {
		s := newTestSystem(t, season.Spring)
		s.running = false
		particles, orbs := snapshot(s)
		s.Update(0.016)
		assert.Equal(t, particles, s.Particles())
		assert.Equal(t, orbs, s.Orbs())
	})
}

func TestSetBoundsKeepsPositions(t *testing.T) {
	s := newTestSystem(t, season.Spring)
	particles, orbs := snapshot(s)

	s.SetBounds(320, 200)
	w, h := s.Bounds()
	assert.Equal(t, 320.0, w)
	assert.Equal(t, 200.0, h)

	assert.Equal(t, particles, s.Particles())
	assert.Equal(t, orbs, s.Orbs())

	s.particles[0].Y = 200 + RecycleMargin + 1
	s.particles[0].X = 160
	s.particles[1].Y = 100
	s.particles[1].X = 320 + WrapMargin + 1
	s.Update(0.016)
	assert.Equal(t, -RecycleMargin, s.particles[0].Y)
	assert.LessOrEqual(t, s.particles[0].X, 320.0)
	assert.Equal(t, -WrapMargin, s.particles[1].X)
}

func TestTablesValidate(t *testing.T) {
	require.NoError(t, DefaultTables().Validate())

	bad := DefaultTables()
	bad.Ranges[season.Summer] = Ranges{Size: Range{0, 4}, Speed: Range{0.2, 0.6}, Alpha: Range{0.1, 0.2}}
	assert.Error(t, bad.Validate())

	bad = DefaultTables()
	bad.Ranges[season.Winter] = Ranges{Size: Range{4, 10}, Speed: Range{0.2, 0.6}, Alpha: Range{0.5, 1.5}}
	assert.Error(t, bad.Validate())

	bad = DefaultTables()
	bad.Profiles[season.Spring] = Profile{Particles: -1}
	assert.Error(t, bad.Validate())

	bad = DefaultTables()
	bad.Orb.Radius = Range{10, 5}
	assert.Error(t, bad.Validate())
}

func TestTint(t *testing.T) {
	tint, err := ParseTint("#ffa4be", 0.9)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 255, G: 164, B: 190, A: 115}, tint.NRGBA(0.5))
	assert.Equal(t, "#ffa4be", tint.Hex())

	_, err = ParseTint("pink", 1)
	assert.Error(t, err)
	_, err = ParseTint("#ffffff", 2)
	assert.Error(t, err)
}
