package particle

import (
	"image/color"
	"math/rand"

	"seasonfx/internal/season"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// Range is an inclusive-exclusive sampling interval.
type Range struct {
	Min, Max float64
}

func (r Range) Sample(rng *rand.Rand) float64 {
	return randRange(rng, r.Min, r.Max)
}

func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Profile sizes the two pools for a mode.
type Profile struct {
	Particles int
	Orbs      int
}

// Ranges holds the per-mode particle sampling intervals. Speed is the
// vertical speed in pixels per 60 Hz frame.
type Ranges struct {
	Size  Range
	Speed Range
	Alpha Range
}

// OrbRanges holds the mode-independent orb sampling intervals.
type OrbRanges struct {
	Radius Range
	Alpha  Range
	Speed  Range
}

// Sampling intervals shared by every particle kind.
var (
	DriftRange  = Range{-0.25, 0.25}
	SpinRange   = Range{-0.015, 0.015}
	WobbleRange = Range{0.6, 1.6}
)

// Tint is a color with its own opacity, multiplied by the entity alpha when
// drawn.
type Tint struct {
	Color colorful.Color
	Alpha float64
}

func rgba(r, g, b uint8, a float64) Tint {
	return Tint{Color: colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}, Alpha: a}
}

// ParseTint reads a "#rrggbb" color.
func ParseTint(hex string, alpha float64) (Tint, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return Tint{}, errors.Wrapf(err, "color %q", hex)
	}
	if alpha < 0 || alpha > 1 {
		return Tint{}, errors.Errorf("alpha %v out of [0,1]", alpha)
	}
	return Tint{Color: c, Alpha: alpha}, nil
}

func (t Tint) Hex() string { return t.Color.Hex() }

// NRGBA returns the tint at the given entity alpha.
func (t Tint) NRGBA(alpha float64) color.NRGBA {
	r, g, b := t.Color.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(unit(t.Alpha*alpha)*255 + 0.5)}
}

func (t Tint) Visible() bool { return t.Alpha > 0 }

// Palette colors one particle kind. Shapes use the slots they need.
type Palette struct {
	Primary   Tint
	Secondary Tint
	Detail    Tint
	Glow      Tint
	GlowBlur  float64
}

// Tables is the single source of truth for pool sizes, sampling ranges and
// colors.
type Tables struct {
	Profiles map[season.Mode]Profile
	Ranges   map[season.Mode]Ranges
	Palettes map[season.Mode]Palette
	Orb      OrbRanges
	OrbTint  Tint
}

func DefaultTables() Tables {
	return Tables{
		Profiles: map[season.Mode]Profile{
			season.Spring: {Particles: 14, Orbs: 10},
			season.Summer: {Particles: 35, Orbs: 22},
			season.Autumn: {Particles: 12, Orbs: 10},
			season.Winter: {Particles: 35, Orbs: 22},
			season.None:   {Particles: 0, Orbs: 0},
		},
		Ranges: map[season.Mode]Ranges{
			season.Spring: {Size: Range{7, 14}, Speed: Range{0.25, 0.75}, Alpha: Range{0.18, 0.38}},
			season.Summer: {Size: Range{3, 8}, Speed: Range{0.2, 0.6}, Alpha: Range{0.14, 0.28}},
			season.Autumn: {Size: Range{7, 16}, Speed: Range{0.3, 0.9}, Alpha: Range{0.16, 0.34}},
			season.Winter: {Size: Range{4, 10}, Speed: Range{0.25, 0.7}, Alpha: Range{0.16, 0.32}},
		},
		Palettes: map[season.Mode]Palette{
			season.Spring: {
				Primary: rgba(255, 164, 190, 0.9),
			},
			season.Summer: {
				Primary:   rgba(255, 234, 140, 0.95),
				Secondary: rgba(245, 232, 210, 0.75),
				Detail:    rgba(250, 240, 225, 1),
				Glow:      rgba(248, 213, 152, 0.55),
				GlowBlur:  6,
			},
			season.Autumn: {
				Primary:   rgba(220, 80, 70, 0.95),
				Secondary: rgba(120, 60, 40, 0.45),
			},
			season.Winter: {
				Primary:  rgba(175, 230, 255, 0.95),
				Glow:     rgba(160, 220, 255, 0.55),
				GlowBlur: 7,
			},
		},
		Orb:     OrbRanges{Radius: Range{6, 28}, Alpha: Range{0.03, 0.07}, Speed: Range{0.05, 0.12}},
		OrbTint: rgba(255, 255, 255, 0.75),
	}
}

// ProfileFor returns the pool sizes for mode, or spring's for unknown modes.
func (t Tables) ProfileFor(mode season.Mode) Profile {
	if p, ok := t.Profiles[mode]; ok {
		return p
	}
	return t.Profiles[season.Spring]
}

// RangesFor returns the sampling ranges for mode, or spring's.
func (t Tables) RangesFor(mode season.Mode) Ranges {
	if r, ok := t.Ranges[mode]; ok {
		return r
	}
	return t.Ranges[season.Spring]
}

// Validate checks the invariants every reset relies on.
func (t Tables) Validate() error {
	for _, mode := range season.Modes() {
		p := t.ProfileFor(mode)
		if p.Particles < 0 || p.Orbs < 0 {
			return errors.Errorf("%s: negative pool size", mode)
		}
		if !mode.IsSeason() {
			continue
		}
		r := t.RangesFor(mode)
		if err := checkRange(r.Size, 0, 0); err != nil {
			return errors.Wrapf(err, "%s size", mode)
		}
		if err := checkRange(r.Speed, -1, 0); err != nil {
			return errors.Wrapf(err, "%s speed", mode)
		}
		if err := checkRange(r.Alpha, 0, 1); err != nil {
			return errors.Wrapf(err, "%s alpha", mode)
		}
	}
	if err := checkRange(t.Orb.Radius, 0, 0); err != nil {
		return errors.Wrap(err, "orb radius")
	}
	if err := checkRange(t.Orb.Alpha, 0, 1); err != nil {
		return errors.Wrap(err, "orb alpha")
	}
	if err := checkRange(t.Orb.Speed, -1, 0); err != nil {
		return errors.Wrap(err, "orb speed")
	}
	return nil
}

// checkRange requires min > floor (min >= 0 when floor is -1) and max <= ceil
// when ceil is positive.
func checkRange(r Range, floor, ceil float64) error {
	if r.Max < r.Min {
		return errors.Errorf("min %v above max %v", r.Min, r.Max)
	}
	switch {
	case floor < 0 && r.Min < 0:
		return errors.Errorf("min %v is negative", r.Min)
	case floor >= 0 && r.Min <= floor:
		return errors.Errorf("min %v must be above %v", r.Min, floor)
	}
	if ceil > 0 && r.Max > ceil {
		return errors.Errorf("max %v above %v", r.Max, ceil)
	}
	return nil
}
