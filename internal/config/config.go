// Package config loads the optional config.toml settings file.
package config

import (
	"image/color"

	"seasonfx/internal/engine2D/particle"
	"seasonfx/internal/season"
	"seasonfx/internal/utils"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

type Config struct {
	Window   Window                     `toml:"window"`
	Profiles map[string]ProfileOverride `toml:"profiles"`
	Ranges   map[string]RangesOverride  `toml:"ranges"`
	Palette  map[string]PaletteOverride `toml:"palette"`
	Orb      OrbOverride                `toml:"orb"`
}

type Window struct {
	// Overlay draws over the desktop in a borderless, click-through window
	// covering the X11 root.
	Overlay  bool   `toml:"overlay"`
	Width    int    `toml:"width"`
	Height   int    `toml:"height"`
	FPS      int    `toml:"fps"`
	Backdrop string `toml:"backdrop"`
	Controls bool   `toml:"controls"`
}

type ProfileOverride struct {
	Particles *int `toml:"particles"`
	Orbs      *int `toml:"orbs"`
}

// RangesOverride holds [min, max] pairs.
type RangesOverride struct {
	Size  []float64 `toml:"size"`
	Speed []float64 `toml:"speed"`
	Alpha []float64 `toml:"alpha"`
}

type TintSpec struct {
	Color string  `toml:"color"`
	Alpha float64 `toml:"alpha"`
}

type PaletteOverride struct {
	Primary   *TintSpec `toml:"primary"`
	Secondary *TintSpec `toml:"secondary"`
	Detail    *TintSpec `toml:"detail"`
	Glow      *TintSpec `toml:"glow"`
	GlowBlur  *float64  `toml:"glow_blur"`
}

type OrbOverride struct {
	Radius []float64 `toml:"radius"`
	Alpha  []float64 `toml:"alpha"`
	Speed  []float64 `toml:"speed"`
	Color  *TintSpec `toml:"color"`
}

func Default() *Config {
	return &Config{
		Window: Window{
			Width:    1280,
			Height:   720,
			FPS:      60,
			Backdrop: "#14161c",
			Controls: true,
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	for _, key := range md.Undecoded() {
		utils.Warn("Unknown config key %q in %s", key.String(), path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Validate checks window settings and that the tables build.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.Errorf("window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.FPS < 0 {
		return errors.Errorf("fps %d", c.Window.FPS)
	}
	if _, err := c.BackdropColor(); err != nil {
		return err
	}
	_, err := c.Tables()
	return err
}

// BackdropColor is the clear color. Overlays are always transparent.
func (c *Config) BackdropColor() (color.NRGBA, error) {
	if c.Window.Overlay || c.Window.Backdrop == "" {
		return color.NRGBA{}, nil
	}
	col, err := colorful.Hex(c.Window.Backdrop)
	if err != nil {
		return color.NRGBA{}, errors.Wrapf(err, "backdrop %q", c.Window.Backdrop)
	}
	r, g, b := col.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

func modeKey(section, key string) (season.Mode, error) {
	p, err := season.ParsePreference(key)
	if err != nil || p == season.Auto {
		return "", errors.Errorf("[%s.%s]: not a mode", section, key)
	}
	return season.Mode(p), nil
}

func pair(section string, v []float64, into *particle.Range) error {
	if v == nil {
		return nil
	}
	if len(v) != 2 {
		return errors.Errorf("%s: want [min, max], got %d values", section, len(v))
	}
	*into = particle.Range{Min: v[0], Max: v[1]}
	return nil
}

func tint(section string, spec *TintSpec, into *particle.Tint) error {
	if spec == nil {
		return nil
	}
	t, err := particle.ParseTint(spec.Color, spec.Alpha)
	if err != nil {
		return errors.Wrap(err, section)
	}
	*into = t
	return nil
}

// Tables applies the overrides to the built-in tables and validates the
// result.
func (c *Config) Tables() (particle.Tables, error) {
	t := particle.DefaultTables()

	for key, o := range c.Profiles {
		mode, err := modeKey("profiles", key)
		if err != nil {
			return t, err
		}
		p := t.Profiles[mode]
		if o.Particles != nil {
			p.Particles = *o.Particles
		}
		if o.Orbs != nil {
			p.Orbs = *o.Orbs
		}
		t.Profiles[mode] = p
	}

	for key, o := range c.Ranges {
		mode, err := modeKey("ranges", key)
		if err != nil {
			return t, err
		}
		if !mode.IsSeason() {
			return t, errors.Errorf("[ranges.%s]: mode has no particles", key)
		}
		r := t.Ranges[mode]
		for _, f := range []struct {
			name string
			v    []float64
			dst  *particle.Range
		}{
			{"size", o.Size, &r.Size},
			{"speed", o.Speed, &r.Speed},
			{"alpha", o.Alpha, &r.Alpha},
		} {
			if err := pair("ranges."+key+"."+f.name, f.v, f.dst); err != nil {
				return t, err
			}
		}
		t.Ranges[mode] = r
	}

	for key, o := range c.Palette {
		mode, err := modeKey("palette", key)
		if err != nil {
			return t, err
		}
		p := t.Palettes[mode]
		if err := tint("palette."+key+".primary", o.Primary, &p.Primary); err != nil {
			return t, err
		}
		if err := tint("palette."+key+".secondary", o.Secondary, &p.Secondary); err != nil {
			return t, err
		}
		if err := tint("palette."+key+".detail", o.Detail, &p.Detail); err != nil {
			return t, err
		}
		if err := tint("palette."+key+".glow", o.Glow, &p.Glow); err != nil {
			return t, err
		}
		if o.GlowBlur != nil {
			p.GlowBlur = *o.GlowBlur
		}
		t.Palettes[mode] = p
	}

	if err := pair("orb.radius", c.Orb.Radius, &t.Orb.Radius); err != nil {
		return t, err
	}
	if err := pair("orb.alpha", c.Orb.Alpha, &t.Orb.Alpha); err != nil {
		return t, err
	}
	if err := pair("orb.speed", c.Orb.Speed, &t.Orb.Speed); err != nil {
		return t, err
	}
	if err := tint("orb.color", c.Orb.Color, &t.OrbTint); err != nil {
		return t, err
	}

	if err := t.Validate(); err != nil {
		return t, err
	}
	return t, nil
}
