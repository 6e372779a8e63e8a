package debug

import (
	"fmt"
	"time"

	"seasonfx/internal/engine2D/particle"
	"seasonfx/internal/season"
)

func (d *DebugOverlay) drawParticleInspector(sys *particle.System, info Info, startY int) {
	ui := NewUIContext(10, startY, d.lineHeight, d.fontHeight, d.font)
	tables := sys.Tables()
	mode := sys.Mode()

	ui.Header("Mode:")
	ui.IndentLabel(fmt.Sprintf("Preference: %s", info.Preference), 10)
	ui.IndentLabel(fmt.Sprintf("Active: %s", mode), 10)
	ui.IndentLabel(fmt.Sprintf("Running: %v", sys.Running()), 10)
	w, h := sys.Bounds()
	ui.IndentLabel(fmt.Sprintf("Bounds: %.0fx%.0f", w, h), 10)
	ui.Separator()

	profile := tables.ProfileFor(mode)
	ui.Header("Pools:")
	ui.IndentLabel(fmt.Sprintf("Particles: %d / %d", len(sys.Particles()), profile.Particles), 10)
	ui.IndentLabel(fmt.Sprintf("Orbs: %d / %d", len(sys.Orbs()), profile.Orbs), 10)

	var alpha, size float64
	particles := sys.Particles()
	for i := range particles {
		alpha += particles[i].Alpha
		size += particles[i].Size
	}
	if n := float64(len(particles)); n > 0 {
		ui.IndentLabel(fmt.Sprintf("Mean size: %.2f  alpha: %.3f", size/n, alpha/n), 10)
	}
	ui.Separator()

	if !mode.IsSeason() {
		return
	}

	r := tables.RangesFor(mode)
	ui.Header("Ranges:")
	ui.IndentLabel(fmt.Sprintf("Size: %.2f - %.2f", r.Size.Min, r.Size.Max), 10)
	ui.IndentLabel(fmt.Sprintf("Speed: %.2f - %.2f", r.Speed.Min, r.Speed.Max), 10)
	ui.IndentLabel(fmt.Sprintf("Alpha: %.2f - %.2f", r.Alpha.Min, r.Alpha.Max), 10)
	ui.Separator()

	pal := tables.Palettes[mode]
	ui.Header("Palette:")
	for _, slot := range []struct {
		name string
		tint particle.Tint
	}{
		{"primary", pal.Primary},
		{"secondary", pal.Secondary},
		{"detail", pal.Detail},
		{"glow", pal.Glow},
	} {
		if slot.tint.Visible() {
			ui.Swatch(fmt.Sprintf("%s %s @ %.2f", slot.name, slot.tint.Hex(), slot.tint.Alpha), slot.tint.NRGBA(1), 10)
		}
	}
	ui.Swatch(fmt.Sprintf("orb %s @ %.2f", tables.OrbTint.Hex(), tables.OrbTint.Alpha), tables.OrbTint.NRGBA(1), 10)
	ui.Separator()

	ui.Header("Season by date:")
	ui.IndentLabel(fmt.Sprintf("Today: %s", season.SeasonForDate(time.Now())), 10)
}
