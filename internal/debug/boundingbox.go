package debug

import (
	"seasonfx/internal/engine2D/particle"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func (d *DebugOverlay) getBoundingBoxToggleRect() rl.Rectangle {
	return rl.NewRectangle(
		10,
		float32(d.tabHeight+5),
		float32(d.sidebarWidth-20),
		20,
	)
}

func (d *DebugOverlay) drawBoundingBoxToggle() {
	rect := d.getBoundingBoxToggleRect()

	boxSize := float32(d.fontHeight) * 1.2
	boxX := rect.X
	boxY := rect.Y + (rect.Height-boxSize)/2

	rl.DrawRectangleLines(int32(boxX), int32(boxY), int32(boxSize), int32(boxSize), rl.White)
	if d.ShowBoundingBoxes {
		rl.DrawRectangle(int32(boxX+2), int32(boxY+2), int32(boxSize-4), int32(boxSize-4), rl.White)
	}

	d.DrawText("Show Bounding Boxes", int32(boxX+boxSize+10), int32(boxY), int32(d.fontHeight), rl.White)
}

// drawParticleBoundingBoxes outlines each particle's reach and each orb in
// window coordinates.
func (d *DebugOverlay) drawParticleBoundingBoxes(sys *particle.System) {
	particleCol := rl.NewColor(0, 255, 255, 140)
	orbCol := rl.NewColor(0, 255, 0, 90)

	for _, o := range sys.Orbs() {
		rl.DrawCircleLines(int32(o.X), int32(o.Y), float32(o.R), orbCol)
	}

	particles := sys.Particles()
	for i := range particles {
		p := &particles[i]
		r := p.Extent()
		rl.DrawRectangleLinesEx(rl.NewRectangle(float32(p.X-r), float32(p.Y-r), float32(2*r), float32(2*r)), 1, particleCol)
		rl.DrawRectangle(int32(p.X-1), int32(p.Y-1), 2, 2, rl.Red)
	}
}
