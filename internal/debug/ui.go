package debug

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// UIContext lays out sidebar rows top to bottom.
type UIContext struct {
	X, Y       int
	LineHeight int
	FontHeight int
	Font       rl.Font
}

func NewUIContext(x, y, lineHeight, fontHeight int, font rl.Font) *UIContext {
	return &UIContext{
		X:          x,
		Y:          y,
		LineHeight: lineHeight,
		FontHeight: fontHeight,
		Font:       font,
	}
}

func (ui *UIContext) drawText(text string, x, y int32, color rl.Color) {
	if ui.Font.BaseSize > 0 {
		rl.DrawTextEx(ui.Font, text, rl.NewVector2(float32(x), float32(y)), float32(ui.FontHeight), 1, color)
	} else {
		rl.DrawText(text, x, y, int32(ui.FontHeight), color)
	}
}

func (ui *UIContext) Label(text string) {
	ui.drawText(text, int32(ui.X), int32(ui.Y), rl.White)
	ui.Y += ui.LineHeight
}

func (ui *UIContext) IndentLabel(text string, indent int) {
	ui.drawText(text, int32(ui.X+indent), int32(ui.Y), rl.White)
	ui.Y += ui.LineHeight
}

func (ui *UIContext) Separator() {
	ui.Y += ui.LineHeight / 2
}

func (ui *UIContext) Header(text string) {
	ui.drawText(text, int32(ui.X), int32(ui.Y), rl.NewColor(255, 220, 120, 255))
	ui.Y += ui.LineHeight
}

// Swatch draws a color chip followed by a label.
func (ui *UIContext) Swatch(label string, c color.NRGBA, indent int) {
	size := int32(float64(ui.FontHeight) * 0.9)
	x := int32(ui.X + indent)
	y := int32(ui.Y + 2)
	rl.DrawRectangle(x, y, size, size, rl.NewColor(c.R, c.G, c.B, c.A))
	rl.DrawRectangleLines(x, y, size, size, rl.NewColor(150, 150, 150, 255))
	ui.drawText(label, x+size+6, int32(ui.Y), rl.White)
	ui.Y += ui.LineHeight
}
