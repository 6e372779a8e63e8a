package engine2D

import (
	"math"
)

// MaxPixelRatio caps the backing resolution on dense displays.
const MaxPixelRatio = 2.0

// Viewport is the logical surface size and the device pixel ratio applied to
// its backing store.
type Viewport struct {
	Width      float64
	Height     float64
	PixelRatio float64
}

// ClampPixelRatio limits ratio to [1, MaxPixelRatio]. Non-finite or
// non-positive ratios become 1.
func ClampPixelRatio(ratio float64) float64 {
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) || ratio <= 0 {
		return 1
	}
	return math.Max(1, math.Min(ratio, MaxPixelRatio))
}

func NewViewport(width, height, ratio float64) Viewport {
	return Viewport{Width: width, Height: height, PixelRatio: ClampPixelRatio(ratio)}
}

// Empty reports whether there is nothing to back, as before the first layout.
func (v Viewport) Empty() bool {
	return !(v.Width > 0 && v.Height > 0)
}

// Backing returns the backing store size in device pixels.
func (v Viewport) Backing() (int32, int32) {
	if v.Empty() {
		return 0, 0
	}
	ratio := ClampPixelRatio(v.PixelRatio)
	return int32(math.Round(v.Width * ratio)), int32(math.Round(v.Height * ratio))
}
