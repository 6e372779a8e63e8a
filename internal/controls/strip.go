package controls

// Rect is an axis-aligned box in logical window units.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Strip lays the controls out as a row of buttons in the bottom-right corner.
type Strip struct {
	ButtonW float64
	ButtonH float64
	Gap     float64
	Margin  float64
}

func DefaultStrip() Strip {
	return Strip{ButtonW: 64, ButtonH: 24, Gap: 6, Margin: 12}
}

// Layout returns one rect per button for a viewport of w by h.
func (s Strip) Layout(n int, w, h float64) []Rect {
	if n <= 0 {
		return nil
	}
	total := float64(n)*s.ButtonW + float64(n-1)*s.Gap
	x := w - s.Margin - total
	y := h - s.Margin - s.ButtonH

	rects := make([]Rect, n)
	for i := range rects {
		rects[i] = Rect{X: x + float64(i)*(s.ButtonW+s.Gap), Y: y, W: s.ButtonW, H: s.ButtonH}
	}
	return rects
}

// HitTest returns the index of the rect containing (x, y), or -1.
func HitTest(rects []Rect, x, y float64) int {
	for i, r := range rects {
		if r.Contains(x, y) {
			return i
		}
	}
	return -1
}
