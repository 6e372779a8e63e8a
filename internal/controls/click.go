package controls

// ClickDetector turns sampled button state into clicks. A click is a press
// and a release over the same button.
type ClickDetector struct {
	down      bool
	pressedOn int
}

func NewClickDetector() *ClickDetector {
	return &ClickDetector{pressedOn: -1}
}

// Update takes the button under the pointer (-1 for none) and whether the
// mouse button is held. It returns the clicked button index or -1.
func (c *ClickDetector) Update(hit int, down bool) int {
	clicked := -1
	switch {
	case down && !c.down:
		c.pressedOn = hit
	case !down && c.down:
		if c.pressedOn >= 0 && hit == c.pressedOn {
			clicked = hit
		}
		c.pressedOn = -1
	}
	c.down = down
	return clicked
}

// Pressed returns the button currently held down, or -1.
func (c *ClickDetector) Pressed() int {
	if !c.down {
		return -1
	}
	return c.pressedOn
}
