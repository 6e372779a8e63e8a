package engine2D

import (
	"time"

	"seasonfx/internal/season"
)

// FrameClock measures the time between frames. Readings from time.Now carry
// a monotonic component, so wall-clock jumps do not leak into dt.
type FrameClock struct {
	clock   season.Clock
	last    time.Time
	started bool
	frames  uint64
	total   time.Duration
}

func NewFrameClock(clock season.Clock) *FrameClock {
	if clock == nil {
		clock = season.SystemClock{}
	}
	return &FrameClock{clock: clock}
}

// Tick returns the seconds since the previous Tick. The first Tick returns 0
// and so does a clock that went backwards.
func (f *FrameClock) Tick() float64 {
	now := f.clock.Now()
	if !f.started {
		f.started = true
		f.last = now
		return 0
	}

	delta := now.Sub(f.last)
	f.last = now
	f.frames++
	if delta <= 0 {
		return 0
	}
	f.total += delta
	return delta.Seconds()
}

func (f *FrameClock) Frames() uint64 { return f.frames }

// Elapsed is the sum of all positive deltas.
func (f *FrameClock) Elapsed() time.Duration { return f.total }
