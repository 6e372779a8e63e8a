package engine2D

// Size is a resize notification.
type Size struct {
	Width      float64
	Height     float64
	PixelRatio float64
}

// ResizeQueue coalesces resize notifications. Only the latest pushed size is
// kept until the frame loop takes it.
type ResizeQueue struct {
	ch chan Size
}

func NewResizeQueue() *ResizeQueue {
	return &ResizeQueue{ch: make(chan Size, 1)}
}

// Push records s, replacing any pending size. It never blocks.
func (q *ResizeQueue) Push(s Size) {
	for {
		select {
		case q.ch <- s:
			return
		default:
		}
		select {
		case <-q.ch:
		default:
		}
	}
}

// Take returns the pending size, if any, and clears it.
func (q *ResizeQueue) Take() (Size, bool) {
	select {
	case s := <-q.ch:
		return s, true
	default:
		return Size{}, false
	}
}
