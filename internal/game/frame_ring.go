package game

import "time"

// frameRing records the last N frame durations so the debug overlay can show
// recent timing without allocating per frame. Everything runs on the game
// loop goroutine, so no locking is needed.
type frameRing struct {
	buffer    []time.Duration
	nextIndex int
	filled    int
}

func newFrameRing(ringSize int) *frameRing {
	return &frameRing{buffer: make([]time.Duration, ringSize)}
}

func (r *frameRing) record(d time.Duration) {
	r.buffer[r.nextIndex] = d
	r.nextIndex++
	if r.nextIndex >= len(r.buffer) {
		r.nextIndex = 0
	}
	if r.filled < len(r.buffer) {
		r.filled++
	}
}

// stats returns the average and worst duration over the recorded window.
func (r *frameRing) stats() (avg, worst time.Duration) {
	if r.filled == 0 {
		return 0, 0
	}
	var sum time.Duration
	// Walk backwards from nextIndex - 1 over the filled portion.
	idx := r.nextIndex - 1
	if idx < 0 {
		idx = len(r.buffer) - 1
	}
	for i := 0; i < r.filled; i++ {
		d := r.buffer[idx]
		sum += d
		if d > worst {
			worst = d
		}
		idx--
		if idx < 0 {
			idx = len(r.buffer) - 1
		}
	}
	return sum / time.Duration(r.filled), worst
}
