package gesture

import (
	"time"

	"github.com/llehouerou/twinscroll/internal/syncscroll"
)

type sample struct {
	x, y float64
	t    time.Time
}

// tracker estimates pointer velocity from the samples inside a sliding
// window ending at the most recent one.
type tracker struct {
	window  time.Duration
	samples []sample
}

func (t *tracker) reset() {
	t.samples = t.samples[:0]
}

func (t *tracker) add(e syncscroll.TouchEvent) {
	t.samples = append(t.samples, sample{x: e.X, y: e.Y, t: e.Time})
	cutoff := e.Time.Add(-t.window)
	drop := 0
	for drop < len(t.samples)-1 && t.samples[drop].t.Before(cutoff) {
		drop++
	}
	t.samples = t.samples[drop:]
}

// velocity returns px/s between the oldest and newest sample in the window.
func (t *tracker) velocity() (vx, vy float64) {
	if len(t.samples) < 2 {
		return 0, 0
	}
	first, last := t.samples[0], t.samples[len(t.samples)-1]
	dt := last.t.Sub(first.t).Seconds()
	if dt <= 0 {
		return 0, 0
	}
	return (last.x - first.x) / dt, (last.y - first.y) / dt
}
