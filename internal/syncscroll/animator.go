package syncscroll

import (
	"math"
	"time"
)

// Interpolator maps ramp progress in [0,1] to distance progress in [0,1].
type Interpolator func(t float64) float64

// Linear advances at constant speed.
func Linear(t float64) float64 { return t }

// EaseInOut accelerates out of and decelerates into each cycle boundary.
func EaseInOut(t float64) float64 { return t * t * (3 - 2*t) }

// IdleAnimator produces the per-tick deltas of an endless sequence of
// identical ramps. Each ramp covers distance px in cycle; when one ends the
// next begins at the exact instant the previous one was due to finish.
type IdleAnimator struct {
	// configured values, picked up at the start of each ramp
	nextDistance float64
	nextCycle    time.Duration
	interp       Interpolator

	distance  float64
	cycle     time.Duration
	rampStart time.Time
	emitted   int
	cycles    int
	running   bool
}

// NewIdleAnimator returns a stopped animator with a linear ramp.
func NewIdleAnimator(distance float64, cycle time.Duration) *IdleAnimator {
	a := &IdleAnimator{interp: Linear}
	a.Configure(distance, cycle)
	return a
}

// Configure sets the distance and duration of subsequent ramps. A ramp in
// progress keeps its own values.
func (a *IdleAnimator) Configure(distance float64, cycle time.Duration) {
	a.nextDistance = distance
	a.nextCycle = cycle
}

// SetInterpolator replaces the ramp shape. Nil restores Linear.
func (a *IdleAnimator) SetInterpolator(fn Interpolator) {
	if fn == nil {
		fn = Linear
	}
	a.interp = fn
}

// Start begins a fresh ramp at now, discarding any ramp in progress.
func (a *IdleAnimator) Start(now time.Time) {
	a.cycles = 0
	a.arm(now)
	a.running = a.cycle > 0
}

// Cancel halts the animator mid-ramp.
func (a *IdleAnimator) Cancel() {
	a.running = false
}

// Running reports whether a ramp is armed.
func (a *IdleAnimator) Running() bool {
	return a.running
}

// Cycles returns how many ramps completed since the last Start.
func (a *IdleAnimator) Cycles() int {
	return a.cycles
}

// Tick returns the distance travelled since the previous tick.
func (a *IdleAnimator) Tick(now time.Time) int {
	if !a.running {
		return 0
	}
	delta := 0
	for {
		elapsed := now.Sub(a.rampStart)
		if elapsed < a.cycle {
			pos := a.position(elapsed)
			delta += pos - a.emitted
			a.emitted = pos
			return delta
		}
		delta += int(math.Round(a.distance)) - a.emitted
		a.cycles++
		a.arm(a.rampStart.Add(a.cycle))
		if a.cycle <= 0 {
			a.running = false
			return delta
		}
	}
}

func (a *IdleAnimator) arm(start time.Time) {
	a.distance = a.nextDistance
	a.cycle = a.nextCycle
	a.rampStart = start
	a.emitted = 0
}

func (a *IdleAnimator) position(elapsed time.Duration) int {
	if elapsed <= 0 {
		return 0
	}
	progress := float64(elapsed) / float64(a.cycle)
	return int(math.Round(a.distance * a.interp(progress)))
}
