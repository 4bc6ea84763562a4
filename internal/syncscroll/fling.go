package syncscroll

import (
	"fmt"
	"math"
	"time"
)

// FlingOptions tunes the fling decay.
type FlingOptions struct {
	// Deceleration is the constant friction in px/s².
	Deceleration float64
	// MinVelocity is the release speed below which no fling starts.
	MinVelocity float64
	// MaxVelocity caps the release speed.
	MaxVelocity float64
}

// DefaultFlingOptions returns the fling tuning used when nothing is configured.
func DefaultFlingOptions() FlingOptions {
	return FlingOptions{
		Deceleration: 2000,
		MinVelocity:  50,
		MaxVelocity:  8000,
	}
}

// Validate reports the first option outside its domain.
func (o FlingOptions) Validate() error {
	if !finite(o.Deceleration) || o.Deceleration <= 0 {
		return fmt.Errorf("%w: fling deceleration must be finite and positive, got %g", ErrInvalidConfiguration, o.Deceleration)
	}
	if !finite(o.MinVelocity) || o.MinVelocity < 0 {
		return fmt.Errorf("%w: fling min velocity must not be negative, got %g", ErrInvalidConfiguration, o.MinVelocity)
	}
	if !finite(o.MaxVelocity) || o.MaxVelocity <= 0 || o.MaxVelocity < o.MinVelocity {
		return fmt.Errorf("%w: fling max velocity must be finite, positive and >= min velocity, got %g", ErrInvalidConfiguration, o.MaxVelocity)
	}
	return nil
}

// Fling simulates a ballistic scroll under constant deceleration over an
// unbounded range. Samples depend only on the armed velocity and the time
// elapsed since arming.
type Fling struct {
	opts     FlingOptions
	origin   float64
	velocity float64
	started  time.Time
	duration time.Duration
	active   bool
}

// NewFling returns an idle integrator.
func NewFling(opts FlingOptions) *Fling {
	return &Fling{opts: opts}
}

// Arm starts a simulation at origin with the given signed velocity in px/s.
// It returns false, leaving the integrator idle, when the velocity is
// below the minimum.
func (f *Fling) Arm(velocity float64, origin int, now time.Time) bool {
	f.active = false
	if math.IsNaN(velocity) || math.Abs(velocity) < f.opts.MinVelocity || velocity == 0 {
		return false
	}
	velocity = math.Max(-f.opts.MaxVelocity, math.Min(f.opts.MaxVelocity, velocity))

	f.origin = float64(origin)
	f.velocity = velocity
	f.started = now
	f.duration = time.Duration(math.Abs(velocity) / f.opts.Deceleration * float64(time.Second))
	f.active = f.duration > 0
	return f.active
}

// Duration returns the total length of the armed simulation.
func (f *Fling) Duration() time.Duration {
	return f.duration
}

// Active reports whether a simulation is armed and not force-stopped.
func (f *Fling) Active() bool {
	return f.active
}

// HasMore reports whether the simulated velocity is still non-zero at now.
func (f *Fling) HasMore(now time.Time) bool {
	return f.active && now.Sub(f.started) < f.duration
}

// Sample returns the simulated absolute position at now.
func (f *Fling) Sample(now time.Time) int {
	t := f.elapsed(now).Seconds()
	sign := 1.0
	if f.velocity < 0 {
		sign = -1
	}
	return int(math.Round(f.origin + f.velocity*t - sign*f.opts.Deceleration*t*t/2))
}

// Velocity returns the simulated velocity at now.
func (f *Fling) Velocity(now time.Time) float64 {
	if !f.active {
		return 0
	}
	t := f.elapsed(now).Seconds()
	speed := math.Max(0, math.Abs(f.velocity)-f.opts.Deceleration*t)
	return math.Copysign(speed, f.velocity)
}

// ForceStop ends the simulation immediately.
func (f *Fling) ForceStop() {
	f.active = false
}

func (f *Fling) elapsed(now time.Time) time.Duration {
	d := now.Sub(f.started)
	if d < 0 {
		return 0
	}
	return min(d, f.duration)
}
