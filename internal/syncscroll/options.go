package syncscroll

import (
	"fmt"
	"log/slog"
	"math"
	"time"
)

// Defaults for Options.
const (
	DefaultLeftScrollFactor     = 1.4
	DefaultRightScrollFactor    = 0.8
	DefaultLeftAnimationFactor  = 1.0
	DefaultRightAnimationFactor = 0.9

	DefaultAnimationVelocity      = 1500.0 // px per minute at density 1
	DefaultAnimationCycleDuration = 60 * time.Second
	DefaultStartAnimationDelay    = 10 * time.Millisecond
)

// Options configures a Controller.
type Options struct {
	LeftScrollFactor     float64
	RightScrollFactor    float64
	LeftAnimationFactor  float64
	RightAnimationFactor float64

	// AnimationVelocity is the idle drift speed in px per minute.
	AnimationVelocity float64
	// AnimationCycle is the length of one idle ramp before it re-arms.
	AnimationCycle time.Duration
	// StartAnimationDelay is the delay used after a tap, a release or a
	// finished fling before idle animation resumes.
	StartAnimationDelay time.Duration
	// ScrollResumeDelay replaces StartAnimationDelay when the released
	// gesture was a drag.
	ScrollResumeDelay time.Duration

	// Interpolator shapes each idle ramp. Nil means Linear.
	Interpolator Interpolator

	Fling FlingOptions

	// Logger receives driver transitions at debug level. Nil means slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		LeftScrollFactor:     DefaultLeftScrollFactor,
		RightScrollFactor:    DefaultRightScrollFactor,
		LeftAnimationFactor:  DefaultLeftAnimationFactor,
		RightAnimationFactor: DefaultRightAnimationFactor,
		AnimationVelocity:    DefaultAnimationVelocity,
		AnimationCycle:       DefaultAnimationCycleDuration,
		StartAnimationDelay:  DefaultStartAnimationDelay,
		ScrollResumeDelay:    DefaultStartAnimationDelay,
		Fling:                DefaultFlingOptions(),
	}
}

// Validate reports the first option outside its domain.
func (o Options) Validate() error {
	factors := []struct {
		name  string
		value float64
	}{
		{"left scroll factor", o.LeftScrollFactor},
		{"right scroll factor", o.RightScrollFactor},
		{"left animation factor", o.LeftAnimationFactor},
		{"right animation factor", o.RightAnimationFactor},
	}
	for _, f := range factors {
		if !finite(f.value) {
			return fmt.Errorf("%w: %s must be finite, got %g", ErrInvalidConfiguration, f.name, f.value)
		}
	}
	if o.AnimationCycle <= 0 {
		return fmt.Errorf("%w: animation cycle must be positive, got %s", ErrInvalidConfiguration, o.AnimationCycle)
	}
	if !finite(o.AnimationVelocity) || o.AnimationVelocity < 0 {
		return fmt.Errorf("%w: animation velocity must be finite and not negative, got %g", ErrInvalidConfiguration, o.AnimationVelocity)
	}
	if o.StartAnimationDelay < 0 {
		return fmt.Errorf("%w: start animation delay must not be negative, got %s", ErrInvalidConfiguration, o.StartAnimationDelay)
	}
	if o.ScrollResumeDelay < 0 {
		return fmt.Errorf("%w: scroll resume delay must not be negative, got %s", ErrInvalidConfiguration, o.ScrollResumeDelay)
	}
	return o.Fling.Validate()
}

// CycleDistance returns the distance covered by one idle ramp.
func (o Options) CycleDistance() float64 {
	return o.AnimationVelocity * o.AnimationCycle.Minutes()
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
