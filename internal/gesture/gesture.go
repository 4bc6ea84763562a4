// Package gesture classifies a raw pointer stream into down, scroll,
// fling, single-tap and up gestures.
package gesture

import (
	"math"
	"time"

	"github.com/llehouerou/twinscroll/internal/syncscroll"
)

// Action is the kind of a raw pointer event.
type Action int

const (
	Press Action = iota
	Motion
	Release
	Cancel
)

// PointerEvent is one raw pointer sample in container px.
type PointerEvent struct {
	Action Action
	X, Y   float64
	Time   time.Time
}

// Listener receives classified gestures. syncscroll.Router implements it.
type Listener interface {
	OnDown(e syncscroll.TouchEvent)
	OnScroll(e1, e2 syncscroll.TouchEvent, distanceX, distanceY float64)
	OnFling(e1, e2 syncscroll.TouchEvent, velocityX, velocityY float64)
	OnSingleTapUp(e syncscroll.TouchEvent)
	OnUp(e syncscroll.TouchEvent)
	OnCancel(e syncscroll.TouchEvent)
}

// Options tunes classification.
type Options struct {
	// TouchSlop is how far the pointer may travel before a press stops
	// being a tap and starts scrolling.
	TouchSlop float64
	// MinFlingVelocity is the release speed in px/s below which no fling
	// is reported.
	MinFlingVelocity float64
	// MaxFlingVelocity caps the reported release speed.
	MaxFlingVelocity float64
	// VelocityWindow is how much pointer history the release speed is
	// computed from.
	VelocityWindow time.Duration
}

// DefaultOptions returns the classification thresholds used when nothing
// is configured.
func DefaultOptions() Options {
	return Options{
		TouchSlop:        8,
		MinFlingVelocity: 50,
		MaxFlingVelocity: 8000,
		VelocityWindow:   100 * time.Millisecond,
	}
}

// Recognizer turns PointerEvents into Listener calls. It is not safe for
// concurrent use.
type Recognizer struct {
	l    Listener
	opts Options

	pressed   bool
	scrolling bool
	down      syncscroll.TouchEvent
	last      syncscroll.TouchEvent
	tracker   tracker
}

// New returns a recognizer reporting to l.
func New(l Listener, opts Options) *Recognizer {
	return &Recognizer{l: l, opts: opts, tracker: tracker{window: opts.VelocityWindow}}
}

// Pressed reports whether a press is in progress.
func (r *Recognizer) Pressed() bool {
	return r.pressed
}

// Handle consumes one pointer event.
func (r *Recognizer) Handle(ev PointerEvent) {
	te := syncscroll.TouchEvent{X: ev.X, Y: ev.Y, Time: ev.Time}
	switch ev.Action {
	case Press:
		r.press(te)
	case Motion:
		r.motion(te)
	case Release:
		r.release(te)
	case Cancel:
		r.cancel(te)
	}
}

func (r *Recognizer) press(e syncscroll.TouchEvent) {
	e.Action = syncscroll.TouchDown
	r.pressed = true
	r.scrolling = false
	r.down = e
	r.last = e
	r.tracker.reset()
	r.tracker.add(e)
	r.l.OnDown(e)
}

func (r *Recognizer) motion(e syncscroll.TouchEvent) {
	if !r.pressed {
		return
	}
	r.tracker.add(e)
	if !r.scrolling {
		if math.Hypot(e.X-r.down.X, e.Y-r.down.Y) <= r.opts.TouchSlop {
			return
		}
		r.scrolling = true
	}
	dx, dy := r.last.X-e.X, r.last.Y-e.Y
	r.last = e
	if dx != 0 || dy != 0 {
		r.l.OnScroll(r.down, e, dx, dy)
	}
}

func (r *Recognizer) release(e syncscroll.TouchEvent) {
	if !r.pressed {
		return
	}
	e.Action = syncscroll.TouchUp
	r.tracker.add(e)
	r.pressed = false

	if !r.scrolling {
		r.l.OnSingleTapUp(e)
	} else {
		vx, vy := r.tracker.velocity()
		vx = clampAbs(vx, r.opts.MaxFlingVelocity)
		vy = clampAbs(vy, r.opts.MaxFlingVelocity)
		if math.Abs(vy) > r.opts.MinFlingVelocity || math.Abs(vx) > r.opts.MinFlingVelocity {
			r.l.OnFling(r.down, e, vx, vy)
		}
	}
	r.l.OnUp(e)
}

func (r *Recognizer) cancel(e syncscroll.TouchEvent) {
	if !r.pressed {
		return
	}
	r.pressed = false
	r.scrolling = false
	r.l.OnCancel(e)
}

func clampAbs(v, limit float64) float64 {
	if limit <= 0 {
		return v
	}
	return math.Max(-limit, math.Min(limit, v))
}
