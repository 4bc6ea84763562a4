package syncscroll

import (
	"math"
	"sync"
	"time"
)

// Target is one scrollable list as seen by the controller.
type Target interface {
	// FirstVisibleIndex returns the adapter index of the first visible item,
	// or false when nothing is laid out yet.
	FirstVisibleIndex() (int, bool)
	// TopOffsetOfFirstVisibleItem returns the top edge of the first visible
	// item relative to the viewport, or false when there is no such item.
	TopOffsetOfFirstVisibleItem() (int, bool)
	// ScrollToOffset places item index with its top edge at top.
	ScrollToOffset(index, top int)
	// VerticalScrollPosition returns the absolute scroll position in px.
	VerticalScrollPosition() int
}

// TouchReceiver is implemented by targets that accept forwarded taps.
type TouchReceiver interface {
	Width() int
	DispatchTouch(ev TouchEvent)
}

// Side identifies one of the two targets.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// TouchAction is the kind of a forwarded touch event.
type TouchAction int

const (
	TouchDown TouchAction = iota
	TouchUp
)

// TouchEvent is a single pointer event in container coordinates.
type TouchEvent struct {
	Action TouchAction
	X, Y   float64
	Time   time.Time
}

// Offset returns a copy of e moved by dx, dy.
func (e TouchEvent) Offset(dx, dy float64) TouchEvent {
	e.X += dx
	e.Y += dy
	return e
}

// EventPool hands out copies of touch events that must be released once.
type EventPool interface {
	Obtain(ev TouchEvent) *TouchEvent
	Release(ev *TouchEvent)
}

type syncEventPool struct {
	pool sync.Pool
}

// NewEventPool returns an EventPool backed by sync.Pool.
func NewEventPool() EventPool {
	return &syncEventPool{pool: sync.Pool{New: func() any { return new(TouchEvent) }}}
}

func (p *syncEventPool) Obtain(ev TouchEvent) *TouchEvent {
	e, _ := p.pool.Get().(*TouchEvent)
	if e == nil {
		e = new(TouchEvent)
	}
	*e = ev
	return e
}

func (p *syncEventPool) Release(ev *TouchEvent) {
	if ev == nil {
		return
	}
	*ev = TouchEvent{}
	p.pool.Put(ev)
}

// maxStep bounds a single move so the int conversion cannot overflow.
const maxStep = 1 << 30

// targetAdapter applies scaled deltas to one Target. A nil target makes
// every operation a no-op. The fractional part of each scaled delta is
// carried into the next one so repeated small deltas are not lost.
// Non-finite deltas are dropped.
type targetAdapter struct {
	side   Side
	target Target
	carry  float64
}

func (a *targetAdapter) bound() bool {
	return a.target != nil
}

func (a *targetAdapter) position() int {
	if a.target == nil {
		return 0
	}
	return a.target.VerticalScrollPosition()
}

// scrollBy moves the target content by delta*factor px. Positive deltas
// advance the list (items move up).
func (a *targetAdapter) scrollBy(delta, factor float64) {
	if a.target == nil {
		return
	}
	index, ok := a.target.FirstVisibleIndex()
	if !ok {
		return
	}
	top, ok := a.target.TopOffsetOfFirstVisibleItem()
	if !ok {
		return
	}

	scaled := delta*factor + a.carry
	if !finite(scaled) {
		return
	}
	step := math.Round(scaled)
	a.carry = scaled - step
	if step == 0 {
		return
	}
	step = math.Max(-maxStep, math.Min(maxStep, step))
	a.target.ScrollToOffset(index, top-int(step))
}

func (a *targetAdapter) resetCarry() {
	a.carry = 0
}
