package syncscroll

// Router turns classified gesture callbacks into controller calls. It owns
// the pending down event: one copy is obtained per down and released
// exactly once, when it is paired with a tap, replaced or cancelled.
type Router struct {
	ctrl    *Controller
	pool    EventPool
	pending *TouchEvent
}

// NewRouter returns a router feeding ctrl. A nil pool uses NewEventPool.
func NewRouter(ctrl *Controller, pool EventPool) *Router {
	if pool == nil {
		pool = NewEventPool()
	}
	return &Router{ctrl: ctrl, pool: pool}
}

// OnDown snapshots e and interrupts every driver.
func (r *Router) OnDown(e TouchEvent) {
	r.releasePending()
	e.Action = TouchDown
	r.pending = r.pool.Obtain(e)
	r.ctrl.OnTouchDown()
}

// OnScroll applies a drag. distanceY is the previous pointer y minus the
// current one, so dragging up advances the lists.
func (r *Router) OnScroll(_, _ TouchEvent, _, distanceY float64) {
	r.ctrl.OnScrollDelta(distanceY)
}

// OnFling starts a fling. velocityY is the pointer velocity in px/s; the
// content moves with the pointer, hence the sign flip.
func (r *Router) OnFling(_, _ TouchEvent, _, velocityY float64) {
	r.ctrl.OnFlingReleased(-velocityY)
}

// OnSingleTapUp forwards the pending down and e to the target under them.
func (r *Router) OnSingleTapUp(e TouchEvent) {
	down := r.pending
	r.pending = nil
	r.ctrl.OnSingleTapUp(down, e)
	if down != nil {
		r.pool.Release(down)
	}
}

// OnUp ends the gesture.
func (r *Router) OnUp(TouchEvent) {
	r.ctrl.OnTouchUp()
}

// OnCancel drops the pending down and ends the gesture.
func (r *Router) OnCancel(TouchEvent) {
	r.releasePending()
	r.ctrl.OnTouchCancel()
}

// HasPendingDown reports whether a down event is waiting for its tap.
func (r *Router) HasPendingDown() bool {
	return r.pending != nil
}

// Close releases the pending down event, if any.
func (r *Router) Close() {
	r.releasePending()
}

func (r *Router) releasePending() {
	if r.pending == nil {
		return
	}
	r.pool.Release(r.pending)
	r.pending = nil
}
