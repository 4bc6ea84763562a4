package syncscroll_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/llehouerou/twinscroll/internal/frame"
	"github.com/llehouerou/twinscroll/internal/syncscroll"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

const testFrame = 10 * time.Millisecond

// memTarget is an infinite list of equally tall items.
type memTarget struct {
	index, top int
	itemHeight int
	width      int
	empty      bool
	events     []syncscroll.TouchEvent
}

func newMemTarget(width int) *memTarget {
	return &memTarget{index: 1000, itemHeight: 50, width: width}
}

func (t *memTarget) FirstVisibleIndex() (int, bool) {
	if t.empty {
		return 0, false
	}
	return t.index, true
}

func (t *memTarget) TopOffsetOfFirstVisibleItem() (int, bool) {
	if t.empty {
		return 0, false
	}
	return t.top, true
}

func (t *memTarget) ScrollToOffset(index, top int) {
	pos := index*t.itemHeight - top
	t.index = floorDiv(pos, t.itemHeight)
	t.top = t.index*t.itemHeight - pos
}

func (t *memTarget) VerticalScrollPosition() int {
	return t.index*t.itemHeight - t.top
}

func (t *memTarget) Width() int { return t.width }

func (t *memTarget) DispatchTouch(ev syncscroll.TouchEvent) {
	t.events = append(t.events, ev)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// harness wires a controller to two memTargets on a virtual clock.
type harness struct {
	sched       *frame.Manual
	ctrl        *syncscroll.Controller
	left, right *memTarget
	leftStart   int
	rightStart  int
}

func newHarness(t *testing.T, opts syncscroll.Options) *harness {
	t.Helper()
	sched := frame.NewManual(epoch, testFrame)
	return newHarnessWith(t, sched, opts)
}

func newHarnessWith(t *testing.T, sched syncscroll.Scheduler, opts syncscroll.Options) *harness {
	t.Helper()
	ctrl, err := syncscroll.New(sched, opts)
	require.NoError(t, err)

	left, right := newMemTarget(100), newMemTarget(80)
	require.NoError(t, ctrl.Bind(left, right))

	h := &harness{ctrl: ctrl, left: left, right: right}
	if m, ok := sched.(*frame.Manual); ok {
		h.sched = m
	}
	h.mark()
	return h
}

// mark records the current positions as the reference for moved().
func (h *harness) mark() {
	h.leftStart = h.left.VerticalScrollPosition()
	h.rightStart = h.right.VerticalScrollPosition()
}

func (h *harness) moved() (left, right int) {
	return h.left.VerticalScrollPosition() - h.leftStart,
		h.right.VerticalScrollPosition() - h.rightStart
}

// leakyScheduler ignores Cancel, so revoked callbacks still fire.
type leakyScheduler struct {
	*frame.Manual
}

func (leakyScheduler) Cancel(syncscroll.Handle) {}

// countingPool records every obtain and release.
type countingPool struct {
	obtained int
	released int
	live     map[*syncscroll.TouchEvent]bool
	doubles  int
}

func newCountingPool() *countingPool {
	return &countingPool{live: make(map[*syncscroll.TouchEvent]bool)}
}

func (p *countingPool) Obtain(ev syncscroll.TouchEvent) *syncscroll.TouchEvent {
	p.obtained++
	e := new(syncscroll.TouchEvent)
	*e = ev
	p.live[e] = true
	return e
}

func (p *countingPool) Release(ev *syncscroll.TouchEvent) {
	if !p.live[ev] {
		p.doubles++
		return
	}
	delete(p.live, ev)
	p.released++
}
