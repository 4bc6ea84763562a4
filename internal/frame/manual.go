// Package frame provides the callback schedulers that drive syncscroll:
// one backed by the bubbletea event loop and one on a virtual clock.
package frame

import (
	"time"

	"github.com/llehouerou/twinscroll/internal/syncscroll"
)

// DefaultFrameInterval is roughly one frame at 60 Hz.
const DefaultFrameInterval = 16 * time.Millisecond

type entry struct {
	id  syncscroll.Handle
	due time.Time
	seq uint64
	fn  func()
}

// Manual is a scheduler on a virtual clock. Nothing runs until the clock
// is advanced; callbacks due at the same instant run in posting order.
type Manual struct {
	now    time.Time
	frame  time.Duration
	nextID uint64
	queue  []entry
}

// NewManual returns a scheduler whose clock starts at start.
func NewManual(start time.Time, frameInterval time.Duration) *Manual {
	if frameInterval <= 0 {
		frameInterval = DefaultFrameInterval
	}
	return &Manual{now: start, frame: frameInterval}
}

// Now returns the virtual time.
func (m *Manual) Now() time.Time {
	return m.now
}

// FrameInterval returns the virtual frame length.
func (m *Manual) FrameInterval() time.Duration {
	return m.frame
}

// PostFrame schedules fn one frame from now.
func (m *Manual) PostFrame(fn func()) syncscroll.Handle {
	return m.post(m.frame, fn)
}

// PostDelayed schedules fn d from now.
func (m *Manual) PostDelayed(d time.Duration, fn func()) syncscroll.Handle {
	return m.post(max(d, 0), fn)
}

// Cancel drops a callback that has not run.
func (m *Manual) Cancel(h syncscroll.Handle) {
	for i, e := range m.queue {
		if e.id == h {
			m.queue = append(m.queue[:i], m.queue[i+1:]...)
			return
		}
	}
}

// Pending returns the number of callbacks waiting to run.
func (m *Manual) Pending() int {
	return len(m.queue)
}

// Advance moves the clock forward by d, running every callback that falls
// due on the way, including ones posted by callbacks during the advance.
func (m *Manual) Advance(d time.Duration) {
	target := m.now.Add(d)
	for {
		i := m.next()
		if i < 0 || m.queue[i].due.After(target) {
			break
		}
		e := m.queue[i]
		m.queue = append(m.queue[:i], m.queue[i+1:]...)
		m.now = e.due
		e.fn()
	}
	m.now = target
}

// Frames advances the clock by n frames.
func (m *Manual) Frames(n int) {
	for range n {
		m.Advance(m.frame)
	}
}

func (m *Manual) post(d time.Duration, fn func()) syncscroll.Handle {
	m.nextID++
	id := syncscroll.Handle(m.nextID)
	m.queue = append(m.queue, entry{id: id, due: m.now.Add(d), seq: m.nextID, fn: fn})
	return id
}

// next returns the index of the earliest entry, or -1.
func (m *Manual) next() int {
	best := -1
	for i, e := range m.queue {
		if best < 0 || e.due.Before(m.queue[best].due) ||
			(e.due.Equal(m.queue[best].due) && e.seq < m.queue[best].seq) {
			best = i
		}
	}
	return best
}
