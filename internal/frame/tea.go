package frame

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/twinscroll/internal/syncscroll"
)

// FireMsg tells Tea to run the callback registered under ID.
type FireMsg struct {
	ID syncscroll.Handle
}

// Tea schedules callbacks through the bubbletea event loop. Posting only
// queues a timer command; the owning model must return Flush() from
// Update and hand every FireMsg back to Fire, so callbacks always run on
// the Update goroutine.
type Tea struct {
	frame     time.Duration
	now       func() time.Time
	nextID    uint64
	callbacks map[syncscroll.Handle]func()
	queued    []tea.Cmd
}

// NewTea returns a scheduler posting frame callbacks every frameInterval.
func NewTea(frameInterval time.Duration) *Tea {
	if frameInterval <= 0 {
		frameInterval = DefaultFrameInterval
	}
	return &Tea{
		frame:     frameInterval,
		now:       time.Now,
		callbacks: make(map[syncscroll.Handle]func()),
	}
}

// Now returns the wall clock.
func (t *Tea) Now() time.Time {
	return t.now()
}

// PostFrame schedules fn for the next frame.
func (t *Tea) PostFrame(fn func()) syncscroll.Handle {
	return t.post(t.frame, fn)
}

// PostDelayed schedules fn after d.
func (t *Tea) PostDelayed(d time.Duration, fn func()) syncscroll.Handle {
	return t.post(max(d, 0), fn)
}

// Cancel forgets a callback. Its timer still fires but Fire ignores it.
func (t *Tea) Cancel(h syncscroll.Handle) {
	delete(t.callbacks, h)
}

// Pending returns the number of live callbacks.
func (t *Tea) Pending() int {
	return len(t.callbacks)
}

// Fire runs the callback for msg if it was not cancelled. It reports
// whether anything ran.
func (t *Tea) Fire(msg FireMsg) bool {
	fn, ok := t.callbacks[msg.ID]
	if !ok {
		return false
	}
	delete(t.callbacks, msg.ID)
	fn()
	return true
}

// Flush returns the timer commands queued since the last call.
func (t *Tea) Flush() tea.Cmd {
	if len(t.queued) == 0 {
		return nil
	}
	cmds := t.queued
	t.queued = nil
	return tea.Batch(cmds...)
}

func (t *Tea) post(d time.Duration, fn func()) syncscroll.Handle {
	t.nextID++
	id := syncscroll.Handle(t.nextID)
	t.callbacks[id] = fn
	t.queued = append(t.queued, tea.Tick(d, func(time.Time) tea.Msg {
		return FireMsg{ID: id}
	}))
	return id
}
