package syncscroll

import "time"

// Handle identifies a scheduled callback. The zero Handle refers to nothing.
type Handle uint64

// Scheduler is the host's callback queue. Every callback must run on the
// same control thread that calls into the Controller.
type Scheduler interface {
	Now() time.Time
	// PostFrame runs fn on the next display frame.
	PostFrame(fn func()) Handle
	// PostDelayed runs fn once d has elapsed.
	PostDelayed(d time.Duration, fn func()) Handle
	// Cancel revokes a callback that has not run yet. Unknown or already
	// fired handles are ignored.
	Cancel(h Handle)
}

type jobKind int

const (
	jobFlingTick jobKind = iota
	jobLaunchAnimation
	jobAnimationTick
)

func (k jobKind) String() string {
	switch k {
	case jobFlingTick:
		return "fling-tick"
	case jobLaunchAnimation:
		return "launch-animation"
	case jobAnimationTick:
		return "animation-tick"
	}
	return "unknown"
}

// job is a scheduled unit of driver work. It is only honoured while the
// controller's epoch still equals the one it was created under.
type job struct {
	kind  jobKind
	epoch uint64
}
