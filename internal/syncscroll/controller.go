// Package syncscroll keeps two vertically scrolling targets in linked
// motion. One gesture stream drives both targets through per-target scale
// factors; a ballistic fling continues a released drag; an endless idle
// drift runs whenever nothing else is moving them.
//
// Everything runs on the host's control thread. At most one driver
// (user scroll, fling, idle animation) is live at a time and every
// driver change revokes the outgoing driver's scheduled callback.
package syncscroll

import (
	"fmt"
	"log/slog"
	"time"
)

// DriverState names the driver currently allowed to move the targets.
type DriverState int

const (
	Idle DriverState = iota
	UserScrolling
	Flinging
	AnimatingIdle
)

func (s DriverState) String() string {
	switch s {
	case Idle:
		return "idle"
	case UserScrolling:
		return "scrolling"
	case Flinging:
		return "flinging"
	case AnimatingIdle:
		return "animating"
	}
	return fmt.Sprintf("DriverState(%d)", int(s))
}

// gestureKind remembers what the finger did since the last down event; it
// picks the delay before idle animation resumes on release.
type gestureKind int

const (
	gestureNone gestureKind = iota
	gestureScroll
	gestureFling
	gestureTap
)

// Controller is the synchronisation state machine.
type Controller struct {
	opts  Options
	sched Scheduler
	log   *slog.Logger

	left, right targetAdapter
	fling       *Fling
	anim        *IdleAnimator

	state   DriverState
	gesture gestureKind
	epoch   uint64

	pending       Handle
	hasPending    bool
	launchPending bool

	stopRequested    bool
	touchedSinceStop bool

	lastFlingY int
}

// New creates a controller. Targets must be bound before anything moves.
func New(sched Scheduler, opts Options) (*Controller, error) {
	if sched == nil {
		return nil, fmt.Errorf("%w: scheduler is required", ErrInvalidConfiguration)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	anim := NewIdleAnimator(opts.CycleDistance(), opts.AnimationCycle)
	anim.SetInterpolator(opts.Interpolator)

	return &Controller{
		opts:  opts,
		sched: sched,
		log:   logger,
		left:  targetAdapter{side: Left},
		right: targetAdapter{side: Right},
		fling: NewFling(opts.Fling),
		anim:  anim,
	}, nil
}

// Bind attaches the two targets and clears any stop request.
func (c *Controller) Bind(left, right Target) error {
	if left == nil || right == nil {
		return fmt.Errorf("%w: both left and right targets are required", ErrInvalidConfiguration)
	}
	c.left.target = left
	c.right.target = right
	c.left.resetCarry()
	c.right.resetCarry()
	c.stopRequested = false
	c.touchedSinceStop = false
	return nil
}

// Bound reports whether both targets are attached.
func (c *Controller) Bound() bool {
	return c.left.bound() && c.right.bound()
}

// Detach stops every driver and unbinds both targets. Later gesture calls
// are accepted but move nothing.
func (c *Controller) Detach() {
	c.StopAnimation()
	c.fling.ForceStop()
	c.anim.Cancel()
	c.transition(Idle)
	c.left.target = nil
	c.right.target = nil
}

// State returns the live driver.
func (c *Controller) State() DriverState {
	return c.state
}

// Epoch returns the generation counter, bumped on every driver change.
func (c *Controller) Epoch() uint64 {
	return c.epoch
}

// IsAnimating reports whether idle animation is running or about to launch.
func (c *Controller) IsAnimating() bool {
	return c.state == AnimatingIdle || c.launchPending
}

// StopRequested reports whether an explicit stop is in force.
func (c *Controller) StopRequested() bool {
	return c.stopRequested
}

// FlingDuration returns the total duration of the last armed fling.
func (c *Controller) FlingDuration() time.Duration {
	return c.fling.Duration()
}

// AnimationVelocity returns the idle drift speed in px per minute.
func (c *Controller) AnimationVelocity() float64 {
	return c.opts.AnimationVelocity
}

// AnimationCycle returns the duration of one idle ramp.
func (c *Controller) AnimationCycle() time.Duration {
	return c.opts.AnimationCycle
}

// SetLeftScrollFactor changes the left multiplier for drags and flings.
func (c *Controller) SetLeftScrollFactor(f float64) error {
	return setFactor(&c.opts.LeftScrollFactor, "left scroll factor", f)
}

// SetRightScrollFactor changes the right multiplier for drags and flings.
func (c *Controller) SetRightScrollFactor(f float64) error {
	return setFactor(&c.opts.RightScrollFactor, "right scroll factor", f)
}

// SetLeftAnimationFactor changes the left multiplier for idle animation.
func (c *Controller) SetLeftAnimationFactor(f float64) error {
	return setFactor(&c.opts.LeftAnimationFactor, "left animation factor", f)
}

// SetRightAnimationFactor changes the right multiplier for idle animation.
func (c *Controller) SetRightAnimationFactor(f float64) error {
	return setFactor(&c.opts.RightAnimationFactor, "right animation factor", f)
}

func setFactor(dst *float64, name string, f float64) error {
	if !finite(f) {
		return fmt.Errorf("%w: %s must be finite, got %g", ErrInvalidConfiguration, name, f)
	}
	*dst = f
	return nil
}

// SetAnimationVelocity sets the idle drift speed in px per minute. It
// applies from the next ramp.
func (c *Controller) SetAnimationVelocity(pxPerMinute float64) error {
	if !finite(pxPerMinute) || pxPerMinute < 0 {
		return fmt.Errorf("%w: animation velocity must be finite and not negative, got %g", ErrInvalidConfiguration, pxPerMinute)
	}
	c.opts.AnimationVelocity = pxPerMinute
	c.anim.Configure(c.opts.CycleDistance(), c.opts.AnimationCycle)
	return nil
}

// SetAnimationCycle sets the duration of one idle ramp. It applies from
// the next ramp.
func (c *Controller) SetAnimationCycle(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("%w: animation cycle must be positive, got %s", ErrInvalidConfiguration, d)
	}
	c.opts.AnimationCycle = d
	c.anim.Configure(c.opts.CycleDistance(), c.opts.AnimationCycle)
	return nil
}

// SetInterpolator changes the idle ramp shape. Nil means Linear.
func (c *Controller) SetInterpolator(fn Interpolator) {
	c.anim.SetInterpolator(fn)
}

// OnTouchDown interrupts every driver and arms user scrolling.
func (c *Controller) OnTouchDown() {
	c.fling.ForceStop()
	c.anim.Cancel()
	c.transition(UserScrolling)
	c.gesture = gestureNone
	c.touchedSinceStop = true
}

// OnScrollDelta applies a drag of dy px to both targets immediately. A
// non-finite dy is ignored.
func (c *Controller) OnScrollDelta(dy float64) {
	if !finite(dy) {
		return
	}
	if c.state != UserScrolling {
		c.OnTouchDown()
	}
	c.gesture = gestureScroll
	c.apply(dy, c.opts.LeftScrollFactor, c.opts.RightScrollFactor)
}

// OnFlingReleased hands the gesture over to the fling integrator. The
// velocity is in px/s in scroll direction (positive advances the lists).
// NaN ends the fling at once; infinite speeds are clamped.
func (c *Controller) OnFlingReleased(velocity float64) {
	c.anim.Cancel()
	c.transition(Flinging)
	c.gesture = gestureFling

	now := c.sched.Now()
	c.lastFlingY = c.right.position()
	if !c.fling.Arm(velocity, c.lastFlingY, now) {
		c.finishFling()
		return
	}
	c.schedule(jobFlingTick, 0)
}

// OnSingleTapUp forwards the paired down and up events to the target
// under the tap and schedules idle animation to resume.
func (c *Controller) OnSingleTapUp(down *TouchEvent, up TouchEvent) {
	c.gesture = gestureTap
	c.dispatchTap(down, up)
	if c.state == UserScrolling {
		c.transition(Idle)
	}
	c.startAnimationInternal(c.opts.StartAnimationDelay)
}

// OnTouchUp ends the gesture. Unless a fling took over, idle animation is
// scheduled to resume.
func (c *Controller) OnTouchUp() {
	c.release()
}

// OnTouchCancel behaves like OnTouchUp.
func (c *Controller) OnTouchCancel() {
	c.release()
}

// StartAnimation schedules idle animation after delay. A stop requested
// with StopAnimation stays in force until a touch-down has happened since;
// use Resume to override it unconditionally.
func (c *Controller) StartAnimation(delay time.Duration) error {
	if !c.Bound() {
		return ErrNotBound
	}
	if c.stopRequested && !c.touchedSinceStop {
		return nil
	}
	return c.Resume(delay)
}

// Resume clears any stop request and schedules idle animation after delay.
func (c *Controller) Resume(delay time.Duration) error {
	if delay < 0 {
		return fmt.Errorf("%w: animation delay must not be negative, got %s", ErrInvalidConfiguration, delay)
	}
	if !c.Bound() {
		return ErrNotBound
	}
	c.stopRequested = false
	c.startAnimationInternal(delay)
	return nil
}

// StopAnimation cancels idle animation, launched or pending, and keeps it
// from resuming on its own.
func (c *Controller) StopAnimation() {
	c.stopRequested = true
	c.touchedSinceStop = false
	if c.state == AnimatingIdle || c.launchPending {
		c.anim.Cancel()
		c.transition(Idle)
	}
}

func (c *Controller) release() {
	gesture := c.gesture
	c.gesture = gestureNone
	if c.state == Flinging {
		return
	}
	if c.state == UserScrolling {
		c.transition(Idle)
	}
	delay := c.opts.StartAnimationDelay
	if gesture == gestureScroll {
		delay = c.opts.ScrollResumeDelay
	}
	c.startAnimationInternal(delay)
}

func (c *Controller) startAnimationInternal(delay time.Duration) {
	if c.stopRequested || !c.Bound() {
		return
	}
	if c.state != Idle || c.launchPending {
		return
	}
	c.schedule(jobLaunchAnimation, delay)
	c.launchPending = true
}

func (c *Controller) dispatchTap(down *TouchEvent, up TouchEvent) {
	if down == nil {
		return
	}
	left, ok := c.left.target.(TouchReceiver)
	if !ok {
		return
	}
	d := *down
	d.Action = TouchDown
	up.Action = TouchUp

	width := float64(left.Width())
	if d.X <= width {
		left.DispatchTouch(d)
		left.DispatchTouch(up)
		return
	}
	right, ok := c.right.target.(TouchReceiver)
	if !ok {
		return
	}
	right.DispatchTouch(d.Offset(-width, 0))
	right.DispatchTouch(up.Offset(-width, 0))
}

// transition revokes the outstanding callback, bumps the epoch and enters to.
func (c *Controller) transition(to DriverState) {
	c.cancelPending()
	c.epoch++
	if c.state != to {
		c.log.Debug("driver transition", "from", c.state, "to", to, "epoch", c.epoch)
	}
	c.state = to
}

func (c *Controller) cancelPending() {
	if c.hasPending {
		c.sched.Cancel(c.pending)
		c.hasPending = false
	}
	c.launchPending = false
}

func (c *Controller) schedule(kind jobKind, delay time.Duration) {
	j := job{kind: kind, epoch: c.epoch}
	run := func() { c.run(j) }
	if kind == jobLaunchAnimation {
		c.pending = c.sched.PostDelayed(delay, run)
	} else {
		c.pending = c.sched.PostFrame(run)
	}
	c.hasPending = true
}

func (c *Controller) run(j job) {
	if j.epoch != c.epoch {
		return
	}
	c.hasPending = false
	switch j.kind {
	case jobFlingTick:
		c.flingTick()
	case jobLaunchAnimation:
		c.launchAnimation()
	case jobAnimationTick:
		c.animationTick()
	}
}

func (c *Controller) flingTick() {
	now := c.sched.Now()
	y := c.fling.Sample(now)
	if d := y - c.lastFlingY; d != 0 {
		c.apply(float64(d), c.opts.LeftScrollFactor, c.opts.RightScrollFactor)
	}
	c.lastFlingY = y
	if c.fling.HasMore(now) {
		c.schedule(jobFlingTick, 0)
		return
	}
	c.finishFling()
}

func (c *Controller) finishFling() {
	c.fling.ForceStop()
	c.transition(Idle)
	c.startAnimationInternal(c.opts.StartAnimationDelay)
}

func (c *Controller) launchAnimation() {
	c.launchPending = false
	if !c.Bound() {
		return
	}
	c.transition(AnimatingIdle)
	c.anim.Start(c.sched.Now())
	c.schedule(jobAnimationTick, 0)
}

func (c *Controller) animationTick() {
	if d := c.anim.Tick(c.sched.Now()); d != 0 {
		c.apply(float64(d), c.opts.LeftAnimationFactor, c.opts.RightAnimationFactor)
	}
	c.schedule(jobAnimationTick, 0)
}

// apply is the only place targets are mutated.
func (c *Controller) apply(delta, leftFactor, rightFactor float64) {
	c.right.scrollBy(delta, rightFactor)
	c.left.scrollBy(delta, leftFactor)
}
