package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/twinscroll/internal/config"
	"github.com/llehouerou/twinscroll/internal/frame"
	"github.com/llehouerou/twinscroll/internal/gesture"
	"github.com/llehouerou/twinscroll/internal/syncscroll"
	"github.com/llehouerou/twinscroll/internal/ui/scrolllist"
)

var clockStart = time.Unix(0, 0)

type scriptOptions struct {
	Idle   time.Duration
	Out    *log.Logger  // phase reports; nil discards them
	Logger *slog.Logger // controller transitions; nil keeps them quiet
}

// phase is how far each list moved since the previous report.
type phase struct {
	Name        string
	State       syncscroll.DriverState
	Left, Right int
}

type outcome struct {
	Phases []phase
	Tap    *scrolllist.Click
	Final  syncscroll.DriverState
}

// Phase returns the report with the given name.
func (o outcome) Phase(name string) (phase, bool) {
	for _, p := range o.Phases {
		if p.Name == name {
			return p, true
		}
	}
	return phase{}, false
}

func runScript(cfg *config.Config, so scriptOptions) (outcome, error) {
	opts, err := cfg.ScrollOptions()
	if err != nil {
		return outcome{}, fmt.Errorf("invalid scroll options: %w", err)
	}
	opts.Logger = so.Logger
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	lists, err := cfg.GetListsConfig()
	if err != nil {
		return outcome{}, fmt.Errorf("invalid list options: %w", err)
	}

	clock := frame.NewManual(clockStart, lists.FrameInterval())
	ctrl, err := syncscroll.New(clock, opts)
	if err != nil {
		return outcome{}, fmt.Errorf("create controller: %w", err)
	}

	left := scrolllist.New(scrolllist.Options{Items: lists.LeftItems, ItemHeight: lists.LeftItemHeight, RowHeight: lists.RowHeight})
	right := scrolllist.New(scrolllist.Options{Items: lists.RightItems, ItemHeight: lists.RightItemHeight, RowHeight: lists.RowHeight})
	left.SetSize(40, 30)
	right.SetSize(40, 30)
	if err := ctrl.Bind(left, right); err != nil {
		return outcome{}, fmt.Errorf("bind lists: %w", err)
	}

	router := syncscroll.NewRouter(ctrl, nil)
	defer router.Close()

	out := so.Out
	if out == nil {
		out = log.New(io.Discard, "", 0)
	}
	s := &sim{
		clock: clock,
		ctrl:  ctrl,
		rec:   gesture.New(router, cfg.GestureOptions()),
		left:  left,
		right: right,
		out:   out,
		lastL: left.VerticalScrollPosition(),
		lastR: right.VerticalScrollPosition(),
	}
	s.report("start")

	// Slow drag upward by 200 px.
	s.pointer(gesture.Press, 100, 400)
	for i := 1; i <= 10; i++ {
		s.wait(40 * time.Millisecond)
		s.pointer(gesture.Motion, 100, 400-float64(20*i))
	}
	s.wait(200 * time.Millisecond)
	s.pointer(gesture.Release, 100, 200)
	s.report("after drag")

	// Quick flick.
	s.pointer(gesture.Press, 100, 400)
	s.wait(30 * time.Millisecond)
	s.pointer(gesture.Motion, 100, 300)
	s.wait(10 * time.Millisecond)
	s.pointer(gesture.Release, 100, 300)
	s.report("fling released")
	for ctrl.State() == syncscroll.Flinging {
		s.wait(clock.FrameInterval())
	}
	s.report("fling settled")

	s.wait(so.Idle)
	s.report("after idle drift")

	// Tap the right list.
	s.pointer(gesture.Press, float64(left.Width()+20), 40)
	s.wait(50 * time.Millisecond)
	s.pointer(gesture.Release, float64(left.Width()+20), 40)
	if c, ok := right.TakeClick(); ok {
		s.tap = &c
		out.Printf("tap picked right item %q (adapter index %s)", c.Label, humanize.Comma(int64(c.Index)))
	}

	ctrl.StopAnimation()
	s.wait(so.Idle)
	s.report("stopped")

	if err := ctrl.Resume(0); err != nil {
		return s.outcome(), fmt.Errorf("resume: %w", err)
	}
	s.wait(so.Idle)
	s.report("resumed")

	ctrl.Detach()
	return s.outcome(), nil
}

type sim struct {
	clock       *frame.Manual
	ctrl        *syncscroll.Controller
	rec         *gesture.Recognizer
	left, right *scrolllist.Model
	out         *log.Logger

	lastL, lastR int
	phases       []phase
	tap          *scrolllist.Click
}

func (s *sim) wait(d time.Duration) {
	s.clock.Advance(d)
}

func (s *sim) pointer(a gesture.Action, x, y float64) {
	s.rec.Handle(gesture.PointerEvent{Action: a, X: x, Y: y, Time: s.clock.Now()})
}

func (s *sim) report(name string) {
	l, r := s.left.VerticalScrollPosition(), s.right.VerticalScrollPosition()
	p := phase{Name: name, State: s.ctrl.State(), Left: l - s.lastL, Right: r - s.lastR}
	s.phases = append(s.phases, p)
	s.lastL, s.lastR = l, r

	s.out.Printf("%-18s t=%-8s state=%-10s left %8s px  right %8s px",
		name,
		s.clock.Now().Sub(clockStart).Round(time.Millisecond),
		p.State,
		humanize.Comma(int64(p.Left)),
		humanize.Comma(int64(p.Right)),
	)
}

func (s *sim) outcome() outcome {
	return outcome{Phases: s.phases, Tap: s.tap, Final: s.ctrl.State()}
}
