package app

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/twinscroll/internal/app/handler"
	"github.com/llehouerou/twinscroll/internal/errmsg"
	"github.com/llehouerou/twinscroll/internal/keymap"
	"github.com/llehouerou/twinscroll/internal/syncscroll"
)

const (
	// keyScrollRows is how far one scroll key drags the lists, in rows.
	keyScrollRows = 3
	// keyFlingVelocity is the px/s a page key flings with.
	keyFlingVelocity = 3000
	// velocityStep scales the drift speed per +/- press.
	velocityStep = 1.25
)

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	action := m.keys.Resolve(msg.String())
	if action == "" {
		return nil
	}
	m.log.Debug("key", "key", msg.String(), "action", action)

	_, cmd := handler.Chain(action,
		m.handleQuitKeys,
		m.handleHelpKeys,
		m.handleAnimationKeys,
		m.handleScrollKeys,
	)
	return cmd
}

func (m *Model) handleQuitKeys(action keymap.Action) handler.Result {
	if action != keymap.ActionQuit {
		return handler.NotHandled
	}
	m.Close()
	return handler.Handled(tea.Quit)
}

func (m *Model) handleHelpKeys(action keymap.Action) handler.Result {
	if action != keymap.ActionHelp {
		return handler.NotHandled
	}
	m.ShowHelp = !m.ShowHelp
	return handler.HandledNoCmd
}

func (m *Model) handleAnimationKeys(action keymap.Action) handler.Result {
	switch action { //nolint:exhaustive // Only handling animation actions
	case keymap.ActionToggleAnimation:
		m.ErrorMsg = ""
		if m.Controller.IsAnimating() {
			m.Controller.StopAnimation()
			return handler.HandledNoCmd
		}
		if err := m.Controller.Resume(0); err != nil {
			m.ErrorMsg = errmsg.Format(errmsg.OpStartAnimation, err)
		}
		return handler.HandledNoCmd

	case keymap.ActionFaster, keymap.ActionSlower:
		v := m.Controller.AnimationVelocity()
		if action == keymap.ActionFaster {
			v *= velocityStep
		} else {
			v /= velocityStep
		}
		m.setVelocity(v)
		return handler.HandledNoCmd

	case keymap.ActionEasing:
		m.easeInOut = !m.easeInOut
		if m.easeInOut {
			m.Controller.SetInterpolator(syncscroll.EaseInOut)
		} else {
			m.Controller.SetInterpolator(syncscroll.Linear)
		}
		return handler.HandledNoCmd
	}
	return handler.NotHandled
}

func (m *Model) setVelocity(v float64) {
	if err := m.Controller.SetAnimationVelocity(v); err != nil {
		m.ErrorMsg = errmsg.FormatWith(errmsg.OpSetVelocity, humanize.Ftoa(v), err)
		return
	}
	m.ErrorMsg = ""
	m.log.Info("animation velocity changed", "px_per_minute", v)
}

// handleScrollKeys plays a synthetic gesture through the controller, so
// keyboard input follows the same paths as a pointer.
func (m *Model) handleScrollKeys(action keymap.Action) handler.Result {
	step := float64(keyScrollRows * m.rowHeight)

	switch action { //nolint:exhaustive // Only handling scroll actions
	case keymap.ActionScrollDown, keymap.ActionScrollUp:
		if action == keymap.ActionScrollUp {
			step = -step
		}
		m.Controller.OnTouchDown()
		m.Controller.OnScrollDelta(step)
		m.Controller.OnTouchUp()
		return handler.HandledNoCmd

	case keymap.ActionPageDown, keymap.ActionPageUp:
		v := float64(keyFlingVelocity)
		if action == keymap.ActionPageUp {
			v = -v
		}
		m.Controller.OnTouchDown()
		m.Controller.OnFlingReleased(v)
		m.Controller.OnTouchUp()
		return handler.HandledNoCmd
	}
	return handler.NotHandled
}

// statusVelocity renders the drift speed for the status bar.
func statusVelocity(pxPerMinute float64, cycle time.Duration) string {
	return fmt.Sprintf("%s px/min · %s cycle", humanize.Comma(int64(pxPerMinute+0.5)), cycle)
}
