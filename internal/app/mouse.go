package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/twinscroll/internal/gesture"
)

// wheelRows is how far one wheel notch drags the lists, in rows.
const wheelRows = 2

// handleMouse feeds left-button input to the gesture recognizer and turns
// wheel notches into short drags. Cells map to px at their center.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch msg.Button { //nolint:exhaustive // Only handling left button and wheel
	case tea.MouseButtonWheelDown, tea.MouseButtonWheelUp:
		if msg.Action != tea.MouseActionPress || m.Recognizer.Pressed() {
			return
		}
		step := float64(wheelRows * m.rowHeight)
		if msg.Button == tea.MouseButtonWheelUp {
			step = -step
		}
		m.Controller.OnTouchDown()
		m.Controller.OnScrollDelta(step)
		m.Controller.OnTouchUp()
		return
	}

	ev, ok := m.pointerEvent(msg)
	if !ok {
		return
	}
	if ev.Action == gesture.Press {
		onLeft := msg.X < m.listLayout().LeftCols
		m.Left.SetFocused(onLeft)
		m.Right.SetFocused(!onLeft)
	}
	m.Recognizer.Handle(ev)
}

func (m *Model) pointerEvent(msg tea.MouseMsg) (gesture.PointerEvent, bool) {
	ev := gesture.PointerEvent{
		X:    float64(msg.X*m.colWidth() + m.colWidth()/2),
		Y:    float64(msg.Y*m.rowHeight + m.rowHeight/2),
		Time: m.now(),
	}

	rows := m.listLayout().Rows
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || msg.Y >= rows {
			return ev, false
		}
		ev.Action = gesture.Press
	case tea.MouseActionMotion:
		if !m.Recognizer.Pressed() {
			return ev, false
		}
		ev.Action = gesture.Motion
	case tea.MouseActionRelease:
		if !m.Recognizer.Pressed() {
			return ev, false
		}
		ev.Action = gesture.Release
	default:
		return ev, false
	}
	return ev, true
}
