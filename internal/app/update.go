package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/twinscroll/internal/frame"
)

// Update handles messages and returns updated model and commands. Every
// path returns the scheduler's queued timers so callbacks posted while
// handling msg reach the event loop.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.handleWindowSize(msg)

	case frame.FireMsg:
		m.Scheduler.Fire(msg)

	case tea.KeyMsg:
		cmd = m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
	}

	m.collectClick()
	return m, tea.Batch(cmd, m.Scheduler.Flush())
}

// collectClick surfaces the item picked by the last tap, if any.
func (m *Model) collectClick() {
	if c, ok := m.Left.TakeClick(); ok {
		m.LastClick = "left: " + c.Label
		m.log.Debug("item clicked", "side", "left", "index", c.Index, "label", c.Label)
	}
	if c, ok := m.Right.TakeClick(); ok {
		m.LastClick = "right: " + c.Label
		m.log.Debug("item clicked", "side", "right", "index", c.Index, "label", c.Label)
	}
}
