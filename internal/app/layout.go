package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/twinscroll/internal/ui"
	"github.com/llehouerou/twinscroll/internal/ui/layout"
)

func (m *Model) handleWindowSize(msg tea.WindowSizeMsg) {
	m.Width, m.Height = msg.Width, msg.Height
	dims := m.listLayout()
	m.Left.SetSize(dims.LeftCols, dims.Rows)
	m.Right.SetSize(dims.RightCols, dims.Rows)
	m.help.Width = msg.Width
}

func (m Model) listLayout() layout.Lists {
	return layout.SplitLists(m.Width, m.Height, m.leftPercent)
}

// colWidth returns how many px one terminal column covers.
func (m Model) colWidth() int {
	return ui.ColWidth(m.rowHeight)
}
