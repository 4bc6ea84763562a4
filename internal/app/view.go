package app

import (
	"strings"

	"github.com/llehouerou/twinscroll/internal/ui/overlay"
	"github.com/llehouerou/twinscroll/internal/ui/render"
	"github.com/llehouerou/twinscroll/internal/ui/styles"
)

const appTitle = "twinscroll"

// View renders the application UI.
func (m Model) View() string {
	if m.Width <= 0 || m.Height <= 0 {
		return ""
	}

	view := joinColumnsView(m.Left.View(), m.Right.View())
	if view != "" {
		view += "\n"
	}
	view += m.renderStatusBar()

	if m.ShowHelp {
		view = overlay.Compose(view, overlay.Center(m.renderHelp(), m.Width, m.Height), m.Width, m.Height)
	}
	return view
}

func (m Model) renderStatusBar() string {
	t := styles.T()

	left := styles.ApplyBoldGradient(appTitle, t.Primary, t.Secondary) + " "
	switch {
	case m.ErrorMsg != "":
		left += t.S().Error.Render(m.ErrorMsg)
	case m.Controller.IsAnimating():
		left += t.S().Success.Render(m.Controller.State().String())
	case m.Controller.StopRequested():
		left += t.S().Warning.Render("stopped")
	default:
		left += t.S().Muted.Render(m.Controller.State().String())
	}
	if m.LastClick != "" && m.ErrorMsg == "" {
		left += t.S().Subtle.Render(" · ") + t.S().Base.Render(m.LastClick)
	}

	right := t.S().Muted.Render(statusVelocity(m.Controller.AnimationVelocity(), m.Controller.AnimationCycle()))
	return render.Row(left, right, m.Width)
}

func (m Model) renderHelp() string {
	h := m.help
	h.ShowAll = true
	return styles.PanelStyle(true).Render(h.View(m.keys.Help()))
}

// joinColumnsView joins two multi-line strings side by side.
func joinColumnsView(left, right string) string {
	leftLines := splitLines(left)
	rightLines := splitLines(right)

	lineCount := max(len(leftLines), len(rightLines))

	var sb strings.Builder
	for i := range lineCount {
		if i < len(leftLines) {
			sb.WriteString(leftLines[i])
		}
		if i < len(rightLines) {
			sb.WriteString(rightLines[i])
		}
		if i < lineCount-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
