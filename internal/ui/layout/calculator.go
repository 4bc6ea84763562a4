// Package layout provides pure functions for UI dimension calculations.
package layout

import "github.com/llehouerou/twinscroll/internal/ui"

// Lists holds the cell dimensions of the two lists.
type Lists struct {
	LeftCols  int
	RightCols int
	Rows      int
}

// SplitLists divides a window between the two lists. The left list gets
// leftPercent of the width, but neither side drops below ui.MinListCols
// unless the window is too narrow for both, in which case it is halved.
// The status bar is taken off the bottom.
func SplitLists(width, height, leftPercent int) Lists {
	rows := max(height-ui.StatusBarHeight, 0)
	width = max(width, 0)
	if width < 2*ui.MinListCols {
		half := width / 2
		return Lists{LeftCols: half, RightCols: width - half, Rows: rows}
	}
	left := width * leftPercent / 100
	left = min(max(left, ui.MinListCols), width-ui.MinListCols)
	return Lists{LeftCols: left, RightCols: width - left, Rows: rows}
}
