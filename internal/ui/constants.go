// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for consistent sizing across UI components.
const (
	// CellAspect is how many times taller a terminal cell is than it is wide.
	// Column widths in px are RowHeight / CellAspect.
	CellAspect = 2

	// StatusBarHeight is the number of rows reserved below the lists.
	StatusBarHeight = 1

	// MinListCols is the narrowest a list is allowed to get.
	MinListCols = 4
)

// ColWidth returns the width in px of one terminal column for the given
// row height.
func ColWidth(rowHeight int) int {
	return max(rowHeight/CellAspect, 1)
}
