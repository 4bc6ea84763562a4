// Package scrolllist provides an endless, pixel-addressed list of tiles
// that can be driven by a syncscroll.Controller.
package scrolllist

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/twinscroll/internal/syncscroll"
	"github.com/llehouerou/twinscroll/internal/ui"
	"github.com/llehouerou/twinscroll/internal/ui/render"
	"github.com/llehouerou/twinscroll/internal/ui/styles"
)

// VirtualCount is the number of adapter positions the list pretends to
// have. Item i shows label i mod len(items). It keeps px positions inside
// a 32-bit int for item heights up to 2047 px.
const VirtualCount = 1 << 20

// Options configures a list.
type Options struct {
	Items      []string
	ItemHeight int // px
	RowHeight  int // px per terminal row
	TileFrom   lipgloss.Color
	TileTo     lipgloss.Color
}

// Click records an item picked by a forwarded tap.
type Click struct {
	Index int    // adapter index
	Label string // item label
}

// Model is one endless list. Positions are in px; each terminal row covers
// RowHeight px.
type Model struct {
	ui.Base
	items      []string
	palette    []lipgloss.Color
	itemHeight int
	rowHeight  int

	first int // adapter index of the first visible item
	top   int // top edge of first relative to the viewport, in (-itemHeight, 0]

	selected  int
	hasSel    bool
	downIndex int
	hasDown   bool
	click     *Click
}

var (
	_ syncscroll.Target        = (*Model)(nil)
	_ syncscroll.TouchReceiver = (*Model)(nil)
)

// New creates a list positioned so that the first item sits at the top of
// the viewport, far enough from both ends of the adapter range that it
// never runs out in practice.
func New(opts Options) *Model {
	m := &Model{
		items:      opts.Items,
		palette:    styles.TilePalette(len(opts.Items), opts.TileFrom, opts.TileTo),
		itemHeight: max(opts.ItemHeight, 1),
		rowHeight:  max(opts.RowHeight, 1),
	}
	m.first = m.startIndex()
	return m
}

func (m *Model) startIndex() int {
	n := len(m.items)
	if n == 0 {
		return 0
	}
	mid := VirtualCount / 2
	return mid - mid%n
}

// SetSelection scrolls so that item i (an index into the labels) sits at
// the top of the viewport, near the middle of the adapter range.
func (m *Model) SetSelection(i int) {
	n := len(m.items)
	if n == 0 {
		return
	}
	m.first = m.startIndex() + ((i%n)+n)%n
	m.top = 0
}

// Len returns the number of distinct items.
func (m *Model) Len() int {
	return len(m.items)
}

// ItemHeight returns the height of one item in px.
func (m *Model) ItemHeight() int {
	return m.itemHeight
}

// RowHeight returns how many px one terminal row covers.
func (m *Model) RowHeight() int {
	return m.rowHeight
}

// Label returns the label shown at adapter index i.
func (m *Model) Label(i int) string {
	n := len(m.items)
	if n == 0 {
		return ""
	}
	return m.items[((i%n)+n)%n]
}

// laidOut reports whether the list has anything on screen.
func (m *Model) laidOut() bool {
	return len(m.items) > 0 && m.Rows() > 0
}

// FirstVisibleIndex implements syncscroll.Target.
func (m *Model) FirstVisibleIndex() (int, bool) {
	if !m.laidOut() {
		return 0, false
	}
	return m.first, true
}

// TopOffsetOfFirstVisibleItem implements syncscroll.Target.
func (m *Model) TopOffsetOfFirstVisibleItem() (int, bool) {
	if !m.laidOut() {
		return 0, false
	}
	return m.top, true
}

// ScrollToOffset implements syncscroll.Target. The position is normalized
// so that the stored item is the one actually crossing the top edge.
func (m *Model) ScrollToOffset(index, top int) {
	if len(m.items) == 0 {
		return
	}
	h := m.itemHeight
	index += floorDiv(-top, h)
	top = -floorMod(-top, h)

	if index < 0 {
		index, top = 0, 0
	}
	if index >= VirtualCount {
		index, top = VirtualCount-1, 0
	}
	m.first, m.top = index, top
}

// VerticalScrollPosition implements syncscroll.Target.
func (m *Model) VerticalScrollPosition() int {
	return m.first*m.itemHeight - m.top
}

// Width implements syncscroll.TouchReceiver. The width is in px.
func (m *Model) Width() int {
	return m.Cols() * ui.ColWidth(m.rowHeight)
}

// Height returns the viewport height in px.
func (m *Model) Height() int {
	return m.Rows() * m.rowHeight
}

// ItemAt returns the adapter index under the viewport-relative y in px.
func (m *Model) ItemAt(y float64) (int, bool) {
	if !m.laidOut() || y < 0 || y >= float64(m.Height()) {
		return 0, false
	}
	offset := int(math.Floor(y)) - m.top
	return m.first + offset/m.itemHeight, true
}

// DispatchTouch implements syncscroll.TouchReceiver. A down followed by an
// up over the same item selects it.
func (m *Model) DispatchTouch(ev syncscroll.TouchEvent) {
	idx, ok := m.ItemAt(ev.Y)
	switch ev.Action {
	case syncscroll.TouchDown:
		m.downIndex, m.hasDown = idx, ok
	case syncscroll.TouchUp:
		if ok && m.hasDown && idx == m.downIndex {
			m.Select(idx)
			m.click = &Click{Index: idx, Label: m.Label(idx)}
		}
		m.hasDown = false
	}
}

// Select marks adapter index i as the selected item.
func (m *Model) Select(i int) {
	m.selected, m.hasSel = i, true
}

// Selected returns the selected adapter index.
func (m *Model) Selected() (int, bool) {
	return m.selected, m.hasSel
}

// TakeClick returns the last click and clears it.
func (m *Model) TakeClick() (Click, bool) {
	if m.click == nil {
		return Click{}, false
	}
	c := *m.click
	m.click = nil
	return c, true
}

// View renders the visible rows. A row belongs to the item under its
// vertical center; the first row of each item carries its label.
func (m *Model) View() string {
	cols, rows := m.Size()
	if cols <= 0 || rows <= 0 {
		return ""
	}
	if len(m.items) == 0 {
		t := styles.T()
		lines := make([]string, rows)
		for i := range lines {
			lines[i] = render.EmptyLine(cols)
		}
		lines[0] = t.S().Muted.Render(render.TruncateAndPad("(empty)", cols))
		return strings.Join(lines, "\n")
	}

	lines := make([]string, rows)
	prevIdx, havePrev := 0, false
	for r := range rows {
		center := float64(r*m.rowHeight + m.rowHeight/2)
		idx, _ := m.ItemAt(center)
		labelRow := !havePrev || idx != prevIdx
		lines[r] = m.renderRow(idx, labelRow, cols)
		prevIdx, havePrev = idx, true
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderRow(idx int, labelRow bool, cols int) string {
	t := styles.T()
	n := len(m.items)
	bg := m.palette[((idx%n)+n)%n]
	if !labelRow {
		return lipgloss.NewStyle().Background(bg).Render(render.EmptyLine(cols))
	}

	style := t.S().Base
	marker := "  "
	if m.hasSel && m.selected == idx {
		marker = "> "
		if m.IsFocused() {
			style = t.S().Selected
		} else {
			style = t.S().Title
		}
	}
	return style.Background(bg).Render(render.TruncateAndPad(marker+m.Label(idx), cols))
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}
