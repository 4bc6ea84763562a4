package app

import (
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/twinscroll/internal/config"
	"github.com/llehouerou/twinscroll/internal/syncscroll"
	"github.com/llehouerou/twinscroll/internal/ui/testutil"
)

var testStart = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

type testClock struct{ t time.Time }

func newTestClock() *testClock { return &testClock{t: testStart} }

func (c *testClock) now() time.Time          { return c.t }
func (c *testClock) advance(d time.Duration) { c.t = c.t.Add(d) }
func (c *testClock) set(ms int)              { c.t = testStart.Add(time.Duration(ms) * time.Millisecond) }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func mouse(a tea.MouseAction, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: a, Button: tea.MouseButtonLeft}
}

// newTestModel returns a laid out 80x21 model: two 40-column lists of 20
// rows, 16 px per row and 8 px per column.
func newTestModel(t *testing.T) (Model, *testClock) {
	t.Helper()
	m, err := New(&config.Config{}, discardLogger())
	require.NoError(t, err)

	clock := newTestClock()
	m.now = clock.now
	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 21})
	return m, clock
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model
}

func TestNew_InvalidConfig(t *testing.T) {
	v := -1.0
	cfg := &config.Config{Animation: config.AnimationConfig{Velocity: v}}

	_, err := New(cfg, discardLogger())
	assert.ErrorIs(t, err, syncscroll.ErrInvalidConfiguration)
}

func TestWindowSize_SplitsLists(t *testing.T) {
	tests := []struct {
		name      string
		width     int
		percent   int
		wantLeft  int
		wantRight int
	}{
		{"even split", 80, 50, 40, 40},
		{"configured split", 100, 30, 30, 70},
		{"left clamped to minimum", 100, 1, 4, 96},
		{"right clamped to minimum", 100, 99, 96, 4},
		{"too narrow for minimums", 6, 50, 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(&config.Config{Lists: config.ListsConfig{LeftWidthPercent: tt.percent}}, discardLogger())
			require.NoError(t, err)
			m = update(t, m, tea.WindowSizeMsg{Width: tt.width, Height: 10})

			assert.Equal(t, tt.wantLeft, m.Left.Cols())
			assert.Equal(t, tt.wantRight, m.Right.Cols())
			assert.Equal(t, 9, m.Left.Rows())
			assert.Equal(t, 9, m.Right.Rows())
		})
	}
}

func TestView_Layout(t *testing.T) {
	m, _ := newTestModel(t)

	out := testutil.StripANSI(m.View())
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 21)

	assert.Contains(t, lines[0], "Aurora")
	assert.Contains(t, lines[0], "01")
	status := lines[20]
	assert.Contains(t, status, "twinscroll")
	assert.Contains(t, status, "1,500 px/min")
	assert.Contains(t, status, "idle")
}

func TestView_EmptyBeforeSize(t *testing.T) {
	m, err := New(&config.Config{}, discardLogger())
	require.NoError(t, err)
	assert.Empty(t, m.View())
}

func TestHandleQuitKeys(t *testing.T) {
	tests := []struct {
		key      string
		wantQuit bool
	}{
		{"q", true},
		{"x", false},
		{"Q", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m, _ := newTestModel(t)
			_, cmd := m.Update(keyMsg(tt.key))

			if !tt.wantQuit {
				assert.Nil(t, cmd)
				assert.True(t, m.Controller.Bound())
				return
			}
			require.NotNil(t, cmd)
			assert.False(t, m.Controller.Bound(), "quitting detaches the lists")
		})
	}
}

func TestScrollKeys_DragBothLists(t *testing.T) {
	m, _ := newTestModel(t)
	l0, r0 := m.Left.VerticalScrollPosition(), m.Right.VerticalScrollPosition()

	m = update(t, m, keyMsg("j"))
	// 3 rows of 16 px, scaled by 1.4 and 0.8.
	assert.Equal(t, l0+67, m.Left.VerticalScrollPosition())
	assert.Equal(t, r0+38, m.Right.VerticalScrollPosition())

	m = update(t, m, keyMsg("k"))
	assert.Equal(t, l0, m.Left.VerticalScrollPosition())
	assert.Equal(t, r0, m.Right.VerticalScrollPosition())
	assert.Equal(t, syncscroll.Idle, m.Controller.State())
}

func TestPageKeys_Fling(t *testing.T) {
	m, _ := newTestModel(t)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	m = next.(Model)

	assert.Equal(t, syncscroll.Flinging, m.Controller.State())
	assert.NotNil(t, cmd, "fling frames are scheduled")
	assert.Equal(t, 1, m.Scheduler.Pending())
}

func TestToggleAnimation(t *testing.T) {
	m, _ := newTestModel(t)
	m.Init()
	require.True(t, m.Controller.IsAnimating(), "autostart arms the drift")

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	assert.False(t, m.Controller.IsAnimating())
	assert.True(t, m.Controller.StopRequested())
	assert.Contains(t, testutil.StripANSI(m.View()), "stopped")

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	assert.True(t, m.Controller.IsAnimating())
	assert.False(t, m.Controller.StopRequested())
}

func TestInit_NoAutostart(t *testing.T) {
	off := false
	m, err := New(&config.Config{Animation: config.AnimationConfig{Autostart: &off}}, discardLogger())
	require.NoError(t, err)

	assert.Nil(t, m.Init())
	assert.False(t, m.Controller.IsAnimating())
}

func TestSpeedKeys(t *testing.T) {
	tests := []struct {
		key  string
		want float64
	}{
		{"+", 1875},
		{"=", 1875},
		{"-", 1200},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m, _ := newTestModel(t)
			m = update(t, m, keyMsg(tt.key))
			assert.InDelta(t, tt.want, m.Controller.AnimationVelocity(), 1e-9)
			assert.Empty(t, m.ErrorMsg)
		})
	}
}

func TestEasingKey(t *testing.T) {
	m, _ := newTestModel(t)

	m = update(t, m, keyMsg("e"))
	assert.True(t, m.easeInOut)
	m = update(t, m, keyMsg("e"))
	assert.False(t, m.easeInOut)
}

func TestHelpKey(t *testing.T) {
	m, _ := newTestModel(t)

	m = update(t, m, keyMsg("?"))
	require.True(t, m.ShowHelp)
	out := testutil.StripANSI(m.View())
	assert.True(t, testutil.ContainsLine(out, "fling down"))
	assert.Len(t, strings.Split(out, "\n"), 21)

	m = update(t, m, keyMsg("?"))
	assert.False(t, m.ShowHelp)
}

func TestMouse_TapSelectsItemUnderPointer(t *testing.T) {
	tests := []struct {
		name      string
		x, y      int
		wantClick string
	}{
		{"left list", 5, 0, "left: Aurora"},
		{"right list", 50, 1, "right: 01"},
		{"right list second item", 60, 4, "right: 02"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, clock := newTestModel(t)

			m = update(t, m, mouse(tea.MouseActionPress, tt.x, tt.y))
			clock.advance(80 * time.Millisecond)
			m = update(t, m, mouse(tea.MouseActionRelease, tt.x, tt.y))

			assert.Equal(t, tt.wantClick, m.LastClick)
			assert.False(t, m.Router.HasPendingDown())
			assert.Equal(t, syncscroll.Idle, m.Controller.State())
		})
	}
}

func TestMouse_PressFocusesSide(t *testing.T) {
	m, _ := newTestModel(t)

	m = update(t, m, mouse(tea.MouseActionPress, 70, 3))
	assert.True(t, m.Right.IsFocused())
	assert.False(t, m.Left.IsFocused())
}

func TestMouse_SlowDragScrolls(t *testing.T) {
	m, clock := newTestModel(t)
	l0, r0 := m.Left.VerticalScrollPosition(), m.Right.VerticalScrollPosition()

	m = update(t, m, mouse(tea.MouseActionPress, 10, 10))
	clock.set(500)
	m = update(t, m, mouse(tea.MouseActionMotion, 10, 5))
	assert.Equal(t, syncscroll.UserScrolling, m.Controller.State())

	clock.set(1000)
	m = update(t, m, mouse(tea.MouseActionRelease, 10, 5))

	// Dragging up by 5 rows advances the lists by 80 px.
	assert.Equal(t, l0+112, m.Left.VerticalScrollPosition())
	assert.Equal(t, r0+64, m.Right.VerticalScrollPosition())
	assert.Equal(t, syncscroll.Idle, m.Controller.State())
	assert.Empty(t, m.LastClick)
}

func TestMouse_FastDragFlings(t *testing.T) {
	m, clock := newTestModel(t)

	m = update(t, m, mouse(tea.MouseActionPress, 10, 15))
	clock.set(50)
	m = update(t, m, mouse(tea.MouseActionMotion, 10, 5))
	clock.set(60)
	m = update(t, m, mouse(tea.MouseActionRelease, 10, 5))

	assert.Equal(t, syncscroll.Flinging, m.Controller.State())
}

func TestMouse_IgnoresStatusBarAndStrayEvents(t *testing.T) {
	m, _ := newTestModel(t)
	l0 := m.Left.VerticalScrollPosition()

	m = update(t, m, mouse(tea.MouseActionPress, 10, 20))
	assert.False(t, m.Recognizer.Pressed())

	m = update(t, m, mouse(tea.MouseActionMotion, 10, 2))
	m = update(t, m, mouse(tea.MouseActionRelease, 10, 2))
	assert.Equal(t, l0, m.Left.VerticalScrollPosition())
	assert.Empty(t, m.LastClick)
}

func TestMouse_Wheel(t *testing.T) {
	m, _ := newTestModel(t)
	r0 := m.Right.VerticalScrollPosition()

	m = update(t, m, tea.MouseMsg{X: 50, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	assert.Equal(t, r0+26, m.Right.VerticalScrollPosition(), "2 rows of 16 px at 0.8")

	m = update(t, m, tea.MouseMsg{X: 50, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	assert.Equal(t, r0, m.Right.VerticalScrollPosition())
}

func TestJoinColumnsView(t *testing.T) {
	tests := []struct {
		name        string
		left, right string
		want        string
	}{
		{"equal heights", "a\nb", "1\n2", "a1\nb2"},
		{"left taller", "a\nb\nc", "1", "a1\nb\nc"},
		{"empty right", "a", "", "a"},
		{"both empty", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, joinColumnsView(tt.left, tt.right))
		})
	}
}

func TestNew_StartPositions(t *testing.T) {
	cfg := &config.Config{Lists: config.ListsConfig{LeftStart: 2, RightStart: -1}}
	m, err := New(cfg, discardLogger())
	require.NoError(t, err)
	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 21})

	first, ok := m.Left.FirstVisibleIndex()
	require.True(t, ok)
	assert.Equal(t, config.DefaultLeftItems[2], m.Left.Label(first))
	first, _ = m.Right.FirstVisibleIndex()
	assert.Equal(t, config.DefaultRightItems[len(config.DefaultRightItems)-1], m.Right.Label(first))
}
