package frame

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTea_FireRunsLiveCallbacksOnce(t *testing.T) {
	s := NewTea(time.Millisecond)
	runs := 0
	h := s.PostFrame(func() { runs++ })

	assert.True(t, s.Fire(FireMsg{ID: h}))
	assert.False(t, s.Fire(FireMsg{ID: h}))
	assert.Equal(t, 1, runs)
}

func TestTea_CancelledCallbacksAreSkipped(t *testing.T) {
	s := NewTea(time.Millisecond)
	ran := false
	h := s.PostDelayed(time.Hour, func() { ran = true })
	s.Cancel(h)

	assert.False(t, s.Fire(FireMsg{ID: h}))
	assert.False(t, ran)
	assert.Zero(t, s.Pending())
}

func TestTea_FlushDeliversFireMsg(t *testing.T) {
	s := NewTea(time.Millisecond)
	assert.Nil(t, s.Flush())

	h := s.PostDelayed(0, func() {})
	cmd := s.Flush()
	require.NotNil(t, cmd)
	assert.Nil(t, s.Flush(), "queue is drained")

	msg := cmd()
	// A single command may come back wrapped in a batch.
	if batch, ok := msg.(tea.BatchMsg); ok {
		require.Len(t, batch, 1)
		msg = batch[0]()
	}
	assert.Equal(t, FireMsg{ID: h}, msg)
}
