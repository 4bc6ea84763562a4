package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/twinscroll/internal/config"
	"github.com/llehouerou/twinscroll/internal/syncscroll"
)

func TestRunScript_DefaultConfig(t *testing.T) {
	got, err := runScript(&config.Config{}, scriptOptions{Idle: 2 * time.Second})
	require.NoError(t, err)

	get := func(name string) phase {
		t.Helper()
		p, ok := got.Phase(name)
		require.True(t, ok, "missing phase %q", name)
		return p
	}

	start := get("start")
	assert.Zero(t, start.Left)
	assert.Zero(t, start.Right)

	drag := get("after drag")
	assert.Equal(t, 280, drag.Left, "200 px drag at 1.4")
	assert.Equal(t, 160, drag.Right, "200 px drag at 0.8")
	assert.Equal(t, syncscroll.Idle, drag.State, "slow release does not fling")

	released := get("fling released")
	assert.Equal(t, syncscroll.Flinging, released.State)
	assert.Equal(t, 140, released.Left)
	assert.Equal(t, 80, released.Right)

	// 2500 px/s against 2000 px/s² covers 1562.5 px.
	settled := get("fling settled")
	assert.NotEqual(t, syncscroll.Flinging, settled.State)
	assert.InDelta(t, 1562.5*1.4, float64(settled.Left), 3)
	assert.InDelta(t, 1562.5*0.8, float64(settled.Right), 3)

	drift := get("after idle drift")
	assert.Positive(t, drift.Left)
	assert.Positive(t, drift.Right)

	require.NotNil(t, got.Tap)
	assert.Contains(t, config.DefaultRightItems, got.Tap.Label)

	stopped := get("stopped")
	assert.Zero(t, stopped.Left)
	assert.Zero(t, stopped.Right)

	resumed := get("resumed")
	assert.Equal(t, syncscroll.AnimatingIdle, resumed.State)
	assert.Positive(t, resumed.Left)
	assert.Positive(t, resumed.Right)

	assert.Equal(t, syncscroll.Idle, got.Final)
}

func TestRunScript_InvalidConfig(t *testing.T) {
	cfg := &config.Config{Animation: config.AnimationConfig{CycleDurationMs: -1}}
	_, err := runScript(cfg, scriptOptions{Idle: time.Second})
	assert.ErrorIs(t, err, syncscroll.ErrInvalidConfiguration)
}

func TestRootCmd(t *testing.T) {
	dir := t.TempDir()
	valid := filepath.Join(dir, "valid.toml")
	require.NoError(t, os.WriteFile(valid, []byte("[animation]\nvelocity = 3000\n"), 0o600))
	invalid := filepath.Join(dir, "invalid.toml")
	require.NoError(t, os.WriteFile(invalid, []byte("[scroll]\nleft_factor = nan\n"), 0o600))

	tests := []struct {
		name     string
		args     []string
		wantErr  bool
		contains []string
	}{
		{
			name:     "runs script",
			args:     []string{"--config", valid, "--idle", "1s"},
			contains: []string{"after drag", "fling settled", "tap picked right item", "resumed"},
		},
		{
			name:     "verbose logs transitions",
			args:     []string{"--config", valid, "--idle", "1s", "-v"},
			contains: []string{"driver transition"},
		},
		{name: "rejects non-finite config", args: []string{"--config", invalid}, wantErr: true},
		{name: "rejects positional args", args: []string{"extra"}, wantErr: true},
		{name: "rejects bad duration", args: []string{"--idle", "soon"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cmd := newRootCmd()
			cmd.SetArgs(tt.args)
			cmd.SetOut(&buf)
			cmd.SetErr(&buf)

			err := cmd.Execute()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}
