package syncscroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIdleAnimator_LinearRamp(t *testing.T) {
	a := NewIdleAnimator(100, time.Second)
	a.Start(t0)

	assert.Equal(t, 0, a.Tick(t0))
	assert.Equal(t, 25, a.Tick(t0.Add(250*time.Millisecond)))
	assert.Equal(t, 25, a.Tick(t0.Add(500*time.Millisecond)))
	assert.Equal(t, 0, a.Tick(t0.Add(500*time.Millisecond)))
	assert.Equal(t, 50, a.Tick(t0.Add(time.Second)))
	assert.Equal(t, 1, a.Cycles())
}

func TestIdleAnimator_LoopsSeamlessly(t *testing.T) {
	a := NewIdleAnimator(37, time.Second)
	a.Start(t0)

	total := 0
	for ms := 16; ms <= 10_000; ms += 16 {
		total += a.Tick(t0.Add(time.Duration(ms) * time.Millisecond))
	}
	total += a.Tick(t0.Add(10 * time.Second))
	assert.Equal(t, 10*37, total)
	assert.Equal(t, 10, a.Cycles())
}

func TestIdleAnimator_CatchesUpAcrossSeveralCycles(t *testing.T) {
	a := NewIdleAnimator(10, time.Second)
	a.Start(t0)

	assert.Equal(t, 35, a.Tick(t0.Add(3500*time.Millisecond)))
	assert.Equal(t, 3, a.Cycles())
}

func TestIdleAnimator_CancelThenStartIsFresh(t *testing.T) {
	a := NewIdleAnimator(100, time.Second)
	a.Start(t0)
	a.Tick(t0.Add(400 * time.Millisecond))
	a.Cancel()

	assert.False(t, a.Running())
	assert.Zero(t, a.Tick(t0.Add(800*time.Millisecond)))

	restart := t0.Add(2 * time.Second)
	a.Start(restart)
	assert.Equal(t, 10, a.Tick(restart.Add(100*time.Millisecond)))
}

func TestIdleAnimator_ConfigureAppliesToNextRamp(t *testing.T) {
	a := NewIdleAnimator(10, time.Second)
	a.Start(t0)
	a.Configure(40, 2*time.Second)

	assert.Equal(t, 10, a.Tick(t0.Add(time.Second)))
	assert.Equal(t, 20, a.Tick(t0.Add(2*time.Second)))
	assert.Equal(t, 20, a.Tick(t0.Add(3*time.Second)))
}

func TestIdleAnimator_EaseInOut(t *testing.T) {
	a := NewIdleAnimator(100, time.Second)
	a.SetInterpolator(EaseInOut)
	a.Start(t0)

	first := a.Tick(t0.Add(100 * time.Millisecond))
	mid := a.Tick(t0.Add(500 * time.Millisecond))
	assert.Less(t, first, 10, "starts slower than linear")
	assert.Equal(t, 50-first, mid)
	assert.Equal(t, 50, a.Tick(t0.Add(time.Second)))

	assert.InDelta(t, 0, EaseInOut(0), 1e-12)
	assert.InDelta(t, 1, EaseInOut(1), 1e-12)
}
