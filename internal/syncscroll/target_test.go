package syncscroll

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

type rowTarget struct {
	index, top int
	empty      bool
	writes     int
}

func (r *rowTarget) FirstVisibleIndex() (int, bool)           { return r.index, !r.empty }
func (r *rowTarget) TopOffsetOfFirstVisibleItem() (int, bool) { return r.top, !r.empty }
func (r *rowTarget) VerticalScrollPosition() int              { return r.index*10 - r.top }
func (r *rowTarget) ScrollToOffset(index, top int) {
	r.index, r.top = index, top
	r.writes++
}

func TestTargetAdapter_CarriesFractions(t *testing.T) {
	rt := &rowTarget{}
	a := targetAdapter{target: rt}

	for range 10 {
		a.scrollBy(0.3, 1)
	}
	assert.Equal(t, -3, rt.top)
	assert.Equal(t, 3, rt.writes, "only whole steps reach the target")
}

func TestTargetAdapter_NegativeFactor(t *testing.T) {
	rt := &rowTarget{}
	a := targetAdapter{target: rt}

	a.scrollBy(10, -0.5)
	assert.Equal(t, 5, rt.top)
}

func TestTargetAdapter_NoopCases(t *testing.T) {
	var a targetAdapter
	a.scrollBy(10, 1)
	assert.Zero(t, a.position())
	assert.False(t, a.bound())

	rt := &rowTarget{empty: true}
	a.target = rt
	a.scrollBy(10, 1)
	assert.Zero(t, rt.writes)
	assert.Zero(t, a.carry, "nothing is owed to an empty target")
}

func TestEventPool_ObtainCopies(t *testing.T) {
	p := NewEventPool()
	src := TouchEvent{X: 3, Y: 4}
	e := p.Obtain(src)
	e.X = 99

	assert.InDelta(t, 3, src.X, 1e-12)
	p.Release(e)
	p.Release(nil)
}

func TestTargetAdapter_DropsNonFiniteAndBoundsSteps(t *testing.T) {
	rt := &rowTarget{}
	a := targetAdapter{target: rt}

	a.scrollBy(0.4, 1)
	a.scrollBy(math.NaN(), 1)
	a.scrollBy(math.Inf(1), 1)
	a.scrollBy(1, math.Inf(-1))
	assert.Zero(t, rt.writes)
	assert.InDelta(t, 0.4, a.carry, 1e-9, "carry survives dropped deltas")

	a.scrollBy(0.2, 1)
	assert.Equal(t, -1, rt.top)

	a.scrollBy(1e300, 1)
	assert.Equal(t, -1-maxStep, rt.top)
}
