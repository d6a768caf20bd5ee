package region_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pta/clock"
	"github.com/katalvlaran/pta/constraint"
	"github.com/katalvlaran/pta/region"
)

func xyz() (clock.Set, clock.Clock, clock.Clock, clock.Clock) {
	set := clock.NewSet("x", "y", "z")
	x, _ := set.Get("x")
	y, _ := set.Get("y")
	z, _ := set.Get("z")

	return set, x, y, z
}

func TestNewIsAllZero(t *testing.T) {
	set, x, y, z := xyz()
	r := region.New(set)

	assert.True(t, r.AllInt())
	assert.Equal(t, 1, r.M())
	val := r.Valuation()
	assert.Equal(t, 0.0, val[x])
	assert.Equal(t, 0.0, val[y])
	assert.Equal(t, 0.0, val[z])
}

func TestDelayStepsZeroIsNoOp(t *testing.T) {
	set, x, _, _ := xyz()
	r := region.New(set)
	r.DelaySteps(0)

	assert.True(t, r.AllInt())
	assert.Equal(t, 0.0, r.Valuation()[x])
}

func TestDelaySteps1TogglesAllIntAndAddsHalf(t *testing.T) {
	set, x, y, z := xyz()
	r := region.New(set)
	r.DelaySteps(1)

	assert.False(t, r.AllInt())
	val := r.Valuation()
	assert.InDelta(t, 0.5, val[x], 1e-12)
	assert.InDelta(t, 0.5, val[y], 1e-12)
	assert.InDelta(t, 0.5, val[z], 1e-12)
}

func TestDelaySteps1IsNotIdempotent(t *testing.T) {
	set, x, _, _ := xyz()
	r := region.New(set)
	r.DelaySteps(1)
	r.DelaySteps(1)

	// Two unit steps return the Region to the integer lattice, one level up.
	assert.True(t, r.AllInt())
	assert.Equal(t, 1.0, r.Valuation()[x])
}

func TestResetClockReturnsToExactZero(t *testing.T) {
	set, x, _, _ := xyz()
	r := region.New(set)
	r.DelaySteps(1)
	r.Reset(x)

	assert.Equal(t, 0.0, r.Valuation()[x])
}

func TestResetOfAlreadyZeroClockAtOriginIsNoOp(t *testing.T) {
	set, x, y, z := xyz()
	r := region.New(set)
	r.Reset(x)

	assert.True(t, r.AllInt())
	val := r.Valuation()
	assert.Equal(t, 0.0, val[x])
	assert.Equal(t, 0.0, val[y])
	assert.Equal(t, 0.0, val[z])
}

func TestDelayRealZeroIsNoOp(t *testing.T) {
	set, x, _, _ := xyz()
	r := region.New(set)
	r.DelayReal(0)

	assert.True(t, r.AllInt())
	assert.Equal(t, 0.0, r.Valuation()[x])
}

func TestDelayRealNegativePanics(t *testing.T) {
	set, _, _, _ := xyz()
	r := region.New(set)
	require.Panics(t, func() { r.DelayReal(-1) })
}

func TestDelayStepsNegativePanics(t *testing.T) {
	set, _, _, _ := xyz()
	r := region.New(set)
	require.Panics(t, func() { r.DelaySteps(-1) })
}

func TestDelayRealAgreesWithDelayStepsForIntegerAmounts(t *testing.T) {
	// Each DelaySteps(1) call advances one hop of the region graph (corner to
	// open region or vice versa); two hops correspond to one real time unit.
	setA, xa, ya, za := xyz()
	a := region.New(setA)
	a.DelaySteps(6)

	setB, xb, yb, zb := xyz()
	b := region.New(setB)
	b.DelayReal(3)

	assert.Equal(t, a.AllInt(), b.AllInt())
	valA, valB := a.Valuation(), b.Valuation()
	assert.InDelta(t, valA[xa], valB[xb], 1e-9)
	assert.InDelta(t, valA[ya], valB[yb], 1e-9)
	assert.InDelta(t, valA[za], valB[zb], 1e-9)
}

func TestContainsUsesCurrentValuation(t *testing.T) {
	set, x, _, _ := xyz()
	r := region.New(set)
	assert.True(t, r.Contains(constraint.AtMost(x, 0)))
	assert.False(t, r.Contains(constraint.AtLeast(x, 1)))

	r.DelaySteps(2)
	assert.True(t, r.Contains(constraint.AtLeast(x, 1)))
}

func TestDelayStepsIsMonotoneNonDecreasing(t *testing.T) {
	set, x, _, _ := xyz()
	r := region.New(set)
	prev := r.Valuation()[x]
	for i := 0; i < 5; i++ {
		r.DelaySteps(1)
		cur := r.Valuation()[x]
		assert.GreaterOrEqual(t, cur, prev)
		prev = cur
	}
}

func TestReinitReturnsToAllZero(t *testing.T) {
	set, x, _, _ := xyz()
	r := region.New(set)
	r.DelaySteps(3)
	r.Reinit()

	assert.True(t, r.AllInt())
	assert.Equal(t, 1, r.M())
	assert.Equal(t, 0.0, r.Valuation()[x])
}
