package constraint_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/pta/clock"
	"github.com/katalvlaran/pta/constraint"
)

func TestDelaysOfTrueAndFalse(t *testing.T) {
	x := clock.New("x")
	val := constraint.Valuation{x: 1.5}

	assert.True(t, constraint.Delays(val, constraint.True()).Contains(0))
	assert.True(t, constraint.Delays(val, constraint.True()).Contains(1000))
	assert.True(t, constraint.Delays(val, constraint.False()).IsEmpty())
}

func TestDelaysSingletonTable(t *testing.T) {
	x := clock.New("x")
	val := constraint.Valuation{x: 1.0}

	ge := constraint.Delays(val, constraint.AtLeast(x, 3))
	assert.False(t, ge.Contains(1.9))
	assert.True(t, ge.Contains(2.0))
	assert.True(t, ge.Contains(1000))

	gt := constraint.Delays(val, constraint.GreaterThan(x, 3))
	assert.False(t, gt.Contains(2.0))
	assert.True(t, gt.Contains(2.0001))

	gtAlreadySatisfied := constraint.Delays(constraint.Valuation{x: 5}, constraint.GreaterThan(x, 3))
	assert.True(t, gtAlreadySatisfied.Contains(0))

	gtAtBound := constraint.Delays(constraint.Valuation{x: 3}, constraint.GreaterThan(x, 3))
	assert.False(t, gtAtBound.Contains(0))

	le := constraint.Delays(val, constraint.AtMost(x, 3))
	assert.True(t, le.Contains(0))
	assert.True(t, le.Contains(2.0))
	assert.False(t, le.Contains(2.0001))

	lt := constraint.Delays(val, constraint.LessThan(x, 3))
	assert.True(t, lt.Contains(1.9))
	assert.False(t, lt.Contains(2.0))

	unreachable := constraint.Delays(constraint.Valuation{x: 5}, constraint.AtMost(x, 3))
	assert.True(t, unreachable.IsEmpty())
}

func TestDelaysConjunctionIsIntersection(t *testing.T) {
	x := clock.New("x")
	val := constraint.Valuation{x: 0}
	phi1 := constraint.AtLeast(x, 1)
	phi2 := constraint.AtMost(x, 3)
	combined := constraint.Delays(val, constraint.And(phi1, phi2))
	expect := constraint.Delays(val, phi1).Intersect(constraint.Delays(val, phi2))

	assert.Equal(t, expect, combined)
	assert.False(t, combined.Contains(0.5))
	assert.True(t, combined.Contains(1))
	assert.True(t, combined.Contains(3))
	assert.False(t, combined.Contains(3.5))
}

func TestDelaysDiagonalIsDelayInvariant(t *testing.T) {
	x, y := clock.New("x"), clock.New("y")
	phi := constraint.Diag(x, y, constraint.LE, 2)

	satisfied := constraint.Valuation{x: 3, y: 2}
	assert.Equal(t, constraint.All(), constraint.Delays(satisfied, phi))

	violated := constraint.Valuation{x: 10, y: 2}
	assert.True(t, constraint.Delays(violated, phi).IsEmpty())
}

func TestIntervalIntersectUnboundedAbove(t *testing.T) {
	a := constraint.AtLeastInterval(2)
	b := constraint.HalfOpenUpperInterval(0, 5)
	got := a.Intersect(b)
	assert.True(t, got.Contains(2))
	assert.True(t, got.Contains(4.999))
	assert.False(t, got.Contains(5))
	assert.True(t, math.IsInf(b.Upper, 1) == false)
}
