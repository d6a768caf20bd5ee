package constraint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pta/clock"
	"github.com/katalvlaran/pta/constraint"
)

func TestSingletonBoundaryFolding(t *testing.T) {
	c := clock.New("x")

	tests := []struct {
		name string
		op   constraint.Op
		n    int
		want constraint.Kind
	}{
		{"lt negative", constraint.LT, -1, constraint.KindFalse},
		{"lt zero", constraint.LT, 0, constraint.KindFalse},
		{"lt positive", constraint.LT, 3, constraint.KindSingleton},
		{"le negative", constraint.LE, -1, constraint.KindFalse},
		{"le zero", constraint.LE, 0, constraint.KindSingleton},
		{"le positive", constraint.LE, 3, constraint.KindSingleton},
		{"gt negative", constraint.GT, -1, constraint.KindTrue},
		{"gt zero", constraint.GT, 0, constraint.KindSingleton},
		{"gt positive", constraint.GT, 3, constraint.KindSingleton},
		{"ge negative", constraint.GE, -1, constraint.KindTrue},
		{"ge zero", constraint.GE, 0, constraint.KindTrue},
		{"ge positive", constraint.GE, 3, constraint.KindSingleton},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := constraint.Singleton(c, tc.op, tc.n)
			assert.Equal(t, tc.want, got.Kind())
		})
	}
}

func TestClockGEZeroIsTrue(t *testing.T) {
	c := clock.New("x")
	assert.Equal(t, constraint.KindTrue, constraint.AtLeast(c, 0).Kind())
}

func TestClockLTZeroIsFalse(t *testing.T) {
	c := clock.New("x")
	assert.Equal(t, constraint.KindFalse, constraint.LessThan(c, 0).Kind())
}

func TestAndAbsorbsTrueAndFalse(t *testing.T) {
	c := clock.New("x")
	phi := constraint.AtLeast(c, 2)

	assert.True(t, constraint.And(constraint.True(), phi).Equal(phi))
	assert.True(t, constraint.And(constraint.False(), phi).Equal(constraint.False()))
}

func TestDiagPanicsOnSameClock(t *testing.T) {
	c := clock.New("x")
	require.Panics(t, func() {
		constraint.Diag(c, c, constraint.LT, 1)
	})
}

func TestDiagPanicsOnNegativeBound(t *testing.T) {
	a, b := clock.New("x"), clock.New("y")
	require.Panics(t, func() {
		constraint.Diag(a, b, constraint.LT, -1)
	})
}

func TestEqualIsOrderIndependentForAnd(t *testing.T) {
	x, y := clock.New("x"), clock.New("y")
	a := constraint.And(constraint.AtLeast(x, 1), constraint.AtMost(y, 2))
	b := constraint.And(constraint.AtMost(y, 2), constraint.AtLeast(x, 1))
	assert.True(t, a.Equal(b))
}

func TestSingletonIntrospectionAccessors(t *testing.T) {
	x := clock.New("x")
	phi := constraint.AtLeast(x, 2)

	assert.Equal(t, x, phi.Clock())
	assert.Equal(t, 2, phi.Bound())
	assert.Equal(t, constraint.GE, phi.Operator())
}

func TestDiagonalIntrospectionAccessors(t *testing.T) {
	x, y := clock.New("x"), clock.New("y")
	phi := constraint.Diag(x, y, constraint.LT, 5)

	assert.Equal(t, x, phi.Clock())
	assert.Equal(t, y, phi.Clock2())
	assert.Equal(t, 5, phi.Bound())
	assert.Equal(t, constraint.LT, phi.Operator())
}

func TestAndOperandsRoundTrip(t *testing.T) {
	x, y := clock.New("x"), clock.New("y")
	left := constraint.AtLeast(x, 1)
	right := constraint.AtMost(y, 2)
	phi := constraint.And(left, right)

	operands := phi.Operands()
	require.Len(t, operands, 2)
	assert.True(t, operands[0].Equal(left) || operands[0].Equal(right))
	assert.True(t, operands[1].Equal(left) || operands[1].Equal(right))
}

func TestClockAndBoundPanicOnWrongKind(t *testing.T) {
	require.Panics(t, func() { constraint.True().Clock() })
	require.Panics(t, func() { constraint.True().Bound() })
	require.Panics(t, func() { constraint.True().Operator() })
	require.Panics(t, func() { constraint.AtLeast(clock.New("x"), 2).Clock2() })
	require.Panics(t, func() { constraint.AtLeast(clock.New("x"), 2).Operands() })
}
