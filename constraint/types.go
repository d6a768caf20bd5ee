// Package constraint implements the clock-constraint algebra and the delay
// solver on top of it: an immutable, structurally-equal description of
// clock bounds and differences, and a function turning a constraint plus a
// valuation into the interval of admissible non-negative delays.
package constraint

import (
	"errors"

	"github.com/katalvlaran/pta/clock"
)

// Sentinel errors whose messages Diag panics with on invalid construction.
var (
	// ErrNegativeBound indicates a constraint was constructed with a
	// negative bound where the algebra requires a natural number.
	ErrNegativeBound = errors.New("constraint: bound must be non-negative")

	// ErrSameClock indicates a Diagonal constraint was constructed with
	// c1 == c2; a clock's difference with itself is always 0 and is not
	// a meaningful diagonal constraint.
	ErrSameClock = errors.New("constraint: diagonal constraint requires two distinct clocks")
)

// Op is a comparison operator used by Singleton and Diagonal constraints.
type Op int

const (
	// LT is "<".
	LT Op = iota
	// LE is "≤".
	LE
	// GT is ">".
	GT
	// GE is "≥".
	GE
)

// String renders the operator for diagnostics.
func (o Op) String() string {
	switch o {
	case LT:
		return "<"
	case LE:
		return "≤"
	case GT:
		return ">"
	case GE:
		return "≥"
	default:
		return "?"
	}
}

// Kind discriminates the variants of the Constraint tagged sum.
type Kind int

const (
	// KindTrue is the trivially satisfied constraint.
	KindTrue Kind = iota
	// KindFalse is the never-satisfied constraint.
	KindFalse
	// KindSingleton is "c ~ n".
	KindSingleton
	// KindDiagonal is "c1 - c2 ~ n".
	KindDiagonal
	// KindAnd is a conjunction of sub-constraints.
	KindAnd
)

// Constraint is an immutable clock constraint: TRUE, FALSE, a singleton bound
// on one clock, a diagonal bound on the difference of two clocks, or a
// conjunction. Equality is structural; use Equal, not reflect.DeepEqual,
// since And is semantically a set and may be built in different orders.
type Constraint struct {
	kind Kind
	c1   clock.Clock
	c2   clock.Clock
	n    int
	op   Op
	and  []Constraint
}

// Kind reports the constraint's variant.
func (c Constraint) Kind() Kind { return c.kind }

// Clock returns the clock of a Singleton constraint, or c1 of a Diagonal
// constraint. Panics if called on a non-Singleton, non-Diagonal constraint.
func (c Constraint) Clock() clock.Clock {
	if c.kind != KindSingleton && c.kind != KindDiagonal {
		panic("constraint: Clock() called on a constraint without a clock")
	}

	return c.c1
}

// Clock2 returns the second clock of a Diagonal constraint. Panics on any
// other Kind.
func (c Constraint) Clock2() clock.Clock {
	if c.kind != KindDiagonal {
		panic("constraint: Clock2() called on a non-Diagonal constraint")
	}

	return c.c2
}

// Bound returns the integer bound n of a Singleton or Diagonal constraint.
// Panics on any other Kind.
func (c Constraint) Bound() int {
	if c.kind != KindSingleton && c.kind != KindDiagonal {
		panic("constraint: Bound() called on a constraint without a bound")
	}

	return c.n
}

// Operator returns the comparison operator of a Singleton or Diagonal
// constraint. Panics on any other Kind.
func (c Constraint) Operator() Op {
	if c.kind != KindSingleton && c.kind != KindDiagonal {
		panic("constraint: Operator() called on a constraint without an operator")
	}

	return c.op
}

// Operands returns the sub-constraints of an And constraint. Panics on any
// other Kind. The returned slice is owned by the caller.
func (c Constraint) Operands() []Constraint {
	if c.kind != KindAnd {
		panic("constraint: Operands() called on a non-And constraint")
	}
	out := make([]Constraint, len(c.and))
	copy(out, c.and)

	return out
}

// Valuation is a total mapping from clocks to non-negative reals.
type Valuation map[clock.Clock]float64
