package constraint

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/pta/clock"
)

// True returns the trivially satisfied constraint.
func True() Constraint { return Constraint{kind: KindTrue} }

// False returns the never-satisfied constraint.
func False() Constraint { return Constraint{kind: KindFalse} }

// Singleton builds "c op n", folding boundary cases per the construction
// table: clocks are known to be ≥ 0, so some (op, n) combinations are
// tautologies or contradictions rather than genuine singleton constraints.
// n may be any integer (including negative); it is the folding itself that
// establishes the "n is a non-negative integer" invariant on every
// constraint that actually reaches KindSingleton.
func Singleton(c clock.Clock, op Op, n int) Constraint {
	switch op {
	case LT:
		if n <= 0 {
			return False() // c < n is impossible for any n <= 0, since c >= 0
		}

		return Constraint{kind: KindSingleton, c1: c, n: n, op: LT}
	case LE:
		if n < 0 {
			return False() // c <= n is impossible for n < 0
		}
		// n == 0 is allowed: "c <= 0" folds to the singleton "c == 0" region,
		// which is meaningful and not a tautology.
		return Constraint{kind: KindSingleton, c1: c, n: n, op: LE}
	case GT:
		if n < 0 {
			return True() // c > n always holds for n < 0, since c >= 0
		}
		// n == 0: "c > 0" is a genuine singleton (excludes exactly c == 0).
		return Constraint{kind: KindSingleton, c1: c, n: n, op: GT}
	case GE:
		if n <= 0 {
			return True() // c >= n always holds for n <= 0
		}

		return Constraint{kind: KindSingleton, c1: c, n: n, op: GE}
	default:
		panic(fmt.Sprintf("constraint: unknown operator %v", op))
	}
}

// LessThan builds "c < n".
func LessThan(c clock.Clock, n int) Constraint { return Singleton(c, LT, n) }

// AtMost builds "c <= n".
func AtMost(c clock.Clock, n int) Constraint { return Singleton(c, LE, n) }

// GreaterThan builds "c > n".
func GreaterThan(c clock.Clock, n int) Constraint { return Singleton(c, GT, n) }

// AtLeast builds "c >= n".
func AtLeast(c clock.Clock, n int) Constraint { return Singleton(c, GE, n) }

// Diag builds the diagonal constraint "c1 - c2 op n". Diagonal construction
// does not fold on sign: the difference of two clocks may legitimately be
// any integer. Panics if n < 0 or c1 == c2, since both are call-site
// construction mistakes, never data-dependent.
func Diag(c1, c2 clock.Clock, op Op, n int) Constraint {
	if n < 0 {
		panic(ErrNegativeBound.Error())
	}
	if c1 == c2 {
		panic(ErrSameClock.Error())
	}

	return Constraint{kind: KindDiagonal, c1: c1, c2: c2, n: n, op: op}
}

// And builds the conjunction of the given constraints, folding TRUE/FALSE
// per the algebra: TRUE is absorbed, any FALSE operand makes the whole
// conjunction FALSE, and a single remaining operand is returned unwrapped
// rather than boxed in a one-element And.
func And(cs ...Constraint) Constraint {
	flat := make([]Constraint, 0, len(cs))
	for _, c := range cs {
		switch c.kind {
		case KindTrue:
			continue // TRUE contributes nothing
		case KindFalse:
			return False()
		case KindAnd:
			flat = append(flat, c.and...)
		default:
			flat = append(flat, c)
		}
	}
	switch len(flat) {
	case 0:
		return True()
	case 1:
		return flat[0]
	default:
		return Constraint{kind: KindAnd, and: flat}
	}
}

// Equal reports whether c and other denote the same constraint. And is
// semantically a set, so its operands are compared as a multiset (by sorted
// string rendering) rather than in construction order.
func (c Constraint) Equal(other Constraint) bool {
	if c.kind != other.kind {
		return false
	}
	switch c.kind {
	case KindTrue, KindFalse:
		return true
	case KindSingleton:
		return c.c1 == other.c1 && c.n == other.n && c.op == other.op
	case KindDiagonal:
		return c.c1 == other.c1 && c.c2 == other.c2 && c.n == other.n && c.op == other.op
	case KindAnd:
		if len(c.and) != len(other.and) {
			return false
		}
		a := renderedSorted(c.and)
		b := renderedSorted(other.and)
		for i := range a {
			if a[i] != b[i] {
				return false
			}
		}

		return true
	default:
		return false
	}
}

func renderedSorted(cs []Constraint) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.String()
	}
	sort.Strings(out)

	return out
}

// String renders the constraint for diagnostics and test failures.
func (c Constraint) String() string {
	switch c.kind {
	case KindTrue:
		return "true"
	case KindFalse:
		return "false"
	case KindSingleton:
		return fmt.Sprintf("%s %s %d", c.c1, c.op, c.n)
	case KindDiagonal:
		return fmt.Sprintf("%s - %s %s %d", c.c1, c.c2, c.op, c.n)
	case KindAnd:
		s := "("
		for i, sub := range c.and {
			if i > 0 {
				s += " ∧ "
			}
			s += sub.String()
		}

		return s + ")"
	default:
		return "?"
	}
}
