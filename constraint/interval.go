package constraint

import (
	"fmt"
	"math"
)

// Interval is a single (possibly empty, possibly unbounded) real interval of
// non-negative delays, with explicit endpoint openness. The zero value is
// not a meaningful interval; use Empty, All, or a solver result.
type Interval struct {
	Lower      float64 // always >= 0 in this domain, or +Inf for an empty interval
	Upper      float64 // may be +Inf
	LowerOpen  bool
	UpperOpen  bool
	empty      bool
}

// Empty returns the empty interval.
func Empty() Interval { return Interval{empty: true} }

// All returns the interval [0, ∞).
func All() Interval { return Interval{Lower: 0, Upper: math.Inf(1), LowerOpen: false, UpperOpen: false} }

// AtLeastInterval returns [lower, ∞).
func AtLeastInterval(lower float64) Interval {
	return Interval{Lower: lower, Upper: math.Inf(1)}
}

// GreaterThanInterval returns (lower, ∞).
func GreaterThanInterval(lower float64) Interval {
	return Interval{Lower: lower, Upper: math.Inf(1), LowerOpen: true}
}

// ClosedInterval returns [lower, upper], or Empty if upper < lower.
func ClosedInterval(lower, upper float64) Interval {
	if upper < lower {
		return Empty()
	}

	return Interval{Lower: lower, Upper: upper}
}

// HalfOpenUpperInterval returns [lower, upper), or Empty if upper <= lower.
func HalfOpenUpperInterval(lower, upper float64) Interval {
	if upper <= lower {
		return Empty()
	}

	return Interval{Lower: lower, Upper: upper, UpperOpen: true}
}

// IsEmpty reports whether the interval contains no delays.
func (iv Interval) IsEmpty() bool { return iv.empty }

// Contains reports whether t lies in the interval, honouring endpoint
// openness. An empty interval never contains anything.
func (iv Interval) Contains(t float64) bool {
	if iv.empty {
		return false
	}
	if t < iv.Lower || (iv.LowerOpen && t == iv.Lower) {
		return false
	}
	if t > iv.Upper || (iv.UpperOpen && t == iv.Upper) {
		return false
	}

	return true
}

// Intersect returns the intersection of iv and other, which is always a
// single interval in this algebra (both operands are convex, half-line- or
// box-bounded subsets of [0, ∞)).
func (iv Interval) Intersect(other Interval) Interval {
	if iv.empty || other.empty {
		return Empty()
	}

	lower, lowerOpen := iv.Lower, iv.LowerOpen
	if other.Lower > lower || (other.Lower == lower && other.LowerOpen && !lowerOpen) {
		lower, lowerOpen = other.Lower, other.LowerOpen
	}

	upper, upperOpen := iv.Upper, iv.UpperOpen
	if other.Upper < upper || (other.Upper == upper && other.UpperOpen && !upperOpen) {
		upper, upperOpen = other.Upper, other.UpperOpen
	}

	if upper < lower {
		return Empty()
	}
	if upper == lower && (lowerOpen || upperOpen) {
		return Empty()
	}

	return Interval{Lower: lower, Upper: upper, LowerOpen: lowerOpen, UpperOpen: upperOpen}
}

// String renders the interval in standard bracket notation for diagnostics.
func (iv Interval) String() string {
	if iv.empty {
		return "∅"
	}
	l, r := "[", "]"
	if iv.LowerOpen {
		l = "("
	}
	if iv.UpperOpen {
		r = ")"
	}
	upper := fmt.Sprintf("%v", iv.Upper)
	if math.IsInf(iv.Upper, 1) {
		upper = "∞"
	}

	return fmt.Sprintf("%s%v, %s%s", l, iv.Lower, upper, r)
}
