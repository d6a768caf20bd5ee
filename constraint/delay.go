package constraint

// Delays computes the set of non-negative delays d such that
// val + d·1⃗ satisfies φ, as a single Interval. Diagonal constraints do not
// depend on d (every clock advances at the same rate, so differences are
// delay-invariant) and are therefore decided once, at the current valuation.
func Delays(val Valuation, phi Constraint) Interval {
	switch phi.kind {
	case KindTrue:
		return All()
	case KindFalse:
		return Empty()
	case KindSingleton:
		v := val[phi.c1]

		return singletonDelays(v, phi.op, float64(phi.n))
	case KindDiagonal:
		if satisfiesDiagonal(val, phi) {
			return All()
		}

		return Empty()
	case KindAnd:
		acc := All()
		for _, sub := range phi.and {
			acc = acc.Intersect(Delays(val, sub))
			if acc.IsEmpty() {
				return acc
			}
		}

		return acc
	default:
		return Empty()
	}
}

// singletonDelays computes the admissible-delay interval for a singleton
// "c op n" given the clock's current value v.
func singletonDelays(v float64, op Op, n float64) Interval {
	switch op {
	case GE:
		lower := n - v
		if lower < 0 {
			lower = 0
		}

		return AtLeastInterval(lower)
	case GT:
		lower := n - v
		if lower < 0 {
			// v already strictly exceeds n: every non-negative delay,
			// including 0, keeps the guard satisfied.
			return AtLeastInterval(0)
		}

		return GreaterThanInterval(lower)
	case LE:
		if n < v {
			return Empty()
		}

		return ClosedInterval(0, n-v)
	case LT:
		if n <= v {
			return Empty()
		}

		return HalfOpenUpperInterval(0, n-v)
	default:
		return Empty()
	}
}

// satisfiesDiagonal evaluates "c1 - c2 op n" at the current valuation.
func satisfiesDiagonal(val Valuation, phi Constraint) bool {
	diff := val[phi.c1] - val[phi.c2]
	n := float64(phi.n)
	switch phi.op {
	case LT:
		return diff < n
	case LE:
		return diff <= n
	case GT:
		return diff > n
	case GE:
		return diff >= n
	default:
		return false
	}
}

// Satisfies reports whether val satisfies φ, i.e. 0 ∈ delays(val, φ).
func Satisfies(val Valuation, phi Constraint) bool {
	return Delays(val, phi).Contains(0)
}
