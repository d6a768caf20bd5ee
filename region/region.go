// Package region implements the canonical integral-Region data structure
// (Hartmanns, Sedwards & D'Argenio, WSC 2017): a finite representative of an
// equivalence class of dense-time clock valuations, supporting integer-step
// and real-time delays and clock resets in closed form.
//
// Storage is two flat arrays of length K (one entry per clock, addressed by
// clock.Clock.Index), plus the fractional-class count m and the allInt flag.
package region

import (
	"fmt"

	"github.com/katalvlaran/pta/clock"
	"github.com/katalvlaran/pta/constraint"
)

// Region is the canonical representative of an equivalence class of clock
// valuations. The zero value is not meaningful; use New.
type Region struct {
	clocks clock.Set
	i      []int // integer part per clock index
	f      []int // fractional-order rank per clock index, in [0, m)
	m      int   // number of distinct fractional classes
	allInt bool  // true iff the clocks of rank 0 have integer values
}

// New returns the all-zero Region over clocks: every clock at integer 0,
// a single fractional class, and allInt true — the starting state of every
// Region-MDP.
func New(clocks clock.Set) *Region {
	k := clocks.Len()

	return &Region{
		clocks: clocks,
		i:      make([]int, k),
		f:      make([]int, k),
		m:      1,
		allInt: true,
	}
}

// Clone returns a deep copy of r, independent of r for further mutation.
// Used by callers (e.g. regionmdp's invariant probe) that need to try a
// delay speculatively without disturbing the Region of record.
func (r *Region) Clone() *Region {
	i := make([]int, len(r.i))
	copy(i, r.i)
	f := make([]int, len(r.f))
	copy(f, r.f)

	return &Region{clocks: r.clocks, i: i, f: f, m: r.m, allInt: r.allInt}
}

// Reinit resets r in place to the all-zero state, reusing its storage. Used
// by the Region-MDP driver's reset() to avoid reallocating on every episode.
func (r *Region) Reinit() {
	for idx := range r.i {
		r.i[idx] = 0
		r.f[idx] = 0
	}
	r.m = 1
	r.allInt = true
}

// indicator returns the s term used by Valuation and DelaySteps: 1 when no
// clock has an integer value, 0 when the rank-0 clocks do. This is the
// complement of allInt; see DESIGN.md for the worked transition that pins
// this sign down unambiguously.
func (r *Region) indicator() int {
	if r.allInt {
		return 0
	}

	return 1
}

// Valuation returns the representative valuation: for each clock c,
// I(c) + (2F(c) + s) / (2m), a snapshot safe for the caller to retain.
func (r *Region) Valuation() constraint.Valuation {
	val := make(constraint.Valuation, len(r.i))
	s := r.indicator()
	for _, c := range r.clocks.Clocks() {
		idx := c.Index()
		val[c] = float64(r.i[idx]) + float64(2*r.f[idx]+s)/float64(2*r.m)
	}

	return val
}

// Contains reports whether the current representative satisfies phi.
func (r *Region) Contains(phi constraint.Constraint) bool {
	return constraint.Satisfies(r.Valuation(), phi)
}

// AllInt reports whether the clocks of fractional rank 0 currently have
// integer values. Every clock is integral only when AllInt is true and M is 1.
func (r *Region) AllInt() bool { return r.allInt }

// M returns the current number of distinct fractional classes.
func (r *Region) M() int { return r.m }

// checkInvariants panics if R1-R3 are violated; used after every mutation as
// an internal-consistency assertion. R4 is not asserted: allInt marks an
// integral rank-0 class, which may coexist with other classes (m > 1) after
// a Reset; see DESIGN.md.
func (r *Region) checkInvariants() {
	if r.m < 1 {
		panic("region: invariant R1 violated: m < 1")
	}
	seen := make([]bool, r.m)
	for _, rank := range r.f {
		if rank < 0 || rank >= r.m {
			panic(fmt.Sprintf("region: fractional rank %d out of range [0,%d)", rank, r.m))
		}
		seen[rank] = true
	}
	for rank, ok := range seen {
		if !ok {
			panic(fmt.Sprintf("region: invariant R2 violated: rank %d has no clock", rank))
		}
	}
	if !seen[0] {
		panic("region: invariant R3 violated: no clock at rank 0")
	}
}

// String renders the Region's internal state for diagnostics.
func (r *Region) String() string {
	return fmt.Sprintf("Region{I=%v F=%v m=%d allInt=%v}", r.i, r.f, r.m, r.allInt)
}
