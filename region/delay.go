package region

import (
	"fmt"
	"math"
	"sort"
)

// epsilon is the floating-point tolerance used by DelayReal when deciding
// whether a clock has landed on an integer boundary.
const epsilon = 1e-9

// DelaySteps advances the Region by k hops of the region graph (k >= 0) in
// closed form, without iterating k individually. Each hop moves between a
// region where some clock is integral and an open region, so from the
// all-zero Region two hops equal one time unit. k == 0 is a no-op.
func (r *Region) DelaySteps(k int) {
	if k < 0 {
		panic(fmt.Sprintf("region: DelaySteps called with negative k=%d", k))
	}
	if k == 0 {
		return
	}

	s := r.indicator()
	for _, c := range r.clocks.Clocks() {
		idx := c.Index()
		r.i[idx] += (2*r.f[idx] + s + k) / (2 * r.m)
		r.f[idx] = (r.f[idx] + (k+s)/2) % r.m
	}
	if k%2 == 1 {
		r.allInt = !r.allInt
	}
	r.checkInvariants()
}

// DelayReal advances the Region by a real, non-negative amount of time t,
// re-deriving the canonical (I, F, m, allInt) fields from the resulting
// dense valuation by a fractional-rank-crossing scan: compute each clock's
// new dense value, bucket clocks whose fractional parts coincide, and order
// the buckets. This is equivalent to repeated DelaySteps but accepts any
// real t directly, for callers that do not know in advance that t is an
// integer number of region-graph hops.
func (r *Region) DelayReal(t float64) {
	if t < 0 {
		panic(fmt.Sprintf("region: DelayReal called with negative t=%v", t))
	}
	if t == 0 {
		return
	}

	val := r.Valuation()
	clocks := r.clocks.Clocks()
	type entry struct {
		idx  int
		frac float64
	}
	entries := make([]entry, len(clocks))
	ints := make([]int, len(clocks))
	for n, c := range clocks {
		v := val[c] + t
		ip := math.Floor(v + epsilon)
		frac := v - ip
		if frac > 1-epsilon {
			ip++
			frac = 0
		}
		ints[c.Index()] = int(ip)
		entries[n] = entry{idx: c.Index(), frac: frac}
	}

	sort.Slice(entries, func(a, b int) bool { return entries[a].frac < entries[b].frac })

	// allInt marks that the lowest fractional class (rank 0) is integral.
	allInt := len(entries) == 0 || entries[0].frac <= epsilon

	ranks := make([]int, len(r.i))
	rank := 0
	for n, e := range entries {
		if n > 0 && e.frac-entries[n-1].frac > epsilon {
			rank++
		}
		ranks[e.idx] = rank
	}
	m := rank + 1

	copy(r.i, ints)
	copy(r.f, ranks)
	r.m = m
	r.allInt = allInt
	r.checkInvariants()
}
