package region

import "github.com/katalvlaran/pta/clock"

// Reset sets c to 0, adjusting the fractional ordering of every other clock
// so the Region remains the canonical representative of the resulting
// equivalence class.
//
// c moves to rank 0, which afterwards is the integral class (allInt true).
// m loses c's old class if c was alone in it and gains a class if rank 0
// was not integral before. R1-R3 are asserted after every Reset; R4 is not,
// since other clocks keep their fractional classes (see DESIGN.md).
func (r *Region) Reset(c clock.Clock) {
	idx := c.Index()

	if r.allInt && r.f[idx] == 0 {
		r.i[idx] = 0
		r.checkInvariants()

		return
	}

	clocks := r.clocks.Clocks()

	same := false
	for _, other := range clocks {
		if other.Index() != idx && r.f[other.Index()] == r.f[idx] {
			same = true

			break
		}
	}

	sameInd, allIntInd := 0, 0
	if same {
		sameInd = 1
	}
	if r.allInt {
		allIntInd = 1
	}
	r.m = r.m + sameInd - allIntInd
	if r.m < 1 {
		r.m = 1
	}

	for _, other := range clocks {
		oi := other.Index()
		if oi == idx {
			continue
		}
		if !same && r.f[oi] > r.f[idx] {
			r.f[oi] = ((r.f[oi]-1)%r.m + r.m) % r.m
		}
		if !r.allInt {
			r.f[oi] = (r.f[oi] + 1) % r.m
		}
	}

	r.f[idx] = 0
	r.i[idx] = 0
	r.allInt = true

	r.checkInvariants()
}
