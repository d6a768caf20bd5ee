// Package clock defines the opaque clock identity shared by the constraint,
// region, automaton and regionmdp packages.
//
// A Clock never carries a value; values live in valuations and Regions.
// Two clocks are equal iff their identities are equal. Once a Set is built
// (typically at PTA-construction time) every Clock also carries a dense
// zero-based index suitable for flat-array storage in a Region.
package clock

import "fmt"

// Clock is an opaque, hashable identity for a real-valued clock variable.
// Name is for diagnostics only; identity is carried by Index once a Clock
// has been registered in a Set.
type Clock struct {
	name  string
	index int
}

// New returns a standalone Clock with the given diagnostic name and index -1
// (unregistered). Most callers should build clocks through a Set instead, so
// that Index is dense and suitable for flat-array Region storage.
func New(name string) Clock {
	return Clock{name: name, index: -1}
}

// Name returns the clock's diagnostic name.
func (c Clock) Name() string { return c.name }

// Index returns the clock's dense zero-based index within its owning Set, or
// -1 if the clock was never registered.
func (c Clock) Index() int { return c.index }

// String implements fmt.Stringer for readable test failures and logs.
func (c Clock) String() string {
	if c.index < 0 {
		return fmt.Sprintf("Clock(%s)", c.name)
	}
	return fmt.Sprintf("Clock(%s#%d)", c.name, c.index)
}

// Set is an ordered, deduplicated collection of clocks with dense indices
// 0..K-1, suitable for flat-array Region storage keyed by Clock.Index.
type Set struct {
	clocks []Clock
	byName map[string]int
}

// NewSet builds a Set from the given clock names, in the given order. Clock
// names must be unique; duplicate names panic, since a duplicate can only
// arise from a literal construction mistake at the call site.
func NewSet(names ...string) Set {
	s := Set{
		clocks: make([]Clock, 0, len(names)),
		byName: make(map[string]int, len(names)),
	}
	for _, n := range names {
		if _, ok := s.byName[n]; ok {
			panic("clock: duplicate clock name " + n)
		}
		idx := len(s.clocks)
		s.byName[n] = idx
		s.clocks = append(s.clocks, Clock{name: n, index: idx})
	}
	return s
}

// Len returns the number of clocks in the set.
func (s Set) Len() int { return len(s.clocks) }

// Clocks returns the clocks in index order. The returned slice is owned by
// the caller; mutating it does not affect the Set.
func (s Set) Clocks() []Clock {
	out := make([]Clock, len(s.clocks))
	copy(out, s.clocks)

	return out
}

// Get returns the registered Clock for name and true, or the zero Clock and
// false if name is not in the set.
func (s Set) Get(name string) (Clock, bool) {
	idx, ok := s.byName[name]
	if !ok {
		return Clock{}, false
	}

	return s.clocks[idx], true
}

// Contains reports whether c is registered in the set: a clock of the same
// name must be present at the same index.
func (s Set) Contains(c Clock) bool {
	idx, ok := s.byName[c.name]

	return ok && idx == c.index
}
