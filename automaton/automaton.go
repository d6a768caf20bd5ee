// Package automaton defines the static Probabilistic Timed Automaton model:
// locations, actions, transitions with probabilistic targets, invariants,
// and optional labels. A PTA is immutable after construction; it is
// validated once, at construction time, so every query method can run
// without further error-checking.
package automaton

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pta/clock"
	"github.com/katalvlaran/pta/constraint"
	"github.com/katalvlaran/pta/distribution"
)

// Location identifies a control state. It is an alias of string.
type Location = string

// Action identifies a transition label.
type Action = string

// Target is a transition's probabilistic outcome: the clocks to reset and
// the location to move to.
type Target struct {
	ResetClocks []clock.Clock
	Successor   Location
}

// Transition is a single guarded, probabilistically-resolved edge out of a
// location for one action. The probability mass is carried by TargetDist
// over the indices of Targets rather than over Target directly: Target
// holds a slice field, so it is not a comparable type and cannot itself
// instantiate the generic Distribution[T comparable].
type Transition struct {
	Guard      constraint.Constraint
	Targets    []Target
	TargetDist distribution.Distribution[int]
}

// Sample draws one Target from the transition's distribution using rng.
func (tr Transition) Sample(rng distribution.RNG) Target {
	idx := tr.TargetDist.Sample(rng, 1)[0]

	return tr.Targets[idx]
}

// AllTargets returns every Target this transition can produce, in the same
// order as TargetDist's Support().
func (tr Transition) AllTargets() []Target {
	out := make([]Target, 0, len(tr.TargetDist.Support()))
	for _, idx := range tr.TargetDist.Support() {
		out = append(out, tr.Targets[idx])
	}

	return out
}

var (
	// ErrUnknownInitialLocation indicates the configured initial location is
	// not a member of the declared location set.
	ErrUnknownInitialLocation = errors.New("automaton: initial location is not in locations")
	// ErrUnknownSuccessor indicates a transition target names a location
	// outside the declared location set.
	ErrUnknownSuccessor = errors.New("automaton: transition targets an unknown location")
	// ErrUnknownResetClock indicates a transition target resets a clock not
	// in the PTA's declared clock set.
	ErrUnknownResetClock = errors.New("automaton: transition resets an unknown clock")
)

// PTA is an immutable Probabilistic Timed Automaton.
type PTA struct {
	clocks          clock.Set
	locations       map[Location]struct{}
	initialLocation Location
	transitions     map[Location]map[Action]Transition
	invariants      map[Location]constraint.Constraint
	labels          map[Location][]string
}

// New validates and constructs a PTA. locations must be non-empty and
// contain initialLocation. transitions maps each location to its outgoing
// action table (a location with no entry is treated as having no outgoing
// transitions). invariants maps each location to its invariant constraint;
// a location absent from invariants is treated as constraint.True().
// labels is optional; a nil map yields empty label sets everywhere.
//
// New panics if initialLocation is not declared, or if any transition names
// a successor location or reset clock outside the declared sets — these are
// construction-time programmer errors, not runtime conditions.
func New(
	clocks clock.Set,
	locations []Location,
	initialLocation Location,
	transitions map[Location]map[Action]Transition,
	invariants map[Location]constraint.Constraint,
	labels map[Location][]string,
) *PTA {
	locSet := make(map[Location]struct{}, len(locations))
	for _, loc := range locations {
		locSet[loc] = struct{}{}
	}
	if _, ok := locSet[initialLocation]; !ok {
		panic(fmt.Errorf("%w: %v", ErrUnknownInitialLocation, initialLocation))
	}

	for loc, table := range transitions {
		for action, tr := range table {
			for _, target := range tr.Targets {
				if _, ok := locSet[target.Successor]; !ok {
					panic(fmt.Errorf("%w: location %v action %v -> %v", ErrUnknownSuccessor, loc, action, target.Successor))
				}
				for _, c := range target.ResetClocks {
					if !clocks.Contains(c) {
						panic(fmt.Errorf("%w: location %v action %v resets %v", ErrUnknownResetClock, loc, action, c))
					}
				}
			}
		}
	}

	return &PTA{
		clocks:          clocks,
		locations:       locSet,
		initialLocation: initialLocation,
		transitions:     transitions,
		invariants:      invariants,
		labels:          labels,
	}
}

// Clocks returns the PTA's declared clock set.
func (p *PTA) Clocks() clock.Set { return p.clocks }

// InitialLocation returns the PTA's initial location.
func (p *PTA) InitialLocation() Location { return p.initialLocation }

// HasLocation reports whether loc is a declared location.
func (p *PTA) HasLocation(loc Location) bool {
	_, ok := p.locations[loc]

	return ok
}

// Invariant returns the invariant constraint for loc, or constraint.True()
// if loc has none declared.
func (p *PTA) Invariant(loc Location) constraint.Constraint {
	if phi, ok := p.invariants[loc]; ok {
		return phi
	}

	return constraint.True()
}

// Labels returns the label set for loc, or nil if loc has none declared.
func (p *PTA) Labels(loc Location) []string {
	return p.labels[loc]
}

// EnabledActions returns the subset of loc's outgoing transitions whose
// guard is satisfied by val.
func (p *PTA) EnabledActions(loc Location, val constraint.Valuation) map[Action]Transition {
	enabled := make(map[Action]Transition)
	for action, tr := range p.transitions[loc] {
		if constraint.Satisfies(val, tr.Guard) {
			enabled[action] = tr
		}
	}

	return enabled
}

// AllowedDelays returns the set of non-negative delays after which loc's
// invariant still holds at val.
func (p *PTA) AllowedDelays(loc Location, val constraint.Valuation) constraint.Interval {
	return constraint.Delays(val, p.Invariant(loc))
}

// Transition returns the transition for loc/action, if declared.
func (p *PTA) Transition(loc Location, action Action) (Transition, bool) {
	tr, ok := p.transitions[loc][action]

	return tr, ok
}
