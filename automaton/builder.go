package automaton

import (
	"github.com/katalvlaran/pta/clock"
	"github.com/katalvlaran/pta/constraint"
	"github.com/katalvlaran/pta/distribution"
)

// Option configures a Builder: options are applied in call order to an
// unexported config before the PTA is constructed.
type Option func(*builderConfig)

type builderConfig struct {
	locations  []Location
	invariants map[Location]constraint.Constraint
	labels     map[Location][]string
}

// Builder accumulates locations and transitions incrementally and produces
// a validated PTA via Build. It is a convenience on top of New for callers
// who prefer to assemble a PTA location-by-location rather than building
// the transitions map by hand up front.
type Builder struct {
	clocks          clock.Set
	initialLocation Location
	transitions     map[Location]map[Action]Transition
	cfg             builderConfig
}

// NewBuilder starts a Builder over the given clocks with the given initial
// location.
func NewBuilder(clocks clock.Set, initialLocation Location, opts ...Option) *Builder {
	cfg := builderConfig{
		invariants: make(map[Location]constraint.Constraint),
		labels:     make(map[Location][]string),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Builder{
		clocks:          clocks,
		initialLocation: initialLocation,
		transitions:     make(map[Location]map[Action]Transition),
		cfg:             cfg,
	}
}

// WithLocations declares the full location set up front. Build also adds
// the initial location and every source and successor location of an added
// transition, so this option is only needed for locations that appear in
// none of those roles.
func WithLocations(locations ...Location) Option {
	return func(c *builderConfig) {
		c.locations = append(c.locations, locations...)
	}
}

// WithInvariant sets loc's invariant constraint.
func WithInvariant(loc Location, phi constraint.Constraint) Option {
	return func(c *builderConfig) {
		c.invariants[loc] = phi
	}
}

// WithLabels sets loc's label set.
func WithLabels(loc Location, labels ...string) Option {
	return func(c *builderConfig) {
		c.labels[loc] = labels
	}
}

// AddTransition registers a deterministic edge out of loc for action: a
// single target drawn with probability 1. It returns the Builder for
// chaining.
func (b *Builder) AddTransition(loc Location, action Action, guard constraint.Constraint, target Target) *Builder {
	return b.AddProbabilisticTransition(loc, action, guard, []Target{target}, []float64{1})
}

// AddProbabilisticTransition registers an edge out of loc for action whose
// outcome is drawn from targets, weighted by weights (normalized by the
// underlying DiscreteDistribution). It returns the Builder for chaining.
func (b *Builder) AddProbabilisticTransition(loc Location, action Action, guard constraint.Constraint, targets []Target, weights []float64) *Builder {
	if b.transitions[loc] == nil {
		b.transitions[loc] = make(map[Action]Transition)
	}
	indices := make([]int, len(targets))
	for i := range targets {
		indices[i] = i
	}
	b.transitions[loc][action] = Transition{
		Guard:      guard,
		Targets:    targets,
		TargetDist: distribution.NewOrdered(indices, weights),
	}

	return b
}

// Build validates the accumulated configuration and constructs the PTA.
// Panics under the same conditions as New.
func (b *Builder) Build() *PTA {
	locSet := make(map[Location]struct{})
	for _, loc := range b.cfg.locations {
		locSet[loc] = struct{}{}
	}
	locSet[b.initialLocation] = struct{}{}
	for loc, table := range b.transitions {
		locSet[loc] = struct{}{}
		for _, tr := range table {
			for _, target := range tr.Targets {
				locSet[target.Successor] = struct{}{}
			}
		}
	}
	locations := make([]Location, 0, len(locSet))
	for loc := range locSet {
		locations = append(locations, loc)
	}

	return New(b.clocks, locations, b.initialLocation, b.transitions, b.cfg.invariants, b.cfg.labels)
}
