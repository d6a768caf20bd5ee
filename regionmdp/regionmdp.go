// Package regionmdp drives a PTA step by step as a region-based Markov
// Decision Process: a stateful (location, Region) pair advanced by delays
// and probabilistically-resolved edges.
package regionmdp

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pta/automaton"
	"github.com/katalvlaran/pta/constraint"
	"github.com/katalvlaran/pta/distribution"
	"github.com/katalvlaran/pta/region"
)

// Status is the driver's state-machine label: "Running" or
// "InvariantViolated".
type Status int

const (
	// Running is the normal operating state.
	Running Status = iota
	// InvariantViolated is the terminal state entered when a delay would
	// leave the current location's invariant unsatisfied. Only Reset
	// returns the driver to Running.
	InvariantViolated
)

// String renders the Status for diagnostics.
func (s Status) String() string {
	switch s {
	case Running:
		return "Running"
	case InvariantViolated:
		return "InvariantViolated"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// State is a snapshot of the driver's observable state: the current
// location, a valuation snapshot, and the driver's Status.
type State struct {
	Location automaton.Location
	Val      constraint.Valuation
	Status   Status
}

var (
	// ErrActionNotEnabled indicates step was called with an action not in
	// the current EnabledActions() set — a caller bug.
	ErrActionNotEnabled = errors.New("regionmdp: action is not enabled in the current state")
	// ErrNegativeDelay indicates Delay was called with t < 0.
	ErrNegativeDelay = errors.New("regionmdp: delay must be non-negative")
	// ErrNotRunning indicates Delay or Step was called while the driver is
	// in the InvariantViolated terminal state; only Reset is valid there.
	ErrNotRunning = errors.New("regionmdp: driver is not in the Running state")
)

// RNG is the minimal random source Step needs to resolve a transition's
// probabilistic target.
type RNG = distribution.RNG

// Driver holds (currentLocation, Region, PTA) and exposes the Region-MDP
// step protocol. A Driver is owned by exactly one caller; it is not safe
// for concurrent use.
type Driver struct {
	pta    *automaton.PTA
	reg    *region.Region
	loc    automaton.Location
	status Status
}

// New constructs a Driver over pta, positioned at its initial location with
// an all-zero Region, in the Running state.
func New(pta *automaton.PTA) *Driver {
	d := &Driver{
		pta: pta,
		reg: region.New(pta.Clocks()),
	}
	d.Reset()

	return d
}

// Reset returns the driver to (initialLocation, allZeros), and to the
// Running state.
func (d *Driver) Reset() State {
	d.loc = d.pta.InitialLocation()
	d.reg.Reinit()
	d.status = Running

	return d.CurrentState()
}

// CurrentState returns the driver's current observable state.
func (d *Driver) CurrentState() State {
	return State{Location: d.loc, Val: d.reg.Valuation(), Status: d.status}
}

// EnabledActions returns the transitions out of the current location whose
// guard is satisfied by the current valuation.
func (d *Driver) EnabledActions() map[automaton.Action]automaton.Transition {
	return d.pta.EnabledActions(d.loc, d.reg.Valuation())
}

// AllowedDelays returns the set of non-negative delays after which the
// current location's invariant still holds.
func (d *Driver) AllowedDelays() constraint.Interval {
	return d.pta.AllowedDelays(d.loc, d.reg.Valuation())
}

// Delay advances time by t (a real, non-negative amount). If t lies outside
// AllowedDelays(), the driver transitions to InvariantViolated and the
// returned State reflects that — delay is never applied in that case. If
// the driver is already not Running, or t < 0, Delay returns an error
// instead of mutating state: scheduler errors return to the caller, while
// invariant violation is a distinguished state, not an error.
func (d *Driver) Delay(t float64) (State, error) {
	if d.status != Running {
		return d.CurrentState(), ErrNotRunning
	}
	if t < 0 {
		return d.CurrentState(), ErrNegativeDelay
	}

	if !d.AllowedDelays().Contains(t) {
		d.status = InvariantViolated

		return d.CurrentState(), nil
	}

	d.reg.DelayReal(t)

	return d.CurrentState(), nil
}

// DelaySteps advances time by k integer region-graph steps, the discrete
// counterpart of Delay for callers that already know k. It applies the
// same allowed-delay check as Delay, evaluated at the real-time equivalent
// by checking the resulting valuation is still inside the invariant via the
// same Region.
func (d *Driver) DelaySteps(k int) (State, error) {
	if d.status != Running {
		return d.CurrentState(), ErrNotRunning
	}
	if k < 0 {
		return d.CurrentState(), ErrNegativeDelay
	}

	probe := d.reg.Clone()
	probe.DelaySteps(k)
	if !constraint.Satisfies(probe.Valuation(), d.pta.Invariant(d.loc)) {
		d.status = InvariantViolated

		return d.CurrentState(), nil
	}

	d.reg.DelaySteps(k)

	return d.CurrentState(), nil
}

// Step requires action to be enabled in the current state, draws a single
// target from its distribution using rng, resets the target's clocks, and
// moves to the target's successor location. Returns ErrActionNotEnabled
// (and leaves state unchanged) if action is not currently enabled, or
// ErrNotRunning if the driver is in InvariantViolated.
func (d *Driver) Step(action automaton.Action, rng RNG) (State, error) {
	if d.status != Running {
		return d.CurrentState(), ErrNotRunning
	}

	enabled := d.EnabledActions()
	tr, ok := enabled[action]
	if !ok {
		return d.CurrentState(), fmt.Errorf("%w: %v", ErrActionNotEnabled, action)
	}

	target := tr.Sample(rng)

	for _, c := range target.ResetClocks {
		d.reg.Reset(c)
	}
	d.loc = target.Successor

	return d.CurrentState(), nil
}
