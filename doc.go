// Package pta is your in-memory playground for building and simulating
// Probabilistic Timed Automata (PTA) in Go.
//
// 🚀 What is pta?
//
//	A modern, zero-IO, single-threaded library that brings together:
//
//	  • Clock constraints: a small immutable algebra over clock bounds and
//	    differences, plus a delay solver that turns a constraint into an
//	    admissible interval of non-negative delays.
//	  • Regions: the canonical, finite representation of an equivalence
//	    class of dense-time clock valuations (Hartmanns, Sedwards &
//	    D'Argenio, WSC 2017), supporting integer-step and real-time delays
//	    and clock resets in closed form.
//	  • PTA models: static descriptions of locations, clocks, guarded and
//	    probabilistically-targeted transitions, and invariants.
//	  • Region-MDP driver: a stateful step-based simulator over a PTA,
//	    suitable for controllers and reinforcement-learning agents.
//
// ✨ Why choose pta?
//
//   - Deterministic        — no hidden clocks, no wall-clock time, no IO
//   - Exact                — regions avoid floating-point drift in the
//     control-flow-relevant parts of the state
//   - Extensible           — bring your own Distribution and RNG
//   - Pure Go              — no cgo, no hidden dependencies
//
// Under the hood, everything is organized under subpackages:
//
//	clock/        — opaque clock identity
//	constraint/   — clock-constraint algebra, intervals, the delay solver
//	distribution/ — finite-support probability distributions over targets
//	region/       — the canonical Region data structure
//	automaton/    — static PTA model and a functional-options Builder
//	regionmdp/    — the stateful Region-MDP driver
//
// Quick example:
//
//	x := clock.New("x")
//	guard := constraint.AtLeast(x, 2)
//	// ... build a PTA, wrap it in a Region-MDP, delay and step.
//
// Dive into DESIGN.md for the grounding of every package in this repository.
//
//	go get github.com/katalvlaran/pta
package pta
