// Package automaton holds the static Probabilistic Timed Automaton model
// consumed by regionmdp. See PTA and Builder.
package automaton
