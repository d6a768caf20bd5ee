// Package region implements symbolic clock-valuation equivalence classes
// used by automaton and regionmdp to drive a PTA without ever storing a
// dense real-valued clock.
package region
