// Package regionmdp exposes a PTA as a step-based environment: Driver holds
// the current (location, Region) pair and advances it by Delay/DelaySteps
// and Step, suitable for controllers and reinforcement-learning agents.
package regionmdp
