// Package constraint implements the clock-constraint algebra (§4.1) and the
// delay solver (§4.2): TRUE/FALSE, singleton bounds "c ~ n", diagonal bounds
// "c1 - c2 ~ n", and conjunctions, plus Delays(val, φ), which turns a
// constraint and a valuation into the Interval of admissible non-negative
// delays.
//
// Error handling: constructors fold impossible/tautological bounds to
// FALSE/TRUE rather than returning an error (the algebra as specified makes
// these cases total functions); Diag panics on a negative bound or on
// c1 == c2, since both can only arise from a call-site literal mistake.
//
// Thread safety: every value in this package is immutable after
// construction and safe for concurrent reads.
package constraint
