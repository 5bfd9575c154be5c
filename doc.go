// Package mag implements exact arithmetic over scale factors.
//
// A Magnitude represents a positive (or negated) real number as a
// canonical product of (base, rational exponent) terms, where each base is
// a validated prime or a symbolic irrational constant such as pi. Because
// the representation is symbolic, products, quotients, and rational powers
// are exact: no rounding ever happens during construction or combination,
// so values like sqrt(2) or 5^(1/3) survive arbitrarily many algebraic
// steps unchanged.
//
// Two magnitudes are equal iff their canonical term sequences are
// identical. The canonical form is maintained as an invariant: bases
// appear in a fixed strict total order, no base repeats, and no exponent
// is zero. A magnitude with no terms is the value 1. Magnitudes never
// represent zero.
//
// Rounding is deferred to the single materialization point, ValueIn (and
// its generic wrapper As), which renders a magnitude into a concrete
// numeric representation and reports, as typed outcomes, the ways that
// can fail: a non-integer value in an integral type, a negative value in
// an unsigned type, or a value outside the destination's range.
//
// Everything in this package is a pure function over immutable values.
// There is no shared state and no I/O; results may be memoized freely.
package mag
