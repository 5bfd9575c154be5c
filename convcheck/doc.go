// Package convcheck analyzes the safety of value conversions built from
// casts, multiplications by exact magnitudes, and integer divisions.
//
// A conversion is described as an Op: a single step or a sequence of
// steps whose representations chain together. Two independent analyses
// apply to any Op:
//
//   - Overflow bounds: MinGood and MaxGood compute the tightest range of
//     input values guaranteed not to exceed the output representation's
//     limits at any step. Limits propagate back to front through a
//     sequence, so each step is constrained by everything downstream.
//
//   - Truncation risk: TruncationRiskFor classifies how a conversion can
//     silently lose precision, and WouldTruncate applies that class to a
//     concrete input value.
//
// Both analyses are pure functions of the Op description. They never
// execute the conversion.
package convcheck
