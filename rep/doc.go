// Package rep describes concrete numeric representations as values.
//
// The engine must reason about destination types (can this magnitude be
// represented in an int16? what are the safe bounds for an int32 input?)
// without being generic over every such type at every call site. Rep is
// the value-level description of a representation: its kind (signed
// integral, unsigned integral, floating point, or opaque) and its width.
// Classification happens once per value and is branched on with ordinary
// switches.
//
// Scalar is the companion value type: a sealed tagged union holding one
// number in the widest native type of its category (int64, uint64, or
// float64). Floats never silently contaminate integer arithmetic; mixed
// comparisons are exact wherever both sides are integral.
//
// Opaque reps stand for representations the engine does not understand.
// Analyses treat them conservatively: unbounded for overflow purposes,
// maximal risk for truncation purposes.
package rep
