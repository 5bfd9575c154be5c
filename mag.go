package mag

import (
	"fmt"
	"strings"

	"github.com/unitsafe/mag/primes"
)

// Term is one (base, rational exponent) factor of a magnitude.
type Term struct {
	Base Base
	Exp  Ratio
}

// Magnitude is an exact, immutable representation of a positive or
// negated real number: an optional sign marker plus a canonical sequence
// of terms. The zero value is the magnitude 1.
//
// Canonical form invariants: bases strictly increase in the fixed base
// order, no exponent is zero. All constructors and operations preserve
// them, so equality is plain structural comparison.
type Magnitude struct {
	negative bool
	terms    []Term
}

// One is the magnitude 1: the empty product.
var One = Magnitude{}

// Pi is the magnitude of the transcendental constant pi.
var Pi = Magnitude{terms: []Term{{Base: BasePi, Exp: wholeRatio(1)}}}

// FromUint returns the magnitude of the positive integer n, as pure
// prime-power terms produced by the factorization engine.
//
// Returns BAD_INPUT for n == 0 (magnitudes never represent zero).
func FromUint(n uint64) (Magnitude, error) {
	if n == 0 {
		return Magnitude{}, &RepresentationError{
			Code:    CodeBadInput,
			Message: "magnitude cannot represent zero",
		}
	}
	factors, err := primes.Factor(n)
	if err != nil {
		return Magnitude{}, &RepresentationError{
			Code:    CodeBadInput,
			Message: fmt.Sprintf("factoring %d: %v", n, err),
		}
	}
	terms := make([]Term, 0, len(factors))
	for _, f := range factors {
		terms = append(terms, Term{
			Base: primeBase(f.Prime),
			Exp:  wholeRatio(int64(f.Power)),
		})
	}
	return Magnitude{terms: terms}, nil
}

// FromInt returns the magnitude of the nonzero integer n, negated when n
// is negative.
func FromInt(n int64) (Magnitude, error) {
	if n == 0 {
		return Magnitude{}, &RepresentationError{
			Code:    CodeBadInput,
			Message: "magnitude cannot represent zero",
		}
	}
	if n < 0 {
		m, err := FromUint(uint64(-n))
		if err != nil {
			return Magnitude{}, err
		}
		return Negate(m), nil
	}
	return FromUint(uint64(n))
}

// MustFromInt is FromInt for known-good literal inputs; it panics on
// error. Intended for package-level constants and tests.
func MustFromInt(n int64) Magnitude {
	m, err := FromInt(n)
	if err != nil {
		panic(err)
	}
	return m
}

// Terms returns a copy of the canonical term sequence, excluding the sign
// marker.
func (m Magnitude) Terms() []Term {
	out := make([]Term, len(m.terms))
	copy(out, m.terms)
	return out
}

// IsPositive reports whether m carries no sign marker.
func (m Magnitude) IsPositive() bool {
	return !m.negative
}

// Equal reports whether a and b are the same magnitude: identical sign
// and identical canonical term sequences.
func Equal(a, b Magnitude) bool {
	if a.negative != b.negative || len(a.terms) != len(b.terms) {
		return false
	}
	for i := range a.terms {
		if !basesEqual(a.terms[i].Base, b.terms[i].Base) || a.terms[i].Exp != b.terms[i].Exp {
			return false
		}
	}
	return true
}

// Compare is a strict total order over magnitudes: sign marker first
// (negated magnitudes sort before positive ones), then lexicographic
// comparison of the canonical term sequences, ordering terms by base and
// then by exponent. It is a structural order for canonicalization and
// deterministic sorting, not a numeric less-than.
func Compare(a, b Magnitude) int {
	if a.negative != b.negative {
		if a.negative {
			return -1
		}
		return 1
	}
	n := len(a.terms)
	if len(b.terms) < n {
		n = len(b.terms)
	}
	for i := 0; i < n; i++ {
		if c := compareBases(a.terms[i].Base, b.terms[i].Base); c != 0 {
			return c
		}
		if c := a.terms[i].Exp.Cmp(b.terms[i].Exp); c != 0 {
			return c
		}
	}
	switch {
	case len(a.terms) < len(b.terms):
		return -1
	case len(a.terms) > len(b.terms):
		return 1
	default:
		return 0
	}
}

// String renders the canonical form: terms joined by " * ", a leading "-"
// for the sign marker, and "1" for the empty product. Integer exponents
// print bare ("2^3"); rational ones are parenthesized ("2^(1/2)").
func (m Magnitude) String() string {
	var sb strings.Builder
	if m.negative {
		sb.WriteString("-")
	}
	if len(m.terms) == 0 {
		sb.WriteString("1")
		return sb.String()
	}
	for i, t := range m.terms {
		if i > 0 {
			sb.WriteString(" * ")
		}
		sb.WriteString(t.Base.String())
		switch {
		case t.Exp == wholeRatio(1):
			// bare base
		case t.Exp.IsWhole():
			fmt.Fprintf(&sb, "^%d", t.Exp.Num)
		default:
			fmt.Fprintf(&sb, "^(%s)", t.Exp.String())
		}
	}
	return sb.String()
}
