package mag

// IntegerPart returns the integer-valued portion of m: for each prime
// term whose exponent is at least one, the floor of its exponent is
// kept; pi terms and terms with negative or sub-unit exponents
// contribute nothing. The sign marker is preserved.
func IntegerPart(m Magnitude) Magnitude {
	terms := make([]Term, 0, len(m.terms))
	for _, t := range m.terms {
		if _, ok := t.Base.(primeBase); !ok {
			continue
		}
		whole := t.Exp.Num / t.Exp.Den
		if whole >= 1 {
			terms = append(terms, Term{Base: t.Base, Exp: wholeRatio(whole)})
		}
	}
	return Magnitude{negative: m.negative, terms: terms}
}

// Numerator returns the product of the terms of m with positive
// exponents, keeping the sign marker.
func Numerator(m Magnitude) Magnitude {
	terms := make([]Term, 0, len(m.terms))
	for _, t := range m.terms {
		if t.Exp.Num > 0 {
			terms = append(terms, t)
		}
	}
	return Magnitude{negative: m.negative, terms: terms}
}

// Denominator returns the product of the terms of m with negative
// exponents, with those exponents negated. It is always positive.
func Denominator(m Magnitude) Magnitude {
	return Numerator(Inverse(Abs(m)))
}

// IsInteger reports whether m is an exact (possibly negative) integer.
func IsInteger(m Magnitude) bool {
	return Equal(m, IntegerPart(m))
}

// IsRational reports whether m is an exact ratio of integers. A
// magnitude is rational iff it equals the quotient of the integer parts
// of its numerator and denominator.
func IsRational(m Magnitude) bool {
	return Equal(m, Div(IntegerPart(Numerator(m)), IntegerPart(Denominator(m))))
}
