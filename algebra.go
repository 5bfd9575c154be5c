package mag

// Mul returns the product of a and b. Term sequences merge in base
// order; exponents of shared bases add, and terms whose exponents cancel
// to zero are dropped. The sign markers combine by exclusive or.
func Mul(a, b Magnitude) Magnitude {
	terms := make([]Term, 0, len(a.terms)+len(b.terms))
	i, j := 0, 0
	for i < len(a.terms) && j < len(b.terms) {
		switch c := compareBases(a.terms[i].Base, b.terms[j].Base); {
		case c < 0:
			terms = append(terms, a.terms[i])
			i++
		case c > 0:
			terms = append(terms, b.terms[j])
			j++
		default:
			exp := a.terms[i].Exp.Add(b.terms[j].Exp)
			if !exp.IsZero() {
				terms = append(terms, Term{Base: a.terms[i].Base, Exp: exp})
			}
			i++
			j++
		}
	}
	terms = append(terms, a.terms[i:]...)
	terms = append(terms, b.terms[j:]...)
	return Magnitude{negative: a.negative != b.negative, terms: terms}
}

// Div returns a divided by b.
func Div(a, b Magnitude) Magnitude {
	return Mul(a, Inverse(b))
}

// Inverse returns the reciprocal of m: every exponent negated, the sign
// marker kept (the reciprocal of a negated magnitude is negated).
func Inverse(m Magnitude) Magnitude {
	terms := make([]Term, len(m.terms))
	for i, t := range m.terms {
		terms[i] = Term{Base: t.Base, Exp: t.Exp.Neg()}
	}
	return Magnitude{negative: m.negative, terms: terms}
}

// Negate flips the sign marker of m.
func Negate(m Magnitude) Magnitude {
	m.terms = append([]Term(nil), m.terms...)
	m.negative = !m.negative
	return m
}

// Abs returns m with the sign marker cleared.
func Abs(m Magnitude) Magnitude {
	m.terms = append([]Term(nil), m.terms...)
	m.negative = false
	return m
}

// Sign returns +1 for a positive magnitude and -1 for a negated one.
// Magnitudes are never zero.
func Sign(m Magnitude) int {
	if m.negative {
		return -1
	}
	return 1
}

// Pow raises m to the rational power num/den.
//
// Every term's exponent is multiplied by the reduced ratio. For a
// negated magnitude the reduced denominator must be odd (even roots of
// negative reals are not representable; INVALID_ROOT otherwise), and the
// sign marker survives exactly when the reduced numerator is odd.
// den == 0 is INVALID_ROOT. num == 0 yields One.
func Pow(m Magnitude, num, den int64) (Magnitude, error) {
	r, err := NewRatio(num, den)
	if err != nil {
		return Magnitude{}, err
	}
	if r.IsZero() {
		return One, nil
	}
	negative := m.negative
	if m.negative {
		if r.Den%2 == 0 {
			return Magnitude{}, &RepresentationError{
				Code:      CodeInvalidRoot,
				Message:   "even root of a negative magnitude",
				Magnitude: m.String(),
			}
		}
		negative = r.Num%2 != 0
	}
	terms := make([]Term, 0, len(m.terms))
	for _, t := range m.terms {
		exp := t.Exp.MulRatio(r)
		if !exp.IsZero() {
			terms = append(terms, Term{Base: t.Base, Exp: exp})
		}
	}
	return Magnitude{negative: negative, terms: terms}, nil
}

// Root returns the nth root of m; it is Pow(m, 1, n).
func Root(m Magnitude, n int64) (Magnitude, error) {
	return Pow(m, 1, n)
}
