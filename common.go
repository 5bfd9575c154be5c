package mag

// commonTerms walks two canonical term sequences in base order and keeps,
// for each base, the smaller of the two exponents, treating an absent
// term as exponent zero. The result divides both inputs' fractional
// structure: it is the largest magnitude for which both quotients are
// nonnegative powers.
func commonTerms(a, b []Term) []Term {
	var out []Term
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch c := compareBases(a[i].Base, b[j].Base); {
		case c < 0:
			if a[i].Exp.Num < 0 {
				out = append(out, a[i])
			}
			i++
		case c > 0:
			if b[j].Exp.Num < 0 {
				out = append(out, b[j])
			}
			j++
		default:
			exp := a[i].Exp
			if b[j].Exp.Cmp(exp) < 0 {
				exp = b[j].Exp
			}
			out = append(out, Term{Base: a[i].Base, Exp: exp})
			i++
			j++
		}
	}
	for ; i < len(a); i++ {
		if a[i].Exp.Num < 0 {
			out = append(out, a[i])
		}
	}
	for ; j < len(b); j++ {
		if b[j].Exp.Num < 0 {
			out = append(out, b[j])
		}
	}
	return out
}

// CommonMagnitude returns the largest magnitude that evenly divides all
// of ms: per base, the minimum exponent across the inputs (absent terms
// counting as zero, so only negative exponents survive from one side).
// The result is negated only when every input is negated. With no
// arguments it returns One.
func CommonMagnitude(ms ...Magnitude) Magnitude {
	if len(ms) == 0 {
		return One
	}
	acc := ms[0]
	for _, m := range ms[1:] {
		acc = Magnitude{
			negative: acc.negative && m.negative,
			terms:    commonTerms(acc.terms, m.terms),
		}
	}
	return acc
}
