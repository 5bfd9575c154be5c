package mag

import "fmt"

// Ratio is a rational exponent in lowest terms with a positive
// denominator. The zero value is the rational number 0/1.
type Ratio struct {
	Num int64
	Den int64
}

// NewRatio returns num/den reduced to canonical form.
//
// Returns INVALID_ROOT for a zero denominator (a zero denominator only
// arises from requesting a zeroth root).
func NewRatio(num, den int64) (Ratio, error) {
	if den == 0 {
		return Ratio{}, &RepresentationError{
			Code:    CodeInvalidRoot,
			Message: "zero denominator in rational exponent",
		}
	}
	if den < 0 {
		num, den = -num, -den
	}
	if num == 0 {
		return Ratio{0, 1}, nil
	}
	g := gcd64(abs64(num), abs64(den))
	return Ratio{num / g, den / g}, nil
}

func gcd64(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

// wholeRatio wraps an integer as a Ratio.
func wholeRatio(n int64) Ratio {
	return Ratio{n, 1}
}

// IsZero reports whether r is 0.
func (r Ratio) IsZero() bool { return r.Num == 0 }

// IsWhole reports whether r is an integer.
func (r Ratio) IsWhole() bool { return r.Den == 1 }

// Add returns r + s in canonical form.
func (r Ratio) Add(s Ratio) Ratio {
	out, _ := NewRatio(r.Num*s.Den+s.Num*r.Den, r.Den*s.Den)
	return out
}

// Sub returns r - s in canonical form.
func (r Ratio) Sub(s Ratio) Ratio {
	out, _ := NewRatio(r.Num*s.Den-s.Num*r.Den, r.Den*s.Den)
	return out
}

// MulRatio returns r * s in canonical form.
func (r Ratio) MulRatio(s Ratio) Ratio {
	out, _ := NewRatio(r.Num*s.Num, r.Den*s.Den)
	return out
}

// Neg returns -r.
func (r Ratio) Neg() Ratio {
	return Ratio{-r.Num, r.Den}
}

// Cmp returns -1, 0, or +1 as r is less than, equal to, or greater
// than s.
func (r Ratio) Cmp(s Ratio) int {
	d := r.Num*s.Den - s.Num*r.Den
	switch {
	case d < 0:
		return -1
	case d > 0:
		return 1
	default:
		return 0
	}
}

// String renders r as "n" or "n/d".
func (r Ratio) String() string {
	if r.Den == 1 {
		return fmt.Sprintf("%d", r.Num)
	}
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}
