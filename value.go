package mag

import (
	"math"

	"github.com/unitsafe/mag/rep"
)

// checkedUintPow computes base**exp in uint64, reporting overflow.
func checkedUintPow(base, exp uint64) (uint64, bool) {
	result := uint64(1)
	for exp > 0 {
		if exp%2 == 1 {
			if base != 0 && result > math.MaxUint64/base {
				return 0, false
			}
			result *= base
		}
		exp /= 2
		if exp > 0 {
			if base > math.MaxUint64/base {
				return 0, false
			}
			base *= base
		}
	}
	return result, true
}

func cannotFit(m Magnitude, r rep.Rep) error {
	return &RepresentationError{
		Code:      CodeCannotFit,
		Message:   "magnitude exceeds the representable range",
		Magnitude: m.String(),
		Rep:       r.String(),
	}
}

// integerValue materializes an integer magnitude's absolute value as a
// uint64 product of checked prime powers.
func integerValue(m Magnitude, r rep.Rep) (uint64, error) {
	acc := uint64(1)
	for _, t := range m.terms {
		p := uint64(t.Base.(primeBase))
		pow, ok := checkedUintPow(p, uint64(t.Exp.Num))
		if !ok {
			return 0, cannotFit(m, r)
		}
		if pow != 0 && acc > math.MaxUint64/pow {
			return 0, cannotFit(m, r)
		}
		acc *= pow
	}
	return acc, nil
}

// floatValue materializes m's absolute value as a float64, one
// math.Pow per term. Each factor and each running product is finite or
// the magnitude does not fit.
func floatValue(m Magnitude, r rep.Rep) (float64, error) {
	acc := 1.0
	for _, t := range m.terms {
		factor := math.Pow(t.Base.Value(), float64(t.Exp.Num)/float64(t.Exp.Den))
		if math.IsInf(factor, 0) {
			return 0, cannotFit(m, r)
		}
		acc *= factor
		if math.IsInf(acc, 0) {
			return 0, cannotFit(m, r)
		}
	}
	return acc, nil
}

// ValueIn materializes m as a value of representation r. This is the
// single point at which a symbolic magnitude becomes a machine number.
//
// Integral targets admit only exact integers and compute the result by
// checked integer arithmetic. Float targets evaluate each term with one
// floating power, the closest approximation the representation offers.
// Failures carry one of the closed representation error codes.
func ValueIn(m Magnitude, r rep.Rep) (rep.Scalar, error) {
	if r.Kind == rep.KindOpaque {
		return rep.Scalar{}, &RepresentationError{
			Code:      CodeBadInput,
			Message:   "cannot materialize into an opaque representation",
			Magnitude: m.String(),
			Rep:       r.String(),
		}
	}
	if m.negative && r.Kind == rep.KindUint {
		return rep.Scalar{}, &RepresentationError{
			Code:      CodeNegativeInUnsignedType,
			Message:   "negative magnitude in unsigned representation",
			Magnitude: m.String(),
			Rep:       r.String(),
		}
	}
	if r.IsIntegral() {
		if !IsInteger(m) {
			return rep.Scalar{}, &RepresentationError{
				Code:      CodeNonIntegerInIntegerType,
				Message:   "non-integer magnitude in integer representation",
				Magnitude: m.String(),
				Rep:       r.String(),
			}
		}
		abs, err := integerValue(m, r)
		if err != nil {
			return rep.Scalar{}, err
		}
		if r.Kind == rep.KindUint {
			if r.Bits < 64 && abs > uint64(1)<<r.Bits-1 {
				return rep.Scalar{}, cannotFit(m, r)
			}
			return rep.UintScalar(abs), nil
		}
		// Signed. Two's complement reaches one further down, so the
		// negative side admits abs == 2^(bits-1).
		var limit uint64 = math.MaxInt64
		if r.Bits < 64 {
			limit = uint64(1)<<(r.Bits-1) - 1
		}
		if m.negative {
			if abs > limit+1 {
				return rep.Scalar{}, cannotFit(m, r)
			}
			return rep.IntScalar(-int64(abs-1) - 1), nil
		}
		if abs > limit {
			return rep.Scalar{}, cannotFit(m, r)
		}
		return rep.IntScalar(int64(abs)), nil
	}
	abs, err := floatValue(m, r)
	if err != nil {
		return rep.Scalar{}, err
	}
	if r.Bits == 32 && abs > math.MaxFloat32 {
		return rep.Scalar{}, cannotFit(m, r)
	}
	v := abs
	if m.negative {
		v = -v
	}
	if r.Bits == 32 {
		return rep.FloatScalar(float64(float32(v))), nil
	}
	return rep.FloatScalar(v), nil
}

// As materializes m as a native Go numeric type.
func As[T rep.Native](m Magnitude) (T, error) {
	s, err := ValueIn(m, rep.RepOf[T]())
	if err != nil {
		var zero T
		return zero, err
	}
	return rep.AsNative[T](s), nil
}
