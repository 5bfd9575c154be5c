package convcheck

import (
	"errors"

	"github.com/unitsafe/mag"
	"github.com/unitsafe/mag/rep"
)

// ErrUnassessable reports that overflow bounds cannot be computed
// because an op touches an opaque (unbounded) representation.
var ErrUnassessable = errors.New("convcheck: overflow bounds unassessable for opaque representation")

// limitPair constrains an op's output from downstream. A nil *limitPair
// means the output representation's own range.
type limitPair struct {
	lower, upper rep.Scalar
}

func lowerLimit(r rep.Rep, lim *limitPair) rep.Scalar {
	if lim != nil {
		return lim.lower
	}
	return r.Lowest()
}

func upperLimit(r rep.Rep, lim *limitPair) rep.Scalar {
	if lim != nil {
		return lim.upper
	}
	return r.Highest()
}

// MinGood returns the smallest input value for which op is guaranteed
// not to exceed its bounds at any step. The result is never positive.
func MinGood(op Op) (rep.Scalar, error) {
	return minGood(op, nil)
}

// MaxGood returns the largest input value for which op is guaranteed not
// to exceed its bounds at any step. The result is never negative.
func MaxGood(op Op) (rep.Scalar, error) {
	return maxGood(op, nil)
}

// WouldOverflow reports whether feeding x into op could exceed the
// bounds of any step. Unassessable ops conservatively report false here;
// the truncation-risk analysis covers them with CannotAssess.
func WouldOverflow(op Op, x rep.Scalar) bool {
	min, err := MinGood(op)
	if err != nil {
		return false
	}
	max, err := MaxGood(op)
	if err != nil {
		return false
	}
	return x.Compare(min) < 0 || x.Compare(max) > 0
}

func minGood(op Op, lim *limitPair) (rep.Scalar, error) {
	switch o := op.(type) {
	case castOp:
		return minGoodCast(o.from, o.to, lim)
	case multiplyOp:
		return minGoodMultiply(o.r, o.m, lim)
	case divideOp:
		if o.r.Kind == rep.KindOpaque {
			return rep.Scalar{}, ErrUnassessable
		}
		if o.r.Kind == rep.KindUint {
			return o.r.Zero(), nil
		}
		return clampLowestOfLimitsTimesInverseValue(o.r, mag.Inverse(o.m), lim)
	case sequenceOp:
		rest, err := limitsForTail(o.ops, lim)
		if err != nil {
			return rep.Scalar{}, err
		}
		return minGood(o.ops[0], rest)
	default:
		return rep.Scalar{}, ErrUnassessable
	}
}

func maxGood(op Op, lim *limitPair) (rep.Scalar, error) {
	switch o := op.(type) {
	case castOp:
		return maxGoodCast(o.from, o.to, lim)
	case multiplyOp:
		return maxGoodMultiply(o.r, o.m, lim)
	case divideOp:
		if o.r.Kind == rep.KindOpaque {
			return rep.Scalar{}, ErrUnassessable
		}
		if o.r.Kind == rep.KindUint && !o.m.IsPositive() {
			return o.r.Zero(), nil
		}
		return clampHighestOfLimitsTimesInverseValue(o.r, mag.Inverse(o.m), lim)
	case sequenceOp:
		rest, err := limitsForTail(o.ops, lim)
		if err != nil {
			return rep.Scalar{}, err
		}
		return maxGood(o.ops[0], rest)
	default:
		return rep.Scalar{}, ErrUnassessable
	}
}

// limitsForTail turns the bounds of ops[1:] into the output limits for
// ops[0]. This is where limits propagate back to front.
func limitsForTail(ops []Op, lim *limitPair) (*limitPair, error) {
	if len(ops) == 1 {
		return lim, nil
	}
	tail := sequenceOp{ops: ops[1:]}
	lower, err := minGood(tail, lim)
	if err != nil {
		return nil, err
	}
	upper, err := maxGood(tail, lim)
	if err != nil {
		return nil, err
	}
	return &limitPair{lower: lower, upper: upper}, nil
}

// =============================================================================
// Magnitude helpers
// =============================================================================

// absProbablyBiggerThanOne reports whether |m| is at least 1 when
// viewed from representation r. A magnitude too big to fit counts as
// bigger than one; one that fails for any other reason does not.
func absProbablyBiggerThanOne(m mag.Magnitude, r rep.Rep) bool {
	v, err := mag.ValueIn(mag.Abs(m), r)
	if err != nil {
		return mag.IsCannotFit(err)
	}
	return v.Compare(r.One()) >= 0
}

// compatibleApartFromMaybeOverflow reports whether m is representable in
// r, overflow aside. A non-integer magnitude in an integral
// representation, for example, is incompatible outright.
func compatibleApartFromMaybeOverflow(m mag.Magnitude, r rep.Rep) bool {
	_, err := mag.ValueIn(m, r)
	return err == nil || mag.IsCannotFit(err)
}

// divideByMag divides x by the value of m in representation r. Dividing
// by a magnitude too big to fit in r yields 0.
func divideByMag(x rep.Scalar, m mag.Magnitude, r rep.Rep) rep.Scalar {
	v, err := mag.ValueIn(m, r)
	if err != nil {
		return r.Zero()
	}
	return x.Div(v)
}

func magValueEquals(x rep.Scalar, m mag.Magnitude, r rep.Rep) bool {
	v, err := mag.ValueIn(m, r)
	if err != nil {
		return false
	}
	return x.Compare(v) == 0
}

// =============================================================================
// MultiplyBy bounds
// =============================================================================

func clampingRequired(m mag.Magnitude, r rep.Rep) bool {
	return !absProbablyBiggerThanOne(m, r) && r.IsBounded()
}

func minGoodMultiply(r rep.Rep, m mag.Magnitude, lim *limitPair) (rep.Scalar, error) {
	if r.Kind == rep.KindOpaque {
		return rep.Scalar{}, ErrUnassessable
	}
	if r.Kind == rep.KindUint {
		return r.Zero(), nil
	}
	if !compatibleApartFromMaybeOverflow(m, r) {
		return r.Zero(), nil
	}
	if clampingRequired(m, r) {
		return clampLowestOfLimitsTimesInverseValue(r, m, lim)
	}
	return lowestOfLimitsDividedByValue(r, m, lim), nil
}

func maxGoodMultiply(r rep.Rep, m mag.Magnitude, lim *limitPair) (rep.Scalar, error) {
	if r.Kind == rep.KindOpaque {
		return rep.Scalar{}, ErrUnassessable
	}
	if r.Kind == rep.KindUint && !m.IsPositive() {
		return r.Zero(), nil
	}
	if !compatibleApartFromMaybeOverflow(m, r) {
		return r.Zero(), nil
	}
	if clampingRequired(m, r) {
		return clampHighestOfLimitsTimesInverseValue(r, m, lim)
	}
	return highestOfLimitsDividedByValue(r, m, lim), nil
}

// lowestOfLimitsDividedByValue handles the shrinking case, where |m| is
// at least 1 so dividing a limit by m cannot overflow. A negative m
// makes the upper limit the relevant one.
func lowestOfLimitsDividedByValue(r rep.Rep, m mag.Magnitude, lim *limitPair) rep.Scalar {
	relevant := lowerLimit(r, lim)
	if !m.IsPositive() {
		relevant = upperLimit(r, lim)
	}
	return divideByMag(relevant, m, r)
}

// highestOfLimitsDividedByValue mirrors lowestOfLimitsDividedByValue for
// the upper bound. When the lower limit exactly equals m, the bound is 1
// rather than the truncated quotient.
func highestOfLimitsDividedByValue(r rep.Rep, m mag.Magnitude, lim *limitPair) rep.Scalar {
	if magValueEquals(lowerLimit(r, lim), m, r) {
		return r.One()
	}
	if m.IsPositive() {
		return divideByMag(upperLimit(r, lim), m, r)
	}
	return divideByMag(lowerLimit(r, lim), mag.Abs(m), r).NegClamped(r)
}

// clampLowestOfLimitsTimesInverseValue handles the growing case: |m|
// below 1 means multiplying by its inverse can overflow, so the bound
// starts from the representation's own range and backs out the most
// extreme limit that stays inside it.
func clampLowestOfLimitsTimesInverseValue(r rep.Rep, m mag.Magnitude, lim *limitPair) (rep.Scalar, error) {
	absDivisor := mag.Inverse(mag.Abs(m))

	relevantLimit := lowerLimit(r, lim)
	if !m.IsPositive() {
		relevantLimit = upperLimit(r, lim).NegClamped(r)
	}

	var relevantBound rep.Scalar
	if m.IsPositive() {
		relevantBound = divideByMag(r.Lowest(), absDivisor, r)
	} else {
		relevantBound = divideByMag(r.Highest(), absDivisor, r).NegClamped(r)
	}

	if relevantBound.Compare(relevantLimit) >= 0 {
		return r.Lowest(), nil
	}
	v, err := mag.ValueIn(absDivisor, r)
	if err != nil {
		return rep.Scalar{}, err
	}
	return relevantLimit.Mul(v), nil
}

func clampHighestOfLimitsTimesInverseValue(r rep.Rep, m mag.Magnitude, lim *limitPair) (rep.Scalar, error) {
	absDivisor := mag.Inverse(mag.Abs(m))

	relevantLimit := upperLimit(r, lim)
	if !m.IsPositive() {
		relevantLimit = lowerLimit(r, lim).NegClamped(r)
	}

	var relevantBound rep.Scalar
	if m.IsPositive() {
		relevantBound = divideByMag(r.Highest(), absDivisor, r)
	} else {
		relevantBound = divideByMag(r.Lowest(), absDivisor, r).NegClamped(r)
	}

	if relevantBound.Compare(relevantLimit) <= 0 {
		return r.Highest(), nil
	}
	v, err := mag.ValueIn(absDivisor, r)
	if err != nil {
		return rep.Scalar{}, err
	}
	return relevantLimit.Mul(v), nil
}

// =============================================================================
// Cast bounds
// =============================================================================

func minGoodCast(from, to rep.Rep, lim *limitPair) (rep.Scalar, error) {
	if from.Kind == rep.KindOpaque || to.Kind == rep.KindOpaque {
		return rep.Scalar{}, ErrUnassessable
	}
	switch {
	case from.Kind == rep.KindUint:
		return sourceLowestUnlessDestLimitIsHigher(from, to, lim), nil
	case from.Kind == rep.KindInt:
		switch to.Kind {
		case rep.KindUint:
			return from.Zero(), nil
		case rep.KindInt:
			if from.Bits <= to.Bits {
				return sourceLowestUnlessDestLimitIsHigher(from, to, lim), nil
			}
			return lowerLimit(to, lim).ConvertTo(from), nil
		default:
			return sourceLowestUnlessDestLimitIsHigher(from, to, lim), nil
		}
	default:
		// Floating-point source.
		if to.Kind == rep.KindFloat {
			if from.Bits <= to.Bits {
				return sourceLowestUnlessDestLimitIsHigher(from, to, lim), nil
			}
			return lowerLimit(to, lim).ConvertTo(from), nil
		}
		return lowerLimit(to, lim).ConvertTo(from), nil
	}
}

func maxGoodCast(from, to rep.Rep, lim *limitPair) (rep.Scalar, error) {
	if from.Kind == rep.KindOpaque || to.Kind == rep.KindOpaque {
		return rep.Scalar{}, ErrUnassessable
	}
	if from.IsIntegral() {
		if to.IsIntegral() {
			// Compare the two maxima exactly; both are positive.
			if from.Highest().Compare(to.Highest()) <= 0 {
				return sourceHighestUnlessDestLimitIsLower(from, to, lim), nil
			}
			return upperLimit(to, lim).ConvertTo(from), nil
		}
		return sourceHighestUnlessDestLimitIsLower(from, to, lim), nil
	}
	// Floating-point source.
	if to.Kind == rep.KindFloat {
		if from.Bits <= to.Bits {
			return sourceHighestUnlessDestLimitIsLower(from, to, lim), nil
		}
		return upperLimit(to, lim).ConvertTo(from), nil
	}
	return maxFloatNotExceedingIntLimit(from, to, lim), nil
}

// sourceLowestUnlessDestLimitIsHigher compares the source's lowest value
// against the destination-side limit, in the destination's scalar
// category, and returns the tighter bound expressed in the source.
func sourceLowestUnlessDestLimitIsHigher(from, to rep.Rep, lim *limitPair) rep.Scalar {
	lowestInDest := from.Lowest().ConvertTo(to)
	limit := lowerLimit(to, lim)
	if lowestInDest.Compare(limit) <= 0 {
		return limit.ConvertTo(from)
	}
	return from.Lowest()
}

func sourceHighestUnlessDestLimitIsLower(from, to rep.Rep, lim *limitPair) rep.Scalar {
	highestInDest := from.Highest().ConvertTo(to)
	limit := upperLimit(to, lim)
	if highestInDest.Compare(limit) >= 0 {
		return limit.ConvertTo(from)
	}
	return from.Highest()
}

// maxFloatNotExceedingIntLimit caps a float source at the highest float
// value that casts into the integer destination without exceeding it.
// Integer maxima are not powers of two, so the float closest to the max
// can sit slightly above it; the walk below stays at exactly
// representable values throughout.
func maxFloatNotExceedingIntLimit(from, to rep.Rep, lim *limitPair) rep.Scalar {
	var floatLimit float64
	if from.Bits == 32 {
		floatLimit = float64(floatCapForInt[float32](float32(to.Highest().Float())))
	} else {
		floatLimit = floatCapForInt[float64](to.Highest().Float())
	}
	explicit := float64(upperLimit(to, lim).Float())
	if from.Bits == 32 {
		explicit = float64(float32(explicit))
	}
	if floatLimit <= explicit {
		return rep.FloatScalar(floatLimit)
	}
	return rep.FloatScalar(explicit)
}

// floatCapForInt computes, within F's own arithmetic, the largest F not
// exceeding intMax. Below the max-mantissa value every integer is exactly
// representable; above it the walk doubles from the max mantissa, which
// keeps every intermediate exact.
func floatCapForInt[F float32 | float64](intMax F) F {
	one := F(1)
	x := one
	last := x
	for x+one > x {
		last = x
		x += x + one
	}
	maxMantissa := last

	if intMax <= maxMantissa {
		return intMax
	}
	x = maxMantissa
	for x+x < intMax {
		x += x
	}
	return x
}
