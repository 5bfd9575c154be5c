package convcheck

import (
	"fmt"
	"math"

	"github.com/unitsafe/mag"
	"github.com/unitsafe/mag/rep"
)

// RiskClass ranks how severely a conversion can truncate. Higher classes
// are strictly worse; the class values leave room for refinement without
// reordering.
type RiskClass int

const (
	// NoRisk: the conversion can never lose precision.
	NoRisk RiskClass = 0

	// ValueTimesRatioNotInteger: the conversion truncates exactly when
	// the input times an associated ratio is not an integer.
	ValueTimesRatioNotInteger RiskClass = 10

	// ValueIsNotZero: every nonzero input truncates.
	ValueIsNotZero RiskClass = 20

	// CannotAssess: the analysis cannot see into the conversion; every
	// input is treated as truncating.
	CannotAssess RiskClass = 1000
)

// Risk is the truncation-risk classification of an Op, evaluated against
// the op's input representation.
type Risk struct {
	class RiskClass
	ratio mag.Magnitude // meaningful only for ValueTimesRatioNotInteger
	rep   rep.Rep
}

// Class returns the risk's severity class.
func (r Risk) Class() RiskClass { return r.class }

// Ratio returns the associated ratio for a ValueTimesRatioNotInteger
// risk. For every other class it is 1.
func (r Risk) Ratio() mag.Magnitude { return r.ratio }

func (r Risk) String() string {
	switch r.class {
	case NoRisk:
		return "no-risk"
	case ValueTimesRatioNotInteger:
		return fmt.Sprintf("value-times-%s-not-integer", r.ratio)
	case ValueIsNotZero:
		return "value-not-zero"
	default:
		return "cannot-assess"
	}
}

func noRisk(r rep.Rep) Risk      { return Risk{class: NoRisk, ratio: mag.One, rep: r} }
func notZeroRisk(r rep.Rep) Risk { return Risk{class: ValueIsNotZero, ratio: mag.One, rep: r} }
func cannotAssess(r rep.Rep) Risk {
	return Risk{class: CannotAssess, ratio: mag.One, rep: r}
}

// ratioRisk builds a ValueTimesRatioNotInteger risk, first reducing the
// trivial case: an integer ratio applied to an integral representation
// cannot truncate.
func ratioRisk(r rep.Rep, m mag.Magnitude) Risk {
	if mag.IsInteger(m) && r.IsIntegral() {
		return noRisk(r)
	}
	return Risk{class: ValueTimesRatioNotInteger, ratio: m, rep: r}
}

// TruncationRiskFor classifies how op can silently lose precision, as a
// predicate over op input values.
func TruncationRiskFor(op Op) Risk {
	switch o := op.(type) {
	case castOp:
		return castRisk(o.from, o.to)
	case multiplyOp:
		return multiplyRisk(o.r, o.m)
	case divideOp:
		return divideRisk(o.r, o.m)
	case sequenceOp:
		risk := TruncationRiskFor(o.ops[len(o.ops)-1])
		for i := len(o.ops) - 2; i >= 0; i-- {
			risk = biggestRisk(updateRisk(o.ops[i], risk), TruncationRiskFor(o.ops[i]))
		}
		return risk
	default:
		return cannotAssess(op.InputRep())
	}
}

func castRisk(from, to rep.Rep) Risk {
	if from.Kind == rep.KindOpaque || to.Kind == rep.KindOpaque {
		return cannotAssess(from)
	}
	if from.IsFloat() && to.IsIntegral() {
		// Truncates unless the input is already an integer.
		return ratioRisk(from, mag.One)
	}
	return noRisk(from)
}

func multiplyRisk(r rep.Rep, m mag.Magnitude) Risk {
	if r.Kind == rep.KindOpaque {
		return cannotAssess(r)
	}
	if !mag.IsRational(m) {
		if r.IsIntegral() {
			return notZeroRisk(r)
		}
		return noRisk(r)
	}
	if mag.IsInteger(m) || r.IsFloat() {
		return noRisk(r)
	}
	if _, err := mag.ValueIn(mag.Denominator(m), r); mag.IsCannotFit(err) {
		return notZeroRisk(r)
	}
	return ratioRisk(r, m)
}

func divideRisk(r rep.Rep, m mag.Magnitude) Risk {
	if r.Kind == rep.KindOpaque {
		return cannotAssess(r)
	}
	if r.IsFloat() {
		return noRisk(r)
	}
	if _, err := mag.ValueIn(m, r); mag.IsCannotFit(err) {
		return notZeroRisk(r)
	}
	return ratioRisk(r, mag.Inverse(m))
}

// updateRisk adapts a downstream risk to the input side of op. At
// minimum the representation changes to op's input; ratio risks also
// fold op's own scaling into the ratio.
func updateRisk(op Op, downstream Risk) Risk {
	switch o := op.(type) {
	case castOp:
		if downstream.class == ValueTimesRatioNotInteger {
			return ratioRisk(o.from, downstream.ratio)
		}
		downstream.rep = o.from
		return downstream
	case multiplyOp:
		if downstream.class == ValueTimesRatioNotInteger {
			if mag.IsRational(o.m) {
				return ratioRisk(o.r, mag.Mul(o.m, downstream.ratio))
			}
			return notZeroRisk(o.r)
		}
		return downstream
	case divideOp:
		if downstream.class == ValueTimesRatioNotInteger {
			return ratioRisk(o.r, mag.Div(downstream.ratio, o.m))
		}
		return downstream
	default:
		return downstream
	}
}

// biggestRisk picks the more severe of two risks: higher class wins, and
// within the ratio class the larger denominator wins.
func biggestRisk(a, b Risk) Risk {
	if a.class != b.class {
		if a.class > b.class {
			return a
		}
		return b
	}
	if denominatorValue(a) >= denominatorValue(b) {
		return a
	}
	return b
}

func denominatorValue(r Risk) uint64 {
	v, err := mag.ValueIn(mag.Denominator(r.ratio), rep.Uint64)
	if err != nil {
		return math.MaxUint64
	}
	return v.Uint()
}

// WouldTruncate reports whether feeding x into the classified conversion
// would lose precision.
func WouldTruncate(risk Risk, x rep.Scalar) bool {
	switch risk.class {
	case NoRisk:
		return false
	case ValueIsNotZero:
		return !x.IsZero()
	case CannotAssess:
		return true
	}

	// ValueTimesRatioNotInteger.
	if risk.rep.IsIntegral() {
		d, err := mag.ValueIn(mag.Denominator(risk.ratio), risk.rep)
		if err != nil {
			return !x.IsZero()
		}
		return !x.Mod(d).IsZero()
	}

	// Float input: prefer an exact division when the inverse ratio is an
	// integer, since its value is exactly representable far more often.
	inv := mag.Inverse(risk.ratio)
	if mag.IsInteger(inv) {
		v, err := mag.ValueIn(inv, risk.rep)
		if err != nil {
			return true
		}
		q := x.Div(v)
		return q.Compare(q.Trunc()) != 0
	}
	v, err := mag.ValueIn(risk.ratio, risk.rep)
	if err != nil {
		return true
	}
	p := x.Mul(v)
	return p.Compare(p.Trunc()) != 0
}
