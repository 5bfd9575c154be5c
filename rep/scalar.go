package rep

import (
	"fmt"
	"math"
)

// Scalar is one numeric value, held in the widest native type of its
// category: int64 for signed integers, uint64 for unsigned integers,
// float64 for floating point. The category tag is fixed at construction;
// arithmetic never silently changes it.
type Scalar struct {
	kind Kind
	i    int64
	u    uint64
	f    float64
}

// IntScalar wraps a signed integer value.
func IntScalar(v int64) Scalar {
	return Scalar{kind: KindInt, i: v}
}

// UintScalar wraps an unsigned integer value.
func UintScalar(v uint64) Scalar {
	return Scalar{kind: KindUint, u: v}
}

// FloatScalar wraps a floating-point value.
func FloatScalar(v float64) Scalar {
	return Scalar{kind: KindFloat, f: v}
}

// Of wraps a native value in the scalar category of its type.
func Of[T Native](v T) Scalar {
	switch x := any(v).(type) {
	case int8:
		return IntScalar(int64(x))
	case int16:
		return IntScalar(int64(x))
	case int32:
		return IntScalar(int64(x))
	case int64:
		return IntScalar(x)
	case uint8:
		return UintScalar(uint64(x))
	case uint16:
		return UintScalar(uint64(x))
	case uint32:
		return UintScalar(uint64(x))
	case uint64:
		return UintScalar(x)
	case float32:
		return FloatScalar(float64(x))
	default:
		return FloatScalar(any(v).(float64))
	}
}

// Kind returns the scalar's category tag.
func (s Scalar) Kind() Kind {
	return s.kind
}

// Int returns the value as int64. Only meaningful for KindInt scalars.
func (s Scalar) Int() int64 { return s.i }

// Uint returns the value as uint64. Only meaningful for KindUint scalars.
func (s Scalar) Uint() uint64 { return s.u }

// Float returns the value converted to float64, whatever its category.
func (s Scalar) Float() float64 {
	switch s.kind {
	case KindInt:
		return float64(s.i)
	case KindUint:
		return float64(s.u)
	default:
		return s.f
	}
}

// IsZero reports whether the value is exactly zero.
func (s Scalar) IsZero() bool {
	switch s.kind {
	case KindInt:
		return s.i == 0
	case KindUint:
		return s.u == 0
	default:
		return s.f == 0
	}
}

// IsNegative reports whether the value is below zero.
func (s Scalar) IsNegative() bool {
	switch s.kind {
	case KindInt:
		return s.i < 0
	case KindUint:
		return false
	default:
		return s.f < 0
	}
}

// Compare returns -1, 0, or +1 as s is less than, equal to, or greater
// than t. Comparisons between the two integer categories are exact; any
// comparison involving a float goes through float64, which is exact for
// the magnitudes these analyses compare against float limits.
func (s Scalar) Compare(t Scalar) int {
	if s.kind == KindFloat || t.kind == KindFloat {
		return compareFloat(s.Float(), t.Float())
	}
	// Both integral: settle sign first, then compare as uint64.
	if s.IsNegative() {
		if t.IsNegative() {
			return compareInt(s.i, t.i)
		}
		return -1
	}
	if t.IsNegative() {
		return 1
	}
	return compareUint(s.magnitude(), t.magnitude())
}

// magnitude returns the absolute value of a non-negative integral scalar
// as uint64.
func (s Scalar) magnitude() uint64 {
	if s.kind == KindUint {
		return s.u
	}
	return uint64(s.i)
}

func compareInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareUint(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Div divides s by t within s's category. Integer division truncates
// toward zero, matching the rounding the safe-bounds computations require.
//
// Precondition: t is nonzero and of the same category as s.
func (s Scalar) Div(t Scalar) Scalar {
	switch s.kind {
	case KindInt:
		return IntScalar(s.i / t.i)
	case KindUint:
		return UintScalar(s.u / t.u)
	default:
		return FloatScalar(s.f / t.f)
	}
}

// Mul multiplies s by t within s's category, without overflow checking.
// Callers use it only where the bounds logic has already established the
// product fits.
//
// Precondition: t is of the same category as s.
func (s Scalar) Mul(t Scalar) Scalar {
	switch s.kind {
	case KindInt:
		return IntScalar(s.i * t.i)
	case KindUint:
		return UintScalar(s.u * t.u)
	default:
		return FloatScalar(s.f * t.f)
	}
}

// Mod returns the remainder of s by t within s's category. For floats it
// uses math.Mod.
//
// Precondition: t is nonzero and of the same category as s.
func (s Scalar) Mod(t Scalar) Scalar {
	switch s.kind {
	case KindInt:
		return IntScalar(s.i % t.i)
	case KindUint:
		return UintScalar(s.u % t.u)
	default:
		return FloatScalar(math.Mod(s.f, t.f))
	}
}

// NegClamped negates s, clamping to the limits of representation r. The
// clamp matters for two's-complement types, where -lowest overflows.
func (s Scalar) NegClamped(r Rep) Scalar {
	switch s.kind {
	case KindInt:
		min := r.Lowest().Int()
		max := r.Highest().Int()
		if s.i == min {
			return IntScalar(max)
		}
		if s.i > 0 && -s.i < min {
			return IntScalar(min)
		}
		return IntScalar(-s.i)
	case KindUint:
		// The only non-negative value with a representable negation.
		return UintScalar(0)
	default:
		return FloatScalar(-s.f)
	}
}

// Trunc returns s with any fractional part removed. Identity for integer
// categories.
func (s Scalar) Trunc() Scalar {
	if s.kind == KindFloat {
		return FloatScalar(math.Trunc(s.f))
	}
	return s
}

// ConvertTo re-expresses s in the scalar category of representation r.
// The bounds computations only call this along paths where the conversion
// round-trips; it does not range-check.
func (s Scalar) ConvertTo(r Rep) Scalar {
	switch r.Kind {
	case KindInt:
		switch s.kind {
		case KindInt:
			return s
		case KindUint:
			return IntScalar(int64(s.u))
		default:
			return IntScalar(int64(s.f))
		}
	case KindUint:
		switch s.kind {
		case KindInt:
			return UintScalar(uint64(s.i))
		case KindUint:
			return s
		default:
			return UintScalar(uint64(s.f))
		}
	case KindFloat:
		return FloatScalar(s.Float())
	default:
		return s
	}
}

// InRange reports whether s lies within the representable range of r.
// Opaque reps accept everything.
func (s Scalar) InRange(r Rep) bool {
	if !r.IsBounded() {
		return true
	}
	return s.Compare(r.Lowest()) >= 0 && s.Compare(r.Highest()) <= 0
}

// AsNative converts s to the native type T. The caller is responsible for
// having established that the value fits; see mag.As for the checked path.
func AsNative[T Native](s Scalar) T {
	var zero T
	switch any(zero).(type) {
	case int8:
		return any(int8(s.asInt())).(T)
	case int16:
		return any(int16(s.asInt())).(T)
	case int32:
		return any(int32(s.asInt())).(T)
	case int64:
		return any(s.asInt()).(T)
	case uint8:
		return any(uint8(s.asUint())).(T)
	case uint16:
		return any(uint16(s.asUint())).(T)
	case uint32:
		return any(uint32(s.asUint())).(T)
	case uint64:
		return any(s.asUint()).(T)
	case float32:
		return any(float32(s.Float())).(T)
	default:
		return any(s.Float()).(T)
	}
}

func (s Scalar) asInt() int64 {
	switch s.kind {
	case KindInt:
		return s.i
	case KindUint:
		return int64(s.u)
	default:
		return int64(s.f)
	}
}

func (s Scalar) asUint() uint64 {
	switch s.kind {
	case KindInt:
		return uint64(s.i)
	case KindUint:
		return s.u
	default:
		return uint64(s.f)
	}
}

// String renders the value for diagnostics.
func (s Scalar) String() string {
	switch s.kind {
	case KindInt:
		return fmt.Sprintf("%d", s.i)
	case KindUint:
		return fmt.Sprintf("%d", s.u)
	default:
		return fmt.Sprintf("%g", s.f)
	}
}
