package rep

import (
	"fmt"
	"math"
)

// Kind classifies a numeric representation.
type Kind int

const (
	// KindInt is a signed two's-complement integer.
	KindInt Kind = iota
	// KindUint is an unsigned integer.
	KindUint
	// KindFloat is a binary floating-point type.
	KindFloat
	// KindOpaque is a representation the engine does not understand.
	// Analyses must treat it conservatively.
	KindOpaque
)

// Rep describes one concrete numeric representation. Comparable; two reps
// are the same representation iff they are equal.
type Rep struct {
	Kind Kind
	// Bits is the representation width: 8/16/32/64 for integers,
	// 32/64 for floats, 0 for opaque reps.
	Bits uint
}

// The built-in representations.
var (
	Int8    = Rep{KindInt, 8}
	Int16   = Rep{KindInt, 16}
	Int32   = Rep{KindInt, 32}
	Int64   = Rep{KindInt, 64}
	Uint8   = Rep{KindUint, 8}
	Uint16  = Rep{KindUint, 16}
	Uint32  = Rep{KindUint, 32}
	Uint64  = Rep{KindUint, 64}
	Float32 = Rep{KindFloat, 32}
	Float64 = Rep{KindFloat, 64}
)

// Opaque returns a representation descriptor for a type the engine cannot
// analyze.
func Opaque() Rep {
	return Rep{Kind: KindOpaque}
}

// IsIntegral reports whether r is a signed or unsigned integer kind.
func (r Rep) IsIntegral() bool {
	return r.Kind == KindInt || r.Kind == KindUint
}

// IsFloat reports whether r is a floating-point kind.
func (r Rep) IsFloat() bool {
	return r.Kind == KindFloat
}

// IsSigned reports whether r can represent negative values.
func (r Rep) IsSigned() bool {
	return r.Kind == KindInt || r.Kind == KindFloat
}

// IsBounded reports whether r has known, finite min and max values.
// Opaque reps are treated as effectively unbounded.
func (r Rep) IsBounded() bool {
	return r.Kind != KindOpaque
}

// Lowest returns the smallest representable value of r.
//
// Panics for opaque reps; callers must screen with IsBounded first.
func (r Rep) Lowest() Scalar {
	switch r.Kind {
	case KindInt:
		if r.Bits == 64 {
			return IntScalar(math.MinInt64)
		}
		return IntScalar(-(int64(1) << (r.Bits - 1)))
	case KindUint:
		return UintScalar(0)
	case KindFloat:
		if r.Bits == 32 {
			return FloatScalar(-math.MaxFloat32)
		}
		return FloatScalar(-math.MaxFloat64)
	}
	panic("rep: no lower limit for opaque representation")
}

// Highest returns the largest representable value of r.
//
// Panics for opaque reps; callers must screen with IsBounded first.
func (r Rep) Highest() Scalar {
	switch r.Kind {
	case KindInt:
		if r.Bits == 64 {
			return IntScalar(math.MaxInt64)
		}
		return IntScalar(int64(1)<<(r.Bits-1) - 1)
	case KindUint:
		if r.Bits == 64 {
			return UintScalar(math.MaxUint64)
		}
		return UintScalar(uint64(1)<<r.Bits - 1)
	case KindFloat:
		if r.Bits == 32 {
			return FloatScalar(math.MaxFloat32)
		}
		return FloatScalar(math.MaxFloat64)
	}
	panic("rep: no upper limit for opaque representation")
}

// Zero returns the zero value of r's scalar category.
func (r Rep) Zero() Scalar {
	switch r.Kind {
	case KindUint:
		return UintScalar(0)
	case KindFloat:
		return FloatScalar(0)
	default:
		return IntScalar(0)
	}
}

// One returns the value 1 in r's scalar category.
func (r Rep) One() Scalar {
	switch r.Kind {
	case KindUint:
		return UintScalar(1)
	case KindFloat:
		return FloatScalar(1)
	default:
		return IntScalar(1)
	}
}

// String returns a short name like "int32" or "float64".
func (r Rep) String() string {
	switch r.Kind {
	case KindInt:
		return fmt.Sprintf("int%d", r.Bits)
	case KindUint:
		return fmt.Sprintf("uint%d", r.Bits)
	case KindFloat:
		return fmt.Sprintf("float%d", r.Bits)
	default:
		return "opaque"
	}
}

// Parse maps a representation name ("int32", "uint8", "float64", ...) back
// to its descriptor.
func Parse(name string) (Rep, error) {
	for _, r := range []Rep{
		Int8, Int16, Int32, Int64,
		Uint8, Uint16, Uint32, Uint64,
		Float32, Float64,
	} {
		if r.String() == name {
			return r, nil
		}
	}
	return Rep{}, fmt.Errorf("unknown representation %q", name)
}

// Native is the constraint for Go types that have a Rep descriptor.
type Native interface {
	int8 | int16 | int32 | int64 |
		uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// RepOf returns the descriptor for the native type T.
func RepOf[T Native]() Rep {
	var zero T
	switch any(zero).(type) {
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case uint8:
		return Uint8
	case uint16:
		return Uint16
	case uint32:
		return Uint32
	case uint64:
		return Uint64
	case float32:
		return Float32
	default:
		return Float64
	}
}
