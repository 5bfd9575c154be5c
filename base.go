package mag

import (
	"fmt"
	"math"

	"github.com/unitsafe/mag/primes"
)

// Base is a sealed interface for the irreducible factors a magnitude is
// built from: validated primes and symbolic irrational constants. Only
// the types in this package implement it.
type Base interface {
	// Value returns the base's numeric value, for approximate use only
	// (ordering between unlike bases, float materialization).
	Value() float64

	// String renders the base for canonical display.
	String() string

	base() // sealed
}

// primeBase is a prime number base. Construction goes through PrimeBase,
// which certifies primality, so a primeBase in a term list is always
// genuinely prime.
type primeBase uint64

func (p primeBase) base() {}

// Value implements Base.
func (p primeBase) Value() float64 { return float64(p) }

// String implements Base.
func (p primeBase) String() string { return fmt.Sprintf("%d", uint64(p)) }

// piBase is the transcendental constant pi.
type piBase struct{}

func (piBase) base() {}

// Value implements Base.
func (piBase) Value() float64 { return math.Pi }

// String implements Base.
func (piBase) String() string { return "pi" }

// BasePi is the symbolic base for the constant pi.
var BasePi Base = piBase{}

// PrimeBase returns the base for the prime p.
//
// Returns BAD_INPUT if p fails the primality oracle.
func PrimeBase(p uint64) (Base, error) {
	if !primes.IsPrime(p) {
		return nil, &RepresentationError{
			Code:    CodeBadInput,
			Message: fmt.Sprintf("%d is not prime", p),
		}
	}
	return primeBase(p), nil
}

// compareBases orders bases by numeric value. The order is strict and
// total: distinct bases never tie. Prime-to-prime comparisons are exact
// integer comparisons; pi sits strictly between the primes 3 and 5, so
// mixed comparisons never need floating point.
func compareBases(a, b Base) int {
	switch x := a.(type) {
	case primeBase:
		switch y := b.(type) {
		case primeBase:
			return compareUint64(uint64(x), uint64(y))
		default:
			// prime vs pi: 2 and 3 sort below pi, 5 and up above.
			if uint64(x) <= 3 {
				return -1
			}
			return 1
		}
	default:
		switch y := b.(type) {
		case primeBase:
			if uint64(y) <= 3 {
				return 1
			}
			return -1
		default:
			return 0
		}
	}
}

func compareUint64(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func basesEqual(a, b Base) bool {
	return compareBases(a, b) == 0
}
