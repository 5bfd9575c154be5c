package primes

import (
	"errors"
	"fmt"
	"sort"

	"github.com/unitsafe/mag/modmath"
)

// firstPrimes is the trial-division table: the first 100 primes.
var firstPrimes = [100]uint64{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59,
	61, 67, 71, 73, 79, 83, 89, 97, 101, 103, 107, 109, 113, 127, 131, 137, 139,
	149, 151, 157, 163, 167, 173, 179, 181, 191, 193, 197, 199, 211, 223, 227, 229, 233,
	239, 241, 251, 257, 263, 269, 271, 277, 281, 283, 293, 307, 311, 313, 317, 331, 337,
	347, 349, 353, 359, 367, 373, 379, 383, 389, 397, 401, 409, 419, 421, 431, 433, 439,
	443, 449, 457, 461, 463, 467, 479, 487, 491, 499, 503, 509, 521, 523, 541,
}

// maxRhoAttempts bounds the number of Pollard-rho parameterizations tried
// before giving up. Empirically the first parameter succeeds for every
// 64-bit composite; the cap exists so the retry loop has an explicit
// termination bound rather than an implicit one.
const maxRhoAttempts = 1 << 16

// BadInputError reports a violated precondition for primality or
// factorization: a non-factorable input, or exhaustion of the bounded
// factor-search retry loop.
type BadInputError struct {
	Input  uint64
	Reason string
}

// Error implements the error interface.
func (e *BadInputError) Error() string {
	return fmt.Sprintf("BAD_INPUT: %s (n=%d)", e.Reason, e.Input)
}

// IsBadInput reports whether err is a BadInputError.
// Uses errors.As to handle wrapped errors.
func IsBadInput(err error) bool {
	var be *BadInputError
	return errors.As(err, &be)
}

// rhoStep computes x^2 + t mod n, the iteration map for Pollard's rho.
func rhoStep(x, t, n uint64) uint64 {
	return modmath.AddMod(modmath.MulMod(x, x, n), t%n, n)
}

func absDiff(a, b uint64) uint64 {
	if a > b {
		return a - b
	}
	return b - a
}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// pollardRhoFactor finds a nontrivial factor of a known-composite n using
// Pollard's rho with Brent's cycle detection. Successive attempts bump the
// additive parameter of the iteration map. Returns 0 if every attempt
// under the cap found only the trivial factor.
//
// Precondition: n is composite and odd.
func pollardRhoFactor(n uint64) uint64 {
	limit := n / 2
	if limit > maxRhoAttempts {
		limit = maxRhoAttempts
	}
	for t := uint64(1); t < limit; t++ {
		maxCycleLength := uint64(1)
		cycleLength := uint64(1)
		tortoise := uint64(2)
		hare := rhoStep(tortoise, t, n)

		factor := gcd(n, absDiff(tortoise, hare))
		for factor == 1 {
			if maxCycleLength == cycleLength {
				tortoise = hare
				maxCycleLength *= 2
				cycleLength = 0
			}
			hare = rhoStep(hare, t, n)
			cycleLength++
			factor = gcd(n, absDiff(tortoise, hare))
		}
		if factor < n {
			return factor
		}
	}
	return 0
}

// PrimeFactor returns a prime factor of n. It is the smallest one
// whenever trial division finds it; factors surfaced by the rho stage
// are prime but carry no ordering guarantee.
//
// Strategy: trial division against the first 100 primes, returning early
// when a table prime's square exceeds n (n is then prime); a direct
// primality check; and finally Pollard's rho, recursively reduced until the
// found factor is itself prime.
//
// Returns BAD_INPUT for n < 2, or in the believed-unreachable case that
// the bounded rho search is exhausted.
func PrimeFactor(n uint64) (uint64, error) {
	if n < 2 {
		return 0, &BadInputError{Input: n, Reason: "no prime factor below 2"}
	}

	for _, p := range firstPrimes {
		if n%p == 0 {
			return p, nil
		}
		if p*p > n {
			return n, nil
		}
	}

	if IsPrime(n) {
		return n, nil
	}

	factor := pollardRhoFactor(n)
	for factor != 0 && !IsPrime(factor) {
		factor = pollardRhoFactor(factor)
	}
	if factor == 0 {
		return 0, &BadInputError{Input: n, Reason: "factor search exhausted"}
	}
	return factor, nil
}

// Multiplicity returns the largest power of factor which divides n.
//
// Preconditions: n > 0, factor > 1.
func Multiplicity(factor, n uint64) uint64 {
	m := uint64(0)
	for n%factor == 0 {
		m++
		n /= factor
	}
	return m
}

// PrimePower is one term of a prime factorization.
type PrimePower struct {
	Prime uint64
	Power uint64
}

// Factor returns the full prime factorization of n in increasing prime
// order. The product of Prime^Power over all terms recovers n exactly.
// Factoring 1 yields no terms.
//
// Returns BAD_INPUT for n == 0.
func Factor(n uint64) ([]PrimePower, error) {
	if n == 0 {
		return nil, &BadInputError{Input: n, Reason: "cannot factor zero"}
	}

	var terms []PrimePower
	for n > 1 {
		p, err := PrimeFactor(n)
		if err != nil {
			return nil, err
		}
		m := Multiplicity(p, n)
		terms = append(terms, PrimePower{Prime: p, Power: m})
		for i := uint64(0); i < m; i++ {
			n /= p
		}
	}
	// The rho path can surface a larger prime before a smaller one, so
	// discovery order is not guaranteed ascending.
	sort.Slice(terms, func(i, j int) bool { return terms[i].Prime < terms[j].Prime })
	return terms, nil
}
