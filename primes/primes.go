package primes

import (
	"github.com/unitsafe/mag/modmath"
)

// result is the verdict of a single probable-prime pass.
type result int

const (
	composite result = iota
	probablyPrime
	badInput
)

// decomposition expresses a positive n as 2^powerOfTwo * oddRemainder.
type decomposition struct {
	powerOfTwo   uint64
	oddRemainder uint64
}

// decompose factors out all powers of 2 from n.
//
// Precondition: n > 0.
func decompose(n uint64) decomposition {
	d := decomposition{0, n}
	for d.oddRemainder%2 == 0 {
		d.oddRemainder /= 2
		d.powerOfTwo++
	}
	return d
}

// millerRabin performs a Miller-Rabin probable-prime pass on n with base a.
//
// Preconditions: n is odd and at least a+2; the smallest allowable base is
// 2. Violations yield badInput. All primes pass; composites pass only if
// they are pseudoprime to base a.
func millerRabin(a, n uint64) result {
	if a < 2 || n < a+2 || n%2 == 0 {
		return badInput
	}

	params := decompose(n - 1)
	s, d := params.powerOfTwo, params.oddRemainder

	x := modmath.PowMod(a, d, n)
	if x == 1 {
		return probablyPrime
	}

	minusOne := n - 1
	for r := uint64(0); r < s; r++ {
		if x == minusOne {
			return probablyPrime
		}
		x = modmath.MulMod(x, x, n)
	}
	return composite
}

// isqrt returns the integer square root of n, via Newton's method.
func isqrt(n uint64) uint64 {
	if n < 2 {
		return n
	}
	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return x
}

// isPerfectSquare reports whether n is a perfect square.
func isPerfectSquare(n uint64) bool {
	r := isqrt(n)
	return r*r == n
}

// jacobi computes the Jacobi symbol (a/n) for odd positive n, using the
// quadratic-reciprocity and power-of-two reduction rules. a may be
// negative.
func jacobi(a int64, n uint64) int {
	// Reduce a into [0, n).
	var x uint64
	if a < 0 {
		x = n - (uint64(-a) % n)
		if x == n {
			x = 0
		}
	} else {
		x = uint64(a) % n
	}

	sign := 1
	for x != 0 {
		// Pull out factors of two: (2/n) is -1 iff n = 3 or 5 (mod 8).
		for x%2 == 0 {
			x /= 2
			if r := n % 8; r == 3 || r == 5 {
				sign = -sign
			}
		}

		// Quadratic reciprocity flip.
		x, n = n, x
		if x%4 == 3 && n%4 == 3 {
			sign = -sign
		}
		x %= n
	}

	if n == 1 {
		return sign
	}
	return 0
}

// lucasD picks the strong-Lucas discriminant: the first element of
// 5, -7, 9, -11, ... whose Jacobi symbol against n is -1. A zero symbol
// means a nontrivial shared factor, which certifies n composite.
func lucasD(n uint64) (d int64, ok bool) {
	mag := int64(5)
	sign := int64(1)
	for {
		d = sign * mag
		switch jacobi(d, n) {
		case -1:
			return d, true
		case 0:
			// gcd(|d|, n) > 1; n is composite unless n == |d|,
			// but callers screen small n before reaching here.
			if n != uint64(mag) {
				return 0, false
			}
		}
		mag += 2
		sign = -sign
	}
}

// strongLucas performs a strong Lucas probable-prime pass on n using
// Selfridge parameters (P = 1, Q = (1-D)/4).
//
// Preconditions: n is odd and greater than 2.
func strongLucas(n uint64) result {
	if n < 3 || n%2 == 0 {
		return badInput
	}

	// A perfect square can never have Jacobi symbol -1 against any D, so
	// the discriminant search below would not terminate. Squares are
	// composite anyway for n > 1.
	if isPerfectSquare(n) {
		return composite
	}

	d, ok := lucasD(n)
	if !ok {
		return composite
	}

	// Q = (1 - D) / 4, reduced mod n.
	var q uint64
	if qSigned := (1 - d) / 4; qSigned < 0 {
		q = n - (uint64(-qSigned) % n)
		if q == n {
			q = 0
		}
	} else {
		q = uint64(qSigned) % n
	}
	dMod := uint64((d%int64(n) + int64(n)) % int64(n))

	params := decompose(n + 1)
	s, idx := params.powerOfTwo, params.oddRemainder

	// Compute U_idx, V_idx (and Q^idx) by processing the bits of idx from
	// the most significant down: each step doubles the index, and set bits
	// additionally increment it. The doubling and increment recurrences
	// mirror binary exponentiation.
	u := uint64(1) // U_1
	v := uint64(1) // V_1 (P == 1)
	qK := q        // Q^1

	highBit := uint64(1) << 63
	for highBit&idx == 0 {
		highBit >>= 1
	}

	for bit := highBit >> 1; bit != 0; bit >>= 1 {
		// Double: U_2k = U_k * V_k; V_2k = V_k^2 - 2 Q^k.
		u = modmath.MulMod(u, v, n)
		v = modmath.SubMod(modmath.MulMod(v, v, n), modmath.AddMod(qK, qK, n), n)
		qK = modmath.MulMod(qK, qK, n)

		if idx&bit != 0 {
			// Increment: U_{k+1} = (U_k + V_k)/2;
			// V_{k+1} = (D U_k + V_k)/2. Division by 2 is exact
			// modulo the odd n.
			u2 := modmath.HalfModOdd(modmath.AddMod(u, v, n), n)
			v2 := modmath.HalfModOdd(modmath.AddMod(modmath.MulMod(dMod, u, n), v, n), n)
			u, v = u2, v2
			qK = modmath.MulMod(qK, q, n)
		}
	}

	// n is a strong Lucas probable prime if U_idx == 0, or if
	// V_{idx * 2^r} == 0 for some 0 <= r < s.
	if u == 0 {
		return probablyPrime
	}
	for r := uint64(0); r < s; r++ {
		if v == 0 {
			return probablyPrime
		}
		v = modmath.SubMod(modmath.MulMod(v, v, n), modmath.AddMod(qK, qK, n), n)
		qK = modmath.MulMod(qK, qK, n)
	}

	return composite
}

// bailliePSW runs the compound Baillie-PSW test.
func bailliePSW(n uint64) result {
	if n < 2 {
		return badInput
	}
	if n == 2 || n == 3 {
		return probablyPrime
	}
	if n%2 == 0 {
		return composite
	}

	if millerRabin(2, n) != probablyPrime {
		return composite
	}
	return strongLucas(n)
}

// IsPrime reports whether n is prime. Exact for all 64-bit inputs.
func IsPrime(n uint64) bool {
	return bailliePSW(n) == probablyPrime
}
