// Package modmath provides overflow-safe modular arithmetic over 64-bit
// naturals.
//
// Every function takes its operands already reduced below the modulus n;
// behavior is undefined when that precondition is violated. No function
// here allocates or errors: these are the innermost loops of the primality
// oracle, and they are written to stay exact without ever forming an
// intermediate wider than 64 bits.
package modmath

import "math"

// AddMod returns (a + b) % n.
//
// Preconditions: a < n, b < n.
func AddMod(a, b, n uint64) uint64 {
	if a >= n-b {
		return a - (n - b)
	}
	return a + b
}

// SubMod returns (a - b) % n.
//
// Preconditions: a < n, b < n.
func SubMod(a, b, n uint64) uint64 {
	if a >= b {
		return a - b
	}
	return n - (b - a)
}

// MulMod returns (a * b) % n without forming the 128-bit product.
//
// When the plain product would not fit in 64 bits, the multiplier is split
// into a whole number of modulus-sized chunks plus a leftover. The chunked
// part is computed in "negative space": taking as many copies of a as fit
// into n leaves a small negative residue, so the reduced recursion is
// guaranteed to operate on a smaller multiplicand.
//
// Preconditions: a < n, b < n.
func MulMod(a, b, n uint64) uint64 {
	// Simplest case first: everything fits.
	if b == 0 || a < math.MaxUint64/b {
		return (a * b) % n
	}

	chunkSize := n / a
	numChunks := b / chunkSize
	negativeChunk := n - a*chunkSize // == n % a, but cheaper
	chunkResult := n - MulMod(negativeChunk, numChunks, n)

	// The leftover fits, so no recursion is needed for it.
	leftover := b - numChunks*chunkSize
	leftoverResult := (a * leftover) % n

	return AddMod(chunkResult%n, leftoverResult, n)
}

// HalfModOdd returns (a / 2) % n for odd n.
//
// If a is even this is simply a/2. Otherwise we give the result one would
// obtain by first adding n (making the sum even, since n is odd) and then
// halving.
//
// Preconditions: a < n, n is odd.
func HalfModOdd(a, n uint64) uint64 {
	if a%2 == 0 {
		return a / 2
	}
	return a/2 + n/2 + 1
}

// PowMod returns (base ^ exp) % n by binary exponentiation.
func PowMod(base, exp, n uint64) uint64 {
	result := uint64(1)
	base %= n

	for exp > 0 {
		if exp%2 == 1 {
			result = MulMod(result, base, n)
		}
		exp /= 2
		base = MulMod(base, base, n)
	}

	return result
}
