package primes

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// trialDivisionIsPrime is the obviously-correct reference oracle.
func trialDivisionIsPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	for d := uint64(2); d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

func TestIsPrime_SmallValues(t *testing.T) {
	assert.False(t, IsPrime(0))
	assert.False(t, IsPrime(1))
	assert.True(t, IsPrime(2))
	assert.True(t, IsPrime(3))
	assert.False(t, IsPrime(4))
	assert.True(t, IsPrime(5))
}

func TestIsPrime_AgreesWithTrialDivision(t *testing.T) {
	for n := uint64(0); n < 1_000_000; n++ {
		if IsPrime(n) != trialDivisionIsPrime(n) {
			t.Fatalf("disagreement at n=%d: got %v", n, IsPrime(n))
		}
	}
}

func TestIsPrime_CarmichaelNumbers(t *testing.T) {
	// Carmichael numbers fool Fermat tests for every coprime base.
	for _, n := range []uint64{561, 1105, 1729, 2465, 41041, 825265} {
		assert.False(t, IsPrime(n), "n=%d is a Carmichael number", n)
	}
}

func TestIsPrime_StrongBase2Pseudoprimes(t *testing.T) {
	// These pass the strong base-2 Miller-Rabin test; the Lucas stage
	// must reject them.
	for _, n := range []uint64{2047, 3277, 4033, 4681, 8321, 15841, 29341} {
		assert.False(t, IsPrime(n), "n=%d is a strong base-2 pseudoprime", n)
	}
}

func TestIsPrime_LargePrimes(t *testing.T) {
	for _, n := range []uint64{
		2147483647,           // 2^31 - 1
		2305843009213693951,  // 2^61 - 1
		18446744073709551557, // largest prime below 2^64
		65537,
		4294967291,
	} {
		assert.True(t, IsPrime(n), "n=%d", n)
	}
}

func TestIsPrime_LargeComposites(t *testing.T) {
	for _, n := range []uint64{
		math.MaxUint64,      // 3 * 5 * 17 * 257 * 641 * 65537 * 6700417
		9223372036854775807, // 2^63 - 1 = 7^2 * 73 * 127 * 337 * 92737 * 649657
		4294967297,          // F5 = 641 * 6700417
		2305843009213693953, // 2^61 + 1
		3215031751,          // strong pseudoprime to bases 2, 3, 5, 7
		3825123056546413051, // strong pseudoprime to first nine prime bases
	} {
		assert.False(t, IsPrime(n), "n=%d", n)
	}
}

func TestIsPrime_PerfectSquares(t *testing.T) {
	// The Lucas stage screens perfect squares explicitly; make sure big
	// ones are rejected.
	for _, root := range []uint64{3037000493, 2147483647, 94906249} {
		assert.False(t, IsPrime(root*root), "root=%d", root)
	}
}

func TestMillerRabin_BadInput(t *testing.T) {
	// The base-2 strong probable prime test needs n >= a+2 and odd n.
	assert.Equal(t, badInput, millerRabin(2, 3))
	assert.Equal(t, badInput, millerRabin(1, 9))
	assert.Equal(t, badInput, millerRabin(2, 8))
}

func TestJacobi(t *testing.T) {
	// Reference values for the Jacobi symbol (a/n), odd n.
	tests := []struct {
		a    int64
		n    uint64
		want int
	}{
		{1, 1, 1},
		{2, 3, -1},
		{2, 7, 1},
		{3, 5, -1},
		{5, 9, 1},
		{-1, 3, -1},
		{-1, 5, 1},
		{-7, 15, 1},
		{15, 15, 0},
		{1001, 9907, -1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, jacobi(tt.a, tt.n), "jacobi(%d, %d)", tt.a, tt.n)
	}
}

func TestIsqrt(t *testing.T) {
	for _, n := range []uint64{0, 1, 2, 3, 4, 15, 16, 17, 1 << 40, math.MaxUint64} {
		r := isqrt(n)
		assert.LessOrEqual(t, r*r, n, "n=%d", n)
		if r < math.MaxUint32 {
			assert.Greater(t, (r+1)*(r+1), n, "n=%d", n)
		}
	}
	assert.Equal(t, uint64(4294967295), isqrt(math.MaxUint64))
}
