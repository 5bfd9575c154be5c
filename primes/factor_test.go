package primes

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimeFactor(t *testing.T) {
	tests := []struct {
		n, want uint64
	}{
		{2, 2},
		{3, 3},
		{4, 2},
		{15, 3},
		{49, 7},
		{97, 97},
		{15485863, 15485863}, // the millionth prime
	}
	for _, tt := range tests {
		got, err := PrimeFactor(tt.n)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "n=%d", tt.n)
	}
}

func TestPrimeFactor_RhoPath(t *testing.T) {
	// F5 = 641 * 6700417: both factors exceed the trial-division table,
	// so the rho stage must produce one of them.
	got, err := PrimeFactor(4294967297)
	require.NoError(t, err)
	assert.True(t, IsPrime(got))
	assert.Zero(t, 4294967297%got)
}

func TestPrimeFactor_BadInput(t *testing.T) {
	for _, n := range []uint64{0, 1} {
		_, err := PrimeFactor(n)
		require.Error(t, err, "n=%d", n)
		assert.True(t, IsBadInput(err))
	}
}

func TestMultiplicity(t *testing.T) {
	assert.Equal(t, uint64(3), Multiplicity(2, 8))
	assert.Equal(t, uint64(2), Multiplicity(3, 18))
	assert.Equal(t, uint64(0), Multiplicity(5, 18))
	assert.Equal(t, uint64(1), Multiplicity(7, 7))
}

func TestFactor_KnownDecompositions(t *testing.T) {
	tests := []struct {
		n    uint64
		want []PrimePower
	}{
		{1, nil},
		{2, []PrimePower{{2, 1}}},
		{360, []PrimePower{{2, 3}, {3, 2}, {5, 1}}},
		{97, []PrimePower{{97, 1}}},
		{1024, []PrimePower{{2, 10}}},
		{
			// 2^63 - 1 forces the Pollard path past trial division.
			9223372036854775807,
			[]PrimePower{{7, 2}, {73, 1}, {127, 1}, {337, 1}, {92737, 1}, {649657, 1}},
		},
		{
			math.MaxUint64,
			[]PrimePower{{3, 1}, {5, 1}, {17, 1}, {257, 1}, {641, 1}, {65537, 1}, {6700417, 1}},
		},
	}
	for _, tt := range tests {
		got, err := Factor(tt.n)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "n=%d", tt.n)
	}
}

func TestFactor_ProductRoundTrip(t *testing.T) {
	for n := uint64(1); n <= 100_000; n++ {
		factors, err := Factor(n)
		require.NoError(t, err)

		product := uint64(1)
		lastPrime := uint64(0)
		for _, f := range factors {
			assert.Greater(t, f.Prime, lastPrime, "n=%d: primes must strictly increase", n)
			lastPrime = f.Prime
			if !IsPrime(f.Prime) {
				t.Fatalf("n=%d: factor %d is not prime", n, f.Prime)
			}
			for i := uint64(0); i < f.Power; i++ {
				product *= f.Prime
			}
		}
		if product != n {
			t.Fatalf("n=%d: factors multiply to %d", n, product)
		}
	}
}

func TestFactor_Zero(t *testing.T) {
	_, err := Factor(0)
	require.Error(t, err)
	assert.True(t, IsBadInput(err))
}

func TestBadInputError_Message(t *testing.T) {
	_, err := Factor(0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BAD_INPUT")
}
