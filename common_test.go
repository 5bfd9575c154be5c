package mag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommonMagnitude_IntegersGCD(t *testing.T) {
	// For plain integers the common magnitude is the gcd.
	got := CommonMagnitude(MustFromInt(360), MustFromInt(84))
	assert.True(t, Equal(got, MustFromInt(12)))
}

func TestCommonMagnitude_BothQuotientsIntegers(t *testing.T) {
	a := Div(MustFromInt(5), MustFromInt(12))
	b := Div(MustFromInt(7), MustFromInt(8))
	c := CommonMagnitude(a, b)

	// c divides both: a/c and b/c are integers.
	assert.True(t, IsInteger(Div(a, c)))
	assert.True(t, IsInteger(Div(b, c)))
}

func TestCommonMagnitude_TwelfthsAndEighths(t *testing.T) {
	// common(1/12, 1/8) = 1/24
	got := CommonMagnitude(
		Inverse(MustFromInt(12)),
		Inverse(MustFromInt(8)),
	)
	assert.True(t, Equal(got, Inverse(MustFromInt(24))))
}

func TestCommonMagnitude_AbsentTermCountsAsZero(t *testing.T) {
	// common(2, 3) = 1: positive exponents from one side only drop out.
	assert.True(t, Equal(CommonMagnitude(MustFromInt(2), MustFromInt(3)), One))

	// common(1/2, 3) = 1/2: the negative exponent survives.
	got := CommonMagnitude(Inverse(MustFromInt(2)), MustFromInt(3))
	assert.True(t, Equal(got, Inverse(MustFromInt(2))))
}

func TestCommonMagnitude_Commutative(t *testing.T) {
	a := Mul(MustFromInt(45), Inverse(Pi))
	b := Div(MustFromInt(7), MustFromInt(30))
	assert.True(t, Equal(CommonMagnitude(a, b), CommonMagnitude(b, a)))
}

func TestCommonMagnitude_Associative(t *testing.T) {
	a := MustFromInt(60)
	b := Div(MustFromInt(45), MustFromInt(14))
	c := Inverse(MustFromInt(21))
	left := CommonMagnitude(CommonMagnitude(a, b), c)
	right := CommonMagnitude(a, CommonMagnitude(b, c))
	assert.True(t, Equal(left, right))
	assert.True(t, Equal(left, CommonMagnitude(a, b, c)))
}

func TestCommonMagnitude_Idempotent(t *testing.T) {
	m := Mul(Div(MustFromInt(9), MustFromInt(20)), Pi)
	assert.True(t, Equal(CommonMagnitude(m, m), m))
}

func TestCommonMagnitude_RationalExponents(t *testing.T) {
	sqrt2, err := Pow(MustFromInt(2), 1, 2)
	require.NoError(t, err)
	// common(2^(1/2), 2^(3/2)) = 2^(1/2)
	threeHalves, err := Pow(MustFromInt(2), 3, 2)
	require.NoError(t, err)
	assert.True(t, Equal(CommonMagnitude(sqrt2, threeHalves), sqrt2))
}

func TestCommonMagnitude_Sign(t *testing.T) {
	// Negated only when every input is negated.
	assert.False(t, CommonMagnitude(MustFromInt(-6), MustFromInt(-9)).IsPositive())
	assert.True(t, CommonMagnitude(MustFromInt(-6), MustFromInt(9)).IsPositive())
}

func TestCommonMagnitude_NoArguments(t *testing.T) {
	assert.True(t, Equal(CommonMagnitude(), One))
}
