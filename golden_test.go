package mag

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

// TestGolden_CanonicalRendering pins the canonical text form of a spread
// of magnitudes against a golden file. Any change to term ordering,
// exponent formatting, or sign rendering shows up as a diff.
func TestGolden_CanonicalRendering(t *testing.T) {
	sqrt2, err := Pow(MustFromInt(2), 1, 2)
	require.NoError(t, err)
	cbrtNeg45, err := Pow(MustFromInt(-45), 1, 3)
	require.NoError(t, err)

	entries := []struct {
		label string
		m     Magnitude
	}{
		{"one", One},
		{"negative-one", Negate(One)},
		{"360", MustFromInt(360)},
		{"-10", MustFromInt(-10)},
		{"1/24", Inverse(MustFromInt(24))},
		{"sqrt(2)", sqrt2},
		{"cbrt(-45)", cbrtNeg45},
		{"pi/2", Div(Pi, MustFromInt(2))},
		{"15/8 * pi", Mul(Div(MustFromInt(15), MustFromInt(8)), Pi)},
		{"common(1/12, 1/8)", CommonMagnitude(Inverse(MustFromInt(12)), Inverse(MustFromInt(8)))},
	}

	var buf bytes.Buffer
	for _, e := range entries {
		fmt.Fprintf(&buf, "%s = %s\n", e.label, e.m)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "magnitudes", buf.Bytes())
}
