package convcheck

import (
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/unitsafe/mag"
	"github.com/unitsafe/mag/rep"
)

type caseFile struct {
	Cases []conversionCase `yaml:"cases"`
}

type conversionCase struct {
	Name      string          `yaml:"name"`
	Ops       []opSpec        `yaml:"ops"`
	MinGood   string          `yaml:"min_good"`
	MaxGood   string          `yaml:"max_good"`
	Overflow  map[string]bool `yaml:"overflow"`
	RiskClass int             `yaml:"risk_class"`
	RiskRatio string          `yaml:"risk_ratio"`
	Truncate  map[string]bool `yaml:"truncate"`
}

type opSpec struct {
	Kind      string `yaml:"kind"`
	From      string `yaml:"from"`
	To        string `yaml:"to"`
	Rep       string `yaml:"rep"`
	Magnitude string `yaml:"magnitude"`
}

func loadCases(t *testing.T, path string) []conversionCase {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var f caseFile
	require.NoError(t, yaml.Unmarshal(data, &f))
	require.NotEmpty(t, f.Cases)
	return f.Cases
}

// parseMagnitude accepts "n" or "n/d" with integer parts.
func parseMagnitude(t *testing.T, s string) mag.Magnitude {
	t.Helper()
	parts := strings.SplitN(s, "/", 2)
	num, err := strconv.ParseInt(parts[0], 10, 64)
	require.NoError(t, err)
	m := mag.MustFromInt(num)
	if len(parts) == 2 {
		den, err := strconv.ParseInt(parts[1], 10, 64)
		require.NoError(t, err)
		m = mag.Div(m, mag.MustFromInt(den))
	}
	return m
}

func parseScalar(t *testing.T, r rep.Rep, s string) rep.Scalar {
	t.Helper()
	switch r.Kind {
	case rep.KindInt:
		v, err := strconv.ParseInt(s, 10, 64)
		require.NoError(t, err)
		return rep.IntScalar(v)
	case rep.KindUint:
		v, err := strconv.ParseUint(s, 10, 64)
		require.NoError(t, err)
		return rep.UintScalar(v)
	default:
		v, err := strconv.ParseFloat(s, 64)
		require.NoError(t, err)
		return rep.FloatScalar(v)
	}
}

func buildOp(t *testing.T, specs []opSpec) Op {
	t.Helper()
	ops := make([]Op, 0, len(specs))
	for _, s := range specs {
		switch s.Kind {
		case "cast":
			from, err := rep.Parse(s.From)
			require.NoError(t, err)
			to, err := rep.Parse(s.To)
			require.NoError(t, err)
			ops = append(ops, Cast(from, to))
		case "multiply":
			r, err := rep.Parse(s.Rep)
			require.NoError(t, err)
			ops = append(ops, MultiplyBy(r, parseMagnitude(t, s.Magnitude)))
		case "divide":
			r, err := rep.Parse(s.Rep)
			require.NoError(t, err)
			op, err := DivideByInteger(r, parseMagnitude(t, s.Magnitude))
			require.NoError(t, err)
			ops = append(ops, op)
		default:
			t.Fatalf("unknown op kind %q", s.Kind)
		}
	}
	op, err := Sequence(ops...)
	require.NoError(t, err)
	return op
}

func TestConversionCases(t *testing.T) {
	for _, tc := range loadCases(t, "testdata/cases.yaml") {
		t.Run(tc.Name, func(t *testing.T) {
			op := buildOp(t, tc.Ops)
			in := op.InputRep()

			if tc.MinGood != "" {
				min, err := MinGood(op)
				require.NoError(t, err)
				want := parseScalar(t, in, tc.MinGood)
				assert.Equal(t, 0, min.Compare(want),
					"MinGood: want %s, got %s", want, min)
			}
			if tc.MaxGood != "" {
				max, err := MaxGood(op)
				require.NoError(t, err)
				want := parseScalar(t, in, tc.MaxGood)
				assert.Equal(t, 0, max.Compare(want),
					"MaxGood: want %s, got %s", want, max)
			}
			for val, want := range tc.Overflow {
				x := parseScalar(t, in, val)
				assert.Equal(t, want, WouldOverflow(op, x), "WouldOverflow(%s)", val)
			}

			risk := TruncationRiskFor(op)
			assert.Equal(t, RiskClass(tc.RiskClass), risk.Class())
			if tc.RiskRatio != "" {
				want := parseMagnitude(t, tc.RiskRatio)
				assert.True(t, mag.Equal(risk.Ratio(), want),
					"risk ratio: want %s, got %s", want, risk.Ratio())
			}
			for val, want := range tc.Truncate {
				x := parseScalar(t, in, val)
				assert.Equal(t, want, WouldTruncate(risk, x), "WouldTruncate(%s)", val)
			}
		})
	}
}
