package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/unitsafe/mag"
)

// parseMagnitude parses a magnitude expression: "*"-separated factors,
// each an integer, a ratio "a/b", or "pi". A leading "-" negates the
// whole expression. Examples: "360", "-10", "15/8", "2*pi", "pi/2".
func parseMagnitude(expr string) (mag.Magnitude, error) {
	s := strings.TrimSpace(expr)
	negative := false
	if strings.HasPrefix(s, "-") {
		negative = true
		s = s[1:]
	}
	if s == "" {
		return mag.Magnitude{}, fmt.Errorf("empty magnitude expression")
	}

	result := mag.One
	for _, factor := range strings.Split(s, "*") {
		m, err := parseFactor(strings.TrimSpace(factor))
		if err != nil {
			return mag.Magnitude{}, err
		}
		result = mag.Mul(result, m)
	}
	if negative {
		result = mag.Negate(result)
	}
	return result, nil
}

func parseFactor(factor string) (mag.Magnitude, error) {
	num, den, found := strings.Cut(factor, "/")
	m, err := parseAtom(num)
	if err != nil {
		return mag.Magnitude{}, err
	}
	if !found {
		return m, nil
	}
	d, err := parseAtom(den)
	if err != nil {
		return mag.Magnitude{}, err
	}
	return mag.Div(m, d), nil
}

func parseAtom(atom string) (mag.Magnitude, error) {
	if atom == "pi" {
		return mag.Pi, nil
	}
	n, err := strconv.ParseInt(atom, 10, 64)
	if err != nil {
		return mag.Magnitude{}, fmt.Errorf("bad magnitude factor %q: %w", atom, err)
	}
	return mag.FromInt(n)
}
