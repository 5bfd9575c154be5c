package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/unitsafe/mag"
	"github.com/unitsafe/mag/convcheck"
	"github.com/unitsafe/mag/rep"
)

// CheckResult is the JSON payload for a conversion-safety report.
type CheckResult struct {
	Op            string `json:"op"`
	MinGood       string `json:"min_good"`
	MaxGood       string `json:"max_good"`
	RiskClass     int    `json:"risk_class"`
	RiskRatio     string `json:"risk_ratio,omitempty"`
	Value         string `json:"value,omitempty"`
	WouldOverflow *bool  `json:"would_overflow,omitempty"`
	WouldTruncate *bool  `json:"would_truncate,omitempty"`
}

// NewCheckCommand creates the "check" subcommand.
func NewCheckCommand(opts *RootOptions) *cobra.Command {
	var (
		repName string
		times   string
		divide  string
		castTo  string
		value   string
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report the safe value range and truncation risk of a conversion",
		Long: `Analyzes a conversion built from --times, --divide, or --cast-to
applied to values of the representation named by --rep. Reports the
smallest and largest input values that survive without overflow, and
the truncation risk class. With --value, also reports whether that
specific value would overflow or truncate.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := &OutputFormatter{
				Format:  opts.Format,
				Writer:  cmd.OutOrStdout(),
				Verbose: opts.Verbose,
			}

			fail := func(msg string, err error) error {
				_ = formatter.Error("BAD_INPUT", err.Error(), nil)
				return WrapExitError(ExitCommandError, msg, err)
			}

			r, err := rep.Parse(repName)
			if err != nil {
				return fail("bad representation", err)
			}

			var stages []convcheck.Op
			if times != "" {
				m, err := parseMagnitude(times)
				if err != nil {
					return fail("bad --times expression", err)
				}
				stages = append(stages, convcheck.MultiplyBy(r, m))
			}
			if divide != "" {
				m, err := parseMagnitude(divide)
				if err != nil {
					return fail("bad --divide expression", err)
				}
				op, err := convcheck.DivideByInteger(r, m)
				if err != nil {
					return fail("bad --divide expression", err)
				}
				stages = append(stages, op)
			}
			if castTo != "" {
				to, err := rep.Parse(castTo)
				if err != nil {
					return fail("bad --cast-to representation", err)
				}
				stages = append(stages, convcheck.Cast(r, to))
			}
			if len(stages) == 0 {
				err := errors.New("need at least one of --times, --divide, --cast-to")
				return fail("no conversion given", err)
			}
			op, err := convcheck.Sequence(stages...)
			if err != nil {
				return fail("cannot chain conversion", err)
			}

			minGood, err := convcheck.MinGood(op)
			if err != nil {
				_ = formatter.Error("BAD_INPUT", err.Error(), op.String())
				return WrapExitError(ExitFailure, "cannot assess conversion", err)
			}
			maxGood, err := convcheck.MaxGood(op)
			if err != nil {
				_ = formatter.Error("BAD_INPUT", err.Error(), op.String())
				return WrapExitError(ExitFailure, "cannot assess conversion", err)
			}
			risk := convcheck.TruncationRiskFor(op)

			result := CheckResult{
				Op:        op.String(),
				MinGood:   minGood.String(),
				MaxGood:   maxGood.String(),
				RiskClass: int(risk.Class()),
			}
			if !mag.Equal(risk.Ratio(), mag.One) {
				result.RiskRatio = risk.Ratio().String()
			}

			var lines []string
			lines = append(lines, fmt.Sprintf("op:        %s", op))
			lines = append(lines, fmt.Sprintf("min good:  %s", minGood))
			lines = append(lines, fmt.Sprintf("max good:  %s", maxGood))
			lines = append(lines, fmt.Sprintf("risk:      %s", risk))

			if value != "" {
				x, err := parseScalarValue(r, value)
				if err != nil {
					return fail("bad --value", err)
				}
				overflow := convcheck.WouldOverflow(op, x)
				truncate := convcheck.WouldTruncate(risk, x)
				result.Value = x.String()
				result.WouldOverflow = &overflow
				result.WouldTruncate = &truncate
				lines = append(lines, fmt.Sprintf("value:     %s (overflow=%t, truncate=%t)", x, overflow, truncate))
			}

			return formatter.SuccessText(strings.Join(lines, "\n"), result)
		},
	}

	cmd.Flags().StringVarP(&repName, "rep", "r", "int64", "input representation")
	cmd.Flags().StringVar(&times, "times", "", "multiply by this magnitude expression")
	cmd.Flags().StringVar(&divide, "divide", "", "divide by this integer magnitude expression")
	cmd.Flags().StringVar(&castTo, "cast-to", "", "cast to this representation")
	cmd.Flags().StringVar(&value, "value", "", "specific input value to test")
	return cmd
}

func parseScalarValue(r rep.Rep, s string) (rep.Scalar, error) {
	switch r.Kind {
	case rep.KindInt:
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return rep.Scalar{}, fmt.Errorf("parsing %q: %w", s, err)
		}
		return rep.IntScalar(i), nil
	case rep.KindUint:
		u, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return rep.Scalar{}, fmt.Errorf("parsing %q: %w", s, err)
		}
		return rep.UintScalar(u), nil
	case rep.KindFloat:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return rep.Scalar{}, fmt.Errorf("parsing %q: %w", s, err)
		}
		return rep.FloatScalar(f), nil
	default:
		return rep.Scalar{}, fmt.Errorf("cannot parse a value for %s", r)
	}
}
