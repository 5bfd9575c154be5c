package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/unitsafe/mag/primes"
)

// digitPrinter renders large numbers with locale digit grouping, so
// outputs like 18,446,744,073,709,551,615 stay readable.
var digitPrinter = message.NewPrinter(language.English)

func groupDigits(n uint64) string {
	return digitPrinter.Sprintf("%d", n)
}

// FactorResult is the JSON payload for a factorization.
type FactorResult struct {
	N       uint64             `json:"n"`
	Factors []primes.PrimePower `json:"factors"`
}

// NewFactorCommand creates the "factor" subcommand.
func NewFactorCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "factor N",
		Short: "Factor a 64-bit integer into prime powers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := &OutputFormatter{
				Format:  opts.Format,
				Writer:  cmd.OutOrStdout(),
				Verbose: opts.Verbose,
			}

			n, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				_ = formatter.Error("BAD_INPUT", fmt.Sprintf("not a 64-bit unsigned integer: %q", args[0]), nil)
				return NewExitError(ExitCommandError, fmt.Sprintf("bad argument %q", args[0]))
			}

			factors, err := primes.Factor(n)
			if err != nil {
				_ = formatter.Error("BAD_INPUT", err.Error(), nil)
				return WrapExitError(ExitFailure, "factorization failed", err)
			}

			var parts []string
			for _, f := range factors {
				if f.Power == 1 {
					parts = append(parts, groupDigits(f.Prime))
					continue
				}
				parts = append(parts, fmt.Sprintf("%s^%d", groupDigits(f.Prime), f.Power))
			}
			text := fmt.Sprintf("%s = 1", groupDigits(n))
			if len(parts) > 0 {
				text = fmt.Sprintf("%s = %s", groupDigits(n), strings.Join(parts, " * "))
			}

			return formatter.SuccessText(text, FactorResult{N: n, Factors: factors})
		},
	}
}
