package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/unitsafe/mag/primes"
)

// PrimeResult is the JSON payload for a single primality verdict.
type PrimeResult struct {
	N     uint64 `json:"n"`
	Prime bool   `json:"prime"`
}

// NewPrimeCommand creates the "prime" subcommand.
func NewPrimeCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "prime N [N...]",
		Short: "Test 64-bit integers for primality",
		Long:  "Tests each argument with the exact Baillie-PSW primality oracle.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := &OutputFormatter{
				Format:  opts.Format,
				Writer:  cmd.OutOrStdout(),
				Verbose: opts.Verbose,
			}

			results := make([]PrimeResult, 0, len(args))
			var lines []string
			for _, arg := range args {
				n, err := strconv.ParseUint(arg, 10, 64)
				if err != nil {
					_ = formatter.Error("BAD_INPUT", fmt.Sprintf("not a 64-bit unsigned integer: %q", arg), nil)
					return NewExitError(ExitCommandError, fmt.Sprintf("bad argument %q", arg))
				}
				isPrime := primes.IsPrime(n)
				results = append(results, PrimeResult{N: n, Prime: isPrime})
				verdict := "composite"
				if isPrime {
					verdict = "prime"
				}
				lines = append(lines, fmt.Sprintf("%s: %s", groupDigits(n), verdict))
			}

			return formatter.SuccessText(strings.Join(lines, "\n"), results)
		},
	}
}
