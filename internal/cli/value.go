package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/unitsafe/mag"
	"github.com/unitsafe/mag/rep"
)

// ValueResult is the JSON payload for a materialized magnitude.
type ValueResult struct {
	Magnitude string `json:"magnitude"`
	Rep       string `json:"rep"`
	Value     string `json:"value"`
}

// NewValueCommand creates the "value" subcommand.
func NewValueCommand(opts *RootOptions) *cobra.Command {
	var repName string

	cmd := &cobra.Command{
		Use:   "value EXPR",
		Short: "Materialize a magnitude in a concrete numeric representation",
		Long: `Evaluates a magnitude expression exactly and materializes it in the
requested representation. Expressions are "*"-separated factors: integers,
ratios like 15/8, and pi. Example: magtool value -r float64 "pi/2"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := &OutputFormatter{
				Format:  opts.Format,
				Writer:  cmd.OutOrStdout(),
				Verbose: opts.Verbose,
			}

			m, err := parseMagnitude(args[0])
			if err != nil {
				_ = formatter.Error("BAD_INPUT", err.Error(), nil)
				return WrapExitError(ExitCommandError, "bad magnitude expression", err)
			}
			r, err := rep.Parse(repName)
			if err != nil {
				_ = formatter.Error("BAD_INPUT", err.Error(), nil)
				return WrapExitError(ExitCommandError, "bad representation", err)
			}

			v, err := mag.ValueIn(m, r)
			if err != nil {
				var rerr *mag.RepresentationError
				if errors.As(err, &rerr) {
					_ = formatter.Error(string(rerr.Code), rerr.Message, rerr.Magnitude)
					return WrapExitError(ExitFailure, "cannot materialize", err)
				}
				return err
			}

			text := fmt.Sprintf("%s as %s = %s", m, r, v)
			return formatter.SuccessText(text, ValueResult{
				Magnitude: m.String(),
				Rep:       r.String(),
				Value:     v.String(),
			})
		},
	}

	cmd.Flags().StringVarP(&repName, "rep", "r", "float64", "destination representation (int8..int64, uint8..uint64, float32, float64)")
	return cmd
}
