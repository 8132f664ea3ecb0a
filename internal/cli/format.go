package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Notations accepted by the format command.
const (
	notationString      = "string"
	notationValue       = "value"
	notationFixed       = "fixed"
	notationExponential = "exponential"
	notationPrecision   = "precision"
)

func newFormatCmd(a *app) *cobra.Command {
	var (
		notation string
		digits   int
	)

	cmd := &cobra.Command{
		Use:   "format VALUE",
		Short: "Render a number in the chosen notation",
		Long: `Render a number in one of the notations:

  string       normal or exponential notation depending on --neg-exp and --pos-exp
  value        like string, but keeps the sign of a negative zero
  fixed        normal notation with --digits decimal places
  exponential  exponential notation with --digits decimal places
  precision    --digits significant digits

A negative --digits leaves the number unrounded.`,
		Example: `  bigcalc format 45.6 --notation fixed --digits 3
  bigcalc format 45.6 --notation precision --digits 1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.ctx.Parse(args[0])
			if err != nil {
				return err
			}

			if digits < 0 {
				digits = -1
			}

			var s string
			switch notation {
			case notationString:
				s = a.ctx.String(d)
			case notationValue:
				s, err = a.ctx.ValueOf(d)
			case notationFixed:
				s, err = a.ctx.Fixed(d, digits)
			case notationExponential:
				s, err = a.ctx.Exponential(d, digits)
			case notationPrecision:
				s, err = a.ctx.Precision(d, digits)
			default:
				return fmt.Errorf("unknown notation %q", notation)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}

	cmd.Flags().StringVarP(&notation, "notation", "n", notationString, "notation: string, value, fixed, exponential or precision")
	cmd.Flags().IntVarP(&digits, "digits", "d", -1, "decimal places or significant digits")
	return cmd
}
