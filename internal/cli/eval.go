package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newEvalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "eval EXPR...",
		Short: "Evaluate one expression",
		Long: `Evaluate one expression in prefix notation and print the result.
Arguments are joined with spaces, so the expression can be quoted or not.
Put "--" before an expression that starts with a negative number.`,
		Example: `  bigcalc eval '* 10 + 1.23 4.56'
  bigcalc --dp 50 eval sqrt 2
  bigcalc eval -- -1.5e-3`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.evaluator().Eval(strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.ctx.String(d))
			return nil
		},
	}
}
