package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newBatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "batch [FILE]",
		Short: "Evaluate one expression per line",
		Long: `Evaluate one expression per line of FILE, or of the standard input if FILE
is omitted. Blank lines and lines starting with '#' are skipped.
Expressions are evaluated concurrently by --workers goroutines and the
results are printed in input order, one per line. A failed expression
prints "error: ..." and makes the command exit with a non-zero status.`,
		Example: `  printf '+ 1 2\n/ 1 3\n' | bigcalc batch
  bigcalc --workers 8 --dp 100 batch expressions.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("failed to open input: %w", err)
				}
				defer f.Close()
				in = f
			}

			exprs, err := readExpressions(in)
			if err != nil {
				return err
			}

			results, err := a.evaluator().EvalAll(cmd.Context(), exprs, a.config.Workers)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			failed := 0
			for _, r := range results {
				if r.Err != nil {
					failed++
					fmt.Fprintf(out, "error: %v\n", r.Err)
					continue
				}
				fmt.Fprintln(out, a.ctx.String(r.Value))
			}

			a.logger.Debug("batch finished",
				zap.Int("total", len(results)),
				zap.Int("failed", failed),
			)
			if failed > 0 {
				return fmt.Errorf("%d of %d expressions failed", failed, len(results))
			}
			return nil
		},
	}
}

// readExpressions returns the non-blank lines of r that are not comments.
func readExpressions(r io.Reader) ([]string, error) {
	var exprs []string
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		exprs = append(exprs, line)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return exprs, nil
}
