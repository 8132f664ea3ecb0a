// Package cli implements the bigcalc command line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/govalues/bigdecimal"
	"github.com/govalues/bigdecimal/internal/calc"
	"github.com/govalues/bigdecimal/internal/config"
)

// Version is the version reported by the version command.
var Version = "0.1.0-dev"

// app holds the state shared by the commands of one invocation.
type app struct {
	configFile string
	newLogger  func(debug bool) (*zap.Logger, error)

	config *config.Config
	ctx    bigdecimal.Context
	logger *zap.Logger
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction(zap.AddStacktrace(zapcore.PanicLevel))
}

// setup loads the configuration and builds the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configFile, cmd.Flags())
	if err != nil {
		return err
	}
	c, err := cfg.Context()
	if err != nil {
		return err
	}
	logger, err := a.newLogger(cfg.Debug)
	if err != nil {
		return fmt.Errorf("error create logger: %w", err)
	}
	a.config = cfg
	a.ctx = c
	a.logger = logger
	a.logger.Debug("configuration loaded",
		zap.String("file", a.configFile),
		zap.Int("dp", c.DecimalPlaces),
		zap.Stringer("rounding", c.Rounding),
		zap.Bool("strict", c.Strict),
		zap.Int("workers", cfg.Workers),
	)
	return nil
}

func (a *app) teardown(*cobra.Command, []string) {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

func (a *app) evaluator() *calc.Evaluator {
	return calc.New(a.ctx, a.logger)
}

// NewRootCmd returns the bigcalc command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	return newRootCmd(newLogger)
}

func newRootCmd(newLogger func(bool) (*zap.Logger, error)) *cobra.Command {
	a := &app{newLogger: newLogger}

	cmd := &cobra.Command{
		Use:   "bigcalc",
		Short: "bigcalc - arbitrary-precision decimal calculator",
		Long: `bigcalc evaluates arithmetic expressions in prefix (Polish) notation
with arbitrary-precision decimal numbers. Addition, subtraction and
multiplication are exact, while division, square roots and negative powers
are rounded to the configured number of decimal places.

Settings are read from flags, BIGCALC_* environment variables and an
optional configuration file, in this order of priority.`,
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: a.teardown,
	}

	cmd.PersistentFlags().StringVar(&a.configFile, "config", "", "configuration file path (YAML, TOML or JSON)")
	config.RegisterFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		newEvalCmd(a),
		newBatchCmd(a),
		newFormatCmd(a),
		newVersionCmd(),
	)
	return cmd
}

// Execute runs the root command and exits with a non-zero status on failure.
// This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
