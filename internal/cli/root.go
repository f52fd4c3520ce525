// Package cli implements the calckit command line: catalog browsing, one-off
// computations and conversions, scenario batches, self-verification and the
// interactive calculator.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/calckit/internal/config"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger = zerolog.Nop() //nolint:gochecknoglobals // Required for zerolog context integration

// annotationRawConfig marks commands that read the config file themselves
// and must run even when it does not load.
const annotationRawConfig = "calckit/raw-config"

// NewRootCmd creates the root Cobra command for the calckit CLI. It loads
// configuration, sets up logging and tracing, and wires every subcommand.
func NewRootCmd(ver string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "calckit",
		Short:         "Calculators for finance, health, math, dates and units",
		Long:          "calckit: about eighty everyday calculators behind one dispatcher, usable from scripts or interactively",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				if cmd.Annotations[annotationRawConfig] == "" {
					return err
				}
				cfg = config.New()
			}
			config.SetGlobalConfig(cfg)
			return setupLogging(cmd, cfg)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			config.CloseLogFile()
			return nil
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "config file (default $CALCKIT_HOME/config.yaml or ~/.calckit/config.yaml)")
	cmd.PersistentFlags().StringP("output", "o", "", "output format: table, json or plain (default from config)")
	cmd.PersistentFlags().String("locale", "", "locale for dates and weekday names (default from config)")
	cmd.PersistentFlags().Bool("lenient", false, "let malformed numbers flow through as NaN instead of failing")

	cmd.AddCommand(
		NewListCmd(), NewDescribeCmd(), NewComputeCmd(), NewConvertCmd(),
		NewBatchCmd(), NewVerifyCmd(), NewTUICmd(), newConfigCmd(),
	)
	return cmd
}

const rootCmdExample = `  # List the financial calculators
  calckit list --category finance

  # Show the form and explanation for a calculator
  calckit describe mortgage-calculator

  # Compute a BMI
  calckit compute bmi-calculator --amount 175 --input1 70

  # Convert units directly
  calckit convert length 1 Miles Meters

  # Run a file of scenarios and check the expected values
  calckit batch scenarios.yaml

  # Open the interactive calculator
  calckit tui loan-calculator

  # Initialize configuration
  calckit config init`

// loadConfig reads the file named by --config, or the default location.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	explicit := path != ""
	if !explicit {
		p, err := config.DefaultPath()
		if err != nil {
			cmd.PrintErrf("Warning: %v, using defaults\n", err)
		}
		path = p
	}
	if explicit {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	if err = cfg.CheckVersion(); err != nil {
		cmd.PrintErrf("Warning: %v\n", err)
	}
	return cfg, nil
}

// newConfigCmd creates the config command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigShowCmd(), NewConfigValidateCmd(), NewConfigPathCmd())
	return cmd
}

// ExitError carries a process exit code out of a command.
type ExitError struct {
	Code   int
	Reason string
	Err    error
}

func (e *ExitError) Error() string {
	if e.Err != nil && e.Reason == "" {
		return e.Err.Error()
	}
	return e.Reason
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// Exit codes.
const (
	ExitFailure      = 1
	ExitInvalidInput = 2
	ExitCheckFailed  = 3
)

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}
