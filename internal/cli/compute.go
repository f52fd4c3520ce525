package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/calckit/internal/calc"
	"github.com/rshade/calckit/internal/config"
	"github.com/rshade/calckit/internal/engine"
	"github.com/rshade/calckit/internal/registry"
)

// fieldFlags maps raw input keys to compute flag names.
//
//nolint:gochecknoglobals // Static lookup table.
var fieldFlags = map[string]string{
	registry.FieldAmount:       "amount",
	registry.FieldInput1:       "input1",
	registry.FieldInput2:       "input2",
	registry.FieldInput3:       "input3",
	registry.FieldFromUnit:     "from",
	registry.FieldToUnit:       "to",
	registry.FieldState:        "state",
	registry.FieldGender:       "gender",
	registry.FieldFilingStatus: "filing-status",
	registry.FieldText:         "text",
}

// NewComputeCmd creates the compute command, which runs one calculator.
func NewComputeCmd() *cobra.Command {
	var sets []string

	cmd := &cobra.Command{
		Use:   "compute <tool-id>",
		Short: "Run one calculator",
		Long: `Runs one calculator. Fields not given on the command line keep their
defaults; see "calckit describe <tool-id>" for the flags a calculator reads.`,
		Example: `  # Mortgage with a larger down payment
  calckit compute mortgage-calculator --input1 80000

  # Unit conversion
  calckit compute length-converter --amount 3 --from Feet --to Meters

  # Fields by key
  calckit compute paycheck-calculator --set amount=52000 --set state=CA -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			toolID := args[0]
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			d, err := newDispatcher(cmd)
			if err != nil {
				return err
			}
			in, err := inputsFromFlags(cmd, d.Defaults(toolID), sets)
			if err != nil {
				return &ExitError{Code: ExitInvalidInput, Err: err}
			}

			if !d.Handles(toolID) {
				cmd.PrintErrf("Warning: unknown calculator %q\n", toolID)
			}
			rows, err := d.Compute(cmd.Context(), toolID, in)
			if err != nil {
				if errors.Is(err, engine.ErrInvalidInput) {
					return &ExitError{Code: ExitInvalidInput, Err: err}
				}
				return err
			}

			if err = renderResult(cmd, format, toolID, d.Catalog().Resolve(toolID), rows); err != nil {
				return err
			}
			if calc.HasError(rows) {
				return &ExitError{Code: ExitInvalidInput, Reason: rows[0].Value}
			}
			return nil
		},
	}

	for _, key := range registry.FieldKeys() {
		cmd.Flags().String(fieldFlags[key], "", fmt.Sprintf("value of the %s field", key))
	}
	cmd.Flags().StringArrayVar(&sets, "set", nil, "set a field by key, as key=value (repeatable)")
	return cmd
}

// inputsFromFlags overlays changed field flags, then --set pairs, on the
// defaults.
func inputsFromFlags(cmd *cobra.Command, in engine.RawInputs, sets []string) (engine.RawInputs, error) {
	for _, key := range registry.FieldKeys() {
		flag := cmd.Flags().Lookup(fieldFlags[key])
		if flag == nil || !flag.Changed {
			continue
		}
		if err := in.Set(key, flag.Value.String()); err != nil {
			return in, err
		}
	}
	for _, pair := range sets {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return in, fmt.Errorf("--set %q: expected key=value", pair)
		}
		if err := in.Set(strings.TrimSpace(key), value); err != nil {
			return in, fmt.Errorf("--set %q: %w", pair, err)
		}
	}
	in.Locale = outputLocale(cmd)
	return in, nil
}

// renderResult prints one result set in the requested format.
func renderResult(cmd *cobra.Command, format, toolID string, d registry.ToolDescriptor, rows []calc.ResultRow) error {
	out := cmd.OutOrStdout()
	if format == config.FormatJSON {
		return writeJSON(out, computeOutput{Tool: toolID, Title: d.Title, Results: rows})
	}
	if format == config.FormatTable && d.ResultTitle != "" {
		fmt.Fprintf(out, "%s: %s\n\n", d.Title, d.ResultTitle)
	}
	return renderRows(out, format, rows)
}
