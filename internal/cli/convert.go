package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/calckit/internal/calc"
	"github.com/rshade/calckit/internal/config"
	"github.com/rshade/calckit/internal/engine"
	"github.com/rshade/calckit/internal/units"
)

// kindCurrency is the convert kind backed by the rate table.
const kindCurrency = "currency"

// convertArgs is the argument count of a conversion.
const convertArgs = 4

// NewConvertCmd creates the convert command, which converts a quantity
// without going through a calculator form.
func NewConvertCmd() *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "convert <kind> <amount> <from> <to>",
		Short: "Convert a quantity between units or currencies",
		Long: `Converts between units of length, weight, speed, volume, area or
temperature, or between currencies. Unit names are case-insensitive;
temperatures also accept C, F and K.`,
		Example: `  calckit convert length 1 Miles Meters
  calckit convert temperature 100 C F
  calckit convert currency 100 USD EUR

  # Units of a kind
  calckit convert volume --list`,
		Args: func(cmd *cobra.Command, args []string) error {
			if list {
				return cobra.ExactArgs(1)(cmd, args)
			}
			return cobra.ExactArgs(convertArgs)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := strings.ToLower(strings.TrimSpace(args[0]))
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			if list {
				names, listErr := unitNames(kind)
				if listErr != nil {
					return &ExitError{Code: ExitInvalidInput, Err: listErr}
				}
				return renderNames(cmd, format, names)
			}

			amount, ok := engine.ParseNumber(args[1])
			if !ok {
				return &ExitError{Code: ExitInvalidInput, Reason: fmt.Sprintf("amount %q is not a number", args[1])}
			}
			rows, err := convert(kind, amount, args[2], args[3])
			if err != nil {
				return &ExitError{Code: ExitInvalidInput, Err: err}
			}
			if format == config.FormatJSON {
				return writeJSON(cmd.OutOrStdout(), computeOutput{Tool: kind, Title: "Convert " + kind, Results: rows})
			}
			return renderRows(cmd.OutOrStdout(), format, rows)
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "list the units of a kind")
	return cmd
}

func convert(kind string, amount float64, from, to string) ([]calc.ResultRow, error) {
	if kind == kindCurrency {
		rates, err := config.GetGlobalConfig().Rates()
		if err != nil {
			return nil, err
		}
		return calc.CalculateCurrency(amount, strings.ToUpper(from), strings.ToUpper(to), rates)
	}
	k, err := units.ParseKind(kind)
	if err != nil {
		return nil, err
	}
	if k == units.KindTemperature {
		return calc.ConvertTemperature(amount, from, to)
	}
	return calc.ConvertLinear(k, amount, from, to)
}

func unitNames(kind string) ([]string, error) {
	if kind == kindCurrency {
		rates, err := config.GetGlobalConfig().Rates()
		if err != nil {
			return nil, err
		}
		return rates.Codes(), nil
	}
	k, err := units.ParseKind(kind)
	if err != nil {
		return nil, err
	}
	return units.Names(k), nil
}

func renderNames(cmd *cobra.Command, format string, names []string) error {
	out := cmd.OutOrStdout()
	if format == config.FormatJSON {
		return writeJSON(out, names)
	}
	for _, n := range names {
		if _, err := fmt.Fprintln(out, n); err != nil {
			return err
		}
	}
	return nil
}
