package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/rshade/calckit/internal/calc"
	"github.com/rshade/calckit/internal/config"
	"github.com/rshade/calckit/internal/engine"
	"github.com/rshade/calckit/internal/engine/batch"
)

// defaultConcurrency bounds the batches in flight.
const defaultConcurrency = 4

// batchOutput is the JSON shape of the batch command.
type batchOutput struct {
	Results []engine.ScenarioResult `json:"results"`
	Passed  int                     `json:"passed"`
	Failed  int                     `json:"failed"`
}

// NewBatchCmd creates the batch command, which runs a YAML file of
// scenarios and checks their expected values.
func NewBatchCmd() *cobra.Command {
	var (
		concurrency  int
		fillDefaults bool
	)

	cmd := &cobra.Command{
		Use:   "batch <scenarios.yaml>",
		Short: "Run a file of calculator scenarios",
		Long: `Runs every scenario in a YAML file and compares the rows named under
"expect" with the computed values. Use "-" to read from standard input.
Exits with code 3 when any scenario fails.

  scenarios:
    - name: dinner
      tool: tip-calculator
      inputs: {amount: "100", input1: "15", input2: "2"}
      expect:
        Per Person: "$57.50"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			scenarios, err := readScenarios(cmd, args[0])
			if err != nil {
				return err
			}
			d, err := newDispatcher(cmd)
			if err != nil {
				return err
			}

			locale := outputLocale(cmd)
			for i := range scenarios {
				if fillDefaults {
					scenarios[i].Inputs = d.FillDefaults(scenarios[i].Tool, scenarios[i].Inputs)
				}
				if scenarios[i].Inputs.Locale == "" {
					scenarios[i].Inputs.Locale = locale
				}
			}

			results, err := d.RunScenarios(cmd.Context(), scenarios, concurrency, progressPrinter(cmd.ErrOrStderr()))
			if err != nil {
				return err
			}

			failed := 0
			for _, r := range results {
				if !r.Passed() {
					failed++
				}
			}
			cmdLogger(cmd).Info().Ctx(cmd.Context()).
				Int("scenarios", len(results)).
				Int("failed", failed).
				Msg("batch finished")

			if err = renderScenarioResults(cmd, format, results, failed); err != nil {
				return err
			}
			if failed > 0 {
				return &ExitError{
					Code:   ExitCheckFailed,
					Reason: fmt.Sprintf("%d of %d scenarios failed", failed, len(results)),
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&concurrency, "concurrency", defaultConcurrency, "maximum batches computed at once")
	cmd.Flags().BoolVar(&fillDefaults, "fill-defaults", false, "fill blank inputs from each calculator's defaults")
	return cmd
}

func readScenarios(cmd *cobra.Command, path string) ([]engine.Scenario, error) {
	if path == "-" {
		return engine.LoadScenarios(cmd.InOrStdin())
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening scenarios: %w", err)
	}
	defer f.Close()
	return engine.LoadScenarios(f)
}

// progressPrinter reports batch progress on w when it is a terminal.
func progressPrinter(w io.Writer) batch.ProgressCallback {
	if !styled(w) {
		return nil
	}
	var mu sync.Mutex
	return func(s batch.Snapshot) {
		mu.Lock()
		defer mu.Unlock()
		fmt.Fprintf(w, "\rComputed %s/%s scenarios (%.0f%%)",
			humanize.Comma(int64(s.ProcessedItems)), humanize.Comma(int64(s.TotalItems)), s.PercentComplete())
		if s.IsComplete() {
			fmt.Fprintln(w)
		}
	}
}

func renderScenarioResults(cmd *cobra.Command, format string, results []engine.ScenarioResult, failed int) error {
	out := cmd.OutOrStdout()

	if format == config.FormatJSON {
		return writeJSON(out, batchOutput{Results: results, Passed: len(results) - failed, Failed: failed})
	}

	if format == config.FormatPlain {
		for _, r := range results {
			fmt.Fprintf(out, "%s\t%s\t%s\n", scenarioStatus(r), r.Scenario.Name, scenarioDetail(r))
		}
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(w, "Status\tScenario\tTool\tDetail")
	fmt.Fprintln(w, "------\t--------\t----\t------")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", scenarioStatus(r), r.Scenario.Name, r.Scenario.Tool, scenarioDetail(r))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "\n%s passed, %s failed\n",
		humanize.Comma(int64(len(results)-failed)), humanize.Comma(int64(failed)))
	return nil
}

func scenarioStatus(r engine.ScenarioResult) string {
	if r.Passed() {
		return "PASS"
	}
	return "FAIL"
}

// scenarioDetail summarizes a result: the error, the mismatches or the
// headline row.
func scenarioDetail(r engine.ScenarioResult) string {
	if r.Err != nil {
		return r.Error
	}
	if len(r.Mismatches) > 0 {
		parts := make([]string, len(r.Mismatches))
		for i, m := range r.Mismatches {
			parts[i] = fmt.Sprintf("%s: want %q, got %q", m.Label, m.Expected, m.Actual)
		}
		return strings.Join(parts, "; ")
	}
	if calc.HasError(r.Rows) {
		return r.Rows[0].Value
	}
	if total, ok := calc.TotalRow(r.Rows); ok {
		return total.Label + " = " + total.Value
	}
	return ""
}
