package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/calckit/internal/config"
	"github.com/rshade/calckit/internal/engine"
)

// NewVerifyCmd creates the verify command, which self-checks every
// calculator against its defaults.
func NewVerifyCmd() *cobra.Command {
	var (
		concurrency int
		failedOnly  bool
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check every calculator against its defaults",
		Long: `Computes each calculator twice from its default inputs and checks that
no error row appears, that exactly one row is the total and that both
runs agree. Exits with code 3 when a calculator fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			d, err := newDispatcher(cmd)
			if err != nil {
				return err
			}

			results, err := d.Verify(cmd.Context(), concurrency)
			if err != nil {
				return err
			}

			var failed int
			shown := make([]engine.VerifyResult, 0, len(results))
			for _, r := range results {
				if !r.OK() {
					failed++
				}
				if !failedOnly || !r.OK() {
					shown = append(shown, r)
				}
			}
			cmdLogger(cmd).Info().Ctx(cmd.Context()).
				Int("tools", len(results)).
				Int("failed", failed).
				Msg("verify finished")

			if err = renderVerify(cmd, format, shown, len(results), failed); err != nil {
				return err
			}
			if failed > 0 {
				return &ExitError{
					Code:   ExitCheckFailed,
					Reason: fmt.Sprintf("%d of %d calculators failed verification", failed, len(results)),
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&concurrency, "concurrency", defaultConcurrency, "maximum calculators checked at once")
	cmd.Flags().BoolVar(&failedOnly, "failed", false, "show only failing calculators")
	return cmd
}

func renderVerify(cmd *cobra.Command, format string, results []engine.VerifyResult, total, failed int) error {
	out := cmd.OutOrStdout()
	switch format {
	case config.FormatJSON:
		return writeJSON(out, results)
	case config.FormatPlain:
		for _, r := range results {
			fmt.Fprintf(out, "%s\t%s\n", verifyStatus(r), r.Tool)
		}
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(w, "Tool\tRows\tStatus\tProblem")
	fmt.Fprintln(w, "----\t----\t------\t-------")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", r.Tool, r.Rows, verifyStatus(r), r.Problem)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "\n%d of %d calculators passed\n", total-failed, total)
	return nil
}

func verifyStatus(r engine.VerifyResult) string {
	switch {
	case !r.OK():
		return "FAIL"
	case r.Skipped:
		return "OK (random)"
	default:
		return "OK"
	}
}
