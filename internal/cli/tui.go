package cli

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/calckit/internal/config"
	"github.com/rshade/calckit/internal/session"
	"github.com/rshade/calckit/internal/tui"
)

// ErrNotTerminal is returned when the interactive calculator has no terminal.
var ErrNotTerminal = errors.New("interactive calculator requires a terminal")

// NewTUICmd creates the tui command, which opens the interactive calculator.
func NewTUICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui [tool-id]",
		Short: "Open the interactive calculator",
		Long: `Opens a full-screen calculator. Without a tool id, or with an unknown
one, it starts in the calculator picker. Results appear after a short
"Calculating..." delay, configurable as calculator.result_delay.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
				return ErrNotTerminal
			}
			d, err := newDispatcher(cmd)
			if err != nil {
				return err
			}

			var toolID string
			if len(args) == 1 {
				toolID = args[0]
			}
			ctx := cmd.Context()
			calc := session.New(d, toolID,
				session.WithDelay(config.GetGlobalConfig().Calculator.ResultDelay),
				session.WithLogger(config.GetLogger()),
			)
			calc.SetLocale(outputLocale(cmd))
			defer calc.Close()

			cmdLogger(cmd).Debug().Ctx(ctx).Str("tool", toolID).Msg("starting interactive calculator")

			final, err := tea.NewProgram(tui.NewCalculatorModel(ctx, d.Catalog(), calc), tea.WithAltScreen()).Run()
			if err != nil {
				return fmt.Errorf("running interactive calculator: %w", err)
			}

			// Leave the last result on screen after the alternate screen closes.
			m, ok := final.(*tui.CalculatorModel)
			if !ok {
				return nil
			}
			snap := m.Snapshot()
			if snap.State == session.Ready && len(snap.Results) > 0 {
				return renderResult(cmd, config.FormatTable, snap.ToolID, d.Catalog().Resolve(snap.ToolID), snap.Results)
			}
			return nil
		},
	}
	return cmd
}
