package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/calckit/internal/config"
	"github.com/rshade/calckit/internal/engine"
)

// newDispatcher builds a dispatcher from the loaded configuration and the
// --lenient flag.
func newDispatcher(cmd *cobra.Command) (*engine.Dispatcher, error) {
	cfg := config.GetGlobalConfig()

	brackets, err := cfg.Brackets()
	if err != nil {
		return nil, fmt.Errorf("resolving bracket set: %w", err)
	}
	rates, err := cfg.Rates()
	if err != nil {
		return nil, fmt.Errorf("resolving currency rates: %w", err)
	}

	strict := cfg.Calculator.Strict()
	if lenient, _ := cmd.Flags().GetBool("lenient"); lenient {
		strict = false
	}

	return engine.New(
		engine.WithStrictInputs(strict),
		engine.WithRates(rates),
		engine.WithBracketSet(brackets),
		engine.WithLogger(config.GetLogger()),
	), nil
}
