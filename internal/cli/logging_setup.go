package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/calckit/internal/config"
	"github.com/rshade/calckit/internal/logging"
)

// setupLogging configures the process logger from cfg and the --debug flag,
// then stores a trace-scoped logger in the command context.
func setupLogging(cmd *cobra.Command, cfg *config.Config) error {
	debug, _ := cmd.Flags().GetBool("debug")

	if err := config.InitLogger(cfg.Logging, debug); err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v, logging to stderr\n", err)
		fallback := cfg.Logging
		fallback.File = ""
		if err = config.InitLogger(fallback, debug); err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
	}
	logger = logging.ComponentLogger(config.GetLogger(), "cli")

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, _ = logging.GetOrGenerateTraceID(ctx)
	ctx = logger.WithContext(ctx)
	cmd.SetContext(ctx)

	logger.Debug().Ctx(ctx).Str("command", cmd.CommandPath()).Msg("command started")
	return nil
}

// cmdLogger returns the logger stored in the command context.
func cmdLogger(cmd *cobra.Command) *zerolog.Logger {
	return logging.FromContext(cmd.Context())
}
