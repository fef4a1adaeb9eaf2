package commands

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/graphdrawer/internal/logging"
)

// Global flag names shared by every command.
const (
	flagDebug     = "debug"
	flagQuiet     = "quiet"
	flagLogFormat = "log-format"
)

// AddGlobalFlags registers the persistent logging flags on the root command.
func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().Bool(flagDebug, false, "Enable debug logging")
	cmd.PersistentFlags().BoolP(flagQuiet, "q", false, "Suppress logging and print summaries only")
	cmd.PersistentFlags().String(flagLogFormat, "text", "Log record format (text|json)")
}

// newLogger builds the command logger from the global flags. Commands run
// without a root command fall back to info-level logging.
func newLogger(cmd *cobra.Command) *slog.Logger {
	debug, _ := cmd.Flags().GetBool(flagDebug)
	quiet, _ := cmd.Flags().GetBool(flagQuiet)
	format, _ := cmd.Flags().GetString(flagLogFormat)
	return logging.New(logging.Config{
		Debug:  debug,
		Quiet:  quiet,
		JSON:   format == "json",
		Writer: cmd.ErrOrStderr(),
	})
}

func isQuiet(cmd *cobra.Command) bool {
	quiet, _ := cmd.Flags().GetBool(flagQuiet)
	return quiet
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
