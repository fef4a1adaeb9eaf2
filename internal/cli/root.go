// Package cli provides the command-line interface for GraphDrawer.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/graphdrawer/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// SilenceErrors prevents Cobra from printing this
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	return 0
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "graphdrawer",
		Short: "Plot and convert measurement logs",
		Long: `GraphDrawer reads measurement logs recorded by bench instruments.

It can:
  - Plot channels against time or each other (PNG, SVG or PDF)
  - Convert every measurement to CSV or XLSX
  - Summarize a log's channels and measurements

Plot settings can be kept in a YAML profile and overridden with flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	commands.AddGlobalFlags(rootCmd)

	rootCmd.AddCommand(commands.NewPlotCommand())
	rootCmd.AddCommand(commands.NewExportCommand())
	rootCmd.AddCommand(commands.NewInspectCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
