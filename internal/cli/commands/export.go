package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/graphdrawer/pkg/config"
	"github.com/ccollicutt/graphdrawer/pkg/export"
)

// ExportOptions holds command-line options for the export command.
type ExportOptions struct {
	Profile       string
	Format        string
	Name          string
	SkipMalformed bool
}

// NewExportCommand creates the export command.
func NewExportCommand() *cobra.Command {
	opts := &ExportOptions{}

	cmd := &cobra.Command{
		Use:   "export <log-file>",
		Short: "Convert a measurement log to CSV or XLSX",
		Long: `Convert every measurement of a log file to a spreadsheet-friendly file.

Formats:
  csv   semicolon-delimited text, written to <name>.csv
  xlsx  one worksheet per measurement, written to <name>.xlsx

The format and parse settings can come from a profile's export and parse
sections; flags override them. Each row starts with the synthetic time
value. Measurements longer than the 500-point time axis cannot be exported.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Profile, "profile", "p", "", "Plot profile (YAML)")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", config.DefaultExportFormat, "Export format (csv|xlsx)")
	cmd.Flags().StringVarP(&opts.Name, "name", "n", "", "Output base name, extension added (default the log file path)")
	cmd.Flags().BoolVar(&opts.SkipMalformed, "skip-malformed", false, "Drop malformed rows instead of failing")

	return cmd
}

func runExport(cmd *cobra.Command, args []string, opts *ExportOptions) error {
	logPath := args[0]
	ctx := commandContext(cmd)
	logger := newLogger(cmd)

	cfg, err := loadProfile(cmd, opts.Profile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("format") {
		cfg.Export.Format = opts.Format
	}
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	exporter, err := export.New(cfg.Export.Format)
	if err != nil {
		return err
	}

	ds, err := parseLog(cmd, logPath, cfg, opts.SkipMalformed)
	if err != nil {
		return err
	}

	baseName := opts.Name
	if baseName == "" {
		baseName = logPath
	}

	path, err := exporter.Export(ctx, ds, baseName)
	if err != nil {
		return fmt.Errorf("exporting %s: %w", exporter.Name(), err)
	}

	logger.Info("export written", "path", path, "format", exporter.Name(), "measurements", len(ds.Measurements))
	if !isQuiet(cmd) {
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d measurement(s) to %s\n", len(ds.Measurements), path)
	}
	return nil
}
