package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/graphdrawer/pkg/logfile"
	"github.com/ccollicutt/graphdrawer/pkg/output"
)

// InspectOptions holds command-line options for the inspect command.
type InspectOptions struct {
	Output        string
	Verbose       bool
	SkipMalformed bool
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand() *cobra.Command {
	opts := &InspectOptions{}

	cmd := &cobra.Command{
		Use:   "inspect <log-file>",
		Short: "Summarize a measurement log",
		Long: `Print the device name, channels and per-measurement sample counts of a log.

Warnings are shown when the header's measurement count does not match the
file, or when a measurement is too long to export.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show the time span of each measurement")
	cmd.Flags().BoolVar(&opts.SkipMalformed, "skip-malformed", false, "Drop rows with non-numeric values instead of failing")

	return cmd
}

func runInspect(cmd *cobra.Command, args []string, opts *InspectOptions) error {
	ctx := commandContext(cmd)

	formatter, err := output.New(opts.Output, output.FormatOptions{
		Verbose: opts.Verbose,
		Quiet:   isQuiet(cmd),
	})
	if err != nil {
		return err
	}

	parseOpts := []logfile.Option{logfile.WithLogger(newLogger(cmd))}
	if opts.SkipMalformed {
		parseOpts = append(parseOpts, logfile.WithSkipMalformedRows())
	}
	ds, err := logfile.Parse(ctx, args[0], parseOpts...)
	if err != nil {
		return fmt.Errorf("parsing log: %w", err)
	}

	if err := formatter.Format(ctx, output.NewSummary(ds), cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}
	return nil
}
