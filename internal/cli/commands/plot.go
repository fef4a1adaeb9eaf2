package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/graphdrawer/pkg/config"
	"github.com/ccollicutt/graphdrawer/pkg/logfile"
	"github.com/ccollicutt/graphdrawer/pkg/render"
	"github.com/ccollicutt/graphdrawer/pkg/selector"
)

// PlotOptions holds command-line options for the plot command.
// Every field overrides the matching profile value when its flag is set.
type PlotOptions struct {
	Profile string

	Title       string
	X           string
	Y           []string
	XUnit       string
	XMin        string
	XMax        string
	YUnit       string
	YMin        string
	YMax        string
	TMin        string
	TMax        string
	Measurement string
	BW          string

	Output        string
	DPI           int
	SkipMalformed bool
}

// NewPlotCommand creates the plot command.
func NewPlotCommand() *cobra.Command {
	opts := &PlotOptions{}

	cmd := &cobra.Command{
		Use:   "plot <log-file>",
		Short: "Plot channels of a measurement log",
		Long: `Plot one or more channels of a measurement log against time or another channel.

Channels are given by legend index or name. Index 0 is the synthetic
time axis (500 points spanning 0 to 10). Numeric fields that are empty or
not integers fall back to their defaults:
  --t-min, --t-max   full window
  --measurement      first measurement
  axis limits        fitted to the data

Example:
  graphdrawer plot run4.log --y Voltage --y Current --t-min 2 --bw Y`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlot(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Profile, "profile", "p", "", "Plot profile (YAML)")
	cmd.Flags().StringVar(&opts.Title, "title", "", "Plot title")
	cmd.Flags().StringVar(&opts.X, "x", "", "X channel, index or name (default time)")
	cmd.Flags().StringArrayVar(&opts.Y, "y", nil, "Y channel, index or name (can be repeated)")
	cmd.Flags().StringVar(&opts.XUnit, "x-unit", "", "X axis unit label")
	cmd.Flags().StringVar(&opts.XMin, "x-min", "", "X axis lower limit")
	cmd.Flags().StringVar(&opts.XMax, "x-max", "", "X axis upper limit")
	cmd.Flags().StringVar(&opts.YUnit, "y-unit", "", "Y axis unit label")
	cmd.Flags().StringVar(&opts.YMin, "y-min", "", "Y axis lower limit")
	cmd.Flags().StringVar(&opts.YMax, "y-max", "", "Y axis upper limit")
	cmd.Flags().StringVar(&opts.TMin, "t-min", "", "Start of the sample window, in time units")
	cmd.Flags().StringVar(&opts.TMax, "t-max", "", "End of the sample window, in time units")
	cmd.Flags().StringVarP(&opts.Measurement, "measurement", "m", "", "Measurement index for multi-measurement logs")
	cmd.Flags().StringVar(&opts.BW, "bw", "", "Black and white style (Y/N)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output image path (default graph.png)")
	cmd.Flags().IntVar(&opts.DPI, "dpi", 0, "Raster resolution (default 600)")
	cmd.Flags().BoolVar(&opts.SkipMalformed, "skip-malformed", false, "Drop rows with non-numeric values instead of failing")

	return cmd
}

func runPlot(cmd *cobra.Command, args []string, opts *PlotOptions) error {
	logPath := args[0]
	ctx := commandContext(cmd)
	logger := newLogger(cmd)

	cfg, err := loadProfile(cmd, opts.Profile)
	if err != nil {
		return err
	}
	applyPlotFlags(cmd, cfg, opts)
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	ds, err := parseLog(cmd, logPath, cfg, opts.SkipMalformed)
	if err != nil {
		return err
	}

	axis, err := axisConfig(&cfg.Plot, ds.Legend)
	if err != nil {
		return fmt.Errorf("selecting channels: %w", err)
	}

	sel, err := selector.Select(ds, axis)
	if err != nil {
		return fmt.Errorf("selecting channels: %w", err)
	}

	width, height := cfg.Render.Size()
	r := render.New(
		render.WithOutput(cfg.Render.Output),
		render.WithDPI(cfg.Render.DPI),
		render.WithSize(width, height),
		render.WithLogger(logger),
	)

	path, err := r.Render(ctx, sel, styleFor(&cfg.Plot))
	if err != nil {
		return fmt.Errorf("rendering plot: %w", err)
	}

	if !isQuiet(cmd) {
		fmt.Fprintf(cmd.OutOrStdout(), "Plot written to %s\n", path)
	}
	return nil
}

// loadProfile reads the profile at path, or the defaults when path is empty.
// Validation is left to the caller, after flag overrides.
func loadProfile(cmd *cobra.Command, path string) (*config.Config, error) {
	cfg, err := config.Read(commandContext(cmd), path)
	if err != nil {
		return nil, fmt.Errorf("loading profile: %w", err)
	}
	return cfg, nil
}

// parseLog reads the log file with the profile's parse settings.
func parseLog(cmd *cobra.Command, path string, cfg *config.Config, skipMalformed bool) (*logfile.Dataset, error) {
	parseOpts := []logfile.Option{logfile.WithLogger(newLogger(cmd))}
	if skipMalformed || cfg.Parse.SkipMalformedRows {
		parseOpts = append(parseOpts, logfile.WithSkipMalformedRows())
	}

	ds, err := logfile.Parse(commandContext(cmd), path, parseOpts...)
	if err != nil {
		return nil, fmt.Errorf("parsing log: %w", err)
	}
	return ds, nil
}

func applyPlotFlags(cmd *cobra.Command, cfg *config.Config, opts *PlotOptions) {
	flags := cmd.Flags()
	set := func(name string, dst *string, value string) {
		if flags.Changed(name) {
			*dst = value
		}
	}

	p := &cfg.Plot
	set("title", &p.Title, opts.Title)
	set("x", &p.X.Channel, opts.X)
	set("x-unit", &p.X.Unit, opts.XUnit)
	set("x-min", &p.X.Min, opts.XMin)
	set("x-max", &p.X.Max, opts.XMax)
	set("y-unit", &p.Y.Unit, opts.YUnit)
	set("y-min", &p.Y.Min, opts.YMin)
	set("y-max", &p.Y.Max, opts.YMax)
	set("t-min", &p.TMin, opts.TMin)
	set("t-max", &p.TMax, opts.TMax)
	set("measurement", &p.Measurement, opts.Measurement)
	set("output", &cfg.Render.Output, opts.Output)

	if flags.Changed("y") {
		p.Y.Channels = opts.Y
	}
	if flags.Changed("bw") {
		p.Grayscale = config.Flag(config.ParseFlag(opts.BW))
	}
	if flags.Changed("dpi") {
		cfg.Render.DPI = opts.DPI
	}
}

func axisConfig(p *config.PlotConfig, legend []string) (selector.AxisConfig, error) {
	x, err := selector.ParseChannel(p.X.Channel, legend)
	if err != nil {
		return selector.AxisConfig{}, fmt.Errorf("x: %w", err)
	}
	y, err := selector.ParseChannels(p.Y.Channels, legend)
	if err != nil {
		return selector.AxisConfig{}, fmt.Errorf("y: %w", err)
	}

	return selector.AxisConfig{
		XChannel:      x,
		YChannels:     y,
		TMin:          selector.ParseOptionalInt(p.TMin),
		TMax:          selector.ParseOptionalInt(p.TMax),
		MeasurementID: selector.ParseOptionalInt(p.Measurement),
	}, nil
}

func styleFor(p *config.PlotConfig) render.Style {
	return render.Style{
		Title:     p.Title,
		XUnit:     p.X.Unit,
		YUnit:     p.Y.Unit,
		XMin:      selector.ParseOptionalInt(p.X.Min),
		XMax:      selector.ParseOptionalInt(p.X.Max),
		YMin:      selector.ParseOptionalInt(p.Y.Min),
		YMax:      selector.ParseOptionalInt(p.Y.Max),
		Grayscale: bool(p.Grayscale),
	}
}
