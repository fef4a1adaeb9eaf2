package output

import (
	"context"
	"fmt"
	"io"

	"github.com/ccollicutt/graphdrawer/pkg/logfile"
)

// TextFormatter formats summaries as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the summary as text.
func (f *TextFormatter) Format(ctx context.Context, summary *Summary, w io.Writer) error {
	if f.opts.Quiet {
		return f.formatQuiet(summary, w)
	}
	return f.formatFull(summary, w)
}

func (f *TextFormatter) formatQuiet(s *Summary, w io.Writer) error {
	_, err := fmt.Fprintf(w, "GraphDrawer: %s, %d measurement(s), %d channel(s), %d sample(s), %d warning(s)\n",
		s.Device, s.ParsedMeasurements, len(s.Channels), s.TotalSamples(), len(s.Warnings))
	return err
}

func (f *TextFormatter) formatFull(s *Summary, w io.Writer) error {
	fmt.Fprintln(w, "=== GraphDrawer Dataset ===")
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Device:       %s\n", s.Device)
	if s.Source != "" {
		fmt.Fprintf(w, "Source:       %s\n", s.Source)
	}
	fmt.Fprintf(w, "Measurements: %d (declared %d)\n", s.ParsedMeasurements, s.DeclaredMeasurements)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Channels:")
	for i, name := range s.Channels {
		fmt.Fprintf(w, "  %d  %s\n", i, name)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Samples:")
	for i, n := range s.Samples {
		fmt.Fprintf(w, "  [%d] %d", i, n)
		if f.opts.Verbose && n > 0 {
			last := n - 1
			if last >= logfile.GridPoints {
				last = logfile.GridPoints - 1
			}
			fmt.Fprintf(w, "  (t = 0 .. %g)", logfile.TimeAt(last))
		}
		fmt.Fprintln(w)
	}

	if s.HasWarnings() {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Warnings:")
		for _, warning := range s.Warnings {
			fmt.Fprintf(w, "  - %s\n", warning)
		}
	}

	fmt.Fprintln(w, "---")
	_, err := fmt.Fprintf(w, "Summary: %d sample(s) in %d measurement(s), %s\n",
		s.TotalSamples(), s.ParsedMeasurements, pluralWarnings(len(s.Warnings)))
	return err
}

func pluralWarnings(n int) string {
	switch n {
	case 0:
		return "no warnings"
	case 1:
		return "1 warning"
	default:
		return fmt.Sprintf("%d warnings", n)
	}
}
