package output

import (
	"context"
	"encoding/json"
	"io"
)

// JSONFormatter formats summaries as JSON.
type JSONFormatter struct {
	opts FormatOptions
}

// NewJSONFormatter creates a new JSON formatter with the given options.
func NewJSONFormatter(opts FormatOptions) *JSONFormatter {
	return &JSONFormatter{opts: opts}
}

// Name returns the format name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// quietSummary is the reduced JSON shape printed in quiet mode.
type quietSummary struct {
	Device       string `json:"device"`
	Measurements int    `json:"measurements"`
	Samples      int    `json:"samples"`
	Warnings     int    `json:"warnings"`
}

// Format renders the summary as JSON.
func (f *JSONFormatter) Format(ctx context.Context, summary *Summary, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if f.opts.Quiet {
		return encoder.Encode(quietSummary{
			Device:       summary.Device,
			Measurements: summary.ParsedMeasurements,
			Samples:      summary.TotalSamples(),
			Warnings:     len(summary.Warnings),
		})
	}

	return encoder.Encode(summary)
}
