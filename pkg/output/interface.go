package output

import (
	"context"
	"fmt"
	"io"
)

// Formatter renders a dataset summary in a specific format.
type Formatter interface {
	// Format renders the summary to the given writer.
	Format(ctx context.Context, summary *Summary, w io.Writer) error

	// Name returns the format name (text, json).
	Name() string
}

// FormatOptions controls formatter behavior.
type FormatOptions struct {
	// Verbose adds per-measurement time coverage.
	Verbose bool

	// Quiet enables minimal one-line output.
	Quiet bool
}

// New returns the formatter registered under name. An empty name selects text.
func New(name string, opts FormatOptions) (Formatter, error) {
	switch name {
	case "", "text":
		return NewTextFormatter(opts), nil
	case "json":
		return NewJSONFormatter(opts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (must be text or json)", name)
	}
}
