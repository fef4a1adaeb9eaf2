// Package export writes a parsed dataset to delimited text or a workbook.
package export

import (
	"context"
	"errors"
	"fmt"

	"github.com/ccollicutt/graphdrawer/pkg/logfile"
)

// Provenance details written into every export.
const (
	Tool     = "GraphDrawer"
	Homepage = "https://azuxul.fr"
)

// ErrTimeAxisOverflow indicates a measurement has more samples than the
// synthetic time axis has points.
var ErrTimeAxisOverflow = errors.New("measurement is longer than the time axis")

// Exporter serializes a whole dataset.
type Exporter interface {
	// Export writes ds next to baseName and returns the written path.
	Export(ctx context.Context, ds *logfile.Dataset, baseName string) (string, error)

	// Name returns the format name (csv, xlsx).
	Name() string
}

// New returns the exporter for format.
func New(format string) (Exporter, error) {
	switch format {
	case "", "csv":
		return NewCSVExporter(), nil
	case "xlsx":
		return NewXLSXExporter(), nil
	default:
		return nil, fmt.Errorf("unknown export format %q (use csv or xlsx)", format)
	}
}

// Provenance returns the header comment naming the source device.
func Provenance(device string) string {
	return fmt.Sprintf("# Converted data file from %s with %s, %s", device, Tool, Homepage)
}

// checkTimeAxis rejects datasets whose samples cannot all be given a
// synthetic time value.
func checkTimeAxis(ds *logfile.Dataset) error {
	for i, m := range ds.Measurements {
		if len(m) > logfile.GridPoints {
			return fmt.Errorf("measurement %d has %d samples (max %d): %w",
				i, len(m), logfile.GridPoints, ErrTimeAxisOverflow)
		}
	}
	return nil
}
