package export

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/ccollicutt/graphdrawer/pkg/logfile"
)

// Delimiter separates CSV fields.
const Delimiter = ';'

// CSVExporter writes semicolon-delimited text.
type CSVExporter struct{}

// NewCSVExporter creates a CSV exporter.
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// Name returns the format name.
func (e *CSVExporter) Name() string {
	return "csv"
}

// Export writes baseName + ".csv".
func (e *CSVExporter) Export(ctx context.Context, ds *logfile.Dataset, baseName string) (string, error) {
	if err := checkTimeAxis(ds); err != nil {
		return "", err
	}

	path := baseName + ".csv"
	f, err := os.Create(path) // #nosec G304 -- output next to the user's input file
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}

	if err := e.Write(ctx, ds, f); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", path, err)
	}
	return path, nil
}

// Write renders ds as CSV to w. Each measurement is introduced by a blank
// line, its id and the legend row. Every sample row starts with the
// synthetic time of its position in the block.
func (e *CSVExporter) Write(ctx context.Context, ds *logfile.Dataset, w io.Writer) error {
	if err := checkTimeAxis(ds); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	// The provenance line ends with a space.
	if _, err := fmt.Fprintf(bw, "%s \n", Provenance(ds.DeviceName)); err != nil {
		return err
	}

	cw := csv.NewWriter(bw)
	cw.Comma = Delimiter

	for i, m := range ds.Measurements {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := cw.Write(nil); err != nil {
			return err
		}
		if err := cw.Write([]string{"Measurement id: " + strconv.Itoa(i)}); err != nil {
			return err
		}
		if err := cw.Write(ds.Legend); err != nil {
			return err
		}

		for j, sample := range m {
			row := make([]string, 0, len(sample)+1)
			row = append(row, FormatFloat(logfile.TimeAt(j)))
			for _, v := range sample {
				row = append(row, FormatFloat(v))
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	return bw.Flush()
}
