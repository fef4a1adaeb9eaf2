// Package output provides formatting for parsed dataset summaries.
package output

import (
	"fmt"

	"github.com/ccollicutt/graphdrawer/pkg/logfile"
)

// Summary describes a parsed log file.
type Summary struct {
	// Device is the instrument name from the header.
	Device string `json:"device"`

	// Source is the path the dataset was read from.
	Source string `json:"source"`

	// DeclaredMeasurements is the count announced in the header.
	DeclaredMeasurements int `json:"declared_measurements"`

	// ParsedMeasurements is the number of blocks actually found.
	ParsedMeasurements int `json:"parsed_measurements"`

	// Channels is the legend, Time first.
	Channels []string `json:"channels"`

	// Samples holds the sample count of each block.
	Samples []int `json:"samples"`

	// SkippedRows counts rows dropped for malformed values.
	SkippedRows int `json:"skipped_rows"`

	// Warnings lists conditions that will affect plotting or export.
	Warnings []string `json:"warnings,omitempty"`
}

// NewSummary creates a Summary from a parsed dataset.
func NewSummary(ds *logfile.Dataset) *Summary {
	s := &Summary{
		Device:               ds.DeviceName,
		Source:               ds.Source,
		DeclaredMeasurements: ds.MeasurementCount,
		ParsedMeasurements:   len(ds.Measurements),
		Channels:             append([]string(nil), ds.Legend...),
		Samples:              make([]int, len(ds.Measurements)),
		SkippedRows:          ds.SkippedRows,
	}

	for i, m := range ds.Measurements {
		s.Samples[i] = len(m)
		if len(m) > logfile.GridPoints {
			s.Warnings = append(s.Warnings, fmt.Sprintf(
				"measurement %d has %d samples, more than the %d-point time axis; export will fail",
				i, len(m), logfile.GridPoints))
		}
	}

	if s.DeclaredMeasurements != s.ParsedMeasurements {
		s.Warnings = append(s.Warnings, fmt.Sprintf(
			"header declares %d measurement(s) but %d were found",
			s.DeclaredMeasurements, s.ParsedMeasurements))
	}

	if s.SkippedRows > 0 {
		s.Warnings = append(s.Warnings, fmt.Sprintf("%d malformed row(s) skipped", s.SkippedRows))
	}

	return s
}

// HasWarnings returns true if the dataset raised any warning.
func (s *Summary) HasWarnings() bool {
	return len(s.Warnings) > 0
}

// TotalSamples returns the sample count across all blocks.
func (s *Summary) TotalSamples() int {
	n := 0
	for _, c := range s.Samples {
		n += c
	}
	return n
}
