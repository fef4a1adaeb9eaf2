// Package logfile reads instrument measurement logs into an in-memory dataset.
package logfile

// TimeLabel is the synthetic first legend entry. Time is generated, never stored.
const TimeLabel = "Time"

// Sample is one time step's reading, one value per channel.
type Sample []float64

// Measurement is one recorded block of samples.
type Measurement []Sample

// Dataset is the parsed content of a log file.
type Dataset struct {
	// DeviceName is the first header line with trailing whitespace removed.
	DeviceName string

	// MeasurementCount is the block count declared on header line 3.
	// It is a display hint and may differ from len(Measurements) when a
	// file is truncated.
	MeasurementCount int

	// Legend holds the channel names, starting with TimeLabel.
	Legend []string

	// Measurements holds every block found in the file, in file order.
	Measurements []Measurement

	// Source is the path the dataset was read from.
	Source string

	// SkippedRows counts sample rows dropped in skip-malformed mode.
	SkippedRows int
}

// ChannelCount returns the number of stored channels (Time excluded).
func (d *Dataset) ChannelCount() int {
	if len(d.Legend) == 0 {
		return 0
	}
	return len(d.Legend) - 1
}

// SampleCount returns the total number of samples across all blocks.
func (d *Dataset) SampleCount() int {
	n := 0
	for _, m := range d.Measurements {
		n += len(m)
	}
	return n
}
