// Package selector derives plottable X/Y series from a parsed dataset.
package selector

// AxisConfig is the user's channel and window choice.
// Nil pointers stand for absent or unparseable input and take defaults.
type AxisConfig struct {
	// XChannel is an index into the legend; 0 is the synthetic time axis.
	XChannel int

	// YChannels is a set of legend indices.
	YChannels []int

	// TMin and TMax bound the sample window in time-axis units.
	TMin *int
	TMax *int

	// MeasurementID picks the block. Ignored for single-block files.
	MeasurementID *int
}

// Series is one named sequence of values.
type Series struct {
	Channel int
	Name    string
	Values  []float64
}

// Selection holds the resolved axes.
type Selection struct {
	X Series

	// Y keeps the ascending channel order of the selected set.
	Y []Series

	// MeasurementID is the block the series were read from.
	MeasurementID int
}
