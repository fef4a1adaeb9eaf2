package logfile

import (
	"errors"
	"fmt"
)

var (
	// ErrTruncatedHeader indicates the file ended before the four header lines.
	ErrTruncatedHeader = errors.New("file too short")

	// ErrMeasurementCount indicates header line 3 does not start with an integer.
	ErrMeasurementCount = errors.New("measurement count is not an integer")

	// ErrMalformedLegend indicates the legend line holds no channel names.
	ErrMalformedLegend = errors.New("legend line has no channel names")

	// ErrRowWidth indicates a sample row does not hold one value per channel.
	ErrRowWidth = errors.New("row does not match the legend")
)

// FormatError reports an unusable header line.
type FormatError struct {
	Line  int    // 1-based line number
	Field string // "device name", "measurement count", "legend", ...
	Err   error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("header line %d (%s): %v", e.Line, e.Field, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// NumericParseError reports a sample token that is not a float.
type NumericParseError struct {
	Line   int // 1-based line number
	Column int // 1-based token position within the row
	Token  string
	Err    error
}

func (e *NumericParseError) Error() string {
	return fmt.Sprintf("line %d, value %d: cannot parse %q as a number: %v", e.Line, e.Column, e.Token, e.Err)
}

func (e *NumericParseError) Unwrap() error {
	return e.Err
}

// RowWidthError reports a sample row with too few or too many values.
type RowWidthError struct {
	Line int // 1-based line number
	Got  int
	Want int
}

func (e *RowWidthError) Error() string {
	return fmt.Sprintf("line %d: %v: %d value(s), want %d", e.Line, ErrRowWidth, e.Got, e.Want)
}

func (e *RowWidthError) Unwrap() error {
	return ErrRowWidth
}
