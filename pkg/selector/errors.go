package selector

import (
	"errors"
	"fmt"
)

var (
	ErrChannelOutOfRange     = errors.New("channel index out of range")
	ErrMeasurementOutOfRange = errors.New("measurement id out of range")
	ErrNoYChannels           = errors.New("no Y channel selected")
	ErrShortSample           = errors.New("sample has fewer values than the legend")
	ErrUnknownChannel        = errors.New("unknown channel")
)

// SelectionError reports a channel or measurement choice that does not fit
// the dataset.
type SelectionError struct {
	Field string // "x", "y", "measurement"
	Value int
	Limit int // exclusive upper bound that Value violated
	Err   error
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("%s: %v (got %d, valid range 0..%d)", e.Field, e.Err, e.Value, e.Limit-1)
}

func (e *SelectionError) Unwrap() error {
	return e.Err
}
