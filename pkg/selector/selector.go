package selector

import (
	"fmt"
	"math"
	"sort"

	"github.com/ccollicutt/graphdrawer/pkg/logfile"
)

// Select resolves cfg against ds.
//
// Channel 0 yields the full synthetic time axis. Any other channel k yields
// value k-1 of every sample in the chosen block, cut to the time window.
func Select(ds *logfile.Dataset, cfg AxisConfig) (*Selection, error) {
	id, err := resolveMeasurement(ds, cfg.MeasurementID)
	if err != nil {
		return nil, err
	}

	ys := uniqueSorted(cfg.YChannels)
	if len(ys) == 0 {
		return nil, &SelectionError{Field: "y", Value: 0, Limit: len(ds.Legend), Err: ErrNoYChannels}
	}

	lo, hi := Window(cfg.TMin, cfg.TMax)
	block := ds.Measurements[id]

	x, err := resolveChannel(ds, block, "x", cfg.XChannel, lo, hi)
	if err != nil {
		return nil, err
	}

	sel := &Selection{X: x, Y: make([]Series, 0, len(ys)), MeasurementID: id}
	for _, ch := range ys {
		y, err := resolveChannel(ds, block, "y", ch, lo, hi)
		if err != nil {
			return nil, err
		}
		sel.Y = append(sel.Y, y)
	}

	return sel, nil
}

// Window maps time bounds to sample indices with the fixed grid scale
// floor(GridPoints * t / GridSpan). Absent bounds give [0, GridPoints).
func Window(tMin, tMax *int) (lo, hi int) {
	lo, hi = 0, logfile.GridPoints
	if tMin != nil {
		lo = timeToIndex(*tMin)
	}
	if tMax != nil {
		hi = timeToIndex(*tMax)
	}
	return lo, hi
}

func timeToIndex(t int) int {
	return int(math.Floor(float64(logfile.GridPoints) * float64(t) / logfile.GridSpan))
}

func resolveMeasurement(ds *logfile.Dataset, requested *int) (int, error) {
	n := len(ds.Measurements)
	id := 0
	if requested != nil && ds.MeasurementCount > 1 {
		id = *requested
	}
	if id < 0 || id >= n {
		return 0, &SelectionError{Field: "measurement", Value: id, Limit: n, Err: ErrMeasurementOutOfRange}
	}
	return id, nil
}

func resolveChannel(ds *logfile.Dataset, block logfile.Measurement, field string, ch, lo, hi int) (Series, error) {
	if ch < 0 || ch >= len(ds.Legend) {
		return Series{}, &SelectionError{Field: field, Value: ch, Limit: len(ds.Legend), Err: ErrChannelOutOfRange}
	}

	s := Series{Channel: ch, Name: ds.Legend[ch]}
	if ch == 0 {
		s.Values = logfile.TimeAxis()
		return s, nil
	}

	lo, hi = clamp(lo, hi, len(block))
	s.Values = make([]float64, 0, hi-lo)
	for i, sample := range block[lo:hi] {
		if ch-1 >= len(sample) {
			return Series{}, &SelectionError{
				Field: field,
				Value: ch,
				Limit: len(sample) + 1,
				Err:   fmt.Errorf("%w (sample %d)", ErrShortSample, lo+i),
			}
		}
		s.Values = append(s.Values, sample[ch-1])
	}
	return s, nil
}

// clamp bounds a slice window to [0, n]. An inverted window is empty.
func clamp(lo, hi, n int) (int, int) {
	lo = max(0, min(lo, n))
	hi = max(0, min(hi, n))
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

func uniqueSorted(channels []int) []int {
	seen := make(map[int]bool, len(channels))
	out := make([]int, 0, len(channels))
	for _, ch := range channels {
		if !seen[ch] {
			seen[ch] = true
			out = append(out, ch)
		}
	}
	sort.Ints(out)
	return out
}
