package logfile

// The synthetic time axis is a fixed grid, independent of the recorded data.
const (
	GridPoints = 500
	GridSpan   = 10.0
)

// TimeAxis returns GridPoints evenly spaced values from 0 to GridSpan inclusive.
func TimeAxis() []float64 {
	axis := make([]float64, GridPoints)
	for i := range axis {
		axis[i] = TimeAt(i)
	}
	return axis
}

// TimeAt returns the i-th point of the synthetic time axis. Callers must keep
// i within [0, GridPoints).
func TimeAt(i int) float64 {
	if i == GridPoints-1 {
		return GridSpan
	}
	return float64(i) * (GridSpan / float64(GridPoints-1))
}
