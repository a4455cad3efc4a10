package models

// NumCores is the number of CPU cores reported on every input line.
// Each core is modeled as an independent channel sharing one time axis.
const NumCores = 4

// Reading represents a single acquisition of all core temperatures
type Reading struct {
	// Time is the acquisition timestamp in seconds
	Time int64

	// Values holds one temperature per core, indexed by core number
	Values []float64
}

// ChannelSeries is the time/value view of a single core.
// Values[i] was read at Times[i].
type ChannelSeries struct {
	Times  []int64
	Values []float64
}

// Len returns the number of points in the series
func (s ChannelSeries) Len() int {
	return len(s.Times)
}

// LineSegment is one piece of a piecewise-linear interpolation, valid over
// the half-open interval between two consecutive readings.
type LineSegment struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
}

// At evaluates the segment's line at time t
func (l LineSegment) At(t int64) float64 {
	return l.Intercept + l.Slope*float64(t)
}

// GlobalLine is a single line fitted across the full time span of a series
type GlobalLine struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
}

// At evaluates the line at time t
func (g GlobalLine) At(t int64) float64 {
	return g.Intercept + g.Slope*float64(t)
}
