// Package interpolation connects consecutive temperature readings of a core
// with straight line segments.
package interpolation

import (
	"errors"
	"fmt"
	"strings"

	"cputemps/internal/models"
)

// ErrLengthMismatch is returned when times and values are not index-aligned
var ErrLengthMismatch = errors.New("times and values have different lengths")

// Calculate returns one segment per consecutive pair of points.
// Segment i joins (times[i], values[i]) and (times[i+1], values[i+1]).
// Fewer than two points yield no segments.
func Calculate(times []int64, values []float64) ([]models.LineSegment, error) {
	if len(times) != len(values) {
		return nil, fmt.Errorf("%d times, %d values: %w", len(times), len(values), ErrLengthMismatch)
	}
	if len(times) < 2 {
		return []models.LineSegment{}, nil
	}

	segments := make([]models.LineSegment, 0, len(times)-1)
	for i := 0; i < len(times)-1; i++ {
		slope := calculateSlope(times[i], times[i+1], values[i], values[i+1])
		segments = append(segments, models.LineSegment{
			Slope:     slope,
			Intercept: calculateIntercept(times[i], values[i], slope),
		})
	}

	return segments, nil
}

func calculateSlope(x0, x1 int64, y0, y1 float64) float64 {
	return (y1 - y0) / float64(x1-x0)
}

func calculateIntercept(x int64, y, slope float64) float64 {
	return y - slope*float64(x)
}

// Format renders one report line per segment:
//
//	<t_i> <= x < <t_i+1>; y_<i> = <intercept> + <slope>x; interpolation
//
// Times are right-aligned in 8 columns, the index is left-aligned in 8 and
// the coefficients are right-aligned in 12 with 4 decimals.
func Format(segments []models.LineSegment, times []int64) string {
	var sb strings.Builder
	for i, seg := range segments {
		if i+1 >= len(times) {
			break
		}
		fmt.Fprintf(&sb, "%8d <= x <%8d; y_%-8d = %12.4f + %12.4fx; interpolation\n",
			times[i], times[i+1], i, seg.Intercept, seg.Slope)
	}
	return sb.String()
}
