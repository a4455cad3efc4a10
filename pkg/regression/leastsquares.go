// Package regression fits a single global line to a core's temperature
// readings by solving the least-squares normal equations
//
//	(XᵀX)·c = XᵀY
//
// where X has the rows [1, t_i] and Y the rows [v_i]. The solution c holds
// the intercept and slope of the fitted line, in that order.
package regression

import (
	"errors"
	"fmt"

	"cputemps/internal/models"
	"cputemps/pkg/linalg"
)

var (
	// ErrLengthMismatch is returned when times and values are not index-aligned
	ErrLengthMismatch = errors.New("times and values have different lengths")

	// ErrInsufficientData is returned when fewer than two points are given
	ErrInsufficientData = errors.New("at least two points are required")
)

// Calculate fits y = intercept + slope·t to the points using the default
// pivot tolerance.
func Calculate(times []int64, values []float64) (models.GlobalLine, error) {
	return CalculateWithTolerance(times, values, linalg.DefaultPivotTolerance)
}

// CalculateWithTolerance is Calculate with an explicit relative pivot
// tolerance for the normal-equation solve. Identical timestamps make the
// system singular and return linalg.ErrSingularSystem.
func CalculateWithTolerance(times []int64, values []float64, tolerance float64) (models.GlobalLine, error) {
	if len(times) != len(values) {
		return models.GlobalLine{}, fmt.Errorf("%d times, %d values: %w", len(times), len(values), ErrLengthMismatch)
	}
	if len(times) < 2 {
		return models.GlobalLine{}, fmt.Errorf("got %d points: %w", len(times), ErrInsufficientData)
	}

	xtx, xty, err := normalEquations(times, values)
	if err != nil {
		return models.GlobalLine{}, err
	}

	solved, err := linalg.SolveWithTolerance(xtx, xty, tolerance)
	if err != nil {
		return models.GlobalLine{}, fmt.Errorf("error solving normal equations: %w", err)
	}

	return models.GlobalLine{
		Slope:     solved.At(1, 0),
		Intercept: solved.At(0, 0),
	}, nil
}

// normalEquations builds XᵀX and XᵀY for the design matrix of a line
func normalEquations(times []int64, values []float64) (xtx, xty *linalg.Matrix, err error) {
	xRows := make([][]float64, len(times))
	for i, t := range times {
		xRows[i] = []float64{1, float64(t)}
	}

	x, err := linalg.NewMatrix(xRows)
	if err != nil {
		return nil, nil, fmt.Errorf("error building design matrix: %w", err)
	}
	y, err := linalg.NewColumn(values)
	if err != nil {
		return nil, nil, fmt.Errorf("error building observation vector: %w", err)
	}

	xt, err := linalg.Transpose(x)
	if err != nil {
		return nil, nil, err
	}
	if xtx, err = linalg.Multiply(xt, x); err != nil {
		return nil, nil, err
	}
	if xty, err = linalg.Multiply(xt, y); err != nil {
		return nil, nil, err
	}

	return xtx, xty, nil
}

// Format renders the fitted line as a single report line spanning the first
// and last reading:
//
//	<t_0> <= x < <t_last>; y  = <intercept> + <slope>x; least-squares
//
// The blank 8-column field after "y" lines the equals sign up with the
// indexed piecewise lines.
func Format(line models.GlobalLine, times []int64) string {
	if len(times) == 0 {
		return ""
	}
	return fmt.Sprintf("%8d <= x <%8d; y %-8s = %12.4f + %12.4fx; least-squares\n",
		times[0], times[len(times)-1], " ", line.Intercept, line.Slope)
}
