package linalg

import (
	"fmt"
	"math"
)

// DefaultPivotTolerance is the relative pivot magnitude, as a fraction of the
// largest element of the system matrix, below which a system is singular.
const DefaultPivotTolerance = 1e-12

// Solve solves the square system a·x = b, where b is an n×1 column, and
// returns x as an n×1 column.
func Solve(a, b *Matrix) (*Matrix, error) {
	return SolveWithTolerance(a, b, DefaultPivotTolerance)
}

// SolveWithTolerance is Solve with an explicit relative pivot tolerance.
//
// The system is reduced by Gauss-Jordan elimination: for every column the row
// with the largest magnitude at or below the diagonal is swapped into place
// and scaled to a unit pivot, the rows below are cleared, and a final
// backward pass clears the upper triangle.
func SolveWithTolerance(a, b *Matrix, tolerance float64) (*Matrix, error) {
	if a == nil || b == nil || a.dense == nil || b.dense == nil {
		return nil, ErrEmptyMatrix
	}

	n, ac := a.Dims()
	if n != ac {
		return nil, fmt.Errorf("system matrix is %dx%d: %w", n, ac, ErrNotSquare)
	}
	br, bc := b.Dims()
	if br != n || bc != 1 {
		return nil, fmt.Errorf("right-hand side is %dx%d, want %dx1: %w", br, bc, n, ErrDimensionMismatch)
	}

	sys := newElimination(a, b)
	largest := sys.maxAbs()
	if largest == 0 {
		return nil, fmt.Errorf("system matrix is zero: %w", ErrSingularSystem)
	}
	threshold := tolerance * largest

	for col := 0; col < n; col++ {
		sys.pivot(col)
		if p := sys.lhs[col][col]; math.Abs(p) <= threshold {
			return nil, fmt.Errorf("pivot %g in column %d: %w", p, col, ErrSingularSystem)
		}
		sys.scale(col)
		sys.eliminate(col)
	}
	sys.backEliminate()

	return NewColumn(sys.rhs)
}

// elimination is the working copy of one system. It is created and
// discarded within a single call to SolveWithTolerance.
type elimination struct {
	lhs [][]float64
	rhs []float64
}

func newElimination(a, b *Matrix) *elimination {
	n, _ := a.Dims()
	e := &elimination{
		lhs: a.Rows(),
		rhs: make([]float64, n),
	}
	for i := range e.rhs {
		e.rhs[i] = b.At(i, 0)
	}
	return e
}

func (e *elimination) maxAbs() float64 {
	largest := 0.0
	for _, row := range e.lhs {
		for _, v := range row {
			if a := math.Abs(v); a > largest {
				largest = a
			}
		}
	}
	return largest
}

// pivot swaps the row with the largest magnitude in col, searching from the
// diagonal down, into the diagonal position.
func (e *elimination) pivot(col int) {
	best := col
	for i := col + 1; i < len(e.lhs); i++ {
		if math.Abs(e.lhs[i][col]) > math.Abs(e.lhs[best][col]) {
			best = i
		}
	}
	if best != col {
		e.lhs[col], e.lhs[best] = e.lhs[best], e.lhs[col]
		e.rhs[col], e.rhs[best] = e.rhs[best], e.rhs[col]
	}
}

// scale divides the row by its diagonal element
func (e *elimination) scale(row int) {
	p := e.lhs[row][row]
	for j := row; j < len(e.lhs[row]); j++ {
		e.lhs[row][j] /= p
	}
	e.lhs[row][row] = 1
	e.rhs[row] /= p
}

// eliminate clears column row below the diagonal
func (e *elimination) eliminate(row int) {
	for i := row + 1; i < len(e.lhs); i++ {
		factor := e.lhs[i][row]
		if factor == 0 {
			continue
		}
		for j := row + 1; j < len(e.lhs[i]); j++ {
			e.lhs[i][j] -= factor * e.lhs[row][j]
		}
		e.lhs[i][row] = 0
		e.rhs[i] -= factor * e.rhs[row]
	}
}

// backEliminate clears the upper triangle of a unit upper-triangular system
func (e *elimination) backEliminate() {
	for col := len(e.lhs) - 1; col > 0; col-- {
		for i := col - 1; i >= 0; i-- {
			factor := e.lhs[i][col]
			e.lhs[i][col] = 0
			e.rhs[i] -= factor * e.rhs[col]
		}
	}
}
