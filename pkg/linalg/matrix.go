// Package linalg provides the small dense linear-algebra engine used to fit
// least-squares lines: transpose, product and the solution of square systems
// by Gaussian elimination with partial pivoting.
//
// Matrices are values owned by a single calculation. Every operation returns
// a new Matrix and leaves its arguments untouched.
package linalg

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrEmptyMatrix is returned when a matrix has no rows or no columns
	ErrEmptyMatrix = errors.New("matrix is empty")

	// ErrRagged is returned when the rows of a matrix differ in length
	ErrRagged = errors.New("matrix rows have different lengths")

	// ErrDimensionMismatch is returned when operand shapes are incompatible
	ErrDimensionMismatch = errors.New("matrix dimensions do not match")

	// ErrNotSquare is returned when a square matrix is required
	ErrNotSquare = errors.New("matrix is not square")

	// ErrSingularSystem is returned when elimination meets a zero pivot
	ErrSingularSystem = errors.New("linear system is singular")
)

// Matrix is a non-empty rectangular matrix stored row-major
type Matrix struct {
	dense *mat.Dense
}

// NewMatrix creates a matrix from its rows. The rows are copied.
func NewMatrix(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyMatrix
	}

	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), cols, ErrRagged)
		}
		data = append(data, row...)
	}

	return &Matrix{dense: mat.NewDense(len(rows), cols, data)}, nil
}

// NewColumn creates an n×1 column vector
func NewColumn(values []float64) (*Matrix, error) {
	if len(values) == 0 {
		return nil, ErrEmptyMatrix
	}
	data := make([]float64, len(values))
	copy(data, values)
	return &Matrix{dense: mat.NewDense(len(values), 1, data)}, nil
}

// Identity returns the n×n identity matrix
func Identity(n int) (*Matrix, error) {
	if n <= 0 {
		return nil, ErrEmptyMatrix
	}
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return &Matrix{dense: m}, nil
}

// Dims returns the number of rows and columns
func (m *Matrix) Dims() (r, c int) {
	return m.dense.Dims()
}

// At returns the element at row i, column j
func (m *Matrix) At(i, j int) float64 {
	return m.dense.At(i, j)
}

// Rows returns a copy of the matrix as a slice of rows
func (m *Matrix) Rows() [][]float64 {
	r, c := m.dense.Dims()
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = make([]float64, c)
		copy(rows[i], m.dense.RawRowView(i))
	}
	return rows
}

// Equal reports whether m and o have the same shape and all elements
// differ by at most tol.
func (m *Matrix) Equal(o *Matrix, tol float64) bool {
	if m == nil || o == nil {
		return m == o
	}
	return mat.EqualApprox(m.dense, o.dense, tol)
}

// String formats the matrix for debugging
func (m *Matrix) String() string {
	return fmt.Sprintf("%v", mat.Formatted(m.dense, mat.Squeeze()))
}

// Transpose returns mᵀ
func Transpose(m *Matrix) (*Matrix, error) {
	if m == nil || m.dense == nil {
		return nil, ErrEmptyMatrix
	}
	return &Matrix{dense: mat.DenseCopyOf(m.dense.T())}, nil
}

// Multiply returns the product a·b. The number of columns of a must equal
// the number of rows of b; the result has the rows of a and the columns of b.
func Multiply(a, b *Matrix) (*Matrix, error) {
	if a == nil || b == nil || a.dense == nil || b.dense == nil {
		return nil, ErrEmptyMatrix
	}

	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ac != br {
		return nil, fmt.Errorf("cannot multiply %dx%d by %dx%d: %w", ar, ac, br, bc, ErrDimensionMismatch)
	}

	var product mat.Dense
	product.Mul(a.dense, b.dense)
	return &Matrix{dense: &product}, nil
}
