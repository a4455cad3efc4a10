package linalg

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustColumn(t *testing.T, values ...float64) *Matrix {
	t.Helper()
	m, err := NewColumn(values)
	require.NoError(t, err)
	return m
}

func TestSolveKnownSystem(t *testing.T) {
	a := mustMatrix(t, [][]float64{{2, 1}, {1, 3}})
	b := mustColumn(t, 3, 5)

	x, err := Solve(a, b)
	require.NoError(t, err)

	r, c := x.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 1, c)
	assert.InDelta(t, 4.0/5.0, x.At(0, 0), 1e-12)
	assert.InDelta(t, 7.0/5.0, x.At(1, 0), 1e-12)
}

func TestSolveThreeByThree(t *testing.T) {
	a := mustMatrix(t, [][]float64{
		{2, 1, 1},
		{1, 3, 1},
		{1, 1, 4},
	})
	b := mustColumn(t, 7, 10, 15)

	x, err := Solve(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, x.At(0, 0), 1e-12)
	assert.InDelta(t, 2.0, x.At(1, 0), 1e-12)
	assert.InDelta(t, 3.0, x.At(2, 0), 1e-12)
}

func TestSolveNeedsPivoting(t *testing.T) {
	// Zero on the diagonal: fails without a row swap
	a := mustMatrix(t, [][]float64{
		{0, 1, 2},
		{1, 0, 3},
		{4, -3, 8},
	})
	want := []float64{-1, 2, 0.5}

	bRows := make([]float64, 3)
	for i, row := range a.Rows() {
		for j, v := range row {
			bRows[i] += v * want[j]
		}
	}

	x, err := Solve(a, mustColumn(t, bRows...))
	require.NoError(t, err)
	for i, w := range want {
		assert.InDelta(t, w, x.At(i, 0), 1e-12)
	}
}

func TestSolveNegativePivot(t *testing.T) {
	// The largest magnitude in the first column is negative
	a := mustMatrix(t, [][]float64{{1, 1}, {-10, 1}})
	b := mustColumn(t, 2, -9)

	x, err := Solve(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, x.At(0, 0), 1e-12)
	assert.InDelta(t, 1.0, x.At(1, 0), 1e-12)
}

func TestSolveResidual(t *testing.T) {
	a := mustMatrix(t, [][]float64{
		{10, -2, 1, 3},
		{3, 12, -4, 2},
		{2, 1, 9, -5},
		{1, -3, 2, 8},
	})
	b := mustColumn(t, 1, 2, 3, 4)

	x, err := Solve(a, b)
	require.NoError(t, err)

	ax, err := Multiply(a, x)
	require.NoError(t, err)
	assert.True(t, ax.Equal(b, 1e-10), "A·x = %v, want %v", ax, b)
}

func TestSolveLeavesInputsUntouched(t *testing.T) {
	a := mustMatrix(t, [][]float64{{1, 3}, {2, 1}})
	b := mustColumn(t, 5, 5)

	_, err := Solve(a, b)
	require.NoError(t, err)

	assert.Equal(t, [][]float64{{1, 3}, {2, 1}}, a.Rows())
	assert.Equal(t, [][]float64{{5}, {5}}, b.Rows())
}

func TestSolveSingular(t *testing.T) {
	tests := []struct {
		name string
		a    [][]float64
	}{
		{"zero matrix", [][]float64{{0, 0}, {0, 0}}},
		{"dependent rows", [][]float64{{1, 2}, {2, 4}}},
		{"zero column", [][]float64{{0, 1}, {0, 3}}},
		{"nearly dependent", [][]float64{{1, 1}, {1, 1 + 1e-15}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, err := Solve(mustMatrix(t, tt.a), mustColumn(t, 1, 1))
			require.ErrorIs(t, err, ErrSingularSystem)
			assert.Nil(t, x)
		})
	}
}

func TestSolveWithToleranceZero(t *testing.T) {
	// With a zero tolerance only an exact zero pivot is rejected
	a := mustMatrix(t, [][]float64{{1, 1}, {1, 1 + 1e-9}})
	x, err := SolveWithTolerance(a, mustColumn(t, 2, 2+1e-9), 0)
	require.NoError(t, err)
	assert.False(t, math.IsNaN(x.At(0, 0)))
	assert.InDelta(t, 1.0, x.At(0, 0), 1e-6)
	assert.InDelta(t, 1.0, x.At(1, 0), 1e-6)
}

func TestSolveShapeErrors(t *testing.T) {
	square := mustMatrix(t, [][]float64{{1, 0}, {0, 1}})

	_, err := Solve(mustMatrix(t, [][]float64{{1, 2, 3}, {4, 5, 6}}), mustColumn(t, 1, 2))
	assert.ErrorIs(t, err, ErrNotSquare)

	_, err = Solve(square, mustColumn(t, 1, 2, 3))
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = Solve(square, mustMatrix(t, [][]float64{{1, 2}, {3, 4}}))
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = Solve(nil, mustColumn(t, 1))
	assert.ErrorIs(t, err, ErrEmptyMatrix)
}
