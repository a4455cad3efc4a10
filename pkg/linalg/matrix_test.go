package linalg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMatrix(t *testing.T, rows [][]float64) *Matrix {
	t.Helper()
	m, err := NewMatrix(rows)
	require.NoError(t, err)
	return m
}

func TestNewMatrix(t *testing.T) {
	m := mustMatrix(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	r, c := m.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 6.0, m.At(1, 2))
	assert.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, m.Rows())

	_, err := NewMatrix(nil)
	assert.ErrorIs(t, err, ErrEmptyMatrix)

	_, err = NewMatrix([][]float64{{}})
	assert.ErrorIs(t, err, ErrEmptyMatrix)

	_, err = NewMatrix([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, ErrRagged)
}

func TestNewMatrixCopiesRows(t *testing.T) {
	rows := [][]float64{{1, 2}, {3, 4}}
	m := mustMatrix(t, rows)
	rows[0][0] = 100

	assert.Equal(t, 1.0, m.At(0, 0))
}

func TestTranspose(t *testing.T) {
	m := mustMatrix(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	mt, err := Transpose(m)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, mt.Rows())

	// Transposing twice gives back the original for any rectangular shape
	shapes := [][][]float64{
		{{7}},
		{{1, 2, 3, 4}},
		{{1}, {2}, {3}},
		{{1.5, -2}, {0, 3.25}, {9, 1e6}},
	}
	for _, rows := range shapes {
		m := mustMatrix(t, rows)
		once, err := Transpose(m)
		require.NoError(t, err)
		twice, err := Transpose(once)
		require.NoError(t, err)
		assert.True(t, twice.Equal(m, 0), "transpose of transpose differs for %v", rows)
	}

	_, err = Transpose(nil)
	assert.ErrorIs(t, err, ErrEmptyMatrix)
}

func TestMultiply(t *testing.T) {
	a := mustMatrix(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	b := mustMatrix(t, [][]float64{{7, 8, 9}, {10, 11, 12}})

	p, err := Multiply(a, b)
	require.NoError(t, err)

	r, c := p.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, [][]float64{
		{27, 30, 33},
		{61, 68, 75},
		{95, 106, 117},
	}, p.Rows())

	_, err = Multiply(a, a)
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = Multiply(a, nil)
	assert.ErrorIs(t, err, ErrEmptyMatrix)
}

func TestMultiplyByIdentity(t *testing.T) {
	m := mustMatrix(t, [][]float64{{1, -2, 3}, {0.5, 4, -6}})

	id, err := Identity(2)
	require.NoError(t, err)

	p, err := Multiply(id, m)
	require.NoError(t, err)
	assert.True(t, p.Equal(m, 0))

	_, err = Identity(0)
	assert.ErrorIs(t, err, ErrEmptyMatrix)
}

func TestMultiplyLeavesOperandsUntouched(t *testing.T) {
	a := mustMatrix(t, [][]float64{{1, 2}, {3, 4}})
	b := mustMatrix(t, [][]float64{{5}, {6}})

	_, err := Multiply(a, b)
	require.NoError(t, err)

	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, a.Rows())
	assert.Equal(t, [][]float64{{5}, {6}}, b.Rows())
}
