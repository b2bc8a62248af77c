package matrix_test

import (
	"testing"

	"github.com/koki-develop/ditherart/internal/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	m, err := matrix.New[float32](3, 2, 0.25)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Width())
	assert.Equal(t, 2, m.Height())

	for row := 0; row < 2; row++ {
		for col := 0; col < 3; col++ {
			v, err := m.At(row, col)
			require.NoError(t, err)
			assert.Equal(t, float32(0.25), v)
		}
	}
}

func TestNewZeroSized(t *testing.T) {
	m, err := matrix.New[float32](0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Width())
	assert.Equal(t, 0, m.Height())

	_, err = m.At(0, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestNewInvalidDimensions(t *testing.T) {
	_, err := matrix.New[int](-1, 2, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.New[int](2, -1, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestFromSlice(t *testing.T) {
	values := []int{1, 2, 3, 4, 5, 6}
	m, err := matrix.FromSlice(values, 3, 2)
	require.NoError(t, err)

	v, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, v)

	// the input slice is not aliased
	values[0] = 100
	v, err = m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	_, err = matrix.FromSlice([]int{1, 2, 3}, 2, 2)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestAtSetOutOfRange(t *testing.T) {
	m, err := matrix.New[float32](2, 2, 0)
	require.NoError(t, err)

	tests := []struct {
		name     string
		row, col int
	}{
		{"row too large", 2, 0},
		{"col too large", 0, 2},
		{"negative row", -1, 0},
		{"negative col", 0, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.At(tt.row, tt.col)
			require.ErrorIs(t, err, matrix.ErrOutOfRange)

			err = m.Set(tt.row, tt.col, 1)
			require.ErrorIs(t, err, matrix.ErrOutOfRange)
			assert.False(t, m.Contains(tt.row, tt.col))
		})
	}
}

func TestSetRowMajor(t *testing.T) {
	m, err := matrix.New[int](3, 2, 0)
	require.NoError(t, err)

	n := 0
	for row := 0; row < 2; row++ {
		for col := 0; col < 3; col++ {
			require.NoError(t, m.Set(row, col, n))
			n++
		}
	}
	assert.Equal(t, "[0, 1, 2]\n[3, 4, 5]\n", m.String())
}

func TestCloneIndependence(t *testing.T) {
	m, err := matrix.New[float32](2, 2, 0)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 1))

	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 3))

	orig, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, float32(1), orig)

	cloned, err := clone.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, float32(3), cloned)
}
