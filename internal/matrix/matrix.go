// Package matrix provides a fixed-size, row-major 2-D value buffer.
package matrix

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrOutOfRange is returned by At and Set when an index is outside the matrix.
	ErrOutOfRange = errors.New("matrix: index out of range")

	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")
	ErrDimensionMismatch = errors.New("matrix: value count does not match dimensions")
)

// Dense is a width×height buffer stored in a flat slice.
// Cell (row, col) lives at row*width+col.
type Dense[T any] struct {
	width, height int
	data          []T
}

// New allocates a width×height matrix with every cell set to fill.
// Zero-sized matrices are allowed.
func New[T any](width, height int, fill T) (*Dense[T], error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	data := make([]T, width*height)
	for i := range data {
		data[i] = fill
	}
	return &Dense[T]{width: width, height: height, data: data}, nil
}

// FromSlice builds a matrix from row-major values. The slice is copied.
func FromSlice[T any](values []T, width, height int) (*Dense[T], error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if len(values) != width*height {
		return nil, fmt.Errorf("%w: got %d values for %dx%d", ErrDimensionMismatch, len(values), width, height)
	}

	data := make([]T, len(values))
	copy(data, values)
	return &Dense[T]{width: width, height: height, data: data}, nil
}

func (m *Dense[T]) Width() int  { return m.width }
func (m *Dense[T]) Height() int { return m.height }

func (m *Dense[T]) index(method string, row, col int) (int, error) {
	if row < 0 || row >= m.height || col < 0 || col >= m.width {
		return 0, fmt.Errorf("Dense.%s(%d,%d) on %dx%d: %w", method, row, col, m.width, m.height, ErrOutOfRange)
	}
	return row*m.width + col, nil
}

// At returns the value at (row, col).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.index("At", row, col)
	if err != nil {
		var zero T
		return zero, err
	}
	return m.data[idx], nil
}

// Set stores v at (row, col).
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.index("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v
	return nil
}

// Contains reports whether (row, col) addresses a cell of m.
func (m *Dense[T]) Contains(row, col int) bool {
	return row >= 0 && row < m.height && col >= 0 && col < m.width
}

// Clone returns a deep copy that shares no storage with m.
func (m *Dense[T]) Clone() *Dense[T] {
	data := make([]T, len(m.data))
	copy(data, m.data)
	return &Dense[T]{width: m.width, height: m.height, data: data}
}

func (m *Dense[T]) String() string {
	b := new(strings.Builder)
	for row := 0; row < m.height; row++ {
		b.WriteString("[")
		for col := 0; col < m.width; col++ {
			if col > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(b, "%v", m.data[row*m.width+col])
		}
		b.WriteString("]\n")
	}
	return b.String()
}
