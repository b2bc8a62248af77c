// Package segment averages rectangular blocks of a large source down to a
// smaller grid.
//
// A source of n samples split into m blocks gives every block q = n/m
// samples, and the first r = n%m blocks one extra, so block sizes differ by
// at most one and the blocks tile the source exactly.
package segment

import (
	"errors"
	"fmt"

	"github.com/koki-develop/ditherart/internal/imageproc"
	"github.com/koki-develop/ditherart/internal/matrix"
)

var (
	ErrInvalidTarget  = errors.New("segment: target must be between 1 and the source size in each dimension")
	ErrSourceMismatch = errors.New("segment: source size does not match the segmentation")
)

type axis struct {
	quotient, remainder int
}

func newAxis(src, dst int) axis {
	return axis{quotient: src / dst, remainder: src % dst}
}

func (a axis) size(i int) int {
	if i < a.remainder {
		return a.quotient + 1
	}
	return a.quotient
}

func (a axis) start(i int) int {
	if i < a.remainder {
		return i * (a.quotient + 1)
	}
	return a.remainder*(a.quotient+1) + (i-a.remainder)*a.quotient
}

type Info struct {
	srcWidth, srcHeight int
	width, height       int
	cols, rows          axis
}

func New(srcWidth, srcHeight, width, height int) (Info, error) {
	if width <= 0 || height <= 0 || width > srcWidth || height > srcHeight {
		return Info{}, fmt.Errorf("%w: %dx%d from %dx%d", ErrInvalidTarget, width, height, srcWidth, srcHeight)
	}
	return Info{
		srcWidth:  srcWidth,
		srcHeight: srcHeight,
		width:     width,
		height:    height,
		cols:      newAxis(srcWidth, width),
		rows:      newAxis(srcHeight, height),
	}, nil
}

func (s Info) Width() int  { return s.width }
func (s Info) Height() int { return s.height }

// BlockDims returns the width and height of the block in row i, column j.
func (s Info) BlockDims(i, j int) (int, int) {
	return s.cols.size(j), s.rows.size(i)
}

// BlockStart returns the source x and y of the top-left sample of the block
// in row i, column j.
func (s Info) BlockStart(i, j int) (int, int) {
	return s.cols.start(j), s.rows.start(i)
}

// Average fills a width×height matrix with the mean of each block of src.
func Average(src imageproc.Source, s Info) (*matrix.Dense[float32], error) {
	if src.Width() != s.srcWidth || src.Height() != s.srcHeight {
		return nil, fmt.Errorf("%w: source is %dx%d, segmentation expects %dx%d",
			ErrSourceMismatch, src.Width(), src.Height(), s.srcWidth, s.srcHeight)
	}

	m, err := matrix.New[float32](s.width, s.height, 0)
	if err != nil {
		return nil, err
	}
	for i := 0; i < s.height; i++ {
		for j := 0; j < s.width; j++ {
			x, y := s.BlockStart(i, j)
			w, h := s.BlockDims(i, j)

			var sum float64
			for row := y; row < y+h; row++ {
				for col := x; col < x+w; col++ {
					sum += float64(src.Normalized(row, col))
				}
			}
			if err := m.Set(i, j, float32(sum/float64(w*h))); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}
