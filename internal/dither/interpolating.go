package dither

import (
	"fmt"

	"github.com/koki-develop/ditherart/internal/kernel"
	"github.com/koki-develop/ditherart/internal/matrix"
)

var _ Ditherer = (*Interpolating)(nil)

// Interpolating buckets each cell by a sorted list of breakpoints.
//
// The error is measured against the bucket's midpoint, but the value written
// to the buffer is the bucket index: -1 below the first breakpoint, up to
// len(breakpoints)-1 at or above the last one.
type Interpolating struct {
	breakpoints []float32
	midpoints   []float32
	kernel      kernel.Kernel
}

func NewInterpolating(breakpoints []float32, k kernel.Kernel) (*Interpolating, error) {
	if err := validateBreakpoints(breakpoints); err != nil {
		return nil, err
	}

	bp := make([]float32, len(breakpoints))
	copy(bp, breakpoints)
	return &Interpolating{
		breakpoints: bp,
		midpoints:   midpoints(bp),
		kernel:      k,
	}, nil
}

func InterpolatingFromGrid(breakpoints []float32, origin kernel.Point, grid *matrix.Dense[float32]) (*Interpolating, error) {
	k, err := kernel.FromGrid("", origin, grid)
	if err != nil {
		return nil, err
	}
	return NewInterpolating(breakpoints, k)
}

func validateBreakpoints(bp []float32) error {
	if len(bp) == 0 {
		return fmt.Errorf("%w: none given", ErrInvalidBreakpoints)
	}
	for i, p := range bp {
		if !validUnit(p) {
			return fmt.Errorf("%w: breakpoint %d is %v", ErrInvalidBreakpoints, i, p)
		}
		if i > 0 && p <= bp[i-1] {
			return fmt.Errorf("%w: breakpoint %d (%v) does not exceed %v", ErrInvalidBreakpoints, i, p, bp[i-1])
		}
	}
	return nil
}

// midpoints returns len(bp)+1 reconstruction values: the centre of [0,p1],
// of every [p_i,p_i+1], and of [pn,1].
func midpoints(bp []float32) []float32 {
	mids := make([]float32, 0, len(bp)+1)
	mids = append(mids, bp[0]/2)
	for i := 1; i < len(bp); i++ {
		mids = append(mids, (bp[i-1]+bp[i])/2)
	}
	mids = append(mids, (1+bp[len(bp)-1])/2)
	return mids
}

func (d *Interpolating) Breakpoints() []float32 {
	bp := make([]float32, len(d.breakpoints))
	copy(bp, d.breakpoints)
	return bp
}

func (d *Interpolating) Midpoints() []float32 {
	m := make([]float32, len(d.midpoints))
	copy(m, d.midpoints)
	return m
}

// Levels is the number of buckets, one more than the number of breakpoints.
func (d *Interpolating) Levels() int { return len(d.breakpoints) + 1 }

func (d *Interpolating) level(v float32) int {
	level := -1
	for _, p := range d.breakpoints {
		if v < p {
			break
		}
		level++
	}
	return level
}

func (d *Interpolating) Dither(buf *matrix.Dense[float32]) error {
	return diffuse(buf, d.kernel, func(v float32) (float32, float32) {
		level := d.level(v)
		return float32(level), d.midpoints[level+1]
	})
}
