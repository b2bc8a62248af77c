package dither

import (
	"fmt"
	"math"

	"github.com/koki-develop/ditherart/internal/kernel"
	"github.com/koki-develop/ditherart/internal/matrix"
)

var _ Ditherer = (*OnOff)(nil)

// OnOff writes 1 for cells brighter than the threshold and 0 otherwise.
type OnOff struct {
	threshold float32
	kernel    kernel.Kernel
}

func NewOnOff(threshold float32, k kernel.Kernel) (*OnOff, error) {
	if !validUnit(threshold) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidThreshold, threshold)
	}
	return &OnOff{threshold: threshold, kernel: k}, nil
}

func OnOffFromGrid(threshold float32, origin kernel.Point, grid *matrix.Dense[float32]) (*OnOff, error) {
	k, err := kernel.FromGrid("", origin, grid)
	if err != nil {
		return nil, err
	}
	return NewOnOff(threshold, k)
}

// Dither rewrites buf into a binary mask. A value equal to the threshold is off.
func (d *OnOff) Dither(buf *matrix.Dense[float32]) error {
	return diffuse(buf, d.kernel, func(v float32) (float32, float32) {
		if v > d.threshold {
			return 1, 1
		}
		return 0, 0
	})
}

func validUnit(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && f >= 0 && f <= 1
}
