package kernel

import (
	"errors"
	"fmt"

	"github.com/koki-develop/ditherart/internal/matrix"
)

var ErrNilGrid = errors.New("kernel: weight grid is nil")

// Offset is one diffusion target relative to the current cell.
type Offset struct {
	DX, DY int
	Weight float32
}

// Point is the stencil cell treated as the current pixel.
type Point struct {
	X, Y int
}

// Kernel is an immutable list of error-diffusion offsets.
type Kernel struct {
	name    string
	offsets []Offset
}

func New(name string, offsets []Offset) Kernel {
	o := make([]Offset, len(offsets))
	copy(o, offsets)
	return Kernel{name: name, offsets: o}
}

// FromGrid flattens an absolute weight grid into offsets relative to origin.
// Cell (r, c) becomes Offset{c - origin.X, r - origin.Y, grid[r][c]}.
// Zero weights are kept.
func FromGrid(name string, origin Point, grid *matrix.Dense[float32]) (Kernel, error) {
	if grid == nil {
		return Kernel{}, ErrNilGrid
	}

	offsets := make([]Offset, 0, grid.Width()*grid.Height())
	for r := 0; r < grid.Height(); r++ {
		for c := 0; c < grid.Width(); c++ {
			w, err := grid.At(r, c)
			if err != nil {
				return Kernel{}, fmt.Errorf("failed to read weight grid: %w", err)
			}
			offsets = append(offsets, Offset{DX: c - origin.X, DY: r - origin.Y, Weight: w})
		}
	}
	return Kernel{name: name, offsets: offsets}, nil
}

func (k Kernel) Name() string { return k.name }

func (k Kernel) Len() int { return len(k.offsets) }

func (k Kernel) Offsets() []Offset {
	o := make([]Offset, len(k.offsets))
	copy(o, k.offsets)
	return o
}

// Each calls fn for every offset with a non-zero weight.
func (k Kernel) Each(fn func(o Offset)) {
	for _, o := range k.offsets {
		if o.Weight == 0 {
			continue
		}
		fn(o)
	}
}

func (k Kernel) Sum() float32 {
	var s float32
	for _, o := range k.offsets {
		s += o.Weight
	}
	return s
}
