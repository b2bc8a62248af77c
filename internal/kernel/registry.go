package kernel

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/koki-develop/ditherart/internal/matrix"
)

var ErrUnknownKernel = errors.New("kernel: unknown kernel")

const (
	None     = "NONE"
	FS       = "FS"
	Stucki   = "STUCKI"
	Atkinson = "ATKINSON"
)

type entry struct {
	width, height int
	weights       []float32
	origin        Point
}

var registry = map[string]entry{
	None: {
		origin: Point{0, 0},
	},
	FS: {
		width:  3,
		height: 2,
		weights: []float32{
			0, 0, 7.0 / 16,
			3.0 / 16, 5.0 / 16, 1.0 / 16,
		},
		origin: Point{1, 0},
	},
	Stucki: {
		width:  5,
		height: 3,
		weights: []float32{
			0, 0, 0, 8.0 / 42, 4.0 / 42,
			2.0 / 42, 4.0 / 42, 8.0 / 42, 4.0 / 42, 2.0 / 42,
			1.0 / 42, 2.0 / 42, 4.0 / 42, 2.0 / 42, 1.0 / 42,
		},
		origin: Point{2, 0},
	},
	// Atkinson spreads only 6/8 of the error.
	Atkinson: {
		width:  4,
		height: 3,
		weights: []float32{
			0, 0, 0.125, 0.125,
			0.125, 0.125, 0.125, 0,
			0, 0.125, 0, 0,
		},
		origin: Point{1, 0},
	},
}

func normalize(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// Grid returns a fresh copy of the named kernel's weight grid and origin.
func Grid(name string) (*matrix.Dense[float32], Point, error) {
	key := normalize(name)
	e, ok := registry[key]
	if !ok {
		return nil, Point{}, fmt.Errorf("%w: %q (available: %s)", ErrUnknownKernel, name, strings.Join(Names(), ", "))
	}

	grid, err := matrix.FromSlice(e.weights, e.width, e.height)
	if err != nil {
		return nil, Point{}, err
	}
	return grid, e.origin, nil
}

// Lookup returns the built-in kernel with the given name, ignoring case.
func Lookup(name string) (Kernel, error) {
	grid, origin, err := Grid(name)
	if err != nil {
		return Kernel{}, err
	}
	return FromGrid(normalize(name), origin, grid)
}

func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
