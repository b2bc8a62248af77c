package dither

import (
	"fmt"

	"github.com/koki-develop/ditherart/internal/diag"
)

// EvenBreakpoints returns symbols-1 breakpoints for a symbol ramp: the first
// one at threshold, the rest evenly spaced between threshold and 1.
func EvenBreakpoints(threshold float32, symbols int) ([]float32, error) {
	if !validUnit(threshold) || threshold == 1 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidThreshold, threshold)
	}
	if symbols < 2 {
		return nil, fmt.Errorf("%w: need at least 2 symbols, got %d", ErrInvalidBreakpoints, symbols)
	}

	n := symbols - 1
	step := (1 - threshold) / float32(n)
	bp := make([]float32, n)
	for i := range bp {
		bp[i] = threshold + float32(i)*step
	}
	return bp, nil
}

// CheckBreakpoints warns when the number of breakpoints does not match a
// ramp of the given number of symbols.
func CheckBreakpoints(breakpoints []float32, symbols int, sink diag.Sink) {
	want := symbols - 1
	switch {
	case len(breakpoints) < want:
		sink.Warn("fewer breakpoints than the symbol ramp needs",
			"breakpoints", len(breakpoints), "symbols", symbols)
	case len(breakpoints) > want:
		sink.Warn("more breakpoints than the symbol ramp needs; upper levels share the last symbol",
			"breakpoints", len(breakpoints), "symbols", symbols)
	}
}
