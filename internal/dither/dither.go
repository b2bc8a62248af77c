// Package dither quantizes a brightness matrix by kernel-weighted error
// diffusion.
//
// Cells are visited in row-major order. Each cell reads its value from a
// private copy of the input (the source plane), writes its quantized value
// to the caller's buffer, and adds the weighted quantization error to the
// source plane at every kernel offset. Targets with a negative coordinate
// or beyond the buffer edge are skipped. Already written output cells are
// never touched again.
//
// Ditherers hold no per-run state, so one instance may be shared by many
// goroutines working on different buffers.
package dither

import (
	"errors"

	"github.com/koki-develop/ditherart/internal/kernel"
	"github.com/koki-develop/ditherart/internal/matrix"
)

var (
	ErrNilBuffer          = errors.New("dither: buffer is nil")
	ErrInvalidThreshold   = errors.New("dither: threshold must be a finite value in [0,1]")
	ErrInvalidBreakpoints = errors.New("dither: breakpoints must be non-empty, strictly increasing and in [0,1]")
)

type Ditherer interface {
	Dither(buf *matrix.Dense[float32]) error
}

// quantizer maps a source value to the value written to the output buffer
// and the reconstruction value used to compute the error.
type quantizer func(v float32) (out, recon float32)

func diffuse(buf *matrix.Dense[float32], k kernel.Kernel, q quantizer) error {
	if buf == nil {
		return ErrNilBuffer
	}

	source := buf.Clone()
	for row := 0; row < buf.Height(); row++ {
		for col := 0; col < buf.Width(); col++ {
			orig, err := source.At(row, col)
			if err != nil {
				return err
			}

			out, recon := q(orig)
			if err := buf.Set(row, col, out); err != nil {
				return err
			}

			e := orig - recon
			k.Each(func(o kernel.Offset) {
				r, c := row+o.DY, col+o.DX
				if r < 0 || c < 0 || !source.Contains(r, c) {
					return
				}
				v, _ := source.At(r, c)
				_ = source.Set(r, c, v+e*o.Weight)
			})
		}
	}
	return nil
}
