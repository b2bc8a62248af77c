// Package render runs the conversion pipeline: tone adjustments, sampling
// into a brightness matrix, dithering, and glyph encoding.
package render

import (
	"fmt"
	"image"
	"image/draw"
	"io"

	"github.com/koki-develop/ditherart/internal/diag"
	"github.com/koki-develop/ditherart/internal/dither"
	"github.com/koki-develop/ditherart/internal/encode"
	"github.com/koki-develop/ditherart/internal/imageproc"
	"github.com/koki-develop/ditherart/internal/kernel"
	"github.com/koki-develop/ditherart/internal/matrix"
	"github.com/koki-develop/ditherart/internal/segment"
)

type lineEncoder interface {
	encode.Encoder
	Lines(m *matrix.Dense[float32]) ([]string, error)
}

type Renderer struct {
	opts     Options
	ditherer dither.Ditherer
	encoder  lineEncoder
	resizer  *imageproc.Resizer
}

// New validates opts and prepares a renderer. Configuration errors wrap
// ErrConfig; recoverable mismatches are reported to sink and replaced by a
// fallback.
func New(opts Options, sink diag.Sink) (*Renderer, error) {
	if sink == nil {
		sink = diag.Discard
	}
	var err error
	if opts.Type, err = ParseOutputType(string(opts.Type)); err != nil {
		return nil, err
	}
	if opts.Algorithm, err = ParseAlgorithm(string(opts.Algorithm)); err != nil {
		return nil, err
	}
	if opts.Policy, err = ParsePolicy(string(opts.Policy)); err != nil {
		return nil, err
	}
	if opts.Width < 0 || opts.Height < 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrConfig, opts.Width, opts.Height)
	}
	if opts.Width == 0 && opts.Height == 0 {
		return nil, configErr(imageproc.ErrNoDimensions)
	}
	if len(opts.Glyphs) == 0 {
		opts.Glyphs = encode.DefaultGlyphs
	}
	if opts.CharFormat == "" {
		opts.CharFormat = "{}"
	}
	if opts.LineFormat == "" {
		opts.LineFormat = "{}\n"
	}

	k, err := kernel.Lookup(opts.Kernel)
	if err != nil {
		return nil, configErr(err)
	}

	if opts.Type == TypeBraille {
		if opts.Policy == PolicyInterpolate {
			sink.Warn("braille output has only two levels; using ONOFF dithering instead of INTERPOLATE")
			opts.Policy = PolicyOnOff
		}
		if opts.CharFormat != "{}" {
			sink.Warn("character format is ignored for braille output")
		}
	}
	if opts.Algorithm == AlgorithmLegacy && opts.Policy == PolicyInterpolate {
		sink.Warn("LEGACY operation does not dither; the dither policy is ignored")
	}

	r := &Renderer{resizer: imageproc.NewResizer()}

	mode := encode.ModeScale
	if opts.Algorithm == AlgorithmKernel {
		switch opts.Policy {
		case PolicyOnOff:
			d, err := dither.NewOnOff(opts.Threshold, k)
			if err != nil {
				return nil, configErr(err)
			}
			r.ditherer = d
		case PolicyInterpolate:
			bp := opts.Breakpoints
			if len(bp) == 0 {
				bp, err = dither.EvenBreakpoints(opts.Threshold, len(opts.Glyphs))
				if err != nil {
					return nil, configErr(err)
				}
			} else {
				dither.CheckBreakpoints(bp, len(opts.Glyphs), sink)
			}
			d, err := dither.NewInterpolating(bp, k)
			if err != nil {
				return nil, configErr(err)
			}
			opts.Breakpoints = d.Breakpoints()
			r.ditherer = d
			mode = encode.ModeIndex
		}
	}

	switch opts.Type {
	case TypeBraille:
		b := encode.NewBraille()
		b.Invert = opts.Invert
		b.LineFormat = opts.LineFormat
		r.encoder = b
	default:
		t := encode.NewText(opts.Glyphs, mode)
		t.CharFormat = opts.CharFormat
		t.LineFormat = opts.LineFormat
		r.encoder = t
	}

	r.opts = opts
	return r, nil
}

// Options returns the options in effect after fallbacks were applied.
func (r *Renderer) Options() Options { return r.opts }

// sampleSize converts the character size into the sample grid size.
func (r *Renderer) sampleSize() (int, int) {
	if r.opts.Type == TypeBraille {
		return r.opts.Width * 2, r.opts.Height * 4
	}
	return r.opts.Width, r.opts.Height
}

// Matrix samples img into a brightness matrix and dithers it.
func (r *Renderer) Matrix(img image.Image) (*matrix.Dense[float32], error) {
	gray := r.opts.Adjust.Apply(img)
	srcW, srcH := gray.Bounds().Dx(), gray.Bounds().Dy()

	sw, sh := r.sampleSize()
	w, h, err := imageproc.Dimensions(srcW, srcH, sw, sh)
	if err != nil {
		return nil, configErr(err)
	}

	if r.opts.Algorithm == AlgorithmLegacy {
		info, err := segment.New(srcW, srcH, w, h)
		if err != nil {
			return nil, configErr(err)
		}
		return segment.Average(imageproc.NewGraySource(gray), info)
	}

	m, err := imageproc.ToMatrix(imageproc.NewGraySource(toGray(r.resizer.Exact(gray, w, h))))
	if err != nil {
		return nil, err
	}
	if r.ditherer != nil {
		if err := r.ditherer.Dither(m); err != nil {
			return nil, fmt.Errorf("failed to dither: %w", err)
		}
	}
	return m, nil
}

func (r *Renderer) Lines(img image.Image) ([]string, error) {
	m, err := r.Matrix(img)
	if err != nil {
		return nil, err
	}
	return r.encoder.Lines(m)
}

func (r *Renderer) Render(img image.Image, w io.Writer) error {
	m, err := r.Matrix(img)
	if err != nil {
		return err
	}
	return r.encoder.Encode(w, m)
}

func toGray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return g
	}
	g := image.NewGray(img.Bounds())
	draw.Draw(g, g.Bounds(), img, img.Bounds().Min, draw.Src)
	return g
}

// FitSize returns the largest character size of the given output type that
// shows a srcW×srcH image inside a cols×rows terminal area.
func FitSize(t OutputType, srcW, srcH, cols, rows int) (int, int) {
	r := imageproc.NewResizer()
	if t == TypeBraille {
		w, h := r.FitSize(srcW, srcH, cols*2, rows*4)
		return encode.Cols(w), encode.Rows(h)
	}
	return r.FitSize(srcW, srcH, max(1, cols/2), rows)
}
