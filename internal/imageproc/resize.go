package imageproc

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/nfnt/resize"
	"github.com/qeesung/image2ascii/convert"
)

var ErrNoDimensions = errors.New("imageproc: at least one of width or height must be given")

type Resizer struct {
	resizeHandler *convert.ImageResizeHandler
}

func NewResizer() *Resizer {
	return &Resizer{
		resizeHandler: convert.NewResizeHandler().(*convert.ImageResizeHandler),
	}
}

// FitSize returns the largest size with the image's proportions that fits
// in a w×h character box.
func (r *Resizer) FitSize(imgW, imgH, w, h int) (int, int) {
	neww, newh := r.resizeHandler.CalcFitSize(float64(w), float64(h), float64(imgW), float64(imgH))
	return max(1, min(int(neww), w)), max(1, min(int(newh), h))
}

func (r *Resizer) Exact(img image.Image, w, h int) image.Image {
	return resize.Resize(uint(w), uint(h), img, resize.Lanczos3)
}

// Dimensions fills in a missing width or height from the source aspect
// ratio, rounding down and never going below 1.
func Dimensions(srcW, srcH, width, height int) (int, int, error) {
	if width < 0 || height < 0 {
		return 0, 0, fmt.Errorf("invalid size %dx%d: %w", width, height, ErrNoDimensions)
	}
	if width == 0 && height == 0 {
		return 0, 0, ErrNoDimensions
	}
	if srcW <= 0 || srcH <= 0 {
		return 0, 0, fmt.Errorf("empty source image %dx%d", srcW, srcH)
	}

	if width == 0 {
		width = int(math.Floor(float64(height) * float64(srcW) / float64(srcH)))
	}
	if height == 0 {
		height = int(math.Floor(float64(width) * float64(srcH) / float64(srcW)))
	}
	return max(1, width), max(1, height), nil
}
