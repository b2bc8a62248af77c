package imageproc

import (
	"image"

	"github.com/disintegration/gift"
)

// Adjust describes the tone changes applied before an image is sampled.
type Adjust struct {
	// Brighten is added to every channel, in -255..255.
	Brighten int

	// Contrast is a percentage in -100..100.
	Contrast float32

	// Blur is a Gaussian sigma; 0 disables it.
	Blur float32

	// Sharpen is an unsharp-mask amount; 0 disables it.
	Sharpen float32
}

func (a Adjust) filters() []gift.Filter {
	var fs []gift.Filter
	if a.Brighten != 0 {
		fs = append(fs, gift.Brightness(float32(a.Brighten)/255*100))
	}
	if a.Contrast != 0 {
		fs = append(fs, gift.Contrast(a.Contrast))
	}
	if a.Blur > 0 {
		fs = append(fs, gift.GaussianBlur(a.Blur))
	}
	if a.Sharpen > 0 {
		fs = append(fs, gift.UnsharpMask(1, a.Sharpen, 0))
	}
	return append(fs, gift.Grayscale())
}

// Apply returns a grayscale copy of img with the adjustments applied.
func (a Adjust) Apply(img image.Image) *image.Gray {
	g := gift.New(a.filters()...)
	dst := image.NewGray(g.Bounds(img.Bounds()))
	g.Draw(dst, img)
	return dst
}
