package imageproc

import (
	"image"

	"github.com/koki-develop/ditherart/internal/matrix"
)

// Source supplies brightness samples in [0,1].
type Source interface {
	Width() int
	Height() int
	Normalized(row, col int) float32
}

var _ Source = (*GraySource)(nil)

type GraySource struct {
	img *image.Gray
}

func NewGraySource(img *image.Gray) *GraySource {
	return &GraySource{img: img}
}

func (s *GraySource) Width() int  { return s.img.Bounds().Dx() }
func (s *GraySource) Height() int { return s.img.Bounds().Dy() }

func (s *GraySource) Normalized(row, col int) float32 {
	o := s.img.Bounds().Min
	return float32(s.img.GrayAt(o.X+col, o.Y+row).Y) / 255
}

func ToMatrix(src Source) (*matrix.Dense[float32], error) {
	m, err := matrix.New[float32](src.Width(), src.Height(), 0)
	if err != nil {
		return nil, err
	}
	for row := 0; row < src.Height(); row++ {
		for col := 0; col < src.Width(); col++ {
			if err := m.Set(row, col, src.Normalized(row, col)); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}
