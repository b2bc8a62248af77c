package imageproc_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/koki-develop/ditherart/internal/imageproc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uniform(w, h int, y uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = y
	}
	return img
}

func TestDimensions(t *testing.T) {
	tests := []struct {
		name          string
		srcW, srcH    int
		width, height int
		wantW, wantH  int
		wantErr       error
	}{
		{"both given", 100, 50, 30, 40, 30, 40, nil},
		{"height derived", 100, 50, 40, 0, 40, 20, nil},
		{"width derived", 100, 50, 0, 10, 20, 10, nil},
		{"floor", 3, 2, 5, 0, 5, 3, nil},
		{"never below one", 1000, 10, 5, 0, 5, 1, nil},
		{"none given", 100, 50, 0, 0, 0, 0, imageproc.ErrNoDimensions},
		{"negative", 100, 50, -1, 5, 0, 0, imageproc.ErrNoDimensions},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, err := imageproc.Dimensions(tt.srcW, tt.srcH, tt.width, tt.height)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}
}

func TestGraySource(t *testing.T) {
	img := image.NewGray(image.Rect(2, 3, 5, 5))
	img.SetGray(2, 3, color.Gray{Y: 255})
	img.SetGray(4, 4, color.Gray{Y: 51})

	src := imageproc.NewGraySource(img)
	assert.Equal(t, 3, src.Width())
	assert.Equal(t, 2, src.Height())
	assert.Equal(t, float32(1), src.Normalized(0, 0))
	assert.InDelta(t, 0.2, src.Normalized(1, 2), 1e-6)
	assert.Equal(t, float32(0), src.Normalized(1, 0))

	m, err := imageproc.ToMatrix(src)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Width())
	assert.Equal(t, 2, m.Height())

	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.InDelta(t, 0.2, v, 1e-6)
}

func TestAdjustApply(t *testing.T) {
	img := uniform(4, 4, 128)

	gray := imageproc.Adjust{}.Apply(img)
	assert.Equal(t, img.Bounds(), gray.Bounds())
	for _, p := range gray.Pix {
		assert.InDelta(t, 128, int(p), 1)
	}

	bright := imageproc.Adjust{Brighten: 255}.Apply(uniform(4, 4, 0))
	for _, p := range bright.Pix {
		assert.GreaterOrEqual(t, int(p), 250)
	}

	blurred := imageproc.Adjust{Blur: 1, Sharpen: 0.5, Contrast: 10}.Apply(img)
	assert.Equal(t, img.Bounds(), blurred.Bounds())
}

func TestAdjustApplyConvertsColor(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	img.Set(1, 0, color.RGBA{A: 255})

	gray := imageproc.Adjust{}.Apply(img)
	assert.GreaterOrEqual(t, int(gray.GrayAt(0, 0).Y), 254)
	assert.Equal(t, uint8(0), gray.GrayAt(1, 0).Y)
}

func TestResizer(t *testing.T) {
	r := imageproc.NewResizer()
	img := uniform(100, 50, 10)

	out := r.Exact(img, 10, 7)
	assert.Equal(t, 10, out.Bounds().Dx())
	assert.Equal(t, 7, out.Bounds().Dy())

	w, h := r.FitSize(100, 50, 40, 40)
	assert.LessOrEqual(t, w, 40)
	assert.LessOrEqual(t, h, 40)
	assert.GreaterOrEqual(t, w, 1)
	assert.GreaterOrEqual(t, h, 1)
}

func TestDecodeAndLoad(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, uniform(3, 2, 200)))

	img, err := imageproc.Decode(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 3, 2), img.Bounds())

	_, err = imageproc.Decode(bytes.NewReader([]byte("not an image")))
	require.Error(t, err)

	_, err = imageproc.Load(filepath.Join(t.TempDir(), "missing.png"))
	require.Error(t, err)
}
