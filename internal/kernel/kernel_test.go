package kernel_test

import (
	"testing"

	"github.com/koki-develop/ditherart/internal/kernel"
	"github.com/koki-develop/ditherart/internal/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromGridOffsets(t *testing.T) {
	grid, err := matrix.FromSlice([]float32{
		0, 0, 0.5,
		0.25, 0, 0.25,
	}, 3, 2)
	require.NoError(t, err)

	k, err := kernel.FromGrid("test", kernel.Point{X: 1, Y: 0}, grid)
	require.NoError(t, err)

	assert.Equal(t, []kernel.Offset{
		{DX: -1, DY: 0, Weight: 0},
		{DX: 0, DY: 0, Weight: 0},
		{DX: 1, DY: 0, Weight: 0.5},
		{DX: -1, DY: 1, Weight: 0.25},
		{DX: 0, DY: 1, Weight: 0},
		{DX: 1, DY: 1, Weight: 0.25},
	}, k.Offsets())
	assert.Equal(t, "test", k.Name())
}

func TestFromGridNil(t *testing.T) {
	_, err := kernel.FromGrid("nil", kernel.Point{}, nil)
	require.ErrorIs(t, err, kernel.ErrNilGrid)
}

func TestFromGridReconstructsWeights(t *testing.T) {
	for _, name := range kernel.Names() {
		t.Run(name, func(t *testing.T) {
			grid, origin, err := kernel.Grid(name)
			require.NoError(t, err)

			k, err := kernel.FromGrid(name, origin, grid)
			require.NoError(t, err)

			nonZero := 0
			k.Each(func(o kernel.Offset) {
				nonZero++
				w, err := grid.At(o.DY+origin.Y, o.DX+origin.X)
				require.NoError(t, err)
				assert.Equal(t, w, o.Weight)
			})

			expected := 0
			for r := 0; r < grid.Height(); r++ {
				for c := 0; c < grid.Width(); c++ {
					w, _ := grid.At(r, c)
					if w != 0 {
						expected++
					}
				}
			}
			assert.Equal(t, expected, nonZero)
		})
	}
}

func TestOffsetsIsACopy(t *testing.T) {
	k := kernel.New("copy", []kernel.Offset{{DX: 1, DY: 0, Weight: 1}})
	o := k.Offsets()
	o[0].Weight = 42
	assert.Equal(t, float32(1), k.Offsets()[0].Weight)
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		offsets int
		sum     float32
	}{
		{"none", "NONE", kernel.None, 0, 0},
		{"floyd-steinberg lower case", "fs", kernel.FS, 6, 1},
		{"stucki mixed case", " Stucki ", kernel.Stucki, 15, 1},
		{"atkinson", "atkinson", kernel.Atkinson, 12, 0.75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, err := kernel.Lookup(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, k.Name())
			assert.Equal(t, tt.offsets, k.Len())
			assert.InDelta(t, tt.sum, k.Sum(), 1e-6)
		})
	}
}

func TestLookupFloydSteinberg(t *testing.T) {
	k, err := kernel.Lookup("FS")
	require.NoError(t, err)

	var got []kernel.Offset
	k.Each(func(o kernel.Offset) { got = append(got, o) })
	assert.Equal(t, []kernel.Offset{
		{DX: 1, DY: 0, Weight: 7.0 / 16},
		{DX: -1, DY: 1, Weight: 3.0 / 16},
		{DX: 0, DY: 1, Weight: 5.0 / 16},
		{DX: 1, DY: 1, Weight: 1.0 / 16},
	}, got)
}

func TestLookupAtkinsonReachesTwoRowsDown(t *testing.T) {
	k, err := kernel.Lookup("ATKINSON")
	require.NoError(t, err)

	var got []kernel.Offset
	k.Each(func(o kernel.Offset) { got = append(got, o) })
	assert.Equal(t, []kernel.Offset{
		{DX: 1, DY: 0, Weight: 0.125},
		{DX: 2, DY: 0, Weight: 0.125},
		{DX: -1, DY: 1, Weight: 0.125},
		{DX: 0, DY: 1, Weight: 0.125},
		{DX: 1, DY: 1, Weight: 0.125},
		{DX: 0, DY: 2, Weight: 0.125},
	}, got)
}

func TestLookupUnknown(t *testing.T) {
	_, err := kernel.Lookup("jarvis")
	require.ErrorIs(t, err, kernel.ErrUnknownKernel)
	assert.Contains(t, err.Error(), "ATKINSON")
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"ATKINSON", "FS", "NONE", "STUCKI"}, kernel.Names())
}

func TestNoOffsetReachesBackwards(t *testing.T) {
	for _, name := range kernel.Names() {
		k, err := kernel.Lookup(name)
		require.NoError(t, err)
		k.Each(func(o kernel.Offset) {
			// every weighted target is visited after the current cell
			assert.True(t, o.DY > 0 || (o.DY == 0 && o.DX > 0), "%s: %+v", name, o)
		})
	}
}
