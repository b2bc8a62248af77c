package encode

import (
	"io"
	"strings"

	"github.com/koki-develop/ditherart/internal/matrix"
)

const brailleBase = 0x2800

// brailleBits maps the dot at (x, y) of a 2×4 cell to its bit:
//
//	0 3
//	1 4
//	2 5
//	6 7
var brailleBits = [2][4]uint8{
	{0, 1, 2, 6},
	{3, 4, 5, 7},
}

var _ Encoder = (*Braille)(nil)

// Braille packs 2×4 samples into one pattern. Samples >= 0.5 are raised
// dots; samples past the matrix edge are not.
type Braille struct {
	Invert     bool
	LineFormat string
}

func NewBraille() *Braille {
	return &Braille{LineFormat: placeholder + "\n"}
}

// Cols and Rows return the number of braille cells needed for a w×h matrix.
func Cols(w int) int { return (w + 1) / 2 }
func Rows(h int) int { return (h + 3) / 4 }

func (b *Braille) Cell(m *matrix.Dense[float32], cellRow, cellCol int) rune {
	var mask rune
	for x := 0; x < 2; x++ {
		for y := 0; y < 4; y++ {
			row, col := cellRow*4+y, cellCol*2+x
			on := false
			if m.Contains(row, col) {
				v, _ := m.At(row, col)
				on = v >= 0.5
			}
			if on != b.Invert {
				mask |= 1 << brailleBits[x][y]
			}
		}
	}
	return brailleBase + mask
}

func (b *Braille) Lines(m *matrix.Dense[float32]) ([]string, error) {
	rows := make([]string, 0, Rows(m.Height()))
	for i := 0; i < Rows(m.Height()); i++ {
		sb := new(strings.Builder)
		for j := 0; j < Cols(m.Width()); j++ {
			sb.WriteRune(b.Cell(m, i, j))
		}
		rows = append(rows, sb.String())
	}
	return rows, nil
}

func (b *Braille) Encode(w io.Writer, m *matrix.Dense[float32]) error {
	lines, err := b.Lines(m)
	if err != nil {
		return err
	}
	return writeLines(w, lines, b.LineFormat)
}
