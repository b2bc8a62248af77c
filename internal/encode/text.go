package encode

import (
	"io"
	"math"
	"strings"

	"github.com/koki-develop/ditherart/internal/matrix"
)

type Mode int

const (
	// ModeScale picks glyphs[floor(v*len)] for values in [0,1].
	ModeScale Mode = iota
	// ModeIndex treats values as bucket indices; negative ones map to the
	// darkest glyph.
	ModeIndex
)

var _ Encoder = (*Text)(nil)

type Text struct {
	Glyphs     []rune
	Mode       Mode
	CharFormat string
	LineFormat string
}

func NewText(glyphs []rune, mode Mode) *Text {
	return &Text{
		Glyphs:     glyphs,
		Mode:       mode,
		CharFormat: placeholder,
		LineFormat: placeholder + "\n",
	}
}

func (t *Text) Glyph(v float32) rune {
	n := len(t.Glyphs)
	var i int
	switch t.Mode {
	case ModeIndex:
		i = int(v)
	default:
		i = int(math.Floor(float64(v) * float64(n)))
	}
	return t.Glyphs[max(0, min(i, n-1))]
}

// Lines renders one string per matrix row. Every sample is written twice so
// the output keeps roughly square proportions.
func (t *Text) Lines(m *matrix.Dense[float32]) ([]string, error) {
	if len(t.Glyphs) == 0 {
		return nil, ErrNoGlyphs
	}

	rows := make([]string, 0, m.Height())
	for row := 0; row < m.Height(); row++ {
		b := new(strings.Builder)
		for col := 0; col < m.Width(); col++ {
			v, err := m.At(row, col)
			if err != nil {
				return nil, err
			}
			s := apply(t.CharFormat, string(t.Glyph(v)))
			b.WriteString(s)
			b.WriteString(s)
		}
		rows = append(rows, b.String())
	}
	return rows, nil
}

func (t *Text) Encode(w io.Writer, m *matrix.Dense[float32]) error {
	lines, err := t.Lines(m)
	if err != nil {
		return err
	}
	return writeLines(w, lines, t.LineFormat)
}
