// Package encode renders a dithered matrix as text.
package encode

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/koki-develop/ditherart/internal/matrix"
	"github.com/qeesung/image2ascii/ascii"
)

var ErrNoGlyphs = errors.New("encode: glyph set is empty")

type Encoder interface {
	Encode(w io.Writer, m *matrix.Dense[float32]) error
}

// DefaultGlyphs is ordered from darkest to brightest.
var DefaultGlyphs = []rune(string(ascii.DefaultOptions.Pixels))

// LoadGlyphs reads a glyph ramp, ignoring surrounding space and line breaks.
func LoadGlyphs(r io.Reader) ([]rune, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read glyphs: %w", err)
	}
	s := strings.TrimSpace(string(b))
	s = strings.NewReplacer("\r", "", "\n", "").Replace(s)
	if s == "" {
		return nil, ErrNoGlyphs
	}
	return []rune(s), nil
}

const placeholder = "{}"

// ParseFormat expands backslash escapes such as \n and \t in a template.
func ParseFormat(s string) (string, error) {
	quoted := strings.NewReplacer(`"`, `\"`, "\n", `\n`, "\t", `\t`, "\r", `\r`).Replace(s)
	out, err := strconv.Unquote(`"` + quoted + `"`)
	if err != nil {
		return "", fmt.Errorf("invalid format %q: %w", s, err)
	}
	return out, nil
}

func apply(format, s string) string {
	return strings.ReplaceAll(format, placeholder, s)
}

func writeLines(w io.Writer, lines []string, lineFormat string) error {
	for _, line := range lines {
		if _, err := io.WriteString(w, apply(lineFormat, line)); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}
