package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/koki-develop/ditherart/internal/imageproc"
	"github.com/koki-develop/ditherart/internal/kernel"
)

// ErrConfig wraps every configuration problem found before rendering starts.
var ErrConfig = errors.New("invalid configuration")

type OutputType string

const (
	TypeText    OutputType = "TXT"
	TypeBraille OutputType = "BRAILLE"
)

type Algorithm string

const (
	AlgorithmKernel Algorithm = "KERNEL"
	AlgorithmLegacy Algorithm = "LEGACY"
)

type Policy string

const (
	PolicyOnOff       Policy = "ONOFF"
	PolicyInterpolate Policy = "INTERPOLATE"
)

type Options struct {
	Type      OutputType
	Algorithm Algorithm
	Policy    Policy
	Kernel    string
	Threshold float32

	// Breakpoints for PolicyInterpolate. When empty they are spread evenly
	// from Threshold over the glyph ramp.
	Breakpoints []float32

	Glyphs     []rune
	CharFormat string
	LineFormat string

	// Width and Height count output characters. Zero derives one from the
	// other.
	Width, Height int

	Adjust imageproc.Adjust
	Invert bool
}

func DefaultOptions() Options {
	return Options{
		Type:       TypeText,
		Algorithm:  AlgorithmLegacy,
		Policy:     PolicyOnOff,
		Kernel:     kernel.FS,
		Threshold:  0.5,
		CharFormat: "{}",
		LineFormat: "{}\n",
	}
}

func configErr(err error) error {
	return fmt.Errorf("%w: %w", ErrConfig, err)
}

func ParseOutputType(s string) (OutputType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TXT", "TEXT":
		return TypeText, nil
	case "BRAILLE", "BRAILE":
		return TypeBraille, nil
	}
	return "", fmt.Errorf("%w: output type expects TXT | BRAILLE, got %q", ErrConfig, s)
}

func ParseAlgorithm(s string) (Algorithm, error) {
	switch a := Algorithm(strings.ToUpper(strings.TrimSpace(s))); a {
	case AlgorithmKernel, AlgorithmLegacy:
		return a, nil
	}
	return "", fmt.Errorf("%w: operation type expects KERNEL | LEGACY, got %q", ErrConfig, s)
}

func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(strings.ToUpper(strings.TrimSpace(s))); p {
	case PolicyOnOff, PolicyInterpolate:
		return p, nil
	}
	return "", fmt.Errorf("%w: dither policy expects ONOFF | INTERPOLATE, got %q", ErrConfig, s)
}
