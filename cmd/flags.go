package cmd

import (
	"fmt"
	"os"

	"github.com/koki-develop/ditherart/internal/encode"
	"github.com/koki-develop/ditherart/internal/imageproc"
	"github.com/koki-develop/ditherart/internal/kernel"
	"github.com/koki-develop/ditherart/internal/render"
	"github.com/spf13/pflag"
)

type flags struct {
	outType     string
	opType      string
	kernel      string
	policy      string
	threshold   float32
	breakpoints []float32
	invert      bool

	fmtChar string
	fmtLine string
	chars   string

	brighten int
	contrast float32
	blur     float32
	sharpen  float32

	width  int
	height int
}

func (f *flags) register(fs *pflag.FlagSet) {
	def := render.DefaultOptions()

	fs.StringVarP(&f.outType, "type", "t", string(def.Type), "type of output [TXT|BRAILLE]")
	fs.StringVarP(&f.opType, "op-type", "T", string(def.Algorithm), "how to process the image [KERNEL|LEGACY]")
	fs.StringVarP(&f.kernel, "kernel", "k", def.Kernel, fmt.Sprintf("error diffusion kernel %v", kernel.Names()))
	fs.StringVarP(&f.policy, "dither", "d", string(def.Policy), "quantization policy [ONOFF|INTERPOLATE]")
	fs.Float32Var(&f.threshold, "threshold", def.Threshold, "ONOFF threshold, or the first breakpoint when --breakpoints is not set")
	fs.Float32SliceVar(&f.breakpoints, "breakpoints", nil, "comma-separated increasing breakpoints in [0,1] for INTERPOLATE")
	fs.BoolVar(&f.invert, "invert", false, "invert braille dots")

	fs.StringVarP(&f.fmtChar, "fmt", "f", `{}`, "format string for each character; {} is replaced by the character")
	fs.StringVarP(&f.fmtLine, "fmtln", "F", `{}\n`, "format string for each line; {} is replaced by the line")
	fs.StringVarP(&f.chars, "chars", "C", "", "file with the characters to use, darkest first")

	fs.IntVarP(&f.brighten, "brighten", "b", 0, "increase image brightness level (-255..255)")
	fs.Float32VarP(&f.contrast, "contrast", "c", 0, "contrast level in percent")
	fs.Float32Var(&f.blur, "blur", 0, "gaussian blur sigma")
	fs.Float32Var(&f.sharpen, "sharpen", 0, "unsharp mask amount")

	fs.IntVarP(&f.width, "width", "W", 0, "width of the output character matrix")
	fs.IntVarP(&f.height, "height", "H", 0, "height of the output character matrix")
}

func (f *flags) options() (render.Options, error) {
	opts := render.DefaultOptions()

	var err error
	if opts.Type, err = render.ParseOutputType(f.outType); err != nil {
		return opts, err
	}
	if opts.Algorithm, err = render.ParseAlgorithm(f.opType); err != nil {
		return opts, err
	}
	if opts.Policy, err = render.ParsePolicy(f.policy); err != nil {
		return opts, err
	}
	if opts.CharFormat, err = encode.ParseFormat(f.fmtChar); err != nil {
		return opts, err
	}
	if opts.LineFormat, err = encode.ParseFormat(f.fmtLine); err != nil {
		return opts, err
	}

	if f.chars != "" {
		if err := checkRegular(f.chars, true); err != nil {
			return opts, err
		}
		file, err := os.Open(f.chars)
		if err != nil {
			return opts, fmt.Errorf("failed to open chars file: %w", err)
		}
		defer file.Close()

		if opts.Glyphs, err = encode.LoadGlyphs(file); err != nil {
			return opts, err
		}
	}

	opts.Kernel = f.kernel
	opts.Threshold = f.threshold
	opts.Breakpoints = f.breakpoints
	opts.Invert = f.invert
	opts.Width = f.width
	opts.Height = f.height
	opts.Adjust = imageproc.Adjust{
		Brighten: f.brighten,
		Contrast: f.contrast,
		Blur:     f.blur,
		Sharpen:  f.sharpen,
	}
	return opts, nil
}

// checkRegular fails when path exists and is not a regular file, or when it
// must exist and does not.
func checkRegular(path string, mustExist bool) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		if mustExist {
			return fmt.Errorf("cannot open %s for reading: file does not exist", path)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("cannot open %s: file exists and is not a regular file", path)
	}
	return nil
}
