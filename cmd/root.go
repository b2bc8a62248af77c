package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/koki-develop/ditherart/internal/diag"
	"github.com/koki-develop/ditherart/internal/imageproc"
	"github.com/koki-develop/ditherart/internal/render"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	var (
		f       flags
		output  string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "ditherart [flags] IMAGE",
		Short: "Convert images into text or braille art",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd.ErrOrStderr(), verbose)
			var sink diag.Sink = diag.NewConsole(cmd.ErrOrStderr())
			if verbose {
				sink = diag.NewLogger(logger)
			}

			opts, err := f.options()
			if err != nil {
				return err
			}
			if output != "" {
				if err := checkRegular(output, false); err != nil {
					return err
				}
			}
			if err := checkRegular(args[0], true); err != nil {
				return err
			}

			img, err := imageproc.Load(args[0])
			if err != nil {
				return err
			}
			sz := img.Bounds()
			logger.Debug("loaded image", "path", args[0], "width", sz.Dx(), "height", sz.Dy())

			if opts.Width == 0 && opts.Height == 0 {
				cols, rows, err := terminalSize(output)
				if err != nil {
					return err
				}
				opts.Width, opts.Height = render.FitSize(opts.Type, sz.Dx(), sz.Dy(), cols, rows)
				logger.Debug("fitted to terminal", "cols", cols, "rows", rows, "width", opts.Width, "height", opts.Height)
			}

			r, err := render.New(opts, sink)
			if err != nil {
				return err
			}
			eff := r.Options()
			logger.Debug("rendering",
				"type", eff.Type, "algorithm", eff.Algorithm, "policy", eff.Policy,
				"kernel", eff.Kernel, "threshold", eff.Threshold, "breakpoints", eff.Breakpoints)

			var buf bytes.Buffer
			if err := r.Render(img, &buf); err != nil {
				return err
			}

			if output == "" {
				_, err := buf.WriteTo(cmd.OutOrStdout())
				return err
			}
			if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("failed to write output file: %w", err)
			}
			return nil
		},
	}

	f.register(cmd.Flags())
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug logs to stderr")

	cmd.AddCommand(newKernelsCmd(), newViewCmd())
	return cmd
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func terminalSize(output string) (int, int, error) {
	fd := int(os.Stdout.Fd())
	if output != "" || !term.IsTerminal(fd) {
		return 0, 0, errors.New("at least one of --width or --height must be specified")
	}
	cols, rows, err := term.GetSize(fd)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get terminal size: %w", err)
	}
	return cols, max(1, rows-1), nil
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
