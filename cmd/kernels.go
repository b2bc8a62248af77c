package cmd

import (
	"fmt"
	"strings"

	"github.com/koki-develop/ditherart/internal/kernel"
	"github.com/spf13/cobra"
)

func newKernelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kernels",
		Short: "List the built-in error diffusion kernels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, name := range kernel.Names() {
				grid, origin, err := kernel.Grid(name)
				if err != nil {
					return err
				}
				k, err := kernel.FromGrid(name, origin, grid)
				if err != nil {
					return err
				}

				fmt.Fprintf(w, "%-9s origin (%d,%d)  %dx%d  sum %.4f\n", name, origin.X, origin.Y, grid.Width(), grid.Height(), k.Sum())
				for r := 0; r < grid.Height(); r++ {
					cells := make([]string, 0, grid.Width())
					for c := 0; c < grid.Width(); c++ {
						v, err := grid.At(r, c)
						if err != nil {
							return err
						}
						cells = append(cells, fmt.Sprintf("%.4f", v))
					}
					fmt.Fprintf(w, "  %s\n", strings.Join(cells, " "))
				}
			}
			return nil
		},
	}
}
