package cmd

import (
	"github.com/koki-develop/ditherart/internal/ui"
	"github.com/spf13/cobra"
)

func newViewCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "view IMAGE",
		Short: "Preview an image interactively, switching kernels and thresholds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := f.options()
			if err != nil {
				return err
			}
			if err := checkRegular(args[0], true); err != nil {
				return err
			}
			if err := ui.Start(&ui.Option{Path: args[0], Options: opts}); err != nil {
				return err
			}
			return nil
		},
	}

	f.register(cmd.Flags())
	return cmd
}
