package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/go-drift/rendercore/pkg/rendering"
)

func newTouchCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "touch <scene> <x> <y>",
		Short: "Mount a scene and report which item receives a touch at x,y",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var p rendering.Offset
			var err error
			if p.X, err = strconv.ParseFloat(args[1], 64); err != nil {
				return fmt.Errorf("invalid x %q: %w", args[1], err)
			}
			if p.Y, err = strconv.ParseFloat(args[2], 64); err != nil {
				return fmt.Errorf("invalid y %q: %w", args[2], err)
			}

			m, err := mountScene(opts, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			item := m.Host.HitTest(p)
			if item == nil {
				_, err = fmt.Fprintf(out, "no touchable item at %g,%g\n", p.X, p.Y)
				return err
			}
			_, err = fmt.Fprintf(out, "%v\n", item)
			return err
		},
	}
}
