package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSemanticsCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "semantics <scene>",
		Short: "Mount a scene and print its semantics tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := mountScene(opts, args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), renderSemantics(m.Host.Semantics()))
			return err
		},
	}
}
