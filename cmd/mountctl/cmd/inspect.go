package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-drift/rendercore/cmd/mountctl/internal/scene"
	"github.com/go-drift/rendercore/pkg/pool"
)

func newInspectCommand(opts *options) *cobra.Command {
	var updatePath string

	cmd := &cobra.Command{
		Use:   "inspect <scene>",
		Short: "Mount a scene and report the data derived for each item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := mountScene(opts, args[0])
			if err != nil {
				return err
			}
			if updatePath != "" {
				next, err := scene.Load(updatePath)
				if err != nil {
					return err
				}
				if err := m.Apply(next); err != nil {
					return err
				}
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), renderReport(m))
			return err
		},
	}
	cmd.Flags().StringVar(&updatePath, "update", "", "scene applied as a second pass with in-place updates")
	return cmd
}

// mountScene loads a scene, warms a pool for its content kinds and mounts it.
func mountScene(opts *options, path string) (*scene.Mounted, error) {
	s, err := scene.Load(path)
	if err != nil {
		return nil, err
	}
	p := pool.New(opts.cfg.Pool.MaxPerKind)
	if err := s.Register(p); err != nil {
		return nil, err
	}
	if n := opts.cfg.Pool.Prefill; n > 0 {
		kinds, err := s.Kinds()
		if err != nil {
			return nil, err
		}
		for kind := range kinds {
			if err := p.Prefill(kind, n); err != nil {
				return nil, err
			}
		}
	}
	return s.Mount(p)
}
