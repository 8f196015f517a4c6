// Package cmd implements the mountctl commands.
//
// mountctl mounts a scene fixture into a ComponentHost and reports what the
// mount layer derived for every node: layout flags, accessibility and the
// intrinsic content snapshot.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/go-drift/rendercore/pkg/config"
	"github.com/go-drift/rendercore/pkg/errors"
	"github.com/go-drift/rendercore/pkg/logging"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

type options struct {
	configPath string
	verbose    bool
	cfg        config.Config
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "mountctl",
		Short: "Inspect how render nodes bind to mounted content",
		Long: `mountctl loads a scene of render nodes (YAML or TOML), mounts each node
into a host and prints the flags, accessibility and content snapshot derived
for every mount item.`,
		Version:       fmt.Sprintf("%s (built %s)", Version, BuildTime),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup()
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (yaml, toml or json)")
	root.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "debug logging and verbose errors")

	root.AddCommand(newInspectCommand(opts))
	root.AddCommand(newSemanticsCommand(opts))
	root.AddCommand(newTouchCommand(opts))
	return root
}

func (o *options) setup() error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return &errors.MountError{Op: "mountctl.config", Kind: errors.KindConfig, Err: err}
	}
	if o.verbose {
		cfg.Logging.Level = "debug"
		cfg.Errors.Verbose = true
	}
	o.cfg = cfg

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	logging.SetLogger(logger)
	errors.SetHandler(&errors.LogHandler{Verbose: cfg.Errors.Verbose})
	logger.Debug("config loaded", zap.String("path", o.configPath), zap.Int("pool_max_per_kind", cfg.Pool.MaxPerKind))
	return nil
}

// Execute runs the CLI with os.Args.
func Execute() error {
	defer func() { _ = logging.Logger().Sync() }()
	return NewRootCommand().Execute()
}
