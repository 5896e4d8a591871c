package main

import (
	"github.com/spf13/cobra"

	"github.com/lixenwraith/path-of-all-things/config"
)

// RootOptions holds the global flags
type RootOptions struct {
	ConfigPath string
	Debug      bool
}

// load reads the configuration with the global flags applied on top
func (o *RootOptions) load() (config.Config, error) {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return cfg, err
	}
	if o.Debug {
		cfg.Debug = true
	}
	return cfg, nil
}

// NewRootCommand creates the pathgame command tree, play is the default action
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}
	play := NewPlayCommand(opts)

	cmd := &cobra.Command{
		Use:           "pathgame",
		Short:         "The Path of All Things",
		Long:          "A terminal card game about placing the events of the universe in chronological order.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          play.RunE,
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "TOML configuration file")
	cmd.PersistentFlags().BoolVar(&opts.Debug, "debug", false, "write debug logs")
	cmd.Flags().AddFlagSet(play.Flags())

	cmd.AddCommand(play)
	cmd.AddCommand(NewLevelsCommand(opts))
	cmd.AddCommand(NewFormatCommand())
	cmd.AddCommand(NewScoresCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))
	return cmd
}
