// Package cli wires the songlist commands.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/llehouerou/songlist/internal/config"
)

// Options holds the persistent flags.
type Options struct {
	ConfigPath string
}

// NewRootCmd returns the songlist command. Without a subcommand it starts
// the TUI.
func NewRootCmd() *cobra.Command {
	opts := &Options{}

	cmd := &cobra.Command{
		Use:          "songlist",
		Short:        "Browse songs and like them from the terminal",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  songlist

  # Use another config file
  songlist --config ./work.toml

  # Load songs into the catalog
  songlist import library.toml
`),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd.Context(), opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "",
		"config file (default ~/.config/songlist/config.toml, then ./config.toml)")

	cmd.AddCommand(newImportCmd(opts))
	return cmd
}

// loadConfig reads the --config file when given, the default locations otherwise.
func (o *Options) loadConfig() (*config.Config, error) {
	if o.ConfigPath == "" {
		return config.Load()
	}
	if _, err := os.Stat(o.ConfigPath); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return config.LoadFrom(o.ConfigPath)
}
