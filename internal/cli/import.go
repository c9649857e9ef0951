package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/llehouerou/songlist/internal/catalog"
	"github.com/llehouerou/songlist/internal/state"
)

func newImportCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.toml>",
		Short: "Add or update catalog songs from a TOML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			stateMgr, err := state.Open(cfg.DBPath)
			if err != nil {
				return err
			}
			defer stateMgr.Close()

			n, err := catalog.New(stateMgr.DB()).ImportFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %s songs from %s\n", humanize.Comma(int64(n)), args[0])
			return nil
		},
	}
}
