// Package cli implements the soc command line: the HTTP server plus
// read-only views and exports of the same data.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"soc-api/internal/config"
	"soc-api/internal/seed"
	"soc-api/internal/store"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	SeedFile string

	cfg config.Config
}

// NewRootCommand creates the root command for the soc CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "soc",
		Short:         "SOČ API - správa a archivace SOČ",
		Long:          "Record keeping for the SOČ science fair: participants, works and results.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			if opts.SeedFile != "" {
				cfg.SeedFile = opts.SeedFile
			}
			opts.cfg = cfg
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.SeedFile, "seed", "", "YAML seed file (overrides SEED_FILE)")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewWorksCommand(opts))
	cmd.AddCommand(NewResultsCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))

	return cmd
}

// openStore builds a fresh store from the configured seed data.
func (o *RootOptions) openStore() (*store.Store, error) {
	d, err := seed.Load(o.cfg.SeedFile)
	if err != nil {
		return nil, err
	}
	return store.NewSeeded(d), nil
}
