package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gwherrett/mako-sync/internal/scanner"
)

func newScanCommand(cctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "Scan the local music directory into the library database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := cctx.ensureLogger()
			if err != nil {
				return err
			}
			st, err := cctx.openStore()
			if err != nil {
				return fmt.Errorf("open library database: %w", err)
			}
			defer st.Close()

			count, err := scanner.New(cfg, logger).Sync(cmd.Context(), st)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Scanned %d tracks from %s into %s\n",
				count, cfg.Paths.MusicDir, st.Path())
			return nil
		},
	}
}
