package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gwherrett/mako-sync/internal/spotify"
)

func newAuthCommand(cctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "auth",
		Short: "Authorize access to the Spotify library",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := spotify.Authenticate(cmd.Context(), cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Token saved to %s\n", spotify.TokenPath(cfg))
			return nil
		},
	}
}
