package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eringen/folio"
)

func (c *cli) buildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Export the site as static files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := folio.New(c.cfg)
			defer app.Close()

			stats, err := app.Export(cmd.Context(), app.Config.OutDir)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d pages, %d files and %d covers to %s\n",
				stats.Pages, stats.Files, stats.Covers, app.Config.OutDir)
			return nil
		},
	}
	cmd.Flags().String("out", "", "output directory (default \"out\")")
	cmd.Flags().String("url", "", "canonical site URL")
	return cmd
}
