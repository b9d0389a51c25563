package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/eringen/folio/nav"
)

func (c *cli) navCmd() *cobra.Command {
	var remote string
	cmd := &cobra.Command{
		Use:   "nav",
		Short: "Print the navigation as JSON",
		Long: `Nav prints the header navigation in the same shape as /api/navigation.
By default it scans the local pages directory; with --remote it asks a running
site and falls back to the static entries if that fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var items []nav.Item
			if remote != "" {
				items = nav.NewClient(remote, c.logger).Fetch(cmd.Context())
			} else {
				dynamic, err := nav.Discover(c.cfg.PagesDir)
				if err != nil {
					c.logger.Warnf("navigation: %v; using static entries only", err)
				}
				items = append(nav.StaticItems(), dynamic...)
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(map[string][]nav.Item{"navItems": items})
		},
	}
	cmd.Flags().String("pages", "", "pages directory (default \"pages\")")
	cmd.Flags().StringVar(&remote, "remote", "", "base URL of a running site to fetch /api/navigation from")
	return cmd
}
