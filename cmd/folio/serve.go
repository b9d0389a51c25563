package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/eringen/folio"
	"github.com/eringen/folio/nav"
)

func (c *cli) serveCmd() *cobra.Command {
	var watch bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the site",
		Long: `Serve runs the site's HTTP server. With --watch it also watches the pages
and posts directories and refreshes navigation and the post cache on change.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return c.serve(ctx, watch)
		},
	}
	cmd.Flags().String("addr", "", "listen address (default \":3000\")")
	cmd.Flags().String("url", "", "canonical site URL")
	cmd.Flags().BoolVar(&watch, "watch", false, "refresh navigation and posts when files change")
	return cmd
}

func (c *cli) serve(ctx context.Context, watch bool) error {
	app := folio.New(c.cfg)
	if err := app.Init(); err != nil {
		return err
	}
	defer app.Close()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return app.Run(ctx)
	})
	if watch {
		g.Go(func() error {
			return nav.Watch(ctx, app.Echo.Logger, nav.DefaultDebounce, app.Reload,
				app.Config.PagesDir, app.Config.PostsDir)
		})
	}
	return g.Wait()
}
