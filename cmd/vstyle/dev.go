package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vstyle/internal/dev"
	"github.com/vango-dev/vstyle/internal/showcase"
)

func devCmd(g *globals) *cobra.Command {
	var (
		port   int
		host   string
		noLive bool
	)

	cmd := &cobra.Command{
		Use:   "dev",
		Short: "Start the development server",
		Long: `Start the development server.

The page is rendered per request with the sheet inlined. Rules
compiled while serving are streamed to every open page.

Routes:
  /               the gallery page
  /styles.css     the compiled sheet
  /_vstyle/live   live style stream (WebSocket)
  /metrics        Prometheus metrics

Examples:
  vstyle dev
  vstyle dev --port=8080
  vstyle dev --host=0.0.0.0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}

			// Apply command-line overrides
			if cmd.Flags().Changed("port") {
				cfg.Dev.Port = port
			}
			if host != "" {
				cfg.Dev.Host = host
			}
			if noLive {
				cfg.Dev.LiveStyles = false
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printBanner(out)
			fmt.Fprintln(out, "  dev")
			fmt.Fprintln(out)

			server := dev.NewServer(dev.ServerOptions{
				Config: cfg,
				Page:   showcase.Page,
				Logger: g.logger(cmd.ErrOrStderr()),
				OnListen: func(addr string) {
					success(out, "Serving http://%s", addr)
				},
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return server.Start(ctx)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run on (default from vstyle.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from vstyle.json)")
	cmd.Flags().BoolVar(&noLive, "no-live", false, "Disable live style streaming")

	return cmd
}
