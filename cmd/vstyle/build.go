package main

import (
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vstyle/internal/build"
	"github.com/vango-dev/vstyle/internal/showcase"
	"github.com/vango-dev/vstyle/pkg/assets"
)

func buildCmd(g *globals) *cobra.Command {
	var (
		output        string
		noFingerprint bool
		basePath      string
		pretty        bool
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the gallery as static files",
		Long: `Build the gallery page for static hosting.

This command:
  • Renders the page to index.html
  • Writes the compiled sheet as styles.<hash>.css
  • Generates the asset manifest

Examples:
  vstyle build
  vstyle build --out=public
  vstyle build --base=/static/ --no-fingerprint`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			builder := build.New(cfg, showcase.Page, build.Options{
				Output:        output,
				NoFingerprint: noFingerprint,
				BasePath:      basePath,
				Pretty:        pretty,
				Logger:        g.logger(cmd.ErrOrStderr()),
				OnProgress: func(step string) {
					info(out, step)
				},
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			fmt.Fprintln(out, "  Building...")
			fmt.Fprintln(out)

			result, err := builder.Build(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintln(out)
			success(out, "Build complete in %s", result.Duration.Round(time.Millisecond))
			fmt.Fprintln(out)
			fmt.Fprintln(out, "  Output:")
			fmt.Fprintf(out, "    %s%c\n", result.Output, filepath.Separator)
			fmt.Fprintf(out, "    ├── %s      (%s)\n", build.IndexFile, formatBytes(result.HTMLSize))
			fmt.Fprintf(out, "    ├── %s  (%s, %d rules)\n", result.Stylesheet, formatBytes(result.CSSSize), result.Rules)
			fmt.Fprintf(out, "    └── %s\n", assets.ManifestFile)
			fmt.Fprintln(out)

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "out", "o", "", "Output directory (default from vstyle.json)")
	cmd.Flags().BoolVar(&noFingerprint, "no-fingerprint", false, "Write styles.css without a content hash")
	cmd.Flags().StringVar(&basePath, "base", "", "Path prefix for the stylesheet link")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent index.html")

	return cmd
}
