package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vstyle/pkg/publish"
)

func publishCmd(g *globals) *cobra.Command {
	var (
		bucket   string
		prefix   string
		region   string
		endpoint string
		from     string
		toDir    string
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Upload the build output",
		Long: `Upload the build output to S3, or to a local directory with --to-dir.

Fingerprinted files are sent with the configured Cache-Control
header; index.html and manifest.json are sent with no-cache.

Credentials are read from AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY
and AWS_SESSION_TOKEN.

Examples:
  vstyle publish --bucket=assets --prefix=gallery/
  vstyle publish --endpoint=http://localhost:9000 --bucket=dev
  vstyle publish --to-dir=/srv/www`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}

			// Apply command-line overrides
			if bucket != "" {
				cfg.Publish.Bucket = bucket
			}
			if prefix != "" {
				cfg.Publish.Prefix = prefix
			}
			if region != "" {
				cfg.Publish.Region = region
			}
			if endpoint != "" {
				cfg.Publish.Endpoint = endpoint
			}
			if from == "" {
				from = cfg.OutputPath()
			}

			var target publish.Target
			if toDir != "" {
				dt, err := publish.NewDirTarget(toDir)
				if err != nil {
					return err
				}
				target = dt
			} else {
				client := publish.NewS3Client(publish.S3Config{
					Region:   cfg.Publish.Region,
					Endpoint: cfg.Publish.Endpoint,
				})
				target = publish.NewS3Target(client, cfg.Publish.Bucket)
			}

			p := publish.New(target, publish.Options{
				Prefix:       cfg.Publish.Prefix,
				CacheControl: cfg.Publish.CacheControl,
				Logger:       g.logger(cmd.ErrOrStderr()),
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			objects, err := p.Publish(ctx, from)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, obj := range objects {
				info(out, "%s  (%s, %s)", obj.Key, formatBytes(obj.Size), obj.CacheControl)
			}
			fmt.Fprintln(out)
			success(out, "Published %d files", len(objects))
			return nil
		},
	}

	cmd.Flags().StringVar(&bucket, "bucket", "", "Target bucket (default from vstyle.json)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix (default from vstyle.json)")
	cmd.Flags().StringVar(&region, "region", "", "Bucket region (default from vstyle.json, then AWS_REGION)")
	cmd.Flags().StringVar(&endpoint, "endpoint", "", "S3-compatible endpoint URL")
	cmd.Flags().StringVar(&from, "from", "", "Build output to upload (default from vstyle.json)")
	cmd.Flags().StringVar(&toDir, "to-dir", "", "Copy into a local directory instead of S3")

	return cmd
}
