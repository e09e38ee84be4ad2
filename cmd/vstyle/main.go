package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vstyle/internal/config"
	"github.com/vango-dev/vstyle/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ╦  ╦┌─┐┌┬┐┬ ┬┬  ┌─┐
  ╚╗╔╝└─┐ │ └┬┘│  ├┤
   ╚╝ └─┘ ┴  ┴ ┴─┘└─┘
`

// globals holds the persistent flags.
type globals struct {
	dir     string
	verbose bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errors.PrintError(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	g := &globals{}

	rootCmd := &cobra.Command{
		Use:   "vstyle",
		Short: "Element factories and composable styles for Go",
		Long: `vstyle builds UI elements from tag names and components while
compiling CSS declarations into cached, deduplicated class names.

The CLI renders, builds, serves and publishes the gallery page:

  • render   print the page with its sheet inlined
  • css      print the compiled stylesheet
  • build    write index.html, a fingerprinted stylesheet and manifest.json
  • dev      serve the page with live style streaming
  • publish  upload a build to S3`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&g.dir, "dir", "C", ".", "Project directory (searched upward for vstyle.json)")
	rootCmd.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "Log debug records")

	// Add commands
	rootCmd.AddCommand(
		renderCmd(g),
		cssCmd(g),
		buildCmd(g),
		devCmd(g),
		publishCmd(g),
		versionCmd(),
	)

	return rootCmd
}

// loadConfig reads vstyle.json above g.dir, falling back to defaults.
func (g *globals) loadConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(g.dir)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// logger writes text records to w.
func (g *globals) logger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if g.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// printBanner prints the vstyle ASCII art banner.
func printBanner(w io.Writer) {
	fmt.Fprint(w, banner)
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", fmt.Sprintf(format, args...))
}

// formatBytes formats bytes as a human-readable string.
func formatBytes(b int64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(b)/float64(div), "KMGTPE"[exp])
}
