package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vstyle/internal/showcase"
	"github.com/vango-dev/vstyle/pkg/render"
	"github.com/vango-dev/vstyle/pkg/style"
)

func renderCmd(g *globals) *cobra.Command {
	var pretty bool

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the gallery page",
		Long: `Render the gallery page to stdout with the compiled sheet inlined
in a <style> element.

Examples:
  vstyle render
  vstyle render --pretty > page.html`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sheet, doc, err := g.page(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			doc.Sheet = sheet
			r := render.NewRenderer(render.RendererConfig{Pretty: pretty})
			return r.RenderDocument(cmd.OutOrStdout(), doc)
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the output")

	return cmd
}

func cssCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "css",
		Short: "Print the gallery stylesheet",
		Long: `Print every rule the gallery page compiles, one class per line,
in insertion order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sheet, doc, err := g.page(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			// Components compile their styles when rendered.
			r := render.NewRenderer(render.RendererConfig{})
			if err := r.RenderContext(cmd.Context(), io.Discard, doc.Body); err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), sheet.CSS())
			return err
		},
	}
}

// page builds the gallery into a fresh sheet using the project prefix.
func (g *globals) page(logOut io.Writer) (*style.Sheet, render.Document, error) {
	cfg, err := g.loadConfig()
	if err != nil {
		return nil, render.Document{}, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, render.Document{}, err
	}
	sheet := style.NewSheet(style.SheetConfig{
		Prefix: cfg.Sheet.Prefix,
		Logger: g.logger(logOut),
	})
	doc, err := showcase.Page(sheet)
	if err != nil {
		return nil, render.Document{}, err
	}
	return sheet, doc, nil
}
