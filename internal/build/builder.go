package build

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/vango-dev/vstyle/internal/config"
	"github.com/vango-dev/vstyle/internal/errors"
	"github.com/vango-dev/vstyle/pkg/assets"
	"github.com/vango-dev/vstyle/pkg/render"
	"github.com/vango-dev/vstyle/pkg/style"
)

// IndexFile is the name of the rendered page.
const IndexFile = "index.html"

// Page produces the document to build. Styles must be compiled into sheet.
type Page func(sheet *style.Sheet) (render.Document, error)

// Result contains the build output.
type Result struct {
	// Duration is how long the build took.
	Duration time.Duration

	// Output is the output directory.
	Output string

	// Stylesheet is the file name the sheet was written to.
	Stylesheet string

	// Manifest maps logical asset names to written files.
	Manifest map[string]string

	// Rules is the number of classes in the sheet.
	Rules int

	// HTMLSize is the size of index.html in bytes.
	HTMLSize int64

	// CSSSize is the size of the stylesheet in bytes.
	CSSSize int64
}

// Options configures the builder.
type Options struct {
	// Output overrides the configured output directory.
	Output string

	// NoFingerprint writes styles.css instead of styles.<hash>.css.
	NoFingerprint bool

	// BasePath is prepended to the stylesheet link (default: relative).
	BasePath string

	// Pretty indents the rendered page.
	Pretty bool

	// Logger receives sheet debug records.
	Logger *slog.Logger

	// OnProgress is called with progress updates.
	OnProgress func(step string)
}

// Builder handles production builds.
type Builder struct {
	config  *config.Config
	page    Page
	options Options
}

// New creates a new builder.
func New(cfg *config.Config, page Page, options Options) *Builder {
	// Apply config defaults to options
	if options.Output == "" {
		options.Output = cfg.OutputPath()
	}
	if !cfg.Build.Fingerprint {
		options.NoFingerprint = true
	}
	if options.Logger == nil {
		options.Logger = slog.Default()
	}

	return &Builder{
		config:  cfg,
		page:    page,
		options: options,
	}
}

// Build renders the page, writes the stylesheet bundle next to it and
// records both in manifest.json. Every file system failure is E170.
func (b *Builder) Build(ctx context.Context) (*Result, error) {
	start := time.Now()
	output := b.options.Output

	b.progress("Cleaning output directory...")
	if err := os.RemoveAll(output); err != nil {
		return nil, errors.New("E170").Wrap(err)
	}
	if err := os.MkdirAll(output, 0755); err != nil {
		return nil, errors.New("E170").Wrap(err)
	}

	sheet := style.NewSheet(style.SheetConfig{
		Prefix: b.config.Sheet.Prefix,
		Logger: b.options.Logger,
	})
	doc, err := b.page(sheet)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	renderer := render.NewRenderer(render.RendererConfig{Pretty: b.options.Pretty})

	// Rendering expands components, which may compile more styles; the
	// sheet is complete only afterwards.
	b.progress("Compiling styles...")
	if doc.Body == nil {
		return nil, errors.New("E002").WithDetail("page body is nil")
	}
	if err := renderer.RenderContext(ctx, io.Discard, doc.Body); err != nil {
		return nil, err
	}

	b.progress("Writing stylesheet...")
	manifest := assets.NewManifest()
	css := []byte(sheet.CSS())
	file, err := assets.WriteBundle(manifest, output, assets.StylesheetName, css, !b.options.NoFingerprint)
	if err != nil {
		return nil, errors.New("E170").Wrap(err)
	}

	b.progress("Rendering page...")
	resolver := assets.NewResolver(manifest, b.options.BasePath)
	doc.Sheet = nil
	doc.StyleSheets = append(doc.StyleSheets, resolver.Asset(assets.StylesheetName))

	var page bytes.Buffer
	if err := renderer.RenderDocument(&page, doc); err != nil {
		return nil, err
	}
	if err := os.WriteFile(filepath.Join(output, IndexFile), page.Bytes(), 0644); err != nil {
		return nil, errors.New("E170").Wrap(err)
	}

	b.progress("Writing manifest...")
	if err := manifest.Save(filepath.Join(output, assets.ManifestFile)); err != nil {
		return nil, errors.New("E170").Wrap(err)
	}

	return &Result{
		Duration:   time.Since(start),
		Output:     output,
		Stylesheet: file,
		Manifest:   manifest.All(),
		Rules:      sheet.Len(),
		HTMLSize:   int64(page.Len()),
		CSSSize:    int64(len(css)),
	}, nil
}

// progress reports build progress.
func (b *Builder) progress(step string) {
	if b.options.OnProgress != nil {
		b.options.OnProgress(step)
	}
}

// Output returns the output directory.
func (b *Builder) Output() string {
	return b.options.Output
}

// Clean removes the build output directory.
func (b *Builder) Clean() error {
	return os.RemoveAll(b.options.Output)
}
