package dev

import (
	"bytes"
	"context"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/vstyle/internal/build"
	"github.com/vango-dev/vstyle/internal/config"
	"github.com/vango-dev/vstyle/pkg/middleware"
	"github.com/vango-dev/vstyle/pkg/render"
	"github.com/vango-dev/vstyle/pkg/style"
)

// Routes served by the development server.
const (
	PagePath       = "/"
	StylesheetPath = "/styles.css"
	LivePath       = "/_vstyle/live"
	MetricsPath    = "/metrics"
)

// ServerOptions configures the development server.
type ServerOptions struct {
	// Config is the project configuration.
	Config *config.Config

	// Page produces the document served at /. It is called per request
	// with the server's sheet.
	Page build.Page

	// Registry collects the server metrics served at /metrics.
	// If nil, a fresh registry is used.
	Registry *prometheus.Registry

	// TracerProvider traces requests and page renders.
	// Default: the global provider.
	TracerProvider trace.TracerProvider

	// Logger receives server records.
	// If nil, slog.Default() is used.
	Logger *slog.Logger

	// OnListen is called with the bound address once the server listens.
	OnListen func(addr string)
}

// Server is the development server.
type Server struct {
	config   *config.Config
	options  ServerOptions
	sheet    *style.Sheet
	metrics  *middleware.Metrics
	live     *LiveStream
	renderer *render.Renderer
	tracer   trace.Tracer
	logger   *slog.Logger
	router   chi.Router

	mu         sync.Mutex
	httpServer *http.Server
	running    bool
}

// NewServer creates a new development server.
func NewServer(options ServerOptions) *Server {
	if options.Config == nil {
		options.Config = config.New()
	}
	if options.Registry == nil {
		options.Registry = prometheus.NewRegistry()
	}
	if options.TracerProvider == nil {
		options.TracerProvider = otel.GetTracerProvider()
	}
	if options.Logger == nil {
		options.Logger = slog.Default()
	}
	cfg := options.Config

	metrics := middleware.NewMetrics(middleware.WithRegistry(options.Registry))
	sheet := style.NewSheet(style.SheetConfig{
		Prefix:   cfg.Sheet.Prefix,
		Logger:   options.Logger,
		Observer: metrics,
	})

	s := &Server{
		config:   cfg,
		options:  options,
		sheet:    sheet,
		metrics:  metrics,
		renderer: render.NewRenderer(render.RendererConfig{}),
		tracer:   options.TracerProvider.Tracer("vstyle/dev"),
		logger:   options.Logger,
	}
	if cfg.Dev.LiveStyles {
		s.live = NewLiveStream(sheet, metrics, options.Logger)
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.OpenTelemetry(
		middleware.WithTracerProvider(s.options.TracerProvider),
		middleware.WithTracerName("vstyle/dev"),
		middleware.WithRequestFilter(func(r *http.Request) bool {
			return r.URL.Path != MetricsPath && r.URL.Path != LivePath
		}),
	))
	r.Use(s.metrics.Handler)

	r.Get(PagePath, s.handlePage)
	r.Get(StylesheetPath, s.handleStylesheet)
	if s.live != nil {
		r.Get(LivePath, s.live.HandleWebSocket)
	}
	r.Handle(MetricsPath, promhttp.HandlerFor(s.options.Registry, promhttp.HandlerOpts{}))
	return r
}

// Handler returns the server's router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Sheet returns the sheet pages compile into.
func (s *Server) Sheet() *style.Sheet {
	return s.sheet
}

// LiveClients returns the number of connected live style clients.
func (s *Server) LiveClients() int {
	if s.live == nil {
		return 0
	}
	return s.live.ClientCount()
}

// handlePage renders the page with the sheet inlined.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	_, span := s.tracer.Start(r.Context(), "render page")
	defer span.End()

	doc, err := s.options.Page(s.sheet)
	if err != nil {
		s.fail(w, r, span, err)
		return
	}
	doc.Sheet = s.sheet
	if s.live != nil {
		doc.LiveStyles = LivePath
	}

	var buf bytes.Buffer
	if err := s.renderer.RenderDocument(&buf, doc); err != nil {
		s.fail(w, r, span, err)
		return
	}
	span.SetAttributes(
		attribute.Int("vstyle.rules", s.sheet.Len()),
		attribute.Int("vstyle.page_bytes", buf.Len()),
	)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.Write(buf.Bytes())
}

// handleStylesheet serves everything compiled so far.
func (s *Server) handleStylesheet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.Write([]byte(s.sheet.CSS()))
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, span trace.Span, err error) {
	middleware.RecordError(span, err)
	s.logger.Error("page render failed",
		"path", r.URL.Path,
		"request_id", chimw.GetReqID(r.Context()),
		"error", err)
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

// Start listens on the configured address and serves until ctx is done or
// the listener fails.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil
	}
	ln, err := net.Listen("tcp", s.config.DevAddress())
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.running = true
	s.httpServer = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	srv := s.httpServer
	s.mu.Unlock()

	addr := ln.Addr().String()
	s.logger.Info("dev server listening", "url", "http://"+displayAddr(addr), "live", s.live != nil)
	if s.options.OnListen != nil {
		s.options.OnListen(addr)
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		s.Stop()
		return nil
	case err := <-errCh:
		s.Stop()
		return err
	}
}

// Stop closes live clients and shuts the server down.
func (s *Server) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	s.running = false

	if s.live != nil {
		s.live.Close()
	}
	if s.httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.httpServer.Shutdown(ctx)
	}
}

// displayAddr maps wildcard hosts to localhost for printing.
func displayAddr(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	if host == "" || host == "::" || host == "0.0.0.0" {
		host = "localhost"
	}
	if strings.Contains(host, ":") {
		host = "[" + host + "]"
	}
	return host + ":" + port
}
