// Package middleware provides HTTP middleware for the vstyle dev server.
//
// This package includes:
//   - OpenTelemetry tracing middleware
//   - Prometheus metrics for HTTP requests, style compilation and live clients
//
// # OpenTelemetry Middleware
//
// OpenTelemetry traces every request as a server span. Spans carry the
// method, the matched chi route and the response status.
//
//	r := chi.NewRouter()
//	r.Use(middleware.OpenTelemetry())
//
// Configure with options:
//
//	middleware.OpenTelemetry(
//	    middleware.WithTracerName("gallery"),
//	    middleware.WithRequestFilter(func(r *http.Request) bool {
//	        return r.URL.Path != "/metrics"
//	    }),
//	)
//
// # Prometheus Metrics
//
// Metrics doubles as a style.Observer, so one value covers both the sheet
// and the router:
//
//	m := middleware.NewMetrics(middleware.WithRegistry(reg))
//	sheet := style.NewSheet(style.SheetConfig{Observer: m})
//	r.Use(m.Handler)
//
// Exported metrics (namespace "vstyle" by default):
//   - vstyle_compiles_total{result}: compilations, "inserted" or "hit"
//   - vstyle_compile_duration_seconds: compilation latency
//   - vstyle_rules: rules held by the sheet
//   - vstyle_live_clients: connected live style clients
//   - vstyle_live_frames_sent_total: frames written to live clients
//   - vstyle_http_requests_total{route,method,status}
//   - vstyle_http_request_duration_seconds{route}
package middleware
