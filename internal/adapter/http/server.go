package http

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/aouyang1/go-co2explorer"
	"github.com/aouyang1/go-co2explorer/internal/observability"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/goccy/go-json"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ViewBuilder builds dashboard views and reports whether its data is ready.
type ViewBuilder interface {
	BuildView(p co2explorer.Params) *co2explorer.View
	Zones() []co2explorer.Zone
	CheckReadiness(ctx context.Context) error
}

// Server exposes the dashboard, its JSON and PNG renditions, and health, readiness, and
// metrics endpoints.
type Server struct {
	httpServer *http.Server
	builder    ViewBuilder
	metrics    *observability.Metrics
	logger     *slog.Logger
	clock      clockwork.Clock

	pngWidth  int
	pngHeight int
}

// Option customizes a Server.
type Option func(*Server)

// WithClock sets the time source used to time view builds.
func WithClock(c clockwork.Clock) Option {
	return func(s *Server) {
		s.clock = c
	}
}

// WithPNGSize sets the dimensions of /chart.png.
func WithPNGSize(width, height int) Option {
	return func(s *Server) {
		s.pngWidth = width
		s.pngHeight = height
	}
}

// NewServer creates an HTTP server with /, /api/view, /chart.png, /healthz, /readyz, and
// /metrics routes.
func NewServer(addr string, builder ViewBuilder, metrics *observability.Metrics, logger *slog.Logger, opts ...Option) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		builder:   builder,
		metrics:   metrics,
		logger:    logger,
		clock:     clockwork.NewRealClock(),
		pngWidth:  co2explorer.DefaultPNGWidth,
		pngHeight: co2explorer.DefaultPNGHeight,
	}
	for _, opt := range opts {
		opt(s)
	}

	mux.HandleFunc("GET /{$}", s.handleDashboard)
	mux.HandleFunc("GET /api/view", s.handleViewJSON)
	mux.HandleFunc("GET /chart.png", s.handleChartPNG)
	mux.HandleFunc("GET /healthz", sharedobs.LivenessHandler())
	mux.HandleFunc("GET /readyz", sharedobs.ReadinessHandler(builder))
	mux.Handle("GET /metrics", promhttp.Handler())

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) buildView(r *http.Request) (co2explorer.Params, *co2explorer.View) {
	p := parseParams(r.URL.Query())

	start := s.clock.Now()
	view := s.builder.BuildView(p)
	s.metrics.ViewBuildDuration.Observe(s.clock.Since(start).Seconds())
	s.metrics.ViewsBuilt.WithLabelValues(s.zoneLabel(p)).Inc()

	s.logger.Debug("view built",
		"slope", p.Slope,
		"intercept", p.Intercept,
		"month", p.Month,
		"series", len(view.Series),
	)
	return p, view
}

// zoneLabel keeps the zone metric label bounded to configured presets.
func (s *Server) zoneLabel(p co2explorer.Params) string {
	if p.DateRange != nil {
		return "custom"
	}
	for _, z := range s.builder.Zones() {
		if z.Name == p.Zone {
			return z.Name
		}
	}
	return "unknown"
}

func (s *Server) renderFailed(w http.ResponseWriter, format string, err error) {
	s.metrics.RenderErrors.WithLabelValues(format).Inc()
	s.logger.Error("render failed", "format", format, "error", err)
	http.Error(w, "unable to render view", http.StatusInternalServerError)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	p, view := s.buildView(r)

	var buf bytes.Buffer
	if err := co2explorer.RenderDashboard(&buf, view, p, s.builder.Zones()); err != nil {
		s.renderFailed(w, "html", err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes()) //nolint:errcheck // client went away
}

func (s *Server) handleViewJSON(w http.ResponseWriter, r *http.Request) {
	_, view := s.buildView(r)

	body, err := json.Marshal(view)
	if err != nil {
		s.renderFailed(w, "json", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(body) //nolint:errcheck // client went away
}

func (s *Server) handleChartPNG(w http.ResponseWriter, r *http.Request) {
	_, view := s.buildView(r)
	if len(view.Series) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	var buf bytes.Buffer
	if err := co2explorer.RenderPNG(&buf, view, s.pngWidth, s.pngHeight); err != nil {
		s.renderFailed(w, "png", err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes()) //nolint:errcheck // client went away
}
