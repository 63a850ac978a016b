// Package server exposes the PolyDelta HTTP API and landing page.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/hashedalex/polydelta/internal/domain"
	"github.com/hashedalex/polydelta/internal/server/handler"
	"github.com/hashedalex/polydelta/internal/server/middleware"
)

// Config holds the HTTP server configuration.
type Config struct {
	Port         int
	CORSOrigins  []string
	SessionKeys  []string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	// RateLimit requests per RateWindow per client IP; zero disables it.
	RateLimit  int
	RateWindow time.Duration
}

// Handlers aggregates all HTTP handlers that the server needs to register.
type Handlers struct {
	Health    *handler.HealthHandler
	History   *handler.HistoryHandler
	Report    *handler.ReportHandler
	Match     *handler.MatchHandler
	Dashboard *handler.DashboardHandler
	Locale    *handler.LocaleHandler
}

// Server is the read-only HTTP server.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

// NewServer registers every route and builds the middleware chain. limiter
// and metrics are optional.
func NewServer(
	cfg Config,
	handlers Handlers,
	limiter domain.RateLimiter,
	metrics *middleware.Metrics,
	logger *slog.Logger,
) *Server {
	mux := http.NewServeMux()

	// Probes.
	mux.HandleFunc("GET /api/health", handlers.Health.HealthCheck)
	mux.HandleFunc("GET /api/ready", handlers.Health.Ready)

	// Data endpoints.
	mux.HandleFunc("GET /api/history/{eventId}", handlers.History.GetHistory)
	mux.HandleFunc("GET /api/tournament-report/{sportType}", handlers.Report.GetReport)
	mux.HandleFunc("GET /api/match/{matchId}", handlers.Match.GetMatch)
	mux.HandleFunc("GET /api/dashboard", handlers.Dashboard.GetDashboard)
	mux.HandleFunc("GET /api/i18n/{locale}", handlers.Locale.GetDictionary)

	// Landing page.
	mux.HandleFunc("GET /{$}", handlers.Dashboard.Page)

	if metrics != nil {
		mux.Handle("GET /metrics", metrics.Handler())
	}

	// Build the chain inside out; CORS ends up outermost.
	var h http.Handler = mux
	if metrics != nil {
		h = metrics.Middleware(h)
	}
	h = middleware.Identity(cfg.SessionKeys)(h)
	if limiter != nil && cfg.RateLimit > 0 {
		h = middleware.RateLimit(limiter, cfg.RateLimit, cfg.RateWindow, logger)(h)
	}
	h = middleware.Logging(logger)(h)
	h = middleware.CORS(cfg.CORSOrigins)(h)

	readTimeout := cfg.ReadTimeout
	if readTimeout <= 0 {
		readTimeout = 15 * time.Second
	}
	writeTimeout := cfg.WriteTimeout
	if writeTimeout <= 0 {
		writeTimeout = 30 * time.Second
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           h,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       60 * time.Second,
	}

	return &Server{
		httpServer: srv,
		logger:     logger,
	}
}

// Handler returns the fully wrapped handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening for HTTP requests. It blocks until the server
// encounters an error or is shut down.
func (s *Server) Start() error {
	s.logger.Info("server: starting",
		slog.String("addr", s.httpServer.Addr),
	)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server: listen: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server, waiting for in-flight requests
// to complete within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("server: shutting down")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return nil
}
