package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hashedalex/polydelta/internal/domain"
	"github.com/hashedalex/polydelta/internal/server"
	"github.com/hashedalex/polydelta/internal/server/handler"
	"github.com/hashedalex/polydelta/internal/server/middleware"
	"github.com/hashedalex/polydelta/internal/service"
)

// services holds the domain services shared by both modes.
type services struct {
	events    *service.EventService
	history   *service.HistoryService
	reports   *service.ReportService
	dashboard *service.DashboardService
}

func (a *App) buildServices(deps *Dependencies) services {
	featured := make([]domain.SportType, 0, len(a.cfg.Dashboard.FeaturedSports))
	for _, s := range a.cfg.Dashboard.FeaturedSports {
		featured = append(featured, domain.SportType(s))
	}

	return services{
		events:  service.NewEventService(deps.ChampionshipStore, deps.MatchStore, a.logger),
		history: service.NewHistoryService(deps.HistoryStore, a.cfg.Dashboard.HistoryWindow.Duration, a.logger),
		reports: service.NewReportService(deps.ReportStore, deps.ReportCache, a.logger),
		dashboard: service.NewDashboardService(deps.ChampionshipStore, deps.MatchStore, service.DashboardConfig{
			FeaturedSports: featured,
			EVThreshold:    a.cfg.Dashboard.EVThreshold,
		}, a.logger),
	}
}

// ServerMode serves the API and landing page until the context is
// cancelled, then drains in-flight requests within the shutdown timeout.
func (a *App) ServerMode(ctx context.Context, deps *Dependencies) error {
	a.logger.InfoContext(ctx, "starting server mode")

	svc := a.buildServices(deps)
	handlers := server.Handlers{
		Health:    handler.NewHealthHandler(deps.Readiness, a.logger),
		History:   handler.NewHistoryHandler(svc.history, a.logger),
		Report:    handler.NewReportHandler(svc.reports, a.logger),
		Match:     handler.NewMatchHandler(svc.events, a.logger),
		Dashboard: handler.NewDashboardHandler(svc.dashboard, a.logger),
		Locale:    handler.NewLocaleHandler(a.logger),
	}

	var metrics *middleware.Metrics
	if a.cfg.Server.MetricsEnabled {
		metrics = middleware.NewMetrics()
	}

	srv := server.NewServer(server.Config{
		Port:         a.cfg.Server.Port,
		CORSOrigins:  a.cfg.Server.CORSOrigins,
		SessionKeys:  a.cfg.Auth.SessionKeys,
		ReadTimeout:  a.cfg.Server.ReadTimeout.Duration,
		WriteTimeout: a.cfg.Server.WriteTimeout.Duration,
		RateLimit:    a.cfg.Server.RateLimit,
		RateWindow:   a.cfg.Server.RateWindow.Duration,
	}, handlers, deps.RateLimiter, metrics, a.logger)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		port := a.cfg.Server.Port
		a.logger.InfoContext(ctx, "HTTP server listening",
			slog.Int("port", port),
			slog.String("url", fmt.Sprintf("http://localhost:%d", port)),
		)
		return srv.Start()
	})

	g.Go(func() error {
		<-ctx.Done()
		timeout := a.cfg.Server.ShutdownTimeout.Duration
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		shutCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return srv.Shutdown(shutCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// ExportMode publishes one static snapshot of the dashboard and reports to
// object storage, sends the opportunity digest, and returns.
func (a *App) ExportMode(ctx context.Context, deps *Dependencies) error {
	a.logger.InfoContext(ctx, "starting export mode")

	svc := a.buildServices(deps)
	exp := NewExporter(svc.dashboard, svc.reports, deps.BlobWriter, deps.Notifier, a.cfg.Dashboard.DigestSize, a.logger)
	if err := exp.Run(ctx); err != nil {
		return fmt.Errorf("export mode: %w", err)
	}
	return nil
}
