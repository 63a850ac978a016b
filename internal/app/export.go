package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/hashedalex/polydelta/internal/domain"
	"github.com/hashedalex/polydelta/internal/i18n"
	"github.com/hashedalex/polydelta/internal/server/handler"
	"github.com/hashedalex/polydelta/internal/service"
	"github.com/hashedalex/polydelta/internal/web"
)

// DashboardBuilder produces the landing page data.
type DashboardBuilder interface {
	Build(ctx context.Context) (domain.Dashboard, error)
}

// ReportLister returns every stored tournament report.
type ReportLister interface {
	Available(ctx context.Context) ([]domain.TournamentReport, error)
}

// DigestSender delivers the top opportunities.
type DigestSender interface {
	SendDigest(ctx context.Context, opps []domain.Opportunity, at time.Time) error
}

// Exporter publishes a static snapshot: dashboard.json, one index page per
// locale and reports/{sport}.json.
type Exporter struct {
	dashboard  DashboardBuilder
	reports    ReportLister
	writer     domain.BlobWriter
	digest     DigestSender
	digestSize int
	logger     *slog.Logger
}

// NewExporter creates an Exporter. digest may be nil.
func NewExporter(
	dashboard DashboardBuilder,
	reports ReportLister,
	writer domain.BlobWriter,
	digest DigestSender,
	digestSize int,
	logger *slog.Logger,
) *Exporter {
	return &Exporter{
		dashboard:  dashboard,
		reports:    reports,
		writer:     writer,
		digest:     digest,
		digestSize: digestSize,
		logger:     logger.With(slog.String("component", "exporter")),
	}
}

// Run performs one export. A failed digest is logged; it does not fail the
// export since the snapshot is already published.
func (e *Exporter) Run(ctx context.Context) error {
	d, err := e.dashboard.Build(ctx)
	if err != nil {
		return fmt.Errorf("exporter: build dashboard: %w", err)
	}

	if err := e.putJSON(ctx, "dashboard.json", d); err != nil {
		return err
	}

	for _, locale := range i18n.Supported() {
		page := web.NewPage(d, locale)
		page.Static = true

		var buf bytes.Buffer
		if err := web.Render(&buf, page); err != nil {
			return fmt.Errorf("exporter: %w", err)
		}
		if err := e.writer.Put(ctx, indexPath(locale), &buf, "text/html; charset=utf-8"); err != nil {
			return fmt.Errorf("exporter: put %s page: %w", locale, err)
		}
	}

	reports, err := e.reports.Available(ctx)
	if err != nil {
		return fmt.Errorf("exporter: list reports: %w", err)
	}
	for _, r := range reports {
		if err := e.putJSON(ctx, "reports/"+string(r.SportType)+".json", handler.NewReportPayload(r)); err != nil {
			return err
		}
	}

	e.logger.InfoContext(ctx, "snapshot published",
		slog.Int("championships", len(d.Championships)),
		slog.Int("daily_matches", len(d.DailyMatches)),
		slog.Int("reports", len(reports)),
	)

	if e.digest != nil && e.digestSize > 0 {
		opps := service.TopOpportunities(d, e.digestSize)
		if len(opps) > 0 {
			if err := e.digest.SendDigest(ctx, opps, d.GeneratedAt); err != nil {
				e.logger.WarnContext(ctx, "digest delivery failed",
					slog.String("error", err.Error()),
				)
			}
		}
	}
	return nil
}

func (e *Exporter) putJSON(ctx context.Context, path string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("exporter: marshal %s: %w", path, err)
	}
	if err := e.writer.Put(ctx, path, bytes.NewReader(data), "application/json"); err != nil {
		return fmt.Errorf("exporter: put %s: %w", path, err)
	}
	return nil
}

// indexPath keeps the default locale at the root of the snapshot.
func indexPath(l i18n.Locale) string {
	if l == i18n.DefaultLocale {
		return "index.html"
	}
	return string(l) + "/index.html"
}
