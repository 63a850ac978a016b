package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hashedalex/polydelta/internal/domain"
)

// ReportService reads tournament reports through an optional cache.
type ReportService struct {
	reports domain.ReportStore
	cache   domain.ReportCache
	logger  *slog.Logger
}

// NewReportService creates a ReportService. cache may be nil when Redis is
// disabled.
func NewReportService(reports domain.ReportStore, cache domain.ReportCache, logger *slog.Logger) *ReportService {
	return &ReportService{
		reports: reports,
		cache:   cache,
		logger:  logger,
	}
}

// Get returns the report for sport, accepting league aliases such as "nba".
func (s *ReportService) Get(ctx context.Context, sport string) (domain.TournamentReport, error) {
	key := domain.SportType(domain.NormalizeSportType(sport))

	if s.cache != nil {
		r, err := s.cache.Get(ctx, key)
		if err == nil {
			return r, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.WarnContext(ctx, "report_service: cache get failed",
				slog.String("sport_type", string(key)),
				slog.String("error", err.Error()),
			)
		}
	}

	r, err := s.reports.GetBySport(ctx, key)
	if err != nil {
		return domain.TournamentReport{}, fmt.Errorf("report_service: get %s: %w", key, err)
	}

	if s.cache != nil {
		if cacheErr := s.cache.Set(ctx, r); cacheErr != nil {
			s.logger.WarnContext(ctx, "report_service: cache set failed",
				slog.String("sport_type", string(key)),
				slog.String("error", cacheErr.Error()),
			)
		}
	}
	return r, nil
}

// Available returns the stored reports for every championship sport,
// skipping sports that have none.
func (s *ReportService) Available(ctx context.Context) ([]domain.TournamentReport, error) {
	var out []domain.TournamentReport
	for _, sport := range domain.ChampionshipSports {
		r, err := s.Get(ctx, string(sport))
		if errors.Is(err, domain.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
