package service

import (
	"context"
	"io"
	"log/slog"

	"github.com/hashedalex/polydelta/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ptr[T any](v T) *T { return &v }

type mockChampionshipStore struct {
	listBySportsFn func(ctx context.Context, sports []domain.SportType) ([]domain.ChampionshipOdds, error)
	listBySportFn  func(ctx context.Context, sport domain.SportType) ([]domain.ChampionshipOdds, error)
	findByTeamFn   func(ctx context.Context, sport domain.SportType, name string) (domain.ChampionshipOdds, error)
}

func (m *mockChampionshipStore) ListBySports(ctx context.Context, sports []domain.SportType) ([]domain.ChampionshipOdds, error) {
	if m.listBySportsFn != nil {
		return m.listBySportsFn(ctx, sports)
	}
	return nil, nil
}

func (m *mockChampionshipStore) ListBySport(ctx context.Context, sport domain.SportType) ([]domain.ChampionshipOdds, error) {
	if m.listBySportFn != nil {
		return m.listBySportFn(ctx, sport)
	}
	return nil, nil
}

func (m *mockChampionshipStore) FindByTeam(ctx context.Context, sport domain.SportType, name string) (domain.ChampionshipOdds, error) {
	if m.findByTeamFn != nil {
		return m.findByTeamFn(ctx, sport, name)
	}
	return domain.ChampionshipOdds{}, domain.ErrNotFound
}

type mockMatchStore struct {
	listBySportFn  func(ctx context.Context, sport domain.SportType) ([]domain.DailyMatch, error)
	getByMatchIDFn func(ctx context.Context, matchID string) (domain.DailyMatch, error)
}

func (m *mockMatchStore) ListBySport(ctx context.Context, sport domain.SportType) ([]domain.DailyMatch, error) {
	if m.listBySportFn != nil {
		return m.listBySportFn(ctx, sport)
	}
	return nil, nil
}

func (m *mockMatchStore) GetByMatchID(ctx context.Context, matchID string) (domain.DailyMatch, error) {
	if m.getByMatchIDFn != nil {
		return m.getByMatchIDFn(ctx, matchID)
	}
	return domain.DailyMatch{}, domain.ErrNotFound
}

type mockHistoryStore struct {
	listSinceFn func(ctx context.Context, q domain.HistoryQuery) ([]domain.OddsHistorySnapshot, error)
}

func (m *mockHistoryStore) ListSince(ctx context.Context, q domain.HistoryQuery) ([]domain.OddsHistorySnapshot, error) {
	if m.listSinceFn != nil {
		return m.listSinceFn(ctx, q)
	}
	return nil, nil
}

type mockReportStore struct {
	getBySportFn func(ctx context.Context, sport domain.SportType) (domain.TournamentReport, error)
}

func (m *mockReportStore) GetBySport(ctx context.Context, sport domain.SportType) (domain.TournamentReport, error) {
	if m.getBySportFn != nil {
		return m.getBySportFn(ctx, sport)
	}
	return domain.TournamentReport{}, domain.ErrNotFound
}

// memReportCache is an in-memory domain.ReportCache.
type memReportCache struct {
	entries map[domain.SportType]domain.TournamentReport
	sets    int
}

func newMemReportCache() *memReportCache {
	return &memReportCache{entries: make(map[domain.SportType]domain.TournamentReport)}
}

func (c *memReportCache) Set(_ context.Context, r domain.TournamentReport) error {
	c.sets++
	c.entries[r.SportType] = r
	return nil
}

func (c *memReportCache) Get(_ context.Context, sport domain.SportType) (domain.TournamentReport, error) {
	r, ok := c.entries[sport]
	if !ok {
		return domain.TournamentReport{}, domain.ErrNotFound
	}
	return r, nil
}

func (c *memReportCache) Invalidate(_ context.Context, sport domain.SportType) error {
	delete(c.entries, sport)
	return nil
}
