package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/hashedalex/polydelta/internal/domain"
	"github.com/hashedalex/polydelta/internal/series"
)

// DefaultHistoryWindow is the trailing window charted on the match page.
const DefaultHistoryWindow = 7 * 24 * time.Hour

// HistoryService serves the chart series for one event.
type HistoryService struct {
	history domain.HistoryStore
	window  time.Duration
	now     func() time.Time
	logger  *slog.Logger
}

// NewHistoryService creates a HistoryService. A non-positive window selects
// DefaultHistoryWindow.
func NewHistoryService(history domain.HistoryStore, window time.Duration, logger *slog.Logger) *HistoryService {
	if window <= 0 {
		window = DefaultHistoryWindow
	}
	return &HistoryService{
		history: history,
		window:  window,
		now:     time.Now,
		logger:  logger,
	}
}

// Series returns the event's percent-scaled points inside the trailing
// window, oldest first. Unknown sport or type values match nothing and give
// an empty series.
func (s *HistoryService) Series(ctx context.Context, eventID string, eventType domain.EventType, sportType string) ([]series.Point, error) {
	q := domain.HistoryQuery{
		EventID:   eventID,
		EventType: eventType,
		SportType: sportType,
		Since:     s.now().Add(-s.window),
	}

	snapshots, err := s.history.ListSince(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("history_service: list %q: %w", eventID, err)
	}

	points := slices.Collect(series.Build(snapshots, eventType))
	if points == nil {
		points = []series.Point{}
	}
	return points, nil
}
