package postgres

import (
	"context"
	"fmt"

	"github.com/hashedalex/polydelta/internal/domain"
)

// HistoryStore implements domain.HistoryStore using PostgreSQL.
type HistoryStore struct {
	db Querier
}

// NewHistoryStore creates a HistoryStore backed by the given pool.
func NewHistoryStore(db Querier) *HistoryStore {
	return &HistoryStore{db: db}
}

// ListSince returns the snapshots matching q recorded at or after q.Since,
// oldest first.
func (s *HistoryStore) ListSince(ctx context.Context, q domain.HistoryQuery) ([]domain.OddsHistorySnapshot, error) {
	rows, err := s.db.Query(ctx,
		`SELECT event_id, event_type, sport_type, recorded_at,
			web2_odds, polymarket_price, web2_home_odds, poly_home_price
		FROM odds_history
		WHERE event_id = $1 AND event_type = $2 AND sport_type = $3 AND recorded_at >= $4
		ORDER BY recorded_at ASC`,
		q.EventID, string(q.EventType), q.SportType, q.Since)
	if err != nil {
		return nil, fmt.Errorf("postgres: list odds history %s: %w", q.EventID, err)
	}
	defer rows.Close()

	var out []domain.OddsHistorySnapshot
	for rows.Next() {
		var snap domain.OddsHistorySnapshot
		var eventType string
		if err := rows.Scan(
			&snap.EventID, &eventType, &snap.SportType, &snap.RecordedAt,
			&snap.Web2Odds, &snap.PolymarketPrice, &snap.Web2HomeOdds, &snap.PolyHomePrice,
		); err != nil {
			return nil, fmt.Errorf("postgres: scan odds history: %w", err)
		}
		snap.EventType = domain.EventType(eventType)
		out = append(out, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: list odds history rows: %w", err)
	}
	return out, nil
}

var _ domain.HistoryStore = (*HistoryStore)(nil)
