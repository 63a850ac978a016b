package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hashedalex/polydelta/internal/domain"
)

// MatchStore implements domain.MatchStore using PostgreSQL.
type MatchStore struct {
	db Querier
}

// NewMatchStore creates a MatchStore backed by the given pool.
func NewMatchStore(db Querier) *MatchStore {
	return &MatchStore{db: db}
}

const matchCols = `id, match_id, sport_type, home_team, away_team, commence_time,
	web2_home_odds, web2_away_odds, poly_home_price, poly_away_price,
	source_bookmaker, source_url, polymarket_url,
	ai_analysis, analysis_timestamp, last_updated`

func scanMatch(row pgx.Row) (domain.DailyMatch, error) {
	var m domain.DailyMatch
	var sport string
	err := row.Scan(
		&m.ID, &m.MatchID, &sport, &m.HomeTeam, &m.AwayTeam, &m.CommenceTime,
		&m.Web2HomeOdds, &m.Web2AwayOdds, &m.PolyHomePrice, &m.PolyAwayPrice,
		&m.SourceBookmaker, &m.SourceURL, &m.PolymarketURL,
		&m.AIAnalysis, &m.AnalysisTimestamp, &m.LastUpdated,
	)
	if err != nil {
		return domain.DailyMatch{}, err
	}
	m.SportType = domain.SportType(sport)
	return m, nil
}

// ListBySport returns the matches of a sport ordered by start time.
func (s *MatchStore) ListBySport(ctx context.Context, sport domain.SportType) ([]domain.DailyMatch, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+matchCols+` FROM daily_matches
		WHERE sport_type = $1
		ORDER BY commence_time ASC`, string(sport))
	if err != nil {
		return nil, fmt.Errorf("postgres: list daily matches %s: %w", sport, err)
	}
	defer rows.Close()

	var out []domain.DailyMatch
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres: scan daily match: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: list daily matches rows: %w", err)
	}
	return out, nil
}

// GetByMatchID retrieves a match by its external identifier.
func (s *MatchStore) GetByMatchID(ctx context.Context, matchID string) (domain.DailyMatch, error) {
	row := s.db.QueryRow(ctx,
		`SELECT `+matchCols+` FROM daily_matches WHERE match_id = $1`, matchID)
	m, err := scanMatch(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.DailyMatch{}, domain.ErrNotFound
		}
		return domain.DailyMatch{}, fmt.Errorf("postgres: get daily match %s: %w", matchID, err)
	}
	return m, nil
}

var _ domain.MatchStore = (*MatchStore)(nil)
