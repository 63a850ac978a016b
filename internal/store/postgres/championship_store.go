package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/hashedalex/polydelta/internal/domain"
)

// ChampionshipStore implements domain.ChampionshipStore using PostgreSQL.
type ChampionshipStore struct {
	db Querier
}

// NewChampionshipStore creates a ChampionshipStore backed by the given pool.
func NewChampionshipStore(db Querier) *ChampionshipStore {
	return &ChampionshipStore{db: db}
}

const championshipCols = `id, sport_type, team_name, web2_odds, polymarket_price,
	source_bookmaker, source_url, polymarket_url,
	ai_analysis, analysis_timestamp, last_updated`

func scanChampionship(row pgx.Row) (domain.ChampionshipOdds, error) {
	var c domain.ChampionshipOdds
	var sport string
	err := row.Scan(
		&c.ID, &sport, &c.TeamName, &c.Web2Odds, &c.PolymarketPrice,
		&c.SourceBookmaker, &c.SourceURL, &c.PolymarketURL,
		&c.AIAnalysis, &c.AnalysisTimestamp, &c.LastUpdated,
	)
	if err != nil {
		return domain.ChampionshipOdds{}, err
	}
	c.SportType = domain.SportType(sport)
	return c, nil
}

// ListBySports returns every entry for the given sports, highest market
// price first.
func (s *ChampionshipStore) ListBySports(ctx context.Context, sports []domain.SportType) ([]domain.ChampionshipOdds, error) {
	keys := make([]string, len(sports))
	for i, sp := range sports {
		keys[i] = string(sp)
	}
	return s.list(ctx, "list championship odds",
		`SELECT `+championshipCols+` FROM championship_odds
		WHERE sport_type = ANY($1)
		ORDER BY polymarket_price DESC NULLS LAST, team_name`, keys)
}

// ListBySport returns every entry for one sport, highest market price first.
func (s *ChampionshipStore) ListBySport(ctx context.Context, sport domain.SportType) ([]domain.ChampionshipOdds, error) {
	return s.list(ctx, "list championship odds for "+string(sport),
		`SELECT `+championshipCols+` FROM championship_odds
		WHERE sport_type = $1
		ORDER BY polymarket_price DESC NULLS LAST, team_name`, string(sport))
}

func (s *ChampionshipStore) list(ctx context.Context, op, query string, args ...any) ([]domain.ChampionshipOdds, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("postgres: %s: %w", op, err)
	}
	defer rows.Close()

	var out []domain.ChampionshipOdds
	for rows.Next() {
		c, err := scanChampionship(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres: scan championship odds: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: %s rows: %w", op, err)
	}
	return out, nil
}

// FindByTeam returns the most recently updated entry of sport whose team name
// contains name, compared case-insensitively.
func (s *ChampionshipStore) FindByTeam(ctx context.Context, sport domain.SportType, name string) (domain.ChampionshipOdds, error) {
	row := s.db.QueryRow(ctx,
		`SELECT `+championshipCols+` FROM championship_odds
		WHERE sport_type = $1 AND team_name ILIKE $2 ESCAPE '\'
		ORDER BY last_updated DESC
		LIMIT 1`,
		string(sport), "%"+escapeLike(name)+"%")
	c, err := scanChampionship(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ChampionshipOdds{}, domain.ErrNotFound
		}
		return domain.ChampionshipOdds{}, fmt.Errorf("postgres: find championship team %q: %w", name, err)
	}
	return c, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutralises LIKE metacharacters so name matches literally.
func escapeLike(name string) string {
	return likeEscaper.Replace(name)
}

var _ domain.ChampionshipStore = (*ChampionshipStore)(nil)
