package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hashedalex/polydelta/internal/domain"
)

// ReportStore implements domain.ReportStore using PostgreSQL.
type ReportStore struct {
	db Querier
}

// NewReportStore creates a ReportStore backed by the given pool.
func NewReportStore(db Querier) *ReportStore {
	return &ReportStore{db: db}
}

// GetBySport retrieves the report for a canonical sport key.
func (s *ReportStore) GetBySport(ctx context.Context, sport domain.SportType) (domain.TournamentReport, error) {
	var (
		raw []byte
		r   domain.TournamentReport
	)
	err := s.db.QueryRow(ctx,
		`SELECT report_json, generated_at FROM tournament_reports WHERE sport_type = $1`,
		string(sport),
	).Scan(&raw, &r.GeneratedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.TournamentReport{}, domain.ErrNotFound
		}
		return domain.TournamentReport{}, fmt.Errorf("postgres: get tournament report %s: %w", sport, err)
	}
	if err := json.Unmarshal(raw, &r.Report); err != nil {
		return domain.TournamentReport{}, fmt.Errorf("postgres: decode tournament report %s: %w", sport, err)
	}
	r.SportType = sport
	return r, nil
}

var _ domain.ReportStore = (*ReportStore)(nil)
