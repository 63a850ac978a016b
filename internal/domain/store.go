package domain

import "context"

// ChampionshipStore reads outright-winner odds.
type ChampionshipStore interface {
	ListBySports(ctx context.Context, sports []SportType) ([]ChampionshipOdds, error)
	ListBySport(ctx context.Context, sport SportType) ([]ChampionshipOdds, error)
	FindByTeam(ctx context.Context, sport SportType, name string) (ChampionshipOdds, error)
}

// MatchStore reads daily head-to-head matches.
type MatchStore interface {
	ListBySport(ctx context.Context, sport SportType) ([]DailyMatch, error)
	GetByMatchID(ctx context.Context, matchID string) (DailyMatch, error)
}

// HistoryStore reads the append-only odds history.
type HistoryStore interface {
	ListSince(ctx context.Context, q HistoryQuery) ([]OddsHistorySnapshot, error)
}

// ReportStore reads generated tournament reports.
type ReportStore interface {
	GetBySport(ctx context.Context, sport SportType) (TournamentReport, error)
}
