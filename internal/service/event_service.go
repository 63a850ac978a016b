package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/hashedalex/polydelta/internal/domain"
	"github.com/hashedalex/polydelta/internal/oddsmath"
	"github.com/hashedalex/polydelta/internal/slug"
)

// EventService turns a parsed event identifier into the descriptor the match
// page renders. Championship ids that match no stored team still resolve, to
// a placeholder, so shared links never dead-end.
type EventService struct {
	champs  domain.ChampionshipStore
	matches domain.MatchStore
	logger  *slog.Logger
}

// NewEventService creates an EventService.
func NewEventService(
	champs domain.ChampionshipStore,
	matches domain.MatchStore,
	logger *slog.Logger,
) *EventService {
	return &EventService{
		champs:  champs,
		matches: matches,
		logger:  logger,
	}
}

// Resolve returns the descriptor for ref. Literal match ids that are not
// stored yield domain.ErrNotFound; championship ids never do.
func (s *EventService) Resolve(ctx context.Context, ref domain.EventRef) (domain.EventDescriptor, error) {
	if ref.Kind != domain.EventKindChampionship {
		m, err := s.matches.GetByMatchID(ctx, ref.MatchID)
		if err != nil {
			return domain.EventDescriptor{}, fmt.Errorf("event_service: get match %q: %w", ref.MatchID, err)
		}
		return matchDescriptor(ref.Raw, m), nil
	}

	rec, found, err := s.findChampionship(ctx, ref)
	if err != nil {
		return domain.EventDescriptor{}, err
	}
	if found {
		return championshipDescriptor(ref.Raw, rec), nil
	}

	s.logger.DebugContext(ctx, "event_service: no stored team, using placeholder",
		slog.String("event_id", ref.Raw),
		slog.String("sport_type", string(ref.Sport)),
	)
	return placeholderDescriptor(ref), nil
}

// findChampionship looks the team up by its title-cased slug first and, when
// punctuation or accents defeat that, by comparing slugs of every team stored
// for the sport.
func (s *EventService) findChampionship(ctx context.Context, ref domain.EventRef) (domain.ChampionshipOdds, bool, error) {
	rec, err := s.champs.FindByTeam(ctx, ref.Sport, slug.ToTitle(ref.TeamSlug))
	if err == nil {
		return rec, true, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.ChampionshipOdds{}, false, fmt.Errorf("event_service: find team %q: %w", ref.TeamSlug, err)
	}

	rows, err := s.champs.ListBySport(ctx, ref.Sport)
	if err != nil {
		return domain.ChampionshipOdds{}, false, fmt.Errorf("event_service: list %s: %w", ref.Sport, err)
	}
	want := slug.Make(ref.TeamSlug)
	for _, row := range rows {
		if slug.Make(row.TeamName) == want {
			return row, true, nil
		}
	}
	return domain.ChampionshipOdds{}, false, nil
}

func matchDescriptor(id string, m domain.DailyMatch) domain.EventDescriptor {
	commence := m.CommenceTime
	updated := m.LastUpdated
	return domain.EventDescriptor{
		ID:                id,
		MatchID:           m.MatchID,
		Kind:              domain.EventKindMatch,
		SportType:         m.SportType,
		HomeTeam:          m.HomeTeam,
		AwayTeam:          m.AwayTeam,
		CommenceTime:      &commence,
		Web2HomeOdds:      m.Web2HomeOdds,
		Web2AwayOdds:      m.Web2AwayOdds,
		PolyHomePrice:     m.PolyHomePrice,
		PolyAwayPrice:     m.PolyAwayPrice,
		EVHome:            oddsmath.ComputeEV(m.Web2HomeOdds, m.PolyHomePrice),
		EVAway:            oddsmath.ComputeEV(m.Web2AwayOdds, m.PolyAwayPrice),
		SourceBookmaker:   m.SourceBookmaker,
		SourceURL:         m.SourceURL,
		PolymarketURL:     m.PolymarketURL,
		AIAnalysis:        m.AIAnalysis,
		AnalysisTimestamp: m.AnalysisTimestamp,
		LastUpdated:       &updated,
	}
}

func championshipDescriptor(id string, c domain.ChampionshipOdds) domain.EventDescriptor {
	updated := c.LastUpdated
	return domain.EventDescriptor{
		ID:                id,
		MatchID:           id,
		Kind:              domain.EventKindChampionship,
		SportType:         c.SportType,
		HomeTeam:          c.TeamName,
		AwayTeam:          domain.SportLabel(c.SportType),
		Web2HomeOdds:      c.Web2Odds,
		PolyHomePrice:     c.PolymarketPrice,
		EVHome:            oddsmath.ComputeEV(c.Web2Odds, c.PolymarketPrice),
		SourceBookmaker:   c.SourceBookmaker,
		SourceURL:         c.SourceURL,
		PolymarketURL:     c.PolymarketURL,
		AIAnalysis:        c.AIAnalysis,
		AnalysisTimestamp: c.AnalysisTimestamp,
		LastUpdated:       &updated,
	}
}

func placeholderDescriptor(ref domain.EventRef) domain.EventDescriptor {
	team := slug.ToTitle(ref.TeamSlug)
	label := domain.SportLabel(ref.Sport)
	analysis := PlaceholderAnalysis(label, team)
	return domain.EventDescriptor{
		ID:          ref.Raw,
		MatchID:     ref.Raw,
		Kind:        domain.EventKindChampionship,
		SportType:   ref.Sport,
		HomeTeam:    team,
		AwayTeam:    label,
		AIAnalysis:  &analysis,
		Placeholder: true,
	}
}

// PlaceholderAnalysis renders the markdown analysis shown for a team that
// has no stored odds yet. The output depends only on its arguments.
func PlaceholderAnalysis(sportLabel, team string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s: %s Outlook\n\n", team, sportLabel)
	fmt.Fprintf(&b, "Live pricing for %s in the %s market has not been recorded yet. "+
		"This page will switch to real sportsbook and Polymarket quotes as soon as they are ingested.\n\n", team, sportLabel)

	b.WriteString("### Key Factors\n\n")
	fmt.Fprintf(&b, "- Current form and squad availability for %s\n", team)
	fmt.Fprintf(&b, "- Strength of the remaining %s field\n", sportLabel)
	b.WriteString("- Depth of liquidity on the prediction market side\n\n")

	b.WriteString("### Betting Insights\n\n")
	fmt.Fprintf(&b, "Compare the implied probability of %s across bookmakers against the Polymarket price. "+
		"A positive EV means the sportsbook rates the outcome higher than the market does.\n\n", team)

	b.WriteString("### Recommendation\n\n")
	fmt.Fprintf(&b, "Hold off on positions in %s until both sides are quoted.\n\n", team)

	b.WriteString("---\n\n")
	b.WriteString("*Disclaimer: informational only, not financial advice. Prediction markets carry risk of total loss.*\n")
	return b.String()
}
