package service

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hashedalex/polydelta/internal/domain"
	"github.com/hashedalex/polydelta/internal/oddsmath"
	"github.com/hashedalex/polydelta/internal/slug"
)

// DefaultEVThreshold is the |EV| percentage at which an opportunity counts
// as high-EV.
const DefaultEVThreshold = 5.0

// DefaultFeaturedSports are the championship tables shown on the landing page.
var DefaultFeaturedSports = []domain.SportType{domain.SportNBAWinner, domain.SportWorldCup}

// DashboardConfig tunes the landing page.
type DashboardConfig struct {
	FeaturedSports []domain.SportType
	EVThreshold    float64
}

// DashboardService assembles the landing page from the record store.
type DashboardService struct {
	champs  domain.ChampionshipStore
	matches domain.MatchStore
	cfg     DashboardConfig
	now     func() time.Time
	logger  *slog.Logger
}

// NewDashboardService creates a DashboardService. Empty config fields take
// their defaults; featured sports are normalised through the alias table.
func NewDashboardService(
	champs domain.ChampionshipStore,
	matches domain.MatchStore,
	cfg DashboardConfig,
	logger *slog.Logger,
) *DashboardService {
	if len(cfg.FeaturedSports) == 0 {
		cfg.FeaturedSports = DefaultFeaturedSports
	}
	featured := make([]domain.SportType, 0, len(cfg.FeaturedSports))
	for _, s := range cfg.FeaturedSports {
		featured = append(featured, domain.SportType(domain.NormalizeSportType(string(s))))
	}
	cfg.FeaturedSports = featured
	if cfg.EVThreshold <= 0 {
		cfg.EVThreshold = DefaultEVThreshold
	}
	return &DashboardService{
		champs:  champs,
		matches: matches,
		cfg:     cfg,
		now:     time.Now,
		logger:  logger,
	}
}

// Build reads every championship market and the NBA daily matches
// concurrently. Tables are built for the featured sports only; the stats
// cover every championship row.
func (s *DashboardService) Build(ctx context.Context) (domain.Dashboard, error) {
	var (
		champRows []domain.ChampionshipOdds
		matchRows []domain.DailyMatch
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.champs.ListBySports(gctx, s.statSports())
		if err != nil {
			return fmt.Errorf("dashboard_service: list championships: %w", err)
		}
		champRows = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.matches.ListBySport(gctx, domain.SportNBA)
		if err != nil {
			return fmt.Errorf("dashboard_service: list matches: %w", err)
		}
		matchRows = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.Dashboard{}, err
	}

	items := make([]domain.ChampionshipItem, 0, len(champRows))
	for _, r := range champRows {
		items = append(items, championshipItem(r))
	}

	d := domain.Dashboard{
		Championships: s.partition(items),
		DailyMatches:  make([]domain.MatchItem, 0, len(matchRows)),
		GeneratedAt:   s.now().UTC(),
	}
	for _, m := range matchRows {
		d.DailyMatches = append(d.DailyMatches, matchItem(m))
	}
	d.Stats = s.stats(items, d.DailyMatches)

	s.logger.DebugContext(ctx, "dashboard_service: built dashboard",
		slog.Int("championships", len(champRows)),
		slog.Int("matches", len(matchRows)),
	)
	return d, nil
}

// statSports is every championship sport plus any featured sport outside
// that list, in a stable order.
func (s *DashboardService) statSports() []domain.SportType {
	sports := slices.Clone(domain.ChampionshipSports)
	for _, f := range s.cfg.FeaturedSports {
		if !slices.Contains(sports, f) {
			sports = append(sports, f)
		}
	}
	return sports
}

// partition groups items into one table per featured sport, in configured
// order, each sorted by market price with unpriced teams last. Items of
// other sports are left out.
func (s *DashboardService) partition(all []domain.ChampionshipItem) []domain.FeaturedChampionship {
	bySport := make(map[domain.SportType][]domain.ChampionshipItem, len(s.cfg.FeaturedSports))
	for _, item := range all {
		if slices.Contains(s.cfg.FeaturedSports, item.SportType) {
			bySport[item.SportType] = append(bySport[item.SportType], item)
		}
	}

	out := make([]domain.FeaturedChampionship, 0, len(s.cfg.FeaturedSports))
	for _, sport := range s.cfg.FeaturedSports {
		items := bySport[sport]
		if items == nil {
			items = []domain.ChampionshipItem{}
		}
		slices.SortStableFunc(items, func(a, b domain.ChampionshipItem) int {
			return comparePriceDesc(a.PolymarketPrice, b.PolymarketPrice)
		})
		out = append(out, domain.FeaturedChampionship{
			SportType: sport,
			Label:     domain.SportLabel(sport),
			Items:     items,
		})
	}
	return out
}

func (s *DashboardService) stats(champs []domain.ChampionshipItem, matches []domain.MatchItem) domain.DashboardStats {
	var st domain.DashboardStats
	observe := func(t time.Time) {
		if st.LastUpdated == nil || t.After(*st.LastUpdated) {
			st.LastUpdated = &t
		}
	}

	for _, item := range champs {
		st.TotalOpportunities++
		if oddsmath.AbsAtLeast(item.EV, s.cfg.EVThreshold) {
			st.HighEVCount++
		}
		observe(item.LastUpdated)
	}
	for _, m := range matches {
		st.TotalOpportunities++
		st.DailyMatchCount++
		if oddsmath.AbsAtLeast(m.EVHome, s.cfg.EVThreshold) || oddsmath.AbsAtLeast(m.EVAway, s.cfg.EVThreshold) {
			st.HighEVCount++
		}
		observe(m.LastUpdated)
	}
	return st
}

// TopOpportunities returns up to n entries with the largest |EV|, across
// championship teams and both sides of every match.
func TopOpportunities(d domain.Dashboard, n int) []domain.Opportunity {
	var all []domain.Opportunity
	for _, table := range d.Championships {
		for _, item := range table.Items {
			if item.EV != nil {
				all = append(all, domain.Opportunity{
					EventID:   item.ID,
					SportType: item.SportType,
					Label:     item.TeamName,
					EV:        *item.EV,
				})
			}
		}
	}
	for _, m := range d.DailyMatches {
		if m.EVHome != nil {
			all = append(all, domain.Opportunity{EventID: m.MatchID, SportType: m.SportType, Label: m.HomeTeam + " vs " + m.AwayTeam + " (home)", EV: *m.EVHome})
		}
		if m.EVAway != nil {
			all = append(all, domain.Opportunity{EventID: m.MatchID, SportType: m.SportType, Label: m.HomeTeam + " vs " + m.AwayTeam + " (away)", EV: *m.EVAway})
		}
	}

	slices.SortStableFunc(all, func(a, b domain.Opportunity) int {
		return cmp.Compare(math.Abs(b.EV), math.Abs(a.EV))
	})
	if n >= 0 && len(all) > n {
		all = all[:n]
	}
	return all
}

func championshipItem(c domain.ChampionshipOdds) domain.ChampionshipItem {
	return domain.ChampionshipItem{
		ID:              domain.ChampionshipEventID(c.SportType, slug.Make(c.TeamName)),
		SportType:       c.SportType,
		TeamName:        c.TeamName,
		Web2Odds:        c.Web2Odds,
		PolymarketPrice: c.PolymarketPrice,
		EV:              oddsmath.ComputeEV(c.Web2Odds, c.PolymarketPrice),
		SourceBookmaker: c.SourceBookmaker,
		SourceURL:       c.SourceURL,
		PolymarketURL:   c.PolymarketURL,
		AIAnalysis:      c.AIAnalysis,
		LastUpdated:     c.LastUpdated,
	}
}

func matchItem(m domain.DailyMatch) domain.MatchItem {
	return domain.MatchItem{
		MatchID:         m.MatchID,
		SportType:       m.SportType,
		HomeTeam:        m.HomeTeam,
		AwayTeam:        m.AwayTeam,
		CommenceTime:    m.CommenceTime,
		Web2HomeOdds:    m.Web2HomeOdds,
		Web2AwayOdds:    m.Web2AwayOdds,
		PolyHomePrice:   m.PolyHomePrice,
		PolyAwayPrice:   m.PolyAwayPrice,
		EVHome:          oddsmath.ComputeEV(m.Web2HomeOdds, m.PolyHomePrice),
		EVAway:          oddsmath.ComputeEV(m.Web2AwayOdds, m.PolyAwayPrice),
		SourceBookmaker: m.SourceBookmaker,
		PolymarketURL:   m.PolymarketURL,
		AIAnalysis:      m.AIAnalysis,
		LastUpdated:     m.LastUpdated,
	}
}

// comparePriceDesc orders higher prices first and nil prices after all
// priced entries.
func comparePriceDesc(a, b *float64) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	default:
		return cmp.Compare(*b, *a)
	}
}
