package web

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/hashedalex/polydelta/internal/domain"
	"github.com/hashedalex/polydelta/internal/i18n"
)

func ptr(v float64) *float64 { return &v }

func sampleDashboard() domain.Dashboard {
	return domain.Dashboard{
		Championships: []domain.FeaturedChampionship{{
			SportType: domain.SportNBAWinner,
			Label:     "NBA Championship",
			Items: []domain.ChampionshipItem{{
				ID:              "championship-nba_winner-boston-celtics",
				TeamName:        "Boston Celtics",
				Web2Odds:        ptr(0.25),
				PolymarketPrice: ptr(0.2),
				EV:              ptr(24.999999999999993),
			}},
		}, {
			SportType: domain.SportWorldCup,
			Label:     "FIFA World Cup",
			Items:     []domain.ChampionshipItem{},
		}},
		DailyMatches: []domain.MatchItem{},
		Stats:        domain.DashboardStats{TotalOpportunities: 1, HighEVCount: 1},
		GeneratedAt:  time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC),
	}
}

func TestRenderEnglish(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, NewPage(sampleDashboard(), i18n.LocaleEN)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		`<html lang="en">`,
		"Boston Celtics",
		`href="/api/match/championship-nba_winner-boston-celtics"`,
		"20.00%",
		"+25.0%",
		`class="ev-pos"`,
		"No odds recorded yet.",
		"No matches scheduled.",
		"2026-10-16 12:00 UTC",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRenderChineseStatic(t *testing.T) {
	p := NewPage(sampleDashboard(), i18n.LocaleZH)
	p.Static = true

	var buf bytes.Buffer
	if err := Render(&buf, p); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "机会总数") {
		t.Error("expected Chinese stat label")
	}
	if strings.Contains(out, "/api/match/") {
		t.Error("static page must not link to API routes")
	}
}

func TestFormatters(t *testing.T) {
	if got := formatPercent(nil); got != "–" {
		t.Errorf("formatPercent(nil) = %q", got)
	}
	if got := formatEV(ptr(-3.2258)); got != "-3.2%" {
		t.Errorf("formatEV = %q", got)
	}
	if evClass(ptr(0)) != "ev-flat" || evClass(nil) != "ev-none" {
		t.Error("evClass mismatch")
	}
}
