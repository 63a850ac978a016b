package app

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/hashedalex/polydelta/internal/domain"
)

type fakeDashboard struct {
	d   domain.Dashboard
	err error
}

func (f fakeDashboard) Build(context.Context) (domain.Dashboard, error) { return f.d, f.err }

type fakeReports []domain.TournamentReport

func (f fakeReports) Available(context.Context) ([]domain.TournamentReport, error) { return f, nil }

type memWriter struct {
	mu      sync.Mutex
	objects map[string]string
	types   map[string]string
}

func newMemWriter() *memWriter {
	return &memWriter{objects: map[string]string{}, types: map[string]string{}}
}

func (m *memWriter) Put(_ context.Context, path string, data io.Reader, contentType string) error {
	b, err := io.ReadAll(data)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[path] = string(b)
	m.types[path] = contentType
	return nil
}

type recordingDigest struct {
	opps []domain.Opportunity
	at   time.Time
	err  error
}

func (r *recordingDigest) SendDigest(_ context.Context, opps []domain.Opportunity, at time.Time) error {
	r.opps = opps
	r.at = at
	return r.err
}

func discard() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func ptr(v float64) *float64 { return &v }

func sampleDashboard() domain.Dashboard {
	return domain.Dashboard{
		Championships: []domain.FeaturedChampionship{{
			SportType: domain.SportNBAWinner,
			Label:     "NBA Championship",
			Items: []domain.ChampionshipItem{
				{ID: "championship-nba_winner-boston-celtics", TeamName: "Boston Celtics", Web2Odds: ptr(25), PolymarketPrice: ptr(20), EV: ptr(25)},
				{ID: "championship-nba_winner-denver-nuggets", TeamName: "Denver Nuggets", Web2Odds: ptr(10), PolymarketPrice: ptr(11), EV: ptr(-9.09)},
			},
		}},
		GeneratedAt: time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC),
	}
}

func TestExporterPublishesSnapshot(t *testing.T) {
	w := newMemWriter()
	digest := &recordingDigest{}
	reports := fakeReports{{SportType: domain.SportWorldCup, GeneratedAt: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)}}

	exp := NewExporter(fakeDashboard{d: sampleDashboard()}, reports, w, digest, 1, discard())
	if err := exp.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	var paths []string
	for p := range w.objects {
		paths = append(paths, p)
	}
	slices.Sort(paths)
	want := []string{"dashboard.json", "index.html", "reports/world_cup.json", "zh/index.html"}
	if !slices.Equal(paths, want) {
		t.Fatalf("paths = %v, want %v", paths, want)
	}

	var d domain.Dashboard
	if err := json.Unmarshal([]byte(w.objects["dashboard.json"]), &d); err != nil {
		t.Fatalf("dashboard.json: %v", err)
	}
	if len(d.Championships) != 1 || len(d.Championships[0].Items) != 2 {
		t.Errorf("dashboard.json round trip lost items: %+v", d)
	}

	index := w.objects["index.html"]
	if !strings.Contains(index, "Boston Celtics") {
		t.Error("index.html missing team")
	}
	if strings.Contains(index, "/api/match/") {
		t.Error("static page links to the live api")
	}
	if w.types["index.html"] != "text/html; charset=utf-8" {
		t.Errorf("index content type = %q", w.types["index.html"])
	}

	if len(digest.opps) != 1 || !strings.Contains(digest.opps[0].Label, "Boston Celtics") {
		t.Errorf("digest = %+v", digest.opps)
	}
	if !digest.at.Equal(sampleDashboard().GeneratedAt) {
		t.Errorf("digest at = %v", digest.at)
	}
}

func TestExporterDigestFailureIsNotFatal(t *testing.T) {
	digest := &recordingDigest{err: errors.New("telegram down")}
	exp := NewExporter(fakeDashboard{d: sampleDashboard()}, fakeReports{}, newMemWriter(), digest, 5, discard())

	if err := exp.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(digest.opps) != 2 {
		t.Errorf("digest size = %d, want 2", len(digest.opps))
	}
}

func TestExporterBuildFailure(t *testing.T) {
	w := newMemWriter()
	exp := NewExporter(fakeDashboard{err: errors.New("db down")}, fakeReports{}, w, nil, 5, discard())

	if err := exp.Run(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if len(w.objects) != 0 {
		t.Errorf("wrote %d objects after a failed build", len(w.objects))
	}
}

func TestParseLogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLogLevel(in); got != want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
