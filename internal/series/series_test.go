package series

import (
	"slices"
	"testing"
	"time"

	"github.com/hashedalex/polydelta/internal/domain"
)

func f(v float64) *float64 { return &v }

func snapshots() []domain.OddsHistorySnapshot {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return []domain.OddsHistorySnapshot{
		{
			EventID: "evt1", RecordedAt: base,
			Web2Odds: f(0.9), PolymarketPrice: f(0.8),
			Web2HomeOdds: f(0.55), PolyHomePrice: f(0.5),
		},
		{
			EventID: "evt1", RecordedAt: base.Add(time.Hour),
			Web2Odds: f(0.9), PolymarketPrice: f(0.8),
			Web2HomeOdds: f(0.6), PolyHomePrice: nil,
		},
	}
}

func TestBuildDailySelectsHomePair(t *testing.T) {
	got := slices.Collect(Build(snapshots(), domain.EventTypeDaily))
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if *got[0].Web2 != 55 || *got[0].Poly != 50 {
		t.Errorf("point 0 = %v/%v, want 55/50", *got[0].Web2, *got[0].Poly)
	}
	if *got[1].Web2 != 60 || got[1].Poly != nil {
		t.Errorf("point 1 = %v/%v, want 60/nil", *got[1].Web2, got[1].Poly)
	}
}

func TestBuildChampionshipSelectsSingleSidedPair(t *testing.T) {
	got := slices.Collect(Build(snapshots(), domain.EventTypeChampionship))
	for i, p := range got {
		if *p.Web2 != 90 || *p.Poly != 80 {
			t.Errorf("point %d = %v/%v, want 90/80", i, *p.Web2, *p.Poly)
		}
	}
}

func TestBuildKeepsOrderAndFormatsTime(t *testing.T) {
	in := snapshots()
	slices.Reverse(in)
	got := slices.Collect(Build(in, domain.EventTypeDaily))
	if got[0].Time != "2026-03-01T13:00:00.000Z" || got[1].Time != "2026-03-01T12:00:00.000Z" {
		t.Fatalf("times = %q, %q", got[0].Time, got[1].Time)
	}
}

func TestBuildIsRestartable(t *testing.T) {
	seq := Build(snapshots(), domain.EventTypeDaily)
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	if len(first) != len(second) || first[0].Time != second[0].Time {
		t.Fatal("second iteration differs from the first")
	}
}

func TestBuildStopsEarly(t *testing.T) {
	n := 0
	for range Build(snapshots(), domain.EventTypeDaily) {
		n++
		break
	}
	if n != 1 {
		t.Fatalf("iterated %d times, want 1", n)
	}
}

func TestBuildEmpty(t *testing.T) {
	if got := slices.Collect(Build(nil, domain.EventTypeDaily)); len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}
}
