package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/hashedalex/polydelta/internal/domain"
	"github.com/hashedalex/polydelta/internal/series"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type mockHistoryService struct {
	seriesFn func(ctx context.Context, eventID string, eventType domain.EventType, sportType string) ([]series.Point, error)
}

func (m *mockHistoryService) Series(ctx context.Context, eventID string, eventType domain.EventType, sportType string) ([]series.Point, error) {
	return m.seriesFn(ctx, eventID, eventType, sportType)
}

type mockReportService struct {
	getFn func(ctx context.Context, sport string) (domain.TournamentReport, error)
}

func (m *mockReportService) Get(ctx context.Context, sport string) (domain.TournamentReport, error) {
	return m.getFn(ctx, sport)
}

type mockEventService struct {
	resolveFn func(ctx context.Context, ref domain.EventRef) (domain.EventDescriptor, error)
}

func (m *mockEventService) Resolve(ctx context.Context, ref domain.EventRef) (domain.EventDescriptor, error) {
	return m.resolveFn(ctx, ref)
}

type mockDashboardService struct {
	buildFn func(ctx context.Context) (domain.Dashboard, error)
}

func (m *mockDashboardService) Build(ctx context.Context) (domain.Dashboard, error) {
	return m.buildFn(ctx)
}

type mockPinger struct{ err error }

func (m mockPinger) Ping(context.Context) error { return m.err }

// serve routes req through a mux so PathValue is populated.
func serve(pattern string, h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	mux := http.NewServeMux()
	mux.HandleFunc(pattern, h)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return body
}

func TestGetHistoryDefaults(t *testing.T) {
	var gotType domain.EventType
	var gotSport string
	h := NewHistoryHandler(&mockHistoryService{
		seriesFn: func(_ context.Context, id string, et domain.EventType, sport string) ([]series.Point, error) {
			gotType, gotSport = et, sport
			return []series.Point{}, nil
		},
	}, testLogger())

	rec := serve("GET /api/history/{eventId}", h.GetHistory, httptest.NewRequest(http.MethodGet, "/api/history/championship-nba-la-lakers", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if gotType != domain.EventTypeChampionship || gotSport != "nba" {
		t.Errorf("defaults = (%q, %q)", gotType, gotSport)
	}
	body := decode(t, rec)
	if body["success"] != true || body["eventId"] != "championship-nba-la-lakers" {
		t.Errorf("body = %v", body)
	}
	if data, ok := body["data"].([]any); !ok || len(data) != 0 {
		t.Errorf("data = %#v, want []", body["data"])
	}
}

func TestGetHistoryUpstreamFailure(t *testing.T) {
	h := NewHistoryHandler(&mockHistoryService{
		seriesFn: func(context.Context, string, domain.EventType, string) ([]series.Point, error) {
			return nil, errors.New("pool exhausted")
		},
	}, testLogger())

	rec := serve("GET /api/history/{eventId}", h.GetHistory, httptest.NewRequest(http.MethodGet, "/api/history/x", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	body := decode(t, rec)
	if body["success"] != false || strings.Contains(body["error"].(string), "pool") {
		t.Errorf("500 body must be generic: %v", body)
	}
}

func TestGetReport(t *testing.T) {
	generated := time.Date(2026, 10, 1, 6, 0, 0, 0, time.UTC)
	h := NewReportHandler(&mockReportService{
		getFn: func(_ context.Context, sport string) (domain.TournamentReport, error) {
			if sport != "epl" {
				return domain.TournamentReport{}, domain.ErrNotFound
			}
			return domain.TournamentReport{
				SportType: domain.SportEPLWinner,
				Report: domain.ReportDocument{
					StrategyCard: domain.StrategyCard{Headline: "Title race tightens"},
				},
				GeneratedAt: generated,
			}, nil
		},
	}, testLogger())

	rec := serve("GET /api/tournament-report/{sportType}", h.GetReport, httptest.NewRequest(http.MethodGet, "/api/tournament-report/epl", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := decode(t, rec)
	data := body["data"].(map[string]any)
	if data["sportType"] != "epl_winner" || data["generatedAt"] != "2026-10-01T06:00:00Z" {
		t.Errorf("data = %v", data)
	}
	report := data["report"].(map[string]any)
	if report["strategy_card"].(map[string]any)["headline"] != "Title race tightens" {
		t.Errorf("report = %v", report)
	}

	rec = serve("GET /api/tournament-report/{sportType}", h.GetReport, httptest.NewRequest(http.MethodGet, "/api/tournament-report/ucl", nil))
	if rec.Code != http.StatusNotFound || decode(t, rec)["success"] != false {
		t.Fatalf("missing report: status %d body %s", rec.Code, rec.Body.String())
	}
}

func TestGetMatchParsesOnce(t *testing.T) {
	var got domain.EventRef
	h := NewMatchHandler(&mockEventService{
		resolveFn: func(_ context.Context, ref domain.EventRef) (domain.EventDescriptor, error) {
			got = ref
			return domain.EventDescriptor{ID: ref.Raw, HomeTeam: "La Lakers", Placeholder: true}, nil
		},
	}, testLogger())

	rec := serve("GET /api/match/{matchId}", h.GetMatch, httptest.NewRequest(http.MethodGet, "/api/match/championship-nba-la-lakers", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got.Kind != domain.EventKindChampionship || got.Sport != domain.SportNBAWinner || got.TeamSlug != "la-lakers" {
		t.Errorf("ref = %+v", got)
	}
	data := decode(t, rec)["data"].(map[string]any)
	if data["homeTeam"] != "La Lakers" || data["web2HomeOdds"] != nil || data["placeholder"] != true {
		t.Errorf("data = %v", data)
	}
}

func TestGetMatchNotFound(t *testing.T) {
	h := NewMatchHandler(&mockEventService{
		resolveFn: func(context.Context, domain.EventRef) (domain.EventDescriptor, error) {
			return domain.EventDescriptor{}, domain.ErrNotFound
		},
	}, testLogger())

	rec := serve("GET /api/match/{matchId}", h.GetMatch, httptest.NewRequest(http.MethodGet, "/api/match/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
	if body := decode(t, rec); body["success"] != false || body["error"] != "match not found" {
		t.Errorf("body = %v", body)
	}
}

func TestDashboardPageLocale(t *testing.T) {
	h := NewDashboardHandler(&mockDashboardService{
		buildFn: func(context.Context) (domain.Dashboard, error) {
			return domain.Dashboard{GeneratedAt: time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)}, nil
		},
	}, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/?lang=zh", nil)
	req.Header.Set("Accept-Language", "en-US")
	rec := serve("GET /{$}", h.Page, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec.Header().Get("Content-Language") != "zh" {
		t.Errorf("Content-Language = %q", rec.Header().Get("Content-Language"))
	}
	if !strings.Contains(rec.Body.String(), "仪表盘") && !strings.Contains(rec.Body.String(), "机会总数") {
		t.Error("page not rendered in Chinese")
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != "locale" || cookies[0].Value != "zh" {
		t.Errorf("cookies = %v", cookies)
	}
}

func TestDashboardJSONFailure(t *testing.T) {
	h := NewDashboardHandler(&mockDashboardService{
		buildFn: func(context.Context) (domain.Dashboard, error) {
			return domain.Dashboard{}, errors.New("boom")
		},
	}, testLogger())

	rec := serve("GET /api/dashboard", h.GetDashboard, httptest.NewRequest(http.MethodGet, "/api/dashboard", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestGetDictionary(t *testing.T) {
	h := NewLocaleHandler(testLogger())

	rec := serve("GET /api/i18n/{locale}", h.GetDictionary, httptest.NewRequest(http.MethodGet, "/api/i18n/zh-CN", nil))
	body := decode(t, rec)
	if body["locale"] != "zh" {
		t.Errorf("locale = %v", body["locale"])
	}
	if body["messages"].(map[string]any)["nav.dashboard"] != "仪表盘" {
		t.Error("zh dictionary not returned")
	}

	rec = serve("GET /api/i18n/{locale}", h.GetDictionary, httptest.NewRequest(http.MethodGet, "/api/i18n/klingon", nil))
	if decode(t, rec)["locale"] != "en" {
		t.Error("unsupported locale should fall back to en")
	}
}

func TestReady(t *testing.T) {
	h := NewHealthHandler(map[string]Pinger{
		"postgres": mockPinger{},
		"redis":    mockPinger{err: errors.New("refused")},
	}, testLogger())

	rec := httptest.NewRecorder()
	h.Ready(rec, httptest.NewRequest(http.MethodGet, "/api/ready", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
	checks := decode(t, rec)["checks"].(map[string]any)
	if checks["postgres"] != "ok" || checks["redis"] != "unavailable" {
		t.Errorf("checks = %v", checks)
	}

	h = NewHealthHandler(map[string]Pinger{"postgres": mockPinger{}}, testLogger())
	rec = httptest.NewRecorder()
	h.Ready(rec, httptest.NewRequest(http.MethodGet, "/api/ready", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
