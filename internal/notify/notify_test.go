package notify

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
)

type mockSender struct {
	name   string
	err    error
	titles []string
}

func (m *mockSender) Send(_ context.Context, title, _ string) error {
	m.titles = append(m.titles, title)
	return m.err
}

func (m *mockSender) Name() string { return m.name }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNotifierContinuesAfterFailure(t *testing.T) {
	boom := errors.New("webhook gone")
	bad := &mockSender{name: "bad", err: boom}
	good := &mockSender{name: "good"}
	n := NewNotifier([]Sender{bad, good}, testLogger())

	err := n.Send(context.Background(), "t", "m")
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped %v", err, boom)
	}
	if len(good.titles) != 1 {
		t.Error("healthy sender was skipped")
	}
}

func TestSendDigestSkipsEmpty(t *testing.T) {
	s := &mockSender{name: "s"}
	n := NewNotifier([]Sender{s}, testLogger())

	if err := n.SendDigest(context.Background(), nil, time.Now()); err != nil {
		t.Fatal(err)
	}
	if len(s.titles) != 0 {
		t.Error("empty digest should not be sent")
	}
}

func TestFormatDigest(t *testing.T) {
	got := FormatDigest([]domain.Opportunity{
		{Label: "Boston Celtics", SportType: domain.SportNBAWinner, EV: 25},
		{Label: "Heat vs Magic (away)", SportType: domain.SportNBA, EV: -19.996},
	})
	want := "1. Boston Celtics [NBA Championship] EV +25.00%\n" +
		"2. Heat vs Magic (away) [NBA] EV -20.00%\n"
	if got != want {
		t.Fatalf("FormatDigest =\n%s\nwant\n%s", got, want)
	}
}

func TestDiscordSender(t *testing.T) {
	var payload map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&payload)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	if err := NewDiscordSender(srv.URL).Send(context.Background(), "Title", "body"); err != nil {
		t.Fatal(err)
	}
	if payload["content"] != "**Title**\nbody" {
		t.Errorf("content = %q", payload["content"])
	}
}

func TestTelegramSenderErrorStatus(t *testing.T) {
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		http.Error(w, `{"ok":false}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	s := NewTelegramSender("abc", "42")
	s.apiBase = srv.URL

	err := s.Send(context.Background(), "Title", "body")
	if err == nil || !strings.Contains(err.Error(), "400") {
		t.Fatalf("err = %v, want status 400", err)
	}
	if path != "/botabc/sendMessage" {
		t.Errorf("path = %q", path)
	}
}
