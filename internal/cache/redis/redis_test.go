package redis

import (
	"crypto/tls"
	"strings"
	"testing"
	"time"

	"github.com/hashedalex/polydelta/internal/domain"
)

func TestKeys(t *testing.T) {
	if got := reportKey(domain.SportWorldCup); got != "report:world_cup" {
		t.Errorf("reportKey = %q", got)
	}
	if got := rateLimitKey("203.0.113.7"); got != "ratelimit:203.0.113.7" {
		t.Errorf("rateLimitKey = %q", got)
	}
}

func TestClientConfigOptions(t *testing.T) {
	opts := ClientConfig{
		Addr:        "localhost:6379",
		DB:          2,
		PoolSize:    8,
		TLSEnabled:  true,
		DialTimeout: 3 * time.Second,
	}.options()

	if opts.Addr != "localhost:6379" || opts.DB != 2 || opts.PoolSize != 8 {
		t.Fatalf("unexpected options: %+v", opts)
	}
	if opts.TLSConfig == nil || opts.TLSConfig.MinVersion != tls.VersionTLS12 {
		t.Fatalf("expected TLS 1.2 minimum, got %+v", opts.TLSConfig)
	}

	plain := ClientConfig{Addr: "localhost:6379"}.options()
	if plain.TLSConfig != nil {
		t.Fatal("expected no TLS config when disabled")
	}
}

func TestReportCacheDefaultTTL(t *testing.T) {
	rc := NewReportCache(&Client{}, 0)
	if rc.ttl != DefaultReportTTL {
		t.Fatalf("ttl = %v, want %v", rc.ttl, DefaultReportTTL)
	}
	rc = NewReportCache(&Client{}, time.Minute)
	if rc.ttl != time.Minute {
		t.Fatalf("ttl = %v, want 1m", rc.ttl)
	}
}

func TestSlidingWindowScriptEmbedded(t *testing.T) {
	for _, call := range []string{"ZREMRANGEBYSCORE", "ZCARD", "ZADD", "PEXPIRE"} {
		if !strings.Contains(slidingWindowLua, call) {
			t.Errorf("script missing %s", call)
		}
	}
}
