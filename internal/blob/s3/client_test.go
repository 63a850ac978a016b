package s3blob

import (
	"context"
	"testing"
)

func TestNormaliseEndpoint(t *testing.T) {
	tests := []struct {
		endpoint string
		useSSL   bool
		want     string
	}{
		{"https://s3.example.com", false, "https://s3.example.com"},
		{"minio:9000", false, "http://minio:9000"},
		{"r2.example.com", true, "https://r2.example.com"},
	}
	for _, tt := range tests {
		if got := normaliseEndpoint(tt.endpoint, tt.useSSL); got != tt.want {
			t.Errorf("normaliseEndpoint(%q, %v) = %q, want %q", tt.endpoint, tt.useSSL, got, tt.want)
		}
	}
}

func TestKeyPrefix(t *testing.T) {
	tests := []struct {
		prefix string
		path   string
		want   string
	}{
		{"", "dashboard.json", "dashboard.json"},
		{"polydelta", "dashboard.json", "polydelta/dashboard.json"},
		{"/polydelta/", "/reports/nba_winner.json", "polydelta/reports/nba_winner.json"},
	}
	for _, tt := range tests {
		c := &Client{prefix: normalisePrefix(tt.prefix)}
		if got := c.Key(tt.path); got != tt.want {
			t.Errorf("Key(%q) with prefix %q = %q, want %q", tt.path, tt.prefix, got, tt.want)
		}
	}
}

func TestNewRequiresBucketAndRegion(t *testing.T) {
	if _, err := New(context.Background(), ClientConfig{Region: "us-east-1"}); err == nil {
		t.Error("expected error for missing bucket")
	}
	if _, err := New(context.Background(), ClientConfig{Bucket: "snapshots"}); err == nil {
		t.Error("expected error for missing region")
	}
}
