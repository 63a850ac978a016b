package domain

import (
	"context"
	"time"
)

// ReportCache keeps recently read tournament reports.
type ReportCache interface {
	Set(ctx context.Context, report TournamentReport) error
	Get(ctx context.Context, sport SportType) (TournamentReport, error)
	Invalidate(ctx context.Context, sport SportType) error
}

// RateLimiter provides distributed rate limiting.
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}
