package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hashedalex/polydelta/internal/domain"
	"github.com/redis/go-redis/v9"
)

// DefaultReportTTL bounds how stale a cached report can be once the report
// job rewrites the row.
const DefaultReportTTL = 5 * time.Minute

// ReportCache implements domain.ReportCache with one JSON string per sport.
//
// Key schema:
//
//	report:{sportType} - JSON-encoded domain.TournamentReport
type ReportCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewReportCache creates a ReportCache. A non-positive ttl selects
// DefaultReportTTL.
func NewReportCache(c *Client, ttl time.Duration) *ReportCache {
	if ttl <= 0 {
		ttl = DefaultReportTTL
	}
	return &ReportCache{rdb: c.Underlying(), ttl: ttl}
}

func reportKey(sport domain.SportType) string { return "report:" + string(sport) }

// Set stores the report under its sport key.
func (rc *ReportCache) Set(ctx context.Context, report domain.TournamentReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("redis: marshal report %s: %w", report.SportType, err)
	}
	if err := rc.rdb.Set(ctx, reportKey(report.SportType), data, rc.ttl).Err(); err != nil {
		return fmt.Errorf("redis: set report %s: %w", report.SportType, err)
	}
	return nil
}

// Get returns the cached report or domain.ErrNotFound on a miss.
func (rc *ReportCache) Get(ctx context.Context, sport domain.SportType) (domain.TournamentReport, error) {
	data, err := rc.rdb.Get(ctx, reportKey(sport)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.TournamentReport{}, domain.ErrNotFound
		}
		return domain.TournamentReport{}, fmt.Errorf("redis: get report %s: %w", sport, err)
	}

	var report domain.TournamentReport
	if err := json.Unmarshal(data, &report); err != nil {
		return domain.TournamentReport{}, fmt.Errorf("redis: unmarshal report %s: %w", sport, err)
	}
	return report, nil
}

// Invalidate drops the cached report for sport.
func (rc *ReportCache) Invalidate(ctx context.Context, sport domain.SportType) error {
	if err := rc.rdb.Del(ctx, reportKey(sport)).Err(); err != nil {
		return fmt.Errorf("redis: invalidate report %s: %w", sport, err)
	}
	return nil
}

// Compile-time interface check.
var _ domain.ReportCache = (*ReportCache)(nil)
