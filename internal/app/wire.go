package app

import (
	"context"
	"fmt"
	"log/slog"

	s3blob "github.com/hashedalex/polydelta/internal/blob/s3"
	"github.com/hashedalex/polydelta/internal/cache/memory"
	"github.com/hashedalex/polydelta/internal/cache/redis"
	"github.com/hashedalex/polydelta/internal/config"
	"github.com/hashedalex/polydelta/internal/domain"
	"github.com/hashedalex/polydelta/internal/notify"
	"github.com/hashedalex/polydelta/internal/server/handler"
	"github.com/hashedalex/polydelta/internal/store/postgres"
)

// Dependencies bundles every domain-level dependency that the application modes
// need to operate. It is constructed by Wire and torn down by the returned
// cleanup function.
type Dependencies struct {
	// Stores
	ChampionshipStore domain.ChampionshipStore
	MatchStore        domain.MatchStore
	HistoryStore      domain.HistoryStore
	ReportStore       domain.ReportStore

	// Caches; ReportCache is nil when Redis is disabled.
	ReportCache domain.ReportCache
	RateLimiter domain.RateLimiter

	// Blob storage, export mode only.
	BlobWriter domain.BlobWriter

	// Notifications
	Notifier *notify.Notifier

	// Readiness maps a dependency name to its ping.
	Readiness map[string]handler.Pinger
}

// needsS3 returns true for modes that publish to object storage.
func needsS3(mode string) bool {
	return mode == "export"
}

// Wire constructs all concrete dependency implementations from the given
// configuration and returns them together with a cleanup function that should
// be called on shutdown to release resources.
func Wire(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Dependencies, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	deps := &Dependencies{Readiness: make(map[string]handler.Pinger)}

	// --- PostgreSQL ---
	pgClient, err := postgres.New(ctx, postgres.ClientConfig{
		DSN:      cfg.Database.DSN,
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		Database: cfg.Database.Database,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		SSLMode:  cfg.Database.SSLMode,
		MaxConns: cfg.Database.PoolMaxConns,
		MinConns: cfg.Database.PoolMinConns,
	})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("wire: postgres: %w", err)
	}
	closers = append(closers, pgClient.Close)
	deps.Readiness["postgres"] = pgClient

	if cfg.Database.RunMigrations {
		if err := pgClient.RunMigrations(ctx); err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("wire: postgres migrations: %w", err)
		}
	}

	pool := pgClient.Pool()
	deps.ChampionshipStore = postgres.NewChampionshipStore(pool)
	deps.MatchStore = postgres.NewMatchStore(pool)
	deps.HistoryStore = postgres.NewHistoryStore(pool)
	deps.ReportStore = postgres.NewReportStore(pool)

	// --- Redis (optional) ---
	if cfg.Redis.Enabled {
		redisClient, err := redis.New(ctx, redis.ClientConfig{
			Addr:       cfg.Redis.Addr,
			Password:   cfg.Redis.Password,
			DB:         cfg.Redis.DB,
			PoolSize:   cfg.Redis.PoolSize,
			MaxRetries: cfg.Redis.MaxRetries,
			TLSEnabled: cfg.Redis.TLSEnabled,
		})
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("wire: redis: %w", err)
		}
		closers = append(closers, func() { _ = redisClient.Close() })
		deps.Readiness["redis"] = redisClient

		deps.ReportCache = redis.NewReportCache(redisClient, cfg.Redis.ReportTTL.Duration)
		deps.RateLimiter = redis.NewRateLimiter(redisClient)
	} else {
		logger.InfoContext(ctx, "redis disabled, using in-process rate limiter and no report cache")
		deps.RateLimiter = memory.NewRateLimiter()
	}

	// --- S3 blob storage ---
	if needsS3(cfg.Mode) {
		s3Client, err := s3blob.New(ctx, s3blob.ClientConfig{
			Endpoint:       cfg.S3.Endpoint,
			Region:         cfg.S3.Region,
			Bucket:         cfg.S3.Bucket,
			Prefix:         cfg.S3.Prefix,
			AccessKey:      cfg.S3.AccessKey,
			SecretKey:      cfg.S3.SecretKey,
			UseSSL:         cfg.S3.UseSSL,
			ForcePathStyle: cfg.S3.ForcePathStyle,
		})
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("wire: s3: %w", err)
		}
		deps.BlobWriter = s3blob.NewWriter(s3Client)
	}

	// --- Notifications ---
	var senders []notify.Sender
	if cfg.Notify.TelegramToken != "" && cfg.Notify.TelegramChatID != "" {
		senders = append(senders, notify.NewTelegramSender(
			cfg.Notify.TelegramToken,
			cfg.Notify.TelegramChatID,
		))
	}
	if cfg.Notify.DiscordWebhookURL != "" {
		senders = append(senders, notify.NewDiscordSender(cfg.Notify.DiscordWebhookURL))
	}
	deps.Notifier = notify.NewNotifier(senders, logger)

	return deps, cleanup, nil
}
