package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github.com/osse101/Adventure_Go/internal/character"
	"github.com/osse101/Adventure_Go/internal/config"
	"github.com/osse101/Adventure_Go/internal/content"
	"github.com/osse101/Adventure_Go/internal/database"
	"github.com/osse101/Adventure_Go/internal/database/memory"
	"github.com/osse101/Adventure_Go/internal/database/postgres"
	"github.com/osse101/Adventure_Go/internal/database/redis"
	"github.com/osse101/Adventure_Go/internal/handler"
	"github.com/osse101/Adventure_Go/internal/repository"
)

// Repositories holds the storage adapters chosen for this process.
// Pool and Redis are nil when the matching backend is not configured.
type Repositories struct {
	Pool       *pgxpool.Pool
	Redis      *goredis.Client
	Characters repository.Character
	Ledger     repository.Ledger
	Cache      *character.CachedStore
}

// InitializeRepositories picks the character store and the ledger.
// Characters live in postgres (behind the LRU cache) when DATABASE_URL is
// set and in memory otherwise. The ledger prefers redis, then postgres,
// then memory.
func InitializeRepositories(ctx context.Context, cfg *config.Config, catalog *content.Catalog) (*Repositories, error) {
	repos := &Repositories{}
	codec := character.NewCodec(catalog)

	if cfg.DatabaseURL != "" {
		pool, err := database.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDatabase, err)
		}
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}
		slog.Info(LogMsgMigrationsApplied)
		repos.Pool = pool
		repos.Cache = character.NewCachedStore(postgres.NewCharacterRepository(pool, codec), cfg.CharacterCacheSize, cfg.CharacterCacheTTL)
		repos.Characters = repos.Cache
		slog.Info(LogMsgCharacterCacheEnabled, "size", cfg.CharacterCacheSize, "ttl", cfg.CharacterCacheTTL)
	} else {
		repos.Characters = memory.NewCharacterStore(codec)
	}

	switch {
	case cfg.RedisAddr != "":
		client, err := redis.NewClient(ctx, redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			repos.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectRedis, err)
		}
		repos.Redis = client
		repos.Ledger = redis.NewLedger(client, redis.DefaultKeyPrefix, cfg.MaxBalance)
	case repos.Pool != nil:
		repos.Ledger = postgres.NewLedgerRepository(repos.Pool, cfg.MaxBalance)
	default:
		repos.Ledger = memory.NewLedger(cfg.MaxBalance)
	}

	slog.Info(LogMsgStorageSelected,
		"characters", repos.CharacterStorage(),
		"ledger", repos.LedgerStorage())

	return repos, nil
}

// CharacterStorage names the backend holding characters
func (r *Repositories) CharacterStorage() string {
	if r.Pool != nil {
		return StoragePostgres
	}
	return StorageMemory
}

// LedgerStorage names the backend holding balances
func (r *Repositories) LedgerStorage() string {
	switch {
	case r.Redis != nil:
		return StorageRedis
	case r.Pool != nil:
		return StoragePostgres
	default:
		return StorageMemory
	}
}

// ReadinessChecks lists a ping per configured backend for /readyz
func (r *Repositories) ReadinessChecks() []handler.ReadinessCheck {
	var checks []handler.ReadinessCheck
	if r.Pool != nil {
		checks = append(checks, handler.ReadinessCheck{Name: StoragePostgres, Ping: r.Pool.Ping})
	}
	if r.Redis != nil {
		client := r.Redis
		checks = append(checks, handler.ReadinessCheck{Name: StorageRedis, Ping: func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		}})
	}
	return checks
}

// CacheInspector returns the character cache, or a nil interface without one
func (r *Repositories) CacheInspector() handler.CacheInspector {
	if r.Cache == nil {
		return nil
	}
	return r.Cache
}

// Close releases the redis client and the database pool
func (r *Repositories) Close() {
	if r.Redis != nil {
		if err := r.Redis.Close(); err != nil {
			slog.Error(LogMsgRedisCloseFailed, "error", err)
		}
		r.Redis = nil
	}
	if r.Pool != nil {
		r.Pool.Close()
		r.Pool = nil
	}
}
