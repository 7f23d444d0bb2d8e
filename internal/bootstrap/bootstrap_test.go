package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Adventure_Go/internal/config"
	"github.com/osse101/Adventure_Go/internal/content"
	"github.com/osse101/Adventure_Go/internal/database/memory"
	"github.com/osse101/Adventure_Go/internal/database/redis"
	"github.com/osse101/Adventure_Go/internal/domain"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		LogDir:             t.TempDir(),
		CharacterCacheSize: 10,
		CharacterCacheTTL:  time.Minute,
		SessionTTL:         time.Minute,
		ResolveLockTimeout: time.Second,
		SkillResetCooldown: time.Hour,
		RNGSeed:            42,
	}
}

func loadCatalog(t *testing.T) *content.Catalog {
	t.Helper()
	cat, err := LoadCatalog("")
	require.NoError(t, err)
	return cat
}

func TestInitializeRepositories_Memory(t *testing.T) {
	cfg := testConfig(t)

	repos, err := InitializeRepositories(context.Background(), cfg, loadCatalog(t))
	require.NoError(t, err)
	defer repos.Close()

	assert.IsType(t, &memory.CharacterStore{}, repos.Characters)
	assert.IsType(t, &memory.Ledger{}, repos.Ledger)
	assert.Equal(t, StorageMemory, repos.CharacterStorage())
	assert.Equal(t, StorageMemory, repos.LedgerStorage())
	assert.Empty(t, repos.ReadinessChecks())
	assert.Nil(t, repos.CacheInspector())
}

func TestInitializeRepositories_RedisLedger(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := testConfig(t)
	cfg.RedisAddr = mr.Addr()

	repos, err := InitializeRepositories(context.Background(), cfg, loadCatalog(t))
	require.NoError(t, err)
	defer repos.Close()

	assert.IsType(t, &redis.Ledger{}, repos.Ledger)
	assert.Equal(t, StorageRedis, repos.LedgerStorage())
	assert.Equal(t, StorageMemory, repos.CharacterStorage())

	checks := repos.ReadinessChecks()
	require.Len(t, checks, 1)
	assert.Equal(t, StorageRedis, checks[0].Name)
	assert.NoError(t, checks[0].Ping(context.Background()))
}

func TestInitializeRepositories_RedisUnreachable(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	addr := mr.Addr()
	mr.Close()

	cfg := testConfig(t)
	cfg.RedisAddr = addr

	_, err = InitializeRepositories(context.Background(), cfg, loadCatalog(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgFailedConnectRedis)
}

func TestInitializeEventSystem(t *testing.T) {
	cfg := testConfig(t)

	bus, publisher, err := InitializeEventSystem(cfg)
	require.NoError(t, err)
	require.NotNil(t, bus)
	require.NotNil(t, publisher)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, publisher.Shutdown(ctx))
}

func TestInitializeServices_StartAdventure(t *testing.T) {
	cfg := testConfig(t)
	catalog := loadCatalog(t)

	repos, err := InitializeRepositories(context.Background(), cfg, catalog)
	require.NoError(t, err)
	defer repos.Close()

	_, publisher, err := InitializeEventSystem(cfg)
	require.NoError(t, err)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = publisher.Shutdown(ctx)
	}()

	svcs := InitializeServices(cfg, catalog, repos, publisher)
	require.NotNil(t, svcs.Sessions)
	require.NotNil(t, svcs.Characters)
	require.NotNil(t, svcs.Trades)

	s, err := svcs.Sessions.Start(context.Background(), "g1", "alice", "")
	require.NoError(t, err)
	assert.Equal(t, domain.SessionOpen, s.State)
	assert.Len(t, svcs.Sessions.Active(context.Background()), 1)
}

func TestCleanupLogs_KeepsNewest(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 12; i++ {
		name := fmt.Sprintf(LogFileNamePattern, fmt.Sprintf("2026-01-%02d_00-00-00", i+1))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o600))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keep.txt"), nil, 0o600))

	cleanupLogs(dir)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, LogFileRetentionCount+1)

	_, err = os.Stat(filepath.Join(dir, fmt.Sprintf(LogFileNamePattern, "2026-01-12_00-00-00")))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, fmt.Sprintf(LogFileNamePattern, "2026-01-01_00-00-00")))
	assert.True(t, os.IsNotExist(err))
}
