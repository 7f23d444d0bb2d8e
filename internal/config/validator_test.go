package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Port:               DefaultPort,
		LogLevel:           DefaultLogLevel,
		LogFormat:          DefaultLogFormat,
		Environment:        DefaultEnvironment,
		DBMaxConns:         DefaultDBMaxConns,
		SessionTTL:         DefaultSessionTTL,
		SweepInterval:      DefaultSweepInterval,
		ResolveLockTimeout: DefaultResolveLockTimeout,
		CharacterCacheSize: DefaultCharacterCacheSize,
		CharacterCacheTTL:  DefaultCharacterCacheTTL,
		SkillResetCooldown: DefaultSkillResetCooldown,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"port zero", func(c *Config) { c.Port = 0 }, "PORT"},
		{"port too high", func(c *Config) { c.Port = 70000 }, "PORT"},
		{"unknown log level", func(c *Config) { c.LogLevel = "verbose" }, "LOG_LEVEL"},
		{"unknown log format", func(c *Config) { c.LogFormat = "xml" }, "LOG_FORMAT"},
		{"no connections", func(c *Config) { c.DBMaxConns = 0 }, "DB_MAX_CONNS"},
		{"negative redis db", func(c *Config) { c.RedisDB = -1 }, "REDIS_DB"},
		{"negative entry cost", func(c *Config) { c.EntryCost = -1 }, "ENTRY_COST"},
		{"negative max balance", func(c *Config) { c.MaxBalance = -1 }, "MAX_BALANCE"},
		{"zero ttl", func(c *Config) { c.SessionTTL = 0 }, "SESSION_TTL"},
		{"zero sweep", func(c *Config) { c.SweepInterval = 0 }, "SWEEP_INTERVAL"},
		{"zero lock timeout", func(c *Config) { c.ResolveLockTimeout = 0 }, "RESOLVE_LOCK_TIMEOUT"},
		{"negative cache size", func(c *Config) { c.CharacterCacheSize = -1 }, "CHARACTER_CACHE_SIZE"},
		{"negative cooldown", func(c *Config) { c.SkillResetCooldown = -time.Second }, "SKILL_RESET_COOLDOWN"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	cfg := validConfig()
	cfg.Port = 0
	cfg.EntryCost = -1

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PORT")
	assert.Contains(t, err.Error(), "ENTRY_COST")
}

func TestWarnings(t *testing.T) {
	cfg := validConfig()
	assert.Len(t, cfg.Warnings(), 2, "memory-only persistence warns twice")

	cfg.DatabaseURL = "postgres://localhost/adventure"
	assert.Empty(t, cfg.Warnings())

	cfg.Environment = EnvironmentProduction
	cfg.RNGSeed = 1
	assert.Len(t, cfg.Warnings(), 2, "open routes and fixed seed")

	cfg.APIKey = "secret"
	assert.Len(t, cfg.Warnings(), 1)
}
