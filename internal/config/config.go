package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	LogDir      string
	Environment string

	// APIKey guards every non-public route; empty disables the check
	APIKey         string
	TrustedProxies []string

	// Persistence. An empty DatabaseURL keeps characters in memory; an
	// empty RedisAddr falls back to the database (or memory) for the ledger.
	DatabaseURL       string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration
	RedisAddr         string
	RedisPassword     string
	RedisDB           int

	ContentDir string

	// Adventure rules
	EntryCost          int64
	RestrictAdventures bool
	SessionTTL         time.Duration
	SweepInterval      time.Duration
	ResolveLockTimeout time.Duration
	MaxBalance         int64

	CharacterCacheSize int
	CharacterCacheTTL  time.Duration
	SkillResetCooldown time.Duration

	// RNGSeed of zero seeds from the clock
	RNGSeed int64
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", DefaultLogLevel)),
		LogFormat:   strings.ToLower(getEnv("LOG_FORMAT", DefaultLogFormat)),
		LogDir:      getEnv("LOG_DIR", DefaultLogDir),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),

		APIKey:         getEnv("API_KEY", ""),
		TrustedProxies: getEnvAsList("TRUSTED_PROXIES"),

		DatabaseURL:       getEnv("DATABASE_URL", ""),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),
		RedisAddr:         getEnv("REDIS_ADDR", ""),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		RedisDB:           getEnvAsInt("REDIS_DB", 0),

		ContentDir: getEnv("CONTENT_DIR", ""),

		EntryCost:          getEnvAsInt64("ENTRY_COST", 0),
		RestrictAdventures: getEnvAsBool("RESTRICT_ADVENTURES", false),
		SessionTTL:         getEnvAsDuration("SESSION_TTL", DefaultSessionTTL),
		SweepInterval:      getEnvAsDuration("SWEEP_INTERVAL", DefaultSweepInterval),
		ResolveLockTimeout: getEnvAsDuration("RESOLVE_LOCK_TIMEOUT", DefaultResolveLockTimeout),
		MaxBalance:         getEnvAsInt64("MAX_BALANCE", 0),

		CharacterCacheSize: getEnvAsInt("CHARACTER_CACHE_SIZE", DefaultCharacterCacheSize),
		CharacterCacheTTL:  getEnvAsDuration("CHARACTER_CACHE_TTL", DefaultCharacterCacheTTL),
		SkillResetCooldown: getEnvAsDuration("SKILL_RESET_COOLDOWN", DefaultSkillResetCooldown),

		RNGSeed: getEnvAsInt64("RNG_SEED", 0),
	}

	portStr := getEnv("PORT", strconv.Itoa(DefaultPort))
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer, falling back to the default when unset or invalid
func getEnvAsInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	v, err := strconv.ParseInt(os.Getenv(key), 10, 64)
	if err != nil {
		return defaultValue
	}
	return v
}

// getEnvAsDuration parses a Go duration string such as "90s" or "1h30m"
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

// getEnvAsList splits a comma separated value, dropping empty entries
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnvAsBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

// IsProduction reports whether ENVIRONMENT names a production deployment
func (c *Config) IsProduction() bool {
	return c.Environment == EnvironmentProduction
}
