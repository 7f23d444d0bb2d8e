package config

import "time"

// Defaults
const (
	DefaultPort        = 8080
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultLogDir      = "logs"
	DefaultEnvironment = "dev"

	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute

	DefaultSessionTTL         = 30 * time.Minute
	DefaultSweepInterval      = time.Minute
	DefaultResolveLockTimeout = 10 * time.Second

	DefaultCharacterCacheSize = 1000
	DefaultCharacterCacheTTL  = 10 * time.Minute
	DefaultSkillResetCooldown = 24 * time.Hour
)

// Environments
const (
	EnvironmentProduction = "production"
)

// Accepted values
var (
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"text", "json"}
)
