package config

import (
	"errors"
	"fmt"
	"slices"
)

// Validate checks ranges and enumerations and reports every problem at once
func (c *Config) Validate() error {
	var errs []error

	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port))
	}
	if !slices.Contains(validLogLevels, c.LogLevel) {
		errs = append(errs, fmt.Errorf("LOG_LEVEL must be one of %v, got %q", validLogLevels, c.LogLevel))
	}
	if !slices.Contains(validLogFormats, c.LogFormat) {
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be one of %v, got %q", validLogFormats, c.LogFormat))
	}
	if c.DBMaxConns < 1 {
		errs = append(errs, fmt.Errorf("DB_MAX_CONNS must be positive, got %d", c.DBMaxConns))
	}
	if c.RedisDB < 0 {
		errs = append(errs, fmt.Errorf("REDIS_DB must not be negative, got %d", c.RedisDB))
	}
	if c.EntryCost < 0 {
		errs = append(errs, fmt.Errorf("ENTRY_COST must not be negative, got %d", c.EntryCost))
	}
	if c.MaxBalance < 0 {
		errs = append(errs, fmt.Errorf("MAX_BALANCE must not be negative, got %d", c.MaxBalance))
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, fmt.Errorf("SESSION_TTL must be positive, got %s", c.SessionTTL))
	}
	if c.SweepInterval <= 0 {
		errs = append(errs, fmt.Errorf("SWEEP_INTERVAL must be positive, got %s", c.SweepInterval))
	}
	if c.ResolveLockTimeout <= 0 {
		errs = append(errs, fmt.Errorf("RESOLVE_LOCK_TIMEOUT must be positive, got %s", c.ResolveLockTimeout))
	}
	if c.CharacterCacheSize < 0 {
		errs = append(errs, fmt.Errorf("CHARACTER_CACHE_SIZE must not be negative, got %d", c.CharacterCacheSize))
	}
	if c.SkillResetCooldown < 0 {
		errs = append(errs, fmt.Errorf("SKILL_RESET_COOLDOWN must not be negative, got %s", c.SkillResetCooldown))
	}

	return errors.Join(errs...)
}

// Warnings lists settings that are legal but probably unintended
func (c *Config) Warnings() []string {
	var warnings []string

	if c.DatabaseURL == "" {
		warnings = append(warnings, "DATABASE_URL is not set - characters are kept in memory and lost on restart")
	}
	if c.RedisAddr == "" && c.DatabaseURL == "" {
		warnings = append(warnings, "neither REDIS_ADDR nor DATABASE_URL is set - balances are kept in memory")
	}
	if c.IsProduction() && c.APIKey == "" {
		warnings = append(warnings, "API_KEY is not set in production - every route is open")
	}
	if c.IsProduction() && c.RNGSeed != 0 {
		warnings = append(warnings, "RNG_SEED is fixed in production - every encounter sequence is reproducible")
	}
	if c.SweepInterval > c.SessionTTL {
		warnings = append(warnings, "SWEEP_INTERVAL is longer than SESSION_TTL - stale sessions linger past their TTL")
	}

	return warnings
}
