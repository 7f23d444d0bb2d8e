package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/osse101/Adventure_Go/internal/config"
	"github.com/osse101/Adventure_Go/internal/logger"
)

// SetupLogger initializes the application logger with file and stdout output.
// It creates the log directory, cleans up old logs, and installs a slog
// handler in the configured format writing to both stdout and the file.
// Returns the log file handle (caller must close) and any error encountered.
func SetupLogger(cfg *config.Config, version string) (*os.File, error) {
	if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateLogsDir, err)
	}

	cleanupLogs(cfg.LogDir)

	timestamp := time.Now().Format(LogFileTimestampFormat)
	logFileName := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, timestamp))

	logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedOpenLogFile, err)
	}

	mw := io.MultiWriter(os.Stdout, logFile)

	logCfg := logger.NewConfig(cfg.LogLevel, cfg.LogFormat, logger.DefaultServiceName, version, cfg.Environment)
	logger.InitLoggerWithWriter(logCfg, mw)

	slog.Info(LogMsgLoggingInitialized, "level", logCfg.LogLevel())
	slog.Info(LogMsgStartingAdventure,
		"environment", cfg.Environment,
		"logLevel", cfg.LogLevel,
		"logFormat", cfg.LogFormat,
		"version", version)

	slog.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"database", cfg.DatabaseURL != "",
		"redis", cfg.RedisAddr,
		"contentDir", cfg.ContentDir,
		"entryCost", cfg.EntryCost,
		"restrictAdventures", cfg.RestrictAdventures)

	return logFile, nil
}

// cleanupLogs removes old log files, keeping only the most recent ones.
// Session log names embed a sortable timestamp.
func cleanupLogs(logDir string) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var logFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			logFiles = append(logFiles, entry.Name())
		}
	}
	sort.Strings(logFiles)

	if len(logFiles) >= LogFileRetentionLimit {
		toDelete := len(logFiles) - LogFileRetentionCount
		for i := 0; i < toDelete; i++ {
			if err := os.Remove(filepath.Join(logDir, logFiles[i])); err != nil {
				slog.Warn(LogMsgFailedDeleteOldLog, "file", logFiles[i], "error", err)
			}
		}
	}
}
