package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/Adventure_Go/internal/config"
	"github.com/osse101/Adventure_Go/internal/event"
)

// InitializeEventSystem creates the event bus and the resilient publisher
// wrapping it. Failed deliveries are retried with exponential backoff and
// finally appended to a dead-letter file inside the log directory.
func InitializeEventSystem(cfg *config.Config) (*event.MemoryBus, *event.ResilientPublisher, error) {
	eventBus := event.NewMemoryBus()

	deadLetterPath := filepath.Join(cfg.LogDir, EventDeadLetterFile)
	if err := os.MkdirAll(filepath.Dir(deadLetterPath), DirPermission); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", LogMsgFailedCreateDeadLetterDir, err)
	}

	resilientPublisher, err := event.NewResilientPublisher(eventBus, EventDefaultMaxRetries, EventDefaultRetryDelay, deadLetterPath)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", LogMsgFailedCreateResilientPublisher, err)
	}

	slog.Info(LogMsgEventSystemInitialized,
		"maxRetries", EventDefaultMaxRetries,
		"retryDelay", EventDefaultRetryDelay,
		"deadletterPath", deadLetterPath)

	return eventBus, resilientPublisher, nil
}
