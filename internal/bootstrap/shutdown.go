package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/Adventure_Go/internal/event"
	"github.com/osse101/Adventure_Go/internal/scheduler"
	"github.com/osse101/Adventure_Go/internal/server"
	"github.com/osse101/Adventure_Go/internal/sse"
	"github.com/osse101/Adventure_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Nil members are skipped.
type ShutdownComponents struct {
	Server             *server.Server
	AdventureWorker    *worker.AdventureWorker
	Scheduler          *scheduler.Scheduler
	WorkerPool         *worker.Pool
	Hub                *sse.Hub
	ResilientPublisher *event.ResilientPublisher
	Repositories       *Repositories
}

// GracefulShutdown stops the application in dependency order:
// 1. HTTP server (stop accepting new requests)
// 2. Countdown timers and periodic jobs
// 3. SSE hub
// 4. Event publisher (flush pending events)
// 5. Storage
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.AdventureWorker != nil {
		if err := components.AdventureWorker.Shutdown(ctx); err != nil {
			slog.Error(LogMsgAdventureWorkerFailed, "error", err)
		}
	}

	// Scheduler before pool: the pool must not receive jobs once stopped
	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}
	if components.WorkerPool != nil {
		components.WorkerPool.Stop()
	}

	if components.Hub != nil {
		components.Hub.Stop()
	}

	if components.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := components.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	if components.Repositories != nil {
		components.Repositories.Close()
	}

	slog.Info(LogMsgServerStopped)
}
