package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/Adventure_Go/internal/event"
	"github.com/osse101/Adventure_Go/internal/metrics"
	"github.com/osse101/Adventure_Go/internal/sse"
	"github.com/osse101/Adventure_Go/internal/worker"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus        event.Bus
	Hub             *sse.Hub
	AdventureWorker *worker.AdventureWorker
}

// RegisterEventHandlers sets up all event handlers and subscribers:
// the metrics collector, the SSE bridge and the adventure countdown worker.
func RegisterEventHandlers(ctx context.Context, deps EventHandlerDependencies) error {
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	if deps.Hub != nil {
		sse.NewSubscriber(deps.Hub, deps.EventBus).Subscribe(ctx)
		slog.Info(LogMsgSSESubscriberRegistered)
	}

	if deps.AdventureWorker != nil {
		deps.AdventureWorker.Subscribe(deps.EventBus)
		slog.Info(LogMsgAdventureWorkerSubscribed)
	}

	return nil
}
