package worker

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/Adventure_Go/internal/domain"
	"github.com/osse101/Adventure_Go/internal/event"
	"github.com/osse101/Adventure_Go/internal/logger"
	"github.com/osse101/Adventure_Go/internal/session"
)

const adventureWorkerName = "adventure worker"

// AdventureWorker resolves each adventure when its countdown runs out
type AdventureWorker struct {
	BaseWorker
	service session.Service
}

// NewAdventureWorker creates a new AdventureWorker
func NewAdventureWorker(service session.Service) *AdventureWorker {
	w := &AdventureWorker{service: service}
	w.init()
	return w
}

// Start schedules every open session, e.g. after a restart of the worker
func (w *AdventureWorker) Start() {
	ctx := context.Background()
	for _, s := range w.service.Active(ctx) {
		if s.State == domain.SessionOpen {
			w.Schedule(s.GroupID, s.ID, s.Deadline())
		}
	}
}

// Subscribe subscribes the worker to relevant events
func (w *AdventureWorker) Subscribe(bus event.Bus) {
	bus.Subscribe(event.AdventureStarted, w.handleStarted)
	bus.Subscribe(event.AdventureExpired, w.handleExpired)
}

func (w *AdventureWorker) handleStarted(ctx context.Context, e event.Event) error {
	payload, err := event.DecodePayload[event.AdventureStartedPayloadV1](e.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgBadAdventurePayload, "type", e.Type, "error", err)
		return nil
	}
	w.Schedule(payload.GroupID, payload.SessionID, payload.Deadline)
	return nil
}

func (w *AdventureWorker) handleExpired(_ context.Context, e event.Event) error {
	payload, err := event.DecodePayload[event.AdventureExpiredPayloadV1](e.Payload)
	if err != nil {
		return nil
	}
	w.stopTimer(payload.SessionID)
	return nil
}

// Schedule resolves the session at deadline. A past deadline resolves now.
func (w *AdventureWorker) Schedule(groupID string, sessionID uuid.UUID, deadline time.Time) {
	duration := time.Until(deadline)
	logger.FromContext(context.Background()).Info(LogMsgSchedulingResolution,
		"groupID", groupID, "sessionID", sessionID, "duration", duration)

	w.schedule(sessionID, duration, func() {
		w.resolve(groupID, sessionID)
	})
}

// Pending is the number of countdowns still running
func (w *AdventureWorker) Pending() int {
	return w.pending()
}

func (w *AdventureWorker) resolve(groupID string, sessionID uuid.UUID) {
	ctx := context.Background()
	log := logger.FromContext(ctx)
	log.Info(LogMsgExecutingResolution, "groupID", groupID, "sessionID", sessionID)

	_, err := w.service.Resolve(ctx, groupID, sessionID)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrSessionNotFound), errors.Is(err, domain.ErrSessionNotOpen):
		log.Debug(LogMsgResolutionSkipped, "groupID", groupID, "sessionID", sessionID)
	default:
		log.Error(LogMsgFailedToResolve, "groupID", groupID, "sessionID", sessionID, "error", err)
	}
}

// Shutdown cancels pending countdowns and waits for in-flight resolutions
func (w *AdventureWorker) Shutdown(ctx context.Context) error {
	return w.shutdownInternal(ctx, adventureWorkerName)
}
