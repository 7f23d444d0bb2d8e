package metrics

import (
	"context"

	"github.com/osse101/Adventure_Go/internal/event"
	"github.com/osse101/Adventure_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	for _, eventType := range event.AllTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
	return nil
}

// HandleEvent processes events and updates metrics. Payloads that fail to
// decode are counted as published and otherwise ignored.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.AdventureStarted:
		err = recordStarted(evt)
	case event.AdventureResolved:
		err = recordResolved(evt)
	case event.AdventureExpired:
		err = recordExpired(evt)
	case event.CharacterLevelUp:
		LevelUps.Inc()
	case event.CharacterRebirth:
		Rebirths.Inc()
	}
	if err != nil {
		log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func recordStarted(evt event.Event) error {
	p, err := event.DecodePayload[event.AdventureStartedPayloadV1](evt.Payload)
	if err != nil {
		return err
	}
	kind := KindNormal
	switch {
	case p.Boss:
		kind = KindBoss
	case p.Miniboss:
		kind = KindMiniboss
	}
	AdventuresStarted.WithLabelValues(kind).Inc()
	AdventuresActive.Inc()
	return nil
}

func recordResolved(evt event.Event) error {
	p, err := event.DecodePayload[event.AdventureResolvedPayloadV1](evt.Payload)
	if err != nil {
		return err
	}
	AdventuresActive.Dec()

	result := ResultFailed
	switch {
	case p.Success && p.Slain:
		result = ResultSlain
	case p.Success && p.Persuaded:
		result = ResultPersuaded
	}
	AdventuresResolved.WithLabelValues(result).Inc()
	AdventureParticipants.Observe(float64(len(p.Participants)))

	for _, part := range p.Participants {
		CurrencyAwarded.Add(float64(max(part.Currency, 0) + max(part.PetBonus, 0)))
		CurrencyPenalized.Add(float64(max(part.Penalty, 0)))
		ExperienceAwarded.Add(float64(max(part.XP, 0)))
		for _, chest := range part.Chests {
			ChestsAwarded.WithLabelValues(chest).Inc()
		}
		if part.Crit {
			Crits.WithLabelValues(part.Action).Inc()
		}
		if part.Fumbled {
			Fumbles.WithLabelValues(part.Action).Inc()
		}
	}
	return nil
}

func recordExpired(evt event.Event) error {
	p, err := event.DecodePayload[event.AdventureExpiredPayloadV1](evt.Payload)
	if err != nil {
		return err
	}
	AdventuresActive.Dec()
	AdventuresExpired.WithLabelValues(p.Reason).Inc()
	return nil
}
