package sse

import (
	"context"
	"fmt"

	"github.com/osse101/Adventure_Go/internal/event"
	"github.com/osse101/Adventure_Go/internal/logger"
	"github.com/osse101/Adventure_Go/internal/utils"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers handlers for all relevant event types
func (s *Subscriber) Subscribe(ctx context.Context) {
	s.bus.Subscribe(event.AdventureStarted, s.handleStarted)
	s.bus.Subscribe(event.AdventureResolved, s.handleResolved)
	s.bus.Subscribe(event.AdventureExpired, s.handleExpired)
	s.bus.Subscribe(event.CharacterLevelUp, s.handleLevelUp)
	s.bus.Subscribe(event.CharacterRebirth, s.handleRebirth)

	logger.FromContext(ctx).Info(LogMsgSubscriberReady, "types", event.AllTypes)
}

func (s *Subscriber) send(ctx context.Context, eventType, groupID string, payload interface{}) {
	log := logger.FromContext(ctx)
	if !s.hub.Broadcast(eventType, groupID, payload) {
		log.Warn(LogMsgEventDropped, "eventType", eventType, "groupID", groupID)
		return
	}
	log.Debug(LogMsgEventBroadcast, "eventType", eventType, "groupID", groupID)
}

func (s *Subscriber) handleStarted(ctx context.Context, evt event.Event) error {
	p, err := event.DecodePayload[event.AdventureStartedPayloadV1](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgInvalidPayload, "type", evt.Type, "error", err)
		return nil
	}

	kind := "normal"
	switch {
	case p.Boss:
		kind = "boss"
	case p.Miniboss:
		kind = "miniboss"
	}

	s.send(ctx, EventTypeAdventureStarted, p.GroupID, AdventureStartedPayload{
		SessionID: p.SessionID.String(),
		GroupID:   p.GroupID,
		Monster:   p.Monster,
		Kind:      kind,
		HP:        p.HP,
		Dipl:      p.Dipl,
		Deadline:  p.Deadline,
		Headline:  startedHeadline(p.Monster, kind),
	})
	return nil
}

func (s *Subscriber) handleResolved(ctx context.Context, evt event.Event) error {
	p, err := event.DecodePayload[event.AdventureResolvedPayloadV1](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgInvalidPayload, "type", evt.Type, "error", err)
		return nil
	}

	lines := make([]ParticipantLine, 0, len(p.Participants))
	for _, part := range p.Participants {
		lines = append(lines, ParticipantLine{
			UserID:   part.UserID,
			Action:   part.Action,
			Fumbled:  part.Fumbled,
			Crit:     part.Crit,
			XP:       part.XP,
			Currency: part.Currency + part.PetBonus,
			Penalty:  part.Penalty,
			Chests:   part.Chests,
			NewLevel: part.NewLevel,
		})
	}

	s.send(ctx, EventTypeAdventureResolved, p.GroupID, AdventureResolvedPayload{
		SessionID:    p.SessionID.String(),
		GroupID:      p.GroupID,
		Monster:      p.Monster,
		Success:      p.Success,
		Headline:     resolvedHeadline(p),
		Attack:       utils.Round(p.Attack),
		Magic:        utils.Round(p.Magic),
		Diplomacy:    utils.Round(p.Diplomacy),
		Participants: lines,
	})
	return nil
}

func (s *Subscriber) handleExpired(ctx context.Context, evt event.Event) error {
	p, err := event.DecodePayload[event.AdventureExpiredPayloadV1](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgInvalidPayload, "type", evt.Type, "error", err)
		return nil
	}
	s.send(ctx, EventTypeAdventureExpired, p.GroupID, AdventureExpiredPayload{
		SessionID: p.SessionID.String(),
		GroupID:   p.GroupID,
		Reason:    p.Reason,
	})
	return nil
}

func (s *Subscriber) handleLevelUp(ctx context.Context, evt event.Event) error {
	p, err := event.DecodePayload[event.LevelUpPayloadV1](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgInvalidPayload, "type", evt.Type, "error", err)
		return nil
	}
	s.send(ctx, EventTypeLevelUp, "", LevelUpPayload{
		UserID:   p.UserID,
		OldLevel: p.OldLevel,
		NewLevel: p.NewLevel,
	})
	return nil
}

func (s *Subscriber) handleRebirth(ctx context.Context, evt event.Event) error {
	p, err := event.DecodePayload[event.RebirthPayloadV1](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgInvalidPayload, "type", evt.Type, "error", err)
		return nil
	}
	s.send(ctx, EventTypeRebirth, "", RebirthPayload{UserID: p.UserID, Rebirths: p.Rebirths})
	return nil
}

func startedHeadline(monster, kind string) string {
	switch kind {
	case "boss":
		return fmt.Sprintf("The ground trembles. %s has arrived!", monster)
	case "miniboss":
		return fmt.Sprintf("A menacing %s blocks the path!", monster)
	default:
		return fmt.Sprintf("A wild %s appears!", monster)
	}
}

func resolvedHeadline(p event.AdventureResolvedPayloadV1) string {
	switch {
	case p.Success && p.Slain:
		return fmt.Sprintf("The %s was slain.", p.Monster)
	case p.Success && p.Persuaded:
		return fmt.Sprintf("The %s was persuaded to leave.", p.Monster)
	case p.GateFailed:
		return fmt.Sprintf("The %s shrugged off every blow.", p.Monster)
	case len(p.Participants) == 0:
		return fmt.Sprintf("Nobody answered the call. The %s wanders off.", p.Monster)
	default:
		return fmt.Sprintf("The party was driven off by the %s.", p.Monster)
	}
}
