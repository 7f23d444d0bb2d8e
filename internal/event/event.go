package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/Adventure_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata map[string]interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata,omitempty"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// Event types
const (
	AdventureStarted  Type = domain.EventAdventureStarted
	AdventureResolved Type = domain.EventAdventureResolved
	AdventureExpired  Type = domain.EventAdventureExpired
	CharacterLevelUp  Type = domain.EventCharacterLevelUp
	CharacterRebirth  Type = domain.EventCharacterRebirth
)

// AllTypes lists every event type, used by bridges that forward everything
var AllTypes = []Type{AdventureStarted, AdventureResolved, AdventureExpired, CharacterLevelUp, CharacterRebirth}

// AdventureStartedPayloadV1 announces a new encounter
type AdventureStartedPayloadV1 struct {
	SessionID uuid.UUID `json:"session_id"`
	GroupID   string    `json:"group_id"`
	StarterID string    `json:"starter_id"`
	Monster   string    `json:"monster"`
	Boss      bool      `json:"boss"`
	Miniboss  bool      `json:"miniboss"`
	HP        int       `json:"hp"`
	Dipl      int       `json:"dipl"`
	Deadline  time.Time `json:"deadline"`
}

// ParticipantOutcomeV1 is one participant's share of a resolution
type ParticipantOutcomeV1 struct {
	UserID     string   `json:"user_id"`
	Action     string   `json:"action"`
	Fumbled    bool     `json:"fumbled,omitempty"`
	Crit       bool     `json:"crit,omitempty"`
	XP         int64    `json:"xp"`
	Currency   int64    `json:"currency"`
	PetXP      int64    `json:"pet_xp,omitempty"`
	PetBonus   int64    `json:"pet_bonus,omitempty"`
	Penalty    int64    `json:"penalty,omitempty"`
	Chests     []string `json:"chests,omitempty"`
	NewLevel   int      `json:"new_level,omitempty"`
	CanRebirth bool     `json:"can_rebirth,omitempty"`
}

// AdventureResolvedPayloadV1 carries the narration-worthy facts of a resolution
type AdventureResolvedPayloadV1 struct {
	SessionID    uuid.UUID              `json:"session_id"`
	GroupID      string                 `json:"group_id"`
	Monster      string                 `json:"monster"`
	Success      bool                   `json:"success"`
	Slain        bool                   `json:"slain"`
	Persuaded    bool                   `json:"persuaded"`
	GateFailed   bool                   `json:"gate_failed"`
	Attack       float64                `json:"attack"`
	Magic        float64                `json:"magic"`
	Diplomacy    float64                `json:"diplomacy"`
	Participants []ParticipantOutcomeV1 `json:"participants"`
	Timestamp    int64                  `json:"timestamp"`
}

// AdventureExpiredPayloadV1 is sent when a session is removed without resolving
type AdventureExpiredPayloadV1 struct {
	SessionID uuid.UUID `json:"session_id"`
	GroupID   string    `json:"group_id"`
	Reason    string    `json:"reason"`
}

// LevelUpPayloadV1 is sent when a character gains levels
type LevelUpPayloadV1 struct {
	UserID      string `json:"user_id"`
	OldLevel    int    `json:"old_level"`
	NewLevel    int    `json:"new_level"`
	SkillPoints int    `json:"skill_points"`
}

// RebirthPayloadV1 is sent after a rebirth
type RebirthPayloadV1 struct {
	UserID    string   `json:"user_id"`
	Rebirths  int      `json:"rebirths"`
	Destroyed []string `json:"destroyed,omitempty"`
}

// Type-safe event constructors

// NewAdventureStartedEvent builds an adventure.started event from a fresh session
func NewAdventureStartedEvent(s *domain.Session) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    AdventureStarted,
		Payload: AdventureStartedPayloadV1{
			SessionID: s.ID,
			GroupID:   s.GroupID,
			StarterID: s.StarterID,
			Monster:   s.Monster.DisplayName(),
			Boss:      s.Boss,
			Miniboss:  s.Miniboss,
			HP:        int(s.Monster.EffectiveHP()),
			Dipl:      int(s.Monster.EffectiveDipl()),
			Deadline:  s.Deadline(),
		},
		Metadata: Metadata{"group_id": s.GroupID},
	}
}

// NewAdventureResolvedEvent wraps a resolution payload
func NewAdventureResolvedEvent(payload AdventureResolvedPayloadV1) Event {
	if payload.Timestamp == 0 {
		payload.Timestamp = time.Now().Unix()
	}
	return Event{
		Version:  EventSchemaVersion,
		Type:     AdventureResolved,
		Payload:  payload,
		Metadata: Metadata{"group_id": payload.GroupID},
	}
}

// NewAdventureExpiredEvent builds an adventure.expired event
func NewAdventureExpiredEvent(sessionID uuid.UUID, groupID, reason string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    AdventureExpired,
		Payload: AdventureExpiredPayloadV1{
			SessionID: sessionID,
			GroupID:   groupID,
			Reason:    reason,
		},
		Metadata: Metadata{"group_id": groupID},
	}
}

// NewLevelUpEvent builds a character.level_up event
func NewLevelUpEvent(userID string, oldLevel, newLevel, skillPoints int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CharacterLevelUp,
		Payload: LevelUpPayloadV1{
			UserID:      userID,
			OldLevel:    oldLevel,
			NewLevel:    newLevel,
			SkillPoints: skillPoints,
		},
	}
}

// NewRebirthEvent builds a character.rebirth event
func NewRebirthEvent(userID string, rebirths int, destroyed []string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CharacterRebirth,
		Payload: RebirthPayloadV1{
			UserID:    userID,
			Rebirths:  rebirths,
			Destroyed: destroyed,
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Publisher is the publishing half of a Bus
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Bus defines the interface for an event bus
type Bus interface {
	Publisher
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber synchronously and joins their errors
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
