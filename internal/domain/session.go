package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Action is the roster a participant commits to
type Action string

const (
	ActionFight Action = "fight"
	ActionMagic Action = "magic"
	ActionTalk  Action = "talk"
	ActionPray  Action = "pray"
	ActionRun   Action = "run"
)

// AllActions lists the five rosters
var AllActions = []Action{ActionFight, ActionMagic, ActionTalk, ActionPray, ActionRun}

// ParseAction validates an action string
func ParseAction(s string) (Action, error) {
	switch Action(strings.ToLower(strings.TrimSpace(s))) {
	case ActionFight, "attack":
		return ActionFight, nil
	case ActionMagic, "cast", "spell":
		return ActionMagic, nil
	case ActionTalk, "persuade", "diplomacy":
		return ActionTalk, nil
	case ActionPray:
		return ActionPray, nil
	case ActionRun, "flee":
		return ActionRun, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidAction, s)
}

// SessionState is the adventure lifecycle position
type SessionState string

const (
	SessionOpen      SessionState = "Open"
	SessionResolving SessionState = "Resolving"
	SessionClosed    SessionState = "Closed"
)

// Session is a single live encounter for a group
type Session struct {
	ID        uuid.UUID     `json:"id"`
	GroupID   string        `json:"group_id"`
	StarterID string        `json:"starter_id"`
	State     SessionState  `json:"state"`
	Monster   ScaledMonster `json:"monster"`
	Boss      bool          `json:"boss"`
	Miniboss  bool          `json:"miniboss"`
	Duration  time.Duration `json:"duration"`
	CreatedAt time.Time     `json:"created_at"`

	// Rosters holds the participant ids per action, in join order
	Rosters map[Action][]string `json:"rosters"`
	// Reacted records markers used by miniboss gates
	Reacted map[string]bool `json:"reacted,omitempty"`
}

// NewSession creates an open session with empty rosters
func NewSession(groupID, starterID string, monster ScaledMonster, duration time.Duration, now time.Time) *Session {
	rosters := make(map[Action][]string, len(AllActions))
	for _, a := range AllActions {
		rosters[a] = []string{}
	}
	return &Session{
		ID:        uuid.New(),
		GroupID:   groupID,
		StarterID: starterID,
		State:     SessionOpen,
		Monster:   monster,
		Boss:      monster.Template.Boss,
		Miniboss:  monster.Template.Miniboss != nil,
		Duration:  duration,
		CreatedAt: now,
		Rosters:   rosters,
		Reacted:   make(map[string]bool),
	}
}

// Deadline is when the countdown expires
func (s *Session) Deadline() time.Time {
	return s.CreatedAt.Add(s.Duration)
}

// RosterOf returns the action a participant is committed to
func (s *Session) RosterOf(userID string) (Action, bool) {
	for _, a := range AllActions {
		for _, id := range s.Rosters[a] {
			if id == userID {
				return a, true
			}
		}
	}
	return "", false
}

// Remove evicts a participant from every roster
func (s *Session) Remove(userID string) bool {
	removed := false
	for _, a := range AllActions {
		ids := s.Rosters[a]
		out := ids[:0]
		for _, id := range ids {
			if id == userID {
				removed = true
				continue
			}
			out = append(out, id)
		}
		s.Rosters[a] = out
	}
	return removed
}

// Move places a participant in exactly one roster
func (s *Session) Move(userID string, action Action) {
	s.Remove(userID)
	s.Rosters[action] = append(s.Rosters[action], userID)
}

// Participants returns every participant across all rosters
func (s *Session) Participants() []string {
	var out []string
	for _, a := range AllActions {
		out = append(out, s.Rosters[a]...)
	}
	return out
}

// Snapshot returns a copy safe to hand to callers outside the registry lock
func (s *Session) Snapshot() *Session {
	cp := *s
	cp.Rosters = make(map[Action][]string, len(s.Rosters))
	for a, ids := range s.Rosters {
		cp.Rosters[a] = append([]string(nil), ids...)
	}
	cp.Reacted = make(map[string]bool, len(s.Reacted))
	for k, v := range s.Reacted {
		cp.Reacted[k] = v
	}
	return &cp
}
