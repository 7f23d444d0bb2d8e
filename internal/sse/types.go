package sse

import "time"

// AdventureStartedPayload announces an encounter to viewers
type AdventureStartedPayload struct {
	SessionID string    `json:"session_id"`
	GroupID   string    `json:"group_id"`
	Monster   string    `json:"monster"`
	Kind      string    `json:"kind"`
	HP        int       `json:"hp"`
	Dipl      int       `json:"dipl"`
	Deadline  time.Time `json:"deadline"`
	Headline  string    `json:"headline"`
}

// ParticipantLine is one participant's share of a resolution
type ParticipantLine struct {
	UserID   string   `json:"user_id"`
	Action   string   `json:"action"`
	Fumbled  bool     `json:"fumbled,omitempty"`
	Crit     bool     `json:"crit,omitempty"`
	XP       int64    `json:"xp"`
	Currency int64    `json:"currency"`
	Penalty  int64    `json:"penalty,omitempty"`
	Chests   []string `json:"chests,omitempty"`
	NewLevel int      `json:"new_level,omitempty"`
}

// AdventureResolvedPayload is the structured outcome shown to viewers
type AdventureResolvedPayload struct {
	SessionID    string            `json:"session_id"`
	GroupID      string            `json:"group_id"`
	Monster      string            `json:"monster"`
	Success      bool              `json:"success"`
	Headline     string            `json:"headline"`
	Attack       int               `json:"attack"`
	Magic        int               `json:"magic"`
	Diplomacy    int               `json:"diplomacy"`
	Participants []ParticipantLine `json:"participants"`
}

// AdventureExpiredPayload tells viewers an encounter ended without a result
type AdventureExpiredPayload struct {
	SessionID string `json:"session_id"`
	GroupID   string `json:"group_id"`
	Reason    string `json:"reason"`
}

// LevelUpPayload represents the SSE payload for level up events
type LevelUpPayload struct {
	UserID   string `json:"user_id"`
	OldLevel int    `json:"old_level"`
	NewLevel int    `json:"new_level"`
}

// RebirthPayload represents the SSE payload for rebirth events
type RebirthPayload struct {
	UserID   string `json:"user_id"`
	Rebirths int    `json:"rebirths"`
}
