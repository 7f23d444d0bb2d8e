package sse

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize bounds events queued for delivery
	BroadcastBufferSize = 100

	// ClientEventBuffer bounds each client's pending events
	ClientEventBuffer = 50
)

// SSE connection settings
const (
	// KeepaliveInterval is how often to send keepalive pings
	KeepaliveInterval = 30 * time.Second
)

// Event types for SSE. Adventure and character types reuse the bus names.
const (
	EventTypeAdventureStarted  = "adventure.started"
	EventTypeAdventureResolved = "adventure.resolved"
	EventTypeAdventureExpired  = "adventure.expired"
	EventTypeLevelUp           = "character.level_up"
	EventTypeRebirth           = "character.rebirth"

	// EventTypeConnected is the first event every client receives
	EventTypeConnected = "connected"

	// EventTypeKeepalive is the keepalive ping event type
	EventTypeKeepalive = "keepalive"
)

// Query parameters
const (
	QueryParamTypes = "types"
	QueryParamGroup = "group"
)

// Log messages
const (
	LogMsgClientConnected    = "SSE client connected"
	LogMsgClientDisconnected = "SSE client disconnected"
	LogMsgEventBroadcast     = "Broadcasting SSE event"
	LogMsgEventDropped       = "SSE broadcast buffer full, dropping event"
	LogMsgWriteError         = "Failed to write SSE event"
	LogMsgInvalidPayload     = "Invalid event payload for SSE"
	LogMsgSubscriberReady    = "SSE subscriber registered for event types"
)
