package session

import "time"

// ============================================================================
// Timers
// ============================================================================

const (
	DefaultNormalDuration     = 2 * time.Minute
	DefaultMinibossDuration   = 3 * time.Minute
	DefaultBossDuration       = 5 * time.Minute
	DefaultTTL                = 30 * time.Minute
	DefaultResolveLockTimeout = 10 * time.Second
)

// Expiry reasons reported on adventure.expired
const (
	ReasonStale       = "stale"
	ReasonLockTimeout = "lock_timeout"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgSessionStarted     = "Adventure started"
	LogMsgParticipantJoined  = "Participant joined adventure"
	LogMsgParticipantLeft    = "Participant left adventure"
	LogMsgJoinVetoed         = "Participant vetoed from adventure"
	LogMsgResolving          = "Resolving adventure"
	LogMsgResolved           = "Adventure resolved"
	LogMsgResolveSkipped     = "Adventure already resolved"
	LogMsgParticipantSkipped = "Participant skipped, character unavailable"
	LogMsgSessionSwept       = "Stale adventure swept"
	LogMsgPublishFailed      = "Failed to publish adventure event"
	LogMsgLedgerFailed       = "Failed to settle currency"
	LogMsgSaveFailed         = "Failed to save character after adventure"
)

// ============================================================================
// Error Contexts
// ============================================================================

const (
	ErrContextStart          = "failed to start adventure"
	ErrContextJoin           = "failed to join adventure"
	ErrContextLockAll        = "failed to lock participants"
	ErrContextCheckBalance   = "failed to check entry cost"
	ErrContextLoadChallenger = "failed to load challenger"
)
