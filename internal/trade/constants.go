package trade

// ============================================================================
// Limits
// ============================================================================

const (
	// MaxItemQuantity bounds a single give
	MaxItemQuantity = 1000
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgCurrencySent  = "Currency sent"
	LogMsgItemGiven     = "Item given"
	LogMsgRestoreFailed = "Failed to restore sender after give failed"
)

// ============================================================================
// Error Contexts
// ============================================================================

const (
	ErrContextSendCurrency = "failed to send currency"
	ErrContextGiveItem     = "failed to give item"
	ErrContextSaveSender   = "failed to save sender"
	ErrContextSaveReceiver = "failed to save receiver"
)
