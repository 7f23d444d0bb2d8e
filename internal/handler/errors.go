package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query and path parameter error messages
	ErrMsgInvalidQueryParam = "Invalid %s query parameter"
	ErrMsgInvalidSessionID  = "Invalid session id"

	// Adventure operation error messages
	ErrMsgStartAdventureFailed   = "Failed to start adventure"
	ErrMsgJoinAdventureFailed    = "Failed to join adventure"
	ErrMsgLeaveAdventureFailed   = "Failed to leave adventure"
	ErrMsgReactFailed            = "Failed to record reaction"
	ErrMsgGetAdventureFailed     = "Failed to get adventure"
	ErrMsgResolveAdventureFailed = "Failed to resolve adventure"

	// Character operation error messages
	ErrMsgGetCharacterFailed  = "Failed to get character"
	ErrMsgGetBackpackFailed   = "Failed to get backpack"
	ErrMsgEquipFailed         = "Failed to equip item"
	ErrMsgUnequipFailed       = "Failed to unequip slot"
	ErrMsgSaveLoadoutFailed   = "Failed to save loadout"
	ErrMsgEquipLoadoutFailed  = "Failed to equip loadout"
	ErrMsgDeleteLoadoutFailed = "Failed to delete loadout"
	ErrMsgAllocateSkillFailed = "Failed to allocate skill points"
	ErrMsgResetSkillsFailed   = "Failed to reset skills"
	ErrMsgSetClassFailed      = "Failed to set class"
	ErrMsgUseAbilityFailed    = "Failed to use ability"
	ErrMsgAdoptPetFailed      = "Failed to adopt pet"
	ErrMsgRebirthFailed       = "Failed to rebirth"
	ErrMsgOpenChestsFailed    = "Failed to open chests"
	ErrMsgSellItemFailed      = "Failed to sell item"

	// Trade error messages
	ErrMsgSendCurrencyFailed = "Failed to send currency"
	ErrMsgGiveItemFailed     = "Failed to give item"
)

// Success messages
const (
	MsgLeftAdventure  = "Left the adventure"
	MsgReactionStored = "Reaction recorded"
	MsgLoadoutDeleted = "Loadout deleted"
	MsgCurrencySent   = "Currency sent"
)

// Response writing log messages
const (
	LogMsgEncodeResponseFailed = "Failed to encode JSON response"
	LogMsgWriteResponseFailed  = "Failed to write response buffer"
)
