package character

import "time"

// ============================================================================
// Leveling
// ============================================================================

const (
	// BaseMaxLevel is the level cap before the first rebirth
	BaseMaxLevel = 5
	// RebirthBaseMaxLevel is the starting cap once a character has rebirthed
	RebirthBaseMaxLevel = 20
	// MaxLevelCap is the absolute level ceiling
	MaxLevelCap = 10000

	levelExponent = 3.5

	// CappedStatLimit bounds every stat of a capped, never-rebirthed character
	CappedStatLimit = 5

	// SkillPointsPerRebirth is credited to the skill point curve per rebirth
	SkillPointsPerRebirth = 10
)

// ============================================================================
// Set Bonus Clamps
// ============================================================================

const (
	MinStatMult = 0.75
	MinXPMult   = 0.0
	MinCPMult   = 0.0
)

// ============================================================================
// Rebirth
// ============================================================================

const (
	// KeepEquippedSetRebirths is the rebirth count from which set pieces stay equipped
	KeepEquippedSetRebirths = 30
	// MaxKeptForged is how many forged items survive a rebirth
	MaxKeptForged = 1
)

// ============================================================================
// Classes
// ============================================================================

const (
	// ClassMinLevel is the level needed to pick a hero class
	ClassMinLevel = 10
	// AbilityCooldown is the wait between class ability uses
	AbilityCooldown = 20 * time.Minute
	// DefaultSkillResetCooldown applies when the service is built without one
	DefaultSkillResetCooldown = 24 * time.Hour
)

// ============================================================================
// Cache
// ============================================================================

// CacheSchemaVersion is bumped when the cached structure changes
const CacheSchemaVersion = "1.0"

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgCharacterCreated   = "Created new character"
	LogMsgPetRemoved         = "Removed pet that no longer meets requirements"
	LogMsgLevelCapped        = "Clamped level to max level"
	LogMsgWeeklyReset        = "Reset weekly counters"
	LogMsgRebirth            = "Character rebirthed"
	LogMsgChestsOpened       = "Opened chests"
	LogMsgItemSold           = "Sold item"
	LogMsgPublishEventFailed = "Failed to publish character event"
)

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrContextLoadCharacter   = "failed to load character"
	ErrContextSaveCharacter   = "failed to save character"
	ErrContextDecodeCharacter = "failed to decode character"
	ErrContextEncodeCharacter = "failed to encode character"
	ErrContextOpenChests      = "failed to open chests"
	ErrContextSellItem        = "failed to sell item"

	ErrMsgEmptyLoadoutName = "loadout name is required"
)
