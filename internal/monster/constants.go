package monster

// ============================================================================
// Selection
// ============================================================================

const (
	// bandLowerSlack and bandUpperSlack widen the difficulty band for selection
	bandLowerSlack = 0.75
	bandUpperSlack = 1.2

	// fallbackStatMult bounds monsters by the strongest stat when no band is active
	fallbackStatMult = 5

	// trashRepeatMax is the most copies of a trash monster placed in the pool
	trashRepeatMax = 15

	// fallbackRepeat is how many copies of every monster fill an empty pool
	fallbackRepeat = 3
)

// ============================================================================
// Empowered Encounters
// ============================================================================

const (
	TitleAscended    = "Ascended"
	TitleTranscended = "Transcended"

	AscendedRebirths    = 20
	TranscendedRebirths = 40
	EmpoweredChance     = 0.2

	AscendedStatMult    = 2.0
	TranscendedStatMult = 3.0
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgMonsterSelected = "Selected monster"
	LogMsgFallbackPool    = "No monster matched the difficulty band, using full table"
)

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrContextSelectMonster = "failed to select monster"
)
