package difficulty

// ============================================================================
// History
// ============================================================================

const (
	// HistoryCapacity is the number of outcomes kept per group
	HistoryCapacity = 20

	// SoloInflation is applied to amounts from single-participant encounters
	SoloInflation = 1.25

	// NeutralWinPercent is assumed when nothing has been recorded
	NeutralWinPercent = 0.5
)

// ============================================================================
// Band Multipliers
// ============================================================================

const (
	bandMinMult       = 0.75
	bandMaxMult       = 2.0
	losingBandMaxMult = 1.5
)
