package item

import "github.com/osse101/Adventure_Go/internal/domain"

// ============================================================================
// Generation Tables
// ============================================================================

// DefaultDegrade is the number of rebirths a freshly generated legendary survives
const DefaultDegrade = 3

// prefixChance is the probability of a prefix word per rarity
var prefixChance = map[domain.Rarity]float64{
	domain.RarityRare:      0.5,
	domain.RarityEpic:      0.75,
	domain.RarityLegendary: 0.9,
}

// suffixChance is the probability of a suffix word per rarity
var suffixChance = map[domain.Rarity]float64{
	domain.RarityEpic:      0.5,
	domain.RarityLegendary: 0.75,
}

// ============================================================================
// Pricing
// ============================================================================

// priceRange is a half-open [Min, Max) base sell price range
type priceRange struct {
	Min int
	Max int
}

var sellPriceRanges = map[domain.Rarity]priceRange{
	domain.RarityNormal:    {10, 100},
	domain.RarityRare:      {250, 500},
	domain.RarityEpic:      {500, 750},
	domain.RarityLegendary: {1000, 2000},
	domain.RaritySet:       {1000, 2000},
	domain.RarityEvent:     {1000, 2000},
	domain.RarityForged:    {500, 750},
}

const (
	// MaxRebirthPriceBonus caps the rebirth contribution to the sell multiplier
	MaxRebirthPriceBonus = 0.4
	statPriceDivisor     = 1000.0
)

// ============================================================================
// Equip Level
// ============================================================================

const (
	maxRarityLevelIndex = 5
	rarityLevelOffset   = 3
)

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrContextGenerateItem = "failed to generate item"

	ErrMsgNotGeneratable = "rarity cannot be generated"
	ErrMsgNoSetPieces    = "no set pieces for slot"
	ErrMsgNoWords        = "no words for"
)
