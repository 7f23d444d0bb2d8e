package combat

// ============================================================================
// Roll Model
// ============================================================================

const (
	fumbleRoll = 1

	baseMaxRoll     = 20
	veteranMaxRoll  = 50
	veteranRebirths = 15
	maxRollHeadroom = 5
	maxModifier     = 45

	// minDefense floors monster defenses used as divisors
	minDefense = 0.5

	bonusMin        = 5
	bonusMax        = 10
	abilityBonusMin = 5
	abilityBonusMax = 50
	critBonusMin    = 5
	critBonusMax    = 20

	rebirthScaleDivisor = 20.0

	petCritMax       = 100
	petCritThreshold = 95
)

// ============================================================================
// Prayer
// ============================================================================

const (
	prayerDie        = 10
	prayerLuckyRoll  = 5
	prayerFlatBonus  = 5
	prayerBackfire   = 5
	prayerWeakDivide = 3
)

// ============================================================================
// Rewards and Penalties
// ============================================================================

const (
	// participantRewardBonus is added to the reward multiplier per participant
	participantRewardBonus = 0.25

	penaltyRate       = 0.2
	minDexterityScale = 3
	maxPenalty        = 1_000_000_000

	chestDie = 10
)

// chest tiers keyed by the amount cleared
const (
	highTierAmount = 700
	midTierAmount  = 500
	lowTierAmount  = 300
)
