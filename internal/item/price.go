package item

import (
	"math"
	"math/rand"

	"github.com/osse101/Adventure_Go/internal/domain"
	"github.com/osse101/Adventure_Go/internal/utils"
)

// SellPrice rolls the currency a character receives for one copy of it.
// stats are the seller's total stats.
func SellPrice(rng *rand.Rand, it *domain.Item, stats domain.Stats, rebirths int) int {
	r, ok := sellPriceRanges[it.Rarity]
	if !ok {
		r = sellPriceRanges[domain.RarityNormal]
	}

	base := utils.RandomIntN(rng, r.Min, r.Max) * it.Stats.MainStat()

	mult := 1 +
		float64(stats.Charisma)/statPriceDivisor +
		float64(stats.Luck)/statPriceDivisor +
		math.Min(MaxRebirthPriceBonus, 0.1*float64(rebirths)/15)
	mult = math.Max(mult, 0)

	return max(int(float64(base)*mult), r.Min)
}
