package item

import (
	"github.com/osse101/Adventure_Go/internal/domain"
	"github.com/osse101/Adventure_Go/internal/utils"
)

// EquipLevel is the minimum character level needed to equip the item.
// Forged items are always level 1; event items honour an explicit level.
func EquipLevel(it *domain.Item) int {
	switch it.Rarity {
	case domain.RarityForged:
		return 1
	case domain.RarityEvent:
		if it.Level > 0 {
			return it.Level
		}
	}
	idx := min(it.Rarity.Index(), maxRarityLevelIndex)
	return max(utils.Round(float64(it.Stats.MainStat()*(idx+rarityLevelOffset))), 1)
}

// LoadoutLevel is the equip level used when equipping from a loadout.
// Rebirths shave levels off everything except event items.
func LoadoutLevel(it *domain.Item, rebirths int) int {
	lvl := EquipLevel(it)
	if it.Rarity == domain.RarityEvent {
		return lvl
	}
	reduction := min(max(rebirths/2-1, 0), 50)
	return max(lvl-reduction, 1)
}
