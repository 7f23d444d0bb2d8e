package character

import (
	"sort"

	"github.com/osse101/Adventure_Go/internal/domain"
)

// RebirthResult summarises a rebirth transition
type RebirthResult struct {
	Rebirths  int             `json:"rebirths"`
	Treasure  domain.Treasure `json:"treasure"`
	Kept      []string        `json:"kept"`
	Destroyed []string        `json:"destroyed"`
}

// RebirthTreasure is the chest payout for reaching a rebirth count
func RebirthTreasure(rebirths int) domain.Treasure {
	var t domain.Treasure
	if rebirths > 0 {
		t.Add(domain.ChestNormal, rebirths)
	}
	if rebirths >= 5 {
		t.Add(domain.ChestRare, rebirths/5)
	}
	if rebirths >= 10 {
		t.Add(domain.ChestEpic, rebirths/10)
	}
	if rebirths >= 15 {
		t.Add(domain.ChestLegendary, rebirths/15)
	}
	return t
}

// Rebirth resets progression and filters gear. A non-nil explicit sets the
// rebirth count directly instead of incrementing it.
func Rebirth(c *domain.Character, explicit *int) RebirthResult {
	if explicit != nil {
		c.Rebirths = max(*explicit, 0)
	} else {
		c.Rebirths++
	}

	keepSetsEquipped := c.Rebirths >= KeepEquippedSetRebirths
	for _, it := range c.EquippedItems() {
		if keepSetsEquipped && it.Rarity == domain.RaritySet {
			continue
		}
		clearItem(c, it)
		AddToBackpack(c, it)
	}

	names := make([]string, 0, len(c.Backpack))
	for name := range c.Backpack {
		names = append(names, name)
	}
	sort.Strings(names)

	res := RebirthResult{Rebirths: c.Rebirths}
	forged := 0
	for _, name := range names {
		it := c.Backpack[name]
		keep := false
		switch it.Rarity {
		case domain.RaritySet:
			keep = true
		case domain.RarityForged:
			if forged < MaxKeptForged {
				forged++
				keep = true
				it.Owned = 1
			}
		case domain.RarityLegendary, domain.RarityEvent:
			if it.Degrade == domain.NoDegrade {
				keep = true
				break
			}
			it.Degrade--
			keep = it.Degrade >= 0
		}

		if keep {
			res.Kept = append(res.Kept, name)
		} else {
			res.Destroyed = append(res.Destroyed, name)
			delete(c.Backpack, name)
		}
	}

	res.Treasure = RebirthTreasure(c.Rebirths)
	c.Treasure.Merge(res.Treasure)

	c.Level = 1
	c.Experience = 0
	c.Skills = domain.Skills{}
	c.Weekly.Rebirths++

	return res
}
