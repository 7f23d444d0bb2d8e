package combat

import (
	"github.com/osse101/Adventure_Go/internal/domain"
	"github.com/osse101/Adventure_Go/internal/utils"
)

// chests rolls the loot drop for every rewarded participant
func (r *Resolver) chests(out Outcome, boss, miniboss bool) map[string]domain.Treasure {
	drops := make(map[string]domain.Treasure, len(out.Rewarded))
	crit := out.AnyCrit()
	for _, id := range out.Rewarded {
		drops[id] = r.chestDrop(out.ClearedAmount, crit, boss, miniboss)
	}
	return drops
}

func (r *Resolver) chestDrop(amount float64, crit, boss, miniboss bool) domain.Treasure {
	var t domain.Treasure
	if crit {
		t.Add(domain.ChestNormal, 1)
	}
	d := utils.RandomInt(r.rng, 1, chestDie)
	switch {
	case boss:
		t.Add(domain.ChestLegendary, 1)
		if d == chestDie {
			t.Add(domain.ChestSet, 1)
		}
	case miniboss:
		t.Add(domain.ChestEpic, 1)
	case amount >= highTierAmount:
		t.Add(domain.ChestRare, 1)
		if d >= 8 {
			t.Add(domain.ChestEpic, 1)
		}
	case amount >= midTierAmount:
		if d >= 3 {
			t.Add(domain.ChestRare, 1)
		} else {
			t.Add(domain.ChestNormal, 1)
		}
	case amount >= lowTierAmount:
		if d >= 5 {
			t.Add(domain.ChestNormal, 1)
		}
	default:
		if d == chestDie {
			t.Add(domain.ChestNormal, 1)
		}
	}
	return t
}
