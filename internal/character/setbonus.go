package character

import (
	"sort"

	"github.com/osse101/Adventure_Go/internal/domain"
)

// SetTable resolves canonical set definitions
type SetTable interface {
	Set(name string) (domain.SetDefinition, bool)
}

// ResolveSetBonus sums every active bonus tier of the equipped sets.
// Only equipped pieces count and each distinct piece counts once.
func ResolveSetBonus(c *domain.Character, sets SetTable) (domain.ActiveBonus, []string) {
	bonus := domain.NeutralBonus()

	owned := make(map[string]map[string]bool)
	required := make(map[string]int)
	for _, it := range c.EquippedItems() {
		if it.Set == "" {
			continue
		}
		if owned[it.Set] == nil {
			owned[it.Set] = make(map[string]bool)
			required[it.Set] = it.Parts
		}
		owned[it.Set][it.Name] = true
	}

	var active []string
	for setName, pieces := range owned {
		def, ok := sets.Set(setName)
		if ok {
			required[setName] = def.Parts
		}
		count := len(pieces)
		if count < required[setName] {
			continue
		}
		active = append(active, setName)
		for _, tier := range def.Bonuses {
			if tier.Parts > count {
				continue
			}
			bonus.Stats = bonus.Stats.Add(tier.Stats)
			bonus.StatMult += multDelta(tier.StatMult)
			bonus.XPMult += multDelta(tier.XPMult)
			bonus.CPMult += multDelta(tier.CPMult)
		}
	}
	sort.Strings(active)

	bonus.StatMult = max(bonus.StatMult, MinStatMult)
	bonus.XPMult = max(bonus.XPMult, MinXPMult)
	bonus.CPMult = max(bonus.CPMult, MinCPMult)
	return bonus, active
}

// multDelta turns a tier multiplier into its contribution. Absent and
// negative values contribute nothing.
func multDelta(v *float64) float64 {
	if v == nil || *v < 0 {
		return 0
	}
	return *v - 1
}
