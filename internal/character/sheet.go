package character

import (
	"github.com/osse101/Adventure_Go/internal/domain"
)

// Sheet is the derived view of a character. Nothing here is persisted.
type Sheet struct {
	// Gear is the raw equipment sum plus the rebirth bonus, before multipliers
	Gear domain.Stats `json:"gear"`
	// Stats is gear after the set multiplier and flat set bonus
	Stats domain.Stats `json:"stats"`
	// Total adds allocated skill points to attack, charisma and intelligence
	Total    domain.Stats       `json:"total"`
	Bonus    domain.ActiveBonus `json:"bonus"`
	Sets     []string           `json:"sets,omitempty"`
	MaxLevel int                `json:"max_level"`
	// Capped is set for a character at its cap that has never rebirthed
	Capped bool `json:"capped"`
}

// HasSet reports whether a set bonus is active
func (s Sheet) HasSet(name string) bool {
	for _, n := range s.Sets {
		if n == name {
			return true
		}
	}
	return false
}

// TotalStats is the sum of all five totals
func (s Sheet) TotalStats() int {
	t := s.Total
	return t.Attack + t.Charisma + t.Intelligence + t.Dexterity + t.Luck
}

// EquipmentSum adds every occupied physical slot, so two-handed items count twice
func EquipmentSum(c *domain.Character) domain.Stats {
	var sum domain.Stats
	for _, slot := range domain.EquipSlots {
		if it := c.Equipped[slot]; it != nil {
			sum = sum.Add(it.Stats)
		}
	}
	return sum
}

// Compute derives the sheet for a character
func Compute(c *domain.Character, sets SetTable) Sheet {
	bonus, active := ResolveSetBonus(c, sets)

	rb := RebirthStatBonus(c.Rebirths)
	gear := EquipmentSum(c).Add(domain.Stats{
		Attack: rb, Charisma: rb, Intelligence: rb, Dexterity: rb, Luck: rb,
	})

	stats := domain.Stats{
		Attack:       int(float64(gear.Attack)*bonus.StatMult) + bonus.Stats.Attack,
		Charisma:     int(float64(gear.Charisma)*bonus.StatMult) + bonus.Stats.Charisma,
		Intelligence: int(float64(gear.Intelligence)*bonus.StatMult) + bonus.Stats.Intelligence,
		Dexterity:    int(float64(gear.Dexterity)*bonus.StatMult) + bonus.Stats.Dexterity,
		Luck:         int(float64(gear.Luck)*bonus.StatMult) + bonus.Stats.Luck,
	}

	maxLevel := MaxLevel(c.Rebirths)
	capped := c.Level >= maxLevel && c.Rebirths < 1

	total := stats
	if capped {
		stats = stats.Clamp(CappedStatLimit)
		total = stats
	} else {
		total.Attack += c.Skills.Attack
		total.Charisma += c.Skills.Charisma
		total.Intelligence += c.Skills.Intelligence
	}

	return Sheet{
		Gear:     gear,
		Stats:    stats,
		Total:    total,
		Bonus:    bonus,
		Sets:     active,
		MaxLevel: maxLevel,
		Capped:   capped,
	}
}
