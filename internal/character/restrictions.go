package character

import (
	"time"

	"github.com/osse101/Adventure_Go/internal/domain"
)

// PetAllowed checks a Ranger pet against the owner's sheet
func PetAllowed(pet *domain.Pet, sheet Sheet) bool {
	if pet == nil {
		return true
	}
	need := sheet.Total.Charisma + sheet.Total.Intelligence/3 + sheet.Stats.Luck/2
	if pet.Cha > need {
		return false
	}
	if pet.RequiredSet != "" && !sheet.HasSet(pet.RequiredSet) {
		return false
	}
	return true
}

// Adjustments lists what Normalize changed
type Adjustments struct {
	LevelCapped  bool
	SkillsReset  bool
	PetRemoved   string
	WeeklyRolled bool
}

// Changed reports whether anything was modified
func (a Adjustments) Changed() bool {
	return a.LevelCapped || a.SkillsReset || a.PetRemoved != "" || a.WeeklyRolled
}

// Normalize enforces derived invariants on a freshly loaded character:
// level within the cap, the capped skill baseline, pet requirements and
// weekly counter rollover.
func Normalize(c *domain.Character, sets SetTable, now time.Time) Adjustments {
	var adj Adjustments

	if maxLevel := MaxLevel(c.Rebirths); c.Level > maxLevel {
		c.Level = maxLevel
		adj.LevelCapped = true
	}

	sheet := Compute(c, sets)
	if sheet.Capped && c.Skills != (domain.Skills{}) {
		c.Skills = domain.Skills{}
		adj.SkillsReset = true
		sheet = Compute(c, sets)
	}

	if pet := c.Class.Pet; pet != nil && (!c.Class.Is(domain.ClassRanger) || !PetAllowed(pet, sheet)) {
		adj.PetRemoved = pet.Name
		c.Class.Pet = nil
	}

	year, week := now.ISOWeek()
	if c.Weekly.Year != year || c.Weekly.Week != week {
		adj.WeeklyRolled = c.Weekly.Year != 0
		c.Weekly = domain.WeeklyScore{Year: year, Week: week}
	}

	return adj
}
