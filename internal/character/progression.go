package character

import (
	"math"

	"github.com/osse101/Adventure_Go/internal/domain"
)

// RebirthStatBonus is the flat amount every stat gains from rebirths.
// The per-step increment is re-evaluated as the count walks down to zero.
func RebirthStatBonus(rebirths int) int {
	if rebirths <= 0 {
		return 0
	}
	bonus := rebirths / 10 * 5
	for r := rebirths; r > 0; r-- {
		switch {
		case r >= 30:
			bonus += 3
		case r >= 20:
			bonus += 5
		case r >= 10:
			bonus += 1
		default:
			bonus += 2
		}
	}
	return bonus
}

// MaxLevel is the level cap for a rebirth count
func MaxLevel(rebirths int) int {
	r := max(rebirths, 0)
	lvl := BaseMaxLevel
	if r > 0 {
		lvl = RebirthBaseMaxLevel
	}
	for ; r > 0 && lvl < MaxLevelCap; r-- {
		switch {
		case r >= 20:
			lvl += 10
		case r >= 10:
			lvl += 5
		default:
			lvl += 10
		}
	}
	return min(lvl, MaxLevelCap)
}

// LevelFor converts experience into a level, capped by the rebirth count
func LevelFor(xp int64, rebirths int) int {
	raw := int(math.Floor(math.Pow(float64(max(xp, 0)), 1/levelExponent)))
	return min(max(raw, 1), MaxLevel(rebirths))
}

// ExperienceFor is the experience at which level begins
func ExperienceFor(level int) int64 {
	return int64(math.Pow(float64(max(level, 0)), levelExponent))
}

func skillIncrement(level int) float64 {
	switch {
	case level >= 300:
		return 1
	case level >= 200:
		return 5
	case level >= 100:
		return 1
	default:
		return 0.5
	}
}

// SkillPointsAt is the cumulative skill point curve value at a level
func SkillPointsAt(level, rebirths int) float64 {
	pts := float64(SkillPointsPerRebirth * rebirths)
	for l := 1; l <= level; l++ {
		pts += skillIncrement(l)
	}
	return pts
}

// LevelChange describes the effect of gaining experience
type LevelChange struct {
	OldLevel     int
	NewLevel     int
	PointsGained int
	AtMaxLevel   bool
}

// LeveledUp reports whether at least one level was gained
func (lc LevelChange) LeveledUp() bool {
	return lc.NewLevel > lc.OldLevel
}

// GainExperience adds xp and reconciles level and skill pool.
// Points already assigned are never touched.
func GainExperience(c *domain.Character, xp int64) LevelChange {
	change := LevelChange{OldLevel: c.Level, NewLevel: c.Level}

	c.Experience = max(c.Experience+xp, 0)
	newLevel := LevelFor(c.Experience, c.Rebirths)
	if newLevel > c.Level {
		gained := math.Floor(SkillPointsAt(newLevel, c.Rebirths)) - math.Floor(SkillPointsAt(c.Level, c.Rebirths))
		change.PointsGained = int(gained)
		c.Skills.Pool += change.PointsGained
		c.Level = newLevel
		change.NewLevel = newLevel
	}
	change.AtMaxLevel = c.Level >= MaxLevel(c.Rebirths)
	return change
}

// CanRebirth reports rebirth eligibility
func CanRebirth(c *domain.Character) bool {
	return c.Level >= MaxLevel(c.Rebirths)
}
