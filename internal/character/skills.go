package character

import (
	"fmt"
	"time"

	"github.com/osse101/Adventure_Go/internal/domain"
)

// AllocateSkill moves n points from the pool into a skill
func AllocateSkill(c *domain.Character, kind domain.SkillKind, n int) error {
	if n < 1 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidAmount, n)
	}
	if c.Skills.Pool < n {
		return fmt.Errorf("%w: have %d, need %d", domain.ErrNotEnoughSkillPoints, c.Skills.Pool, n)
	}
	switch kind {
	case domain.SkillAttack:
		c.Skills.Attack += n
	case domain.SkillCharisma:
		c.Skills.Charisma += n
	case domain.SkillIntelligence:
		c.Skills.Intelligence += n
	default:
		return fmt.Errorf("%w: %q", domain.ErrInvalidSkill, kind)
	}
	c.Skills.Pool -= n
	return nil
}

// ResetSkills returns every assigned point to the pool, at most once per cooldown
func ResetSkills(c *domain.Character, now time.Time, cooldown time.Duration) error {
	if next := c.LastSkillReset.Add(cooldown); !c.LastSkillReset.IsZero() && now.Before(next) {
		return fmt.Errorf("%w: available in %s", domain.ErrSkillCooldown, next.Sub(now).Round(time.Second))
	}
	c.Skills = domain.Skills{Pool: c.Skills.Pool + c.Skills.Spent()}
	c.LastSkillReset = now
	return nil
}
