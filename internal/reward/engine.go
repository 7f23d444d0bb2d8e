package reward

import (
	"math"
	"math/rand"
	"time"

	"github.com/osse101/Adventure_Go/internal/character"
	"github.com/osse101/Adventure_Go/internal/combat"
	"github.com/osse101/Adventure_Go/internal/domain"
	"github.com/osse101/Adventure_Go/internal/utils"
)

// Participant is a loaded, locked character taking part in a resolution
type Participant struct {
	Character *domain.Character
	Sheet     character.Sheet
	Action    domain.Action
	// Balance is the ledger balance read before settling
	Balance int64
}

// Grant is what settling did to one participant
type Grant struct {
	UserID  string
	Action  domain.Action
	Fumbled bool
	Crit    bool

	XP       int64
	Currency int64
	// PetXP and PetBonus are already included in XP and Currency
	PetXP    int64
	PetBonus int64
	Penalty  int64
	Chests   domain.Treasure

	Level      character.LevelChange
	CanRebirth bool
}

// Engine turns a combat outcome into experience, currency, chests and counters.
// It mutates characters in place; persistence and ledger writes belong to the caller.
type Engine struct {
	rng *rand.Rand
	now func() time.Time
}

// NewEngine creates a reward engine
func NewEngine(rng *rand.Rand) *Engine {
	return &Engine{rng: rng, now: time.Now}
}

// Settle applies an outcome to every participant and returns one grant per
// participant in the order given
func (e *Engine) Settle(out combat.Outcome, order []string, parts map[string]*Participant) []Grant {
	rewarded := make(map[string]bool, len(out.Rewarded))
	for _, id := range out.Rewarded {
		rewarded[id] = true
	}
	base := BasePerHead(out.RewardAmount, len(out.Rewarded))
	weekday := WeekdayBonus[e.now().Weekday()]

	grants := make([]Grant, 0, len(order))
	for _, id := range order {
		p, ok := parts[id]
		if !ok {
			continue
		}
		c := p.Character
		g := Grant{
			UserID:  id,
			Action:  p.Action,
			Fumbled: out.Fumbled[id],
			Crit:    out.Crits[id],
		}

		if out.Success && rewarded[id] {
			e.credit(&g, p, base, weekday)
			g.Chests = out.Chests[id]
			c.Treasure.Merge(g.Chests)
			g.Level = character.GainExperience(c, g.XP)
		} else if !out.Success {
			g.Penalty = combat.Penalty(p.Balance, p.Sheet.Total.Dexterity)
		}

		countAdventure(c, p.Action, out.Success, g.Fumbled)
		consumeAbility(c, p.Action)
		g.CanRebirth = character.CanRebirth(c)
		grants = append(grants, g)
	}
	return grants
}

// BasePerHead splits the reward pool, never below one
func BasePerHead(amount float64, rewarded int) float64 {
	if rewarded <= 0 {
		return 0
	}
	return math.Max(amount/float64(rewarded), minRewardPerHead)
}

// Experience is the xp a rewarded participant earns before pet bonuses
func Experience(base float64, rebirths int, sheet character.Sheet, weekday float64) float64 {
	intel := math.Min(xpIntCap, float64(sheet.Total.Intelligence)/xpIntDivisor)
	xp := base * (1 + xpRebirthFactor*float64(rebirths) + xpIntFactor*intel)
	return xp * (sheet.Bonus.XPMult + weekday)
}

// Currency is the coin a rewarded participant earns before pet bonuses
func Currency(base float64, sheet character.Sheet, weekday float64) float64 {
	cp := base * (1 + float64(sheet.Total.Luck)/cpLuckDivisor)
	return cp * (sheet.Bonus.CPMult + weekday)
}

func (e *Engine) credit(g *Grant, p *Participant, base, weekday float64) {
	xp := Experience(base, p.Character.Rebirths, p.Sheet, weekday)
	cp := Currency(base, p.Sheet, weekday)

	if pet := p.Character.Class.Pet; pet != nil && p.Character.Class.Is(domain.ClassRanger) && pet.Bonus > 1 {
		if pet.Always || utils.RandomInt(e.rng, 1, petOdds) == 1 {
			g.PetXP = int64(utils.Round(xp * (pet.Bonus - 1)))
			g.PetBonus = int64(utils.Round(cp * (pet.Bonus - 1)))
		}
	}

	g.XP = max(int64(utils.Round(xp)), 0) + g.PetXP
	g.Currency = max(int64(utils.Round(cp)), 0) + g.PetBonus
}

func countAdventure(c *domain.Character, action domain.Action, success, fumbled bool) {
	a := &c.Adventures
	if success {
		a.Wins++
	} else {
		a.Losses++
	}
	switch action {
	case domain.ActionFight:
		a.Fight++
	case domain.ActionMagic:
		a.Spell++
	case domain.ActionTalk:
		a.Talk++
	case domain.ActionPray:
		a.Pray++
	case domain.ActionRun:
		a.Run++
	}
	if fumbled {
		a.Fumbles++
	}
	c.Weekly.Adventures++
}

// abilityAction is the roster each class ability applies to
var abilityAction = map[domain.ClassName]domain.Action{
	domain.ClassBerserker: domain.ActionFight,
	domain.ClassWizard:    domain.ActionMagic,
	domain.ClassBard:      domain.ActionTalk,
	domain.ClassCleric:    domain.ActionPray,
}

// consumeAbility clears an ability that was spent on this adventure
func consumeAbility(c *domain.Character, action domain.Action) {
	if !c.Class.Ability {
		return
	}
	if a, ok := abilityAction[c.Class.Name]; ok && a == action {
		c.Class.Ability = false
	}
}
