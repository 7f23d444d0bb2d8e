package combat

import (
	"strings"

	"github.com/osse101/Adventure_Go/internal/domain"
	"github.com/osse101/Adventure_Go/internal/utils"
)

// actionSpec parameterises the shared roll for fight, magic and talk
type actionSpec struct {
	action domain.Action
	stat   func(domain.Stats) int
	class  domain.ClassName
	// defense divides the contribution, floored at minDefense, when defended
	defense  float64
	defended bool
	// fumbleSave lets an active class ability turn a fumble into a weak hit
	fumbleSave bool
}

func fightSpec(m domain.ScaledMonster) actionSpec {
	return actionSpec{
		action:     domain.ActionFight,
		stat:       func(s domain.Stats) int { return s.Attack },
		class:      domain.ClassBerserker,
		defense:    m.PDef,
		defended:   true,
		fumbleSave: true,
	}
}

func magicSpec(m domain.ScaledMonster) actionSpec {
	return actionSpec{
		action:     domain.ActionMagic,
		stat:       func(s domain.Stats) int { return s.Intelligence },
		class:      domain.ClassWizard,
		defense:    m.MDef,
		defended:   true,
		fumbleSave: true,
	}
}

func talkSpec() actionSpec {
	return actionSpec{
		action: domain.ActionTalk,
		stat:   func(s domain.Stats) int { return s.Charisma },
		class:  domain.ClassBard,
	}
}

// attempt is one participant's contribution to an action
type attempt struct {
	Value   float64
	Roll    int
	MaxRoll int
	Fumbled bool
	Crit    bool
	Saved   bool
}

// MaxRoll is the top of the die for a rebirth count
func MaxRoll(rebirths int) int {
	if rebirths >= veteranRebirths {
		return veteranMaxRoll
	}
	return baseMaxRoll
}

// Modifier raises the bottom of the die
func Modifier(stats domain.Stats, stat, maxRoll int) int {
	mod := utils.Round((float64(max(stats.Dexterity, stats.Luck)) + float64(stat)/20) / 10)
	return utils.Clamp(mod, 0, min(maxRoll-maxRollHeadroom, maxModifier))
}

func rebirthScale(rebirths int) float64 {
	return 1 + float64(max(rebirths, 0))/rebirthScaleDivisor
}

// roll draws the crit-scaled die, with a Ranger pet able to push it up
func (r *Resolver) roll(f Fighter, stat int) (int, int) {
	maxRoll := MaxRoll(f.Rebirths)
	mod := Modifier(f.Stats, stat, maxRoll)
	roll := utils.RandomInt(r.rng, 1+mod, maxRoll)

	if pet := f.pet(); pet != nil {
		p := utils.RandomInt(r.rng, utils.Clamp(pet.Crit, 0, petCritMax), petCritMax)
		switch {
		case p == petCritMax:
			roll = maxRoll
		case p >= petCritThreshold:
			roll = utils.RandomInt(r.rng, max(roll, maxRoll-maxRollHeadroom), maxRoll)
		}
	}
	return roll, maxRoll
}

// attempt resolves one roll against an action spec
func (r *Resolver) attempt(spec actionSpec, f Fighter) attempt {
	stat := spec.stat(f.Stats)
	roll, maxRoll := r.roll(f, stat)
	res := attempt{Roll: roll, MaxRoll: maxRoll}

	def := 1.0
	if spec.defended {
		def = max(spec.defense, minDefense)
	}
	classMatch := f.Class.Is(spec.class)
	abilityOn := classMatch && f.Class.AbilityActive()

	switch {
	case roll == fumbleRoll:
		if spec.fumbleSave && abilityOn {
			res.Saved = true
			res.Value = float64(max(1, int(float64(stat)/2/def)))
			return res
		}
		res.Fumbled = true
	case roll == maxRoll || classMatch:
		bonus := utils.RandomInt(r.rng, bonusMin, bonusMax)
		if abilityOn {
			bonus += utils.RandomInt(r.rng, abilityBonusMin, abilityBonusMax)
		}
		scaled := float64(bonus) * rebirthScale(f.Rebirths)
		if roll == maxRoll {
			res.Crit = true
			scaled += float64(utils.RandomInt(r.rng, critBonusMin, critBonusMax))
		}
		res.Value = (float64(roll+stat) + scaled) / def
	default:
		res.Value = float64(roll+stat) / def
	}
	return res
}

func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
