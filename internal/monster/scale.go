package monster

import (
	"math/rand"

	"github.com/osse101/Adventure_Go/internal/domain"
	"github.com/osse101/Adventure_Go/internal/utils"
)

// bucket is one row of the win-percent scaling table. Defense percentages
// are signed: positive makes the monster harder.
type bucket struct {
	MinWin           float64
	HPMin, HPMax     float64
	DiplMin, DiplMax float64
	DefMin, DefMax   int
}

var buckets = []bucket{
	{0.90, 2.0, 3.0, 2.0, 3.0, 25, 30},
	{0.75, 1.5, 2.0, 1.5, 2.0, 20, 25},
	{0.50, 1.0, 1.5, 1.0, 1.5, 15, 20},
	{0.35, 0.9, 1.0, 0.9, 1.0, -20, -15},
	{0.15, 0.8, 0.9, 0.8, 0.9, -25, -20},
	{0, 0.6, 0.8, 0.8, 0.9, -30, -25},
}

func bucketFor(winPercent float64) bucket {
	for _, b := range buckets {
		if winPercent >= b.MinWin {
			return b
		}
	}
	return buckets[len(buckets)-1]
}

// Scale applies win-rate scaling and the attribute to a template
func Scale(rng *rand.Rand, m domain.Monster, attr domain.Attribute, winPercent, statMult float64) domain.ScaledMonster {
	b := bucketFor(winPercent)

	hp := utils.RandomInt(rng, int(float64(m.HP)*b.HPMin), int(float64(m.HP)*b.HPMax))
	dipl := utils.RandomInt(rng, int(float64(m.Dipl)*b.DiplMin), int(float64(m.Dipl)*b.DiplMax))
	defPct := float64(utils.RandomInt(rng, b.DefMin, b.DefMax)) / 100

	if attr.HPMult <= 0 {
		attr.HPMult = 1
	}
	if attr.DiplMult <= 0 {
		attr.DiplMult = 1
	}
	if statMult <= 0 {
		statMult = 1
	}

	return domain.ScaledMonster{
		Template:       m,
		Attribute:      attr,
		HP:             max(hp, 1),
		Dipl:           max(dipl, 1),
		PDef:           m.PDef * (1 + defPct),
		MDef:           m.MDef * (1 + defPct),
		StatMultiplier: statMult,
	}
}

// Empower decides whether a high-rebirth starter meets a stronger version
func Empower(rng *rand.Rand, rebirths int) (string, float64) {
	switch {
	case rebirths >= TranscendedRebirths && utils.Chance(rng, EmpoweredChance):
		return TitleTranscended, TranscendedStatMult
	case rebirths >= AscendedRebirths && utils.Chance(rng, EmpoweredChance):
		return TitleAscended, AscendedStatMult
	}
	return "", 1
}
