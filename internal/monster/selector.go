package monster

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/osse101/Adventure_Go/internal/content"
	"github.com/osse101/Adventure_Go/internal/difficulty"
	"github.com/osse101/Adventure_Go/internal/domain"
	"github.com/osse101/Adventure_Go/internal/logger"
	"github.com/osse101/Adventure_Go/internal/utils"
)

// Challenger describes the character a monster is picked against
type Challenger struct {
	Stats    domain.Stats
	Rebirths int
}

// Selector picks and scales monsters for new encounters
type Selector interface {
	// Choose draws a monster suited to the group's recent results
	Choose(ctx context.Context, groupID string, ch Challenger) (domain.ScaledMonster, error)
	// Named scales a specific template, bypassing the draw
	Named(ctx context.Context, groupID, name string, ch Challenger) (domain.ScaledMonster, error)
}

type selector struct {
	catalog *content.Catalog
	engine  difficulty.Engine
	rng     *rand.Rand
}

// NewSelector creates a selector backed by the content tables and difficulty engine
func NewSelector(catalog *content.Catalog, engine difficulty.Engine, rng *rand.Rand) Selector {
	return &selector{catalog: catalog, engine: engine, rng: rng}
}

func (s *selector) Choose(ctx context.Context, groupID string, ch Challenger) (domain.ScaledMonster, error) {
	if s.catalog == nil || len(s.catalog.Monsters) == 0 {
		return domain.ScaledMonster{}, domain.ErrContentNotLoaded
	}
	band := s.engine.StatRange(groupID)

	pool, matched := Pool(s.rng, band, ch.Stats, s.catalog.MonsterList())
	if !matched {
		logger.FromContext(ctx).Debug(LogMsgFallbackPool, "groupID", groupID, "statType", band.StatType)
	}
	m, ok := utils.Pick(s.rng, pool)
	if !ok {
		return domain.ScaledMonster{}, fmt.Errorf("%s: %w", ErrContextSelectMonster, domain.ErrNoEligibleMonsters)
	}

	scaled := s.scale(m, band.WinPercent, ch.Rebirths)
	logger.FromContext(ctx).Info(LogMsgMonsterSelected,
		"groupID", groupID, "monster", scaled.DisplayName(), "hp", scaled.HP, "dipl", scaled.Dipl, "winPercent", band.WinPercent)
	return scaled, nil
}

func (s *selector) Named(ctx context.Context, groupID, name string, ch Challenger) (domain.ScaledMonster, error) {
	m, ok := s.catalog.Monster(name)
	if !ok {
		return domain.ScaledMonster{}, fmt.Errorf("%w: %q", domain.ErrMonsterNotFound, name)
	}
	band := s.engine.StatRange(groupID)

	return s.scale(m, band.WinPercent, ch.Rebirths), nil
}

func (s *selector) scale(m domain.Monster, winPercent float64, rebirths int) domain.ScaledMonster {
	attr, _ := utils.Pick(s.rng, s.catalog.Attributes)
	title, mult := Empower(s.rng, rebirths)
	scaled := Scale(s.rng, m, attr, winPercent, mult)
	scaled.Title = title
	return scaled
}

// Appropriate reports whether a monster fits the band, or the challenger's
// strongest stat when the band is inactive
func Appropriate(m domain.Monster, band difficulty.Range, stats domain.Stats) bool {
	if band.Active() {
		v := float64(m.HP)
		if band.StatType == difficulty.StatDipl {
			v = float64(m.Dipl)
		}
		return v >= band.MinStat*bandLowerSlack && v <= band.MaxStat*bandUpperSlack
	}

	strongest := stats.MainStat()
	target := m.HP
	if stats.Charisma > stats.Attack && stats.Charisma > stats.Intelligence {
		target = m.Dipl
	}
	return target <= strongest*fallbackStatMult
}

// Pool builds the weighted draw pool. Trash monsters appear a random 1 to 15
// times, bosses and minibosses once. When nothing qualifies every monster
// appears three times and matched is false.
func Pool(rng *rand.Rand, band difficulty.Range, stats domain.Stats, monsters []domain.Monster) (pool []domain.Monster, matched bool) {
	for _, m := range monsters {
		if !Appropriate(m, band, stats) {
			continue
		}
		n := 1
		if !m.IsSpecial() {
			n = utils.RandomInt(rng, 1, trashRepeatMax)
		}
		for i := 0; i < n; i++ {
			pool = append(pool, m)
		}
	}
	if len(pool) > 0 {
		return pool, true
	}

	for i := 0; i < fallbackRepeat; i++ {
		pool = append(pool, monsters...)
	}
	return pool, false
}
