package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/Adventure_Go/internal/character"
	"github.com/osse101/Adventure_Go/internal/combat"
	"github.com/osse101/Adventure_Go/internal/concurrency"
	"github.com/osse101/Adventure_Go/internal/config"
	"github.com/osse101/Adventure_Go/internal/content"
	"github.com/osse101/Adventure_Go/internal/difficulty"
	"github.com/osse101/Adventure_Go/internal/event"
	"github.com/osse101/Adventure_Go/internal/item"
	"github.com/osse101/Adventure_Go/internal/loot"
	"github.com/osse101/Adventure_Go/internal/monster"
	"github.com/osse101/Adventure_Go/internal/reward"
	"github.com/osse101/Adventure_Go/internal/session"
	"github.com/osse101/Adventure_Go/internal/trade"
	"github.com/osse101/Adventure_Go/internal/utils"
)

// LoadCatalog reads the content catalog from dir, or the embedded default
// when dir is empty
func LoadCatalog(dir string) (*content.Catalog, error) {
	catalog, err := content.Load(dir)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadContent, err)
	}
	slog.Info(LogMsgContentLoaded,
		"dir", dir,
		"monsters", len(catalog.Monsters),
		"sets", len(catalog.Sets),
		"pets", len(catalog.Pets))
	return catalog, nil
}

// Services holds the application services built on top of the repositories
type Services struct {
	Sessions   session.Service
	Characters character.Service
	Trades     trade.Service
}

// InitializeServices wires the domain services. Every random draw in the
// process comes from one shared, goroutine-safe generator seeded by RNGSeed.
func InitializeServices(cfg *config.Config, catalog *content.Catalog, repos *Repositories, publisher event.Publisher) *Services {
	rng := utils.NewRand(cfg.RNGSeed)
	locks := concurrency.NewLockManager()

	roller := loot.NewRoller(item.NewGenerator(catalog, rng), rng)
	diff := difficulty.NewEngine(difficulty.HistoryCapacity)

	characters := character.NewService(repos.Characters, repos.Ledger, locks, catalog, roller, publisher, rng, character.Config{
		SkillResetCooldown: cfg.SkillResetCooldown,
	})

	sessions := session.NewService(session.Deps{
		Repo:       repos.Characters,
		Ledger:     repos.Ledger,
		Locks:      locks,
		Catalog:    catalog,
		Selector:   monster.NewSelector(catalog, diff, rng),
		Difficulty: diff,
		Resolver:   combat.NewResolver(rng),
		Rewards:    reward.NewEngine(rng),
		Publisher:  publisher,
	}, session.Config{
		EntryCost:          cfg.EntryCost,
		RestrictConcurrent: cfg.RestrictAdventures,
		TTL:                cfg.SessionTTL,
		ResolveLockTimeout: cfg.ResolveLockTimeout,
	})

	trades := trade.NewService(repos.Characters, repos.Ledger, locks, catalog)

	return &Services{
		Sessions:   sessions,
		Characters: characters,
		Trades:     trades,
	}
}
