package character

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/osse101/Adventure_Go/internal/concurrency"
	"github.com/osse101/Adventure_Go/internal/content"
	"github.com/osse101/Adventure_Go/internal/domain"
	"github.com/osse101/Adventure_Go/internal/event"
	"github.com/osse101/Adventure_Go/internal/item"
	"github.com/osse101/Adventure_Go/internal/logger"
	"github.com/osse101/Adventure_Go/internal/loot"
	"github.com/osse101/Adventure_Go/internal/repository"
)

// Profile is a character together with everything derived from it
type Profile struct {
	Character   *domain.Character `json:"character"`
	Sheet       Sheet             `json:"sheet"`
	Balance     int64             `json:"balance"`
	NextLevelXP int64             `json:"next_level_xp"`
	CanRebirth  bool              `json:"can_rebirth"`
}

// Service defines the interface for character operations. Every mutating
// call takes the user's lock without waiting and fails with
// domain.ErrUserBusy when it is held.
type Service interface {
	Get(ctx context.Context, userID string) (*Profile, error)
	Backpack(ctx context.Context, userID string, filter BackpackFilter) ([]*domain.Item, error)

	Equip(ctx context.Context, userID, itemName string) (*Profile, error)
	Unequip(ctx context.Context, userID string, slot domain.Slot) (*Profile, error)

	SaveLoadout(ctx context.Context, userID, name string) (domain.Loadout, error)
	EquipLoadout(ctx context.Context, userID, name string) ([]string, error)
	DeleteLoadout(ctx context.Context, userID, name string) error

	AllocateSkill(ctx context.Context, userID string, kind domain.SkillKind, n int) (domain.Skills, error)
	ResetSkills(ctx context.Context, userID string) (domain.Skills, error)

	SetClass(ctx context.Context, userID string, class domain.ClassName) (*Profile, error)
	UseAbility(ctx context.Context, userID string) (*Profile, error)
	AdoptPet(ctx context.Context, userID, petName string) (*Profile, error)

	Rebirth(ctx context.Context, userID string) (*RebirthResult, error)
	OpenChests(ctx context.Context, userID string, chest domain.ChestType, n int) ([]*domain.Item, error)
	Sell(ctx context.Context, userID, itemName string, n int) (int64, error)
}

// Config tunes the character service
type Config struct {
	SkillResetCooldown time.Duration
}

type service struct {
	repo      repository.Character
	ledger    repository.Ledger
	locks     *concurrency.LockManager
	catalog   *content.Catalog
	roller    loot.Roller
	publisher event.Publisher
	rng       *rand.Rand
	now       func() time.Time
	cfg       Config
}

// NewService creates a new character service
func NewService(
	repo repository.Character,
	ledger repository.Ledger,
	locks *concurrency.LockManager,
	catalog *content.Catalog,
	roller loot.Roller,
	publisher event.Publisher,
	rng *rand.Rand,
	cfg Config,
) Service {
	if cfg.SkillResetCooldown <= 0 {
		cfg.SkillResetCooldown = DefaultSkillResetCooldown
	}
	return &service{
		repo:      repo,
		ledger:    ledger,
		locks:     locks,
		catalog:   catalog,
		roller:    roller,
		publisher: publisher,
		rng:       rng,
		now:       time.Now,
		cfg:       cfg,
	}
}

// LoadOrCreate fetches a character, creating a fresh one when none exists,
// and normalises it. Callers must already hold the user's lock if they
// intend to save the result.
func LoadOrCreate(ctx context.Context, repo repository.Character, sets SetTable, userID string, now time.Time) (*domain.Character, error) {
	log := logger.FromContext(ctx)

	c, err := repo.Load(ctx, userID)
	switch {
	case errors.Is(err, domain.ErrCharacterNotFound):
		c = domain.NewCharacter(userID)
		log.Info(LogMsgCharacterCreated, "userID", userID)
	case err != nil:
		log.Error(ErrContextLoadCharacter, "userID", userID, "error", err)
		return nil, fmt.Errorf("%s: %w", ErrContextLoadCharacter, err)
	}

	adj := Normalize(c, sets, now)
	if adj.PetRemoved != "" {
		log.Info(LogMsgPetRemoved, "userID", userID, "pet", adj.PetRemoved)
	}
	if adj.LevelCapped {
		log.Debug(LogMsgLevelCapped, "userID", userID, "level", c.Level)
	}
	if adj.WeeklyRolled {
		log.Debug(LogMsgWeeklyReset, "userID", userID)
	}
	return c, nil
}

func (s *service) load(ctx context.Context, userID string) (*domain.Character, error) {
	return LoadOrCreate(ctx, s.repo, s.catalog, userID, s.now())
}

// mutate runs fn on the user's character under the user's lock and persists
// the whole snapshot only if fn succeeds.
func (s *service) mutate(ctx context.Context, userID string, fn func(c *domain.Character) error) (*domain.Character, error) {
	unlock, err := s.locks.TryLock(userID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	c, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := fn(c); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, c); err != nil {
		logger.FromContext(ctx).Error(ErrContextSaveCharacter, "userID", userID, "error", err)
		return nil, fmt.Errorf("%s: %w", ErrContextSaveCharacter, err)
	}
	return c, nil
}

func (s *service) profile(ctx context.Context, c *domain.Character) (*Profile, error) {
	bal, err := s.ledger.Balance(ctx, c.UserID)
	if err != nil {
		return nil, err
	}
	return &Profile{
		Character:   c,
		Sheet:       Compute(c, s.catalog),
		Balance:     bal,
		NextLevelXP: ExperienceFor(c.Level + 1),
		CanRebirth:  CanRebirth(c),
	}, nil
}

func (s *service) Get(ctx context.Context, userID string) (*Profile, error) {
	c, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.profile(ctx, c)
}

func (s *service) Backpack(ctx context.Context, userID string, filter BackpackFilter) ([]*domain.Item, error) {
	c, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return SortedBackpack(c, filter), nil
}

func (s *service) Equip(ctx context.Context, userID, itemName string) (*Profile, error) {
	c, err := s.mutate(ctx, userID, func(c *domain.Character) error {
		_, _, err := Equip(c, itemName, item.EquipLevel)
		return err
	})
	if err != nil {
		return nil, err
	}
	return s.profile(ctx, c)
}

func (s *service) Unequip(ctx context.Context, userID string, slot domain.Slot) (*Profile, error) {
	c, err := s.mutate(ctx, userID, func(c *domain.Character) error {
		_, err := Unequip(c, slot)
		return err
	})
	if err != nil {
		return nil, err
	}
	return s.profile(ctx, c)
}

func (s *service) SaveLoadout(ctx context.Context, userID, name string) (domain.Loadout, error) {
	var saved domain.Loadout
	_, err := s.mutate(ctx, userID, func(c *domain.Character) error {
		l, err := SaveLoadout(c, name)
		saved = l
		return err
	})
	return saved, err
}

func (s *service) EquipLoadout(ctx context.Context, userID, name string) ([]string, error) {
	var skipped []string
	_, err := s.mutate(ctx, userID, func(c *domain.Character) error {
		var err error
		skipped, err = EquipLoadout(c, name)
		return err
	})
	return skipped, err
}

func (s *service) DeleteLoadout(ctx context.Context, userID, name string) error {
	_, err := s.mutate(ctx, userID, func(c *domain.Character) error {
		return DeleteLoadout(c, name)
	})
	return err
}

func (s *service) AllocateSkill(ctx context.Context, userID string, kind domain.SkillKind, n int) (domain.Skills, error) {
	c, err := s.mutate(ctx, userID, func(c *domain.Character) error {
		if Compute(c, s.catalog).Capped {
			return fmt.Errorf("%w: rebirth to assign skill points", domain.ErrNotEnoughSkillPoints)
		}
		return AllocateSkill(c, kind, n)
	})
	if err != nil {
		return domain.Skills{}, err
	}
	return c.Skills, nil
}

func (s *service) ResetSkills(ctx context.Context, userID string) (domain.Skills, error) {
	c, err := s.mutate(ctx, userID, func(c *domain.Character) error {
		return ResetSkills(c, s.now(), s.cfg.SkillResetCooldown)
	})
	if err != nil {
		return domain.Skills{}, err
	}
	return c.Skills, nil
}

func (s *service) SetClass(ctx context.Context, userID string, class domain.ClassName) (*Profile, error) {
	c, err := s.mutate(ctx, userID, func(c *domain.Character) error {
		if class != domain.ClassHero && c.Level < ClassMinLevel {
			return fmt.Errorf("%w: classes unlock at level %d", domain.ErrLevelTooLow, ClassMinLevel)
		}
		if c.Class.Is(class) {
			return nil
		}
		c.Class = domain.HeroClass{Name: class, CooldownUntil: c.Class.CooldownUntil}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.profile(ctx, c)
}

func (s *service) UseAbility(ctx context.Context, userID string) (*Profile, error) {
	c, err := s.mutate(ctx, userID, func(c *domain.Character) error {
		if c.Class.Is(domain.ClassHero) {
			return domain.ErrWrongClass
		}
		now := s.now()
		if now.Before(c.Class.CooldownUntil) {
			return fmt.Errorf("%w: available in %s", domain.ErrAbilityCooldown, c.Class.CooldownUntil.Sub(now).Round(time.Second))
		}
		c.Class.Ability = true
		c.Class.CooldownUntil = now.Add(AbilityCooldown)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.profile(ctx, c)
}

func (s *service) AdoptPet(ctx context.Context, userID, petName string) (*Profile, error) {
	c, err := s.mutate(ctx, userID, func(c *domain.Character) error {
		if !c.Class.Is(domain.ClassRanger) {
			return domain.ErrWrongClass
		}
		pet, ok := s.catalog.Pet(petName)
		if !ok {
			return fmt.Errorf("%w: %q", domain.ErrPetNotFound, petName)
		}
		if !PetAllowed(&pet, Compute(c, s.catalog)) {
			return fmt.Errorf("%w: %q", domain.ErrPetRequirements, petName)
		}
		c.Class.Pet = &pet
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.profile(ctx, c)
}

func (s *service) Rebirth(ctx context.Context, userID string) (*RebirthResult, error) {
	var res RebirthResult
	_, err := s.mutate(ctx, userID, func(c *domain.Character) error {
		if !CanRebirth(c) {
			return fmt.Errorf("%w: level %d of %d", domain.ErrNotMaxLevel, c.Level, MaxLevel(c.Rebirths))
		}
		res = Rebirth(c, nil)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgRebirth, "userID", userID, "rebirths", res.Rebirths, "destroyed", len(res.Destroyed))
	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, event.NewRebirthEvent(userID, res.Rebirths, res.Destroyed)); err != nil {
			logger.FromContext(ctx).Warn(LogMsgPublishEventFailed, "userID", userID, "error", err)
		}
	}
	return &res, nil
}

func (s *service) OpenChests(ctx context.Context, userID string, chest domain.ChestType, n int) ([]*domain.Item, error) {
	var opened []*domain.Item
	_, err := s.mutate(ctx, userID, func(c *domain.Character) error {
		if n < 1 {
			return fmt.Errorf("%w: %d", domain.ErrInvalidAmount, n)
		}
		if have := c.Treasure.Get(chest); have < n {
			return fmt.Errorf("%w: have %d %s", domain.ErrNoChests, have, chest)
		}

		luck := Compute(c, s.catalog).Stats.Luck
		for i := 0; i < n; i++ {
			it, err := s.roller.RollChest(chest, luck, c.Rebirths)
			if err != nil {
				return fmt.Errorf("%s: %w", ErrContextOpenChests, err)
			}
			AddToBackpack(c, it)
			opened = append(opened, it)
		}
		c.Treasure.Add(chest, -n)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgChestsOpened, "userID", userID, "chest", chest, "count", n)
	return opened, nil
}

func (s *service) Sell(ctx context.Context, userID, itemName string, n int) (int64, error) {
	unlock, err := s.locks.TryLock(userID)
	if err != nil {
		return 0, err
	}
	defer unlock()

	c, err := s.load(ctx, userID)
	if err != nil {
		return 0, err
	}

	sold, err := TakeFromBackpack(c, itemName, n)
	if err != nil {
		return 0, err
	}

	sheet := Compute(c, s.catalog)
	var total int64
	for i := 0; i < n; i++ {
		total += int64(item.SellPrice(s.rng, sold, sheet.Total, c.Rebirths))
	}

	if err := s.repo.Save(ctx, c); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrContextSellItem, err)
	}

	if _, err := s.ledger.Deposit(ctx, userID, total); err != nil {
		// Put the items back so the user is not left empty-handed
		AddToBackpack(c, sold)
		if saveErr := s.repo.Save(ctx, c); saveErr != nil {
			logger.FromContext(ctx).Error(ErrContextSaveCharacter, "userID", userID, "error", saveErr)
		}
		return 0, fmt.Errorf("%s: %w", ErrContextSellItem, err)
	}

	logger.FromContext(ctx).Info(LogMsgItemSold, "userID", userID, "item", sold.Name, "quantity", n, "price", total)
	return total, nil
}
