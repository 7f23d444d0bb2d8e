package loot

import (
	"fmt"
	"math/rand"

	"github.com/osse101/Adventure_Go/internal/domain"
	"github.com/osse101/Adventure_Go/internal/item"
	"github.com/osse101/Adventure_Go/internal/utils"
)

// Roller opens treasure chests
type Roller interface {
	// RollChest picks a rarity from the chest table and generates an item of it
	RollChest(chest domain.ChestType, luck, rebirths int) (*domain.Item, error)
	// RollRarity only picks the rarity
	RollRarity(chest domain.ChestType, luck, rebirths int) (domain.Rarity, error)
}

type roller struct {
	gen item.Generator
	rng *rand.Rand
}

// NewRoller creates a chest roller
func NewRoller(gen item.Generator, rng *rand.Rand) Roller {
	return &roller{gen: gen, rng: rng}
}

// RollRange is the upper bound of the roll; luck and rebirths shrink it
func RollRange(luck, rebirths int) int {
	return max(RollScale-luck-rebirths/2, MinRollRange)
}

func (r *roller) RollRarity(chest domain.ChestType, luck, rebirths int) (domain.Rarity, error) {
	table, ok := ChestTables[chest]
	if !ok {
		return "", fmt.Errorf("%s: %w: %q", ErrContextRollChest, domain.ErrInvalidRarity, chest)
	}
	roll := utils.RandomInt(r.rng, 1, RollRange(luck, rebirths))
	return table.Lookup(roll), nil
}

func (r *roller) RollChest(chest domain.ChestType, luck, rebirths int) (*domain.Item, error) {
	rarity, err := r.RollRarity(chest, luck, rebirths)
	if err != nil {
		return nil, err
	}
	it, err := r.gen.Generate(rarity, "")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextRollChest, err)
	}
	return it, nil
}
