package item

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/osse101/Adventure_Go/internal/content"
	"github.com/osse101/Adventure_Go/internal/domain"
	"github.com/osse101/Adventure_Go/internal/utils"
)

// Generator creates item instances
type Generator interface {
	// Generate builds an item of the given rarity. An empty slot draws one at random.
	Generate(rarity domain.Rarity, slot domain.Slot) (*domain.Item, error)
}

type generator struct {
	catalog *content.Catalog
	rng     *rand.Rand
}

// NewGenerator creates a generator over the content word tables
func NewGenerator(catalog *content.Catalog, rng *rand.Rand) Generator {
	return &generator{catalog: catalog, rng: rng}
}

func (g *generator) Generate(rarity domain.Rarity, slot domain.Slot) (*domain.Item, error) {
	if rarity == domain.RaritySet {
		return g.generateSetPiece(slot)
	}
	if !rarity.AtLeast(domain.RarityNormal) {
		return nil, fmt.Errorf("%s: %w: %s %q", ErrContextGenerateItem, domain.ErrInvalidRarity, ErrMsgNotGeneratable, rarity)
	}

	if slot == "" {
		slot, _ = utils.Pick(g.rng, domain.GenerationSlots)
	}

	words := g.catalog.Items
	var parts []string
	var stats domain.Stats

	if p, ok := prefixChance[rarity]; ok && utils.Chance(g.rng, p) {
		if w, ok := utils.Pick(g.rng, words.Prefixes); ok {
			parts = append(parts, w.Name)
			stats = stats.Add(w.Stats)
		}
	}

	material, ok := utils.Pick(g.rng, words.Materials[rarity])
	if !ok {
		return nil, fmt.Errorf("%s: %s %s", ErrContextGenerateItem, ErrMsgNoWords, rarity)
	}
	parts = append(parts, material.Name)
	stats = stats.Add(material.Stats)

	noun, ok := utils.Pick(g.rng, words.Nouns[slot])
	if !ok {
		return nil, fmt.Errorf("%s: %s %s", ErrContextGenerateItem, ErrMsgNoWords, slot)
	}
	parts = append(parts, noun.Name)
	stats = stats.Add(noun.Stats)

	if p, ok := suffixChance[rarity]; ok && utils.Chance(g.rng, p) {
		if w, ok := utils.Pick(g.rng, words.Suffixes); ok {
			parts = append(parts, w.Name)
			stats = stats.Add(w.Stats)
		}
	}

	it := &domain.Item{
		Name:   strings.Join(parts, " "),
		Slots:  slot.Physical(),
		Rarity: rarity,
		Stats:  stats,
		Owned:  1,
	}
	if rarity.Degrades() {
		it.Degrade = DefaultDegrade
	}
	return it, nil
}

func (g *generator) generateSetPiece(slot domain.Slot) (*domain.Item, error) {
	pieces := g.catalog.SetPieces(slot)
	it, ok := utils.Pick(g.rng, pieces)
	if !ok {
		return nil, fmt.Errorf("%s: %w: %s %q", ErrContextGenerateItem, domain.ErrItemNotFound, ErrMsgNoSetPieces, slot)
	}
	return it, nil
}
