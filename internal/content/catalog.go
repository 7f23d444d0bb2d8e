package content

import (
	"sort"
	"strings"

	"github.com/osse101/Adventure_Go/internal/domain"
)

// Word is a name fragment used by item generation, carrying its stat bonus
type Word struct {
	Name  string       `json:"name" validate:"required"`
	Stats domain.Stats `json:"stats"`
}

// ItemWords holds the procedural name tables
type ItemWords struct {
	Prefixes  []Word                   `json:"prefixes" validate:"required,dive"`
	Materials map[domain.Rarity][]Word `json:"materials" validate:"required,dive,required,dive"`
	Nouns     map[domain.Slot][]Word   `json:"nouns" validate:"required,dive,required,dive"`
	Suffixes  []Word                   `json:"suffixes" validate:"required,dive"`
}

// Catalog is the read-only static content, loaded once at startup
type Catalog struct {
	Monsters   map[string]domain.Monster       `json:"monsters" validate:"required,dive"`
	Attributes []domain.Attribute              `json:"attributes" validate:"required,dive"`
	Items      ItemWords                       `json:"items"`
	Sets       map[string]domain.SetDefinition `json:"sets" validate:"dive"`
	Pets       map[string]domain.Pet           `json:"pets"`

	pieceIndex map[string]setPieceRef
}

type setPieceRef struct {
	set   string
	piece domain.SetPiece
}

func (c *Catalog) buildIndex() {
	c.pieceIndex = make(map[string]setPieceRef)
	for setName, def := range c.Sets {
		for _, p := range def.Pieces {
			c.pieceIndex[strings.ToLower(p.Name)] = setPieceRef{set: setName, piece: p}
		}
	}
}

// Monster looks up a monster template by name
func (c *Catalog) Monster(name string) (domain.Monster, bool) {
	m, ok := c.Monsters[name]
	return m, ok
}

// MonsterList returns the templates sorted by name
func (c *Catalog) MonsterList() []domain.Monster {
	names := make([]string, 0, len(c.Monsters))
	for name := range c.Monsters {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]domain.Monster, 0, len(names))
	for _, name := range names {
		out = append(out, c.Monsters[name])
	}
	return out
}

// Set returns the canonical definition of a set
func (c *Catalog) Set(name string) (domain.SetDefinition, bool) {
	s, ok := c.Sets[name]
	return s, ok
}

// SetPiece resolves a set item by name into a fresh item.
// The returned item always reflects the canonical table.
func (c *Catalog) SetPiece(name string) (*domain.Item, bool) {
	if c.pieceIndex == nil {
		c.buildIndex()
	}
	ref, ok := c.pieceIndex[strings.ToLower(name)]
	if !ok {
		return nil, false
	}
	def := c.Sets[ref.set]
	return &domain.Item{
		Name:   ref.piece.Name,
		Slots:  append([]domain.Slot(nil), ref.piece.Slots...),
		Rarity: domain.RaritySet,
		Stats:  ref.piece.Stats,
		Owned:  1,
		Set:    ref.set,
		Parts:  def.Parts,
	}, true
}

// SetPieces returns every set item, optionally filtered to those occupying slot
func (c *Catalog) SetPieces(slot domain.Slot) []*domain.Item {
	var out []*domain.Item
	for _, name := range c.sortedSetNames() {
		def := c.Sets[name]
		for _, p := range def.Pieces {
			if slot != "" && !pieceMatchesSlot(p, slot) {
				continue
			}
			it, _ := c.SetPiece(p.Name)
			out = append(out, it)
		}
	}
	return out
}

// Pet looks up a pet by name
func (c *Catalog) Pet(name string) (domain.Pet, bool) {
	p, ok := c.Pets[name]
	return p, ok
}

func pieceMatchesSlot(p domain.SetPiece, slot domain.Slot) bool {
	if slot == domain.SlotTwoHanded {
		return len(p.Slots) == 2
	}
	return len(p.Slots) == 1 && p.Slots[0] == slot
}

func (c *Catalog) sortedSetNames() []string {
	names := make([]string, 0, len(c.Sets))
	for name := range c.Sets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
