package character

import (
	"encoding/json"
	"fmt"

	"github.com/osse101/Adventure_Go/internal/domain"
)

// SetPieceSource resolves canonical set pieces by name
type SetPieceSource interface {
	SetPiece(name string) (*domain.Item, bool)
}

// Codec converts characters to stored JSON records. Set items are refreshed
// from the canonical table in both directions so they never drift.
type Codec struct {
	sets SetPieceSource
}

// NewCodec creates a codec backed by the set table
func NewCodec(sets SetPieceSource) *Codec {
	return &Codec{sets: sets}
}

// Encode serialises a snapshot of c
func (cd *Codec) Encode(c *domain.Character) ([]byte, error) {
	cp := c.Clone()
	cd.sanitize(cp)
	data, err := json.Marshal(cp)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextEncodeCharacter, err)
	}
	return data, nil
}

// Decode parses a stored record. Undecodable records yield ErrCorruptCharacter.
func (cd *Codec) Decode(data []byte) (*domain.Character, error) {
	var c domain.Character
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", ErrContextDecodeCharacter, domain.ErrCorruptCharacter, err)
	}
	if c.UserID == "" {
		return nil, fmt.Errorf("%s: %w: missing user id", ErrContextDecodeCharacter, domain.ErrCorruptCharacter)
	}
	c.EnsureDefaults()
	relinkTwoHanded(&c)
	cd.sanitize(&c)
	return &c, nil
}

func (cd *Codec) sanitize(c *domain.Character) {
	seen := make(map[*domain.Item]bool)
	for _, it := range c.Equipped {
		if it != nil && !seen[it] {
			seen[it] = true
			cd.refreshItem(it)
		}
	}
	for _, it := range c.Backpack {
		cd.refreshItem(it)
	}
}

func (cd *Codec) refreshItem(it *domain.Item) {
	if it.Owned < 1 {
		it.Owned = 1
	}
	if !it.Rarity.Degrades() {
		it.Degrade = 0
	}
	if it.Rarity != domain.RarityEvent {
		it.Level = 0
	}
	if it.Rarity != domain.RaritySet {
		it.Set = ""
		it.Parts = 0
		return
	}
	if cd.sets == nil {
		return
	}
	if canonical, ok := cd.sets.SetPiece(it.Name); ok {
		it.Stats = canonical.Stats
		it.Slots = canonical.Slots
		it.Set = canonical.Set
		it.Parts = canonical.Parts
	}
}

// relinkTwoHanded restores the shared pointer a two-handed item has in
// memory; JSON decoding produces two separate copies.
func relinkTwoHanded(c *domain.Character) {
	left, right := c.Equipped[domain.SlotLeft], c.Equipped[domain.SlotRight]
	switch {
	case left != nil && left.IsTwoHanded():
		c.Equipped[domain.SlotRight] = left
	case right != nil && right.IsTwoHanded():
		c.Equipped[domain.SlotLeft] = right
	}
	for slot, it := range c.Equipped {
		if it == nil {
			delete(c.Equipped, slot)
		}
	}
}
