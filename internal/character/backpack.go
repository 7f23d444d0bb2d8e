package character

import (
	"fmt"
	"sort"
	"strings"

	"github.com/osse101/Adventure_Go/internal/domain"
	"github.com/osse101/Adventure_Go/internal/item"
)

// rarityRank orders the backpack listing
var rarityRank = map[domain.Rarity]int{
	domain.RarityEvent:     0,
	domain.RarityForged:    1,
	domain.RaritySet:       2,
	domain.RarityLegendary: 3,
	domain.RarityEpic:      4,
	domain.RarityRare:      5,
	domain.RarityNormal:    6,
}

// AddToBackpack stacks an item onto the entry of the same name
func AddToBackpack(c *domain.Character, it *domain.Item) {
	if it == nil {
		return
	}
	n := max(it.Owned, 1)
	if existing, ok := c.Backpack[it.Name]; ok {
		existing.Owned += n
		return
	}
	cp := it.Clone()
	cp.Owned = n
	c.Backpack[cp.Name] = cp
}

// FindInBackpack looks an item up by exact then case-insensitive name
func FindInBackpack(c *domain.Character, name string) (*domain.Item, bool) {
	if it, ok := c.Backpack[name]; ok {
		return it, true
	}
	for key, it := range c.Backpack {
		if strings.EqualFold(key, name) {
			return it, true
		}
	}
	return nil, false
}

// TakeFromBackpack removes n copies and returns them as one stack
func TakeFromBackpack(c *domain.Character, name string, n int) (*domain.Item, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidAmount, n)
	}
	it, ok := FindInBackpack(c, name)
	if !ok || it.Owned < n {
		return nil, fmt.Errorf("%w: %q", domain.ErrItemNotFound, name)
	}

	out := it.Clone()
	out.Owned = n
	it.Owned -= n
	if it.Owned <= 0 {
		delete(c.Backpack, it.Name)
	}
	return out, nil
}

// BackpackFilter narrows a backpack listing. Zero values match everything.
type BackpackFilter struct {
	Slot    domain.Slot
	Rarity  domain.Rarity
	MinStat int
}

func (f BackpackFilter) matches(it *domain.Item) bool {
	if f.Rarity != "" && it.Rarity != f.Rarity {
		return false
	}
	if f.Slot != "" {
		if f.Slot == domain.SlotTwoHanded {
			if !it.IsTwoHanded() {
				return false
			}
		} else if it.IsTwoHanded() || len(it.Slots) == 0 || it.Slots[0] != f.Slot {
			return false
		}
	}
	return it.Stats.MainStat() >= f.MinStat
}

// SortedBackpack lists the backpack by rarity rank, then equip level
// descending, then name.
func SortedBackpack(c *domain.Character, f BackpackFilter) []*domain.Item {
	out := make([]*domain.Item, 0, len(c.Backpack))
	for _, it := range c.Backpack {
		if f.matches(it) {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		ri, rj := rank(out[i].Rarity), rank(out[j].Rarity)
		if ri != rj {
			return ri < rj
		}
		li, lj := item.EquipLevel(out[i]), item.EquipLevel(out[j])
		if li != lj {
			return li > lj
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func rank(r domain.Rarity) int {
	if v, ok := rarityRank[r]; ok {
		return v
	}
	return len(rarityRank)
}
