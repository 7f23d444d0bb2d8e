package character

import (
	"fmt"
	"strings"

	"github.com/osse101/Adventure_Go/internal/domain"
	"github.com/osse101/Adventure_Go/internal/item"
)

// SaveLoadout snapshots the equipped slots under name
func SaveLoadout(c *domain.Character, name string) (domain.Loadout, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgEmptyLoadoutName)
	}
	l := make(domain.Loadout, len(c.Equipped))
	for slot, it := range c.Equipped {
		if it != nil {
			l[slot] = it.Name
		}
	}
	c.Loadouts[name] = l
	return l, nil
}

// DeleteLoadout removes a saved loadout
func DeleteLoadout(c *domain.Character, name string) error {
	if _, ok := c.Loadouts[name]; !ok {
		return fmt.Errorf("%w: %q", domain.ErrLoadoutNotFound, name)
	}
	delete(c.Loadouts, name)
	return nil
}

// EquipLoadout strips the character and equips a saved loadout. Rebirths
// lower the level requirement of non-event items. Items that are missing or
// still too high level are skipped and reported.
func EquipLoadout(c *domain.Character, name string) ([]string, error) {
	l, ok := c.Loadouts[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrLoadoutNotFound, name)
	}

	UnequipAll(c)

	rule := func(it *domain.Item) int { return item.LoadoutLevel(it, c.Rebirths) }
	var skipped []string
	done := make(map[string]bool)
	for _, slot := range domain.EquipSlots {
		itemName, ok := l[slot]
		if !ok || done[itemName] {
			continue
		}
		done[itemName] = true
		if _, _, err := Equip(c, itemName, rule); err != nil {
			skipped = append(skipped, itemName)
		}
	}
	return skipped, nil
}
