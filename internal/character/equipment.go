package character

import (
	"fmt"

	"github.com/osse101/Adventure_Go/internal/domain"
	"github.com/osse101/Adventure_Go/internal/item"
)

// LevelRule returns the level a character needs to equip an item
type LevelRule func(it *domain.Item) int

// Equip moves one copy of a backpack item into its slots. Whatever occupied
// those slots goes back to the backpack and is returned.
func Equip(c *domain.Character, name string, rule LevelRule) (*domain.Item, []*domain.Item, error) {
	if rule == nil {
		rule = item.EquipLevel
	}

	it, ok := FindInBackpack(c, name)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", domain.ErrItemNotFound, name)
	}
	if len(it.Slots) == 0 {
		return nil, nil, fmt.Errorf("%w: %q has no slot", domain.ErrInvalidSlot, name)
	}
	if need := rule(it); c.Level < need {
		return nil, nil, fmt.Errorf("%w: %q needs level %d", domain.ErrLevelTooLow, it.Name, need)
	}

	taken, err := TakeFromBackpack(c, it.Name, 1)
	if err != nil {
		return nil, nil, err
	}

	var replaced []*domain.Item
	for _, slot := range taken.Slots {
		if old := c.Equipped[slot]; old != nil {
			clearItem(c, old)
			AddToBackpack(c, old)
			replaced = append(replaced, old)
		}
	}
	for _, slot := range taken.Slots {
		c.Equipped[slot] = taken
	}
	return taken, replaced, nil
}

// Unequip moves the item in slot back to the backpack. The two handed slot
// is accepted as an alias for either hand.
func Unequip(c *domain.Character, slot domain.Slot) (*domain.Item, error) {
	if slot == domain.SlotTwoHanded {
		slot = domain.SlotLeft
	}
	it := c.Equipped[slot]
	if it == nil {
		return nil, fmt.Errorf("%w: nothing equipped in %s", domain.ErrItemNotFound, slot)
	}
	clearItem(c, it)
	AddToBackpack(c, it)
	return it, nil
}

// UnequipAll empties every slot into the backpack
func UnequipAll(c *domain.Character) []*domain.Item {
	items := c.EquippedItems()
	for _, it := range items {
		clearItem(c, it)
		AddToBackpack(c, it)
	}
	return items
}

// clearItem removes an item from every slot it occupies
func clearItem(c *domain.Character, it *domain.Item) {
	for slot, occupant := range c.Equipped {
		if occupant == it {
			delete(c.Equipped, slot)
		}
	}
}

// HasEquipped reports whether an item with the given name is worn
func HasEquipped(c *domain.Character, name string) bool {
	for _, it := range c.EquippedItems() {
		if it.Name == name {
			return true
		}
	}
	return false
}

// HasEquippedSetPiece reports whether any piece of a set is worn
func HasEquippedSetPiece(c *domain.Character, set string) bool {
	for _, it := range c.EquippedItems() {
		if it.Set == set {
			return true
		}
	}
	return false
}
