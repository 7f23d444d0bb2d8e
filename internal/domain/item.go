package domain

import (
	"fmt"
	"strings"
)

// Rarity is the power tier of an item
type Rarity string

const (
	RarityNormal    Rarity = "normal"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
	RaritySet       Rarity = "set"
	RarityForged    Rarity = "forged"
	RarityEvent     Rarity = "event"
)

// rarityIndexOrder is the ordering used by the equip level formula.
// Forged is deliberately absent.
var rarityIndexOrder = []Rarity{
	RarityNormal,
	RarityRare,
	RarityEpic,
	RarityLegendary,
	RaritySet,
	RarityEvent,
}

// AllRarities lists every valid rarity
var AllRarities = []Rarity{
	RarityNormal,
	RarityRare,
	RarityEpic,
	RarityLegendary,
	RaritySet,
	RarityForged,
	RarityEvent,
}

// ParseRarity validates a rarity string
func ParseRarity(s string) (Rarity, error) {
	r := Rarity(strings.ToLower(strings.TrimSpace(s)))
	for _, valid := range AllRarities {
		if r == valid {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRarity, s)
}

// Index returns the position of the rarity in the equip level ordering.
// Unknown rarities fall back to 1, same as a rare item.
func (r Rarity) Index() int {
	for i, v := range rarityIndexOrder {
		if v == r {
			return i
		}
	}
	return 1
}

// AtLeast compares the linear tiers normal < rare < epic < legendary.
// Special rarities never satisfy a linear comparison.
func (r Rarity) AtLeast(other Rarity) bool {
	linear := map[Rarity]int{RarityNormal: 0, RarityRare: 1, RarityEpic: 2, RarityLegendary: 3}
	a, okA := linear[r]
	b, okB := linear[other]
	return okA && okB && a >= b
}

// Degrades reports whether the rarity carries a degrade counter
func (r Rarity) Degrades() bool {
	return r == RarityLegendary || r == RarityEvent
}

// Slot is a physical equipment slot
type Slot string

const (
	SlotHead   Slot = "head"
	SlotNeck   Slot = "neck"
	SlotChest  Slot = "chest"
	SlotGloves Slot = "gloves"
	SlotBelt   Slot = "belt"
	SlotLegs   Slot = "legs"
	SlotBoots  Slot = "boots"
	SlotLeft   Slot = "left"
	SlotRight  Slot = "right"
	SlotRing   Slot = "ring"
	SlotCharm  Slot = "charm"

	// SlotTwoHanded is virtual: it occupies left and right
	SlotTwoHanded Slot = "two handed"
)

// EquipSlots are the 11 physical slots in display order
var EquipSlots = []Slot{
	SlotHead, SlotNeck, SlotChest, SlotGloves, SlotBelt, SlotLegs,
	SlotBoots, SlotLeft, SlotRight, SlotRing, SlotCharm,
}

// GenerationSlots are the draw targets for random generation.
// Two handed is a valid draw alongside the single-hand slots.
var GenerationSlots = []Slot{
	SlotHead, SlotNeck, SlotChest, SlotGloves, SlotBelt, SlotLegs,
	SlotBoots, SlotLeft, SlotRight, SlotTwoHanded, SlotRing, SlotCharm,
}

// ParseSlot validates a slot string
func ParseSlot(s string) (Slot, error) {
	slot := Slot(strings.ToLower(strings.TrimSpace(s)))
	if slot == "twohanded" || slot == "two-handed" {
		return SlotTwoHanded, nil
	}
	for _, valid := range GenerationSlots {
		if slot == valid {
			return slot, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSlot, s)
}

// Physical expands a logical slot into the physical slots it occupies
func (s Slot) Physical() []Slot {
	if s == SlotTwoHanded {
		return []Slot{SlotLeft, SlotRight}
	}
	return []Slot{s}
}

// Stats is the five-stat block shared by items, characters and set bonuses
type Stats struct {
	Attack       int `json:"att"`
	Charisma     int `json:"cha"`
	Intelligence int `json:"int"`
	Dexterity    int `json:"dex"`
	Luck         int `json:"luck"`
}

// Add returns the element-wise sum
func (s Stats) Add(o Stats) Stats {
	return Stats{
		Attack:       s.Attack + o.Attack,
		Charisma:     s.Charisma + o.Charisma,
		Intelligence: s.Intelligence + o.Intelligence,
		Dexterity:    s.Dexterity + o.Dexterity,
		Luck:         s.Luck + o.Luck,
	}
}

// Scale multiplies every stat by n
func (s Stats) Scale(n int) Stats {
	return Stats{
		Attack:       s.Attack * n,
		Charisma:     s.Charisma * n,
		Intelligence: s.Intelligence * n,
		Dexterity:    s.Dexterity * n,
		Luck:         s.Luck * n,
	}
}

// Clamp caps every stat at max
func (s Stats) Clamp(max int) Stats {
	return Stats{
		Attack:       min(s.Attack, max),
		Charisma:     min(s.Charisma, max),
		Intelligence: min(s.Intelligence, max),
		Dexterity:    min(s.Dexterity, max),
		Luck:         min(s.Luck, max),
	}
}

// MainStat is the highest of attack, intelligence and charisma, minimum 1
func (s Stats) MainStat() int {
	return max(s.Attack, s.Intelligence, s.Charisma, 1)
}

// NoDegrade marks a legendary or event item as permanent
const NoDegrade = -1

// Item is an equipment instance. Rarity is explicit; display decoration is
// derived from it and never parsed back.
type Item struct {
	Name   string `json:"name"`
	Slots  []Slot `json:"slot"`
	Rarity Rarity `json:"rarity"`
	Stats  Stats  `json:"stats"`
	Owned  int    `json:"owned"`

	// Degrade is only meaningful for legendary and event items
	Degrade int `json:"degrade,omitempty"`

	// Set and Parts are only meaningful for set items
	Set   string `json:"set,omitempty"`
	Parts int    `json:"parts,omitempty"`

	// Level overrides the computed equip level for event items; 0 means unset
	Level int `json:"lvl,omitempty"`
}

// IsTwoHanded reports whether the item occupies both hands
func (i *Item) IsTwoHanded() bool {
	return len(i.Slots) == 2
}

// Clone returns a deep copy
func (i *Item) Clone() *Item {
	if i == nil {
		return nil
	}
	c := *i
	c.Slots = append([]Slot(nil), i.Slots...)
	return &c
}
