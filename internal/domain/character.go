package domain

import (
	"fmt"
	"strings"
	"time"
)

// ClassName identifies a hero class
type ClassName string

const (
	ClassHero      ClassName = "Hero"
	ClassBerserker ClassName = "Berserker"
	ClassWizard    ClassName = "Wizard"
	ClassBard      ClassName = "Bard"
	ClassCleric    ClassName = "Cleric"
	ClassRanger    ClassName = "Ranger"
	ClassTinkerer  ClassName = "Tinkerer"
)

// Classes lists every selectable class
var Classes = []ClassName{ClassHero, ClassBerserker, ClassWizard, ClassBard, ClassCleric, ClassRanger, ClassTinkerer}

// ParseClass validates a class name, case-insensitively
func ParseClass(s string) (ClassName, error) {
	for _, c := range Classes {
		if strings.EqualFold(string(c), strings.TrimSpace(s)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: unknown class %q", ErrInvalidInput, s)
}

// Pet is a Ranger companion
type Pet struct {
	Name string `json:"name"`
	// Bonus is a reward multiplier, e.g. 1.15 grants +15%
	Bonus float64 `json:"bonus"`
	// Cha is the charisma needed to keep the pet
	Cha int `json:"cha"`
	// Crit is the pet's crit floor (0-100) used by the roll model
	Crit int `json:"crit"`
	// Always makes the pet bonus trigger on every reward
	Always bool `json:"always"`
	// RequiredSet names a set the owner must hold
	RequiredSet string `json:"set,omitempty"`
}

// HeroClass is the class sub-state. Fields are always present; a class
// without a pet simply has Pet == nil.
type HeroClass struct {
	Name          ClassName `json:"name"`
	Ability       bool      `json:"ability"`
	CooldownUntil time.Time `json:"cooldown"`
	Pet           *Pet      `json:"pet,omitempty"`
}

// DefaultHeroClass is assigned to new characters
func DefaultHeroClass() HeroClass {
	return HeroClass{Name: ClassHero}
}

// Is reports class membership
func (h HeroClass) Is(name ClassName) bool {
	return h.Name == name
}

// AbilityActive reports whether the class ability is currently on
func (h HeroClass) AbilityActive() bool {
	return h.Ability
}

// SkillKind is one of the allocatable skills
type SkillKind string

const (
	SkillAttack       SkillKind = "att"
	SkillCharisma     SkillKind = "cha"
	SkillIntelligence SkillKind = "int"
)

// ParseSkill validates a skill name
func ParseSkill(s string) (SkillKind, error) {
	switch SkillKind(strings.ToLower(s)) {
	case SkillAttack, "attack":
		return SkillAttack, nil
	case SkillCharisma, "charisma", "diplomacy":
		return SkillCharisma, nil
	case SkillIntelligence, "intelligence":
		return SkillIntelligence, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSkill, s)
}

// Skills is the allocation of skill points
type Skills struct {
	Attack       int `json:"att"`
	Charisma     int `json:"cha"`
	Intelligence int `json:"int"`
	Pool         int `json:"pool"`
}

// Spent is the total of assigned points
func (s Skills) Spent() int {
	return s.Attack + s.Charisma + s.Intelligence
}

// ChestType is one of the five treasure counters
type ChestType string

const (
	ChestNormal    ChestType = "normal"
	ChestRare      ChestType = "rare"
	ChestEpic      ChestType = "epic"
	ChestLegendary ChestType = "legendary"
	ChestSet       ChestType = "set"
)

// ChestTypes is the treasure vector order
var ChestTypes = []ChestType{ChestNormal, ChestRare, ChestEpic, ChestLegendary, ChestSet}

// ParseChestType validates a chest type string
func ParseChestType(s string) (ChestType, error) {
	for _, c := range ChestTypes {
		if string(c) == strings.ToLower(s) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRarity, s)
}

// Treasure counts unopened chests
type Treasure [5]int

func chestIndex(c ChestType) int {
	for i, t := range ChestTypes {
		if t == c {
			return i
		}
	}
	return -1
}

// Get returns the count for a chest type
func (t Treasure) Get(c ChestType) int {
	i := chestIndex(c)
	if i < 0 {
		return 0
	}
	return t[i]
}

// Add adds n chests of a type
func (t *Treasure) Add(c ChestType, n int) {
	if i := chestIndex(c); i >= 0 {
		t[i] += n
	}
}

// Merge adds another treasure vector
func (t *Treasure) Merge(o Treasure) {
	for i := range t {
		t[i] += o[i]
	}
}

// Total counts all chests
func (t Treasure) Total() int {
	sum := 0
	for _, n := range t {
		sum += n
	}
	return sum
}

// AdventureStats are lifetime counters
type AdventureStats struct {
	Wins    int `json:"wins"`
	Losses  int `json:"loses"`
	Fight   int `json:"fight"`
	Spell   int `json:"spell"`
	Talk    int `json:"talk"`
	Pray    int `json:"pray"`
	Run     int `json:"run"`
	Fumbles int `json:"fumbles"`
}

// WeeklyScore resets every ISO week
type WeeklyScore struct {
	Adventures int `json:"adventures"`
	Rebirths   int `json:"rebirths"`
	Week       int `json:"week"`
	Year       int `json:"year"`
}

// Loadout maps slots to backpack item names
type Loadout map[Slot]string

// Character is the per-user aggregate. Equipped maps each physical slot to
// the item occupying it; a two-handed item appears under both left and right.
type Character struct {
	UserID         string             `json:"user_id"`
	Level          int                `json:"lvl"`
	Experience     int64              `json:"exp"`
	Rebirths       int                `json:"rebirths"`
	Equipped       map[Slot]*Item     `json:"items"`
	Backpack       map[string]*Item   `json:"backpack"`
	Loadouts       map[string]Loadout `json:"loadouts"`
	Skills         Skills             `json:"skill"`
	Class          HeroClass          `json:"heroclass"`
	Treasure       Treasure           `json:"treasure"`
	Adventures     AdventureStats     `json:"adventures"`
	Weekly         WeeklyScore        `json:"weekly_score"`
	LastSkillReset time.Time          `json:"last_skill_reset"`
	SetItems       int                `json:"set_items"`
}

// NewCharacter builds a level 1 character with defaults filled in
func NewCharacter(userID string) *Character {
	return &Character{
		UserID:   userID,
		Level:    1,
		Equipped: make(map[Slot]*Item),
		Backpack: make(map[string]*Item),
		Loadouts: make(map[string]Loadout),
		Class:    DefaultHeroClass(),
	}
}

// EnsureDefaults fills nil maps after decoding
func (c *Character) EnsureDefaults() {
	if c.Equipped == nil {
		c.Equipped = make(map[Slot]*Item)
	}
	if c.Backpack == nil {
		c.Backpack = make(map[string]*Item)
	}
	if c.Loadouts == nil {
		c.Loadouts = make(map[string]Loadout)
	}
	if c.Class.Name == "" {
		c.Class = DefaultHeroClass()
	}
	if c.Level < 1 {
		c.Level = 1
	}
}

// EquippedItems returns each equipped item once, in slot order.
// Two-handed items are returned a single time.
func (c *Character) EquippedItems() []*Item {
	seen := make(map[*Item]bool)
	items := make([]*Item, 0, len(EquipSlots))
	for _, slot := range EquipSlots {
		it := c.Equipped[slot]
		if it == nil || seen[it] {
			continue
		}
		seen[it] = true
		items = append(items, it)
	}
	return items
}

// Clone returns a deep copy, used to snapshot before mutation
func (c *Character) Clone() *Character {
	out := *c
	out.Equipped = make(map[Slot]*Item, len(c.Equipped))
	copied := make(map[*Item]*Item)
	for slot, it := range c.Equipped {
		if it == nil {
			continue
		}
		if cp, ok := copied[it]; ok {
			out.Equipped[slot] = cp
			continue
		}
		cp := it.Clone()
		copied[it] = cp
		out.Equipped[slot] = cp
	}
	out.Backpack = make(map[string]*Item, len(c.Backpack))
	for name, it := range c.Backpack {
		out.Backpack[name] = it.Clone()
	}
	out.Loadouts = make(map[string]Loadout, len(c.Loadouts))
	for name, l := range c.Loadouts {
		cp := make(Loadout, len(l))
		for k, v := range l {
			cp[k] = v
		}
		out.Loadouts[name] = cp
	}
	if c.Class.Pet != nil {
		pet := *c.Class.Pet
		out.Class.Pet = &pet
	}
	return &out
}
