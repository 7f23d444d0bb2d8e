package item

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/Adventure_Go/internal/domain"
)

// title builds a fresh caser per call; casers are not safe for concurrent use
func title(s string) string {
	return cases.Title(language.English).String(s)
}

// Format returns the decorated display name for an item. The decoration is
// derived from the rarity and is never parsed back.
func Format(it *domain.Item) string {
	switch it.Rarity {
	case domain.RarityRare:
		return "." + strings.ReplaceAll(strings.ToLower(it.Name), " ", "_")
	case domain.RarityEpic:
		return fmt.Sprintf("[%s]", strings.ToLower(it.Name))
	case domain.RarityLegendary:
		return fmt.Sprintf("{Legendary:'%s'}", title(it.Name))
	case domain.RaritySet:
		return fmt.Sprintf("{Set:'%s'}", title(it.Name))
	case domain.RarityForged:
		return fmt.Sprintf("{.:'%s':.}", strings.ToLower(it.Name))
	case domain.RarityEvent:
		return fmt.Sprintf("{Event:'%s'}", it.Name)
	default:
		return strings.ToLower(it.Name)
	}
}

// Describe is a one-line summary with slot, stats and level
func Describe(it *domain.Item) string {
	var slot string
	switch {
	case it.IsTwoHanded():
		slot = string(domain.SlotTwoHanded)
	case len(it.Slots) == 1:
		slot = string(it.Slots[0])
	}
	s := it.Stats
	return fmt.Sprintf("%s | %s | att %d cha %d int %d dex %d luck %d | lvl %d",
		Format(it), slot, s.Attack, s.Charisma, s.Intelligence, s.Dexterity, s.Luck, EquipLevel(it))
}
