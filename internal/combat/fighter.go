package combat

import (
	"github.com/osse101/Adventure_Go/internal/character"
	"github.com/osse101/Adventure_Go/internal/domain"
)

// Fighter is the slice of a character that combat reads
type Fighter struct {
	UserID   string
	Stats    domain.Stats
	Rebirths int
	Class    domain.HeroClass
	// Equipped lists worn item names
	Equipped []string
	// Sets lists sets with at least one piece worn
	Sets []string
}

// NewFighter builds a fighter from a character and its computed sheet
func NewFighter(c *domain.Character, sheet character.Sheet) Fighter {
	f := Fighter{
		UserID:   c.UserID,
		Stats:    sheet.Total,
		Rebirths: c.Rebirths,
		Class:    c.Class,
	}
	seen := make(map[string]bool)
	for _, it := range c.EquippedItems() {
		f.Equipped = append(f.Equipped, it.Name)
		if it.Set != "" && !seen[it.Set] {
			seen[it.Set] = true
			f.Sets = append(f.Sets, it.Set)
		}
	}
	return f
}

func (f Fighter) wears(name string) bool {
	for _, n := range f.Equipped {
		if equalFold(n, name) {
			return true
		}
	}
	return false
}

func (f Fighter) hasSetPiece(set string) bool {
	for _, s := range f.Sets {
		if s == set {
			return true
		}
	}
	return false
}

func (f Fighter) pet() *domain.Pet {
	if !f.Class.Is(domain.ClassRanger) {
		return nil
	}
	return f.Class.Pet
}
