package loot

import (
	"fmt"

	"github.com/osse101/Adventure_Go/internal/domain"
)

// RollScale is the nominal upper bound of a chest roll
const RollScale = 400

// MinRollRange keeps luck from collapsing the roll range entirely
const MinRollRange = 10

// tier maps rolls at or below Limit to a rarity
type tier struct {
	Limit  int
	Rarity domain.Rarity
}

// Table is a chest's cumulative rarity table. The last tier catches everything.
type Table []tier

func pct(p float64) int {
	return int(RollScale * p)
}

// ChestTables holds the per-chest cumulative tables
var ChestTables = map[domain.ChestType]Table{
	domain.ChestNormal: {
		{pct(0.05), domain.RarityEpic},
		{pct(0.25), domain.RarityRare},
		{RollScale, domain.RarityNormal},
	},
	domain.ChestRare: {
		{pct(0.05), domain.RarityLegendary},
		{pct(0.15), domain.RarityEpic},
		{pct(0.50), domain.RarityRare},
		{RollScale, domain.RarityNormal},
	},
	domain.ChestEpic: {
		{pct(0.10), domain.RarityLegendary},
		{pct(0.50), domain.RarityEpic},
		{RollScale, domain.RarityRare},
	},
	domain.ChestLegendary: {
		{pct(0.75), domain.RarityLegendary},
		{RollScale, domain.RarityEpic},
	},
	domain.ChestSet: {
		{pct(0.75), domain.RaritySet},
		{RollScale, domain.RarityLegendary},
	},
}

// Lookup maps a roll onto the table
func (t Table) Lookup(roll int) domain.Rarity {
	for _, tr := range t {
		if roll <= tr.Limit {
			return tr.Rarity
		}
	}
	return t[len(t)-1].Rarity
}

// Rarities lists every rarity the table can produce
func (t Table) Rarities() []domain.Rarity {
	out := make([]domain.Rarity, 0, len(t))
	for _, tr := range t {
		out = append(out, tr.Rarity)
	}
	return out
}

// Validate checks limits ascend and the table ends at RollScale
func (t Table) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgEmptyTable)
	}
	prev := 0
	for i, tr := range t {
		if tr.Limit <= prev {
			return fmt.Errorf("%w: %s at %d", domain.ErrInvalidInput, ErrMsgTableNotAscending, i)
		}
		prev = tr.Limit
	}
	if prev != RollScale {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgTableIncomplete)
	}
	return nil
}
