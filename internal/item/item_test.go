package item

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Adventure_Go/internal/content"
	"github.com/osse101/Adventure_Go/internal/domain"
	"github.com/osse101/Adventure_Go/internal/utils"
)

func loadCatalog(t *testing.T) *content.Catalog {
	t.Helper()
	cat, err := content.Load("")
	require.NoError(t, err)
	return cat
}

func TestEquipLevel(t *testing.T) {
	tests := []struct {
		name     string
		item     domain.Item
		expected int
	}{
		{"rare with max stat 10", domain.Item{Rarity: domain.RarityRare, Stats: domain.Stats{Attack: 10}}, 40},
		{"normal uses index 0", domain.Item{Rarity: domain.RarityNormal, Stats: domain.Stats{Charisma: 2}}, 6},
		{"empty stats count as 1", domain.Item{Rarity: domain.RarityNormal}, 3},
		{"legendary", domain.Item{Rarity: domain.RarityLegendary, Stats: domain.Stats{Intelligence: 7}}, 42},
		{"set sits after legendary", domain.Item{Rarity: domain.RaritySet, Stats: domain.Stats{Attack: 10}}, 70},
		{"event without override", domain.Item{Rarity: domain.RarityEvent, Stats: domain.Stats{Attack: 2}}, 16},
		{"event with override", domain.Item{Rarity: domain.RarityEvent, Stats: domain.Stats{Attack: 2}, Level: 99}, 99},
		{"forged is always 1", domain.Item{Rarity: domain.RarityForged, Stats: domain.Stats{Attack: 500}}, 1},
		{"dex and luck are ignored", domain.Item{Rarity: domain.RarityEpic, Stats: domain.Stats{Dexterity: 50, Luck: 50}}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EquipLevel(&tt.item))
		})
	}
}

func TestLoadoutLevel(t *testing.T) {
	it := &domain.Item{Rarity: domain.RarityEpic, Stats: domain.Stats{Attack: 10}} // level 50

	assert.Equal(t, 50, LoadoutLevel(it, 0))
	assert.Equal(t, 50, LoadoutLevel(it, 2))
	assert.Equal(t, 46, LoadoutLevel(it, 10))
	assert.Equal(t, 1, LoadoutLevel(it, 1000), "reduction is capped at 50 and level floors at 1")

	event := &domain.Item{Rarity: domain.RarityEvent, Level: 30}
	assert.Equal(t, 30, LoadoutLevel(event, 100))
}

func TestSellPrice(t *testing.T) {
	rng := utils.NewRand(11)

	t.Run("epic with max stat 5 and no bonuses", func(t *testing.T) {
		it := &domain.Item{Rarity: domain.RarityEpic, Stats: domain.Stats{Attack: 5}}
		for i := 0; i < 200; i++ {
			price := SellPrice(rng, it, domain.Stats{}, 0)
			assert.GreaterOrEqual(t, price, 2500)
			assert.Less(t, price, 3750)
		}
	})

	t.Run("negative multiplier floors at range minimum", func(t *testing.T) {
		it := &domain.Item{Rarity: domain.RarityRare, Stats: domain.Stats{Attack: 3}}
		price := SellPrice(rng, it, domain.Stats{Charisma: -5000}, 0)
		assert.Equal(t, 250, price)
	})

	t.Run("rebirth bonus is capped", func(t *testing.T) {
		it := &domain.Item{Rarity: domain.RarityNormal}
		for i := 0; i < 100; i++ {
			price := SellPrice(rng, it, domain.Stats{}, 10000)
			assert.LessOrEqual(t, price, 138)
		}
	})

	t.Run("unknown rarity prices as normal", func(t *testing.T) {
		it := &domain.Item{Rarity: "mystery"}
		price := SellPrice(rng, it, domain.Stats{}, 0)
		assert.GreaterOrEqual(t, price, 10)
		assert.Less(t, price, 100)
	})
}

func TestFormat(t *testing.T) {
	tests := []struct {
		rarity   domain.Rarity
		name     string
		expected string
	}{
		{domain.RarityNormal, "Wooden Sword", "wooden sword"},
		{domain.RarityRare, "Iron Sword", ".iron_sword"},
		{domain.RarityEpic, "Steel Helm", "[steel helm]"},
		{domain.RarityLegendary, "dragonscale staff of power", "{Legendary:'Dragonscale Staff Of Power'}"},
		{domain.RaritySet, "conclave robe", "{Set:'Conclave Robe'}"},
		{domain.RarityForged, "Bent Nail", "{.:'bent nail':.}"},
		{domain.RarityEvent, "Pumpkin HEAD", "{Event:'Pumpkin HEAD'}"},
	}

	for _, tt := range tests {
		t.Run(string(tt.rarity), func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(&domain.Item{Name: tt.name, Rarity: tt.rarity}))
		})
	}
}

func TestDescribe(t *testing.T) {
	it := &domain.Item{
		Name:   "iron greatsword",
		Slots:  []domain.Slot{domain.SlotLeft, domain.SlotRight},
		Rarity: domain.RarityRare,
		Stats:  domain.Stats{Attack: 5, Charisma: 1},
	}
	assert.Equal(t, ".iron_greatsword | two handed | att 5 cha 1 int 0 dex 0 luck 0 | lvl 20", Describe(it))
}

func TestGenerate(t *testing.T) {
	cat := loadCatalog(t)
	gen := NewGenerator(cat, utils.NewRand(2024))

	for _, rarity := range []domain.Rarity{domain.RarityNormal, domain.RarityRare, domain.RarityEpic, domain.RarityLegendary} {
		t.Run(string(rarity), func(t *testing.T) {
			for i := 0; i < 50; i++ {
				it, err := gen.Generate(rarity, "")
				require.NoError(t, err)
				assert.NotEmpty(t, it.Name)
				assert.Equal(t, rarity, it.Rarity)
				assert.Equal(t, 1, it.Owned)
				require.NotEmpty(t, it.Slots)
				assert.LessOrEqual(t, len(it.Slots), 2)
				if rarity == domain.RarityLegendary {
					assert.Equal(t, DefaultDegrade, it.Degrade)
				} else {
					assert.Zero(t, it.Degrade)
				}
			}
		})
	}

	t.Run("explicit slot", func(t *testing.T) {
		it, err := gen.Generate(domain.RarityEpic, domain.SlotBoots)
		require.NoError(t, err)
		assert.Equal(t, []domain.Slot{domain.SlotBoots}, it.Slots)
	})

	t.Run("two handed occupies both hands", func(t *testing.T) {
		it, err := gen.Generate(domain.RarityRare, domain.SlotTwoHanded)
		require.NoError(t, err)
		assert.Equal(t, []domain.Slot{domain.SlotLeft, domain.SlotRight}, it.Slots)
		assert.True(t, it.IsTwoHanded())
	})

	t.Run("set pieces come verbatim from the table", func(t *testing.T) {
		it, err := gen.Generate(domain.RaritySet, domain.SlotHead)
		require.NoError(t, err)
		assert.Equal(t, domain.RaritySet, it.Rarity)
		canonical, ok := cat.SetPiece(it.Name)
		require.True(t, ok)
		assert.Equal(t, canonical, it)
	})

	t.Run("set with no matching slot", func(t *testing.T) {
		_, err := gen.Generate(domain.RaritySet, domain.SlotCharm)
		assert.ErrorIs(t, err, domain.ErrItemNotFound)
	})

	t.Run("forged cannot be generated", func(t *testing.T) {
		_, err := gen.Generate(domain.RarityForged, "")
		assert.ErrorIs(t, err, domain.ErrInvalidRarity)
	})
}

func TestGenerate_SerializeRoundTrip(t *testing.T) {
	gen := NewGenerator(loadCatalog(t), utils.NewRand(9))

	for _, rarity := range []domain.Rarity{domain.RarityNormal, domain.RarityEpic, domain.RarityLegendary, domain.RaritySet} {
		it, err := gen.Generate(rarity, "")
		require.NoError(t, err)

		data, err := json.Marshal(it)
		require.NoError(t, err)

		var back domain.Item
		require.NoError(t, json.Unmarshal(data, &back))

		assert.Equal(t, it.Rarity, back.Rarity)
		assert.Equal(t, it.Slots, back.Slots)
		assert.Equal(t, it.Stats, back.Stats)
		assert.Equal(t, EquipLevel(it), EquipLevel(&back))
	}
}
