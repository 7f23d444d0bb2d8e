package character

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Adventure_Go/internal/domain"
)

func TestCodec_RoundTripRelinksTwoHanded(t *testing.T) {
	cat := testCatalog(t)
	codec := NewCodec(cat)

	c := domain.NewCharacter("u")
	c.Rebirths = 2
	wear(t, cat, c, "Conclave Staff")

	data, err := codec.Encode(c)
	require.NoError(t, err)

	decoded, err := codec.Decode(data)
	require.NoError(t, err)
	require.NotNil(t, decoded.Equipped[domain.SlotLeft])
	assert.Same(t, decoded.Equipped[domain.SlotLeft], decoded.Equipped[domain.SlotRight])
	assert.Len(t, decoded.EquippedItems(), 1)
	assert.Equal(t, 2, decoded.Rebirths)
}

func TestCodec_SetItemsFollowCanonicalTable(t *testing.T) {
	cat := testCatalog(t)
	codec := NewCodec(cat)

	raw := []byte(`{
		"user_id": "u",
		"lvl": 3,
		"backpack": {
			"Conclave Robe": {"name": "Conclave Robe", "slot": ["chest"], "rarity": "set",
				"stats": {"att": 999, "int": 999}, "owned": 2, "set": "Wrong", "parts": 1},
			"Stick": {"name": "Stick", "slot": ["right"], "rarity": "normal",
				"stats": {"att": 2}, "owned": 0, "set": "Bogus", "parts": 3, "degrade": 4, "lvl": 80}
		}
	}`)

	c, err := codec.Decode(raw)
	require.NoError(t, err)

	robe := c.Backpack["Conclave Robe"]
	canonical, _ := cat.SetPiece("Conclave Robe")
	assert.Equal(t, canonical.Stats, robe.Stats)
	assert.Equal(t, "Arcane Conclave", robe.Set)
	assert.Equal(t, 4, robe.Parts)
	assert.Equal(t, 2, robe.Owned)

	stick := c.Backpack["Stick"]
	assert.Empty(t, stick.Set)
	assert.Zero(t, stick.Parts)
	assert.Zero(t, stick.Degrade)
	assert.Zero(t, stick.Level)
	assert.Equal(t, 1, stick.Owned)

	assert.NotNil(t, c.Loadouts)
	assert.Equal(t, domain.ClassHero, c.Class.Name)
}

func TestCodec_Corrupt(t *testing.T) {
	codec := NewCodec(nil)

	tests := []struct {
		name string
		data string
	}{
		{"truncated", `{"user_id": "u"`},
		{"wrong type", `{"user_id": "u", "lvl": "ten"}`},
		{"missing user", `{"lvl": 1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.Decode([]byte(tt.data))
			assert.ErrorIs(t, err, domain.ErrCorruptCharacter)
		})
	}
}

func TestCodec_EncodeDoesNotMutate(t *testing.T) {
	codec := NewCodec(nil)
	c := domain.NewCharacter("u")
	it := plainItem("Stick", domain.RarityNormal, domain.SlotRight, 2)
	it.Owned = 0
	c.Backpack["Stick"] = it

	_, err := codec.Encode(c)
	require.NoError(t, err)
	assert.Equal(t, 0, it.Owned)
}
