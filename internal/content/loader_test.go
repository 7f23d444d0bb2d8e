package content

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Adventure_Go/internal/domain"
)

func TestLoad_EmbeddedDefaults(t *testing.T) {
	cat, err := Load("")
	require.NoError(t, err)

	assert.NotEmpty(t, cat.Monsters)
	assert.NotEmpty(t, cat.Attributes)
	assert.NotEmpty(t, cat.Sets)

	dragon, ok := cat.Monster("Ancient Dragon")
	require.True(t, ok)
	assert.Equal(t, "Ancient Dragon", dragon.Name)
	assert.True(t, dragon.Boss)
	assert.True(t, dragon.IsSpecial())

	basilisk, ok := cat.Monster("Basilisk")
	require.True(t, ok)
	require.NotNil(t, basilisk.Miniboss)
	assert.Equal(t, 2, basilisk.Miniboss.MinParticipants)

	for _, slot := range domain.GenerationSlots {
		assert.NotEmpty(t, cat.Items.Nouns[slot], "slot %s", slot)
	}
}

func TestCatalog_MonsterListSorted(t *testing.T) {
	cat, err := Load("")
	require.NoError(t, err)

	list := cat.MonsterList()
	require.Len(t, list, len(cat.Monsters))
	for i := 1; i < len(list); i++ {
		assert.Less(t, list[i-1].Name, list[i].Name)
	}
}

func TestCatalog_SetPiece(t *testing.T) {
	cat, err := Load("")
	require.NoError(t, err)

	t.Run("case insensitive lookup", func(t *testing.T) {
		it, ok := cat.SetPiece("shadow walker hood")
		require.True(t, ok)
		assert.Equal(t, "Shadow Walker Hood", it.Name)
		assert.Equal(t, domain.RaritySet, it.Rarity)
		assert.Equal(t, "Shadow Walker", it.Set)
		assert.Equal(t, 3, it.Parts)
		assert.Equal(t, 1, it.Owned)
	})

	t.Run("returns a fresh copy", func(t *testing.T) {
		a, _ := cat.SetPiece("Conclave Robe")
		a.Stats.Intelligence = 9999
		b, _ := cat.SetPiece("Conclave Robe")
		assert.Equal(t, 12, b.Stats.Intelligence)
	})

	t.Run("unknown piece", func(t *testing.T) {
		_, ok := cat.SetPiece("Not A Thing")
		assert.False(t, ok)
	})
}

func TestCatalog_SetPiecesBySlot(t *testing.T) {
	cat, err := Load("")
	require.NoError(t, err)

	twoHanded := cat.SetPieces(domain.SlotTwoHanded)
	require.NotEmpty(t, twoHanded)
	for _, it := range twoHanded {
		assert.True(t, it.IsTwoHanded(), it.Name)
	}

	heads := cat.SetPieces(domain.SlotHead)
	for _, it := range heads {
		assert.Equal(t, []domain.Slot{domain.SlotHead}, it.Slots)
	}

	all := cat.SetPieces("")
	total := 0
	for _, def := range cat.Sets {
		total += len(def.Pieces)
	}
	assert.Len(t, all, total)
}

func minimalFS() fstest.MapFS {
	return fstest.MapFS{
		FileMonsters:   {Data: []byte(`{"Goblin": {"hp": 10, "dipl": 10, "pdef": 1, "mdef": 1}}`)},
		FileAttributes: {Data: []byte(`[{"name": "plain", "hp": 1, "dipl": 1}]`)},
		FileItems: {Data: []byte(`{
			"prefixes": [{"name": "p"}],
			"materials": {"normal": [{"name": "a"}], "rare": [{"name": "b"}], "epic": [{"name": "c"}], "legendary": [{"name": "d"}]},
			"nouns": {"head": [{"name": "n"}], "neck": [{"name": "n"}], "chest": [{"name": "n"}], "gloves": [{"name": "n"}],
				"belt": [{"name": "n"}], "legs": [{"name": "n"}], "boots": [{"name": "n"}], "left": [{"name": "n"}],
				"right": [{"name": "n"}], "two handed": [{"name": "n"}], "ring": [{"name": "n"}], "charm": [{"name": "n"}]},
			"suffixes": [{"name": "of s"}]
		}`)},
		FileSets: {Data: []byte(`{}`)},
		FilePets: {Data: []byte(`{}`)},
	}
}

func TestLoadFS_Errors(t *testing.T) {
	t.Run("minimal content loads", func(t *testing.T) {
		cat, err := LoadFS(minimalFS())
		require.NoError(t, err)
		assert.Len(t, cat.Monsters, 1)
	})

	tests := []struct {
		name   string
		mutate func(fstest.MapFS)
		errMsg string
	}{
		{
			name:   "missing file",
			mutate: func(m fstest.MapFS) { delete(m, FilePets) },
			errMsg: ErrContextReadContent,
		},
		{
			name:   "bad json",
			mutate: func(m fstest.MapFS) { m[FileMonsters] = &fstest.MapFile{Data: []byte(`{`)} },
			errMsg: ErrContextParseContent,
		},
		{
			name:   "no monsters",
			mutate: func(m fstest.MapFS) { m[FileMonsters] = &fstest.MapFile{Data: []byte(`{}`)} },
			errMsg: ErrMsgNoMonsters,
		},
		{
			name: "monster with zero hp",
			mutate: func(m fstest.MapFS) {
				m[FileMonsters] = &fstest.MapFile{Data: []byte(`{"Ghost": {"hp": 0, "dipl": 10}}`)}
			},
			errMsg: ErrContextInvalidContent,
		},
		{
			name: "set with too few pieces",
			mutate: func(m fstest.MapFS) {
				m[FileSets] = &fstest.MapFile{Data: []byte(`{"Lonely": {"parts": 2, "pieces": [{"name": "Only", "slot": ["head"]}]}}`)}
			},
			errMsg: "needs 2 parts",
		},
		{
			name: "pet requiring unknown set",
			mutate: func(m fstest.MapFS) {
				m[FilePets] = &fstest.MapFile{Data: []byte(`{"cat": {"bonus": 1.1, "set": "Nope"}}`)}
			},
			errMsg: "unknown set",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := minimalFS()
			tt.mutate(fsys)
			_, err := LoadFS(fsys)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
