package content

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/Adventure_Go/internal/domain"
)

//go:embed data/*.json
var defaultData embed.FS

// Load reads the content tables from dir, or from the embedded defaults when
// dir is empty. The catalog is validated before it is returned.
func Load(dir string) (*Catalog, error) {
	var fsys fs.FS
	if dir == "" {
		sub, err := fs.Sub(defaultData, DataDir)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextOpenContent, err)
		}
		fsys = sub
	} else {
		fsys = os.DirFS(dir)
	}
	return LoadFS(fsys)
}

// LoadFS reads the content tables from an arbitrary filesystem
func LoadFS(fsys fs.FS) (*Catalog, error) {
	cat := &Catalog{}

	if err := readJSON(fsys, FileMonsters, &cat.Monsters); err != nil {
		return nil, err
	}
	if err := readJSON(fsys, FileAttributes, &cat.Attributes); err != nil {
		return nil, err
	}
	if err := readJSON(fsys, FileItems, &cat.Items); err != nil {
		return nil, err
	}
	if err := readJSON(fsys, FileSets, &cat.Sets); err != nil {
		return nil, err
	}
	if err := readJSON(fsys, FilePets, &cat.Pets); err != nil {
		return nil, err
	}

	// Names come from the map keys so content files don't repeat them
	for name, m := range cat.Monsters {
		m.Name = name
		cat.Monsters[name] = m
	}
	for name, s := range cat.Sets {
		s.Name = name
		cat.Sets[name] = s
	}
	for name, p := range cat.Pets {
		p.Name = name
		cat.Pets[name] = p
	}

	if err := Validate(cat); err != nil {
		return nil, err
	}

	cat.buildIndex()
	return cat, nil
}

// Validate checks struct tags and cross-table invariants
func Validate(cat *Catalog) error {
	v := validator.New()
	if err := v.Struct(cat); err != nil {
		return fmt.Errorf("%s: %w", ErrContextInvalidContent, err)
	}

	if len(cat.Monsters) == 0 {
		return fmt.Errorf("%s: %s", ErrContextInvalidContent, ErrMsgNoMonsters)
	}

	for _, r := range []domain.Rarity{domain.RarityNormal, domain.RarityRare, domain.RarityEpic, domain.RarityLegendary} {
		if len(cat.Items.Materials[r]) == 0 {
			return fmt.Errorf("%s: %s %q", ErrContextInvalidContent, ErrMsgMissingMaterials, r)
		}
	}

	for _, slot := range domain.GenerationSlots {
		if len(cat.Items.Nouns[slot]) == 0 {
			return fmt.Errorf("%s: %s %q", ErrContextInvalidContent, ErrMsgMissingNouns, slot)
		}
	}

	for name, def := range cat.Sets {
		if len(def.Pieces) < def.Parts {
			return fmt.Errorf("%s: set %q needs %d parts but defines %d", ErrContextInvalidContent, name, def.Parts, len(def.Pieces))
		}
		for _, p := range def.Pieces {
			for _, s := range p.Slots {
				if _, err := domain.ParseSlot(string(s)); err != nil {
					return fmt.Errorf("%s: set %q piece %q: %w", ErrContextInvalidContent, name, p.Name, err)
				}
			}
		}
	}

	for name, p := range cat.Pets {
		if p.RequiredSet != "" {
			if _, ok := cat.Sets[p.RequiredSet]; !ok {
				return fmt.Errorf("%s: pet %q requires unknown set %q", ErrContextInvalidContent, name, p.RequiredSet)
			}
		}
	}

	return nil
}

func readJSON(fsys fs.FS, name string, dst interface{}) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("%s %s: %w", ErrContextReadContent, name, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("%s %s: %w", ErrContextParseContent, name, err)
	}
	return nil
}
