package repository

import (
	"context"

	"github.com/osse101/Adventure_Go/internal/domain"
)

// Character persists whole character snapshots. Save replaces the stored
// record atomically; there are no partial updates.
type Character interface {
	// Load returns domain.ErrCharacterNotFound when no record exists and
	// domain.ErrCorruptCharacter when the stored record cannot be decoded.
	Load(ctx context.Context, userID string) (*domain.Character, error)
	Save(ctx context.Context, c *domain.Character) error
	Delete(ctx context.Context, userID string) error
}

// CharacterCodec turns characters into stored records and back
type CharacterCodec interface {
	Encode(c *domain.Character) ([]byte, error)
	Decode(data []byte) (*domain.Character, error)
}
