package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Adventure_Go/internal/domain"
	"github.com/osse101/Adventure_Go/internal/repository"
)

// CharacterRepository stores encoded character snapshots in the characters
// table. Level and rebirths are copied into columns for ordering queries.
type CharacterRepository struct {
	db    *pgxpool.Pool
	codec repository.CharacterCodec
}

// NewCharacterRepository creates a new CharacterRepository
func NewCharacterRepository(db *pgxpool.Pool, codec repository.CharacterCodec) *CharacterRepository {
	return &CharacterRepository{db: db, codec: codec}
}

// Load fetches and decodes one character
func (r *CharacterRepository) Load(ctx context.Context, userID string) (*domain.Character, error) {
	var data []byte
	err := r.db.QueryRow(ctx, `SELECT data FROM characters WHERE user_id = $1`, userID).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrCharacterNotFound, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadCharacter, err)
	}
	return r.codec.Decode(data)
}

// Save upserts the full snapshot
func (r *CharacterRepository) Save(ctx context.Context, c *domain.Character) error {
	data, err := r.codec.Encode(c)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO characters (user_id, data, level, rebirths, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET data = EXCLUDED.data,
		    level = EXCLUDED.level,
		    rebirths = EXCLUDED.rebirths,
		    updated_at = NOW()
	`
	if _, err := r.db.Exec(ctx, query, c.UserID, data, c.Level, c.Rebirths); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveCharacter, err)
	}
	return nil
}

// Delete removes a character; missing rows are not an error
func (r *CharacterRepository) Delete(ctx context.Context, userID string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM characters WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteCharacter, err)
	}
	return nil
}

// Top returns user ids ordered by rebirths then level
func (r *CharacterRepository) Top(ctx context.Context, limit int) ([]string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT user_id FROM characters ORDER BY rebirths DESC, level DESC, user_id LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadCharacter, err)
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}
