package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/osse101/Adventure_Go/internal/domain"
	"github.com/osse101/Adventure_Go/internal/repository"
)

// CharacterStore keeps encoded character records in a map. Records go
// through the codec so callers never share memory with the store.
type CharacterStore struct {
	mu      sync.RWMutex
	codec   repository.CharacterCodec
	records map[string][]byte
}

// NewCharacterStore creates an empty store
func NewCharacterStore(codec repository.CharacterCodec) *CharacterStore {
	return &CharacterStore{
		codec:   codec,
		records: make(map[string][]byte),
	}
}

// Load decodes the stored record for userID
func (s *CharacterStore) Load(_ context.Context, userID string) (*domain.Character, error) {
	s.mu.RLock()
	data, ok := s.records[userID]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrCharacterNotFound, userID)
	}
	return s.codec.Decode(data)
}

// Save replaces the stored record
func (s *CharacterStore) Save(_ context.Context, c *domain.Character) error {
	data, err := s.codec.Encode(c)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.records[c.UserID] = data
	s.mu.Unlock()
	return nil
}

// Delete removes a record; missing records are not an error
func (s *CharacterStore) Delete(_ context.Context, userID string) error {
	s.mu.Lock()
	delete(s.records, userID)
	s.mu.Unlock()
	return nil
}

// PutRaw stores bytes as-is, bypassing the codec
func (s *CharacterStore) PutRaw(userID string, data []byte) {
	s.mu.Lock()
	s.records[userID] = append([]byte(nil), data...)
	s.mu.Unlock()
}

// Len reports the number of stored characters
func (s *CharacterStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
