package character

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/Adventure_Go/internal/domain"
	"github.com/osse101/Adventure_Go/internal/repository"
)

// cachedCharacterEntry wraps a snapshot with version metadata for cache invalidation
type cachedCharacterEntry struct {
	Version   string
	Character *domain.Character
	CachedAt  time.Time
}

// CachedStore decorates a character store with an expiring LRU. Callers
// always receive clones so cached snapshots are never mutated in place.
type CachedStore struct {
	inner repository.Character
	lru   *expirable.LRU[string, *cachedCharacterEntry]
}

// CacheStats reports cache occupancy
type CacheStats struct {
	Size int `json:"size"`
}

// NewCachedStore wraps inner with a cache of the given size and TTL
func NewCachedStore(inner repository.Character, size int, ttl time.Duration) *CachedStore {
	return &CachedStore{
		inner: inner,
		lru:   expirable.NewLRU[string, *cachedCharacterEntry](size, nil, ttl),
	}
}

// Load serves from cache when possible
func (s *CachedStore) Load(ctx context.Context, userID string) (*domain.Character, error) {
	if entry, ok := s.lru.Get(userID); ok {
		if entry.Version == CacheSchemaVersion {
			return entry.Character.Clone(), nil
		}
		s.lru.Remove(userID)
	}

	c, err := s.inner.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.put(c)
	return c, nil
}

// Save writes through and refreshes the cache
func (s *CachedStore) Save(ctx context.Context, c *domain.Character) error {
	if err := s.inner.Save(ctx, c); err != nil {
		s.lru.Remove(c.UserID)
		return err
	}
	s.put(c)
	return nil
}

// Delete removes from the store and the cache
func (s *CachedStore) Delete(ctx context.Context, userID string) error {
	s.lru.Remove(userID)
	return s.inner.Delete(ctx, userID)
}

// Invalidate drops a cached snapshot
func (s *CachedStore) Invalidate(userID string) {
	s.lru.Remove(userID)
}

// Stats returns cache statistics
func (s *CachedStore) Stats() CacheStats {
	return CacheStats{Size: s.lru.Len()}
}

func (s *CachedStore) put(c *domain.Character) {
	s.lru.Add(c.UserID, &cachedCharacterEntry{
		Version:   CacheSchemaVersion,
		Character: c.Clone(),
		CachedAt:  time.Now(),
	})
}
