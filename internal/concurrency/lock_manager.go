package concurrency

import (
	"context"
	"sort"
	"sync"

	"github.com/osse101/Adventure_Go/internal/domain"
)

// keyLock is a one-slot semaphore so acquisition can be tried or bounded by a context
type keyLock chan struct{}

// LockManager hands out per-key mutual exclusion, one key per user
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

func (lm *LockManager) get(key string) keyLock {
	l, _ := lm.locks.LoadOrStore(key, make(keyLock, 1))
	return l.(keyLock)
}

// TryLock acquires key without waiting. Contention returns domain.ErrUserBusy.
func (lm *LockManager) TryLock(key string) (func(), error) {
	l := lm.get(key)
	select {
	case l <- struct{}{}:
		return releaseOnce(l), nil
	default:
		return nil, domain.ErrUserBusy
	}
}

// Lock waits for key until ctx is done
func (lm *LockManager) Lock(ctx context.Context, key string) (func(), error) {
	l := lm.get(key)
	select {
	case l <- struct{}{}:
		return releaseOnce(l), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// TryLockPair acquires two keys in a fixed order without waiting.
// Either both are held on return or neither is.
func (lm *LockManager) TryLockPair(a, b string) (func(), error) {
	if a == b {
		return nil, domain.ErrCannotTradeWithSelf
	}
	first, second := ordered(a, b)

	unlockFirst, err := lm.TryLock(first)
	if err != nil {
		return nil, err
	}
	unlockSecond, err := lm.TryLock(second)
	if err != nil {
		unlockFirst()
		return nil, err
	}
	return func() {
		unlockSecond()
		unlockFirst()
	}, nil
}

// LockAll waits for every key in sorted order. Duplicates are ignored.
// On failure any keys already taken are released.
func (lm *LockManager) LockAll(ctx context.Context, keys []string) (func(), error) {
	uniq := make(map[string]struct{}, len(keys))
	sorted := make([]string, 0, len(keys))
	for _, k := range keys {
		if _, ok := uniq[k]; ok {
			continue
		}
		uniq[k] = struct{}{}
		sorted = append(sorted, k)
	}
	sort.Strings(sorted)

	unlocks := make([]func(), 0, len(sorted))
	releaseAll := func() {
		for i := len(unlocks) - 1; i >= 0; i-- {
			unlocks[i]()
		}
	}

	for _, k := range sorted {
		unlock, err := lm.Lock(ctx, k)
		if err != nil {
			releaseAll()
			return nil, err
		}
		unlocks = append(unlocks, unlock)
	}
	return releaseAll, nil
}

func ordered(a, b string) (string, string) {
	if a < b {
		return a, b
	}
	return b, a
}

func releaseOnce(l keyLock) func() {
	var once sync.Once
	return func() {
		once.Do(func() { <-l })
	}
}
