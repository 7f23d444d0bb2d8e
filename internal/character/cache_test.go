package character

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Adventure_Go/internal/domain"
)

// MockCharacterRepo is a hand-written repository.Character mock
type MockCharacterRepo struct {
	mock.Mock
}

func (m *MockCharacterRepo) Load(ctx context.Context, userID string) (*domain.Character, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Character), args.Error(1)
}

func (m *MockCharacterRepo) Save(ctx context.Context, c *domain.Character) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCharacterRepo) Delete(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func TestCachedStore_LoadHitsInnerOnce(t *testing.T) {
	ctx := context.Background()
	inner := new(MockCharacterRepo)
	stored := domain.NewCharacter("u")
	stored.Level = 3
	inner.On("Load", ctx, "u").Return(stored, nil).Once()

	store := NewCachedStore(inner, 10, time.Minute)

	first, err := store.Load(ctx, "u")
	require.NoError(t, err)
	first.Level = 99

	second, err := store.Load(ctx, "u")
	require.NoError(t, err)
	assert.Equal(t, 3, second.Level, "cached snapshot must not be mutated by callers")
	assert.Equal(t, 1, store.Stats().Size)

	inner.AssertExpectations(t)
}

func TestCachedStore_SaveWritesThrough(t *testing.T) {
	ctx := context.Background()
	inner := new(MockCharacterRepo)
	store := NewCachedStore(inner, 10, time.Minute)

	c := domain.NewCharacter("u")
	c.Level = 4
	inner.On("Save", ctx, c).Return(nil).Once()

	require.NoError(t, store.Save(ctx, c))
	loaded, err := store.Load(ctx, "u")
	require.NoError(t, err)
	assert.Equal(t, 4, loaded.Level)

	inner.AssertNotCalled(t, "Load", mock.Anything, mock.Anything)
}

func TestCachedStore_FailedSaveEvicts(t *testing.T) {
	ctx := context.Background()
	inner := new(MockCharacterRepo)
	store := NewCachedStore(inner, 10, time.Minute)

	c := domain.NewCharacter("u")
	inner.On("Save", ctx, c).Return(nil).Once()
	require.NoError(t, store.Save(ctx, c))

	boom := errors.New("db down")
	inner.On("Save", ctx, c).Return(boom).Once()
	assert.ErrorIs(t, store.Save(ctx, c), boom)
	assert.Equal(t, 0, store.Stats().Size)
}

func TestCachedStore_DeleteAndInvalidate(t *testing.T) {
	ctx := context.Background()
	inner := new(MockCharacterRepo)
	store := NewCachedStore(inner, 10, time.Minute)

	c := domain.NewCharacter("u")
	inner.On("Save", ctx, mock.Anything).Return(nil)
	inner.On("Delete", ctx, "u").Return(nil).Once()

	require.NoError(t, store.Save(ctx, c))
	store.Invalidate("u")
	assert.Equal(t, 0, store.Stats().Size)

	require.NoError(t, store.Save(ctx, c))
	require.NoError(t, store.Delete(ctx, "u"))
	assert.Equal(t, 0, store.Stats().Size)

	inner.On("Load", ctx, "u").Return(nil, domain.ErrCharacterNotFound).Once()
	_, err := store.Load(ctx, "u")
	assert.ErrorIs(t, err, domain.ErrCharacterNotFound)
}
