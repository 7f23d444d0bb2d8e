package trade

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Adventure_Go/internal/character"
	"github.com/osse101/Adventure_Go/internal/concurrency"
	"github.com/osse101/Adventure_Go/internal/content"
	"github.com/osse101/Adventure_Go/internal/database/memory"
	"github.com/osse101/Adventure_Go/internal/domain"
)

// MockCharacterRepo lets individual saves fail
type MockCharacterRepo struct {
	mock.Mock
	inner *memory.CharacterStore
}

func (m *MockCharacterRepo) Load(ctx context.Context, userID string) (*domain.Character, error) {
	return m.inner.Load(ctx, userID)
}

func (m *MockCharacterRepo) Save(ctx context.Context, c *domain.Character) error {
	args := m.Called(ctx, c.UserID)
	if err := args.Error(0); err != nil {
		return err
	}
	return m.inner.Save(ctx, c)
}

func (m *MockCharacterRepo) Delete(ctx context.Context, userID string) error {
	return m.inner.Delete(ctx, userID)
}

func sword(owned int) *domain.Item {
	return &domain.Item{
		Name:   "Rusty Sword",
		Slots:  []domain.Slot{domain.SlotRight},
		Rarity: domain.RarityNormal,
		Stats:  domain.Stats{Attack: 3},
		Owned:  owned,
	}
}

func setup(t *testing.T) (*memory.CharacterStore, *memory.Ledger, *concurrency.LockManager, *content.Catalog) {
	t.Helper()
	cat, err := content.Load("")
	require.NoError(t, err)
	return memory.NewCharacterStore(character.NewCodec(cat)), memory.NewLedger(0), concurrency.NewLockManager(), cat
}

func seed(t *testing.T, store *memory.CharacterStore, userID string, items ...*domain.Item) {
	t.Helper()
	c := domain.NewCharacter(userID)
	for _, it := range items {
		character.AddToBackpack(c, it)
	}
	require.NoError(t, store.Save(context.Background(), c))
}

func TestSendCurrency(t *testing.T) {
	ctx := context.Background()
	store, ledger, locks, cat := setup(t)
	svc := NewService(store, ledger, locks, cat)

	_, err := ledger.Deposit(ctx, "alice", 100)
	require.NoError(t, err)

	require.NoError(t, svc.SendCurrency(ctx, "alice", "bob", 40))
	a, _ := ledger.Balance(ctx, "alice")
	b, _ := ledger.Balance(ctx, "bob")
	assert.Equal(t, int64(60), a)
	assert.Equal(t, int64(40), b)

	tests := []struct {
		name    string
		from    string
		to      string
		amount  int64
		wantErr error
	}{
		{"zero amount", "alice", "bob", 0, domain.ErrInvalidAmount},
		{"negative amount", "alice", "bob", -5, domain.ErrInvalidAmount},
		{"self", "alice", "alice", 5, domain.ErrCannotTradeWithSelf},
		{"overdraft", "alice", "bob", 61, domain.ErrInsufficientFunds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, svc.SendCurrency(ctx, tt.from, tt.to, tt.amount), tt.wantErr)
		})
	}
}

func TestSendCurrency_Busy(t *testing.T) {
	store, ledger, locks, cat := setup(t)
	svc := NewService(store, ledger, locks, cat)

	unlock, err := locks.TryLock("bob")
	require.NoError(t, err)
	defer unlock()

	assert.ErrorIs(t, svc.SendCurrency(context.Background(), "alice", "bob", 1), domain.ErrUserBusy)
}

func TestGiveItem(t *testing.T) {
	ctx := context.Background()
	store, ledger, locks, cat := setup(t)
	svc := NewService(store, ledger, locks, cat)
	seed(t, store, "alice", sword(3))

	given, err := svc.GiveItem(ctx, "alice", "bob", "rusty sword", 2)
	require.NoError(t, err)
	assert.Equal(t, 2, given.Owned)

	alice, err := store.Load(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 1, alice.Backpack["Rusty Sword"].Owned)

	bob, err := store.Load(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, 2, bob.Backpack["Rusty Sword"].Owned, "receiver is created on demand")

	_, err = svc.GiveItem(ctx, "alice", "bob", "Rusty Sword", 2)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	_, err = svc.GiveItem(ctx, "alice", "bob", "Rusty Sword", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = svc.GiveItem(ctx, "alice", "alice", "Rusty Sword", 1)
	assert.ErrorIs(t, err, domain.ErrCannotTradeWithSelf)
}

func TestGiveItem_ReceiverSaveFailsRestoresSender(t *testing.T) {
	ctx := context.Background()
	store, ledger, locks, cat := setup(t)
	seed(t, store, "alice", sword(1))

	repo := &MockCharacterRepo{inner: store}
	repo.On("Save", mock.Anything, "alice").Return(nil)
	repo.On("Save", mock.Anything, "bob").Return(errors.New("disk full"))

	svc := NewService(repo, ledger, locks, cat)
	_, err := svc.GiveItem(ctx, "alice", "bob", "Rusty Sword", 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrContextSaveReceiver)

	alice, err := store.Load(ctx, "alice")
	require.NoError(t, err)
	require.Contains(t, alice.Backpack, "Rusty Sword")
	assert.Equal(t, 1, alice.Backpack["Rusty Sword"].Owned)

	repo.AssertNumberOfCalls(t, "Save", 3)
}
