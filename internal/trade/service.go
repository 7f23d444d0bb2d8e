package trade

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/Adventure_Go/internal/character"
	"github.com/osse101/Adventure_Go/internal/concurrency"
	"github.com/osse101/Adventure_Go/internal/domain"
	"github.com/osse101/Adventure_Go/internal/logger"
	"github.com/osse101/Adventure_Go/internal/repository"
)

// Service moves currency and backpack items between two users. Both users
// are locked without waiting; a held lock fails with domain.ErrUserBusy.
type Service interface {
	SendCurrency(ctx context.Context, fromID, toID string, amount int64) error
	GiveItem(ctx context.Context, fromID, toID, itemName string, quantity int) (*domain.Item, error)
}

type service struct {
	repo   repository.Character
	ledger repository.Ledger
	locks  *concurrency.LockManager
	sets   character.SetTable
	now    func() time.Time
}

// NewService creates a new trade service
func NewService(repo repository.Character, ledger repository.Ledger, locks *concurrency.LockManager, sets character.SetTable) Service {
	return &service{
		repo:   repo,
		ledger: ledger,
		locks:  locks,
		sets:   sets,
		now:    time.Now,
	}
}

func (s *service) SendCurrency(ctx context.Context, fromID, toID string, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidAmount, amount)
	}
	unlock, err := s.locks.TryLockPair(fromID, toID)
	if err != nil {
		return err
	}
	defer unlock()

	if err := s.ledger.Transfer(ctx, fromID, toID, amount); err != nil {
		return fmt.Errorf("%s: %w", ErrContextSendCurrency, err)
	}

	logger.FromContext(ctx).Info(LogMsgCurrencySent, "from", fromID, "to", toID, "amount", amount)
	return nil
}

func (s *service) GiveItem(ctx context.Context, fromID, toID, itemName string, quantity int) (*domain.Item, error) {
	if quantity < 1 || quantity > MaxItemQuantity {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidAmount, quantity)
	}
	unlock, err := s.locks.TryLockPair(fromID, toID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	log := logger.FromContext(ctx)
	now := s.now()

	sender, err := character.LoadOrCreate(ctx, s.repo, s.sets, fromID, now)
	if err != nil {
		return nil, err
	}
	receiver, err := character.LoadOrCreate(ctx, s.repo, s.sets, toID, now)
	if err != nil {
		return nil, err
	}

	given, err := character.TakeFromBackpack(sender, itemName, quantity)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextGiveItem, err)
	}

	if err := s.repo.Save(ctx, sender); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextSaveSender, err)
	}

	character.AddToBackpack(receiver, given)
	if err := s.repo.Save(ctx, receiver); err != nil {
		character.AddToBackpack(sender, given)
		if restoreErr := s.repo.Save(ctx, sender); restoreErr != nil {
			log.Error(LogMsgRestoreFailed, "userID", fromID, "error", restoreErr)
		}
		return nil, fmt.Errorf("%s: %w", ErrContextSaveReceiver, err)
	}

	log.Info(LogMsgItemGiven, "from", fromID, "to", toID, "item", given.Name, "quantity", quantity)
	return given, nil
}
