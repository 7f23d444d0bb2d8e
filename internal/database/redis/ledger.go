package redis

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"

	goredis "github.com/redis/go-redis/v9"

	"github.com/osse101/Adventure_Go/internal/domain"
)

type hashGetter interface {
	HGet(ctx context.Context, key, field string) *goredis.StringCmd
}

// Ledger keeps balances as fields of one hash. Every write is a
// WATCH/MULTI transaction on that hash, retried when it loses a race.
type Ledger struct {
	client     goredis.UniversalClient
	key        string
	maxBalance int64
}

// NewLedger creates a ledger under prefix. A non-positive maxBalance
// means no ceiling.
func NewLedger(client goredis.UniversalClient, prefix string, maxBalance int64) *Ledger {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	if maxBalance <= 0 {
		maxBalance = math.MaxInt64
	}
	return &Ledger{client: client, key: prefix + balancesKey, maxBalance: maxBalance}
}

// Balance returns zero for unknown accounts
func (l *Ledger) Balance(ctx context.Context, userID string) (int64, error) {
	return l.read(ctx, l.client, userID)
}

// Deposit credits an account, clamping at the ceiling
func (l *Ledger) Deposit(ctx context.Context, userID string, amount int64) (int64, error) {
	if amount < 0 {
		return 0, fmt.Errorf("%w: %d", domain.ErrInvalidAmount, amount)
	}
	var out int64
	err := l.update(ctx, func(tx *goredis.Tx) (map[string]int64, error) {
		bal, err := l.read(ctx, tx, userID)
		if err != nil {
			return nil, err
		}
		out = l.credit(bal, amount)
		return map[string]int64{userID: out}, nil
	})
	return out, err
}

// Withdraw debits an account only when it holds at least amount
func (l *Ledger) Withdraw(ctx context.Context, userID string, amount int64) (int64, error) {
	if amount < 0 {
		return 0, fmt.Errorf("%w: %d", domain.ErrInvalidAmount, amount)
	}
	var out int64
	err := l.update(ctx, func(tx *goredis.Tx) (map[string]int64, error) {
		bal, err := l.read(ctx, tx, userID)
		if err != nil {
			return nil, err
		}
		out = bal
		if bal < amount {
			return nil, fmt.Errorf("%w: have %d, need %d", domain.ErrInsufficientFunds, bal, amount)
		}
		out = bal - amount
		return map[string]int64{userID: out}, nil
	})
	return out, err
}

// Transfer moves amount between two accounts in one transaction
func (l *Ledger) Transfer(ctx context.Context, fromID, toID string, amount int64) error {
	if amount < 0 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidAmount, amount)
	}
	if fromID == toID {
		return domain.ErrCannotTradeWithSelf
	}
	return l.update(ctx, func(tx *goredis.Tx) (map[string]int64, error) {
		from, err := l.read(ctx, tx, fromID)
		if err != nil {
			return nil, err
		}
		if from < amount {
			return nil, fmt.Errorf("%w: have %d, need %d", domain.ErrInsufficientFunds, from, amount)
		}
		to, err := l.read(ctx, tx, toID)
		if err != nil {
			return nil, err
		}
		return map[string]int64{fromID: from - amount, toID: l.credit(to, amount)}, nil
	})
}

// update runs fn under WATCH and writes its result with MULTI/EXEC
func (l *Ledger) update(ctx context.Context, fn func(tx *goredis.Tx) (map[string]int64, error)) error {
	txf := func(tx *goredis.Tx) error {
		writes, err := fn(tx)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			for id, bal := range writes {
				pipe.HSet(ctx, l.key, id, bal)
			}
			return nil
		})
		return err
	}

	for i := 0; i < MaxTxRetries; i++ {
		err := l.client.Watch(ctx, txf, l.key)
		if errors.Is(err, goredis.TxFailedErr) {
			continue
		}
		return err
	}
	return errors.New(ErrMsgTxRetriesExceeded)
}

func (l *Ledger) read(ctx context.Context, c hashGetter, userID string) (int64, error) {
	raw, err := c.HGet(ctx, l.key, userID).Result()
	if errors.Is(err, goredis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToGetBalance, err)
	}
	bal, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgCorruptBalance, err)
	}
	return bal, nil
}

func (l *Ledger) credit(bal, amount int64) int64 {
	if amount > l.maxBalance-bal {
		return l.maxBalance
	}
	return bal + amount
}
