package memory

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/osse101/Adventure_Go/internal/domain"
)

// Ledger is an in-process currency bank
type Ledger struct {
	mu         sync.Mutex
	maxBalance int64
	balances   map[string]int64
}

// NewLedger creates a bank whose balances never exceed maxBalance.
// A non-positive maxBalance means no ceiling.
func NewLedger(maxBalance int64) *Ledger {
	if maxBalance <= 0 {
		maxBalance = math.MaxInt64
	}
	return &Ledger{
		maxBalance: maxBalance,
		balances:   make(map[string]int64),
	}
}

func (l *Ledger) Balance(_ context.Context, userID string) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balances[userID], nil
}

func (l *Ledger) Deposit(_ context.Context, userID string, amount int64) (int64, error) {
	if amount < 0 {
		return 0, fmt.Errorf("%w: %d", domain.ErrInvalidAmount, amount)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balances[userID] = l.credit(l.balances[userID], amount)
	return l.balances[userID], nil
}

func (l *Ledger) Withdraw(_ context.Context, userID string, amount int64) (int64, error) {
	if amount < 0 {
		return 0, fmt.Errorf("%w: %d", domain.ErrInvalidAmount, amount)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	bal := l.balances[userID]
	if bal < amount {
		return bal, fmt.Errorf("%w: have %d, need %d", domain.ErrInsufficientFunds, bal, amount)
	}
	l.balances[userID] = bal - amount
	return l.balances[userID], nil
}

func (l *Ledger) Transfer(_ context.Context, fromID, toID string, amount int64) error {
	if amount < 0 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidAmount, amount)
	}
	if fromID == toID {
		return domain.ErrCannotTradeWithSelf
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if bal := l.balances[fromID]; bal < amount {
		return fmt.Errorf("%w: have %d, need %d", domain.ErrInsufficientFunds, bal, amount)
	}
	l.balances[fromID] -= amount
	l.balances[toID] = l.credit(l.balances[toID], amount)
	return nil
}

func (l *Ledger) credit(bal, amount int64) int64 {
	if amount > l.maxBalance-bal {
		return l.maxBalance
	}
	return bal + amount
}
