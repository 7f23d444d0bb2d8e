package repository

import "context"

// Ledger is the currency bank. Deposits above the ceiling are silently
// clamped; withdrawals never take a balance below zero.
type Ledger interface {
	Balance(ctx context.Context, userID string) (int64, error)
	// Deposit returns the new balance
	Deposit(ctx context.Context, userID string, amount int64) (int64, error)
	// Withdraw returns domain.ErrInsufficientFunds when the balance is too low
	Withdraw(ctx context.Context, userID string, amount int64) (int64, error)
	// Transfer moves amount between two accounts as one unit
	Transfer(ctx context.Context, fromID, toID string, amount int64) error
}
