package postgres

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Adventure_Go/internal/domain"
)

// LedgerRepository keeps balances in the balances table
type LedgerRepository struct {
	db         *pgxpool.Pool
	maxBalance int64
}

// NewLedgerRepository creates a ledger whose balances never exceed
// maxBalance. A non-positive maxBalance means no ceiling.
func NewLedgerRepository(db *pgxpool.Pool, maxBalance int64) *LedgerRepository {
	if maxBalance <= 0 {
		maxBalance = math.MaxInt64
	}
	return &LedgerRepository{db: db, maxBalance: maxBalance}
}

// Balance returns zero for unknown accounts
func (r *LedgerRepository) Balance(ctx context.Context, userID string) (int64, error) {
	var bal int64
	err := r.db.QueryRow(ctx, `SELECT balance FROM balances WHERE user_id = $1`, userID).Scan(&bal)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToGetBalance, err)
	}
	return bal, nil
}

const depositQuery = `
	INSERT INTO balances (user_id, balance, updated_at)
	VALUES ($1, LEAST($2::BIGINT, $3::BIGINT), NOW())
	ON CONFLICT (user_id) DO UPDATE
	SET balance = CASE
	        WHEN balances.balance > $3::BIGINT - $2::BIGINT THEN $3::BIGINT
	        ELSE balances.balance + $2::BIGINT
	    END,
	    updated_at = NOW()
	RETURNING balance
`

// Deposit credits an account, clamping at the ceiling
func (r *LedgerRepository) Deposit(ctx context.Context, userID string, amount int64) (int64, error) {
	if amount < 0 {
		return 0, fmt.Errorf("%w: %d", domain.ErrInvalidAmount, amount)
	}
	var bal int64
	if err := r.db.QueryRow(ctx, depositQuery, userID, amount, r.maxBalance).Scan(&bal); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToDeposit, err)
	}
	return bal, nil
}

// Withdraw debits an account only when it holds at least amount
func (r *LedgerRepository) Withdraw(ctx context.Context, userID string, amount int64) (int64, error) {
	if amount < 0 {
		return 0, fmt.Errorf("%w: %d", domain.ErrInvalidAmount, amount)
	}
	if amount == 0 {
		return r.Balance(ctx, userID)
	}

	var bal int64
	err := r.db.QueryRow(ctx, `
		UPDATE balances SET balance = balance - $2, updated_at = NOW()
		WHERE user_id = $1 AND balance >= $2
		RETURNING balance
	`, userID, amount).Scan(&bal)
	if errors.Is(err, pgx.ErrNoRows) {
		have, berr := r.Balance(ctx, userID)
		if berr != nil {
			return 0, berr
		}
		return have, fmt.Errorf("%w: have %d, need %d", domain.ErrInsufficientFunds, have, amount)
	}
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToWithdraw, err)
	}
	return bal, nil
}

// Transfer moves amount between two accounts in one transaction. Rows are
// locked in user id order so concurrent transfers cannot deadlock.
func (r *LedgerRepository) Transfer(ctx context.Context, fromID, toID string, amount int64) error {
	if amount < 0 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidAmount, amount)
	}
	if fromID == toID {
		return domain.ErrCannotTradeWithSelf
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	if _, err := tx.Exec(ctx, `
		INSERT INTO balances (user_id, balance) VALUES ($1, 0), ($2, 0)
		ON CONFLICT (user_id) DO NOTHING
	`, fromID, toID); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToLockBalances, err)
	}

	rows, err := tx.Query(ctx, `
		SELECT user_id, balance FROM balances
		WHERE user_id = ANY($1)
		ORDER BY user_id
		FOR UPDATE
	`, []string{fromID, toID})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToLockBalances, err)
	}
	balances := make(map[string]int64, 2)
	var (
		id  string
		bal int64
	)
	if _, err := pgx.ForEachRow(rows, []any{&id, &bal}, func() error {
		balances[id] = bal
		return nil
	}); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToLockBalances, err)
	}

	if have := balances[fromID]; have < amount {
		return fmt.Errorf("%w: have %d, need %d", domain.ErrInsufficientFunds, have, amount)
	}

	credited := balances[toID] + amount
	if amount > r.maxBalance-balances[toID] {
		credited = r.maxBalance
	}

	batch := &pgx.Batch{}
	batch.Queue(`UPDATE balances SET balance = $2, updated_at = NOW() WHERE user_id = $1`, fromID, balances[fromID]-amount)
	batch.Queue(`UPDATE balances SET balance = $2, updated_at = NOW() WHERE user_id = $1`, toID, credited)
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateBalances, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}
