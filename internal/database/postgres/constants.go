package postgres

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - Character Operations
const (
	ErrMsgFailedToLoadCharacter   = "failed to load character"
	ErrMsgFailedToSaveCharacter   = "failed to save character"
	ErrMsgFailedToDeleteCharacter = "failed to delete character"
)

// Error Messages - Ledger Operations
const (
	ErrMsgFailedToGetBalance     = "failed to get balance"
	ErrMsgFailedToDeposit        = "failed to deposit"
	ErrMsgFailedToWithdraw       = "failed to withdraw"
	ErrMsgFailedToLockBalances   = "failed to lock balances"
	ErrMsgFailedToUpdateBalances = "failed to update balances"
)

// Log Messages
const (
	LogMsgFailedToRollback = "Failed to rollback transaction"
)
