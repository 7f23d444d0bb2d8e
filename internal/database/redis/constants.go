package redis

// Keys
const (
	// DefaultKeyPrefix namespaces every key this package writes
	DefaultKeyPrefix = "adventure:"
	balancesKey      = "balances"
)

// Optimistic transactions
const (
	// MaxTxRetries bounds WATCH retries when another writer touched the key
	MaxTxRetries = 16
)

// Error Messages
const (
	ErrMsgFailedToConnect    = "failed to connect to redis"
	ErrMsgFailedToGetBalance = "failed to get balance"
	ErrMsgTxRetriesExceeded  = "ledger transaction retries exceeded"
	ErrMsgCorruptBalance     = "stored balance is not an integer"
)

// Log Messages
const (
	LogMsgConnected = "Successfully connected to redis"
)
