package loot

// Error messages
const (
	ErrContextRollChest = "failed to roll chest"

	ErrMsgEmptyTable        = "chest table is empty"
	ErrMsgTableNotAscending = "chest table limits must ascend"
	ErrMsgTableIncomplete   = "chest table must end at the roll scale"
)
