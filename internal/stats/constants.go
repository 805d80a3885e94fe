package stats

// Log Message Constants
const (
	LogMsgFailedToRecordWin  = "Failed to record duel win"
	LogMsgFailedToRecordLoss = "Failed to record duel loss"
	LogMsgOutcomeRecorded    = "Duel outcome recorded"
)

// Error Message Constants
const (
	ErrMsgUserIDRequired   = "user ID is required"
	ErrMsgRecordWinFailed  = "failed to record win: %w"
	ErrMsgRecordLossFailed = "failed to record loss: %w"
	ErrMsgGetStatsFailed   = "failed to get duel stats: %w"
)
