package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"

	// Duel operation error messages
	ErrMsgChallengeFailed = "Failed to issue duel challenge"
	ErrMsgAcceptFailed    = "Failed to accept duel"
	ErrMsgDeclineFailed   = "Failed to decline duel"
	ErrMsgCancelFailed    = "Failed to cancel duel"
	ErrMsgStatusFailed    = "Failed to get duel status"
	ErrMsgStatsFailed     = "Failed to get duel stats"

	// Message handling error messages
	ErrMsgHandleMessageFailed = "Failed to handle message"

	// Event webhook error messages
	ErrMsgHandleSubscriptionFailed = "Failed to handle subscription event"
	ErrMsgHandleDonationFailed     = "Failed to handle donation event"
)

// Success messages for API responses
const (
	MsgChallengeSent          = "Duel challenge sent"
	MsgDuelResolved           = "Duel resolved"
	MsgDuelDeclined           = "Duel declined"
	MsgDuelCancelled          = "Duel cancelled"
	MsgSubscriptionProcessed  = "Subscription event processed successfully"
	MsgDonationProcessed      = "Donation event processed successfully"
)
