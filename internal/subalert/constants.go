package subalert

import "time"

// Tier base point awards
const (
	Tier1Points = 2500
	Tier2Points = 5000
	Tier3Points = 12500
)

// MonthsMultiplierStep is the per-month bonus applied to the base award
// once a subscription is past its first month:
// award = base * (1 + MonthsMultiplierStep * months)
const MonthsMultiplierStep = 0.025

// DefaultWhisperDelay is how long after the public announcement the thank-you
// whisper is sent
const DefaultWhisperDelay = 5 * time.Second

// Log Message Constants
const (
	LogMsgSubscriptionHandled = "Subscription handled"
	LogMsgFailedToCredit      = "Failed to credit subscription points"
	LogMsgFailedToAnnounce    = "Failed to announce subscription"
	LogMsgFailedToWhisper     = "Failed to whisper subscription thanks"
	LogMsgFailedToPublish     = "Failed to publish subscription event"
)

// Error Message Constants
const (
	ErrMsgUsernameRequired = "username is required"
	ErrMsgRegisterFailed   = "failed to register subscriber: %w"
	ErrMsgCreditFailed     = "failed to credit points: %w"
)
