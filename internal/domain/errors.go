package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// User errors
	ErrMsgUnknownUser = "unknown user"

	// Stake/amount errors
	ErrMsgInvalidAmount     = "invalid point amount"
	ErrMsgStakeTooLow       = "stake below minimum"
	ErrMsgInsufficientFunds = "insufficient funds"

	// Challenge state errors
	ErrMsgAlreadyChallenging = "already has an outgoing challenge"
	ErrMsgTargetBusy         = "target already has a pending challenge"
	ErrMsgTargetInactive     = "target not active in chat"
	ErrMsgNoActiveRequest    = "no active duel request"
	ErrMsgNotChallenged      = "not being challenged"

	// Cooldown errors
	ErrMsgOnCooldown = "action on cooldown"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// User errors
	ErrUnknownUser = errors.New(ErrMsgUnknownUser)

	// Stake/amount errors
	ErrInvalidAmount     = errors.New(ErrMsgInvalidAmount)
	ErrStakeTooLow       = errors.New(ErrMsgStakeTooLow)
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)

	// Challenge state errors
	ErrAlreadyChallenging = errors.New(ErrMsgAlreadyChallenging)
	ErrTargetBusy         = errors.New(ErrMsgTargetBusy)
	ErrTargetInactive     = errors.New(ErrMsgTargetInactive)
	ErrNoActiveRequest    = errors.New(ErrMsgNoActiveRequest)
	ErrNotChallenged      = errors.New(ErrMsgNotChallenged)

	// Cooldown errors
	ErrOnCooldown = errors.New(ErrMsgOnCooldown)
)
