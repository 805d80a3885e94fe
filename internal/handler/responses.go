package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/DuelArena_Go/internal/cooldown"
	"github.com/osse101/DuelArena_Go/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent, nothing more we can do for the client
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	// Generic messages
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	// User messages
	ErrMsgUnknownUserError = "User not found"

	// Points messages
	ErrMsgInvalidAmountError     = "Invalid point amount"
	ErrMsgStakeTooLowError       = "Stake is below the minimum"
	ErrMsgInsufficientFundsError = "Not enough points"

	// Duel messages
	ErrMsgAlreadyChallengingError = "You already have an outgoing duel challenge"
	ErrMsgTargetBusyError         = "That user already has a pending duel challenge"
	ErrMsgTargetInactiveError     = "That user has not been active in chat recently"
	ErrMsgNoActiveRequestError    = "You have no active duel request"
	ErrMsgNotChallengedError      = "Nobody has challenged you to a duel"

	// Cooldown messages
	ErrMsgOnCooldownError = "Action is on cooldown. Try again later"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses.
// It converts internal service errors to appropriate HTTP status codes and
// messages that callers can surface directly in chat.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrUnknownUser):
		return http.StatusBadRequest, ErrMsgUnknownUserError
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest, ErrMsgInvalidAmountError
	case errors.Is(err, domain.ErrStakeTooLow):
		return http.StatusBadRequest, ErrMsgStakeTooLowError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgInsufficientFundsError
	case errors.Is(err, domain.ErrAlreadyChallenging):
		return http.StatusConflict, ErrMsgAlreadyChallengingError
	case errors.Is(err, domain.ErrTargetBusy):
		return http.StatusConflict, ErrMsgTargetBusyError
	case errors.Is(err, domain.ErrTargetInactive):
		return http.StatusBadRequest, ErrMsgTargetInactiveError
	case errors.Is(err, domain.ErrNoActiveRequest):
		return http.StatusNotFound, ErrMsgNoActiveRequestError
	case errors.Is(err, domain.ErrNotChallenged):
		return http.StatusNotFound, ErrMsgNotChallengedError
	case errors.Is(err, cooldown.ErrOnCooldown{}):
		return http.StatusTooManyRequests, ErrMsgOnCooldownError
	}

	// For wrapped errors with domain errors as the base, try unwrapping
	unwrapped := errors.Unwrap(err)
	if unwrapped != nil && unwrapped != err {
		return mapServiceErrorToUserMessage(unwrapped)
	}

	// Short custom messages (tests, mocks) pass through as-is
	errMsg := err.Error()
	if errMsg != "" && len(errMsg) < 200 {
		return http.StatusInternalServerError, errMsg
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
