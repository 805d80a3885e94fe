package cooldown

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/DuelArena_Go/internal/logger"
)

// Service manages action cooldowns for users
type Service interface {
	// CheckCooldown checks if a user's action is on cooldown
	// Returns: (onCooldown bool, remaining time.Duration, error)
	CheckCooldown(ctx context.Context, userID, action string) (bool, time.Duration, error)

	// EnforceCooldown atomically checks cooldown and executes action if allowed
	// This is the primary method - prevents race conditions
	EnforceCooldown(ctx context.Context, userID, action string, fn func() error) error

	// ResetCooldown manually resets a cooldown (admin/testing)
	ResetCooldown(ctx context.Context, userID, action string) error

	// GetLastUsed returns when action was last performed (for UI display)
	GetLastUsed(ctx context.Context, userID, action string) (*time.Time, error)
}

// ErrOnCooldown is returned when action is still on cooldown
type ErrOnCooldown struct {
	Action    string
	Remaining time.Duration
}

func (e ErrOnCooldown) Error() string {
	minutes := int(e.Remaining.Minutes())
	seconds := int(e.Remaining.Seconds()) % SecondsPerMinute

	if minutes > 0 {
		return fmt.Sprintf(ErrFmtCooldownWithMinutes, e.Action, minutes, seconds)
	}
	return fmt.Sprintf(ErrFmtCooldownSecondsOnly, e.Action, seconds)
}

// Is allows errors.Is() to work with ErrOnCooldown
func (e ErrOnCooldown) Is(target error) bool {
	_, ok := target.(ErrOnCooldown)
	return ok
}

// service is an in-memory cooldown store. Cooldowns here are seconds-scale
// chat rate limits, so losing them on restart is acceptable.
type service struct {
	config Config

	mu       sync.Mutex
	lastUsed map[string]time.Time
}

// NewService creates a new in-memory cooldown service
func NewService(config Config) Service {
	return &service{
		config:   config,
		lastUsed: make(map[string]time.Time),
	}
}

// CheckCooldown checks if a user's action is on cooldown without consuming it
func (s *service) CheckCooldown(ctx context.Context, userID, action string) (bool, time.Duration, error) {
	duration := s.config.GetCooldownDuration(action)
	if duration <= 0 || s.config.DevMode {
		return false, 0, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	last, ok := s.lastUsed[makeKey(userID, action)]
	if !ok {
		return false, 0, nil
	}

	remaining := duration - time.Since(last)
	if remaining <= 0 {
		return false, 0, nil
	}
	return true, remaining, nil
}

// EnforceCooldown atomically checks the cooldown, runs fn, and records usage.
// The timestamp is only written when fn succeeds, so a failed action can be
// retried immediately.
func (s *service) EnforceCooldown(ctx context.Context, userID, action string, fn func() error) error {
	log := logger.FromContext(ctx)

	duration := s.config.GetCooldownDuration(action)
	if s.config.DevMode {
		log.Debug(LogMsgDevModeBypass, "user_id", userID, "action", action)
		return fn()
	}
	if duration <= 0 {
		return fn()
	}

	key := makeKey(userID, action)

	s.mu.Lock()
	last, ok := s.lastUsed[key]
	if ok {
		if remaining := duration - time.Since(last); remaining > 0 {
			s.mu.Unlock()
			return ErrOnCooldown{Action: action, Remaining: remaining}
		}
	}
	// Reserve the slot before running fn so concurrent callers are rejected.
	s.lastUsed[key] = time.Now()
	s.mu.Unlock()

	if err := fn(); err != nil {
		s.mu.Lock()
		delete(s.lastUsed, key)
		s.mu.Unlock()
		return err
	}

	log.Debug(LogMsgCooldownEnforced, "user_id", userID, "action", action)
	return nil
}

// ResetCooldown manually clears a cooldown
func (s *service) ResetCooldown(ctx context.Context, userID, action string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.lastUsed, makeKey(userID, action))
	return nil
}

// GetLastUsed returns when action was last performed, nil if never
func (s *service) GetLastUsed(ctx context.Context, userID, action string) (*time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	last, ok := s.lastUsed[makeKey(userID, action)]
	if !ok {
		return nil, nil
	}
	return &last, nil
}

func makeKey(userID, action string) string {
	return userID + KeySeparator + action
}
