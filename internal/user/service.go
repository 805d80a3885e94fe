package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/osse101/DuelArena_Go/internal/domain"
	"github.com/osse101/DuelArena_Go/internal/logger"
)

// Service defines the interface for user operations
type Service interface {
	// Resolve looks a user up by username (any casing).
	// Returns domain.ErrUnknownUser when the bot has never seen them.
	Resolve(ctx context.Context, username string) (*domain.User, error)
	// Register records that a user exists, creating or refreshing
	// their row, and returns the resolved user.
	Register(ctx context.Context, username, displayName, platform string) (*domain.User, error)
}

// service implements the Service interface
type service struct {
	repo  Repository
	cache *userCache
}

// NewService creates a new user service with a lookup cache
func NewService(repo Repository) Service {
	return &service{
		repo:  repo,
		cache: newUserCache(DefaultCacheSize, DefaultCacheTTL),
	}
}

// Resolve looks a user up by username, serving repeated lookups from cache
func (s *service) Resolve(ctx context.Context, username string) (*domain.User, error) {
	canonical := Canonicalize(username)
	if canonical == "" {
		return nil, errors.New(ErrMsgUsernameRequired)
	}

	if cached, ok := s.cache.Get(canonical); ok {
		return cached, nil
	}

	u, err := s.repo.GetByUsername(ctx, canonical)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLookupFailed, err)
	}
	if u == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownUser, canonical)
	}

	s.cache.Set(canonical, u)
	return u, nil
}

// Register creates or refreshes a user row and returns the resolved user
func (s *service) Register(ctx context.Context, username, displayName, platform string) (*domain.User, error) {
	log := logger.FromContext(ctx)

	canonical := Canonicalize(username)
	if canonical == "" {
		return nil, errors.New(ErrMsgUsernameRequired)
	}
	if displayName == "" {
		displayName = username
	}

	id, err := s.repo.Upsert(ctx, canonical, displayName, platform)
	if err != nil {
		log.Error(LogMsgFailedToUpsertUser, "error", err, "username", canonical)
		return nil, fmt.Errorf(ErrMsgUpsertFailed, err)
	}

	u := &domain.User{
		ID:          id,
		Username:    canonical,
		DisplayName: displayName,
		Platform:    platform,
	}
	s.cache.Set(canonical, u)

	log.Debug(LogMsgUserRegistered, "user_id", id, "username", canonical)
	return u, nil
}

// Canonicalize normalizes a username for lookups and map keys.
// Leading @ mentions and casing differences collapse to one form.
func Canonicalize(username string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(username), "@"))
}
