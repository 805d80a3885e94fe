package user

import (
	"context"

	"github.com/osse101/DuelArena_Go/internal/domain"
)

// Repository defines persistence for known chat users
type Repository interface {
	// GetByUsername looks a user up by canonical (lowercase) username.
	// Returns nil when the username is unknown.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	// Upsert registers a user or refreshes their display name,
	// returning the stable user ID.
	Upsert(ctx context.Context, username, displayName, platform string) (string, error)
}
