package user

import "time"

// Cache sizing
const (
	// DefaultCacheSize is the maximum number of users held in the lookup cache
	DefaultCacheSize = 1024
	// DefaultCacheTTL is how long a cached lookup stays valid
	DefaultCacheTTL = 5 * time.Minute
)

// Chatter tracking
const (
	// CleanupInterval is how often expired chatters are pruned
	CleanupInterval = 5 * time.Minute
)

// Log Message Constants
const (
	LogMsgFailedToUpsertUser = "Failed to upsert user"
	LogMsgUserRegistered     = "User registered"
)

// Error Message Constants
const (
	ErrMsgUsernameRequired = "username is required"
	ErrMsgLookupFailed     = "failed to look up user: %w"
	ErrMsgUpsertFailed     = "failed to upsert user: %w"
)
