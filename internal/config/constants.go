package config

import "time"

// Server defaults
const (
	DefaultPort          = 8080
	DefaultChatSocketURL = "ws://127.0.0.1:7585/"
)

// Duel defaults
const (
	// DefaultMinStake is the minimum points a duel can be fought for
	DefaultMinStake = 300

	// DefaultDuelExpiry is how long a challenge stays open before it expires
	DefaultDuelExpiry = 60 * time.Second

	// DefaultActivityWindow is how recently a target must have chatted to be challengeable
	DefaultActivityWindow = 5 * time.Minute
)

// Command cooldown defaults
const (
	DefaultDuelUserCooldown   = 5 * time.Second
	DefaultDuelGlobalCooldown = 0 * time.Second
	DefaultCancelCooldown     = 10 * time.Second
	DefaultStatusCooldown     = 5 * time.Second
	DefaultStatsCooldown      = 120 * time.Second
)

// Subscription alert defaults
const (
	DefaultSubWhisperDelay = 5 * time.Second

	// DefaultSubPointsBase is the tier-1 point grant for a subscription
	DefaultSubPointsBase = 2500
)

// Donation feed defaults
const (
	DefaultPointsPerUSD      = 100
	DefaultDonationReconnect = 15 * time.Second
)
