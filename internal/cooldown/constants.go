package cooldown

import "time"

// =============================================================================
// Action Names
// =============================================================================

const (
	// ActionDuel is the per-user cooldown on issuing duel challenges
	ActionDuel = "duel"

	// ActionDuelGlobal is the channel-wide cooldown on issuing duel challenges
	ActionDuelGlobal = "duel_global"

	// ActionCancelDuel is the cooldown on withdrawing a challenge
	ActionCancelDuel = "cancelduel"

	// ActionDuelStatus is the cooldown on querying pending challenges
	ActionDuelStatus = "duelstatus"

	// ActionDuelStats is the cooldown on querying lifetime duel stats
	ActionDuelStats = "duelstats"
)

// GlobalUserID is the reserved key for channel-wide cooldowns
const GlobalUserID = "*global*"

// =============================================================================
// Default Durations
// =============================================================================

const (
	DefaultDuelCooldown   = 5 * time.Second
	DefaultCancelCooldown = 10 * time.Second
	DefaultStatusCooldown = 5 * time.Second
	DefaultStatsCooldown  = 120 * time.Second
)

// =============================================================================
// Key Constants
// =============================================================================

const (
	// KeySeparator joins userID and action in the last-used map key
	KeySeparator = ":"
)

// =============================================================================
// Error Message Format Strings (for ErrOnCooldown.Error())
// =============================================================================

const (
	// ErrFmtCooldownWithMinutes formats cooldown error with minutes and seconds
	ErrFmtCooldownWithMinutes = "action '%s' on cooldown: %dm %ds remaining"

	// ErrFmtCooldownSecondsOnly formats cooldown error with seconds only
	ErrFmtCooldownSecondsOnly = "action '%s' on cooldown: %ds remaining"
)

// =============================================================================
// Log Message Constants
// =============================================================================

const (
	// LogMsgDevModeBypass is logged when dev mode bypasses cooldown enforcement
	LogMsgDevModeBypass = "DEV_MODE: Bypassing cooldown enforcement"

	// LogMsgCooldownEnforced is logged when cooldown is successfully enforced and updated
	LogMsgCooldownEnforced = "Cooldown enforced successfully"
)

// =============================================================================
// Time Conversion Constants
// =============================================================================

const (
	// SecondsPerMinute is used for time duration calculations
	SecondsPerMinute = 60
)
