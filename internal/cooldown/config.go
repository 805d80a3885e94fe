package cooldown

import "time"

// Config holds cooldown service configuration
type Config struct {
	// DevMode bypasses all cooldowns when true
	DevMode bool

	// Cooldowns maps action names to their durations.
	// A zero or negative duration disables the cooldown for that action.
	Cooldowns map[string]time.Duration
}

// GetCooldownDuration returns the cooldown duration for an action
func (c *Config) GetCooldownDuration(action string) time.Duration {
	if c.Cooldowns != nil {
		if duration, ok := c.Cooldowns[action]; ok {
			return duration
		}
	}

	switch action {
	case ActionDuel:
		return DefaultDuelCooldown
	case ActionCancelDuel:
		return DefaultCancelCooldown
	case ActionDuelStatus:
		return DefaultStatusCooldown
	case ActionDuelStats:
		return DefaultStatsCooldown
	default:
		return 0
	}
}
